package catalog

import (
	"fmt"
	"log"

	"ep-server/models"
	"ep-server/util"
)

// Column names of the venue CSV schema.
const (
	COLUMN_VENUE_NAME = "Venue Name"
	COLUMN_LOCATION   = "Location"
	COLUMN_CAPACITY   = "Capacity"
	COLUMN_TYPE       = "Type"
	COLUMN_BUDGET     = "Budget"
	COLUMN_EVENT_TYPE = "Event Type"
	COLUMN_EQUIPMENTS = "Available Equipments"
)

var requiredColumns = []string{
	COLUMN_VENUE_NAME,
	COLUMN_LOCATION,
	COLUMN_CAPACITY,
	COLUMN_TYPE,
	COLUMN_BUDGET,
	COLUMN_EVENT_TYPE,
	COLUMN_EQUIPMENTS,
}

// Load reads the venue CSV at filePath and normalizes it into a Catalog.
// A missing or unreadable file, or a header lacking required columns, is a
// fatal load error. Rows whose capacity or budget cannot be coerced to a
// non-negative integer are dropped and counted; no partial record survives.
func Load(filePath string) (*Catalog, error) {
	header, records, err := util.ReadVenueRecordsFromCSV(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load venue catalog: %w", err)
	}
	if err := checkRequiredColumns(header); err != nil {
		return nil, fmt.Errorf("invalid venue catalog %q: %w", filePath, err)
	}

	venues := make([]models.Venue, 0, len(records))
	dropped := 0
	for i, record := range records {
		v, err := normalizeRecord(record)
		if err != nil {
			// data row i+2 accounts for the header line
			log.Printf("[Catalog] Dropping row %d: %v", i+2, err)
			dropped++
			continue
		}
		venues = append(venues, v)
	}

	if dropped > 0 {
		log.Printf("[Catalog] Dropped %d of %d rows during normalization", dropped, len(records))
	}
	log.Printf("[Catalog] Loaded %d venues from %s", len(venues), filePath)

	return New(venues, dropped), nil
}

func checkRequiredColumns(header []string) error {
	present := make(map[string]struct{}, len(header))
	for _, col := range header {
		present[col] = struct{}{}
	}
	for _, col := range requiredColumns {
		if _, ok := present[col]; !ok {
			return fmt.Errorf("missing required column %q", col)
		}
	}
	return nil
}

func normalizeRecord(record util.VenueRecord) (models.Venue, error) {
	capacity, err := parseCapacity(record[COLUMN_CAPACITY])
	if err != nil {
		return models.Venue{}, err
	}
	budget, err := parseBudget(record[COLUMN_BUDGET])
	if err != nil {
		return models.Venue{}, err
	}

	return models.Venue{
		VenueName:  record[COLUMN_VENUE_NAME],
		Location:   record[COLUMN_LOCATION],
		Capacity:   capacity,
		VenueType:  record[COLUMN_TYPE],
		Budget:     budget,
		EventTypes: record[COLUMN_EVENT_TYPE],
		Amenities:  parseAmenities(record[COLUMN_EQUIPMENTS]),
	}, nil
}
