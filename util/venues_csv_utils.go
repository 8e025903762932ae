package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ep-server/models"
)

// VenueRecord is one raw CSV row keyed by its (whitespace-trimmed) column name.
type VenueRecord map[string]string

// VenueExportHeader is the column set of the filtered-venues export. It
// mirrors the input schema minus the amenities column.
var VenueExportHeader = []string{"Venue Name", "Location", "Capacity", "Type", "Budget", "Event Type"}

// ReadVenueRecordsFromCSV loads raw venue records from a CSV file on disk.
// It returns the trimmed header alongside the records, so accidental header
// padding in the source file is tolerated; rows shorter than the header are
// padded with empty cells.
func ReadVenueRecordsFromCSV(filePath string) ([]string, []VenueRecord, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %q: %w", filePath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV %q: %w", filePath, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("CSV %q has no header row", filePath)
	}

	header := make([]string, len(rows[0]))
	for i, col := range rows[0] {
		header[i] = strings.TrimSpace(col)
	}

	records := make([]VenueRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(VenueRecord, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = row[i]
			} else {
				record[col] = ""
			}
		}
		records = append(records, record)
	}
	return header, records, nil
}

// WriteVenuesCSV renders venues as delimited text with the export schema.
func WriteVenuesCSV(w io.Writer, venues []models.Venue) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(VenueExportHeader); err != nil {
		return fmt.Errorf("failed to write venues CSV header: %w", err)
	}
	for _, v := range venues {
		row := []string{
			v.VenueName,
			v.Location,
			strconv.Itoa(v.Capacity),
			v.VenueType,
			strconv.Itoa(v.Budget),
			v.EventTypes,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write venue row for %q: %w", v.VenueName, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WritePlanSummaryCSV renders a plan summary as a single-row key-value table.
func WritePlanSummaryCSV(w io.Writer, summary models.PlanSummary) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(summary.CSVHeader()); err != nil {
		return fmt.Errorf("failed to write plan summary header: %w", err)
	}
	if err := writer.Write(summary.CSVRow()); err != nil {
		return fmt.Errorf("failed to write plan summary row: %w", err)
	}

	writer.Flush()
	return writer.Error()
}
