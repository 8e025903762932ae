package models

import (
	"strings"

	"ep-server/config"
)

// PlanSummary is a flat restatement of the filter criteria for display and
// export. It is never fed back into filtering.
type PlanSummary struct {
	EventType         string `json:"event_type"`
	Location          string `json:"location"`
	NumberOfAttendees int    `json:"number_of_attendees"`
	Budget            string `json:"budget"`
	VenueType         string `json:"venue_type"`
	SelectedAmenities string `json:"selected_amenities"`
}

// NewPlanSummary builds the summary for one criteria record. Budget is
// rendered currency-prefixed; an empty amenity selection reads "None".
func NewPlanSummary(c FilterCriteria) PlanSummary {
	amenities := "None"
	if len(c.Amenities) > 0 {
		amenities = strings.Join(c.Amenities, ", ")
	}
	return PlanSummary{
		EventType:         c.EventType,
		Location:          c.Location,
		NumberOfAttendees: c.Attendees,
		Budget:            config.CURRENCY_SYMBOL + itoa(c.Budget),
		VenueType:         c.VenueType,
		SelectedAmenities: amenities,
	}
}

// CSVHeader returns the column names of the single-row summary export.
func (PlanSummary) CSVHeader() []string {
	return []string{"Event Type", "Location", "Number of Attendees", "Budget", "Venue Type", "Selected Amenities"}
}

// CSVRow returns the summary as one export row, aligned with CSVHeader.
func (p PlanSummary) CSVRow() []string {
	return []string{p.EventType, p.Location, itoa(p.NumberOfAttendees), p.Budget, p.VenueType, p.SelectedAmenities}
}
