package util

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"ep-server/models"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp("", "test*.csv")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tempFile.WriteString(content); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	t.Cleanup(func() { os.Remove(tempFile.Name()) })
	return tempFile.Name()
}

func TestReadVenueRecordsFromCSV(t *testing.T) {
	// Arrange: header carries accidental padding
	content := ` Venue Name ,Location, Capacity
Grand Palace,Delhi,100-500
Tech Hub,Bengaluru
`
	path := createTempFile(t, content)

	// Act
	header, records, err := ReadVenueRecordsFromCSV(path)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(header) != 3 || header[0] != "Venue Name" || header[2] != "Capacity" {
		t.Errorf("Expected trimmed header, got %v", header)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0]["Venue Name"] != "Grand Palace" {
		t.Errorf("Expected 'Grand Palace', got %q", records[0]["Venue Name"])
	}
	if records[0]["Capacity"] != "100-500" {
		t.Errorf("Expected raw capacity '100-500', got %q", records[0]["Capacity"])
	}
	// short row is padded with empty cells
	if records[1]["Capacity"] != "" {
		t.Errorf("Expected empty capacity for short row, got %q", records[1]["Capacity"])
	}
}

func TestReadVenueRecordsFromCSV_MissingFile(t *testing.T) {
	if _, _, err := ReadVenueRecordsFromCSV("does-not-exist.csv"); err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}

func TestWriteVenuesCSV(t *testing.T) {
	venues := []models.Venue{
		{
			VenueName:  "Grand Palace",
			Location:   "Delhi",
			Capacity:   500,
			VenueType:  "Indoor",
			Budget:     20000,
			EventTypes: "Wedding, Corporate Event",
			Amenities:  []string{"Mic", "WiFi"},
		},
	}

	var buf bytes.Buffer
	if err := WriteVenuesCSV(&buf, venues); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d lines", len(lines))
	}
	if lines[0] != "Venue Name,Location,Capacity,Type,Budget,Event Type" {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if lines[1] != `Grand Palace,Delhi,500,Indoor,20000,"Wedding, Corporate Event"` {
		t.Errorf("Unexpected row: %s", lines[1])
	}
}

func TestWriteVenuesCSV_EmptyResultStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteVenuesCSV(&buf, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.TrimSpace(buf.String()) != "Venue Name,Location,Capacity,Type,Budget,Event Type" {
		t.Errorf("Expected header only, got %q", buf.String())
	}
}

func TestWritePlanSummaryCSV(t *testing.T) {
	summary := models.PlanSummary{
		EventType:         "Wedding",
		Location:          "Any",
		NumberOfAttendees: 100,
		Budget:            "₹50000",
		VenueType:         "Indoor",
		SelectedAmenities: "Mic, WiFi",
	}

	var buf bytes.Buffer
	if err := WritePlanSummaryCSV(&buf, summary); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Event Type,Location,Number of Attendees,Budget,Venue Type,Selected Amenities" {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if lines[1] != `Wedding,Any,100,₹50000,Indoor,"Mic, WiFi"` {
		t.Errorf("Unexpected row: %s", lines[1])
	}
}

func TestPlotVenueComparison(t *testing.T) {
	venues := []models.Venue{
		{VenueName: "Grand Palace", Capacity: 500, Budget: 20000},
		{VenueName: "Sunset Lawns", Capacity: 800, Budget: 45000},
	}

	var buf bytes.Buffer
	if err := PlotVenueComparison(&buf, venues); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "Grand Palace") {
		t.Error("Expected chart HTML to include venue names")
	}
	if !strings.Contains(html, "Capacity") || !strings.Contains(html, "Budget") {
		t.Error("Expected chart HTML to include both series")
	}
}
