package models

import (
	"testing"
)

func TestFilterCriteria_NormalizeDefaults(t *testing.T) {
	c := FilterCriteria{EventType: " Wedding ", Amenities: []string{" Mic ", "", "WiFi"}}
	c.Normalize()

	if c.EventType != "Wedding" {
		t.Errorf("Expected trimmed event type, got %q", c.EventType)
	}
	if c.Location != "Any" || c.VenueType != "Any" {
		t.Errorf("Expected 'Any' defaults, got %q/%q", c.Location, c.VenueType)
	}
	if len(c.Amenities) != 2 || c.Amenities[0] != "Mic" || c.Amenities[1] != "WiFi" {
		t.Errorf("Expected cleaned amenities [Mic WiFi], got %v", c.Amenities)
	}
}

func TestFilterCriteria_CacheKeyIgnoresAmenityOrderAndCase(t *testing.T) {
	a := FilterCriteria{EventType: "Wedding", Location: "Any", Attendees: 100, Budget: 50000, VenueType: "Any", Amenities: []string{"WiFi", "Mic"}}
	b := FilterCriteria{EventType: "wedding", Location: "Any", Attendees: 100, Budget: 50000, VenueType: "Any", Amenities: []string{"mic", "wifi"}}

	if a.CacheKey() != b.CacheKey() {
		t.Errorf("Expected identical cache keys, got %q and %q", a.CacheKey(), b.CacheKey())
	}
}

func TestFilterCriteria_CacheKeyKeepsSentinelDistinct(t *testing.T) {
	// "Any" is a no-op, "any" is a literal value; they filter differently and
	// must not share a cache entry.
	a := FilterCriteria{EventType: "Wedding", Location: "Any", Attendees: 100, Budget: 50000, VenueType: "Any"}
	b := FilterCriteria{EventType: "Wedding", Location: "Any", Attendees: 100, Budget: 50000, VenueType: "any"}

	if a.CacheKey() == b.CacheKey() {
		t.Error("Expected different cache keys for sentinel vs literal venue type")
	}
}

func TestFilterCriteria_OnlyExactAnyIsNoOp(t *testing.T) {
	c := FilterCriteria{Location: "Any", VenueType: "Any"}
	if !c.AnyLocation() || !c.AnyVenueType() {
		t.Error("Expected 'Any' to be a no-op for both criteria")
	}

	c = FilterCriteria{Location: "any", VenueType: "ANY"}
	if c.AnyLocation() {
		t.Error("Expected lowercase 'any' to be a literal location")
	}
	if c.AnyVenueType() {
		t.Error("Expected uppercase 'ANY' to be a literal venue type")
	}
}

func TestFilterCriteria_CacheKeyDistinguishesCriteria(t *testing.T) {
	a := FilterCriteria{EventType: "Wedding", Attendees: 100, Budget: 50000}
	b := FilterCriteria{EventType: "Wedding", Attendees: 200, Budget: 50000}

	if a.CacheKey() == b.CacheKey() {
		t.Error("Expected different cache keys for different attendee counts")
	}
}

func TestFilterCriteria_ToValues(t *testing.T) {
	c := FilterCriteria{EventType: "Wedding", Location: "Delhi", Attendees: 100, Budget: 50000, VenueType: "Indoor", Amenities: []string{"Mic", "WiFi"}}
	q := c.ToValues()

	if q.Get("event") != "Wedding" || q.Get("location") != "Delhi" {
		t.Errorf("Unexpected values: %v", q)
	}
	if q.Get("attendees") != "100" || q.Get("budget") != "50000" {
		t.Errorf("Unexpected numeric values: %v", q)
	}
	if q.Get("amenities") != "Mic,WiFi" {
		t.Errorf("Expected comma-joined amenities, got %q", q.Get("amenities"))
	}
}

func TestVenue_SupportsEventType(t *testing.T) {
	v := Venue{EventTypes: "Wedding, Corporate Event"}

	if !v.SupportsEventType("wedding") {
		t.Error("Expected case-insensitive substring match")
	}
	if v.SupportsEventType("Concert") {
		t.Error("Did not expect a Concert match")
	}
}

func TestVenue_HasAllAmenities(t *testing.T) {
	v := Venue{Amenities: []string{"Mic", "WiFi"}}

	if !v.HasAllAmenities([]string{"mic"}) {
		t.Error("Expected case-insensitive amenity match")
	}
	if v.HasAllAmenities([]string{"Mic", "Projector"}) {
		t.Error("Did not expect match with missing Projector")
	}
	if !v.HasAllAmenities(nil) {
		t.Error("Expected empty request to be trivially satisfied")
	}
}
