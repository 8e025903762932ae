package models

import "strings"

// Venue is one normalized row of the venue catalog. Capacity and Budget are
// guaranteed non-negative integers after load; rows that cannot satisfy that
// never make it into a catalog.
type Venue struct {
	VenueName  string   `json:"venue_name"`
	Location   string   `json:"location"`
	Capacity   int      `json:"capacity"`
	VenueType  string   `json:"venue_type"`
	Budget     int      `json:"budget"`
	EventTypes string   `json:"event_types"`
	Amenities  []string `json:"amenities"`
}

// SupportsEventType reports whether the venue's free-text event type field
// contains the requested event type, case-insensitively. A venue tagged
// "Wedding, Corporate" supports a "Wedding" request.
func (v Venue) SupportsEventType(eventType string) bool {
	return strings.Contains(strings.ToLower(v.EventTypes), strings.ToLower(eventType))
}

// HasAmenity reports whether the venue offers the given amenity tag.
// Tags are compared case-insensitively.
func (v Venue) HasAmenity(tag string) bool {
	for _, a := range v.Amenities {
		if strings.EqualFold(a, tag) {
			return true
		}
	}
	return false
}

// HasAllAmenities reports whether every requested tag is offered by the venue.
// An empty request is trivially satisfied.
func (v Venue) HasAllAmenities(tags []string) bool {
	for _, tag := range tags {
		if !v.HasAmenity(tag) {
			return false
		}
	}
	return true
}
