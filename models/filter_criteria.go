package models

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"ep-server/config"
)

// FilterCriteria mirrors the planner's query args. Location and VenueType
// accept "Any" as a no-op value; Amenities may be empty.
type FilterCriteria struct {
	EventType string   `json:"event_type" validate:"required"`
	Location  string   `json:"location"`
	Attendees int      `json:"attendees" validate:"min=0"`
	Budget    int      `json:"budget" validate:"min=0"`
	VenueType string   `json:"venue_type"`
	Amenities []string `json:"amenities"`
}

// Normalize fills in the no-op defaults and drops blank amenity tags.
func (c *FilterCriteria) Normalize() {
	c.EventType = strings.TrimSpace(c.EventType)
	c.Location = strings.TrimSpace(c.Location)
	c.VenueType = strings.TrimSpace(c.VenueType)
	if c.Location == "" {
		c.Location = config.ANY_OPTION
	}
	if c.VenueType == "" {
		c.VenueType = config.ANY_OPTION
	}

	amenities := make([]string, 0, len(c.Amenities))
	for _, a := range c.Amenities {
		if a = strings.TrimSpace(a); a != "" {
			amenities = append(amenities, a)
		}
	}
	c.Amenities = amenities
}

// AnyLocation reports whether the location criterion is a no-op. Only the
// exact "Any" sentinel is a no-op; "any" is a literal location.
func (c FilterCriteria) AnyLocation() bool {
	return c.Location == config.ANY_OPTION
}

// AnyVenueType reports whether the venue type criterion is a no-op. Only the
// exact "Any" sentinel is a no-op.
func (c FilterCriteria) AnyVenueType() bool {
	return c.VenueType == config.ANY_OPTION
}

// ToValues serializes the criteria back into query args.
func (c FilterCriteria) ToValues() url.Values {
	q := url.Values{}

	q.Set("event", c.EventType)
	q.Set("location", c.Location)
	q.Set("attendees", itoa(c.Attendees))
	q.Set("budget", itoa(c.Budget))
	q.Set("venue_type", c.VenueType)
	if len(c.Amenities) > 0 {
		q.Set("amenities", join(c.Amenities, ","))
	}

	return q
}

// CacheKey returns a canonical string identifying the criteria. Amenity order
// and case do not affect the key, and neither does event type case, since the
// matching predicates ignore them. Location and venue type are kept verbatim:
// location matching is case-sensitive, and the "Any" sentinel must not share
// an entry with a literal "any".
func (c FilterCriteria) CacheKey() string {
	tags := make([]string, len(c.Amenities))
	for i, a := range c.Amenities {
		tags[i] = strings.ToLower(a)
	}
	sort.Strings(tags)

	parts := []string{
		strings.ToLower(c.EventType),
		c.Location,
		itoa(c.Attendees),
		itoa(c.Budget),
		c.VenueType,
		join(tags, ","),
	}
	return join(parts, "|")
}

// lightweight helpers (no fmt.Sprintf allocations for ints)
func itoa(i int) string { return strconv.Itoa(i) }
func join(ss []string, sep string) string {
	if len(ss) == 0 {
		return ""
	}
	out := ss[0]
	for i := 1; i < len(ss); i++ {
		out += sep + ss[i]
	}
	return out
}
