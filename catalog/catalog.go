package catalog

import "ep-server/models"

// Catalog is the normalized venue table. It is built once at startup and
// treated as read-only shared state for the lifetime of the process.
type Catalog struct {
	venues      []models.Venue
	locations   []string
	droppedRows int
}

// New builds a catalog from normalized venues, recording how many source rows
// were dropped during normalization. Known locations are collected in order
// of first appearance.
func New(venues []models.Venue, droppedRows int) *Catalog {
	seen := make(map[string]struct{}, len(venues))
	locations := make([]string, 0, len(venues))
	for _, v := range venues {
		if _, dup := seen[v.Location]; dup {
			continue
		}
		seen[v.Location] = struct{}{}
		locations = append(locations, v.Location)
	}

	return &Catalog{
		venues:      venues,
		locations:   locations,
		droppedRows: droppedRows,
	}
}

// Venues returns the normalized rows in source order. Callers must treat the
// returned slice as read-only.
func (c *Catalog) Venues() []models.Venue {
	return c.venues
}

// Size returns the number of normalized rows.
func (c *Catalog) Size() int {
	return len(c.venues)
}

// DroppedRows returns how many source rows failed normalization.
func (c *Catalog) DroppedRows() int {
	return c.droppedRows
}

// Locations returns the distinct venue locations in order of first appearance.
func (c *Catalog) Locations() []string {
	return c.locations
}
