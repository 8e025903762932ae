package services

import (
	"log"
	"strings"

	"ep-server/catalog"
	"ep-server/config"
	redisdao "ep-server/dao/redis"
	"ep-server/models"
)

// PlannerService runs conjunctive venue filtering over the loaded catalog and
// builds plan summaries. Filtering never mutates the catalog; results of
// identical criteria are served from the plan cache when available.
type PlannerService struct {
	catalog   *catalog.Catalog
	planCache *redisdao.RedisPlanCacheDAO
}

// NewPlannerService constructs a PlannerService over an immutable catalog.
// planCache may be nil to disable result caching.
func NewPlannerService(cat *catalog.Catalog, planCache *redisdao.RedisPlanCacheDAO) *PlannerService {
	return &PlannerService{
		catalog:   cat,
		planCache: planCache,
	}
}

// FilterVenues returns the catalog rows satisfying every criterion, in source
// order, together with the plan summary restating the criteria. An empty
// match set is a valid outcome, reported through the response status.
func (ps *PlannerService) FilterVenues(criteria models.FilterCriteria) *models.VenueFilterResponse {
	criteria.Normalize()
	cacheKey := criteria.CacheKey()

	if ps.planCache != nil {
		if cached := ps.planCache.GetFilterResult(cacheKey); cached != nil {
			log.Printf("[PlannerService] Cache hit for criteria %q", cacheKey)
			// The venue list is shared across equivalent criteria, but the
			// summary must restate the incoming criteria verbatim.
			return models.NewVenueFilterResponse(cached.Venues, models.NewPlanSummary(criteria))
		}
	}

	matches := applyCriteria(ps.catalog.Venues(), criteria)
	resp := models.NewVenueFilterResponse(matches, models.NewPlanSummary(criteria))

	if ps.planCache != nil {
		if err := ps.planCache.SetFilterResult(cacheKey, resp); err != nil {
			log.Printf("[PlannerService] Failed to cache filter result: %v", err)
		}
	}
	return resp
}

// PlanSummary restates the criteria for display/export, independent of any
// filtering result.
func (ps *PlannerService) PlanSummary(criteria models.FilterCriteria) models.PlanSummary {
	criteria.Normalize()
	return models.NewPlanSummary(criteria)
}

// LocationOptions returns the selectable locations: "Any" plus the distinct
// locations present in the catalog.
func (ps *PlannerService) LocationOptions() []string {
	return append([]string{config.ANY_OPTION}, ps.catalog.Locations()...)
}

// CatalogSize returns the number of venues available for filtering.
func (ps *PlannerService) CatalogSize() int {
	return ps.catalog.Size()
}

// applyCriteria filters venues with logical AND across the predicates,
// preserving relative order of the input.
func applyCriteria(venues []models.Venue, c models.FilterCriteria) []models.Venue {
	matches := make([]models.Venue, 0)
	for _, v := range venues {
		if matchesCriteria(v, c) {
			matches = append(matches, v)
		}
	}
	return matches
}

func matchesCriteria(v models.Venue, c models.FilterCriteria) bool {
	if v.Capacity < c.Attendees {
		return false
	}
	if v.Budget > c.Budget {
		return false
	}
	if !v.SupportsEventType(c.EventType) {
		return false
	}
	if !c.AnyVenueType() && !strings.EqualFold(v.VenueType, c.VenueType) {
		return false
	}
	// location is an exact match, amenity tags are not
	if !c.AnyLocation() && v.Location != c.Location {
		return false
	}
	return v.HasAllAmenities(c.Amenities)
}
