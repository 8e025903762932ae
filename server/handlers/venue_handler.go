package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"ep-server/config"
	"ep-server/models"
	services "ep-server/service"
	"ep-server/util"
)

const (
	EVENT_QUERY_ARG      = "event"
	LOCATION_QUERY_ARG   = "location"
	ATTENDEES_QUERY_ARG  = "attendees"
	BUDGET_QUERY_ARG     = "budget"
	VENUE_TYPE_QUERY_ARG = "venue_type"
	AMENITIES_QUERY_ARG  = "amenities"
)

const VENUES_EXPORT_FILENAME = "recommended_venues.csv"

// validate checks parsed criteria against the struct tags in models.
var validate = validator.New()

type VenueHandler struct {
	plannerService *services.PlannerService
}

func NewVenueHandler(plannerService *services.PlannerService) *VenueHandler {
	return &VenueHandler{plannerService: plannerService}
}

// FilterVenues handles GET /v1/venues/filter.
// expects ?event={type}&attendees={n}&budget={n}[&location=][&venue_type=][&amenities=a,b]
func (h *VenueHandler) FilterVenues(w http.ResponseWriter, r *http.Request) {
	criteria, ok := parseCriteria(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	resp := h.plannerService.FilterVenues(criteria)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Println("Error encoding filter response:", err)
	}
}

// ExportVenues handles GET /v1/venues/filter/export, returning the filtered
// venues as a CSV attachment mirroring the input schema.
func (h *VenueHandler) ExportVenues(w http.ResponseWriter, r *http.Request) {
	criteria, ok := parseCriteria(r.URL.Query(), w)
	if !ok {
		return
	}

	resp := h.plannerService.FilterVenues(criteria)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+VENUES_EXPORT_FILENAME+`"`)
	w.WriteHeader(http.StatusOK)
	if err := util.WriteVenuesCSV(w, resp.Venues); err != nil {
		log.Println("Error writing venues export:", err)
	}
}

// ChartVenues handles GET /v1/venues/filter/chart, rendering an HTML chart
// comparing the matching venues.
func (h *VenueHandler) ChartVenues(w http.ResponseWriter, r *http.Request) {
	criteria, ok := parseCriteria(r.URL.Query(), w)
	if !ok {
		return
	}

	resp := h.plannerService.FilterVenues(criteria)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := util.PlotVenueComparison(w, resp.Venues); err != nil {
		log.Println("Error rendering venue chart:", err)
	}
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

// parseCriteria extracts and validates filter criteria from query args.
// Attendees and budget fall back to the planner defaults when absent.
func parseCriteria(vals url.Values, w http.ResponseWriter) (models.FilterCriteria, bool) {
	attendees, err := parseArgInt(vals, ATTENDEES_QUERY_ARG, config.ATTENDEES_DEFAULT)
	if err != nil {
		http.Error(w, "Invalid argument "+ATTENDEES_QUERY_ARG, http.StatusBadRequest)
		return models.FilterCriteria{}, false
	}
	budget, err := parseArgInt(vals, BUDGET_QUERY_ARG, config.BUDGET_DEFAULT)
	if err != nil {
		http.Error(w, "Invalid argument "+BUDGET_QUERY_ARG, http.StatusBadRequest)
		return models.FilterCriteria{}, false
	}

	criteria := models.FilterCriteria{
		EventType: vals.Get(EVENT_QUERY_ARG),
		Location:  vals.Get(LOCATION_QUERY_ARG),
		Attendees: attendees,
		Budget:    budget,
		VenueType: vals.Get(VENUE_TYPE_QUERY_ARG),
	}
	if raw := vals.Get(AMENITIES_QUERY_ARG); raw != "" {
		criteria.Amenities = strings.Split(raw, ",")
	}
	criteria.Normalize()

	if err := validate.Struct(criteria); err != nil {
		http.Error(w, "Invalid filter criteria: "+err.Error(), http.StatusBadRequest)
		return models.FilterCriteria{}, false
	}
	return criteria, true
}

func parseArgInt(vals url.Values, name string, fallback int) (int, error) {
	s := vals.Get(name)
	if s == "" {
		return fallback, nil
	}
	return strconv.Atoi(s)
}
