package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"ep-server/config"
	services "ep-server/service"
)

// PlannerOptions lists the selectable values and bounds a client needs to
// build the planner's input form.
type PlannerOptions struct {
	EventTypes []string     `json:"event_types"`
	Locations  []string     `json:"locations"`
	VenueTypes []string     `json:"venue_types"`
	Amenities  []string     `json:"amenities"`
	Attendees  RangeOptions `json:"attendees"`
	Budget     RangeOptions `json:"budget"`
}

// RangeOptions describes an integer selection range.
type RangeOptions struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Step    int `json:"step"`
	Default int `json:"default"`
}

type OptionsHandler struct {
	plannerService *services.PlannerService
}

func NewOptionsHandler(plannerService *services.PlannerService) *OptionsHandler {
	return &OptionsHandler{plannerService: plannerService}
}

// GetPlannerOptions handles GET /v1/planner/options.
func (h *OptionsHandler) GetPlannerOptions(w http.ResponseWriter, r *http.Request) {
	options := PlannerOptions{
		EventTypes: config.EventTypes,
		Locations:  h.plannerService.LocationOptions(),
		VenueTypes: config.VenueTypes,
		Amenities:  config.Amenities,
		Attendees: RangeOptions{
			Min:     config.ATTENDEES_MIN,
			Max:     config.ATTENDEES_MAX,
			Step:    config.ATTENDEES_STEP,
			Default: config.ATTENDEES_DEFAULT,
		},
		Budget: RangeOptions{
			Min:     config.BUDGET_MIN,
			Max:     config.BUDGET_MAX,
			Step:    config.BUDGET_STEP,
			Default: config.BUDGET_DEFAULT,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(options); err != nil {
		log.Println("Error encoding planner options:", err)
	}
}
