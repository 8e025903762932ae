package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VenueAPI is the venue-route handler surface wired by the router.
type VenueAPI interface {
	FilterVenues(w http.ResponseWriter, r *http.Request)
	ExportVenues(w http.ResponseWriter, r *http.Request)
	ChartVenues(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// PlanAPI is the plan-summary handler surface wired by the router.
type PlanAPI interface {
	GetPlanSummary(w http.ResponseWriter, r *http.Request)
	ExportPlanSummary(w http.ResponseWriter, r *http.Request)
}

// OptionsAPI is the planner-options handler surface wired by the router.
type OptionsAPI interface {
	GetPlannerOptions(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler   VenueAPI
	planHandler    PlanAPI
	optionsHandler OptionsAPI
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler VenueAPI,
	planHandler PlanAPI,
	optionsHandler OptionsAPI,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:   venueHandler,
		planHandler:    planHandler,
		optionsHandler: optionsHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?event={type}&attendees={n}&budget={n}[&location=][&venue_type=][&amenities=a,b]
	r.router.HandleFunc("/v1/venues/filter", r.venueHandler.FilterVenues).Methods("GET")
	r.router.HandleFunc("/v1/venues/filter/export", r.venueHandler.ExportVenues).Methods("GET")
	r.router.HandleFunc("/v1/venues/filter/chart", r.venueHandler.ChartVenues).Methods("GET")

	r.router.HandleFunc("/v1/plan/summary", r.planHandler.GetPlanSummary).Methods("GET")
	r.router.HandleFunc("/v1/plan/summary/export", r.planHandler.ExportPlanSummary).Methods("GET")

	r.router.HandleFunc("/v1/planner/options", r.optionsHandler.GetPlannerOptions).Methods("GET")

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
}
