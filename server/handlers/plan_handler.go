package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	services "ep-server/service"
	"ep-server/util"
)

const PLAN_EXPORT_FILENAME = "event_plan.csv"

// PlanHandler serves the plan summary: a restatement of the caller's filter
// criteria, independent of any filtering result.
type PlanHandler struct {
	plannerService *services.PlannerService
}

func NewPlanHandler(plannerService *services.PlannerService) *PlanHandler {
	return &PlanHandler{plannerService: plannerService}
}

// GetPlanSummary handles GET /v1/plan/summary. It accepts the same query args
// as the venue filter routes.
func (h *PlanHandler) GetPlanSummary(w http.ResponseWriter, r *http.Request) {
	criteria, ok := parseCriteria(r.URL.Query(), w)
	if !ok {
		return
	}

	summary := h.plannerService.PlanSummary(criteria)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		log.Println("Error encoding plan summary:", err)
	}
}

// ExportPlanSummary handles GET /v1/plan/summary/export, returning the
// summary as a single-row CSV attachment.
func (h *PlanHandler) ExportPlanSummary(w http.ResponseWriter, r *http.Request) {
	criteria, ok := parseCriteria(r.URL.Query(), w)
	if !ok {
		return
	}

	summary := h.plannerService.PlanSummary(criteria)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+PLAN_EXPORT_FILENAME+`"`)
	w.WriteHeader(http.StatusOK)
	if err := util.WritePlanSummaryCSV(w, summary); err != nil {
		log.Println("Error writing plan summary export:", err)
	}
}
