package models

// Filter response statuses. NO_RESULTS is a valid outcome, distinct from a
// load or request error.
const (
	FILTER_STATUS_OK         = "OK"
	FILTER_STATUS_NO_RESULTS = "NO_RESULTS"
)

// VenueFilterResponse is the result of one filter computation: the matching
// venues in catalog order, plus a restatement of the criteria as a plan
// summary.
type VenueFilterResponse struct {
	Status      string      `json:"status"`
	Venues      []Venue     `json:"venues"`
	VenuesN     int         `json:"venues_n"`
	PlanSummary PlanSummary `json:"plan_summary"`
}

// NewVenueFilterResponse assembles a response from filtered venues, deriving
// the status from the match count.
func NewVenueFilterResponse(venues []Venue, summary PlanSummary) *VenueFilterResponse {
	status := FILTER_STATUS_OK
	if len(venues) == 0 {
		status = FILTER_STATUS_NO_RESULTS
	}
	return &VenueFilterResponse{
		Status:      status,
		Venues:      venues,
		VenuesN:     len(venues),
		PlanSummary: summary,
	}
}
