package api

import "github.com/go-playground/validator/v10"

// ApplicationCreateRequest is the body of POST /applications/.
// Status defaults to "applied" when omitted; id and date_applied are
// server-set.
type ApplicationCreateRequest struct {
	JobTitle string `json:"job_title" validate:"required"`
	Company  string `json:"company" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=applied interview rejected offer accepted withdrawn"`
	Notes    string `json:"notes"`
}

// Validate checks the request against its field constraints.
func (r *ApplicationCreateRequest) Validate() error {
	return validator.New().Struct(r)
}

// ApplicationResponse is one job application as returned to its owner.
type ApplicationResponse struct {
	ID          int    `json:"id"`
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	DateApplied string `json:"date_applied"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
}

// StatsResponse summarizes one user's application activity.
type StatsResponse struct {
	Username              string               `json:"username"`
	FullName              string               `json:"full_name"`
	TotalApplications     int                  `json:"total_applications"`
	StatusBreakdown       map[string]int       `json:"status_breakdown"`
	MostRecentApplication *ApplicationResponse `json:"most_recent_application,omitempty"`
}
