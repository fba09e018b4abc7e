package models

// ApplicationStatus is the lifecycle state of a job application.
// Any authenticated owner may set any status at any time; there is no
// enforced transition graph.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusRejected  ApplicationStatus = "rejected"
	StatusOffer     ApplicationStatus = "offer"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusWithdrawn ApplicationStatus = "withdrawn"
)

// ApplicationStatuses lists every valid status value.
var ApplicationStatuses = []ApplicationStatus{
	StatusApplied,
	StatusInterview,
	StatusRejected,
	StatusOffer,
	StatusAccepted,
	StatusWithdrawn,
}

// Valid reports whether s is one of the enumerated statuses.
func (s ApplicationStatus) Valid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// JobApplication represents a single job application owned by one user.
// Only the owner can see or mutate the record.
type JobApplication struct {
	ID          int               `json:"id"`
	Owner       string            `json:"owner"`
	JobTitle    string            `json:"job_title"`
	Company     string            `json:"company"`
	DateApplied string            `json:"date_applied"` // YYYY-MM-DD, server-set
	Status      ApplicationStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
}
