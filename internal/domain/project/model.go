package project

import "time"

// Status is a project's pipeline stage. Values are case-sensitive and serve
// as both storage value and display label.
type Status string

const (
	StatusLead       Status = "Lead"
	StatusDesign     Status = "Design"
	StatusInProgress Status = "In Progress"
	StatusComplete   Status = "Complete"
)

// Statuses returns the pipeline stages in board order.
func Statuses() []Status {
	return []Status{StatusLead, StatusDesign, StatusInProgress, StatusComplete}
}

// Valid reports whether s is one of the four pipeline stages.
func (s Status) Valid() bool {
	switch s {
	case StatusLead, StatusDesign, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

// Project represents a design engagement. ClientID zero means the project is
// not assigned to a client; identities are strictly positive, so zero never
// resolves during a join.
type Project struct {
	ID          int        `json:"id"`
	ClientID    int        `json:"client_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Budget      float64    `json:"budget"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Images      []string   `json:"images"`
}

// Clone returns a copy that shares no memory with the receiver.
func (p Project) Clone() Project {
	out := p
	if p.StartDate != nil {
		t := *p.StartDate
		out.StartDate = &t
	}
	if p.EndDate != nil {
		t := *p.EndDate
		out.EndDate = &t
	}
	if p.Images != nil {
		out.Images = make([]string, len(p.Images))
		copy(out.Images, p.Images)
	}
	return out
}
