package dashboard

import (
	"time"

	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/domain/project"
)

// Stats holds the headline counters shown at the top of the dashboard.
type Stats struct {
	TotalProjects    int `json:"total_projects"`
	ActiveProjects   int `json:"active_projects"`
	TotalClients     int `json:"total_clients"`
	UpcomingMeetings int `json:"upcoming_meetings"`
}

// MeetingOverview is a meeting joined with the display names of its client
// and project.
type MeetingOverview struct {
	Meeting     meeting.Meeting `json:"meeting"`
	ClientName  string          `json:"client_name"`
	ProjectName string          `json:"project_name"`
}

// Summary is the full dashboard payload, assembled from a single consistent
// snapshot of all three stores.
type Summary struct {
	Stats            Stats             `json:"stats"`
	RecentProjects   []project.Project `json:"recent_projects"`
	RecentClients    []client.Client   `json:"recent_clients"`
	UpcomingMeetings []MeetingOverview `json:"upcoming_meetings"`
	GeneratedAt      time.Time         `json:"generated_at"`
}
