package interfaces

import (
	"context"
	"time"

	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/domain/project"
)

// ClientRepository manages client storage
type ClientRepository interface {
	List(ctx context.Context) ([]client.Client, error)
	Get(ctx context.Context, id int) (*client.Client, error)
	Create(ctx context.Context, c *client.Client) error
	Update(ctx context.Context, id int, req client.UpdateRequest) (*client.Client, error)
	Delete(ctx context.Context, id int) error
}

// ProjectRepository manages project storage
type ProjectRepository interface {
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id int) (*project.Project, error)
	Create(ctx context.Context, p *project.Project) error
	Update(ctx context.Context, id int, req project.UpdateRequest) (*project.Project, error)
	Delete(ctx context.Context, id int) error
	ListByClient(ctx context.Context, clientID int) ([]project.Project, error)
	ListByStatus(ctx context.Context, status project.Status) ([]project.Project, error)
}

// MeetingRepository manages meeting storage
type MeetingRepository interface {
	List(ctx context.Context) ([]meeting.Meeting, error)
	Get(ctx context.Context, id int) (*meeting.Meeting, error)
	Create(ctx context.Context, m *meeting.Meeting) error
	Update(ctx context.Context, id int, req meeting.UpdateRequest) (*meeting.Meeting, error)
	Delete(ctx context.Context, id int) error
	ListByClient(ctx context.Context, clientID int) ([]meeting.Meeting, error)
	ListByProject(ctx context.Context, projectID int) ([]meeting.Meeting, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]meeting.Meeting, error)
}
