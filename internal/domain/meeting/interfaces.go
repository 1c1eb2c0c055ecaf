package meeting

import (
	"context"
	"time"
)

// Repository provides storage for meetings.
type Repository interface {
	List(ctx context.Context) ([]Meeting, error)
	Get(ctx context.Context, id int) (*Meeting, error)
	Create(ctx context.Context, m *Meeting) error
	Update(ctx context.Context, id int, req UpdateRequest) (*Meeting, error)
	Delete(ctx context.Context, id int) error
	ListByClient(ctx context.Context, clientID int) ([]Meeting, error)
	ListByProject(ctx context.Context, projectID int) ([]Meeting, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]Meeting, error)
}
