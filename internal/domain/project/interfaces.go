package project

import "context"

// Repository provides storage for projects.
type Repository interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id int) (*Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, id int, req UpdateRequest) (*Project, error)
	Delete(ctx context.Context, id int) error
	ListByClient(ctx context.Context, clientID int) ([]Project, error)
	ListByStatus(ctx context.Context, status Status) ([]Project, error)
}
