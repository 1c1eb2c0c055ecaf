package memory

import (
	"context"
	"sync"

	"github.com/atelier-crm/atelier/internal/domain/project"
	"github.com/atelier-crm/atelier/internal/repository"
)

// ProjectRepository implements project.Repository over an in-memory slice.
type ProjectRepository struct {
	mu       sync.Mutex
	delays   repository.Delays
	projects []project.Project
}

// NewProjectRepository creates an empty in-memory project store.
func NewProjectRepository(delays repository.Delays) *ProjectRepository {
	return &ProjectRepository{delays: delays}
}

// List returns a full copy of the collection. It never fails.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	repository.Pause(r.delays.List)
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]project.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p.Clone())
	}
	return out, nil
}

// Get returns a copy of the project with the given ID.
func (r *ProjectRepository) Get(ctx context.Context, id int) (*project.Project, error) {
	repository.Pause(r.delays.Get)
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.projects {
		if p.ID == id {
			out := p.Clone()
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Create assigns the next identity and stores a copy of p.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	repository.Pause(r.delays.Create)
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.projects {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	r.projects = append(r.projects, p.Clone())
	return nil
}

// Update shallow-merges the supplied fields over the stored record. A
// supplied image list replaces the stored one wholesale; nothing is merged
// below the top level.
func (r *ProjectRepository) Update(ctx context.Context, id int, req project.UpdateRequest) (*project.Project, error) {
	repository.Pause(r.delays.Update)
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].ID != id {
			continue
		}
		if req.ClientID != nil {
			r.projects[i].ClientID = *req.ClientID
		}
		if req.Name != nil {
			r.projects[i].Name = *req.Name
		}
		if req.Description != nil {
			r.projects[i].Description = *req.Description
		}
		if req.Status != nil {
			r.projects[i].Status = *req.Status
		}
		if req.Budget != nil {
			r.projects[i].Budget = *req.Budget
		}
		if req.StartDate != nil {
			t := *req.StartDate
			r.projects[i].StartDate = &t
		}
		if req.EndDate != nil {
			t := *req.EndDate
			r.projects[i].EndDate = &t
		}
		if req.Images != nil {
			images := make([]string, len(*req.Images))
			copy(images, *req.Images)
			r.projects[i].Images = images
		}
		out := r.projects[i].Clone()
		return &out, nil
	}
	return nil, repository.ErrNotFound
}

// Delete removes the project with the given ID.
func (r *ProjectRepository) Delete(ctx context.Context, id int) error {
	repository.Pause(r.delays.Delete)
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ListByClient returns copies of the projects owned by a client. No match is
// an empty result, not an error.
func (r *ProjectRepository) ListByClient(ctx context.Context, clientID int) ([]project.Project, error) {
	repository.Pause(r.delays.Filter)
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]project.Project, 0)
	for _, p := range r.projects {
		if p.ClientID == clientID {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// ListByStatus returns copies of the projects in one pipeline stage.
func (r *ProjectRepository) ListByStatus(ctx context.Context, status project.Status) ([]project.Project, error) {
	repository.Pause(r.delays.Filter)
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]project.Project, 0)
	for _, p := range r.projects {
		if p.Status == status {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}
