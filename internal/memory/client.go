package memory

import (
	"context"
	"sync"

	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/repository"
)

// ClientRepository implements client.Repository over an in-memory slice.
type ClientRepository struct {
	mu      sync.Mutex
	delays  repository.Delays
	clients []client.Client
}

// NewClientRepository creates an empty in-memory client store.
func NewClientRepository(delays repository.Delays) *ClientRepository {
	return &ClientRepository{delays: delays}
}

// List returns a full copy of the collection. It never fails.
func (r *ClientRepository) List(ctx context.Context) ([]client.Client, error) {
	repository.Pause(r.delays.List)
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]client.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c.Clone())
	}
	return out, nil
}

// Get returns a copy of the client with the given ID.
func (r *ClientRepository) Get(ctx context.Context, id int) (*client.Client, error) {
	repository.Pause(r.delays.Get)
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.clients {
		if c.ID == id {
			out := c.Clone()
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Create assigns the next identity, stores a copy of c, and sets the
// assigned ID on the caller's record. The identity is one plus the maximum
// identity present at call time; the scheme assumes a single logical writer.
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	repository.Pause(r.delays.Create)
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.clients {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	c.ID = maxID + 1
	r.clients = append(r.clients, c.Clone())
	return nil
}

// Update shallow-merges the supplied fields over the stored record and
// returns a copy of the result.
func (r *ClientRepository) Update(ctx context.Context, id int, req client.UpdateRequest) (*client.Client, error) {
	repository.Pause(r.delays.Update)
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.clients {
		if r.clients[i].ID != id {
			continue
		}
		if req.Name != nil {
			r.clients[i].Name = *req.Name
		}
		if req.Email != nil {
			r.clients[i].Email = *req.Email
		}
		if req.Phone != nil {
			r.clients[i].Phone = *req.Phone
		}
		if req.Address != nil {
			r.clients[i].Address = *req.Address
		}
		if req.Notes != nil {
			r.clients[i].Notes = *req.Notes
		}
		if req.LastContact != nil {
			t := *req.LastContact
			r.clients[i].LastContact = &t
		}
		out := r.clients[i].Clone()
		return &out, nil
	}
	return nil, repository.ErrNotFound
}

// Delete removes the client with the given ID.
func (r *ClientRepository) Delete(ctx context.Context, id int) error {
	repository.Pause(r.delays.Delete)
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.clients {
		if r.clients[i].ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
