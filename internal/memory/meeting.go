package memory

import (
	"context"
	"sync"
	"time"

	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/repository"
)

// MeetingRepository implements meeting.Repository over an in-memory slice.
type MeetingRepository struct {
	mu       sync.Mutex
	delays   repository.Delays
	meetings []meeting.Meeting
}

// NewMeetingRepository creates an empty in-memory meeting store.
func NewMeetingRepository(delays repository.Delays) *MeetingRepository {
	return &MeetingRepository{delays: delays}
}

// List returns a full copy of the collection. It never fails.
func (r *MeetingRepository) List(ctx context.Context) ([]meeting.Meeting, error) {
	repository.Pause(r.delays.List)
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]meeting.Meeting, 0, len(r.meetings))
	for _, m := range r.meetings {
		out = append(out, m.Clone())
	}
	return out, nil
}

// Get returns a copy of the meeting with the given ID.
func (r *MeetingRepository) Get(ctx context.Context, id int) (*meeting.Meeting, error) {
	repository.Pause(r.delays.Get)
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.meetings {
		if m.ID == id {
			out := m.Clone()
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Create assigns the next identity and stores a copy of m.
func (r *MeetingRepository) Create(ctx context.Context, m *meeting.Meeting) error {
	repository.Pause(r.delays.Create)
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.meetings {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	m.ID = maxID + 1
	r.meetings = append(r.meetings, m.Clone())
	return nil
}

// Update shallow-merges the supplied fields over the stored record.
func (r *MeetingRepository) Update(ctx context.Context, id int, req meeting.UpdateRequest) (*meeting.Meeting, error) {
	repository.Pause(r.delays.Update)
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.meetings {
		if r.meetings[i].ID != id {
			continue
		}
		if req.ClientID != nil {
			r.meetings[i].ClientID = *req.ClientID
		}
		if req.ProjectID != nil {
			r.meetings[i].ProjectID = *req.ProjectID
		}
		if req.Date != nil {
			r.meetings[i].Date = *req.Date
		}
		if req.Notes != nil {
			r.meetings[i].Notes = *req.Notes
		}
		if req.FollowUp != nil {
			r.meetings[i].FollowUp = *req.FollowUp
		}
		out := r.meetings[i].Clone()
		return &out, nil
	}
	return nil, repository.ErrNotFound
}

// Delete removes the meeting with the given ID.
func (r *MeetingRepository) Delete(ctx context.Context, id int) error {
	repository.Pause(r.delays.Delete)
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.meetings {
		if r.meetings[i].ID == id {
			r.meetings = append(r.meetings[:i], r.meetings[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ListByClient returns copies of the meetings for a client.
func (r *MeetingRepository) ListByClient(ctx context.Context, clientID int) ([]meeting.Meeting, error) {
	repository.Pause(r.delays.Filter)
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]meeting.Meeting, 0)
	for _, m := range r.meetings {
		if m.ClientID == clientID {
			out = append(out, m.Clone())
		}
	}
	return out, nil
}

// ListByProject returns copies of the meetings linked to a project.
func (r *MeetingRepository) ListByProject(ctx context.Context, projectID int) ([]meeting.Meeting, error) {
	repository.Pause(r.delays.Filter)
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]meeting.Meeting, 0)
	for _, m := range r.meetings {
		if m.ProjectID == projectID {
			out = append(out, m.Clone())
		}
	}
	return out, nil
}

// ListUpcoming returns copies of the meetings at or after from, soonest
// first. The cutoff is applied at query time.
func (r *MeetingRepository) ListUpcoming(ctx context.Context, from time.Time) ([]meeting.Meeting, error) {
	repository.Pause(r.delays.Filter)
	r.mu.Lock()
	snapshot := make([]meeting.Meeting, 0, len(r.meetings))
	for _, m := range r.meetings {
		snapshot = append(snapshot, m.Clone())
	}
	r.mu.Unlock()

	return meeting.Upcoming(snapshot, from), nil
}
