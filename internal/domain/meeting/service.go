package meeting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atelier-crm/atelier/internal/repository"
)

// Service handles meeting operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new meeting service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// CreateRequest defines meeting creation inputs.
type CreateRequest struct {
	ClientID  int
	ProjectID int
	Date      time.Time
	Notes     string
	FollowUp  string
}

// UpdateRequest defines a partial meeting update. Nil fields retain their
// stored value.
type UpdateRequest struct {
	ClientID  *int
	ProjectID *int
	Date      *time.Time
	Notes     *string
	FollowUp  *string
}

// Create adds a new meeting. The client reference is advisory: it is not
// checked against the client store, and a dangling reference degrades to a
// placeholder at join time.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Meeting, error) {
	if req.ClientID <= 0 || req.Date.IsZero() {
		return nil, ErrInvalidInput
	}

	m := Meeting{
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		Date:      req.Date,
		Notes:     req.Notes,
		FollowUp:  req.FollowUp,
	}

	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, fmt.Errorf("creating meeting: %w", err)
	}

	s.logger.Info("meeting created", "meeting_id", m.ID, "client_id", m.ClientID)
	return &m, nil
}

// Get fetches a meeting by ID.
func (s *Service) Get(ctx context.Context, id int) (*Meeting, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("getting meeting: %w", err)
	}
	return m, nil
}

// List returns every meeting.
func (s *Service) List(ctx context.Context) ([]Meeting, error) {
	return s.repo.List(ctx)
}

// ListByClient returns the meetings for a client.
func (s *Service) ListByClient(ctx context.Context, clientID int) ([]Meeting, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// ListByProject returns the meetings linked to a project.
func (s *Service) ListByProject(ctx context.Context, projectID int) ([]Meeting, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// ListUpcoming returns meetings from now on, soonest first. The cutoff is
// evaluated at query time, not materialized.
func (s *Service) ListUpcoming(ctx context.Context) ([]Meeting, error) {
	return s.repo.ListUpcoming(ctx, s.now())
}

// Update applies a partial update and returns the merged record.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Meeting, error) {
	m, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("updating meeting: %w", err)
	}
	return m, nil
}

// Delete removes a meeting.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMeetingNotFound
		}
		return fmt.Errorf("deleting meeting: %w", err)
	}
	s.logger.Info("meeting deleted", "meeting_id", id)
	return nil
}
