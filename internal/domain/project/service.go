package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atelier-crm/atelier/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ClientID    int
	Name        string
	Description string
	Status      Status
	Budget      float64
	StartDate   *time.Time
	EndDate     *time.Time
	Images      []string
}

// UpdateRequest defines a partial project update. Nil fields retain their
// stored value. Images, when supplied, replaces the stored list wholesale:
// the merge is shallow at the top level only.
type UpdateRequest struct {
	ClientID    *int
	Name        *string
	Description *string
	Status      *Status
	Budget      *float64
	StartDate   *time.Time
	EndDate     *time.Time
	Images      *[]string
}

// Create adds a new project. An omitted status defaults to Lead, and the
// image list is never stored nil.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}
	if req.Budget < 0 {
		return nil, ErrInvalidInput
	}

	status := req.Status
	if status == "" {
		status = StatusLead
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	p := Project{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Images:      images,
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "project_id", p.ID, "status", p.Status)
	return &p, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id int) (*Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return p, nil
}

// List returns every project.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

// ListByClient returns the projects owned by a client. No match is an empty
// list, not an error.
func (s *Service) ListByClient(ctx context.Context, clientID int) ([]Project, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// ListByStatus returns the projects in one pipeline stage.
func (s *Service) ListByStatus(ctx context.Context, status Status) ([]Project, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListByStatus(ctx, status)
}

// Update applies a partial update and returns the merged record. A supplied
// status must be one of the four pipeline stages.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Project, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if req.Budget != nil && *req.Budget < 0 {
		return nil, ErrInvalidInput
	}

	p, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return p, nil
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	s.logger.Info("project deleted", "project_id", id)
	return nil
}
