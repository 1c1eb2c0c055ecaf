package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atelier-crm/atelier/internal/repository"
)

// Service handles client operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new client service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// CreateRequest defines client creation inputs.
type CreateRequest struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// UpdateRequest defines a partial client update. Nil fields retain their
// stored value; the merge is shallow and applies at the top level only.
type UpdateRequest struct {
	Name        *string
	Email       *string
	Phone       *string
	Address     *string
	Notes       *string
	LastContact *time.Time
}

// Create adds a new client. The store assigns the identity; creation
// defaults (created_at, empty last contact) are applied here.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Client, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	c := Client{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Notes:     req.Notes,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	s.logger.Info("client created", "client_id", c.ID, "name", c.Name)
	return &c, nil
}

// Get fetches a client by ID.
func (s *Service) Get(ctx context.Context, id int) (*Client, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("getting client: %w", err)
	}
	return c, nil
}

// List returns every client.
func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update and returns the merged record.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Client, error) {
	c, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("updating client: %w", err)
	}
	return c, nil
}

// Delete removes a client. Projects and meetings referencing it are left in
// place; their references degrade to a placeholder at join time.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("deleting client: %w", err)
	}
	s.logger.Info("client deleted", "client_id", id)
	return nil
}
