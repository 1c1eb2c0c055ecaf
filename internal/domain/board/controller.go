// Package board implements the pipeline board: the drag lifecycle for moving
// a project between pipeline stages, the optimistic update against the
// project store, and the rollback protocol when persistence fails.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/project"
)

// ProjectService defines project operations needed by the board.
type ProjectService interface {
	List(ctx context.Context) ([]project.Project, error)
	Update(ctx context.Context, id int, req project.UpdateRequest) (*project.Project, error)
}

// ClientService defines client operations needed by the board.
type ClientService interface {
	List(ctx context.Context) ([]client.Client, error)
}

// Column is one pipeline stage and the projects currently in it.
type Column struct {
	Status   project.Status    `json:"status"`
	Projects []project.Project `json:"projects"`
}

type dragState struct {
	projectID int
	origin    project.Status
}

// Controller owns the board's display list and the drag lifecycle. At most
// one project is dragged at a time; starting a new drag replaces any drag
// already in progress.
type Controller struct {
	projectSvc ProjectService
	clientSvc  ClientService
	notifier   Notifier
	logger     *slog.Logger

	mu       sync.Mutex
	projects []project.Project
	clients  []client.Client
	drag     *dragState
}

// NewController creates a board controller. A nil notifier falls back to
// logging notifications.
func NewController(projects ProjectService, clients ClientService, notifier Notifier, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = LogNotifier{Logger: logger}
	}
	return &Controller{
		projectSvc: projects,
		clientSvc:  clients,
		notifier:   notifier,
		logger:     logger,
	}
}

// Load fetches projects and clients concurrently and replaces the display
// list. If either fetch fails the board keeps its previous contents and the
// load reports failure; no partial board is ever shown.
func (c *Controller) Load(ctx context.Context) error {
	var (
		projects []project.Project
		clients  []client.Client
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = c.projectSvc.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		clients, err = c.clientSvc.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.projects = projects
	c.clients = clients
	return nil
}

// DragStart picks up a card. The project's identity and current status are
// recorded; an unknown identity leaves the drag slot empty.
func (c *Controller) DragStart(projectID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.drag = nil
	for _, p := range c.projects {
		if p.ID == projectID {
			c.drag = &dragState{projectID: projectID, origin: p.Status}
			return
		}
	}
}

// Dragging returns the identity of the project being dragged, if any.
func (c *Controller) Dragging() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drag == nil {
		return 0, false
	}
	return c.drag.projectID, true
}

// Drop releases the dragged card onto a column. Dropping onto the card's
// current column is a no-op with no store call. Otherwise the display list
// is updated optimistically before the store call resolves; if persistence
// fails, the prior status is restored so the board never shows an
// unpersisted stage. The drag slot is cleared in every case.
func (c *Controller) Drop(ctx context.Context, target project.Status) *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	drag := c.drag
	c.drag = nil
	if drag == nil {
		return nil
	}

	idx := -1
	for i := range c.projects {
		if c.projects[i].ID == drag.projectID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c.fail("Project is no longer on the board")
	}

	current := c.projects[idx].Status
	if current == target {
		return nil
	}
	if !target.Valid() {
		return c.fail("Unknown pipeline stage")
	}

	c.projects[idx].Status = target

	if _, err := c.projectSvc.Update(ctx, drag.projectID, project.UpdateRequest{Status: &target}); err != nil {
		c.projects[idx].Status = current
		c.logger.Error("project move failed", "project_id", drag.projectID, "target", target, "error", err)
		return c.fail("Failed to update project status")
	}

	c.logger.Info("project moved", "project_id", drag.projectID, "from", current, "to", target)
	n := newNotification(SeveritySuccess, fmt.Sprintf("Project moved to %s", target))
	c.notifier.Notify(n)
	return &n
}

func (c *Controller) fail(message string) *Notification {
	n := newNotification(SeverityError, message)
	c.notifier.Notify(n)
	return &n
}

// Columns partitions the display list by pipeline stage. The partition is
// derived from the live list on every call, so a project can never appear in
// two columns at once.
func (c *Controller) Columns() []Column {
	c.mu.Lock()
	defer c.mu.Unlock()

	buckets := project.PartitionByStatus(c.projects)
	columns := make([]Column, 0, len(buckets))
	for _, status := range project.Statuses() {
		bucket := buckets[status]
		projects := make([]project.Project, 0, len(bucket))
		for _, p := range bucket {
			projects = append(projects, p.Clone())
		}
		columns = append(columns, Column{Status: status, Projects: projects})
	}
	return columns
}

// Projects returns a copy of the display list.
func (c *Controller) Projects() []project.Project {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]project.Project, 0, len(c.projects))
	for _, p := range c.projects {
		out = append(out, p.Clone())
	}
	return out
}

// ClientName resolves a project's owner for display. An unresolved reference
// degrades to a placeholder, never an error.
func (c *Controller) ClientName(clientID int) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, cl := range c.clients {
		if cl.ID == clientID {
			return cl.Name
		}
	}
	return "Unknown Client"
}
