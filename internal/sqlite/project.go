package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atelier-crm/atelier/internal/domain/project"
	"github.com/atelier-crm/atelier/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db     *DB
	delays repository.Delays
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB, delays repository.Delays) *ProjectRepository {
	return &ProjectRepository{db: db, delays: delays}
}

const projectColumns = `id, client_id, name, description, status, budget, start_date, end_date, images`

// List returns all projects in insertion order
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	repository.Pause(r.delays.List)
	return r.query(ctx, fmt.Sprintf("SELECT %s FROM projects ORDER BY id", projectColumns))
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id int) (*project.Project, error) {
	repository.Pause(r.delays.Get)
	return r.get(ctx, id)
}

func (r *ProjectRepository) get(ctx context.Context, id int) (*project.Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects WHERE id = ?", projectColumns)
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &p, nil
}

// Create inserts a new project, assigning one plus the maximum identity
// present at call time, and sets the assigned ID on p.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	repository.Pause(r.delays.Create)

	images, err := encodeImages(p.Images)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (id, client_id, name, description, status, budget, start_date, end_date, images)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM projects), ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		p.ClientID,
		p.Name,
		p.Description,
		p.Status,
		p.Budget,
		p.StartDate,
		p.EndDate,
		images,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read project id: %w", err)
	}
	p.ID = int(id)
	return nil
}

// Update shallow-merges the supplied fields over the stored row. A supplied
// image list replaces the stored one wholesale.
func (r *ProjectRepository) Update(ctx context.Context, id int, req project.UpdateRequest) (*project.Project, error) {
	repository.Pause(r.delays.Update)

	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)
	if req.ClientID != nil {
		sets = append(sets, "client_id = ?")
		args = append(args, *req.ClientID)
	}
	if req.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *req.Description)
	}
	if req.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *req.Status)
	}
	if req.Budget != nil {
		sets = append(sets, "budget = ?")
		args = append(args, *req.Budget)
	}
	if req.StartDate != nil {
		sets = append(sets, "start_date = ?")
		args = append(args, *req.StartDate)
	}
	if req.EndDate != nil {
		sets = append(sets, "end_date = ?")
		args = append(args, *req.EndDate)
	}
	if req.Images != nil {
		images, err := encodeImages(*req.Images)
		if err != nil {
			return nil, err
		}
		sets = append(sets, "images = ?")
		args = append(args, images)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE projects SET %s WHERE id = ?", strings.Join(sets, ", "))
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to check update: %w", err)
		}
		if affected == 0 {
			return nil, repository.ErrNotFound
		}
	}

	return r.get(ctx, id)
}

// Delete removes a project by ID
func (r *ProjectRepository) Delete(ctx context.Context, id int) error {
	repository.Pause(r.delays.Delete)

	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListByClient returns the projects owned by a client
func (r *ProjectRepository) ListByClient(ctx context.Context, clientID int) ([]project.Project, error) {
	repository.Pause(r.delays.Filter)
	query := fmt.Sprintf("SELECT %s FROM projects WHERE client_id = ? ORDER BY id", projectColumns)
	return r.query(ctx, query, clientID)
}

// ListByStatus returns the projects in one pipeline stage
func (r *ProjectRepository) ListByStatus(ctx context.Context, status project.Status) ([]project.Project, error) {
	repository.Pause(r.delays.Filter)
	query := fmt.Sprintf("SELECT %s FROM projects WHERE status = ? ORDER BY id", projectColumns)
	return r.query(ctx, query, status)
}

func (r *ProjectRepository) query(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func scanProject(row rowScanner) (project.Project, error) {
	var p project.Project
	var startDate, endDate sql.NullTime
	var images string
	err := row.Scan(
		&p.ID,
		&p.ClientID,
		&p.Name,
		&p.Description,
		&p.Status,
		&p.Budget,
		&startDate,
		&endDate,
		&images,
	)
	if err != nil {
		return project.Project{}, err
	}
	if startDate.Valid {
		t := startDate.Time
		p.StartDate = &t
	}
	if endDate.Valid {
		t := endDate.Time
		p.EndDate = &t
	}
	if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
		return project.Project{}, fmt.Errorf("failed to decode images: %w", err)
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p, nil
}

func encodeImages(images []string) (string, error) {
	if images == nil {
		images = []string{}
	}
	data, err := json.Marshal(images)
	if err != nil {
		return "", fmt.Errorf("failed to encode images: %w", err)
	}
	return string(data), nil
}
