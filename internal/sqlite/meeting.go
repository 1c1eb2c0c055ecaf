package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/repository"
)

// MeetingRepository implements meeting.Repository for SQLite
type MeetingRepository struct {
	db     *DB
	delays repository.Delays
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *DB, delays repository.Delays) *MeetingRepository {
	return &MeetingRepository{db: db, delays: delays}
}

const meetingColumns = `id, client_id, project_id, date, notes, follow_up`

// List returns all meetings in insertion order
func (r *MeetingRepository) List(ctx context.Context) ([]meeting.Meeting, error) {
	repository.Pause(r.delays.List)
	return r.query(ctx, fmt.Sprintf("SELECT %s FROM meetings ORDER BY id", meetingColumns))
}

// Get retrieves a meeting by ID
func (r *MeetingRepository) Get(ctx context.Context, id int) (*meeting.Meeting, error) {
	repository.Pause(r.delays.Get)
	return r.get(ctx, id)
}

func (r *MeetingRepository) get(ctx context.Context, id int) (*meeting.Meeting, error) {
	query := fmt.Sprintf("SELECT %s FROM meetings WHERE id = ?", meetingColumns)
	row := r.db.QueryRowContext(ctx, query, id)
	m, err := scanMeeting(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return &m, nil
}

// Create inserts a new meeting, assigning one plus the maximum identity
// present at call time, and sets the assigned ID on m.
func (r *MeetingRepository) Create(ctx context.Context, m *meeting.Meeting) error {
	repository.Pause(r.delays.Create)

	query := `
		INSERT INTO meetings (id, client_id, project_id, date, notes, follow_up)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM meetings), ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		m.ClientID,
		m.ProjectID,
		m.Date,
		m.Notes,
		m.FollowUp,
	)
	if err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read meeting id: %w", err)
	}
	m.ID = int(id)
	return nil
}

// Update shallow-merges the supplied fields over the stored row
func (r *MeetingRepository) Update(ctx context.Context, id int, req meeting.UpdateRequest) (*meeting.Meeting, error) {
	repository.Pause(r.delays.Update)

	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	if req.ClientID != nil {
		sets = append(sets, "client_id = ?")
		args = append(args, *req.ClientID)
	}
	if req.ProjectID != nil {
		sets = append(sets, "project_id = ?")
		args = append(args, *req.ProjectID)
	}
	if req.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *req.Date)
	}
	if req.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *req.Notes)
	}
	if req.FollowUp != nil {
		sets = append(sets, "follow_up = ?")
		args = append(args, *req.FollowUp)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE meetings SET %s WHERE id = ?", strings.Join(sets, ", "))
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to update meeting: %w", err)
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

// Delete removes a meeting by ID
func (r *MeetingRepository) Delete(ctx context.Context, id int) error {
	repository.Pause(r.delays.Delete)

	res, err := r.db.ExecContext(ctx, `DELETE FROM meetings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
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

// ListByClient returns the meetings for a client
func (r *MeetingRepository) ListByClient(ctx context.Context, clientID int) ([]meeting.Meeting, error) {
	repository.Pause(r.delays.Filter)
	query := fmt.Sprintf("SELECT %s FROM meetings WHERE client_id = ? ORDER BY id", meetingColumns)
	return r.query(ctx, query, clientID)
}

// ListByProject returns the meetings linked to a project
func (r *MeetingRepository) ListByProject(ctx context.Context, projectID int) ([]meeting.Meeting, error) {
	repository.Pause(r.delays.Filter)
	query := fmt.Sprintf("SELECT %s FROM meetings WHERE project_id = ? ORDER BY id", meetingColumns)
	return r.query(ctx, query, projectID)
}

// ListUpcoming returns meetings at or after from, soonest first
func (r *MeetingRepository) ListUpcoming(ctx context.Context, from time.Time) ([]meeting.Meeting, error) {
	repository.Pause(r.delays.Filter)
	query := fmt.Sprintf("SELECT %s FROM meetings WHERE date >= ? ORDER BY date", meetingColumns)
	return r.query(ctx, query, from)
}

func (r *MeetingRepository) query(ctx context.Context, query string, args ...any) ([]meeting.Meeting, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	meetings := make([]meeting.Meeting, 0)
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

func scanMeeting(row rowScanner) (meeting.Meeting, error) {
	var m meeting.Meeting
	err := row.Scan(
		&m.ID,
		&m.ClientID,
		&m.ProjectID,
		&m.Date,
		&m.Notes,
		&m.FollowUp,
	)
	if err != nil {
		return meeting.Meeting{}, err
	}
	return m, nil
}
