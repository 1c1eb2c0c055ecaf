package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/repository"
)

// ClientRepository implements client.Repository for SQLite
type ClientRepository struct {
	db     *DB
	delays repository.Delays
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *DB, delays repository.Delays) *ClientRepository {
	return &ClientRepository{db: db, delays: delays}
}

// List returns all clients in insertion order
func (r *ClientRepository) List(ctx context.Context) ([]client.Client, error) {
	repository.Pause(r.delays.List)

	query := `
		SELECT id, name, email, phone, address, notes, created_at, last_contact
		FROM clients
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]client.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// Get retrieves a client by ID
func (r *ClientRepository) Get(ctx context.Context, id int) (*client.Client, error) {
	repository.Pause(r.delays.Get)
	return r.get(ctx, id)
}

func (r *ClientRepository) get(ctx context.Context, id int) (*client.Client, error) {
	query := `
		SELECT id, name, email, phone, address, notes, created_at, last_contact
		FROM clients
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	c, err := scanClient(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &c, nil
}

// Create inserts a new client, assigning one plus the maximum identity
// present at call time, and sets the assigned ID on c.
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	repository.Pause(r.delays.Create)

	query := `
		INSERT INTO clients (id, name, email, phone, address, notes, created_at, last_contact)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM clients), ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.Notes,
		c.CreatedAt,
		c.LastContact,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read client id: %w", err)
	}
	c.ID = int(id)
	return nil
}

// Update shallow-merges the supplied fields over the stored row
func (r *ClientRepository) Update(ctx context.Context, id int, req client.UpdateRequest) (*client.Client, error) {
	repository.Pause(r.delays.Update)

	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	if req.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *req.Email)
	}
	if req.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *req.Phone)
	}
	if req.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, *req.Address)
	}
	if req.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *req.Notes)
	}
	if req.LastContact != nil {
		sets = append(sets, "last_contact = ?")
		args = append(args, *req.LastContact)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE clients SET %s WHERE id = ?", strings.Join(sets, ", "))
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to update client: %w", err)
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

// Delete removes a client by ID
func (r *ClientRepository) Delete(ctx context.Context, id int) error {
	repository.Pause(r.delays.Delete)

	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (client.Client, error) {
	var c client.Client
	var lastContact sql.NullTime
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.Notes,
		&c.CreatedAt,
		&lastContact,
	)
	if err != nil {
		return client.Client{}, err
	}
	if lastContact.Valid {
		t := lastContact.Time
		c.LastContact = &t
	}
	return c, nil
}
