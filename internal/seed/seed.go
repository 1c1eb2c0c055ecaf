// Package seed loads the demo dataset into empty stores. Fixtures reference
// clients and projects by name; the loader resolves those references to the
// identities the stores assign, so the dataset works against any backend.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/domain/project"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Stores collects the repositories the seed loader writes to.
type Stores struct {
	Clients  client.Repository
	Projects project.Repository
	Meetings meeting.Repository
}

type fixtures struct {
	Clients  []clientFixture  `yaml:"clients"`
	Projects []projectFixture `yaml:"projects"`
	Meetings []meetingFixture `yaml:"meetings"`
}

type clientFixture struct {
	Name        string     `yaml:"name"`
	Email       string     `yaml:"email"`
	Phone       string     `yaml:"phone"`
	Address     string     `yaml:"address"`
	Notes       string     `yaml:"notes"`
	CreatedAt   time.Time  `yaml:"created_at"`
	LastContact *time.Time `yaml:"last_contact"`
}

type projectFixture struct {
	Client      string     `yaml:"client"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Status      string     `yaml:"status"`
	Budget      float64    `yaml:"budget"`
	StartDate   *time.Time `yaml:"start_date"`
	EndDate     *time.Time `yaml:"end_date"`
	Images      []string   `yaml:"images"`
}

type meetingFixture struct {
	Client   string    `yaml:"client"`
	Project  string    `yaml:"project"`
	Date     time.Time `yaml:"date"`
	Notes    string    `yaml:"notes"`
	FollowUp string    `yaml:"follow_up"`
}

// Load parses the embedded fixtures and creates them in dependency order:
// clients, then projects, then meetings. Against empty stores the assigned
// identities run 1..n per entity kind.
func Load(ctx context.Context, stores Stores, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	var f fixtures
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return fmt.Errorf("parsing fixtures: %w", err)
	}

	clientIDs := make(map[string]int, len(f.Clients))
	for _, cf := range f.Clients {
		c := client.Client{
			Name:        cf.Name,
			Email:       cf.Email,
			Phone:       cf.Phone,
			Address:     cf.Address,
			Notes:       cf.Notes,
			CreatedAt:   cf.CreatedAt,
			LastContact: cf.LastContact,
		}
		if err := stores.Clients.Create(ctx, &c); err != nil {
			return fmt.Errorf("seeding client %q: %w", cf.Name, err)
		}
		clientIDs[cf.Name] = c.ID
	}

	projectIDs := make(map[string]int, len(f.Projects))
	for _, pf := range f.Projects {
		clientID, ok := clientIDs[pf.Client]
		if !ok {
			return fmt.Errorf("seeding project %q: unknown client %q", pf.Name, pf.Client)
		}
		images := pf.Images
		if images == nil {
			images = []string{}
		}
		p := project.Project{
			ClientID:    clientID,
			Name:        pf.Name,
			Description: pf.Description,
			Status:      project.Status(pf.Status),
			Budget:      pf.Budget,
			StartDate:   pf.StartDate,
			EndDate:     pf.EndDate,
			Images:      images,
		}
		if !p.Status.Valid() {
			return fmt.Errorf("seeding project %q: invalid status %q", pf.Name, pf.Status)
		}
		if err := stores.Projects.Create(ctx, &p); err != nil {
			return fmt.Errorf("seeding project %q: %w", pf.Name, err)
		}
		projectIDs[pf.Name] = p.ID
	}

	for _, mf := range f.Meetings {
		clientID, ok := clientIDs[mf.Client]
		if !ok {
			return fmt.Errorf("seeding meeting on %s: unknown client %q", mf.Date.Format("2006-01-02"), mf.Client)
		}
		projectID := 0
		if mf.Project != "" {
			projectID, ok = projectIDs[mf.Project]
			if !ok {
				return fmt.Errorf("seeding meeting on %s: unknown project %q", mf.Date.Format("2006-01-02"), mf.Project)
			}
		}
		m := meeting.Meeting{
			ClientID:  clientID,
			ProjectID: projectID,
			Date:      mf.Date,
			Notes:     mf.Notes,
			FollowUp:  mf.FollowUp,
		}
		if err := stores.Meetings.Create(ctx, &m); err != nil {
			return fmt.Errorf("seeding meeting on %s: %w", mf.Date.Format("2006-01-02"), err)
		}
	}

	logger.Info("seed data loaded",
		"clients", len(f.Clients),
		"projects", len(f.Projects),
		"meetings", len(f.Meetings))
	return nil
}
