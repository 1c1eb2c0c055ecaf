// Package dashboard assembles the landing-page summary: headline counters,
// the most recent projects and clients, and upcoming meetings joined with
// their client and project names.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/domain/project"
)

const (
	recentLimit   = 6
	upcomingLimit = 5
)

// ClientLister lists clients for the dashboard.
type ClientLister interface {
	List(ctx context.Context) ([]client.Client, error)
}

// ProjectLister lists projects for the dashboard.
type ProjectLister interface {
	List(ctx context.Context) ([]project.Project, error)
}

// MeetingLister lists meetings for the dashboard.
type MeetingLister interface {
	List(ctx context.Context) ([]meeting.Meeting, error)
}

// Service builds dashboard summaries.
type Service struct {
	clients  ClientLister
	projects ProjectLister
	meetings MeetingLister
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a dashboard service.
func NewService(clients ClientLister, projects ProjectLister, meetings MeetingLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		clients:  clients,
		projects: projects,
		meetings: meetings,
		logger:   logger,
		now:      time.Now,
	}
}

// Summary fetches all three stores concurrently and assembles the dashboard
// payload. If any fetch fails the whole summary fails; a dashboard built
// from a partial snapshot would show inconsistent counters.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var (
		clients  []client.Client
		projects []project.Project
		meetings []meeting.Meeting
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = s.clients.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.projects.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		meetings, err = s.meetings.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading dashboard: %w", err)
	}

	now := s.now()
	upcoming := meeting.Upcoming(meetings, now)
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}

	overviews := make([]MeetingOverview, 0, len(upcoming))
	for _, m := range upcoming {
		overviews = append(overviews, MeetingOverview{
			Meeting:     m.Clone(),
			ClientName:  ClientName(clients, m.ClientID),
			ProjectName: ProjectName(projects, m.ProjectID),
		})
	}

	summary := &Summary{
		Stats: Stats{
			TotalProjects:    len(projects),
			ActiveProjects:   CountActive(projects),
			TotalClients:     len(clients),
			UpcomingMeetings: len(meeting.Upcoming(meetings, now)),
		},
		RecentProjects:   recentProjects(projects, recentLimit),
		RecentClients:    recentClients(clients, recentLimit),
		UpcomingMeetings: overviews,
		GeneratedAt:      now,
	}

	s.logger.Debug("dashboard summary assembled",
		"clients", summary.Stats.TotalClients,
		"projects", summary.Stats.TotalProjects,
		"upcoming", summary.Stats.UpcomingMeetings)
	return summary, nil
}

// recentProjects returns up to limit projects, newest first. Identities are
// assigned in increasing order, so the tail of the insertion-ordered list is
// the newest.
func recentProjects(projects []project.Project, limit int) []project.Project {
	out := make([]project.Project, 0, limit)
	for i := len(projects) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, projects[i].Clone())
	}
	return out
}

func recentClients(clients []client.Client, limit int) []client.Client {
	out := make([]client.Client, 0, limit)
	for i := len(clients) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, clients[i].Clone())
	}
	return out
}
