// Package mcp exposes the CRM over the Model Context Protocol: CRUD tools
// for clients, projects, and meetings, plus the board, dashboard, and
// calendar views.
package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atelier-crm/atelier/internal/domain/board"
	"github.com/atelier-crm/atelier/internal/domain/calendar"
	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/dashboard"
	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/domain/project"
)

// ClientService defines client operations needed by MCP.
type ClientService interface {
	Create(ctx context.Context, req client.CreateRequest) (*client.Client, error)
	List(ctx context.Context) ([]client.Client, error)
	Get(ctx context.Context, id int) (*client.Client, error)
	Update(ctx context.Context, id int, req client.UpdateRequest) (*client.Client, error)
	Delete(ctx context.Context, id int) error
}

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
	ListByClient(ctx context.Context, clientID int) ([]project.Project, error)
	ListByStatus(ctx context.Context, status project.Status) ([]project.Project, error)
	Get(ctx context.Context, id int) (*project.Project, error)
	Update(ctx context.Context, id int, req project.UpdateRequest) (*project.Project, error)
	Delete(ctx context.Context, id int) error
}

// MeetingService defines meeting operations needed by MCP.
type MeetingService interface {
	Create(ctx context.Context, req meeting.CreateRequest) (*meeting.Meeting, error)
	List(ctx context.Context) ([]meeting.Meeting, error)
	ListByClient(ctx context.Context, clientID int) ([]meeting.Meeting, error)
	ListByProject(ctx context.Context, projectID int) ([]meeting.Meeting, error)
	ListUpcoming(ctx context.Context) ([]meeting.Meeting, error)
	Get(ctx context.Context, id int) (*meeting.Meeting, error)
	Update(ctx context.Context, id int, req meeting.UpdateRequest) (*meeting.Meeting, error)
	Delete(ctx context.Context, id int) error
}

// DashboardService builds the landing-page summary.
type DashboardService interface {
	Summary(ctx context.Context) (*dashboard.Summary, error)
}

// CalendarService builds calendar views.
type CalendarService interface {
	Month(ctx context.Context, ref time.Time) (*calendar.Month, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Clients   ClientService
	Projects  ProjectService
	Meetings  MeetingService
	Dashboard DashboardService
	Calendar  CalendarService
	Board     *board.Controller
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "atelier",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
