package mcp

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/domain/project"
)

// registerTools wires every tool to its domain service.
func registerTools(server *sdkmcp.Server, services Services) {
	registerClientTools(server, services)
	registerProjectTools(server, services)
	registerMeetingTools(server, services)
	registerViewTools(server, services)
}

func registerClientTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "client_create",
		Description: "Create a new client",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ClientCreateParams) (*sdkmcp.CallToolResult, ClientResult, error) {
		c, err := services.Clients.Create(ctx, client.CreateRequest{
			Name:    in.Name,
			Email:   in.Email,
			Phone:   in.Phone,
			Address: in.Address,
			Notes:   in.Notes,
		})
		if err != nil {
			return nil, ClientResult{}, MapError(err)
		}
		return nil, ClientResult{Client: *c}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "client_list",
		Description: "List all clients in insertion order",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ClientListParams) (*sdkmcp.CallToolResult, ClientListResult, error) {
		clients, err := services.Clients.List(ctx)
		if err != nil {
			return nil, ClientListResult{}, MapError(err)
		}
		return nil, ClientListResult{Clients: clients}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "client_get",
		Description: "Get a client by id",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ClientGetParams) (*sdkmcp.CallToolResult, ClientResult, error) {
		c, err := services.Clients.Get(ctx, in.ID)
		if err != nil {
			return nil, ClientResult{}, MapError(err)
		}
		return nil, ClientResult{Client: *c}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "client_update",
		Description: "Update a client; omitted fields keep their stored value",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ClientUpdateParams) (*sdkmcp.CallToolResult, ClientResult, error) {
		lastContact, err := parseOptionalDate(in.LastContact)
		if err != nil {
			return nil, ClientResult{}, &APIError{Code: "INVALID_INPUT", Message: err.Error()}
		}
		c, err := services.Clients.Update(ctx, in.ID, client.UpdateRequest{
			Name:        in.Name,
			Email:       in.Email,
			Phone:       in.Phone,
			Address:     in.Address,
			Notes:       in.Notes,
			LastContact: lastContact,
		})
		if err != nil {
			return nil, ClientResult{}, MapError(err)
		}
		return nil, ClientResult{Client: *c}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "client_delete",
		Description: "Delete a client; their projects and meetings remain and show a placeholder name",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ClientDeleteParams) (*sdkmcp.CallToolResult, DeleteResult, error) {
		if err := services.Clients.Delete(ctx, in.ID); err != nil {
			return nil, DeleteResult{}, MapError(err)
		}
		return nil, DeleteResult{Deleted: true, ID: in.ID}, nil
	})
}

func registerProjectTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_create",
		Description: "Create a new project; status defaults to Lead",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectCreateParams) (*sdkmcp.CallToolResult, ProjectResult, error) {
		startDate, err := parseOptionalDate(in.StartDate)
		if err != nil {
			return nil, ProjectResult{}, &APIError{Code: "INVALID_INPUT", Message: err.Error()}
		}
		endDate, err := parseOptionalDate(in.EndDate)
		if err != nil {
			return nil, ProjectResult{}, &APIError{Code: "INVALID_INPUT", Message: err.Error()}
		}
		p, err := services.Projects.Create(ctx, project.CreateRequest{
			ClientID:    in.ClientID,
			Name:        in.Name,
			Description: in.Description,
			Status:      project.Status(in.Status),
			Budget:      in.Budget,
			StartDate:   startDate,
			EndDate:     endDate,
			Images:      in.Images,
		})
		if err != nil {
			return nil, ProjectResult{}, MapError(err)
		}
		return nil, ProjectResult{Project: *p}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_list",
		Description: "List projects, optionally filtered by client or pipeline stage",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectListParams) (*sdkmcp.CallToolResult, ProjectListResult, error) {
		var (
			projects []project.Project
			err      error
		)
		switch {
		case in.Status != "":
			projects, err = services.Projects.ListByStatus(ctx, project.Status(in.Status))
		case in.ClientID != nil:
			projects, err = services.Projects.ListByClient(ctx, *in.ClientID)
		default:
			projects, err = services.Projects.List(ctx)
		}
		if err != nil {
			return nil, ProjectListResult{}, MapError(err)
		}
		return nil, ProjectListResult{Projects: projects}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_get",
		Description: "Get a project by id",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectGetParams) (*sdkmcp.CallToolResult, ProjectResult, error) {
		p, err := services.Projects.Get(ctx, in.ID)
		if err != nil {
			return nil, ProjectResult{}, MapError(err)
		}
		return nil, ProjectResult{Project: *p}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_update",
		Description: "Update a project; omitted fields keep their stored value, a supplied image list replaces the stored one",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectUpdateParams) (*sdkmcp.CallToolResult, ProjectResult, error) {
		startDate, err := parseOptionalDate(in.StartDate)
		if err != nil {
			return nil, ProjectResult{}, &APIError{Code: "INVALID_INPUT", Message: err.Error()}
		}
		endDate, err := parseOptionalDate(in.EndDate)
		if err != nil {
			return nil, ProjectResult{}, &APIError{Code: "INVALID_INPUT", Message: err.Error()}
		}
		req := project.UpdateRequest{
			ClientID:    in.ClientID,
			Name:        in.Name,
			Description: in.Description,
			Budget:      in.Budget,
			StartDate:   startDate,
			EndDate:     endDate,
			Images:      in.Images,
		}
		if in.Status != nil {
			status := project.Status(*in.Status)
			req.Status = &status
		}
		p, err := services.Projects.Update(ctx, in.ID, req)
		if err != nil {
			return nil, ProjectResult{}, MapError(err)
		}
		return nil, ProjectResult{Project: *p}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_move",
		Description: "Move a project to another pipeline stage and return the updated board",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectMoveParams) (*sdkmcp.CallToolResult, ProjectMoveResult, error) {
		if err := services.Board.Load(ctx); err != nil {
			return nil, ProjectMoveResult{}, MapError(err)
		}
		services.Board.DragStart(in.ID)
		notification := services.Board.Drop(ctx, project.Status(in.Status))
		return nil, ProjectMoveResult{
			Columns:      services.Board.Columns(),
			Notification: notification,
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_delete",
		Description: "Delete a project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectDeleteParams) (*sdkmcp.CallToolResult, DeleteResult, error) {
		if err := services.Projects.Delete(ctx, in.ID); err != nil {
			return nil, DeleteResult{}, MapError(err)
		}
		return nil, DeleteResult{Deleted: true, ID: in.ID}, nil
	})
}

func registerMeetingTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "meeting_create",
		Description: "Schedule a meeting with a client, optionally linked to a project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in MeetingCreateParams) (*sdkmcp.CallToolResult, MeetingResult, error) {
		date, err := parseDate(in.Date)
		if err != nil {
			return nil, MeetingResult{}, &APIError{Code: "INVALID_INPUT", Message: err.Error()}
		}
		m, err := services.Meetings.Create(ctx, meeting.CreateRequest{
			ClientID:  in.ClientID,
			ProjectID: in.ProjectID,
			Date:      date,
			Notes:     in.Notes,
			FollowUp:  in.FollowUp,
		})
		if err != nil {
			return nil, MeetingResult{}, MapError(err)
		}
		return nil, MeetingResult{Meeting: *m}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "meeting_list",
		Description: "List meetings, optionally filtered by client, project, or upcoming only",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in MeetingListParams) (*sdkmcp.CallToolResult, MeetingListResult, error) {
		var (
			meetings []meeting.Meeting
			err      error
		)
		switch {
		case in.Upcoming:
			meetings, err = services.Meetings.ListUpcoming(ctx)
		case in.ClientID != nil:
			meetings, err = services.Meetings.ListByClient(ctx, *in.ClientID)
		case in.ProjectID != nil:
			meetings, err = services.Meetings.ListByProject(ctx, *in.ProjectID)
		default:
			meetings, err = services.Meetings.List(ctx)
		}
		if err != nil {
			return nil, MeetingListResult{}, MapError(err)
		}
		return nil, MeetingListResult{Meetings: meetings}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "meeting_get",
		Description: "Get a meeting by id",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in MeetingGetParams) (*sdkmcp.CallToolResult, MeetingResult, error) {
		m, err := services.Meetings.Get(ctx, in.ID)
		if err != nil {
			return nil, MeetingResult{}, MapError(err)
		}
		return nil, MeetingResult{Meeting: *m}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "meeting_update",
		Description: "Update a meeting; omitted fields keep their stored value",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in MeetingUpdateParams) (*sdkmcp.CallToolResult, MeetingResult, error) {
		date, err := parseOptionalDate(in.Date)
		if err != nil {
			return nil, MeetingResult{}, &APIError{Code: "INVALID_INPUT", Message: err.Error()}
		}
		m, err := services.Meetings.Update(ctx, in.ID, meeting.UpdateRequest{
			ClientID:  in.ClientID,
			ProjectID: in.ProjectID,
			Date:      date,
			Notes:     in.Notes,
			FollowUp:  in.FollowUp,
		})
		if err != nil {
			return nil, MeetingResult{}, MapError(err)
		}
		return nil, MeetingResult{Meeting: *m}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "meeting_delete",
		Description: "Delete a meeting",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in MeetingDeleteParams) (*sdkmcp.CallToolResult, DeleteResult, error) {
		if err := services.Meetings.Delete(ctx, in.ID); err != nil {
			return nil, DeleteResult{}, MapError(err)
		}
		return nil, DeleteResult{Deleted: true, ID: in.ID}, nil
	})
}

func registerViewTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "board_view",
		Description: "Show the pipeline board: every project grouped into its stage column",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ BoardViewParams) (*sdkmcp.CallToolResult, BoardViewResult, error) {
		if err := services.Board.Load(ctx); err != nil {
			return nil, BoardViewResult{}, MapError(err)
		}
		return nil, BoardViewResult{Columns: services.Board.Columns()}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "dashboard_summary",
		Description: "Show the dashboard: headline counts, recent projects and clients, and upcoming meetings",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ DashboardSummaryParams) (*sdkmcp.CallToolResult, DashboardSummaryResult, error) {
		summary, err := services.Dashboard.Summary(ctx)
		if err != nil {
			return nil, DashboardSummaryResult{}, MapError(err)
		}
		return nil, DashboardSummaryResult{Summary: *summary}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "calendar_month",
		Description: "Show a month of meetings as a calendar grid of whole weeks",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in CalendarMonthParams) (*sdkmcp.CallToolResult, CalendarMonthResult, error) {
		ref := time.Now()
		if in.Month != "" {
			parsed, err := time.Parse("2006-01", in.Month)
			if err != nil {
				return nil, CalendarMonthResult{}, &APIError{Code: "INVALID_INPUT", Message: "invalid month: use YYYY-MM"}
			}
			ref = parsed
		}
		month, err := services.Calendar.Month(ctx, ref)
		if err != nil {
			return nil, CalendarMonthResult{}, MapError(err)
		}
		return nil, CalendarMonthResult{Month: *month}, nil
	})
}
