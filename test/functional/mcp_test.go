package functional_test

import (
	"context"
	"encoding/json"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/atelier-crm/atelier/internal/mcp"
	"github.com/atelier-crm/atelier/internal/testserver"
)

func callTool(t *testing.T, ts *testserver.TestServer, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()

	result, err := ts.Session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func decode[T any](t *testing.T, content any) T {
	t.Helper()

	data, err := json.Marshal(content)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestListTools(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})

	tools, err := ts.Session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := map[string]bool{}
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{
		"client_create", "client_list", "client_get", "client_update", "client_delete",
		"project_create", "project_list", "project_get", "project_update", "project_move", "project_delete",
		"meeting_create", "meeting_list", "meeting_get", "meeting_update", "meeting_delete",
		"board_view", "dashboard_summary", "calendar_month",
	} {
		require.True(t, names[want], "missing tool %s", want)
	}
}

func TestClientLifecycle(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})

	created := callTool(t, ts, "client_create", map[string]any{
		"name":  "Sarah Mitchell",
		"email": "sarah@example.com",
	})
	require.False(t, created.IsError)
	client := decode[mcp.ClientResult](t, created.StructuredContent)
	require.Equal(t, 1, client.Client.ID)
	require.Equal(t, "Sarah Mitchell", client.Client.Name)

	updated := callTool(t, ts, "client_update", map[string]any{
		"id":    client.Client.ID,
		"phone": "555-0182",
	})
	require.False(t, updated.IsError)
	after := decode[mcp.ClientResult](t, updated.StructuredContent)
	require.Equal(t, "555-0182", after.Client.Phone)
	require.Equal(t, "sarah@example.com", after.Client.Email)

	deleted := callTool(t, ts, "client_delete", map[string]any{"id": client.Client.ID})
	require.False(t, deleted.IsError)

	missing := callTool(t, ts, "client_get", map[string]any{"id": client.Client.ID})
	require.True(t, missing.IsError)
}

func TestProjectMoveUpdatesBoard(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})

	callTool(t, ts, "client_create", map[string]any{"name": "Elena"})
	created := callTool(t, ts, "project_create", map[string]any{
		"client_id": 1,
		"name":      "Beach House",
	})
	require.False(t, created.IsError)
	project := decode[mcp.ProjectResult](t, created.StructuredContent)
	require.Equal(t, "Lead", string(project.Project.Status))

	moved := callTool(t, ts, "project_move", map[string]any{
		"id":     project.Project.ID,
		"status": "In Progress",
	})
	require.False(t, moved.IsError)
	board := decode[mcp.ProjectMoveResult](t, moved.StructuredContent)
	require.NotNil(t, board.Notification)
	require.Equal(t, "success", string(board.Notification.Severity))

	require.Len(t, board.Columns, 4)
	for _, column := range board.Columns {
		if column.Status == "In Progress" {
			require.Len(t, column.Projects, 1)
			require.Equal(t, project.Project.ID, column.Projects[0].ID)
		} else {
			require.Empty(t, column.Projects)
		}
	}
}

func TestProjectMoveToUnknownStageFails(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})

	callTool(t, ts, "client_create", map[string]any{"name": "Elena"})
	callTool(t, ts, "project_create", map[string]any{"client_id": 1, "name": "Casita"})

	moved := callTool(t, ts, "project_move", map[string]any{"id": 1, "status": "Archived"})
	require.False(t, moved.IsError)
	board := decode[mcp.ProjectMoveResult](t, moved.StructuredContent)
	require.NotNil(t, board.Notification)
	require.Equal(t, "error", string(board.Notification.Severity))

	got := callTool(t, ts, "project_get", map[string]any{"id": 1})
	project := decode[mcp.ProjectResult](t, got.StructuredContent)
	require.Equal(t, "Lead", string(project.Project.Status))
}

func TestDashboardSummaryOverSeedData(t *testing.T) {
	ts := testserver.New(t, testserver.Options{Seed: true})

	result := callTool(t, ts, "dashboard_summary", nil)
	require.False(t, result.IsError)
	summary := decode[mcp.DashboardSummaryResult](t, result.StructuredContent)

	require.Equal(t, 6, summary.Summary.Stats.TotalClients)
	require.Equal(t, 8, summary.Summary.Stats.TotalProjects)
	require.Equal(t, 6, summary.Summary.Stats.ActiveProjects)
	require.LessOrEqual(t, len(summary.Summary.RecentProjects), 6)
	require.LessOrEqual(t, len(summary.Summary.UpcomingMeetings), 5)
	for _, m := range summary.Summary.UpcomingMeetings {
		require.NotEmpty(t, m.ClientName)
	}
}

func TestCalendarMonth(t *testing.T) {
	ts := testserver.New(t, testserver.Options{Seed: true})

	result := callTool(t, ts, "calendar_month", map[string]any{"month": "2026-09"})
	require.False(t, result.IsError)
	month := decode[mcp.CalendarMonthResult](t, result.StructuredContent)

	require.Equal(t, 0, len(month.Month.Days)%7)

	meetings := 0
	for _, day := range month.Month.Days {
		meetings += len(day.Meetings)
	}
	require.NotZero(t, meetings)
}

func TestMeetingUpcomingFilter(t *testing.T) {
	ts := testserver.New(t, testserver.Options{Seed: true})

	result := callTool(t, ts, "meeting_list", map[string]any{"upcoming": true})
	require.False(t, result.IsError)
	list := decode[mcp.MeetingListResult](t, result.StructuredContent)

	for i := 1; i < len(list.Meetings); i++ {
		require.False(t, list.Meetings[i].Date.Before(list.Meetings[i-1].Date))
	}
}

func TestUnknownClientShowsPlaceholder(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})

	callTool(t, ts, "client_create", map[string]any{"name": "Ghost"})
	callTool(t, ts, "meeting_create", map[string]any{
		"client_id": 1,
		"date":      "2099-01-01",
	})
	callTool(t, ts, "client_delete", map[string]any{"id": 1})

	result := callTool(t, ts, "dashboard_summary", nil)
	summary := decode[mcp.DashboardSummaryResult](t, result.StructuredContent)
	require.Len(t, summary.Summary.UpcomingMeetings, 1)
	require.Equal(t, "Unknown Client", summary.Summary.UpcomingMeetings[0].ClientName)
	require.Equal(t, "No Project", summary.Summary.UpcomingMeetings[0].ProjectName)
}
