package board_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atelier-crm/atelier/internal/domain/board"
	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/project"
)

type projectService struct {
	mock.Mock
}

func (m *projectService) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *projectService) Update(ctx context.Context, id int, req project.UpdateRequest) (*project.Project, error) {
	args := m.Called(ctx, id, req)
	if p, ok := args.Get(0).(*project.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type clientService struct {
	mock.Mock
}

func (m *clientService) List(ctx context.Context) ([]client.Client, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]client.Client); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func boardProjects() []project.Project {
	return []project.Project{
		{ID: 1, ClientID: 1, Name: "Lobby", Status: project.StatusLead, Images: []string{}},
		{ID: 2, ClientID: 2, Name: "Beach House", Status: project.StatusInProgress, Images: []string{}},
		{ID: 3, ClientID: 1, Name: "Nursery", Status: project.StatusDesign, Images: []string{}},
	}
}

func loadedController(t *testing.T) (*board.Controller, *projectService) {
	t.Helper()

	projects := &projectService{}
	clients := &clientService{}
	projects.On("List", mock.Anything).Return(boardProjects(), nil)
	clients.On("List", mock.Anything).Return([]client.Client{{ID: 1, Name: "Sarah"}}, nil)

	ctrl := board.NewController(projects, clients, nil, nil)
	require.NoError(t, ctrl.Load(context.Background()))
	return ctrl, projects
}

func statusOf(t *testing.T, ctrl *board.Controller, id int) project.Status {
	t.Helper()
	for _, p := range ctrl.Projects() {
		if p.ID == id {
			return p.Status
		}
	}
	t.Fatalf("project %d not on board", id)
	return ""
}

func TestControllerLoad_FailsAsAWhole(t *testing.T) {
	projects := &projectService{}
	clients := &clientService{}
	projects.On("List", mock.Anything).Return(nil, errors.New("boom"))
	clients.On("List", mock.Anything).Return([]client.Client{}, nil)

	ctrl := board.NewController(projects, clients, nil, nil)
	require.Error(t, ctrl.Load(context.Background()))
	require.Empty(t, ctrl.Projects())
}

func TestControllerDrop_WithoutDragIsNoOp(t *testing.T) {
	ctrl, projects := loadedController(t)

	n := ctrl.Drop(context.Background(), project.StatusDesign)
	require.Nil(t, n)
	projects.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestControllerDragStart_UnknownIDLeavesSlotEmpty(t *testing.T) {
	ctrl, projects := loadedController(t)

	ctrl.DragStart(99)
	_, dragging := ctrl.Dragging()
	require.False(t, dragging)

	n := ctrl.Drop(context.Background(), project.StatusDesign)
	require.Nil(t, n)
	projects.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestControllerDrop_SameColumnSkipsStore(t *testing.T) {
	ctrl, projects := loadedController(t)

	ctrl.DragStart(1)
	n := ctrl.Drop(context.Background(), project.StatusLead)
	require.Nil(t, n)

	_, dragging := ctrl.Dragging()
	require.False(t, dragging)
	projects.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestControllerDrop_MovesAndNotifies(t *testing.T) {
	ctrl, projects := loadedController(t)

	design := project.StatusDesign
	moved := project.Project{ID: 1, ClientID: 1, Name: "Lobby", Status: design, Images: []string{}}
	projects.On("Update", mock.Anything, 1, project.UpdateRequest{Status: &design}).Return(&moved, nil)

	ctrl.DragStart(1)
	n := ctrl.Drop(context.Background(), design)
	require.NotNil(t, n)
	require.Equal(t, board.SeveritySuccess, n.Severity)
	require.Contains(t, n.Message, "Design")
	require.Equal(t, design, statusOf(t, ctrl, 1))
}

func TestControllerDrop_RollsBackWhenStoreFails(t *testing.T) {
	ctrl, projects := loadedController(t)

	design := project.StatusDesign
	projects.On("Update", mock.Anything, 1, mock.Anything).Return(nil, errors.New("store down"))

	ctrl.DragStart(1)
	n := ctrl.Drop(context.Background(), design)
	require.NotNil(t, n)
	require.Equal(t, board.SeverityError, n.Severity)
	require.Equal(t, project.StatusLead, statusOf(t, ctrl, 1))
}

func TestControllerDrop_InvalidTargetSkipsStore(t *testing.T) {
	ctrl, projects := loadedController(t)

	ctrl.DragStart(1)
	n := ctrl.Drop(context.Background(), "Archived")
	require.NotNil(t, n)
	require.Equal(t, board.SeverityError, n.Severity)
	require.Equal(t, project.StatusLead, statusOf(t, ctrl, 1))
	projects.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestControllerDragStart_LastWriterWins(t *testing.T) {
	ctrl, projects := loadedController(t)

	complete := project.StatusComplete
	moved := project.Project{ID: 2, Status: complete, Images: []string{}}
	projects.On("Update", mock.Anything, 2, project.UpdateRequest{Status: &complete}).Return(&moved, nil)

	ctrl.DragStart(1)
	ctrl.DragStart(2)
	id, dragging := ctrl.Dragging()
	require.True(t, dragging)
	require.Equal(t, 2, id)

	n := ctrl.Drop(context.Background(), complete)
	require.NotNil(t, n)
	require.Equal(t, board.SeveritySuccess, n.Severity)
	require.Equal(t, project.StatusLead, statusOf(t, ctrl, 1))
	require.Equal(t, complete, statusOf(t, ctrl, 2))
}

func TestControllerColumns_AlwaysFourDisjoint(t *testing.T) {
	ctrl, _ := loadedController(t)

	columns := ctrl.Columns()
	require.Len(t, columns, 4)

	seen := map[int]bool{}
	total := 0
	for i, column := range columns {
		require.Equal(t, project.Statuses()[i], column.Status)
		require.NotNil(t, column.Projects)
		for _, p := range column.Projects {
			require.False(t, seen[p.ID], "project %d in two columns", p.ID)
			seen[p.ID] = true
			total++
		}
	}
	require.Equal(t, 3, total)
}

func TestControllerClientName_FallsBackToPlaceholder(t *testing.T) {
	ctrl, _ := loadedController(t)

	require.Equal(t, "Sarah", ctrl.ClientName(1))
	require.Equal(t, "Unknown Client", ctrl.ClientName(42))
}
