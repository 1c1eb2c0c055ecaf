package mocks

import (
	"context"
	"time"

	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// ClientRepository is a mock for repository.ClientRepository.
type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) List(ctx context.Context) ([]client.Client, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]client.Client); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) Get(ctx context.Context, id int) (*client.Client, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*client.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ClientRepository) Update(ctx context.Context, id int, req client.UpdateRequest) (*client.Client, error) {
	args := m.Called(ctx, id, req)
	if c, ok := args.Get(0).(*client.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Get(ctx context.Context, id int) (*project.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*project.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectRepository) Update(ctx context.Context, id int, req project.UpdateRequest) (*project.Project, error) {
	args := m.Called(ctx, id, req)
	if p, ok := args.Get(0).(*project.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectRepository) ListByClient(ctx context.Context, clientID int) ([]project.Project, error) {
	args := m.Called(ctx, clientID)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) ListByStatus(ctx context.Context, status project.Status) ([]project.Project, error) {
	args := m.Called(ctx, status)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// MeetingRepository is a mock for repository.MeetingRepository.
type MeetingRepository struct {
	mock.Mock
}

func (m *MeetingRepository) List(ctx context.Context) ([]meeting.Meeting, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]meeting.Meeting); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MeetingRepository) Get(ctx context.Context, id int) (*meeting.Meeting, error) {
	args := m.Called(ctx, id)
	if mt, ok := args.Get(0).(*meeting.Meeting); ok {
		return mt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MeetingRepository) Create(ctx context.Context, mt *meeting.Meeting) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}

func (m *MeetingRepository) Update(ctx context.Context, id int, req meeting.UpdateRequest) (*meeting.Meeting, error) {
	args := m.Called(ctx, id, req)
	if mt, ok := args.Get(0).(*meeting.Meeting); ok {
		return mt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MeetingRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MeetingRepository) ListByClient(ctx context.Context, clientID int) ([]meeting.Meeting, error) {
	args := m.Called(ctx, clientID)
	if list, ok := args.Get(0).([]meeting.Meeting); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MeetingRepository) ListByProject(ctx context.Context, projectID int) ([]meeting.Meeting, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]meeting.Meeting); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MeetingRepository) ListUpcoming(ctx context.Context, from time.Time) ([]meeting.Meeting, error) {
	args := m.Called(ctx, from)
	if list, ok := args.Get(0).([]meeting.Meeting); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
