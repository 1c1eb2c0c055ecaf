package meeting_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/repository"
	"github.com/atelier-crm/atelier/internal/repository/mocks"
)

func TestMeetingService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := meeting.NewService(&mocks.MeetingRepository{}, nil)

	_, err := svc.Create(ctx, meeting.CreateRequest{ClientID: 0, Date: time.Now()})
	require.ErrorIs(t, err, meeting.ErrInvalidInput)

	_, err = svc.Create(ctx, meeting.CreateRequest{ClientID: 1})
	require.ErrorIs(t, err, meeting.ErrInvalidInput)
}

func TestMeetingService_CreateAllowsUnlinkedProject(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MeetingRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := meeting.NewService(repo, nil)
	m, err := svc.Create(ctx, meeting.CreateRequest{ClientID: 1, Date: time.Now()})
	require.NoError(t, err)
	require.Zero(t, m.ProjectID)
}

func TestMeetingService_GetMapsNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MeetingRepository{}
	repo.On("Get", ctx, 5).Return((*meeting.Meeting)(nil), repository.ErrNotFound)

	svc := meeting.NewService(repo, nil)
	_, err := svc.Get(ctx, 5)
	require.ErrorIs(t, err, meeting.ErrMeetingNotFound)
}

func TestMeetingService_ListUpcomingPassesCutoff(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MeetingRepository{}
	repo.On("ListUpcoming", ctx, mock.AnythingOfType("time.Time")).Return([]meeting.Meeting{}, nil)

	svc := meeting.NewService(repo, nil)
	list, err := svc.ListUpcoming(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
	repo.AssertExpectations(t)
}

func TestUpcoming_IncludesBoundaryAndSorts(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	meetings := []meeting.Meeting{
		{ID: 1, Date: now.AddDate(0, 0, 3)},
		{ID: 2, Date: now.AddDate(0, 0, -1)},
		{ID: 3, Date: now},
		{ID: 4, Date: now.AddDate(0, 0, 1)},
	}

	upcoming := meeting.Upcoming(meetings, now)
	require.Len(t, upcoming, 3)
	require.Equal(t, 3, upcoming[0].ID)
	require.Equal(t, 4, upcoming[1].ID)
	require.Equal(t, 1, upcoming[2].ID)
}
