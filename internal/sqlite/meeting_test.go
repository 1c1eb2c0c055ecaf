package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/repository"
)

func TestMeetingRepository_RoundTrip(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMeetingRepository(db, repository.Delays{})
	ctx := context.Background()

	m := meeting.Meeting{
		ClientID:  2,
		ProjectID: 3,
		Date:      time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC),
		Notes:     "Layout options",
		FollowUp:  "Send proposal",
	}
	require.NoError(t, repo.Create(ctx, &m))
	require.Equal(t, 1, m.ID)

	got, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, m.ClientID, got.ClientID)
	require.Equal(t, m.ProjectID, got.ProjectID)
	require.True(t, got.Date.Equal(m.Date))
	require.Equal(t, m.FollowUp, got.FollowUp)
}

func TestMeetingRepository_ListUpcoming(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMeetingRepository(db, repository.Delays{})
	ctx := context.Background()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	for _, d := range []time.Time{
		now.AddDate(0, 0, 7),
		now.AddDate(0, 0, -3),
		now.AddDate(0, 0, 1),
	} {
		m := meeting.Meeting{ClientID: 1, Date: d}
		require.NoError(t, repo.Create(ctx, &m))
	}

	upcoming, err := repo.ListUpcoming(ctx, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	require.True(t, upcoming[0].Date.Before(upcoming[1].Date))
}

func TestMeetingRepository_Filters(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMeetingRepository(db, repository.Delays{})
	ctx := context.Background()

	m1 := meeting.Meeting{ClientID: 1, ProjectID: 5, Date: time.Now().UTC()}
	m2 := meeting.Meeting{ClientID: 2, Date: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, &m1))
	require.NoError(t, repo.Create(ctx, &m2))

	byClient, err := repo.ListByClient(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byClient, 1)

	byProject, err := repo.ListByProject(ctx, 5)
	require.NoError(t, err)
	require.Len(t, byProject, 1)

	none, err := repo.ListByProject(ctx, 99)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestMeetingRepository_UpdateAndDelete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMeetingRepository(db, repository.Delays{})
	ctx := context.Background()

	m := meeting.Meeting{ClientID: 1, Date: time.Now().UTC(), Notes: "before"}
	require.NoError(t, repo.Create(ctx, &m))

	notes := "after"
	updated, err := repo.Update(ctx, m.ID, meeting.UpdateRequest{Notes: &notes})
	require.NoError(t, err)
	require.Equal(t, "after", updated.Notes)
	require.Equal(t, m.ClientID, updated.ClientID)

	require.NoError(t, repo.Delete(ctx, m.ID))
	_, err = repo.Get(ctx, m.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
