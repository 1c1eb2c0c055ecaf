package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/domain/project"
	"github.com/atelier-crm/atelier/internal/repository"
)

func TestClientRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewClientRepository(repository.Delays{})
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		c := client.Client{Name: "Client", CreatedAt: time.Now()}
		require.NoError(t, repo.Create(ctx, &c))
		require.Equal(t, i, c.ID)
	}
}

func TestClientRepository_CreateReusesIDAfterDeletingHighest(t *testing.T) {
	repo := NewClientRepository(repository.Delays{})
	ctx := context.Background()

	a := client.Client{Name: "A"}
	b := client.Client{Name: "B"}
	require.NoError(t, repo.Create(ctx, &a))
	require.NoError(t, repo.Create(ctx, &b))
	require.NoError(t, repo.Delete(ctx, b.ID))

	c := client.Client{Name: "C"}
	require.NoError(t, repo.Create(ctx, &c))
	require.Equal(t, b.ID, c.ID)
}

func TestClientRepository_GetReturnsCopy(t *testing.T) {
	repo := NewClientRepository(repository.Delays{})
	ctx := context.Background()

	last := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c := client.Client{Name: "Original", LastContact: &last}
	require.NoError(t, repo.Create(ctx, &c))

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	got.Name = "Mutated"
	*got.LastContact = got.LastContact.AddDate(1, 0, 0)

	again, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Original", again.Name)
	require.Equal(t, last, *again.LastContact)
}

func TestClientRepository_NotFound(t *testing.T) {
	repo := NewClientRepository(repository.Delays{})
	ctx := context.Background()

	_, err := repo.Get(ctx, 99)
	require.ErrorIs(t, err, repository.ErrNotFound)

	name := "x"
	_, err = repo.Update(ctx, 99, client.UpdateRequest{Name: &name})
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, 99), repository.ErrNotFound)
}

func TestClientRepository_UpdateMergesOnlySuppliedFields(t *testing.T) {
	repo := NewClientRepository(repository.Delays{})
	ctx := context.Background()

	c := client.Client{Name: "Sarah", Email: "sarah@example.com", Phone: "555"}
	require.NoError(t, repo.Create(ctx, &c))

	email := "new@example.com"
	updated, err := repo.Update(ctx, c.ID, client.UpdateRequest{Email: &email})
	require.NoError(t, err)
	require.Equal(t, "Sarah", updated.Name)
	require.Equal(t, email, updated.Email)
	require.Equal(t, "555", updated.Phone)
}

func TestProjectRepository_FiltersReturnEmptyNotError(t *testing.T) {
	repo := NewProjectRepository(repository.Delays{})
	ctx := context.Background()

	byClient, err := repo.ListByClient(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, byClient)
	require.Empty(t, byClient)

	byStatus, err := repo.ListByStatus(ctx, project.StatusLead)
	require.NoError(t, err)
	require.NotNil(t, byStatus)
	require.Empty(t, byStatus)
}

func TestProjectRepository_ListByStatus(t *testing.T) {
	repo := NewProjectRepository(repository.Delays{})
	ctx := context.Background()

	for _, status := range []project.Status{project.StatusLead, project.StatusDesign, project.StatusLead} {
		p := project.Project{Name: "P", ClientID: 1, Status: status, Images: []string{}}
		require.NoError(t, repo.Create(ctx, &p))
	}

	leads, err := repo.ListByStatus(ctx, project.StatusLead)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	for _, p := range leads {
		require.Equal(t, project.StatusLead, p.Status)
	}
}

func TestProjectRepository_ImagesAreCopied(t *testing.T) {
	repo := NewProjectRepository(repository.Delays{})
	ctx := context.Background()

	p := project.Project{Name: "P", ClientID: 1, Status: project.StatusLead, Images: []string{"a.jpg"}}
	require.NoError(t, repo.Create(ctx, &p))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	got.Images[0] = "tampered.jpg"

	again, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"a.jpg"}, again.Images)
}

func TestMeetingRepository_ListUpcomingSortedAndFiltered(t *testing.T) {
	repo := NewMeetingRepository(repository.Delays{})
	ctx := context.Background()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	dates := []time.Time{
		now.AddDate(0, 0, 10),
		now.AddDate(0, 0, -5),
		now.AddDate(0, 0, 2),
		now,
	}
	for _, d := range dates {
		m := meeting.Meeting{ClientID: 1, Date: d}
		require.NoError(t, repo.Create(ctx, &m))
	}

	upcoming, err := repo.ListUpcoming(ctx, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 3)
	for i := 1; i < len(upcoming); i++ {
		require.False(t, upcoming[i].Date.Before(upcoming[i-1].Date))
	}
	require.Equal(t, now, upcoming[0].Date)
}

func TestMeetingRepository_ListByClientAndProject(t *testing.T) {
	repo := NewMeetingRepository(repository.Delays{})
	ctx := context.Background()

	m1 := meeting.Meeting{ClientID: 1, ProjectID: 7, Date: time.Now()}
	m2 := meeting.Meeting{ClientID: 2, Date: time.Now()}
	require.NoError(t, repo.Create(ctx, &m1))
	require.NoError(t, repo.Create(ctx, &m2))

	byClient, err := repo.ListByClient(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	require.Equal(t, m1.ID, byClient[0].ID)

	byProject, err := repo.ListByProject(ctx, 7)
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	require.Equal(t, m1.ID, byProject[0].ID)
}

func TestPauseHonorsConfiguredDelay(t *testing.T) {
	repo := NewClientRepository(repository.Delays{List: 20 * time.Millisecond})
	ctx := context.Background()

	start := time.Now()
	_, err := repo.List(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
