package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atelier-crm/atelier/internal/domain/project"
	"github.com/atelier-crm/atelier/internal/repository"
)

func TestProjectRepository_CreateAssignsSequentialIDs(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db, repository.Delays{})
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		p := project.Project{ClientID: 1, Name: "P", Status: project.StatusLead, Images: []string{}}
		require.NoError(t, repo.Create(ctx, &p))
		require.Equal(t, i, p.ID)
	}
}

func TestProjectRepository_RoundTrip(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db, repository.Delays{})
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	p := project.Project{
		ClientID:    4,
		Name:        "Beach House",
		Description: "Whole-house furnishing",
		Status:      project.StatusInProgress,
		Budget:      210000,
		StartDate:   &start,
		Images:      []string{"plan.pdf", "moodboard.jpg"},
	}
	require.NoError(t, repo.Create(ctx, &p))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.Name, got.Name)
	require.Equal(t, p.Status, got.Status)
	require.Equal(t, p.Budget, got.Budget)
	require.True(t, got.StartDate.Equal(start))
	require.Nil(t, got.EndDate)
	require.Equal(t, p.Images, got.Images)
}

func TestProjectRepository_UpdateMergesOnlySuppliedFields(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db, repository.Delays{})
	ctx := context.Background()

	p := project.Project{ClientID: 1, Name: "P", Status: project.StatusLead, Budget: 100, Images: []string{}}
	require.NoError(t, repo.Create(ctx, &p))

	status := project.StatusDesign
	updated, err := repo.Update(ctx, p.ID, project.UpdateRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, project.StatusDesign, updated.Status)
	require.Equal(t, "P", updated.Name)
	require.Equal(t, float64(100), updated.Budget)
}

func TestProjectRepository_UpdateNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db, repository.Delays{})
	ctx := context.Background()

	status := project.StatusDesign
	_, err := repo.Update(ctx, 99, project.UpdateRequest{Status: &status})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_ListByStatusAndClient(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db, repository.Delays{})
	ctx := context.Background()

	specs := []struct {
		clientID int
		status   project.Status
	}{
		{1, project.StatusLead},
		{1, project.StatusDesign},
		{2, project.StatusLead},
	}
	for _, spec := range specs {
		p := project.Project{ClientID: spec.clientID, Name: "P", Status: spec.status, Images: []string{}}
		require.NoError(t, repo.Create(ctx, &p))
	}

	leads, err := repo.ListByStatus(ctx, project.StatusLead)
	require.NoError(t, err)
	require.Len(t, leads, 2)

	owned, err := repo.ListByClient(ctx, 1)
	require.NoError(t, err)
	require.Len(t, owned, 2)

	none, err := repo.ListByClient(ctx, 99)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestProjectRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db, repository.Delays{})
	ctx := context.Background()

	p := project.Project{ClientID: 1, Name: "P", Status: project.StatusLead, Images: []string{}}
	require.NoError(t, repo.Create(ctx, &p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.Get(ctx, p.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, p.ID), repository.ErrNotFound)
}
