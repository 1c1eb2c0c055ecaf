package dashboard

import (
	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/project"
)

// ClientName resolves a client reference for display. A dangling or
// unassigned reference degrades to a placeholder rather than an error.
func ClientName(clients []client.Client, clientID int) string {
	for _, c := range clients {
		if c.ID == clientID {
			return c.Name
		}
	}
	return "Unknown Client"
}

// ProjectName resolves an optional project reference for display.
func ProjectName(projects []project.Project, projectID int) string {
	for _, p := range projects {
		if p.ID == projectID {
			return p.Name
		}
	}
	return "No Project"
}

// CountActive counts projects that have not reached the Complete stage.
func CountActive(projects []project.Project) int {
	active := 0
	for _, p := range projects {
		if p.Status != project.StatusComplete {
			active++
		}
	}
	return active
}
