package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `atelier is a CRM for an interior design practice: Clients own Projects, and Meetings link the two.

Core concepts:
- Client: a person or organization the practice works with.
- Project: one engagement for a client, moving through a four-stage pipeline: Lead → Design → In Progress → Complete.
- Meeting: a dated appointment with a client, optionally linked to a project.

Conventions:
- Identities are small integers assigned by the store; pass them back verbatim.
- Dates are RFC 3339 timestamps; bare YYYY-MM-DD is accepted on input.
- Deleting a client does not delete their projects or meetings. Dangling references show as "Unknown Client" in joined views.
- Updates are partial: omitted fields keep their stored value.

Typical workflow:
1) Orient with dashboard_summary.
2) Browse with client_list / project_list / meeting_list, or board_view for the pipeline.
3) Mutate with the create/update/delete tools; move projects between stages with project_move.
4) Plan with calendar_month and meeting_list(upcoming=true).

Docs:
- atelier://docs/pipeline (pipeline stages and the board)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "atelier://docs/pipeline",
		Name:        "docs_pipeline",
		Title:       "The project pipeline",
		Description: "How projects move through the four pipeline stages and how the board presents them.",
		Content: `# The project pipeline

Every project sits in exactly one of four stages:

1. **Lead** - an enquiry or proposal, not yet committed.
2. **Design** - concept and design development.
3. **In Progress** - procurement and installation underway.
4. **Complete** - delivered and closed out.

New projects start in Lead unless a stage is given at creation.

## The board

board_view groups every project into its stage column. All four columns are
always present, even when empty, and each project appears in exactly one
column. project_move changes a project's stage and returns the refreshed
board; if the move cannot be persisted the project stays in its previous
column and the response carries an error notification.

## Counting

A project is "active" for dashboard purposes when its stage is anything but
Complete.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
