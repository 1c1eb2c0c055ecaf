// Package testserver wires a full server against zero-latency in-memory
// stores and connects a client to it over the SDK's in-memory transport.
package testserver

import (
	"context"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/atelier-crm/atelier/internal/domain/board"
	"github.com/atelier-crm/atelier/internal/domain/calendar"
	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/dashboard"
	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/domain/project"
	"github.com/atelier-crm/atelier/internal/mcp"
	"github.com/atelier-crm/atelier/internal/memory"
	"github.com/atelier-crm/atelier/internal/repository"
	"github.com/atelier-crm/atelier/internal/seed"
)

// TestServer holds a connected client session and the underlying stores for
// direct inspection.
type TestServer struct {
	Session *sdkmcp.ClientSession
	Stores  seed.Stores
}

// Options controls test server construction.
type Options struct {
	Seed bool
}

// New starts a server over in-memory transports and returns a connected
// client session. Store latency is disabled.
func New(t *testing.T, opts Options) *TestServer {
	t.Helper()

	stores := seed.Stores{
		Clients:  memory.NewClientRepository(repository.Delays{}),
		Projects: memory.NewProjectRepository(repository.Delays{}),
		Meetings: memory.NewMeetingRepository(repository.Delays{}),
	}

	ctx := context.Background()
	if opts.Seed {
		require.NoError(t, seed.Load(ctx, stores, nil))
	}

	clientSvc := client.NewService(stores.Clients, nil)
	projectSvc := project.NewService(stores.Projects, nil)
	meetingSvc := meeting.NewService(stores.Meetings, nil)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Clients:   clientSvc,
			Projects:  projectSvc,
			Meetings:  meetingSvc,
			Dashboard: dashboard.NewService(clientSvc, projectSvc, meetingSvc, nil),
			Calendar:  calendar.NewService(meetingSvc, nil),
			Board:     board.NewController(projectSvc, clientSvc, nil, nil),
		},
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	mcpClient := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "atelier-test",
		Version: "0.1.0",
	}, nil)
	clientSession, err := mcpClient.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = clientSession.Close()
		_ = serverSession.Wait()
	})

	return &TestServer{
		Session: clientSession,
		Stores:  stores,
	}
}
