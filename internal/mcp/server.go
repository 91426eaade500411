// ABOUTME: MCP server setup for the pulse training store.
// ABOUTME: Wraps the MCP server with storage access scoped to one user.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/pulsetrack/pulse/internal/storage"
)

// Server wraps the MCP server with storage access. All tools operate on
// behalf of the signed-in user.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	user      *models.User
}

// NewServer creates a new MCP server over the given storage and user.
func NewServer(repo storage.Repository, user *models.User) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "pulse",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		user:      user,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
