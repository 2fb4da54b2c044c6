package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/fedforge/fedforge/internal/domain"
)

// NewFedForgeMCPServer creates an MCP server with every FedForge tool and
// resource registered, so AI assistants can preview and scaffold
// micro-frontends through the same engine the CLI uses. The writer and repo
// ports are what the scaffold tool uses to touch the filesystem.
func NewFedForgeMCPServer(writer domain.ArtifactWriter, repo domain.RepoInitializer) *server.MCPServer {
	s := server.NewMCPServer(
		"fedforge",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, writer, repo)
	registerResources(s)

	return s
}
