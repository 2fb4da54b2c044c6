package cli

import (
	mcpadapter "github.com/fedforge/fedforge/internal/adapters/inbound/mcp"
	"github.com/fedforge/fedforge/internal/domain"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(writer domain.ArtifactWriter, repo domain.RepoInitializer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the FedForge MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(writer, repo))
	return cmd
}

func newMCPServeCmd(writer domain.ArtifactWriter, repo domain.RepoInitializer) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start FedForge MCP server (stdio)",
		Long:  "Start the FedForge MCP server using stdio transport. This lets AI coding assistants preview and scaffold micro-frontend projects.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewFedForgeMCPServer(writer, repo)
			return server.ServeStdio(s)
		},
	}
}
