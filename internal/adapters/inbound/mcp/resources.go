package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fedforge/fedforge/internal/domain"
)

// registerResources registers all FedForge MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	// fedforge://frameworks - supported frameworks and their shared policies
	s.AddResource(
		mcplib.NewResource(
			"fedforge://frameworks",
			"Supported Frameworks",
			mcplib.WithResourceDescription("Supported UI frameworks and their shared-dependency policies"),
			mcplib.WithMIMEType("application/json"),
		),
		handleFrameworksResource(),
	)
}

func handleFrameworksResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		policies := map[string]domain.SharedDependencyPolicy{}
		for _, fw := range domain.ValidFrameworks {
			policy, err := domain.ResolveSharedPolicy(fw)
			if err != nil {
				return nil, fmt.Errorf("resolving %s policy: %w", fw, err)
			}
			policies[string(fw)] = policy
		}

		data, err := json.MarshalIndent(policies, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling policies: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "fedforge://frameworks",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
