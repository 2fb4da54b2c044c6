package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fedforge/fedforge/internal/application"
	"github.com/fedforge/fedforge/internal/domain"
)

// registerTools registers all FedForge MCP tools on the given server.
func registerTools(s *server.MCPServer, writer domain.ArtifactWriter, repo domain.RepoInitializer) {
	// 1. fedforge_normalize_name
	s.AddTool(
		mcplib.NewTool("fedforge_normalize_name",
			mcplib.WithDescription("Normalize a free-form project name into a valid module-federation identifier"),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("Free-form project or remote name"),
			),
		),
		handleNormalizeName(),
	)

	// 2. fedforge_shared_policy
	s.AddTool(
		mcplib.NewTool("fedforge_shared_policy",
			mcplib.WithDescription("Return the shared-dependency singleton policy for a framework"),
			mcplib.WithString("framework",
				mcplib.Required(),
				mcplib.Description("UI framework (react or vue)"),
			),
		),
		handleSharedPolicy(),
	)

	// 3. fedforge_preview
	s.AddTool(
		mcplib.NewTool("fedforge_preview",
			append(
				[]mcplib.ToolOption{mcplib.WithDescription("Compute the full artifact set for a micro-frontend without writing anything")},
				scaffoldOptions()...,
			)...,
		),
		handlePreview(),
	)

	// 4. fedforge_scaffold
	s.AddTool(
		mcplib.NewTool("fedforge_scaffold",
			append(
				[]mcplib.ToolOption{mcplib.WithDescription("Generate a micro-frontend project on disk")},
				append(scaffoldOptions(),
					mcplib.WithString("target_dir",
						mcplib.Required(),
						mcplib.Description("Directory to generate into"),
					),
					mcplib.WithBoolean("git", mcplib.Description("Initialize a git repository in the target")),
				)...,
			)...,
		),
		handleScaffold(writer, repo),
	)
}

func scaffoldOptions() []mcplib.ToolOption {
	return []mcplib.ToolOption{
		mcplib.WithString("role",
			mcplib.Required(),
			mcplib.Description("host or remote"),
		),
		mcplib.WithString("name",
			mcplib.Required(),
			mcplib.Description("Free-form project name"),
		),
		mcplib.WithNumber("port", mcplib.Description("Dev-server port (default 3000)")),
		mcplib.WithString("framework", mcplib.Description("react or vue (default react)")),
		mcplib.WithBoolean("typescript", mcplib.Description("Enable TypeScript")),
		mcplib.WithBoolean("monorepo", mcplib.Description("Generate a monorepo workspace")),
		mcplib.WithString("tool", mcplib.Description("Monorepo tool: pnpm, nx or turborepo (default pnpm)")),
		mcplib.WithString("package_manager", mcplib.Description("npm, yarn or pnpm (default npm)")),
		mcplib.WithString("remotes", mcplib.Description("Comma-separated name@url remote references (host only)")),
	}
}

func handleNormalizeName() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		normalized := domain.Normalize(name)
		return jsonResult(map[string]any{
			"raw":        name,
			"normalized": normalized,
			"valid":      domain.IsValidIdentifier(normalized),
		})
	}
}

func handleSharedPolicy() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		fw, err := request.RequireString("framework")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		policy, err := domain.ResolveSharedPolicy(domain.Framework(fw))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(policy)
	}
}

// previewFile is one artifact in a preview result.
type previewFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

func handlePreview() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sets, _, err := assembleFromArgs(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		var files []previewFile
		for _, set := range sets {
			for _, f := range set.Files {
				p := f.Path
				if set.Root != "" {
					p = set.Root + "/" + p
				}
				files = append(files, previewFile{Path: p, Content: string(f.Content)})
			}
		}
		return jsonResult(files)
	}
}

func handleScaffold(writer domain.ArtifactWriter, repo domain.RepoInitializer) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		targetDir, err := request.RequireString("target_dir")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		sets, cfg, err := assembleFromArgs(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		if err := writer.WriteAll(targetDir, sets); err != nil {
			return errorResult(err.Error()), nil
		}
		if doGit, _ := request.GetArguments()["git"].(bool); doGit {
			if err := repo.Init(targetDir); err != nil {
				return errorResult(err.Error()), nil
			}
		}

		var paths []string
		for _, set := range sets {
			for _, f := range set.Files {
				p := f.Path
				if set.Root != "" {
					p = set.Root + "/" + p
				}
				paths = append(paths, p)
			}
		}
		return jsonResult(map[string]any{
			"target":     targetDir,
			"identifier": cfg.NormalizedName,
			"written":    paths,
		})
	}
}

// assembleFromArgs builds a configuration from tool arguments and runs the
// assembler, returning the ordered artifact sets.
func assembleFromArgs(request mcplib.CallToolRequest) ([]*domain.ArtifactSet, domain.ProjectConfiguration, error) {
	var zero domain.ProjectConfiguration

	role, err := request.RequireString("role")
	if err != nil {
		return nil, zero, err
	}
	name, err := request.RequireString("name")
	if err != nil {
		return nil, zero, err
	}

	args := request.GetArguments()
	port := 3000
	if p, ok := args["port"].(float64); ok {
		port = int(p)
	}
	framework := "react"
	if fw, ok := args["framework"].(string); ok && fw != "" {
		framework = fw
	}
	tool := "pnpm"
	if t, ok := args["tool"].(string); ok && t != "" {
		tool = t
	}
	manager := ""
	if pm, ok := args["package_manager"].(string); ok {
		manager = pm
	}
	typescript, _ := args["typescript"].(bool)
	monorepo, _ := args["monorepo"].(bool)

	var remotes []domain.RemoteReference
	if refsStr, ok := args["remotes"].(string); ok && refsStr != "" {
		for _, ref := range strings.Split(refsStr, ",") {
			ref = strings.TrimSpace(ref)
			if ref == "" {
				continue
			}
			rname, url, found := strings.Cut(ref, "@")
			if !found || rname == "" || url == "" {
				return nil, zero, fmt.Errorf("remote reference %q is not name@url", ref)
			}
			remotes = append(remotes, domain.RemoteReference{Name: rname, URL: url})
		}
	}

	cfg, err := domain.NewProjectConfiguration(
		domain.Role(role),
		name,
		port,
		domain.Framework(framework),
		typescript,
		monorepo,
		domain.MonorepoTool(tool),
		domain.PackageManager(manager),
	)
	if err != nil {
		return nil, zero, err
	}

	svc := application.NewAssembleService()
	if cfg.Monorepo {
		sets, err := svc.AssembleWorkspace(cfg, remotes)
		return sets, cfg, err
	}
	set, err := svc.Assemble(cfg, remotes)
	if err != nil {
		return nil, zero, err
	}
	return []*domain.ArtifactSet{set}, cfg, nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
