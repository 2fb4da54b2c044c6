package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fedforge/fedforge/internal/adapters/outbound/tui"
	"github.com/fedforge/fedforge/internal/application"
	"github.com/fedforge/fedforge/internal/domain"
)

// answers is the raw user intent collected from flags or prompts before
// validation turns it into a ProjectConfiguration.
type answers struct {
	role       domain.Role
	name       string
	port       int
	framework  string
	typescript bool
	monorepo   bool
	tool       string
	manager    string
	remotes    []domain.RemoteReference
}

func newCreateCmd(writer domain.ArtifactWriter, repo domain.RepoInitializer, loader domain.DefaultsLoader) *cobra.Command {
	var (
		hostRole   bool
		remoteRole bool
		name       string
		port       int
		framework  string
		typescript bool
		monorepo   bool
		tool       string
		manager    string
		remoteRefs []string
		gitRepo    bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "create [dir]",
		Short: "Scaffold a micro-frontend application",
		Long:  "Generate a module-federation host or remote. With --host or --remote the command runs non-interactively from flags; without either it prompts for every answer.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetDir := "."
			if len(args) > 0 {
				targetDir = args[0]
			}
			absTarget, err := filepath.Abs(targetDir)
			if err != nil {
				return fmt.Errorf("resolving target: %w", err)
			}

			defaults, err := loader.Load(".")
			if err != nil {
				return err
			}

			a := answers{
				name:       name,
				port:       port,
				framework:  framework,
				typescript: typescript,
				monorepo:   monorepo,
				tool:       tool,
				manager:    manager,
			}
			applyDefaults(&a, defaults, cmd)

			switch {
			case hostRole && remoteRole:
				return fmt.Errorf("--host and --remote are mutually exclusive")
			case hostRole:
				a.role = domain.RoleHost
			case remoteRole:
				a.role = domain.RoleRemote
			default:
				if err := runPromptFlow(&a); err != nil {
					return err
				}
			}

			refs, err := parseRemoteRefs(remoteRefs)
			if err != nil {
				return err
			}
			a.remotes = append(a.remotes, refs...)

			cfg, err := domain.NewProjectConfiguration(
				a.role,
				a.name,
				a.port,
				domain.Framework(a.framework),
				a.typescript,
				a.monorepo,
				domain.MonorepoTool(a.tool),
				domain.PackageManager(a.manager),
			)
			if err != nil {
				return err
			}

			svc := application.NewAssembleService()
			var sets []*domain.ArtifactSet
			if cfg.Monorepo {
				sets, err = svc.AssembleWorkspace(cfg, a.remotes)
			} else {
				var set *domain.ArtifactSet
				set, err = svc.Assemble(cfg, a.remotes)
				sets = []*domain.ArtifactSet{set}
			}
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderDryRun(sets))
				return nil
			}

			if err := writer.WriteAll(absTarget, sets); err != nil {
				return err
			}
			if gitRepo {
				if err := repo.Init(absTarget); err != nil {
					return err
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(cfg, targetDir, sets))
			return nil
		},
	}

	cmd.Flags().BoolVar(&hostRole, "host", false, "Scaffold a host (non-interactive)")
	cmd.Flags().BoolVar(&remoteRole, "remote", false, "Scaffold a remote (non-interactive)")
	cmd.Flags().StringVar(&name, "name", "", "Project name (free-form; normalized into the federation identifier)")
	cmd.Flags().IntVar(&port, "port", 3000, "Dev-server port")
	cmd.Flags().StringVar(&framework, "framework", "react", "UI framework (react, vue)")
	cmd.Flags().BoolVar(&typescript, "typescript", false, "Enable TypeScript")
	cmd.Flags().BoolVar(&monorepo, "monorepo", false, "Generate a monorepo workspace")
	cmd.Flags().StringVar(&tool, "tool", "pnpm", "Monorepo tool (pnpm, nx, turborepo)")
	cmd.Flags().StringVar(&manager, "pm", "npm", "Package manager (npm, yarn, pnpm)")
	cmd.Flags().StringArrayVar(&remoteRefs, "remote-ref", nil, "Remote reference as name@url (repeatable, host only)")
	cmd.Flags().BoolVar(&gitRepo, "git", false, "Initialize a git repository in the target")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List artifacts without writing anything")

	return cmd
}

// applyDefaults overlays .fedforge.yaml values under flags the user did not
// set explicitly. Explicit flags always win.
func applyDefaults(a *answers, d domain.Defaults, cmd *cobra.Command) {
	if !cmd.Flags().Changed("framework") && d.Framework != "" {
		a.framework = string(d.Framework)
	}
	if !cmd.Flags().Changed("pm") && d.PackageManager != "" {
		a.manager = string(d.PackageManager)
	}
	if !cmd.Flags().Changed("typescript") && d.TypeScript != nil {
		a.typescript = *d.TypeScript
	}
	if !cmd.Flags().Changed("tool") && d.MonorepoTool != "" {
		a.tool = string(d.MonorepoTool)
	}
}

// parseRemoteRefs splits repeated name@url flags. The URL may itself
// contain @, so only the first separator counts.
func parseRemoteRefs(refs []string) ([]domain.RemoteReference, error) {
	out := make([]domain.RemoteReference, 0, len(refs))
	for _, ref := range refs {
		name, url, found := strings.Cut(ref, "@")
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q is not name@url", domain.ErrInvalidRemoteName, ref)
		}
		if url == "" {
			return nil, fmt.Errorf("%w: remote %q", domain.ErrMissingRemoteURL, name)
		}
		out = append(out, domain.RemoteReference{Name: name, URL: url})
	}
	return out, nil
}
