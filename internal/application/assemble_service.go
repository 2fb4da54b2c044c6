package application

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/fedforge/fedforge/internal/domain"
	"github.com/fedforge/fedforge/internal/render"
)

// AssembleService is the project assembler: it orchestrates identifier
// normalization, federation synthesis and artifact rendering into complete,
// deterministic artifact sets. It performs no I/O; writing is the
// ArtifactWriter's job.
type AssembleService struct{}

func NewAssembleService() *AssembleService {
	return &AssembleService{}
}

// Assemble produces the artifact set for a single application. Identical
// inputs produce byte-identical artifact content.
func (s *AssembleService) Assemble(cfg domain.ProjectConfiguration, remotes []domain.RemoteReference) (*domain.ArtifactSet, error) {
	if cfg.RawName == "" || cfg.NormalizedName == "" {
		return nil, fmt.Errorf("%w: name is empty", domain.ErrInvalidProjectName)
	}

	desc, err := domain.Synthesize(cfg, remotes)
	if err != nil {
		return nil, err
	}

	set := &domain.ArtifactSet{
		Dirs: []string{"src", "public", "src/components"},
	}

	fedConfig, err := render.FederationConfig(desc)
	if err != nil {
		return nil, fmt.Errorf("rendering federation config: %w", err)
	}
	set.AddFile("federation.config.json", fedConfig)

	webpack, err := render.WebpackConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("rendering webpack config: %w", err)
	}
	set.AddFile("webpack.config.js", webpack)

	manifest, err := render.Manifest(domain.BuildManifest(cfg, desc.Shared))
	if err != nil {
		return nil, fmt.Errorf("rendering manifest: %w", err)
	}
	set.AddFile("package.json", manifest)

	// Entry and bootstrap are split on purpose: the entry's dynamic import
	// is the asynchronous boundary the federation runtime needs before any
	// shared dependency is touched.
	set.AddFile(render.EntryFileName(cfg), render.EntrySource(cfg))
	set.AddFile(render.BootstrapFileName(cfg), render.BootstrapSource(cfg))
	set.AddFile(render.AppFileName(cfg), render.AppComponent(cfg, desc))
	set.AddFile("public/index.html", render.IndexHTML(desc))
	set.AddFile(".gitignore", render.GitIgnore())
	set.AddFile("README.md", render.Readme(cfg, desc))

	if cfg.TypeScript {
		tsconfig, err := render.TSConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("rendering tsconfig: %w", err)
		}
		set.AddFile("tsconfig.json", tsconfig)
		if host := desc.Host(); host != nil && len(host.Remotes) > 0 {
			set.AddFile("src/remotes.d.ts", render.RemoteDeclarations(*host, cfg.Framework))
		}
		if cfg.Framework == domain.FrameworkVue {
			set.AddFile("src/shims-vue.d.ts", render.VueShims())
		}
	}

	return set, nil
}

// AssembleWorkspace produces the ordered artifact sets for monorepo mode:
// workspace root first, then shared-types (when TypeScript is enabled) so
// the linked package exists before anything that depends on it, then the
// primary application, then one stub remote application per declared
// reference when the primary is a host. Each set carries its own explicit
// root; nothing relies on ambient working-directory state, so callers may
// even write independent applications in parallel.
func (s *AssembleService) AssembleWorkspace(cfg domain.ProjectConfiguration, remotes []domain.RemoteReference) ([]*domain.ArtifactSet, error) {
	if !cfg.Monorepo {
		return nil, fmt.Errorf("workspace assembly requires monorepo mode")
	}

	primary, err := s.Assemble(cfg, remotes)
	if err != nil {
		return nil, err
	}
	primary.Root = memberPath(cfg.NormalizedName)
	members := []string{primary.Root}

	// Every member needs its own directory and its own dev-server port:
	// a collision would mean one application's files silently overwriting
	// another's, or a workspace whose dev servers cannot all start.
	usedRoots := map[string]bool{primary.Root: true}
	usedPorts := map[int]bool{cfg.Port: true}
	if cfg.TypeScript {
		if primary.Root == domain.SharedTypesMember {
			return nil, fmt.Errorf("%w: %q collides with the %s member", domain.ErrInvalidProjectName, cfg.RawName, domain.SharedTypesMember)
		}
		usedRoots[domain.SharedTypesMember] = true
	}

	var stubs []*domain.ArtifactSet
	if cfg.Role == domain.RoleHost {
		for i, r := range remotes {
			port, err := stubPort(r.URL, cfg.Port, i, usedPorts)
			if err != nil {
				return nil, fmt.Errorf("assembling stub remote %q: %w", r.Name, err)
			}
			stubCfg, err := domain.NewProjectConfiguration(
				domain.RoleRemote,
				r.Name,
				port,
				cfg.Framework,
				cfg.TypeScript,
				true,
				cfg.MonorepoTool,
				cfg.PackageManager,
			)
			if err != nil {
				return nil, fmt.Errorf("assembling stub remote %q: %w", r.Name, err)
			}
			root := memberPath(stubCfg.NormalizedName)
			if usedRoots[root] {
				return nil, fmt.Errorf("%w: remote %q maps to member path %q, which is already taken", domain.ErrInvalidRemoteName, r.Name, root)
			}
			usedRoots[root] = true
			usedPorts[port] = true
			stub, err := s.Assemble(stubCfg, nil)
			if err != nil {
				return nil, err
			}
			stub.Root = root
			members = append(members, stub.Root)
			stubs = append(stubs, stub)
		}
	}

	ws, err := domain.ComposeWorkspace(cfg.MonorepoTool, members, cfg.TypeScript)
	if err != nil {
		return nil, err
	}

	root, err := s.assembleWorkspaceRoot(cfg, ws)
	if err != nil {
		return nil, err
	}

	sets := []*domain.ArtifactSet{root}
	if cfg.TypeScript {
		shared, err := s.assembleSharedTypes()
		if err != nil {
			return nil, err
		}
		sets = append(sets, shared)
	}
	sets = append(sets, primary)
	sets = append(sets, stubs...)
	return sets, nil
}

func (s *AssembleService) assembleWorkspaceRoot(cfg domain.ProjectConfiguration, ws *domain.WorkspaceDescriptor) (*domain.ArtifactSet, error) {
	set := &domain.ArtifactSet{Dirs: []string{domain.PackagesDir}}

	manifest, err := render.Manifest(domain.BuildWorkspaceManifest(cfg, ws))
	if err != nil {
		return nil, fmt.Errorf("rendering workspace manifest: %w", err)
	}
	set.AddFile("package.json", manifest)
	set.AddFile(".gitignore", render.GitIgnore())
	set.AddFile("README.md", render.WorkspaceReadme(cfg, ws))

	if ws.Tool == domain.ToolPnpm || cfg.PackageManager == domain.ManagerPnpm {
		doc, err := render.PnpmWorkspace(ws)
		if err != nil {
			return nil, fmt.Errorf("rendering pnpm workspace: %w", err)
		}
		set.AddFile("pnpm-workspace.yaml", doc)
	}

	switch ws.Tool {
	case domain.ToolTurborepo:
		doc, err := render.TurboConfig(ws)
		if err != nil {
			return nil, fmt.Errorf("rendering turbo config: %w", err)
		}
		set.AddFile("turbo.json", doc)
	case domain.ToolNx:
		doc, err := render.NxConfig(ws)
		if err != nil {
			return nil, fmt.Errorf("rendering nx config: %w", err)
		}
		set.AddFile("nx.json", doc)
	}

	return set, nil
}

func (s *AssembleService) assembleSharedTypes() (*domain.ArtifactSet, error) {
	set := &domain.ArtifactSet{Root: domain.SharedTypesMember}
	manifest, err := render.Manifest(domain.BuildSharedTypesManifest())
	if err != nil {
		return nil, fmt.Errorf("rendering shared-types manifest: %w", err)
	}
	set.AddFile("package.json", manifest)
	set.AddFile("index.d.ts", render.SharedTypesDeclaration())
	return set, nil
}

func memberPath(identifier string) string {
	return domain.PackagesDir + "/" + domain.KebabCase(identifier)
}

// stubPort takes the port from the declared remote URL when one parses,
// otherwise offsets from the primary's port, advancing past ports already
// assigned to other members. A URL that names a taken port is an error:
// the declaration pins it, so it cannot be reassigned.
func stubPort(rawURL string, basePort, index int, used map[int]bool) (int, error) {
	if u, err := url.Parse(rawURL); err == nil {
		if p, err := strconv.Atoi(u.Port()); err == nil && p >= domain.MinPort && p <= domain.MaxPort {
			if used[p] {
				return 0, fmt.Errorf("%w: %d is already assigned to another application", domain.ErrInvalidPort, p)
			}
			return p, nil
		}
	}
	p := basePort + index + 1
	for used[p] && p <= domain.MaxPort {
		p++
	}
	if p > domain.MaxPort {
		return 0, fmt.Errorf("%w: no free port above %d", domain.ErrInvalidPort, basePort)
	}
	return p, nil
}
