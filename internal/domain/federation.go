package domain

import "fmt"

// DefaultExposedModule is the public path every remote exposes, mapped to
// DefaultExposedSource. The default entry is never omitted.
const (
	DefaultExposedModule = "./App"
	DefaultExposedSource = "./src/App"
)

// Wiring is the role-specific half of a federation descriptor: a host
// consumes remotes, a remote exposes modules. Making this a closed variant
// instead of two mutually-exclusive optional fields turns the "exactly one
// is populated" invariant into a type-level guarantee.
type Wiring interface {
	Role() Role
}

// HostWiring lists the remotes a host composes, in declaration order.
// Iteration order affects generated import order, not correctness.
type HostWiring struct {
	Remotes []RemoteReference
}

func (HostWiring) Role() Role { return RoleHost }

// RemoteMap returns the remotes as an identifier -> URL map.
func (w HostWiring) RemoteMap() map[string]string {
	m := make(map[string]string, len(w.Remotes))
	for _, r := range w.Remotes {
		m[r.Name] = r.URL
	}
	return m
}

// ExposedModule maps one public module path to its local source path.
type ExposedModule struct {
	Public string
	Local  string
}

// RemoteWiring lists the modules a remote exposes. The default entry
// (./App -> ./src/App) is always first.
type RemoteWiring struct {
	Exposes []ExposedModule
}

func (RemoteWiring) Role() Role { return RoleRemote }

// ExposeMap returns the exposed modules as a public -> local path map.
func (w RemoteWiring) ExposeMap() map[string]string {
	m := make(map[string]string, len(w.Exposes))
	for _, e := range w.Exposes {
		m[e.Public] = e.Local
	}
	return m
}

// BuildOutput is where and how the bundle is emitted. Fixed defaults, not
// user-configurable.
type BuildOutput struct {
	Directory      string
	PublicPathMode string
}

// DevServerOptions are the generated dev-server flags. Fixed defaults.
type DevServerOptions struct {
	HotReload   bool
	SPAFallback bool
	CORS        bool
}

// FederationDescriptor is the synthesized runtime-loadable contract of one
// application: its identifier, what it exposes or consumes, and its
// shared-dependency policy. Every generated file derives from this record.
type FederationDescriptor struct {
	Identifier string
	Framework  Framework
	Port       int
	Wiring     Wiring
	Shared     SharedDependencyPolicy
	Build      BuildOutput
	DevServer  DevServerOptions
}

// Host returns the host wiring, or nil when the descriptor is a remote.
func (d *FederationDescriptor) Host() *HostWiring {
	if w, ok := d.Wiring.(HostWiring); ok {
		return &w
	}
	return nil
}

// Remote returns the remote wiring, or nil when the descriptor is a host.
func (d *FederationDescriptor) Remote() *RemoteWiring {
	if w, ok := d.Wiring.(RemoteWiring); ok {
		return &w
	}
	return nil
}

// Synthesize combines a validated configuration and the declared remote
// references into one coherent federation descriptor. For hosts every
// reference name must pass the identifier grammar and be unique, and every
// reference must carry a URL; the remotes list is otherwise taken as-is.
// For remotes the default exposed entry is always present and extras are
// appended after it. Failure returns no partial descriptor.
func Synthesize(cfg ProjectConfiguration, remotes []RemoteReference, extraExposes ...ExposedModule) (*FederationDescriptor, error) {
	shared, err := ResolveSharedPolicy(cfg.Framework)
	if err != nil {
		return nil, err
	}

	var wiring Wiring
	switch cfg.Role {
	case RoleHost:
		seen := make(map[string]bool, len(remotes))
		for _, r := range remotes {
			if !IsValidIdentifier(r.Name) {
				return nil, fmt.Errorf("%w: %q is not a valid identifier", ErrInvalidRemoteName, r.Name)
			}
			if seen[r.Name] {
				return nil, fmt.Errorf("%w: %q declared twice", ErrInvalidRemoteName, r.Name)
			}
			if r.URL == "" {
				return nil, fmt.Errorf("%w: remote %q", ErrMissingRemoteURL, r.Name)
			}
			seen[r.Name] = true
		}
		wiring = HostWiring{Remotes: append([]RemoteReference(nil), remotes...)}

	case RoleRemote:
		exposes := []ExposedModule{{Public: DefaultExposedModule, Local: DefaultExposedSource}}
		for _, e := range extraExposes {
			if e.Public == DefaultExposedModule {
				continue
			}
			exposes = append(exposes, e)
		}
		wiring = RemoteWiring{Exposes: exposes}

	default:
		return nil, fmt.Errorf("unknown role %q", cfg.Role)
	}

	return &FederationDescriptor{
		Identifier: cfg.NormalizedName,
		Framework:  cfg.Framework,
		Port:       cfg.Port,
		Wiring:     wiring,
		Shared:     shared,
		Build:      BuildOutput{Directory: "dist", PublicPathMode: "auto"},
		DevServer:  DevServerOptions{HotReload: true, SPAFallback: true, CORS: true},
	}, nil
}
