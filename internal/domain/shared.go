package domain

import "fmt"

// SharedDependency is the federation policy for one runtime package shared
// between host and remotes.
//
// Singleton prevents two incompatible runtime copies of the UI framework
// from loading across host and remotes at once, which would break shared
// component state and hook identity. StrictVersion stays false so
// independently deployed applications tolerate minor-version drift instead
// of hard-failing the whole composition. Eager stays false so the shared
// copy loads on first use: the initial bundle stays small and the resolved
// version is negotiated after all participating bundles have registered
// their requirements.
type SharedDependency struct {
	Singleton       bool   `json:"singleton"`
	StrictVersion   bool   `json:"strictVersion"`
	RequiredVersion string `json:"requiredVersion"`
	Eager           bool   `json:"eager"`
}

// SharedDependencyPolicy maps a runtime package name to its sharing policy.
type SharedDependencyPolicy map[string]SharedDependency

// Framework version ranges propagated into both the shared policy and the
// generated manifest.
const (
	ReactVersionRange = "^18.0.0"
	VueVersionRange   = "^3.0.0"
)

// ResolveSharedPolicy derives the shared-dependency policy from the chosen
// framework. Pure function of the framework alone; the values are never
// user-overridden.
func ResolveSharedPolicy(fw Framework) (SharedDependencyPolicy, error) {
	switch fw {
	case FrameworkReact:
		return SharedDependencyPolicy{
			"react":     {Singleton: true, RequiredVersion: ReactVersionRange},
			"react-dom": {Singleton: true, RequiredVersion: ReactVersionRange},
		}, nil
	case FrameworkVue:
		return SharedDependencyPolicy{
			"vue": {Singleton: true, RequiredVersion: VueVersionRange},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: react, vue)", ErrUnsupportedFramework, fw)
	}
}
