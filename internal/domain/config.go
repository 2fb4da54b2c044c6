package domain

import "fmt"

// Role says whether an application composes federated modules at runtime
// (host) or exposes them for composition (remote).
type Role string

const (
	RoleHost   Role = "host"
	RoleRemote Role = "remote"
)

// Framework identifies the UI framework the generated application targets.
type Framework string

const (
	FrameworkReact Framework = "react"
	FrameworkVue   Framework = "vue"
)

// ValidFrameworks enumerates all supported frameworks.
var ValidFrameworks = []Framework{FrameworkReact, FrameworkVue}

// MonorepoTool identifies the workspace coordinator for monorepo mode.
type MonorepoTool string

const (
	ToolPnpm      MonorepoTool = "pnpm"
	ToolNx        MonorepoTool = "nx"
	ToolTurborepo MonorepoTool = "turborepo"
)

// ValidMonorepoTools enumerates all supported monorepo tools.
var ValidMonorepoTools = []MonorepoTool{ToolPnpm, ToolNx, ToolTurborepo}

// PackageManager identifies the package manager wired into generated scripts.
type PackageManager string

const (
	ManagerNpm  PackageManager = "npm"
	ManagerYarn PackageManager = "yarn"
	ManagerPnpm PackageManager = "pnpm"
)

// ValidPackageManagers enumerates all supported package managers.
var ValidPackageManagers = []PackageManager{ManagerNpm, ManagerYarn, ManagerPnpm}

// Port bounds for the generated dev server. Ports below 1024 need elevated
// privileges; above 65535 is not a port.
const (
	MinPort = 1024
	MaxPort = 65535
)

// ProjectConfiguration is validated user intent: one record per generated
// application, constructed once from prompt answers or flags and immutable
// afterwards. Every downstream component consumes it read-only.
type ProjectConfiguration struct {
	Role           Role
	RawName        string
	NormalizedName string
	Port           int
	Framework      Framework
	TypeScript     bool
	Monorepo       bool
	MonorepoTool   MonorepoTool
	PackageManager PackageManager
}

// NewProjectConfiguration validates the raw answers and derives the
// normalized federation identifier. It is the only constructor: a
// ProjectConfiguration that exists has already passed every check here.
func NewProjectConfiguration(
	role Role,
	rawName string,
	port int,
	framework Framework,
	typescript bool,
	monorepo bool,
	tool MonorepoTool,
	manager PackageManager,
) (ProjectConfiguration, error) {
	cfg := ProjectConfiguration{
		Role:           role,
		RawName:        rawName,
		NormalizedName: Normalize(rawName),
		Port:           port,
		Framework:      framework,
		TypeScript:     typescript,
		Monorepo:       monorepo,
		PackageManager: manager,
	}

	if role != RoleHost && role != RoleRemote {
		return ProjectConfiguration{}, fmt.Errorf("unknown role %q (valid: host, remote)", role)
	}

	if cfg.NormalizedName == "" {
		return ProjectConfiguration{}, fmt.Errorf("%w: %q has no usable identifier characters", ErrInvalidProjectName, rawName)
	}

	if port < MinPort || port > MaxPort {
		return ProjectConfiguration{}, fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidPort, port, MinPort, MaxPort)
	}

	if !isValidFramework(framework) {
		return ProjectConfiguration{}, fmt.Errorf("%w: %q (valid: react, vue)", ErrUnsupportedFramework, framework)
	}

	if monorepo {
		if !isValidMonorepoTool(tool) {
			return ProjectConfiguration{}, fmt.Errorf("%w: %q (valid: pnpm, nx, turborepo)", ErrUnsupportedMonorepoTool, tool)
		}
		cfg.MonorepoTool = tool
	}

	if manager == "" {
		cfg.PackageManager = ManagerNpm
	} else if !isValidPackageManager(manager) {
		return ProjectConfiguration{}, fmt.Errorf("unknown package manager %q (valid: npm, yarn, pnpm)", manager)
	}

	return cfg, nil
}

// RemoteReference is a host's declared dependency on one remote. The URL is
// opaque to the engine: no reachability check is ever made.
type RemoteReference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func isValidFramework(fw Framework) bool {
	for _, f := range ValidFrameworks {
		if fw == f {
			return true
		}
	}
	return false
}

func isValidMonorepoTool(tool MonorepoTool) bool {
	for _, t := range ValidMonorepoTools {
		if tool == t {
			return true
		}
	}
	return false
}

func isValidPackageManager(pm PackageManager) bool {
	for _, p := range ValidPackageManagers {
		if pm == p {
			return true
		}
	}
	return false
}
