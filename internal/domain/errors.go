package domain

import "errors"

// Every recognized invalid input maps to exactly one of these sentinels.
// Validation failures are fatal for the whole invocation: the engine never
// substitutes a default for an invalid value and never returns a partial
// artifact set.
var (
	// ErrInvalidProjectName is returned when the raw project name is empty
	// or normalizes to an empty identifier.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrInvalidPort is returned when the dev-server port is outside 1024-65535.
	ErrInvalidPort = errors.New("invalid port")

	// ErrInvalidRemoteName is returned when a remote reference carries a name
	// that fails the identifier grammar, or duplicates another reference.
	ErrInvalidRemoteName = errors.New("invalid remote name")

	// ErrMissingRemoteURL is returned when a remote reference has no URL.
	ErrMissingRemoteURL = errors.New("missing remote url")

	// ErrUnsupportedFramework is returned for frameworks other than react and vue.
	ErrUnsupportedFramework = errors.New("unsupported framework")

	// ErrUnsupportedMonorepoTool is returned for tools other than pnpm, nx
	// and turborepo.
	ErrUnsupportedMonorepoTool = errors.New("unsupported monorepo tool")

	// ErrFileSystem wraps failures propagated from the artifact writer.
	// The engine reports them verbatim and does not interpret them.
	ErrFileSystem = errors.New("filesystem failure")
)
