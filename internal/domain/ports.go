package domain

// ArtifactWriter persists computed artifact sets. Implementations must
// create directories before writing files into them and must not merge with
// pre-existing content; failures are reported as-is, wrapped in
// ErrFileSystem, with no rollback of already-written files.
type ArtifactWriter interface {
	WriteSet(targetDir string, set *ArtifactSet) error
	WriteAll(targetDir string, sets []*ArtifactSet) error
}

// RepoInitializer turns a scaffolded root into a version-controlled
// repository.
type RepoInitializer interface {
	Init(path string) error
}

// DefaultsLoader supplies project defaults persisted next to where the user
// runs the tool. Missing defaults are not an error.
type DefaultsLoader interface {
	Load(dir string) (Defaults, error)
}

// Defaults are optional pre-answers for the interactive flow; explicit
// flags always win over them.
type Defaults struct {
	Framework      Framework      `yaml:"framework"`
	PackageManager PackageManager `yaml:"package_manager"`
	TypeScript     *bool          `yaml:"typescript"`
	MonorepoTool   MonorepoTool   `yaml:"monorepo_tool"`
}
