package domain

import "path"

// FileArtifact is one generated file: a path relative to the artifact set
// root and its exact byte content. Content is fully computed before any
// write happens.
type FileArtifact struct {
	Path    string
	Content []byte
}

// ArtifactSet is the complete output of assembling one unit (an
// application, a workspace root, or the shared-types package). Root is
// relative to the caller's target directory; an empty Root means the target
// itself. Dirs must be created before Files are written.
type ArtifactSet struct {
	Root  string
	Dirs  []string
	Files []FileArtifact
}

// AddDir appends a directory, deduplicating.
func (s *ArtifactSet) AddDir(dir string) {
	for _, d := range s.Dirs {
		if d == dir {
			return
		}
	}
	s.Dirs = append(s.Dirs, dir)
}

// AddFile appends a file artifact, creating its parent directory entry
// when one is needed.
func (s *ArtifactSet) AddFile(p string, content []byte) {
	if dir := path.Dir(p); dir != "." && dir != "/" {
		s.AddDir(dir)
	}
	s.Files = append(s.Files, FileArtifact{Path: p, Content: content})
}

// File returns the artifact at p, or nil.
func (s *ArtifactSet) File(p string) *FileArtifact {
	for i := range s.Files {
		if s.Files[i].Path == p {
			return &s.Files[i]
		}
	}
	return nil
}
