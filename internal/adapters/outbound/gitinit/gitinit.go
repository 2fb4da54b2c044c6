// Package gitinit initializes a git repository in a scaffolded project root.
package gitinit

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Initializer implements domain.RepoInitializer using go-git.
type Initializer struct{}

func New() *Initializer { return &Initializer{} }

// Init creates a repository at path. A repository that already exists is
// left untouched.
func (i *Initializer) Init(path string) error {
	_, err := git.PlainInit(path, false)
	if err == git.ErrRepositoryAlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("initializing git repository: %w", err)
	}
	return nil
}
