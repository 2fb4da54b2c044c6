// Package config loads optional project defaults from .fedforge.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fedforge/fedforge/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".fedforge.yaml"

// YAMLLoader implements domain.DefaultsLoader by reading .fedforge.yaml
// from the directory the tool runs in.
type YAMLLoader struct{}

func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads defaults from dir. A missing file yields zero defaults, not an
// error; a present but invalid file is rejected so typos never silently
// fall back.
func (l *YAMLLoader) Load(dir string) (domain.Defaults, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Defaults{}, nil
		}
		return domain.Defaults{}, err
	}

	var d domain.Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return domain.Defaults{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if err := validate(d); err != nil {
		return domain.Defaults{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return d, nil
}

func validate(d domain.Defaults) error {
	if d.Framework != "" {
		if d.Framework != domain.FrameworkReact && d.Framework != domain.FrameworkVue {
			return fmt.Errorf("unknown framework %q (valid: react, vue)", d.Framework)
		}
	}
	if d.PackageManager != "" {
		valid := false
		for _, pm := range domain.ValidPackageManagers {
			if d.PackageManager == pm {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown package_manager %q (valid: npm, yarn, pnpm)", d.PackageManager)
		}
	}
	if d.MonorepoTool != "" {
		valid := false
		for _, t := range domain.ValidMonorepoTools {
			if d.MonorepoTool == t {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown monorepo_tool %q (valid: pnpm, nx, turborepo)", d.MonorepoTool)
		}
	}
	return nil
}
