package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/fedforge/fedforge/internal/domain"
)

// runPromptFlow collects every answer interactively. Values already present
// in a (from flags or .fedforge.yaml) become the pre-selected defaults.
func runPromptFlow(a *answers) error {
	role := string(domain.RoleHost)
	portStr := strconv.Itoa(a.port)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Role").
				Description("Hosts compose remote modules; remotes expose them.").
				Options(
					huh.NewOption("Host (consumes remotes)", string(domain.RoleHost)),
					huh.NewOption("Remote (exposes modules)", string(domain.RoleRemote)),
				).
				Value(&role),
			huh.NewInput().
				Title("Project name").
				Description("Free-form; normalized into the federation identifier.").
				Value(&a.name).
				Validate(func(s string) error {
					if domain.Normalize(s) == "" {
						return fmt.Errorf("name must contain at least one letter or digit")
					}
					return nil
				}),
			huh.NewInput().
				Title("Dev-server port").
				Value(&portStr).
				Validate(func(s string) error {
					p, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("port must be a number")
					}
					if p < domain.MinPort || p > domain.MaxPort {
						return fmt.Errorf("port must be between %d and %d", domain.MinPort, domain.MaxPort)
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Framework").
				Options(
					huh.NewOption("React", string(domain.FrameworkReact)),
					huh.NewOption("Vue", string(domain.FrameworkVue)),
				).
				Value(&a.framework),
			huh.NewConfirm().
				Title("Use TypeScript?").
				Value(&a.typescript),
			huh.NewSelect[string]().
				Title("Package manager").
				Options(
					huh.NewOption("npm", string(domain.ManagerNpm)),
					huh.NewOption("yarn", string(domain.ManagerYarn)),
					huh.NewOption("pnpm", string(domain.ManagerPnpm)),
				).
				Value(&a.manager),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Generate a monorepo workspace?").
				Value(&a.monorepo),
			huh.NewSelect[string]().
				Title("Monorepo tool").
				Options(
					huh.NewOption("pnpm workspaces", string(domain.ToolPnpm)),
					huh.NewOption("Nx", string(domain.ToolNx)),
					huh.NewOption("Turborepo", string(domain.ToolTurborepo)),
				).
				Value(&a.tool),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	a.role = domain.Role(role)
	a.port, _ = strconv.Atoi(portStr)

	if a.role == domain.RoleHost {
		return promptRemoteRefs(a)
	}
	return nil
}

// promptRemoteRefs loops collecting name/URL pairs for a host until the
// user declines to add another.
func promptRemoteRefs(a *answers) error {
	for {
		addRemote := false
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Declare a remote?").
					Value(&addRemote),
			),
		)
		if err := confirm.Run(); err != nil {
			return err
		}
		if !addRemote {
			return nil
		}

		var ref domain.RemoteReference
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Remote name").
					Description("Must already be a valid identifier, e.g. products.").
					Value(&ref.Name).
					Validate(func(s string) error {
						if !domain.IsValidIdentifier(s) {
							return fmt.Errorf("%q is not a valid identifier", s)
						}
						return nil
					}),
				huh.NewInput().
					Title("Remote URL").
					Description("e.g. http://localhost:3001").
					Value(&ref.URL).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("url is required")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		a.remotes = append(a.remotes, ref)
	}
}
