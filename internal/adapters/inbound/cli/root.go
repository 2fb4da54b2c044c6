package cli

import (
	"github.com/spf13/cobra"

	defaultsloader "github.com/fedforge/fedforge/internal/adapters/outbound/config"
	"github.com/fedforge/fedforge/internal/adapters/outbound/fswriter"
	"github.com/fedforge/fedforge/internal/adapters/outbound/gitinit"
)

var (
	version = "dev"
	commit  = "none"
)

// newRootCmd wires the concrete outbound adapters into the commands; the
// commands themselves only see the domain ports.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fedforge",
		Short:         "Scaffold module-federation micro-frontends",
		Long:          "FedForge generates host and remote micro-frontend applications with a consistent module-federation configuration, standalone or under a monorepo workspace.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	writer := fswriter.New()
	repo := gitinit.New()
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCreateCmd(writer, repo, defaultsloader.New()))
	cmd.AddCommand(newMCPCmd(writer, repo))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
