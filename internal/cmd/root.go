package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for docnav
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docnav",
		Short: "Navigation generator for markdown documentation trees",
		Long: `docnav walks a folder of markdown notes and generates navigation
for a docsify-style site: README dashboards that present each folder as a
grid of cards, and _sidebar.md trees with hash-routed links.

Existing README files are never replaced unless --overwrite is given, and
nothing is ever written outside the documentation root.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: <root>/.docnav.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error (default from config)")

	cmd.AddCommand(NewDashboardsCommand())
	cmd.AddCommand(NewSidebarsCommand())

	return cmd
}
