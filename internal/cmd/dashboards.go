package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/docnav/internal/config"
	"github.com/harrison/docnav/internal/dashboard"
	"github.com/harrison/docnav/internal/display"
)

// NewDashboardsCommand creates and returns the dashboards subcommand
func NewDashboardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboards",
		Short: "Generate README dashboards for every folder",
		Long: `Write a README.md dashboard into every folder under the root. Each
dashboard lists the folder's subfolders and pages as link cards.

Folders that already have a README are left alone unless --overwrite is set.
Hidden folders and ignored names (uploads, index.html, ...) are skipped.`,
		Args: cobra.NoArgs,
		RunE: runDashboards,
	}

	cmd.Flags().String("root", ".", "Documentation root folder")
	cmd.Flags().Bool("overwrite", false, "Replace existing README.md files")

	return cmd
}

func runDashboards(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	g, err := s.newGenerator(cmd)
	if err != nil {
		return err
	}

	summary, err := g.Dashboards(s.cfg.Dashboard.Overwrite)
	if err != nil {
		return err
	}

	if len(summary.Skipped) > 0 {
		display.WarnSkippedIndexes(summary.Skipped).Display(cmd.ErrOrStderr())
	}

	return nil
}

func dashboardOptions(cfg *config.Config) dashboard.Options {
	return dashboard.Options{
		RootTitle: cfg.Dashboard.Title,
		Welcome:   cfg.Dashboard.Welcome,
	}
}
