package cmd

import (
	"github.com/spf13/cobra"
)

// NewSidebarsCommand creates and returns the sidebars subcommand
func NewSidebarsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sidebars",
		Short: "Generate _sidebar.md navigation",
		Long: `Write docsify sidebar navigation for the documentation root.

By default a single combined sidebar covering the whole tree is written to
--out (relative to the root). With --per-folder every folder except the root
gets its own _sidebar.md with links back to the dashboard and parent folder.

All links are hash routes relative to the root, e.g. #/projects/ai.`,
		Args: cobra.NoArgs,
		RunE: runSidebars,
	}

	cmd.Flags().String("root", ".", "Documentation root folder")
	cmd.Flags().String("out", "_sidebar.md", "Combined sidebar file, relative to the root")
	cmd.Flags().Bool("include-non-md", false, "List every file, not only markdown pages")
	cmd.Flags().Bool("per-folder", false, "Write a _sidebar.md into every folder instead of one combined file")

	return cmd
}

func runSidebars(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	g, err := s.newGenerator(cmd)
	if err != nil {
		return err
	}

	_, err = g.Sidebars(s.cfg.Sidebar.PerFolder, s.cfg.Sidebar.Out)
	return err
}
