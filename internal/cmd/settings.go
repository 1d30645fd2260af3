package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/docnav/internal/config"
	"github.com/harrison/docnav/internal/generate"
	"github.com/harrison/docnav/internal/logger"
	"github.com/harrison/docnav/internal/naming"
)

// settings is the resolved state shared by every subcommand.
type settings struct {
	root   string
	cfg    *config.Config
	logger *logger.ConsoleLogger
}

// loadSettings resolves --root, loads the config file and applies flag
// overrides. Every check happens here so that an invalid root or config fails
// before anything is written.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	rootFlag, _ := cmd.Flags().GetString("root")
	root, err := generate.ResolveRoot(rootFlag)
	if err != nil {
		return nil, err
	}

	configFlag, _ := cmd.Flags().GetString("config")
	configPath, err := config.ResolvePath(root, configFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Only flags the user actually set override the config file. Flags a
	// subcommand does not define are never Changed.
	var logLevelPtr, outPtr *string
	var overwritePtr, perFolderPtr, includeNonMarkdownPtr *bool

	if cmd.Flags().Changed("log-level") {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &logLevel
	}
	if cmd.Flags().Changed("overwrite") {
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		overwritePtr = &overwrite
	}
	if cmd.Flags().Changed("out") {
		out, _ := cmd.Flags().GetString("out")
		outPtr = &out
	}
	if cmd.Flags().Changed("per-folder") {
		perFolder, _ := cmd.Flags().GetBool("per-folder")
		perFolderPtr = &perFolder
	}
	if cmd.Flags().Changed("include-non-md") {
		includeNonMarkdown, _ := cmd.Flags().GetBool("include-non-md")
		includeNonMarkdownPtr = &includeNonMarkdown
	}

	cfg.MergeWithFlags(logLevelPtr, overwritePtr, outPtr, perFolderPtr, includeNonMarkdownPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	log.LogDebug(fmt.Sprintf("using config %s", configPath))

	return &settings{root: root, cfg: cfg, logger: log}, nil
}

// newGenerator builds a generator that reports written files on the
// command's stdout and logs to its stderr.
func (s *settings) newGenerator(cmd *cobra.Command) (*generate.Generator, error) {
	options := generate.Options{
		Titler:    naming.NewTitler(s.cfg.TitleOverrides),
		Scan:      s.cfg.ScanOptions(s.cfg.Sidebar.IncludeNonMarkdown),
		Dashboard: dashboardOptions(s.cfg),
	}
	return generate.New(s.root, options, cmd.OutOrStdout(), s.logger)
}
