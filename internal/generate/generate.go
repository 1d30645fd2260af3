// Package generate drives a full docnav run: it locks the documentation root,
// visits every folder under it, and hands each one to the dashboard or sidebar
// writer.
package generate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/harrison/docnav/internal/dashboard"
	"github.com/harrison/docnav/internal/filelock"
	"github.com/harrison/docnav/internal/fileutil"
	"github.com/harrison/docnav/internal/logger"
	"github.com/harrison/docnav/internal/naming"
	"github.com/harrison/docnav/internal/sidebar"
)

// Run kinds, used in log messages.
const (
	KindDashboards = "dashboards"
	KindSidebars   = "sidebars"
)

// Logger is the subset of logging the generator needs.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogRunStart(kind, root string)
	LogRunSummary(kind string, generated, skipped int, duration time.Duration)
}

// Options configures a Generator.
type Options struct {
	// Titler resolves folder and page titles
	Titler *naming.Titler

	// Scan controls which entries are listed. IncludeAll applies to
	// sidebars only; dashboards always list markdown pages.
	Scan fileutil.ScanOptions

	// Dashboard holds the root dashboard wording
	Dashboard dashboard.Options
}

// Summary reports the files a run touched.
type Summary struct {
	// Generated lists files written, in walk order
	Generated []string

	// Skipped lists existing index files left untouched
	Skipped []string
}

// Generator walks a documentation root and writes navigation files.
type Generator struct {
	root    string
	options Options
	out     io.Writer
	logger  Logger
}

// ResolveRoot returns the absolute, cleaned form of root after checking that
// it is an existing directory. A symlinked root is resolved to its target so
// the walk starts at a real directory.
func ResolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("folder not found: %s", abs)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root %s: %w", abs, err)
	}

	return resolved, nil
}

// New creates a Generator for root. Each written file is reported on out as
// "generated: <path>"; out and log may be nil.
func New(root string, options Options, out io.Writer, log Logger) (*Generator, error) {
	abs, err := ResolveRoot(root)
	if err != nil {
		return nil, err
	}

	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Generator{
		root:    abs,
		options: options,
		out:     out,
		logger:  log,
	}, nil
}

// Dashboards writes a README dashboard into every folder under the root.
// Existing index files are kept unless overwrite is set.
func (g *Generator) Dashboards(overwrite bool) (*Summary, error) {
	scan := g.options.Scan
	scan.IncludeAll = false
	writer := dashboard.NewWriter(g.root, g.options.Titler, scan, g.options.Dashboard)

	return g.run(KindDashboards, scan, func(dir string, summary *Summary) error {
		result, err := writer.Write(dir, overwrite)
		if err != nil {
			return err
		}
		if !result.Written {
			g.logger.LogDebug(fmt.Sprintf("kept existing index %s", result.Path))
			summary.Skipped = append(summary.Skipped, result.Path)
			return nil
		}
		g.report(summary, result.Path)
		return nil
	})
}

// Sidebars writes navigation sidebars. In per-folder mode every folder except
// the root gets its own _sidebar.md; otherwise a single combined sidebar is
// written to out, a path relative to the root.
func (g *Generator) Sidebars(perFolder bool, out string) (*Summary, error) {
	scan := g.options.Scan
	writer := sidebar.NewWriter(g.root, sidebar.NewRenderer(g.options.Titler, scan))

	if !perFolder {
		return g.locked(KindSidebars, func(summary *Summary) error {
			g.logger.LogInfo(fmt.Sprintf("writing combined sidebar to %s", out))
			path, err := writer.WriteCombined(out)
			if err != nil {
				return err
			}
			g.report(summary, path)
			return nil
		})
	}

	return g.run(KindSidebars, scan, func(dir string, summary *Summary) error {
		path, written, err := writer.WriteFolder(dir)
		if err != nil {
			return err
		}
		if !written {
			g.logger.LogTrace(fmt.Sprintf("no per-folder sidebar for root %s", dir))
			return nil
		}
		g.report(summary, path)
		return nil
	})
}

// run walks every folder under the root while holding the run lock.
func (g *Generator) run(kind string, scan fileutil.ScanOptions, visit func(dir string, summary *Summary) error) (*Summary, error) {
	return g.locked(kind, func(summary *Summary) error {
		return fileutil.WalkFolders(g.root, scan, func(dir string) error {
			g.logger.LogDebug(fmt.Sprintf("visiting %s", dir))
			return visit(dir, summary)
		})
	})
}

// locked runs fn under the root's run lock and logs the outcome. The first
// error aborts the run; files written before it stay in place.
func (g *Generator) locked(kind string, fn func(summary *Summary) error) (*Summary, error) {
	lock, err := filelock.AcquireRunLock(g.root)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			g.logger.LogWarn(fmt.Sprintf("failed to release run lock: %v", err))
		}
	}()

	start := time.Now()
	g.logger.LogRunStart(kind, g.root)

	summary := &Summary{}
	if err := fn(summary); err != nil {
		g.logger.LogError(fmt.Sprintf("%s failed after %d generated: %v", kind, len(summary.Generated), err))
		return summary, err
	}

	g.logger.LogRunSummary(kind, len(summary.Generated), len(summary.Skipped), time.Since(start))
	return summary, nil
}

func (g *Generator) report(summary *Summary, path string) {
	g.logger.LogTrace(fmt.Sprintf("wrote %s", path))
	summary.Generated = append(summary.Generated, path)
	fmt.Fprintf(g.out, "generated: %s\n", path)
}
