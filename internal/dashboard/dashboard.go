// Package dashboard writes README landing pages that present a folder's
// children as a grid of link cards.
package dashboard

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/harrison/docnav/internal/filelock"
	"github.com/harrison/docnav/internal/fileutil"
	"github.com/harrison/docnav/internal/naming"
)

// Card descriptions distinguishing sections (folders) from pages (files).
const (
	SectionDescription = "Notes, logs, and links for this section."
	PageDescription    = "Page in this section."
)

// Options holds the root-page wording.
type Options struct {
	// RootTitle is the heading of the root dashboard
	RootTitle string
	// Welcome is the introduction of the root dashboard; may span lines
	Welcome string
}

// Result describes what Write did for one folder.
type Result struct {
	// Path is the index file written, or the existing one that was kept
	Path string
	// Written is false when an existing index was left untouched
	Written bool
}

// Writer composes and writes dashboard pages for folders under a root.
type Writer struct {
	root    string
	titler  *naming.Titler
	scan    fileutil.ScanOptions
	options Options
}

// NewWriter creates a Writer for the tree rooted at root.
// root must be an absolute, cleaned path.
func NewWriter(root string, titler *naming.Titler, scan fileutil.ScanOptions, options Options) *Writer {
	return &Writer{
		root:    root,
		titler:  titler,
		scan:    scan,
		options: options,
	}
}

// Write generates the index page for dir. An existing index is never touched
// unless overwrite is set, which protects hand-authored landing pages; when
// overwriting, the existing file is fully replaced under its own name.
func (dw *Writer) Write(dir string, overwrite bool) (Result, error) {
	path := filepath.Join(dir, fileutil.IndexName)
	if existing, ok := fileutil.FindIndex(dir); ok {
		if !overwrite {
			return Result{Path: existing}, nil
		}
		path = existing
	}

	data, err := dw.Compose(dir)
	if err != nil {
		return Result{}, err
	}

	if err := filelock.AtomicWrite(path, data); err != nil {
		return Result{}, fmt.Errorf("failed to write dashboard %s: %w", path, err)
	}

	return Result{Path: path, Written: true}, nil
}

// Compose builds the dashboard document for dir without writing it.
func (dw *Writer) Compose(dir string) ([]byte, error) {
	relDir, err := filepath.Rel(dw.root, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s against root: %w", dir, err)
	}
	isRoot := relDir == "."

	listing, err := fileutil.ScanFolder(dir, dw.scan)
	if err != nil {
		return nil, err
	}

	folderName := filepath.Base(dir)
	var lines []string

	if isRoot {
		lines = append(lines, fmt.Sprintf("<h1>%s</h1>", html.EscapeString(dw.options.RootTitle)), "")
		lines = append(lines, strings.Split(dw.options.Welcome, "\n")...)
	} else {
		lines = append(lines, fmt.Sprintf("<h1>%s</h1>", html.EscapeString(dw.titler.FolderTitle(folderName))), "")
		lines = append(lines, fmt.Sprintf("This section contains notes, logs, and links related to **%s**.", html.EscapeString(naming.Title(folderName))))
	}

	lines = append(lines, "", "---", "", `<div class="dashboard-grid">`, "")

	for _, child := range listing.Folders {
		href, ok, err := dw.sectionHref(dir, relDir, child)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		lines = append(lines, card(href, dw.titler.FolderTitle(child), SectionDescription)...)
	}

	for _, file := range listing.Files {
		href := naming.PageLink(filepath.Join(relDir, file))
		lines = append(lines, card(href, naming.FileTitle(file), PageDescription)...)
	}

	lines = append(lines, "</div>", "")

	return []byte(strings.Join(lines, "\n")), nil
}

// sectionHref returns the link for a child folder's card. A folder that has
// neither an index nor any listable content gets no card yet; it shows up
// once the walk has visited it and given it a README of its own.
func (dw *Writer) sectionHref(dir, relDir, child string) (string, bool, error) {
	childDir := filepath.Join(dir, child)

	if index, ok := fileutil.FindIndex(childDir); ok {
		return naming.EncodeLinkPath(filepath.Join(relDir, child, filepath.Base(index))), true, nil
	}

	listing, err := fileutil.ScanFolder(childDir, dw.scan)
	if err != nil {
		return "", false, err
	}
	if listing.Empty() {
		return "", false, nil
	}

	// The README does not exist yet; the walk creates it when it gets there.
	return naming.EncodeLinkPath(filepath.Join(relDir, child, fileutil.IndexName)), true, nil
}

func card(href, title, description string) []string {
	return []string{
		fmt.Sprintf(`  <a class="card" href="%s">`, html.EscapeString(href)),
		fmt.Sprintf("    <h2>%s</h2>", html.EscapeString(title)),
		fmt.Sprintf("    <p>%s</p>", description),
		"  </a>",
		"",
	}
}
