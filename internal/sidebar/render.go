// Package sidebar renders nested link lists for a folder subtree and writes
// the _sidebar.md navigation files consumed by the site's sidebar plugin.
package sidebar

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/harrison/docnav/internal/fileutil"
	"github.com/harrison/docnav/internal/naming"
)

// Renderer emits indentation-based markdown lists for a folder subtree.
type Renderer struct {
	Titler  *naming.Titler
	Options fileutil.ScanOptions
}

// NewRenderer creates a Renderer using titler for labels and opts for listing.
func NewRenderer(titler *naming.Titler, opts fileutil.ScanOptions) *Renderer {
	return &Renderer{Titler: titler, Options: opts}
}

// RenderSubtree writes one list item per visible child of dir, pages first
// and then folders, each folder followed by its own subtree one level deeper.
//
// Every link is computed relative to baseDir, never to the folder currently
// being rendered: the site router resolves all hash links against one root.
// A folder without an index is written as plain text but is still descended
// into so its pages stay reachable.
func (r *Renderer) RenderSubtree(w io.Writer, dir, baseDir string, depth int) error {
	listing, err := fileutil.ScanFolder(dir, r.Options)
	if err != nil {
		return err
	}

	indent := strings.Repeat("  ", depth)

	for _, file := range listing.Files {
		rel, err := filepath.Rel(baseDir, filepath.Join(dir, file))
		if err != nil {
			return fmt.Errorf("failed to resolve link for %s: %w", file, err)
		}
		label := naming.EscapeLabel(r.Titler.Title(file))
		if err := writeLine(w, indent, linkItem(label, naming.PageLink(rel))); err != nil {
			return err
		}
	}

	for _, folder := range listing.Folders {
		child := filepath.Join(dir, folder)
		label := naming.EscapeLabel(r.Titler.Title(folder))

		item := "- " + label
		if index, ok := fileutil.FindIndex(child); ok {
			link, err := IndexLink(baseDir, index)
			if err != nil {
				return err
			}
			item = linkItem(label, link)
		}
		if err := writeLine(w, indent, item); err != nil {
			return err
		}

		if err := r.RenderSubtree(w, child, baseDir, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// IndexLink returns the hash link to an index file relative to baseDir.
// Index links keep their file name so the router lands on the landing page.
func IndexLink(baseDir, indexPath string) (string, error) {
	rel, err := filepath.Rel(baseDir, indexPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve link for %s: %w", indexPath, err)
	}
	return naming.EncodeLinkPath(rel), nil
}

func linkItem(label, url string) string {
	return fmt.Sprintf("- [%s](%s)", label, url)
}

func writeLine(w io.Writer, indent, item string) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, item); err != nil {
		return fmt.Errorf("failed to write sidebar entry: %w", err)
	}
	return nil
}
