package sidebar

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/harrison/docnav/internal/filelock"
	"github.com/harrison/docnav/internal/fileutil"
	"github.com/harrison/docnav/internal/naming"
)

// FileName is the per-folder sidebar written in per-folder mode.
const FileName = "_sidebar.md"

const (
	dashboardIcon = "🏠"
	backIcon      = "⬅"
	currentIcon   = "📂"
	homeTitle     = "Home"
)

// Writer produces sidebar files for folders under a documentation root.
type Writer struct {
	root     string
	renderer *Renderer
}

// NewWriter creates a Writer for the tree rooted at root.
// root must be an absolute, cleaned path.
func NewWriter(root string, renderer *Renderer) *Writer {
	return &Writer{root: root, renderer: renderer}
}

// WriteFolder writes dir/_sidebar.md with a header (dashboard link, back link
// to the parent, the current folder) followed by the folder's subtree.
// The root never gets its own sidebar in this mode, so written is false there.
func (sw *Writer) WriteFolder(dir string) (path string, written bool, err error) {
	if dir == sw.root {
		return "", false, nil
	}

	data, err := sw.ComposeFolder(dir)
	if err != nil {
		return "", false, err
	}

	path = filepath.Join(dir, FileName)
	if err := filelock.AtomicWrite(path, data); err != nil {
		return "", false, fmt.Errorf("failed to write sidebar %s: %w", path, err)
	}
	return path, true, nil
}

// ComposeFolder builds the per-folder sidebar document for dir.
func (sw *Writer) ComposeFolder(dir string) ([]byte, error) {
	var buf bytes.Buffer
	titler := sw.renderer.Titler

	if index, ok := fileutil.FindIndex(sw.root); ok {
		link, err := IndexLink(sw.root, index)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "- [%s Dashboard](%s)\n", dashboardIcon, link)
	}

	parent := filepath.Dir(dir)
	if index, ok := fileutil.FindIndex(parent); ok {
		name := homeTitle
		if parent != sw.root {
			name = titler.Title(filepath.Base(parent))
		}
		link, err := IndexLink(sw.root, index)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "- [%s Back to %s](%s)\n", backIcon, naming.EscapeLabel(name), link)
	}

	buf.WriteString("\n")

	title := naming.EscapeLabel(titler.Title(filepath.Base(dir)))
	if index, ok := fileutil.FindIndex(dir); ok {
		link, err := IndexLink(sw.root, index)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "- **[%s %s](%s)**\n", currentIcon, title, link)
	} else {
		fmt.Fprintf(&buf, "- **%s %s**\n", currentIcon, title)
	}

	if err := sw.renderer.RenderSubtree(&buf, dir, sw.root, 0); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteCombined writes a single sidebar covering the whole tree to out,
// a path relative to the root that must stay inside it. The output file
// itself is never listed.
func (sw *Writer) WriteCombined(out string) (string, error) {
	if !filepath.IsLocal(out) {
		return "", fmt.Errorf("sidebar output %q must be a relative path inside the root", out)
	}

	path := filepath.Join(sw.root, out)

	opts := sw.renderer.Options
	opts.Exclude = append(slices.Clone(opts.Exclude), path)
	renderer := NewRenderer(sw.renderer.Titler, opts)

	data, err := sw.composeCombined(renderer)
	if err != nil {
		return "", err
	}

	if err := filelock.AtomicWrite(path, data); err != nil {
		return "", fmt.Errorf("failed to write sidebar %s: %w", path, err)
	}
	return path, nil
}

// ComposeCombined builds the whole-tree sidebar: a link to the root index,
// if there is one, followed by the full subtree.
func (sw *Writer) ComposeCombined() ([]byte, error) {
	return sw.composeCombined(sw.renderer)
}

func (sw *Writer) composeCombined(renderer *Renderer) ([]byte, error) {
	var buf bytes.Buffer

	if index, ok := fileutil.FindIndex(sw.root); ok {
		title := homeTitle
		if base := filepath.Base(sw.root); base != string(filepath.Separator) && base != "." {
			title = renderer.Titler.Title(base)
		}
		link, err := IndexLink(sw.root, index)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "- [%s](%s)\n", naming.EscapeLabel(title), link)
	}

	if err := renderer.RenderSubtree(&buf, sw.root, sw.root, 0); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
