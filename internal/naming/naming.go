// Package naming turns folder and file names into display titles and
// filesystem paths into the hash-routing links the documentation site expects.
package naming

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LinkPrefix is prepended to every generated link so the site's client-side
// router resolves it against the documentation root.
const LinkPrefix = "#/"

// Icons used when no title override applies.
const (
	FolderIcon = "📁"
	FileIcon   = "📄"
)

var (
	labelEscaper = strings.NewReplacer("[", `\[`, "]", `\]`)
	separators   = strings.NewReplacer("_", " ", "-", " ")
)

// Title derives a display title from a file or folder name: the extension is
// stripped, underscores and hyphens become spaces, whitespace runs collapse to
// one space and the result is title-cased.
func Title(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = separators.Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	// Casers carry state, so one is built per call.
	return cases.Title(language.Und).String(base)
}

// Titler resolves display titles with an override table taking precedence
// over the generic rule.
type Titler struct {
	Overrides map[string]string
}

// NewTitler creates a Titler backed by the given override table.
// A nil table is valid and disables overrides.
func NewTitler(overrides map[string]string) *Titler {
	return &Titler{Overrides: overrides}
}

// Title returns the override for name verbatim if one exists, else Title(name).
func (t *Titler) Title(name string) string {
	if t != nil {
		if override, ok := t.Overrides[name]; ok {
			return override
		}
	}
	return Title(name)
}

// FolderTitle is the heading used for a folder on dashboard pages: the
// override if present, otherwise the generic title behind a folder icon.
func (t *Titler) FolderTitle(name string) string {
	if t != nil {
		if override, ok := t.Overrides[name]; ok {
			return override
		}
	}
	return FolderIcon + " " + Title(name)
}

// FileTitle is the heading used for a page card on dashboard pages.
func FileTitle(name string) string {
	return FileIcon + " " + Title(name)
}

// EscapeLabel backslash-escapes square brackets so a title can sit inside a
// markdown link label.
func EscapeLabel(title string) string {
	return labelEscaper.Replace(title)
}

// EncodeLinkPath converts a path relative to the documentation root into a
// hash-routing link. Each segment is percent-encoded on its own so the
// separators survive as literal slashes.
func EncodeLinkPath(relPath string) string {
	parts := strings.Split(relPath, string(filepath.Separator))
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return LinkPrefix + strings.Join(parts, "/")
}

// PageLink is EncodeLinkPath for a page: markdown targets lose their
// extension because the router appends it, other files keep theirs.
func PageLink(relPath string) string {
	if IsMarkdown(relPath) {
		relPath = strings.TrimSuffix(relPath, filepath.Ext(relPath))
	}
	return EncodeLinkPath(relPath)
}

// IsMarkdown reports whether name has a .md extension, ignoring case.
func IsMarkdown(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}
