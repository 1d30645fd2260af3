package fileutil

import (
	"cmp"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/harrison/docnav/internal/naming"
)

// IndexName is the canonical name of a folder's landing page.
const IndexName = "README.md"

// DefaultIgnore lists names that are never scanned, listed or descended into.
var DefaultIgnore = []string{
	"uploads",
	"index.html",
	"_sidebar.md",
	"gen_sidebars.py",
	"gen_readmes.py",
}

// ScanOptions configures which folder entries are visible.
type ScanOptions struct {
	// Ignore is a list of entry names to exclude (exact match)
	Ignore []string
	// IncludeAll lists every regular file instead of only markdown pages
	IncludeAll bool
	// Exclude is a list of full paths to skip, such as a generated output file
	Exclude []string
}

// Listing is the visible content of a single folder.
type Listing struct {
	// Folders holds child folder names, casefold-sorted
	Folders []string
	// Files holds child page names without the index file, casefold-sorted
	Files []string
	// Index is the on-disk name of the folder's index file, or "" if absent
	Index string
}

// Empty reports whether the folder has nothing to list.
func (l *Listing) Empty() bool {
	return len(l.Folders) == 0 && len(l.Files) == 0
}

func (o ScanOptions) ignoreSet() map[string]bool {
	set := make(map[string]bool, len(o.Ignore))
	for _, name := range o.Ignore {
		set[name] = true
	}
	return set
}

func (o ScanOptions) excluded(path string) bool {
	for _, p := range o.Exclude {
		if filepath.Clean(p) == path {
			return true
		}
	}
	return false
}

// Hidden reports whether name is a dotfile or dot-directory.
func Hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ScanFolder lists the immediate children of dir. Hidden and ignored entries
// are dropped, folders and pages are separated, and the folder's own index
// file is reported in Listing.Index instead of Listing.Files.
func ScanFolder(dir string, opts ScanOptions) (*Listing, error) {
	if err := checkDir(dir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	ignore := opts.ignoreSet()
	listing := &Listing{
		Folders: make([]string, 0),
		Files:   make([]string, 0),
	}
	var indexCandidates []string

	for _, entry := range entries {
		name := entry.Name()
		if Hidden(name) || ignore[name] || opts.excluded(filepath.Join(dir, name)) {
			continue
		}

		kind, err := entryKind(dir, entry)
		if err != nil {
			return nil, err
		}

		switch kind {
		case kindDir:
			listing.Folders = append(listing.Folders, name)
		case kindFile:
			if strings.EqualFold(name, IndexName) {
				indexCandidates = append(indexCandidates, name)
				continue
			}
			if opts.IncludeAll || naming.IsMarkdown(name) {
				listing.Files = append(listing.Files, name)
			}
		}
	}

	listing.Index = pickIndex(indexCandidates)
	SortNames(listing.Folders)
	SortNames(listing.Files)

	return listing, nil
}

// FindIndex returns the full path of dir's index file. Any regular file named
// README.md in any letter case counts; when several exist the exact canonical
// spelling wins. Every generator uses this single rule.
func FindIndex(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	var candidates []string
	for _, entry := range entries {
		if !strings.EqualFold(entry.Name(), IndexName) {
			continue
		}
		if kind, err := entryKind(dir, entry); err == nil && kind == kindFile {
			candidates = append(candidates, entry.Name())
		}
	}

	name := pickIndex(candidates)
	if name == "" {
		return "", false
	}
	return filepath.Join(dir, name), true
}

func pickIndex(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	if slices.Contains(candidates, IndexName) {
		return IndexName
	}
	slices.Sort(candidates)
	return candidates[0]
}

// SortNames orders names by Unicode casefold, breaking ties by byte order so
// the result is identical on every run.
func SortNames(names []string) {
	folder := cases.Fold()
	keys := make(map[string]string, len(names))
	for _, name := range names {
		keys[name] = folder.String(name)
	}

	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(keys[a], keys[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
}

// WalkFolders calls fn for root and every folder below it in pre-order.
// Hidden and ignored folders are pruned before descent, so nothing inside
// them is visited. Symbolic links to folders are not followed.
// The first error returned by fn stops the walk.
func WalkFolders(root string, opts ScanOptions, fn func(dir string) error) error {
	if err := checkDir(root); err != nil {
		return err
	}

	ignore := opts.ignoreSet()

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}

		if path != root && (Hidden(d.Name()) || ignore[d.Name()]) {
			return filepath.SkipDir
		}

		return fn(path)
	})
}

type entryType int

const (
	kindOther entryType = iota
	kindDir
	kindFile
)

// entryKind classifies an entry. Symbolic links resolve to files only:
// a link to a folder is reported as kindOther so traversal stays acyclic.
func entryKind(dir string, entry fs.DirEntry) (entryType, error) {
	switch {
	case entry.IsDir():
		return kindDir, nil
	case entry.Type().IsRegular():
		return kindFile, nil
	case entry.Type()&fs.ModeSymlink != 0:
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			// Dangling link.
			return kindOther, nil
		}
		if info.Mode().IsRegular() {
			return kindFile, nil
		}
	}
	return kindOther, nil
}

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", dir)
	}
	return nil
}
