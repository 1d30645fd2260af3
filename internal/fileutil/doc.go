// Package fileutil provides the folder scanning and traversal shared by the
// dashboard and sidebar generators.
//
// Both generators must agree on what a folder contains, so all listing goes
// through this package rather than through ad-hoc os.ReadDir calls.
//
// # Main Components
//
// ScanOptions - Configuration passed explicitly to every scan:
//   - Ignore: entry names excluded from listing and traversal
//   - IncludeAll: list every regular file instead of only .md pages
//   - Exclude: full paths never listed, such as a generated output file
//
// Listing - Result of ScanFolder for one folder:
//   - Folders: child folder names
//   - Files: child page names, excluding the index file
//   - Index: on-disk name of the folder's README.md, if any
//
// # Rules
//
// Hidden entries (names starting with ".") are always skipped. Markdown pages
// are matched by a case-insensitive ".md" extension. The index file is any
// regular file whose name equals README.md ignoring case; FindIndex applies the
// same rule when only the index matters.
//
// Both lists are sorted by Unicode casefold with byte order as the tie-break,
// so output is deterministic across runs and platforms and generated files
// produce stable diffs.
//
// # Traversal
//
// WalkFolders visits a root and every folder below it in pre-order, pruning
// hidden and ignored folders with filepath.SkipDir. Symbolic links to folders
// are never followed, which keeps the walk acyclic.
//
//	err := fileutil.WalkFolders(root, opts, func(dir string) error {
//	    listing, err := fileutil.ScanFolder(dir, opts)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(dir, len(listing.Files))
//	    return nil
//	})
package fileutil
