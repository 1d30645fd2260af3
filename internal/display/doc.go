// Package display formats user-facing warning blocks for the docnav CLI.
//
// Warnings are written to an io.Writer, normally stderr:
//
//	warning := display.WarnSkippedIndexes(summary.Skipped)
//	warning.Display(os.Stderr)
//
// Colors come from fatih/color and are dropped automatically when output is
// not a terminal or NO_COLOR is set.
package display
