package logger

import (
	"fmt"

	"github.com/fatih/color"
)

// colorScheme defines consistent colors for run counts.
// Green: files written
// Yellow: existing files left alone
// Cyan: labels
type colorScheme struct {
	success *color.Color
	warn    *color.Color
	label   *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
	}
}

// formatCounts renders the plain "<n> generated, <n> skipped" fragment.
func formatCounts(generated, skipped int) string {
	return fmt.Sprintf("%d generated, %d skipped", generated, skipped)
}

// formatColorizedCounts renders the same fragment with color coding.
// Skipped counts are only highlighted when non-zero.
func formatColorizedCounts(generated, skipped int, scheme *colorScheme) string {
	generatedText := fmt.Sprintf("%s %s", scheme.success.Sprintf("%d", generated), scheme.label.Sprint("generated"))

	skippedValue := fmt.Sprintf("%d", skipped)
	if skipped > 0 {
		skippedValue = scheme.warn.Sprint(skippedValue)
	}
	skippedText := fmt.Sprintf("%s %s", skippedValue, scheme.label.Sprint("skipped"))

	return generatedText + ", " + skippedText
}
