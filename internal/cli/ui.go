package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/bls2brs/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printTitle prints a heading.
func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printInline prints a dim message without a trailing newline.
func printInline(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprint(w, StyleDim.Render(msg))
}

// =============================================================================
// Conversion Summary
// =============================================================================

// printSummary prints the unknown bricks of a conversion followed by its
// totals:
//
//	Unknown bricks:
//	  Nonexistent Brick               3 bricks
//	3 bricks failed to convert
//	12 of 15 bricks converted successfully to 20 bricks
func printSummary(w io.Writer, s pipeline.Summary, cached bool) {
	if len(s.Unmapped) > 0 {
		fmt.Fprintln(w, StyleWarning.Render("Unknown bricks:"))
		for _, u := range s.Unmapped {
			fmt.Fprintf(w, "  %-28s %s\n", displayName(u.Name), StyleDim.Render(fmt.Sprintf("%4d %s", u.Count, plural(u.Count, "brick"))))
		}
	}
	if s.BadColor > 0 {
		printWarning(w, "%s %s had a color index outside the palette", StyleNumber.Render(fmt.Sprint(s.BadColor)), plural(s.BadColor, "brick"))
	}
	if s.Failure > 0 {
		printError(w, "%s %s failed to convert", StyleNumber.Render(fmt.Sprint(s.Failure)), plural(s.Failure, "brick"))
	}

	status := styleComputed.Render(iconFresh)
	if cached {
		status = styleCached.Render(iconCached)
	}
	printSuccess(w, "%s of %s bricks converted successfully to %s %s %s",
		StyleNumber.Render(fmt.Sprint(s.Success)),
		StyleNumber.Render(fmt.Sprint(s.Total())),
		StyleNumber.Render(fmt.Sprint(s.TargetBricks)),
		plural(s.TargetBricks, "brick"),
		StyleDim.Render("("+status+")"))
}

// displayName quotes names whose surrounding whitespace would otherwise be
// invisible.
func displayName(name string) string {
	if name == "" || strings.TrimSpace(name) != name {
		return fmt.Sprintf("%q", name)
	}
	return name
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
