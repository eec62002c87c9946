// Package printer provides styled console output for the pombom CLI.
// Merge diagnostics are printed as INFO/WARN lines so a run reads like a
// build log; all styling is disabled with SetNoColor.
package printer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

var noColor bool

// SetNoColor disables (or re-enables) all styling.
func SetNoColor(v bool) {
	noColor = v
}

func render(style lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return style.Render(text)
}

// Faint returns text with faint styling.
func Faint(text string) string {
	return render(faintStyle, text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return render(boldStyle, text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return render(successStyle, text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return render(errorStyle, text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return render(warningStyle, text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return render(infoStyle, text)
}

// PrintSuccess prints text with success styling.
func PrintSuccess(text string) {
	fmt.Println(Success(text))
}

// PrintError prints text with error styling.
func PrintError(text string) {
	fmt.Println(Error(text))
}

// PrintFaint prints text with faint styling.
func PrintFaint(text string) {
	fmt.Println(Faint(text))
}

// PrintBold prints text with bold styling.
func PrintBold(text string) {
	fmt.Println(Bold(text))
}

// PrintInfof prints a formatted line prefixed with a styled INFO level tag.
func PrintInfof(format string, args ...any) {
	fmt.Printf("%s %s\n", Info("INFO"), fmt.Sprintf(format, args...))
}

// PrintWarningf prints a formatted line prefixed with a styled WARN level tag.
func PrintWarningf(format string, args ...any) {
	fmt.Printf("%s %s\n", Warning("WARN"), fmt.Sprintf(format, args...))
}

// PrintInfo prints text prefixed with a styled INFO level tag.
func PrintInfo(text string) {
	PrintInfof("%s", text)
}

// PrintWarning prints text prefixed with a styled WARN level tag.
func PrintWarning(text string) {
	PrintWarningf("%s", text)
}
