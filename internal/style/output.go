package style

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var (
	// Color palette
	PrimaryTextColor = lipgloss.Color("#E4E4E7")
	ErrorColor       = lipgloss.Color("#FF6B6B")
	ErrorBgColor     = lipgloss.Color("#3D2020")
	WarningColor     = lipgloss.Color("#FFA726")
	SuccessColor     = lipgloss.Color("#66BB6A")
	InfoColor        = lipgloss.Color("#42A5F5")
	MutedColor       = lipgloss.Color("#6C757D")
	AccentColor      = lipgloss.Color("#7C3AED")
	CodeColor        = lipgloss.Color("#D4D4D4")

	// Base styles
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	AccentStyle  = lipgloss.NewStyle().Foreground(AccentColor)
	TitleStyle   = lipgloss.NewStyle().Bold(true)

	FileStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			Underline(true)

	CountStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Align(lipgloss.Right)

	LabelStyle = lipgloss.NewStyle().
			Foreground(PrimaryTextColor)

	NewsStyle = lipgloss.NewStyle().
			Foreground(CodeColor).
			Italic(true)
)

// Render applies s unless colour output is disabled (NO_COLOR, dumb terminals
// or a non-tty stdout), in which case text is returned unchanged.
func Render(s lipgloss.Style, text string) string {
	if color.NoColor {
		return text
	}
	return s.Render(text)
}

// FormatFilePath formats a file path with proper styling
func FormatFilePath(path string) string {
	return Render(FileStyle, path)
}

// Title renders a section heading.
func Title(text string) string {
	return Render(TitleStyle, text)
}

// DistributionRow is one line of a category distribution table.
type DistributionRow struct {
	Label string
	Count int
}

// RenderDistribution renders an aligned "label: count" table, one row per line.
func RenderDistribution(rows []DistributionRow) string {
	labelWidth, countWidth := 0, 0
	for _, r := range rows {
		labelWidth = max(labelWidth, len(r.Label)+1)
		countWidth = max(countWidth, len(fmt.Sprint(r.Count)))
	}

	var b strings.Builder
	for _, r := range rows {
		label := fmt.Sprintf("%-*s", labelWidth, r.Label+":")
		count := fmt.Sprintf("%*d", countWidth, r.Count)
		fmt.Fprintf(&b, "  %s %s %s\n",
			Render(LabelStyle, label),
			Render(CountStyle, count),
			Render(MutedStyle, plural(r.Count, "example", "examples")),
		)
	}
	return b.String()
}

// RenderExample renders a news headline and its expected output label.
func RenderExample(news, output string) string {
	return fmt.Sprintf("  %s %s\n  %s %s\n",
		Render(MutedStyle, "News:  "), Render(NewsStyle, news),
		Render(MutedStyle, "Output:"), Render(AccentStyle, output),
	)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// PrintJSON outputs data as formatted JSON
func PrintJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	return nil
}

// PrintYAML outputs data as YAML
func PrintYAML(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("error encoding YAML: %w", err)
	}
	return encoder.Close()
}

func SuccessIcon() string {
	return Render(SuccessStyle, "✓")
}

func WarningIcon() string {
	return Render(WarningStyle, "⚠")
}

func InfoIcon() string {
	return Render(InfoStyle, "ℹ")
}

// Success prints a success message with styling
func Success(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", SuccessIcon(), Render(lipgloss.NewStyle().Foreground(SuccessColor), message))
}

// Warning prints a warning message with styling
func Warning(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", WarningIcon(), Render(lipgloss.NewStyle().Foreground(WarningColor), message))
}

// Info prints an info message with styling
func Info(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", InfoIcon(), Render(lipgloss.NewStyle().Foreground(InfoColor), message))
}
