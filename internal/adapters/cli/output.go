package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

type Output struct {
	stdout       io.Writer
	stderr       io.Writer
	enableColors bool

	green  lipgloss.Style
	yellow lipgloss.Style
	red    lipgloss.Style
	gray   lipgloss.Style
	bold   lipgloss.Style
}

func NewOutput() *Output {
	return NewOutputTo(os.Stdout, os.Stderr)
}

// NewOutputTo writes to the given streams. Colors follow whatever lipgloss
// detects for stdout, so a plain buffer gets no escape codes.
func NewOutputTo(stdout, stderr io.Writer) *Output {
	r := lipgloss.NewRenderer(stdout)
	return &Output{
		stdout:       stdout,
		stderr:       stderr,
		enableColors: true,
		green:        r.NewStyle().Foreground(lipgloss.Color("2")),
		yellow:       r.NewStyle().Foreground(lipgloss.Color("3")),
		red:          r.NewStyle().Foreground(lipgloss.Color("1")),
		gray:         r.NewStyle().Foreground(lipgloss.Color("8")),
		bold:         r.NewStyle().Bold(true),
	}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) Stdout() io.Writer { return o.stdout }
func (o *Output) Stderr() io.Writer { return o.stderr }

func (o *Output) style(s lipgloss.Style, text string) string {
	if !o.enableColors {
		return text
	}
	return s.Render(text)
}

func (o *Output) Green(text string) string  { return o.style(o.green, text) }
func (o *Output) Yellow(text string) string { return o.style(o.yellow, text) }
func (o *Output) Red(text string) string    { return o.style(o.red, text) }
func (o *Output) Gray(text string) string   { return o.style(o.gray, text) }

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.stdout, o.style(o.bold, msg))
	fmt.Fprintln(o.stdout)
}

func (o *Output) PrintStep(emoji, msg string, args ...any) {
	fmt.Fprintf(o.stdout, "  "+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.stdout, "  %s%s\n", o.Green("✓ "), formatted)
}

func (o *Output) PrintWarning(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.stdout, "  %s%s\n", o.Yellow("⚠ "), formatted)
}

func (o *Output) PrintError(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.stderr, "  %s%s\n", o.Red("✗ "), formatted)
}

func (o *Output) PrintFile(path string) {
	fmt.Fprintf(o.stdout, "    %s\n", path)
}

func (o *Output) PrintDone(msg string) {
	fmt.Fprintln(o.stdout, msg)
}
