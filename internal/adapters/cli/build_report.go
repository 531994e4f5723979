package cli

import (
	"fmt"
	"io"
	"time"
)

type BuildStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type cliOutputWithColors interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Stdout() io.Writer
	Stderr() io.Writer
}

type BuildError struct {
	Item    string
	Message string
	Details []string
}

type BuildReport struct {
	colors      cliOutputWithColors
	steps       []BuildStep
	warnings    []BuildError
	errors      []BuildError
	startTime   time.Time
	fileCount   int
	outputDir   string
	hasFailures bool
}

func NewBuildReport(colors cliOutputWithColors, outputDir string) *BuildReport {
	return &BuildReport{
		colors:    colors,
		steps:     make([]BuildStep, 0),
		warnings:  make([]BuildError, 0),
		errors:    make([]BuildError, 0),
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *BuildReport) SetFileCount(count int) {
	r.fileCount = count
}

func (r *BuildReport) StartStep(name string) *BuildStep {
	step := BuildStep{
		Name:      name,
		StartTime: time.Now(),
	}
	r.steps = append(r.steps, step)
	return &r.steps[len(r.steps)-1]
}

func (r *BuildReport) EndStep(step *BuildStep, success bool, err string) {
	step.EndTime = time.Now()
	step.Success = success
	step.Error = err
	if !success {
		r.hasFailures = true
	}
}

func (r *BuildReport) AddWarning(item string, message string, details []string) {
	r.warnings = append(r.warnings, BuildError{
		Item:    item,
		Message: message,
		Details: details,
	})
}

func (r *BuildReport) AddError(item string, message string, details []string) {
	r.errors = append(r.errors, BuildError{
		Item:    item,
		Message: message,
		Details: details,
	})
	r.hasFailures = true
}

func (r *BuildReport) Render() {
	duration := time.Since(r.startTime)

	if len(r.errors) == 0 && len(r.warnings) == 0 {
		r.renderMinimal(duration)
	} else {
		r.renderVerbose(duration)
	}
}

func (r *BuildReport) renderMinimal(duration time.Duration) {
	out := r.colors.Stdout()

	var failed []string
	for _, step := range r.steps {
		if !step.Success {
			failed = append(failed, "  "+r.colors.Red("✗ ")+step.Name)
		}
	}

	if len(failed) == 0 {
		fmt.Fprintf(out, "  %s%d files written\n", r.colors.Green("✓ "), r.fileCount)
		fmt.Fprintf(out, "  %sExport complete in %s\n", r.colors.Green("✓ "), formatDuration(duration))
	} else {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Failed steps:")
		for _, line := range failed {
			fmt.Fprintln(out, line)
		}
	}

	if r.outputDir != "" {
		fmt.Fprintf(out, "\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) renderVerbose(duration time.Duration) {
	out := r.colors.Stdout()
	errOut := r.colors.Stderr()

	for _, step := range r.steps {
		status := r.colors.Green("✓")
		if !step.Success {
			status = r.colors.Red("✗")
		}
		fmt.Fprintf(out, "  %s %s\n", status, step.Name)
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(errOut)
		fmt.Fprintf(errOut, "  %sErrors (%d):\n", r.colors.Red("✗ "), len(r.errors))
		r.renderItems(errOut, r.errors, r.colors.Red("✗"))
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %sWarnings (%d):\n", r.colors.Yellow("⚠ "), len(r.warnings))
		r.renderItems(out, r.warnings, r.colors.Yellow("⚠"))
	}

	fmt.Fprintln(out)
	if len(r.errors) > 0 || r.hasFailures {
		fmt.Fprintf(errOut, "  %s\n", r.colors.Red(fmt.Sprintf("Export failed after %s", formatDuration(duration))))
	} else {
		fmt.Fprintf(out, "  %s%d files written\n", r.colors.Green("✓ "), r.fileCount)
		fmt.Fprintf(out, "  %sExport complete in %s\n", r.colors.Green("✓ "), formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Fprintf(out, "\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) renderItems(w io.Writer, items []BuildError, marker string) {
	for _, item := range items {
		fmt.Fprintf(w, "  %s %s\n", marker, item.Item)
		fmt.Fprintf(w, "    %s\n", item.Message)

		for _, detail := range deduplicateStrings(item.Details) {
			fmt.Fprintf(w, "      • %s\n", detail)
		}
	}
}

func (r *BuildReport) HasFailures() bool {
	return r.hasFailures
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	seen := make(map[string]int)
	order := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] == 0 {
			order = append(order, item)
		}
		seen[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if count := seen[item]; count > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, count))
		} else {
			result = append(result, item)
		}
	}

	return result
}
