package usecase

import (
	"bytes"
	"context"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jrgriffin/site/internal/adapters/cli"
	"github.com/jrgriffin/site/internal/content"
	"github.com/jrgriffin/site/internal/core"
)

const indexFile = "index.html"

type ExportInput struct {
	Content   content.Content
	Public    iofs.FS
	PublicDir string
	OutputDir string
	Clean     bool
}

type ExportOutput struct {
	Files []string
	Error error
}

type ExportService struct {
	renderer Renderer
	fs       FileSystem
	cli      CLIOutput
	logger   *slog.Logger
}

func NewExportService(renderer Renderer, fs FileSystem, cli CLIOutput, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{
		renderer: renderer,
		fs:       fs,
		cli:      cli,
		logger:   logger,
	}
}

func (s *ExportService) Export(ctx context.Context, input ExportInput) ExportOutput {
	s.cli.PrintHeader("Site Export")

	if input.OutputDir == "" {
		return ExportOutput{Error: fmt.Errorf("output directory is required")}
	}

	var files []string

	report := cli.NewBuildReport(s.cli, input.OutputDir)
	defer func() {
		report.SetFileCount(len(files))
		report.Render()
	}()

	if input.Clean {
		step := report.StartStep("Cleaning output directory")
		target, err := cleanTarget(input.OutputDir, input.PublicDir)
		if err != nil {
			report.EndStep(step, false, err.Error())
			return ExportOutput{Error: err}
		}
		if err := s.fs.RemoveAll(target); err != nil {
			report.EndStep(step, false, err.Error())
			return ExportOutput{Error: fmt.Errorf("failed to clean output directory: %w", err)}
		}
		report.EndStep(step, true, "")
	}

	step := report.StartStep("Creating output directory")
	if err := s.fs.MkdirAll(input.OutputDir, 0755); err != nil {
		report.EndStep(step, false, err.Error())
		return ExportOutput{Error: fmt.Errorf("failed to create output directory: %w", err)}
	}
	report.EndStep(step, true, "")

	if err := ctx.Err(); err != nil {
		return ExportOutput{Error: err}
	}

	step = report.StartStep("Rendering " + indexFile)
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, input.Content); err != nil {
		report.EndStep(step, false, err.Error())
		report.AddError(indexFile, "Failed to render page", []string{err.Error()})
		return ExportOutput{Error: fmt.Errorf("failed to render page: %w", err)}
	}
	indexPath := filepath.Join(input.OutputDir, indexFile)
	if err := s.fs.WriteFile(indexPath, buf.Bytes(), 0644); err != nil {
		report.EndStep(step, false, err.Error())
		return ExportOutput{Error: fmt.Errorf("failed to write %s: %w", indexPath, err)}
	}
	report.EndStep(step, true, "")
	files = append(files, indexPath)
	s.logger.Debug("export.page_written", "path", indexPath, "bytes", buf.Len())

	if err := ctx.Err(); err != nil {
		return ExportOutput{Files: files, Error: err}
	}

	if input.Public == nil {
		report.AddWarning("Public assets", "No public directory configured", nil)
		return ExportOutput{Files: files}
	}

	step = report.StartStep("Copying public assets")
	copied, warnings := s.copyPublic(input.Public, input.OutputDir)
	files = append(files, copied...)
	for _, w := range warnings {
		report.AddWarning("Public assets", "Failed to copy asset", []string{w})
	}
	report.EndStep(step, true, "")

	return ExportOutput{Files: files}
}

func (s *ExportService) copyPublic(public iofs.FS, outputDir string) ([]string, []string) {
	var copied, warnings []string

	err := iofs.WalkDir(public, ".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", path, err))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if path == indexFile {
			warnings = append(warnings, fmt.Sprintf("%s: skipped, would overwrite the rendered page", path))
			return nil
		}

		data, err := iofs.ReadFile(public, path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", path, err))
			return nil
		}

		dest := filepath.Join(outputDir, filepath.FromSlash(path))
		if err := s.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", path, err))
			return nil
		}
		if err := s.fs.WriteFile(dest, data, 0644); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", path, err))
			return nil
		}

		copied = append(copied, dest)
		s.logger.Debug("export.asset_copied", "path", dest, "bytes", len(data))
		return nil
	})
	if err != nil {
		warnings = append(warnings, err.Error())
	}

	return copied, warnings
}

// cleanTarget resolves dir and refuses to clean the filesystem root, the home
// directory, the working directory or one of its parents, and anything
// overlapping the public directory.
func cleanTarget(dir, publicDir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &core.OpError{Op: "export.clean", Kind: core.KindInvalidConfig, Path: dir, Err: err}
	}

	refuse := func(what string) error {
		return &core.OpError{
			Op:   "export.clean",
			Kind: core.KindInvalidConfig,
			Path: abs,
			Err:  fmt.Errorf("refusing to clean %s", what),
		}
	}

	if abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return "", refuse("the filesystem root")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" && within(abs, home) {
		return "", refuse("the home directory or one of its parents")
	}
	if wd, err := os.Getwd(); err == nil && within(abs, wd) {
		return "", refuse("the working directory or one of its parents")
	}
	if publicDir != "" {
		pub, err := filepath.Abs(publicDir)
		if err == nil && (within(abs, pub) || within(pub, abs)) {
			return "", refuse("a directory overlapping the public directory")
		}
	}

	return abs, nil
}

// within reports whether path is parent or a descendant of it.
func within(parent, path string) bool {
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
