package usecase

import (
	"fmt"
	"path/filepath"

	"github.com/jrgriffin/site/internal/content"
)

const (
	ConfigFileName  = "site.yaml"
	ContentFileName = "content.yaml"
)

const starterConfig = `# Site configuration. Every key can also be set with a SITE_ environment
# variable, e.g. SITE_ADDR=:9000.
addr: ":8080"
out_dir: dist
content_file: content.yaml
# public_dir: public
log_format: text
scripts:
  - https://cdn.tailwindcss.com
`

type InitInput struct {
	ProjectDir string
	Force      bool
}

type InitOutput struct {
	Files []string
	Error error
}

type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

// InitProject writes a starter site.yaml and a content.yaml holding the
// built-in copy, ready to edit.
func (s *InitService) InitProject(input InitInput) InitOutput {
	s.cli.PrintHeader("Site Init")

	dir := input.ProjectDir
	if dir == "" {
		dir = "."
	}

	doc, err := content.Encode(content.Default())
	if err != nil {
		return InitOutput{Error: fmt.Errorf("failed to encode content: %w", err)}
	}

	files := []struct {
		name string
		data []byte
	}{
		{name: ConfigFileName, data: []byte(starterConfig)},
		{name: ContentFileName, data: doc},
	}

	if !input.Force {
		for _, f := range files {
			path := filepath.Join(dir, f.name)
			if s.fs.FileExists(path) {
				return InitOutput{Error: fmt.Errorf("%s already exists (use --force to overwrite)", path)}
			}
		}
	}

	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return InitOutput{Error: fmt.Errorf("failed to create directory: %w", err)}
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := s.fs.WriteFile(path, f.data, 0644); err != nil {
			return InitOutput{Files: written, Error: fmt.Errorf("failed to write %s: %w", path, err)}
		}
		written = append(written, path)
		s.cli.PrintFile(path)
	}

	s.cli.PrintSuccess("Project initialized")
	return InitOutput{Files: written}
}
