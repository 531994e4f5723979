package usecase

import (
	"io"

	"github.com/jrgriffin/site/internal/adapters/fs"
	"github.com/jrgriffin/site/internal/content"
)

type Renderer interface {
	Render(w io.Writer, c content.Content) error
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)

	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Stdout() io.Writer
	Stderr() io.Writer
}

type FileSystem = fs.FileSystem
