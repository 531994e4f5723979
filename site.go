// Package site renders the profile page and serves or exports it.
package site

import (
	"context"
	"embed"
	"io"
	iofs "io/fs"
	"log/slog"
	"net/http"

	"github.com/jrgriffin/site/internal/adapters/cli"
	"github.com/jrgriffin/site/internal/adapters/fs"
	httpadapter "github.com/jrgriffin/site/internal/adapters/http"
	"github.com/jrgriffin/site/internal/content"
	"github.com/jrgriffin/site/internal/core"
	"github.com/jrgriffin/site/internal/usecase"
	"github.com/jrgriffin/site/internal/view"
)

//go:embed all:public
var embedded embed.FS

type Content = content.Content

type Finding = usecase.Finding

type Mode = core.Mode

const (
	ModeProd = core.ModeProd
	ModeDev  = core.ModeDev
)

type Option func(*App)

func WithContent(c Content) Option {
	return func(a *App) { a.content = c.Clone() }
}

func WithMode(m Mode) Option {
	return func(a *App) { a.mode = m }
}

// WithPublic replaces the embedded public directory. A nil fs disables
// asset serving and copying.
func WithPublic(public iofs.FS) Option {
	return func(a *App) {
		a.public = public
		a.publicSet = true
	}
}

// WithPublicDir serves and exports the public directory at dir on disk. The
// directory is also protected from export cleaning.
func WithPublicDir(dir string) Option {
	return func(a *App) {
		a.public = fs.NewOSFileSystem().Public(dir)
		a.publicDir = dir
		a.publicSet = true
	}
}

func WithStylesheets(hrefs ...string) Option {
	return func(a *App) { a.view.Stylesheets = append([]string(nil), hrefs...) }
}

func WithScripts(srcs ...string) Option {
	return func(a *App) { a.view.Scripts = append([]string(nil), srcs...) }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

type App struct {
	content   Content
	mode      Mode
	public    iofs.FS
	publicSet bool
	publicDir string
	view      view.Options
	logger    *slog.Logger
	renderer  *view.Renderer
}

func New(opts ...Option) *App {
	app := &App{
		content: content.Default(),
		mode:    ModeProd,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(app)
	}

	if !app.publicSet {
		app.public = EmbeddedPublic()
	}
	app.renderer = view.NewRenderer(app.view)

	return app
}

// EmbeddedPublic returns the public directory compiled into the binary.
func EmbeddedPublic() iofs.FS {
	sub, err := iofs.Sub(embedded, "public")
	if err != nil {
		return nil
	}
	return sub
}

func (a *App) Content() Content {
	return a.content.Clone()
}

func (a *App) Mode() Mode {
	return a.mode
}

// Render writes the full document.
func (a *App) Render(w io.Writer) error {
	return a.renderer.Render(w, a.content)
}

func (a *App) Handler() http.Handler {
	service := usecase.NewPageService(a.renderer)
	page := httpadapter.NewPageHandler(service, a.content, a.mode == ModeDev, a.logger)
	return httpadapter.NewRouter(page, a.public, a.logger)
}

type ExportOptions struct {
	OutputDir string
	Clean     bool
	Stdout    io.Writer
	Stderr    io.Writer
	NoColor   bool
}

// Export writes index.html plus the public files into opts.OutputDir and
// returns the paths written.
func (a *App) Export(ctx context.Context, opts ExportOptions) ([]string, error) {
	out := a.output(opts.Stdout, opts.Stderr, opts.NoColor)

	service := usecase.NewExportService(a.renderer, fs.NewOSFileSystem(), out, a.logger)
	result := service.Export(ctx, usecase.ExportInput{
		Content:   a.content,
		Public:    a.public,
		PublicDir: a.publicDir,
		OutputDir: opts.OutputDir,
		Clean:     opts.Clean,
	})
	return result.Files, result.Error
}

// Check renders the page and reports authoring problems in the content.
func (a *App) Check(ctx context.Context) ([]Finding, error) {
	service := usecase.NewCheckService(a.renderer)
	result := service.Check(ctx, usecase.CheckInput{
		Content: a.content,
		Public:  a.public,
	})
	return result.Findings, result.Error
}

func (a *App) output(stdout, stderr io.Writer, noColor bool) *cli.Output {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = stdout
	}
	out := cli.NewOutputTo(stdout, stderr)
	if noColor {
		out.DisableColors()
	}
	return out
}
