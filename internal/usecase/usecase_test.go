package usecase

import (
	"bytes"
	"errors"
	"io"

	"github.com/jrgriffin/site/internal/adapters/cli"
	"github.com/jrgriffin/site/internal/content"
)

type stubRenderer struct {
	html  string
	err   error
	calls int
}

func (r *stubRenderer) Render(w io.Writer, c content.Content) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	_, err := io.WriteString(w, r.html)
	return err
}

var errRender = errors.New("render failed")

func quietOutput() (*cli.Output, *bytes.Buffer) {
	var buf bytes.Buffer
	out := cli.NewOutputTo(&buf, &buf)
	out.DisableColors()
	return out, &buf
}
