package content

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"

	"gopkg.in/yaml.v3"

	"github.com/jrgriffin/site/internal/core"
)

// Reader is the part of the filesystem port content loading needs. Both
// fs.OSFileSystem and fstest.MapFS satisfy it.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// LoadFile overlays the YAML document at path on top of Default. Fields the
// document omits keep their default value; lists it provides replace the
// default list wholesale. An empty path returns Default unchanged.
func LoadFile(r Reader, path string) (Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := r.ReadFile(path)
	if err != nil {
		kind := core.KindIO
		if errors.Is(err, iofs.ErrNotExist) {
			kind = core.KindNotFound
		}
		return Content{}, &core.OpError{
			Op:   "content.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	if err := Decode(b, &c); err != nil {
		return Content{}, &core.OpError{
			Op:   "content.load",
			Kind: core.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return c, nil
}

// Decode applies a YAML document to c. Unknown keys are rejected so a typo
// does not silently fall back to the default copy.
func Decode(b []byte, c *Content) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Encode writes c as a YAML document that Decode accepts unchanged.
func Encode(c Content) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
