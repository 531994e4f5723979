package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrgriffin/site/internal/adapters/fs"
	"github.com/jrgriffin/site/internal/content"
)

func TestInitProjectWritesStarterFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mysite")
	out, log := quietOutput()

	result := NewInitService(fs.NewOSFileSystem(), out).InitProject(InitInput{ProjectDir: dir})
	require.NoError(t, result.Error)
	assert.Len(t, result.Files, 2)
	assert.Contains(t, log.String(), "Project initialized")

	c, err := content.LoadFile(fs.NewOSFileSystem(), filepath.Join(dir, ContentFileName))
	require.NoError(t, err)
	assert.Equal(t, content.Default(), c)

	cfg, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "content_file: content.yaml")
}

func TestInitProjectRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, ContentFileName)
	require.NoError(t, os.WriteFile(existing, []byte("brand: Mine\n"), 0644))

	out, _ := quietOutput()
	svc := NewInitService(fs.NewOSFileSystem(), out)

	result := svc.InitProject(InitInput{ProjectDir: dir})
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "already exists")

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "brand: Mine\n", string(data))

	result = svc.InitProject(InitInput{ProjectDir: dir, Force: true})
	require.NoError(t, result.Error)

	c, err := content.LoadFile(fs.NewOSFileSystem(), existing)
	require.NoError(t, err)
	assert.Equal(t, content.Default().Brand, c.Brand)
}
