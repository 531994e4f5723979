package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupText(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Output: &buf})
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	L().Info("page.rendered", "bytes", 42)
	L().Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "msg=page.rendered")
	assert.Contains(t, out, "bytes=42")
	assert.NotContains(t, out, "hidden")
}

func TestSetupJSONDebug(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Output: &buf, Format: FormatJSON, Debug: true})
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	L().Debug("export.asset_copied", "path", "dist/headshot.png")

	out := buf.String()
	assert.Contains(t, out, `"msg":"export.asset_copied"`)
	assert.Contains(t, out, `"source"`)
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "site.log")
	cleanup, err := Setup(Config{File: path})
	require.NoError(t, err)

	L().Info("server.started")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "server.started"))
}

func TestSetupUnknownFormat(t *testing.T) {
	_, err := Setup(Config{Format: "xml"})
	require.Error(t, err)
	assert.NotNil(t, L())
}

func TestCleanupDiscards(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Output: &buf})
	require.NoError(t, err)
	require.NoError(t, cleanup())

	L().Info("after cleanup")
	assert.Empty(t, buf.String())
}
