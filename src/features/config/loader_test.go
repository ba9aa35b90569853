package config

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	mgr, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fail", mgr.Get().Export.Overwrite)
	assert.FileExists(t, path)

	// The written default must load back cleanly.
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, mgr.Get().Server.Port, again.Get().Server.Port)
}

func TestLoad_RejectsUnknownPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export:\n  overwrite: clobber\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export:\n  overwrite: fail\nlibrary:\n  autoload: [a.json]\n"), 0644))
	t.Setenv("MEDIASHELF_EXPORT_OVERWRITE", "rename")

	mgr, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rename", mgr.Get().Export.Overwrite)
	assert.Equal(t, []string{"a.json"}, mgr.Get().Library.Autoload)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "> ", mgr.Get().Shell.Prompt)
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv("MEDIASHELF_CONFIG", "")
	assert.Equal(t, DefaultPath, PathFromEnv())
	t.Setenv("MEDIASHELF_CONFIG", "/etc/mediashelf.yaml")
	assert.Equal(t, "/etc/mediashelf.yaml", PathFromEnv())
}

func TestManager_GetYAML(t *testing.T) {
	mgr := NewManager(createDefaultConfig())
	assert.Contains(t, mgr.GetYAML(), "overwrite: fail")
	assert.Contains(t, mgr.GetJSON(), `"Overwrite":"fail"`)
}

func TestManager_ApplySavesAndValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	mgr, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, mgr.Path())

	cfg, err := mgr.Apply([]byte("export:\n  overwrite: rename\nlibrary:\n  autoload: [b.json]\n"))
	require.NoError(t, err)
	assert.Equal(t, "rename", cfg.Export.Overwrite)
	assert.Equal(t, "rename", mgr.Get().Export.Overwrite)
	assert.Equal(t, uint32(3535), mgr.Get().Server.Port, "keys not in the document are kept")

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rename", reloaded.Get().Export.Overwrite)
	assert.Equal(t, []string{"b.json"}, reloaded.Get().Library.Autoload)

	_, err = mgr.Apply([]byte("export:\n  overwrite: clobber\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = mgr.Apply([]byte("export: [not, a, map]\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "rename", mgr.Get().Export.Overwrite, "a rejected document changes nothing")
}

func TestRoutes_PutConfig(t *testing.T) {
	mgr := NewManager(createDefaultConfig())
	app := fiber.New()
	RegisterRoutes(app, mgr)

	req := httptest.NewRequest(http.MethodPut, "/config", strings.NewReader("export:\n  overwrite: overwrite\n"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "overwrite", mgr.Get().Export.Overwrite)

	req = httptest.NewRequest(http.MethodPut, "/config", strings.NewReader("server:\n  enabled: true\n  port: 0\n"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "overwrite", mgr.Get().Export.Overwrite)
}
