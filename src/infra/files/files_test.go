package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"home relative", "~/media/a.json", filepath.Join(home, "media/a.json")},
		{"bare filename", "a.json", filepath.Join(cwd, "a.json")},
		{"relative with separator", "data/a.json", "data/a.json"},
		{"absolute", "/tmp/a.json", "/tmp/a.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFreePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	assert.Equal(t, path, FreePath(path))

	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))
	assert.Equal(t, filepath.Join(dir, "out-1.json"), FreePath(path))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "out-1.json"), []byte("[]"), 0644))
	assert.Equal(t, filepath.Join(dir, "out-2.json"), FreePath(path))
}

func TestWriteThenReadEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.json")
	entries := []Entry{
		{Fullpath: "/music/a.mp3", Type: "audio", Metadata: map[string]string{"creator": "x", "runtime": "3:00"}},
		{Fullpath: "/docs/b.pdf", Type: "document", Metadata: map[string]string{"creator": "y"}},
	}
	require.NoError(t, WriteEntries(path, entries))

	got, err := ReadEntries(path)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".mediashelf-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWriteEntries_EmptyIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, WriteEntries(path, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestReadEntries_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fullpath": 1}`), 0644))
	_, err := ReadEntries(path)
	assert.Error(t, err)
}
