package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty uses default", "", "data.csv"},
		{"blank uses default", "   ", "data.csv"},
		{"appends extension", "people", "people.csv"},
		{"keeps extension", "people.csv", "people.csv"},
		{"trims", "  people  ", "people.csv"},
		{"other extension still gets csv", "people.txt", "people.txt.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, "data.csv", ".csv"))
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("work", "a.csv"), Resolve("work", "a.csv"))
	assert.Equal(t, "a.csv", Resolve("", "a.csv"))

	abs := filepath.Join(t.TempDir(), "a.csv")
	assert.Equal(t, abs, Resolve("work", abs))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(path, []byte("id\n1\n"), 0644))

	assert.True(t, Exists(path))
	assert.False(t, Exists(filepath.Join(dir, "missing.csv")))
	assert.False(t, Exists(dir), "directories are not data files")
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.csv"), 0755))

	got, err := List(dir, ".csv")
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"a.csv", "b.csv"}, got); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestList_FollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(target, []byte("id\n1\n"), 0644))
	if err := os.Symlink(target, filepath.Join(dir, "linked.csv")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.csv"), filepath.Join(dir, "dangling.csv")))

	got, err := List(dir, ".csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"linked.csv"}, got)
	assert.True(t, Exists(filepath.Join(dir, "linked.csv")))
}

func TestList_Empty(t *testing.T) {
	got, err := List(t.TempDir(), ".csv")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestList_MissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"), ".csv")
	assert.Error(t, err)
}
