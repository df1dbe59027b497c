package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots", "pt-BR")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestCalculateChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))

	sum, err := CalculateChecksum(path)
	require.NoError(t, err)
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sum)

	_, err = CalculateChecksum(filepath.Join(t.TempDir(), "missing.png"))
	require.ErrorContains(t, err, "failed to open file")
}

func TestDiscoverFiles_MatchesScreenshots(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.PNG", "notes.txt", "sub/c.png", "sub/d.jpg", "e.jpeg"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(name), 0644))
	}

	files, err := DiscoverFiles(dir, ScreenshotPattern)
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		rel = append(rel, f.RelPath)
	}
	require.Equal(t, []string{"a.PNG", "b.png", "sub/c.png"}, rel)
	require.Equal(t, int64(len("b.png")), files[1].Size)
}

func TestDiscoverFiles_MissingDir(t *testing.T) {
	files, err := DiscoverFiles(filepath.Join(t.TempDir(), "nope"), ScreenshotPattern)
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestDiscoverFiles_InvalidPattern(t *testing.T) {
	_, err := DiscoverFiles(t.TempDir(), "(")
	require.ErrorContains(t, err, "invalid pattern")
}

func TestWithChecksums(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("abc"), 0644))

	files, err := DiscoverFiles(dir, ScreenshotPattern)
	require.NoError(t, err)
	files, err = WithChecksums(files)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Len(t, files[0].Checksum, 64)
}
