package xcode

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(root, n), 0755))
	}
}

func TestProjectName(t *testing.T) {
	project := t.TempDir()
	mkdirs(t, project, "Pods", "Demo.xcodeproj", "Zeta.xcodeproj")
	require.NoError(t, os.WriteFile(filepath.Join(project, "Alpha.xcodeproj"), nil, 0644))

	l := NewLocator(t.TempDir())
	name, err := l.ProjectName(project)

	require.NoError(t, err)
	require.Equal(t, "Demo", name)
}

func TestProjectName_IgnoresNonWordNames(t *testing.T) {
	project := t.TempDir()
	mkdirs(t, project, "My App.xcodeproj", "Demo.xcodeproj.bak")

	_, err := NewLocator(t.TempDir()).ProjectName(project)

	require.ErrorIs(t, err, ErrNoProject)
	require.Contains(t, err.Error(), "no Xcode project found at "+project)
}

func TestProjectName_MissingDir(t *testing.T) {
	_, err := NewLocator(t.TempDir()).ProjectName(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, ErrNoProject)
}

func TestBuildDir_PrefersMostRecentlyModified(t *testing.T) {
	derived := t.TempDir()
	mkdirs(t, derived, "Demo-old", "Demo-new", "Other-abc")
	require.NoError(t, os.WriteFile(filepath.Join(derived, "Demo-file"), nil, 0644))

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(derived, "Demo-old"), old, old))

	name, err := NewLocator(derived).BuildDir("Demo")

	require.NoError(t, err)
	require.Equal(t, "Demo-new", name)
}

func TestBuildDir_NoMatch(t *testing.T) {
	derived := t.TempDir()
	mkdirs(t, derived, "Other-abc")

	_, err := NewLocator(derived).BuildDir("Demo")

	require.ErrorIs(t, err, ErrNoBuild)
	require.Contains(t, err.Error(), "no built project found for Demo")
}

func TestAppPath(t *testing.T) {
	project := t.TempDir()
	derived := t.TempDir()
	mkdirs(t, project, "Demo.xcodeproj")
	mkdirs(t, derived, "Demo-hash")

	path, err := NewLocator(derived).AppPath(project, "Release", "Demo.app")

	require.NoError(t, err)
	require.Equal(t, filepath.Join(derived, "Demo-hash", "Build", "Products", "Release-iphonesimulator", "Demo.app"), path)
}
