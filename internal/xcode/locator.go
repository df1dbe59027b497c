package xcode

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

var projectPattern = regexp.MustCompile(`^(\w+)\.xcodeproj$`)

// Locator finds build products in the Xcode derived data directory
type Locator struct {
	DerivedDataRoot string
}

// NewLocator creates a locator rooted at derivedDataRoot
func NewLocator(derivedDataRoot string) *Locator {
	return &Locator{DerivedDataRoot: derivedDataRoot}
}

// ProjectName returns the name of the first <Name>.xcodeproj directory in
// projectPath. Entries are examined in lexical order.
func (l *Locator) ProjectName(projectPath string) (string, error) {
	entries, err := os.ReadDir(projectPath)
	if err != nil {
		return "", fmt.Errorf("%w at %s: %v", ErrNoProject, projectPath, err)
	}

	for _, e := range entries {
		m := projectPattern.FindStringSubmatch(e.Name())
		if m == nil || !isDir(filepath.Join(projectPath, e.Name())) {
			continue
		}
		return m[1], nil
	}
	return "", fmt.Errorf("%w at %s", ErrNoProject, projectPath)
}

// BuildDir returns the name of the derived data directory for projectName.
// When several directories match, the most recently modified wins.
func (l *Locator) BuildDir(projectName string) (string, error) {
	entries, err := os.ReadDir(l.DerivedDataRoot)
	if err != nil {
		return "", fmt.Errorf("%w for %s: %v", ErrNoBuild, projectName, err)
	}

	type candidate struct {
		name    string
		modTime time.Time
	}
	var matches []candidate
	for _, e := range entries {
		if !strings.Contains(e.Name(), projectName) {
			continue
		}
		info, err := os.Stat(filepath.Join(l.DerivedDataRoot, e.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		matches = append(matches, candidate{name: e.Name(), modTime: info.ModTime()})
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w for %s", ErrNoBuild, projectName)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].modTime.After(matches[j].modTime)
	})
	return matches[0].name, nil
}

// AppPath returns the path of the simulator app bundle built from the
// project in projectPath.
func (l *Locator) AppPath(projectPath, buildConfig, appName string) (string, error) {
	name, err := l.ProjectName(projectPath)
	if err != nil {
		return "", err
	}
	dir, err := l.BuildDir(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.DerivedDataRoot, dir, "Build", "Products", buildConfig+"-"+simulatorSDK, appName), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
