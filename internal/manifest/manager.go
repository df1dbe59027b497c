// Package manifest keeps a record of the screenshots captured into a
// destination directory so repeated runs can report what changed.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/takeshy/simshots/internal/fileutil"
)

// FileName is the manifest file written inside the destination directory
const FileName = ".simshots.json"

// Manager handles manifest operations
type Manager struct {
	path string
	data *Manifest
	mu   sync.RWMutex
	now  func() time.Time

	// baseline holds the checksums as loaded, keyed by language then path.
	baseline map[string]map[string]string
	// seen holds the paths recorded since the manager was created.
	seen map[string]map[string]bool
}

// NewManager loads the manifest of destination, or starts an empty one
func NewManager(destination string) (*Manager, error) {
	m := &Manager{
		path: filepath.Join(destination, FileName),
		data: &Manifest{
			Languages: make(map[string]*Language),
		},
		now:      time.Now,
		baseline: make(map[string]map[string]string),
		seen:     make(map[string]map[string]bool),
	}

	if err := m.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	for code, lang := range m.data.Languages {
		sums := make(map[string]string, len(lang.Screenshots))
		for p, s := range lang.Screenshots {
			sums[p] = s.Checksum
		}
		m.baseline[code] = sums
	}

	return m, nil
}

// Path returns the manifest file location
func (m *Manager) Path() string {
	return m.path
}

func (m *Manager) load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, m.data); err != nil {
		return err
	}
	if m.data.Languages == nil {
		m.data.Languages = make(map[string]*Language)
	}
	return nil
}

// Save saves the manifest to disk
func (m *Manager) Save() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := json.MarshalIndent(m.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	return os.WriteFile(m.path, data, 0644)
}

// Record stores the files found in a language directory after a launch on
// device and classifies them against the manifest as it was loaded. Several
// devices share one language directory, so a file already recorded in this
// session with the same checksum belongs to an earlier launch and is skipped.
func (m *Manager) Record(language, device string, files []fileutil.FileInfo) Changes {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	lang := m.data.Languages[language]
	if lang == nil {
		lang = &Language{
			Code:        language,
			Screenshots: make(map[string]Screenshot),
		}
		m.data.Languages[language] = lang
	}
	seen := m.seen[language]
	if seen == nil {
		seen = make(map[string]bool)
		m.seen[language] = seen
	}
	base := m.baseline[language]

	var c Changes
	for _, f := range files {
		cur, ok := lang.Screenshots[f.RelPath]
		if seen[f.RelPath] && ok && cur.Checksum == f.Checksum {
			continue
		}
		seen[f.RelPath] = true

		prev, inBase := base[f.RelPath]
		switch {
		case !inBase:
			c.New++
		case prev != f.Checksum:
			c.Changed++
		default:
			c.Unchanged++
			if ok && cur.Checksum == f.Checksum {
				continue
			}
		}
		lang.Screenshots[f.RelPath] = Screenshot{
			Path:       f.RelPath,
			Checksum:   f.Checksum,
			Size:       f.Size,
			Device:     device,
			CapturedAt: now,
		}
		lang.UpdatedAt = now
	}
	return c
}

// Summary classifies every screenshot recorded since the manager was
// created against the manifest as it was loaded. Each path counts once no
// matter how many launches wrote it.
func (m *Manager) Summary() Changes {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var c Changes
	for code, paths := range m.seen {
		lang := m.data.Languages[code]
		base := m.baseline[code]
		for p := range paths {
			prev, ok := base[p]
			switch {
			case !ok:
				c.New++
			case prev != lang.Screenshots[p].Checksum:
				c.Changed++
			default:
				c.Unchanged++
			}
		}
	}
	return c
}

// GetLanguage gets the recorded screenshots of a language
func (m *Manager) GetLanguage(code string) (*Language, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lang, ok := m.data.Languages[code]
	return lang, ok
}

// GetAllScreenshots returns the screenshots of a language sorted by path
func (m *Manager) GetAllScreenshots(code string) []Screenshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lang := m.data.Languages[code]
	if lang == nil {
		return nil
	}

	shots := make([]Screenshot, 0, len(lang.Screenshots))
	for _, s := range lang.Screenshots {
		shots = append(shots, s)
	}
	sort.Slice(shots, func(i, j int) bool {
		return shots[i].Path < shots[j].Path
	})
	return shots
}
