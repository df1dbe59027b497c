package manifest

import "time"

// Screenshot represents one captured image
type Screenshot struct {
	Path       string    `json:"path"`
	Checksum   string    `json:"checksum"`
	Size       int64     `json:"size"`
	Device     string    `json:"device"`
	CapturedAt time.Time `json:"captured_at"`
}

// Language represents the screenshots captured for one language directory
type Language struct {
	Code        string                `json:"code"`
	UpdatedAt   time.Time             `json:"updated_at"`
	Screenshots map[string]Screenshot `json:"screenshots"` // key is path relative to the language directory
}

// Manifest represents all languages captured into a destination
type Manifest struct {
	Languages map[string]*Language `json:"languages"` // key is language code
}

// Changes counts how a directory differs from the previous capture
type Changes struct {
	New       int
	Changed   int
	Unchanged int
}

// Total returns the number of screenshots examined
func (c Changes) Total() int {
	return c.New + c.Changed + c.Unchanged
}

// Add returns the sum of c and o
func (c Changes) Add(o Changes) Changes {
	return Changes{
		New:       c.New + o.New,
		Changed:   c.Changed + o.Changed,
		Unchanged: c.Unchanged + o.Unchanged,
	}
}
