package capture

import "github.com/takeshy/simshots/internal/manifest"

// Result represents the outcome of one device and language launch
type Result struct {
	Device    string
	Language  string
	OutputDir string
	Err       error
	Changes   manifest.Changes
}

// Report summarizes a capture run
type Report struct {
	AppPath      string
	Built        bool
	DryRun       bool
	ManifestPath string
	Results      []Result
	// Changes counts each screenshot once across the whole run. It is nil
	// when no manifest was kept.
	Changes *manifest.Changes
}

// Failed returns the results whose launch failed
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Totals returns the screenshot changes of the whole run. Without a run
// summary it falls back to the sum of every result.
func (r *Report) Totals() manifest.Changes {
	if r.Changes != nil {
		return *r.Changes
	}
	var total manifest.Changes
	for _, res := range r.Results {
		total = total.Add(res.Changes)
	}
	return total
}
