package entities

// CloneStatus is the outcome of syncing one sibling repository.
type CloneStatus string

const (
	CloneStatusCloned  CloneStatus = "cloned"
	CloneStatusSkipped CloneStatus = "skipped"
	CloneStatusFailed  CloneStatus = "failed"
	CloneStatusPlanned CloneStatus = "planned" // dry run only
)

// CloneResult records what happened to a single repository during a sync.
type CloneResult struct {
	Name   string      `json:"name"`
	URL    string      `json:"url"`
	Path   string      `json:"path"`
	Status CloneStatus `json:"status"`
	Error  string      `json:"error,omitempty"`
}

// CloneReport is the tally of a sync run, in manifest order.
type CloneReport struct {
	Root    string        `json:"root"`
	Results []CloneResult `json:"results"`
}

// Count returns how many results have the given status.
func (r *CloneReport) Count(status CloneStatus) int {
	count := 0
	for _, result := range r.Results {
		if result.Status == status {
			count++
		}
	}
	return count
}

// Failed reports whether any repository failed to clone.
func (r *CloneReport) Failed() bool {
	return r.Count(CloneStatusFailed) > 0
}
