package entities

// RepositoryPaths is the resolved location and port mapping of one sibling repository.
type RepositoryPaths struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Port      int    `json:"port,omitempty"`
	DebugPort int    `json:"debug_port,omitempty"`
}

// PathsReport is what the Tilt configuration consumes: the workspace root and
// each repository's path and ports.
type PathsReport struct {
	Root         string            `json:"root"`
	Repositories []RepositoryPaths `json:"repositories"`
}
