package repositories

import "context"

// ClonerRepository abstracts how a remote repository is materialized on disk.
type ClonerRepository interface {
	// Name returns the cloner identifier (e.g. "go-git", "git").
	Name() string

	// Available reports whether the cloner can run in this environment.
	Available() bool

	// Clone clones url into dir. dir must not exist beforehand; on failure the
	// cloner removes whatever it created so a later run starts clean.
	Clone(ctx context.Context, url, dir string) error
}
