//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"

	"github.com/budgetanalyzer/orchestration/internal/domain/repositories"
)

// SpyClonerRepository implements repositories.ClonerRepository as a configurable spy.
// A successful clone creates the target directory so re-runs observe it.
type SpyClonerRepository struct {
	// --- identity ---
	ClonerName  string
	Unavailable bool

	// --- Clone ---
	CloneErr    error            // returned for every URL not in FailingURLs
	FailingURLs map[string]error // url -> error
	CloneCalls  []CloneCall
}

// CloneCall records a single invocation of Clone.
type CloneCall struct {
	URL string
	Dir string
}

var _ repositories.ClonerRepository = (*SpyClonerRepository)(nil)

func (s *SpyClonerRepository) Name() string {
	if s.ClonerName == "" {
		return "spy"
	}
	return s.ClonerName
}

func (s *SpyClonerRepository) Available() bool { return !s.Unavailable }

func (s *SpyClonerRepository) Clone(_ context.Context, url, dir string) error {
	s.CloneCalls = append(s.CloneCalls, CloneCall{URL: url, Dir: dir})
	if err, ok := s.FailingURLs[url]; ok {
		return err
	}
	if s.CloneErr != nil {
		return s.CloneErr
	}
	return os.MkdirAll(dir, 0o755)
}

// ClonedURLs returns the URLs passed to Clone, in call order.
func (s *SpyClonerRepository) ClonedURLs() []string {
	urls := make([]string, 0, len(s.CloneCalls))
	for _, call := range s.CloneCalls {
		urls = append(urls, call.URL)
	}
	return urls
}
