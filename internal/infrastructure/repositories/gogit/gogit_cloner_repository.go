package gogit

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	logger "github.com/sirupsen/logrus"

	"github.com/budgetanalyzer/orchestration/internal/domain/repositories"
)

const (
	clonerName    = "go-git"
	tokenUsername = "x-access-token"
)

// GoGitClonerRepository clones in-process with go-git, so no git binary is needed.
type GoGitClonerRepository struct {
	token    string
	progress io.Writer
}

// NewClonerRepository creates a go-git cloner authenticating HTTPS remotes with
// GITHUB_TOKEN or GH_TOKEN when either is set.
func NewClonerRepository() repositories.ClonerRepository {
	return &GoGitClonerRepository{token: resolveTokenFromEnv()}
}

// NewClonerRepositoryWithToken creates a go-git cloner with an explicit token
// and an optional progress writer.
func NewClonerRepositoryWithToken(token string, progress io.Writer) *GoGitClonerRepository {
	return &GoGitClonerRepository{token: token, progress: progress}
}

func (it *GoGitClonerRepository) Name() string    { return clonerName }
func (it *GoGitClonerRepository) Available() bool { return true }

// Clone performs a full clone of url into dir.
func (it *GoGitClonerRepository) Clone(ctx context.Context, url, dir string) error {
	//nolint:exhaustruct // Minimal CloneOptions initialization with required fields only
	opts := &git.CloneOptions{
		URL:      url,
		Progress: it.progress,
	}
	if it.token != "" && strings.HasPrefix(url, "https://") {
		opts.Auth = &githttp.BasicAuth{Username: tokenUsername, Password: it.token}
	}

	// Only a directory created by this clone is removed on failure.
	existed := pathExists(dir)
	logger.Debugf("[%s] Cloning %s into %s", clonerName, url, dir)
	if _, err := git.PlainCloneContext(ctx, dir, false, opts); err != nil {
		if !existed {
			if rmErr := os.RemoveAll(dir); rmErr != nil {
				logger.Warnf("[%s] Failed to clean up %s: %v", clonerName, dir, rmErr)
			}
		}
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}

func resolveTokenFromEnv() string {
	if t := os.Getenv("GITHUB_TOKEN"); t != "" {
		return t
	}
	return os.Getenv("GH_TOKEN")
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
