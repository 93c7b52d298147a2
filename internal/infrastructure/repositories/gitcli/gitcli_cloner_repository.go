package gitcli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/budgetanalyzer/orchestration/internal/domain/repositories"
)

const clonerName = "git"

// GitCLIClonerRepository shells out to the system git binary, picking up the
// user's credential helpers and SSH configuration.
type GitCLIClonerRepository struct {
	binary string
}

// NewClonerRepository creates a cloner that runs "git" from PATH.
func NewClonerRepository() repositories.ClonerRepository {
	return &GitCLIClonerRepository{binary: "git"}
}

// NewClonerRepositoryWithBinary creates a cloner that runs the given git executable.
func NewClonerRepositoryWithBinary(binary string) *GitCLIClonerRepository {
	return &GitCLIClonerRepository{binary: binary}
}

func (it *GitCLIClonerRepository) Name() string { return clonerName }

// Available reports whether the git binary can be found.
func (it *GitCLIClonerRepository) Available() bool {
	_, err := exec.LookPath(it.binary)
	return err == nil
}

// Clone runs `git clone --quiet <url> <dir>`.
func (it *GitCLIClonerRepository) Clone(ctx context.Context, url, dir string) error {
	_, statErr := os.Lstat(dir)
	existed := statErr == nil
	cmd := exec.CommandContext(ctx, it.binary, "clone", "--quiet", url, dir)

	logger.Debugf("[%s] Running %s", clonerName, strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		if !existed {
			if rmErr := os.RemoveAll(dir); rmErr != nil {
				logger.Warnf("[%s] Failed to clean up %s: %v", clonerName, dir, rmErr)
			}
		}
		return fmt.Errorf("git clone %s: %w: %s", url, err, strings.TrimSpace(string(output)))
	}
	return nil
}
