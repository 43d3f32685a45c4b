// Package gitops records changes to the books as git commits by shelling out
// to the git binary.
package gitops

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNothingToCommit is returned by Commit when the working tree is clean.
var ErrNothingToCommit = errors.New("nothing to commit")

// Repo is a books root under git.
type Repo struct {
	Dir         string
	AuthorName  string
	AuthorEmail string
}

func (r Repo) git(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.Dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(string(out)), err)
	}
	return out, nil
}

// Init creates the repository. Running it on an existing repository is a
// no-op.
func (r Repo) Init(ctx context.Context) error {
	if r.IsRepo() {
		return nil
	}
	_, err := r.git(ctx, "init", "--quiet")
	return err
}

// IsRepo reports whether Dir has a .git directory.
func (r Repo) IsRepo() bool {
	_, err := os.Stat(filepath.Join(r.Dir, ".git"))
	return err == nil
}

// Commit stages paths (everything when none are given) and commits them.
// It returns the short hash of the new commit, or ErrNothingToCommit.
func (r Repo) Commit(ctx context.Context, message string, paths ...string) (string, error) {
	add := []string{"add", "-A"}
	if len(paths) > 0 {
		add = append(add, "--")
		add = append(add, paths...)
	}
	if _, err := r.git(ctx, add...); err != nil {
		return "", err
	}

	if _, err := r.git(ctx, "diff", "--cached", "--quiet"); err == nil {
		return "", ErrNothingToCommit
	}

	author := fmt.Sprintf("%s <%s>", r.AuthorName, r.AuthorEmail)
	if _, err := r.git(ctx,
		"-c", "user.name="+r.AuthorName,
		"-c", "user.email="+r.AuthorEmail,
		"commit", "--quiet", "-m", message, "--author", author,
	); err != nil {
		return "", err
	}

	out, err := r.git(ctx, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	hash := strings.TrimSpace(string(out))
	slog.Debug("committed books", "dir", r.Dir, "hash", hash, "message", message)
	return hash, nil
}
