package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/aoiro/internal/accounts"
	"github.com/cleared-dev/aoiro/internal/config"
	"github.com/cleared-dev/aoiro/internal/fiscal"
	"github.com/cleared-dev/aoiro/internal/gitops"
	"github.com/cleared-dev/aoiro/internal/journal"
)

// books is an opened books directory.
type books struct {
	root     string
	cfg      *config.Config
	chart    *accounts.Service
	journal  *journal.Service
	selector fiscal.Selector
}

type opener func() (*books, error)

func openBooks(dir string) (*books, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("%w (run `aoiro init` first)", err)
	}
	if err := cfg.ApplyEnv(filepath.Join(root, ".env")); err != nil {
		return nil, err
	}

	chart, err := accounts.Load(root)
	if err != nil {
		return nil, err
	}

	return &books{
		root:     root,
		cfg:      cfg,
		chart:    chart,
		journal:  journal.NewService(root),
		selector: fiscal.DefaultSelector(),
	}, nil
}

// year resolves a --year flag, falling back to the configured year and then
// to the current year.
func (b *books) year(flag string) int {
	if flag == "" {
		flag = b.cfg.Fiscal.Year
	}
	if flag == "" {
		return b.selector.Now().Year()
	}
	return b.selector.Year(flag)
}

func (b *books) repo() gitops.Repo {
	return gitops.Repo{
		Dir:         b.root,
		AuthorName:  b.cfg.Git.AuthorName,
		AuthorEmail: b.cfg.Git.AuthorEmail,
	}
}

// commit records paths in git when auto-commit is on and the books are a
// repository. Failures are logged, not returned; the data is already saved.
func (b *books) commit(ctx context.Context, message string, paths ...string) {
	repo := b.repo()
	if !b.cfg.Git.AutoCommit || !repo.IsRepo() {
		return
	}
	rel := make([]string, 0, len(paths))
	for _, p := range paths {
		if r, err := filepath.Rel(b.root, p); err == nil && !strings.HasPrefix(r, "..") {
			p = r
		}
		rel = append(rel, p)
	}
	if _, err := repo.Commit(ctx, message, rel...); err != nil && !errors.Is(err, gitops.ErrNothingToCommit) {
		slog.Warn("git commit failed", "message", message, "error", err)
	}
}
