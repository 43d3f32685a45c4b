package gitops

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func lastCommit(t *testing.T, dir, format string) string {
	t.Helper()
	cmd := exec.Command("git", "log", "--format="+format, "-1")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	return string(out)
}

func TestInit(t *testing.T) {
	requireGit(t)
	repo := Repo{Dir: t.TempDir()}
	assert.False(t, repo.IsRepo())

	require.NoError(t, repo.Init(context.Background()))
	assert.True(t, repo.IsRepo())

	// Second call is a no-op.
	require.NoError(t, repo.Init(context.Background()))
}

func TestCommit(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	repo := Repo{Dir: t.TempDir(), AuthorName: "Test Author", AuthorEmail: "test@example.com"}
	require.NoError(t, repo.Init(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(repo.Dir, "aoiro.yaml"), []byte("business: {}\n"), 0o644))
	hash, err := repo.Commit(ctx, "init: books")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.Contains(t, lastCommit(t, repo.Dir, "%s"), "init: books")
	assert.Contains(t, lastCommit(t, repo.Dir, "%an <%ae>"), "Test Author <test@example.com>")
}

func TestCommit_Paths(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	repo := Repo{Dir: t.TempDir(), AuthorName: "a", AuthorEmail: "a@example.com"}
	require.NoError(t, repo.Init(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(repo.Dir, "journal.csv"), []byte("x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(repo.Dir, "scratch.txt"), []byte("y\n"), 0o644))

	_, err := repo.Commit(ctx, "journal: add", "journal.csv")
	require.NoError(t, err)

	status := exec.Command("git", "status", "--porcelain")
	status.Dir = repo.Dir
	out, err := status.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "scratch.txt")
	assert.NotContains(t, string(out), "journal.csv")
}

func TestCommit_Clean(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	repo := Repo{Dir: t.TempDir(), AuthorName: "a", AuthorEmail: "a@example.com"}
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Commit(ctx, "empty")
	assert.ErrorIs(t, err, ErrNothingToCommit)
}
