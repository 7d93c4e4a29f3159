package gitinfo

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"

	"github.com/abdidvp/pushkraft/internal/domain"
)

// GitInfoAdapter implements domain.VersionControl using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// Status reports branch, HEAD commit and whether the worktree is clean.
func (g *GitInfoAdapter) Status(_ context.Context, projectPath string) (*domain.VersionControlStatus, error) {
	repo, err := open(projectPath)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}

	status := &domain.VersionControlStatus{SHA: head.Hash().String()}
	if head.Name().IsBranch() {
		status.Branch = head.Name().Short()
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	st, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}
	status.Clean = st.IsClean()

	return status, nil
}

// ChangedFiles lists the files touched by the HEAD commit, sorted.
func (g *GitInfoAdapter) ChangedFiles(_ context.Context, projectPath string) ([]string, error) {
	repo, err := open(projectPath)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("reading HEAD commit: %w", err)
	}

	stats, err := commit.Stats()
	if err != nil {
		return nil, fmt.Errorf("computing commit stats: %w", err)
	}

	files := make([]string, 0, len(stats))
	for _, s := range stats {
		files = append(files, s.Name)
	}
	sort.Strings(files)
	return files, nil
}

func open(projectPath string) (*git.Repository, error) {
	if projectPath == "" {
		return nil, fmt.Errorf("opening git repo: project has no directory")
	}
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}
	return repo, nil
}
