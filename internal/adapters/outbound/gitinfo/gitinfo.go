package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Repo implements domain.GitInfo using go-git. It is used to stamp reports
// with the revision of the repository the validation ran against.
type Repo struct{}

func New() *Repo {
	return &Repo{}
}

// CommitHash returns the HEAD commit of the repository at repoPath,
// searching parent directories for the .git directory.
func (g *Repo) CommitHash(repoPath string) (string, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
