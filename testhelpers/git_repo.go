// Package testhelpers provides testing utilities for the refspec CLI,
// including a scene system and Git repository helpers built on go-git.
package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	format "github.com/go-git/go-git/v5/plumbing/format/config"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir  string
	Repo *gogit.Repository
}

// NewGitRepo initializes a new non-bare Git repository in dir.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}
	return &GitRepo{Dir: dir, Repo: repo}, nil
}

func (r *GitRepo) configPath() string {
	return filepath.Join(r.Dir, ".git", "config")
}

// EditConfig decodes .git/config, applies edit and writes it back.
// It bypasses go-git's typed config so refspecs go-git cannot parse can be stored.
func (r *GitRepo) EditConfig(edit func(cfg *format.Config)) error {
	raw := format.New()

	f, err := os.Open(r.configPath())
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	err = format.NewDecoder(f).Decode(raw)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	edit(raw)

	out, err := os.Create(r.configPath())
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer out.Close()
	return format.NewEncoder(out).Encode(raw)
}

// AddRemote configures a remote with the given fetch and push refspecs.
func (r *GitRepo) AddRemote(name, url string, fetch, push []string) error {
	return r.EditConfig(func(cfg *format.Config) {
		cfg.AddOption("remote", name, "url", url)
		for _, spec := range fetch {
			cfg.AddOption("remote", name, "fetch", spec)
		}
		for _, spec := range push {
			cfg.AddOption("remote", name, "push", spec)
		}
	})
}
