package testhelpers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// It does not change the working directory, so scenes are safe in parallel tests.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := t.TempDir()
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  dir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// WriteRepoConfig writes values as the refspec tool's JSON repo config.
func (s *Scene) WriteRepoConfig(values map[string]any) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, ".git", ".refspec_config"), data, 0600)
}

// OriginSceneSetup adds an "origin" remote with the fetch refspec git writes
// on clone, a negative fetch refspec and two push refspecs.
func OriginSceneSetup(scene *Scene) error {
	return scene.Repo.AddRemote("origin", "https://example.com/repo.git",
		[]string{"+refs/heads/*:refs/remotes/origin/*", "^refs/heads/wip"},
		[]string{"refs/heads/main:refs/heads/main", ":refs/heads/stale"},
	)
}
