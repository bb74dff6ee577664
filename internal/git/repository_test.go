package git_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	refspecerrors "refspec.dev/refspec/internal/errors"
	"refspec.dev/refspec/internal/git"
	"refspec.dev/refspec/refspec"
	"refspec.dev/refspec/testhelpers"
)

func TestOpenRepository(t *testing.T) {
	t.Parallel()

	t.Run("finds the root from a subdirectory", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)

		sub := filepath.Join(scene.Dir, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0750))

		repo, err := git.OpenRepository(sub)
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(scene.Dir)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(repo.GetRepoRoot())
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		t.Parallel()

		_, err := git.OpenRepository(t.TempDir())
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to open repository")
	})
}

func TestCurrentBranch(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)

	repo, err := git.OpenRepository(scene.Dir)
	require.NoError(t, err)

	// A fresh go-git repository points HEAD at master before any commit.
	branch, err := repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "master", branch)
}

func TestRemoteRefSpecs(t *testing.T) {
	t.Parallel()

	t.Run("lists fetch and push refspecs in config order", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.OriginSceneSetup)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		fetch, err := repo.RemoteRefSpecs("origin", refspec.Fetch)
		require.NoError(t, err)
		require.Equal(t, []string{"+refs/heads/*:refs/remotes/origin/*", "^refs/heads/wip"}, fetch)

		push, err := repo.RemoteRefSpecs("origin", refspec.Push)
		require.NoError(t, err)
		require.Equal(t, []string{"refs/heads/main:refs/heads/main", ":refs/heads/stale"}, push)
	})

	t.Run("unknown remote", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.OriginSceneSetup)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		_, err = repo.RemoteRefSpecs("upstream", refspec.Fetch)
		require.ErrorIs(t, err, refspecerrors.ErrRemoteNotFound)
	})

	t.Run("remote names are sorted", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.OriginSceneSetup)
		require.NoError(t, scene.Repo.AddRemote("backup", "https://example.com/backup.git", nil, []string{"+refs/*:refs/*"}))

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		names, err := repo.RemoteNames()
		require.NoError(t, err)
		require.Equal(t, []string{"backup", "origin"}, names)
	})
}

func TestRemoteSpecs(t *testing.T) {
	t.Parallel()

	t.Run("parses configured refspecs", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.OriginSceneSetup)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		specs, err := repo.RemoteSpecs("origin", refspec.Fetch, refspec.Parser{})
		require.NoError(t, err)
		require.Len(t, specs, 2)
		require.Equal(t, refspec.Force, specs[0].Mode())
		require.Equal(t, refspec.Negative, specs[1].Mode())
	})

	t.Run("reports broken refspecs with their config key", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.AddRemote("origin", "https://example.com/repo.git",
				[]string{"refs/heads/*:refs/remotes/origin/*", "refs/*/*:refs/x"}, nil)
		})

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		specs, err := repo.RemoteSpecs("origin", refspec.Fetch, refspec.Parser{})
		require.Len(t, specs, 1)
		require.ErrorIs(t, err, refspec.ErrWildcardMismatch)

		var specErr *refspecerrors.RefSpecError
		require.ErrorAs(t, err, &specErr)
		require.Equal(t, "remote.origin.fetch", specErr.Origin)
		require.Equal(t, "refs/*/*:refs/x", specErr.RefSpec)
	})
}
