package git

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	format "github.com/go-git/go-git/v5/plumbing/format/config"
	"github.com/go-git/go-git/v5/storage/filesystem"

	refspecerrors "refspec.dev/refspec/internal/errors"
	"refspec.dev/refspec/refspec"
)

// Repository wraps a go-git repository
type Repository struct {
	*git.Repository
	path string
}

// OpenRepository opens the git repository containing path
func OpenRepository(path string) (*Repository, error) {
	// Resolve to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	root := absPath
	if worktree, err := repo.Worktree(); err == nil {
		root = worktree.Filesystem.Root()
	}

	return &Repository{
		Repository: repo,
		path:       root,
	}, nil
}

// GetRepoRoot returns the root directory of the repository
func (r *Repository) GetRepoRoot() string {
	return r.path
}

// CurrentBranch returns the short name of the branch HEAD points at.
// It works in repositories without commits.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference {
		return "", fmt.Errorf("HEAD is detached at %s", head.Hash())
	}
	return head.Target().Short(), nil
}

// rawConfig decodes the repository config file without interpreting it.
// go-git's typed config rejects refspecs without a ':', which rules out
// negative refspecs, so remotes are read from the raw sections instead.
func (r *Repository) rawConfig() (*format.Config, error) {
	storage, ok := r.Storer.(*filesystem.Storage)
	if !ok {
		cfg, err := r.Config()
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return cfg.Raw, nil
	}

	raw := format.New()
	f, err := storage.Filesystem().Open("config")
	if errors.Is(err, fs.ErrNotExist) {
		return raw, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	if err := format.NewDecoder(f).Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return raw, nil
}

// RemoteNames returns the configured remotes in sorted order
func (r *Repository) RemoteNames() ([]string, error) {
	raw, err := r.rawConfig()
	if err != nil {
		return nil, err
	}

	subsections := raw.Section("remote").Subsections
	names := make([]string, 0, len(subsections))
	for _, sub := range subsections {
		names = append(names, sub.Name)
	}
	sort.Strings(names)
	return names, nil
}

// RemoteRefSpecs returns the raw remote.<name>.fetch or remote.<name>.push
// values, in the order they appear in the config.
func (r *Repository) RemoteRefSpecs(remote string, op refspec.Operation) ([]string, error) {
	raw, err := r.rawConfig()
	if err != nil {
		return nil, err
	}

	section := raw.Section("remote")
	if !section.HasSubsection(remote) {
		return nil, refspecerrors.NewRemoteNotFoundError(remote)
	}

	return section.Subsection(remote).Options.GetAll(op.String()), nil
}

// RemoteSpecs parses the refspecs configured for remote. Refspecs that fail
// to parse are reported together, each tagged with its config key.
func (r *Repository) RemoteSpecs(remote string, op refspec.Operation, parser refspec.Parser) ([]refspec.RefSpec, error) {
	values, err := r.RemoteRefSpecs(remote, op)
	if err != nil {
		return nil, err
	}

	origin := fmt.Sprintf("remote.%s.%s", remote, op)
	specs := make([]refspec.RefSpec, 0, len(values))
	var errs []error
	for _, value := range values {
		spec, err := parser.ParseOwned(value, op)
		if err != nil {
			errs = append(errs, refspecerrors.NewRefSpecError(origin, value, err))
			continue
		}
		specs = append(specs, spec)
	}
	return specs, errors.Join(errs...)
}
