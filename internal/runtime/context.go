package runtime

import (
	"context"
	"io"

	"refspec.dev/refspec/internal/config"
	refspecerrors "refspec.dev/refspec/internal/errors"
	"refspec.dev/refspec/internal/git"
	"refspec.dev/refspec/internal/output"
	"refspec.dev/refspec/refspec"
)

// Context provides access to output and refspec settings for commands
type Context struct {
	Out        io.Writer
	Splog      *output.Splog
	Styles     *output.Styles
	RepoRoot   string
	Parser     refspec.Parser
	Classifier refspec.Classifier
}

type contextKey struct{}

// NewContext creates a context writing to w with default settings and no repository
func NewContext(w io.Writer, splog *output.Splog) *Context {
	if splog == nil {
		splog = output.NewSplog(w, false)
	}
	return &Context{
		Out:    w,
		Splog:  splog,
		Styles: output.NewStyles(w),
	}
}

// NewContextWithRepoRoot creates a context for the repository at or above dir.
// Outside a repository the context keeps the default classifier and an empty RepoRoot.
func NewContextWithRepoRoot(w io.Writer, splog *output.Splog, dir string) (*Context, error) {
	ctx := NewContext(w, splog)

	repo, err := git.OpenRepository(dir)
	if err != nil {
		ctx.Splog.Debug("no repository at %s: %v", dir, err)
		classifier, err := config.Classifier("")
		if err != nil {
			return nil, err
		}
		ctx.Classifier = classifier
		return ctx, nil
	}

	ctx.RepoRoot = repo.GetRepoRoot()
	classifier, err := config.Classifier(ctx.RepoRoot)
	if err != nil {
		return nil, err
	}
	ctx.Classifier = classifier
	ctx.Splog.Debug("repository %s: fetch default %s, strict push %t",
		ctx.RepoRoot, classifier.FetchDefault, classifier.StrictPush)
	return ctx, nil
}

// OpenRepository opens the repository this context was created for
func (c *Context) OpenRepository() (*git.Repository, error) {
	if c.RepoRoot == "" {
		return nil, refspecerrors.ErrNotARepository
	}
	return git.OpenRepository(c.RepoRoot)
}

// WithContext returns a copy of parent carrying c
func WithContext(parent context.Context, c *Context) context.Context {
	return context.WithValue(parent, contextKey{}, c)
}

// FromContext returns the Context stored in ctx, if any
func FromContext(ctx context.Context) (*Context, bool) {
	c, ok := ctx.Value(contextKey{}).(*Context)
	return c, ok
}
