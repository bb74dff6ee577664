package actions

import (
	"errors"
	"fmt"

	"refspec.dev/refspec/internal/config"
	refspecerrors "refspec.dev/refspec/internal/errors"
	"refspec.dev/refspec/internal/runtime"
	"refspec.dev/refspec/refspec"
)

// RemoteOptions specifies options for the remote command
type RemoteOptions struct {
	// Remote to inspect; empty uses the configured remote
	Remote    string
	All       bool
	Operation refspec.Operation
}

// RemoteAction explains the refspecs configured for one or all remotes
func RemoteAction(ctx *runtime.Context, opts RemoteOptions) error {
	repo, err := ctx.OpenRepository()
	if err != nil {
		return err
	}

	var names []string
	switch {
	case opts.All:
		names, err = repo.RemoteNames()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			ctx.Splog.Info("No remotes configured.")
			return nil
		}
	case opts.Remote != "":
		names = []string{opts.Remote}
	default:
		name, err := config.GetRemote(ctx.RepoRoot)
		if err != nil {
			return err
		}
		names = []string{name}
	}

	var (
		errs  []error
		total int
	)
	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(ctx.Out)
		}

		specs, err := repo.RemoteSpecs(name, opts.Operation, ctx.Parser)
		if errors.Is(err, refspecerrors.ErrRemoteNotFound) {
			return err
		}
		fmt.Fprintf(ctx.Out, "%s %s\n", name, ctx.Styles.Label("("+opts.Operation.String()+")"))

		if err != nil {
			for _, e := range unjoin(err) {
				fmt.Fprintln(ctx.Out, "  "+ctx.Styles.Error(e))
				errs = append(errs, e)
				total++
			}
		}

		if len(specs) == 0 && err == nil {
			// git falls back to its defaults, which the empty refspec describes
			ctx.Splog.Warn("remote.%s.%s: %v", name, opts.Operation, refspecerrors.ErrNoRefSpecs)
			empty, _ := refspec.Parse(nil, opts.Operation)
			total++
			if err := writeExplanation(ctx, "  ", 0, empty); err != nil {
				errs = append(errs, err)
			}
			if opts.Operation == refspec.Fetch && ctx.Classifier.FetchDefault == refspec.DefaultFetchCurrentBranch {
				if branch, err := repo.CurrentBranch(); err == nil {
					fmt.Fprintf(ctx.Out, "  %s %s\n", ctx.Styles.Label("current branch:"), branch)
				} else {
					ctx.Splog.Debug("no current branch: %v", err)
				}
			}
			continue
		}

		total += len(specs)
		width := specWidth(specs)
		for _, spec := range specs {
			if err := writeExplanation(ctx, "  ", width, spec.AsRef()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return summarize(errs, total, "could not be explained")
}

// unjoin returns the errors wrapped by an errors.Join result, or err itself
func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
