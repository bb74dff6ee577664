package actions

import (
	"fmt"

	"refspec.dev/refspec/internal/runtime"
	"refspec.dev/refspec/refspec"
)

// ExplainOptions specifies options for the explain command
type ExplainOptions struct {
	Specs     []string
	Operation refspec.Operation
}

// ExplainAction prints the instruction each refspec stands for, one per line
func ExplainAction(ctx *runtime.Context, opts ExplainOptions) error {
	var (
		specs []refspec.RefSpec
		errs  []error
	)
	for _, input := range opts.Specs {
		spec, err := ctx.Parser.ParseOwned(input, opts.Operation)
		if err != nil {
			fmt.Fprintln(ctx.Out, ctx.Styles.Error(err))
			errs = append(errs, err)
			continue
		}
		specs = append(specs, spec)
	}

	width := specWidth(specs)
	for _, spec := range specs {
		if err := writeExplanation(ctx, "", width, spec.AsRef()); err != nil {
			errs = append(errs, err)
		}
	}
	return summarize(errs, len(opts.Specs), "could not be explained")
}
