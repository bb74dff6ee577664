package actions

import (
	"fmt"
	"strings"

	"refspec.dev/refspec/internal/runtime"
	"refspec.dev/refspec/refspec"
)

// ParseOptions specifies options for the parse command
type ParseOptions struct {
	Specs     []string
	Operation refspec.Operation
}

// ParseAction prints the fields of each refspec, its ref prefixes and its instruction
func ParseAction(ctx *runtime.Context, opts ParseOptions) error {
	var errs []error
	for i, input := range opts.Specs {
		if i > 0 {
			fmt.Fprintln(ctx.Out)
		}

		spec, err := ctx.Parser.ParseOwned(input, opts.Operation)
		if err != nil {
			fmt.Fprintln(ctx.Out, ctx.Styles.Error(err))
			errs = append(errs, err)
			continue
		}
		ctx.Splog.Debug("parsed %q as %q", input, spec.String())
		writeFields(ctx, spec.AsRef())
	}
	return summarize(errs, len(opts.Specs), "failed to parse")
}

func writeFields(ctx *runtime.Context, spec refspec.RefSpecRef) {
	field := func(label, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(ctx.Out, "%s %s\n", ctx.Styles.Label(fmt.Sprintf("%-12s", label+":")), value)
	}

	field("refspec", displaySpec(spec))
	field("mode", spec.Mode().String())
	field("operation", spec.Operation().String())
	field("source", string(spec.Source()))
	field("destination", string(spec.Destination()))
	field("prefixes", strings.Join(spec.ExpandPrefixes(), ", "))

	// Classification failures are part of what parse reports, not a parse failure
	ins, err := ctx.Classifier.Classify(spec)
	if err != nil {
		field("instruction", ctx.Styles.Error(err))
		return
	}
	field("instruction", ctx.Styles.Instruction(ins))
}
