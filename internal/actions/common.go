package actions

import (
	"errors"
	"fmt"
	"strings"

	"refspec.dev/refspec/internal/runtime"
	"refspec.dev/refspec/refspec"
)

// displaySpec renders a refspec for listings, quoting the empty refspec
func displaySpec(spec refspec.RefSpecRef) string {
	if spec.IsEmpty() && spec.Mode() == refspec.Normal {
		return `""`
	}
	return spec.String()
}

// writeExplanation prints one refspec and the instruction it classifies to
func writeExplanation(ctx *runtime.Context, indent string, width int, spec refspec.RefSpecRef) error {
	text := displaySpec(spec)
	padding := strings.Repeat(" ", max(width-len(text), 0))

	ins, err := ctx.Classifier.Classify(spec)
	if err != nil {
		fmt.Fprintf(ctx.Out, "%s%s%s  %s\n", indent, text, padding, ctx.Styles.Error(err))
		return err
	}
	fmt.Fprintf(ctx.Out, "%s%s%s  %s\n", indent, text, padding, ctx.Styles.Instruction(ins))
	return nil
}

func specWidth(specs []refspec.RefSpec) int {
	width := 0
	for _, spec := range specs {
		width = max(width, len(displaySpec(spec.AsRef())))
	}
	return width
}

// summarize wraps the failures of a multi-refspec action
func summarize(errs []error, total int, what string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d refspecs %s: %w", len(errs), total, what, errors.Join(errs...))
}
