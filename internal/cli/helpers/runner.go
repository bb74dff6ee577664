package helpers

import (
	"fmt"

	"github.com/spf13/cobra"

	"refspec.dev/refspec/internal/runtime"
	"refspec.dev/refspec/refspec"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, ok := runtime.FromContext(cmd.Context())
	if !ok {
		return fmt.Errorf("command %q ran without a runtime context", cmd.Name())
	}
	return fn(ctx)
}

// Operation maps the --push flag to the refspec operation
func Operation(push bool) refspec.Operation {
	if push {
		return refspec.Push
	}
	return refspec.Fetch
}
