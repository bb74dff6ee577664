package cli

import (
	"github.com/spf13/cobra"

	"refspec.dev/refspec/internal/actions"
	"refspec.dev/refspec/internal/cli/helpers"
	"refspec.dev/refspec/internal/runtime"
	"refspec.dev/refspec/internal/utils"
)

// newParseCmd creates the parse command
func newParseCmd() *cobra.Command {
	var push bool

	cmd := &cobra.Command{
		Use:   "parse <refspec>...",
		Short: "Show the parts of each refspec",
		Long: `Parse each refspec and print its mode, source, destination, the ref
prefixes a remote has to advertise for it and the instruction it stands for.
An argument of "-" reads refspecs from standard input, one per line.

Examples:
  refspec parse '+refs/heads/*:refs/remotes/origin/*'
  refspec parse --push 'tag v1.0' ':refs/heads/old'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				specs, err := utils.ExpandStdin(args, cmd.InOrStdin())
				if err != nil {
					return err
				}

				return actions.ParseAction(ctx, actions.ParseOptions{
					Specs:     specs,
					Operation: helpers.Operation(push),
				})
			})
		},
	}

	cmd.Flags().BoolVar(&push, "push", false, "Parse as push refspecs instead of fetch refspecs")

	return cmd
}
