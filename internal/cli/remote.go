package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"refspec.dev/refspec/internal/actions"
	"refspec.dev/refspec/internal/cli/helpers"
	"refspec.dev/refspec/internal/runtime"
)

// newRemoteCmd creates the remote command
func newRemoteCmd() *cobra.Command {
	var (
		push bool
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "remote [name]",
		Short: "Explain the refspecs configured for a remote",
		Long: `Read remote.<name>.fetch (or remote.<name>.push with --push) from the
repository config and explain each refspec.

Without a name the remote from 'refspec config get remote' is used.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: helpers.CompleteRemotes,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := actions.RemoteOptions{
				All:       all,
				Operation: helpers.Operation(push),
			}
			if len(args) > 0 {
				if all {
					return fmt.Errorf("--all does not take a remote name")
				}
				opts.Remote = args[0]
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.RemoteAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&push, "push", false, "Explain push refspecs instead of fetch refspecs")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Explain every configured remote")

	return cmd
}
