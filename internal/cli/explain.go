package cli

import (
	"github.com/spf13/cobra"

	"refspec.dev/refspec/internal/actions"
	"refspec.dev/refspec/internal/cli/helpers"
	"refspec.dev/refspec/internal/runtime"
	"refspec.dev/refspec/internal/utils"
	"refspec.dev/refspec/refspec"
)

// newExplainCmd creates the explain command
func newExplainCmd() *cobra.Command {
	var (
		push         bool
		fetchDefault string
		strictPush   bool
	)

	cmd := &cobra.Command{
		Use:   "explain <refspec>...",
		Short: "Explain what each refspec fetches or pushes",
		Long: `Print the instruction each refspec stands for, one per line.

The empty refspec ("") falls back to the repository defaults, which can be
set with 'refspec config' or overridden with flags. An argument of "-" reads
refspecs from standard input, one per line.

Examples:
  refspec explain main 'refs/heads/*:refs/remotes/origin/*' '^refs/heads/wip'
  refspec explain --push main ':refs/heads/old'
  refspec explain --fetch-default all-branches ''
  git config --get-all remote.origin.fetch | refspec explain -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if cmd.Flags().Changed("fetch-default") {
					target, err := refspec.ParseDefaultFetch(fetchDefault)
					if err != nil {
						return err
					}
					ctx.Classifier.FetchDefault = target
				}
				if cmd.Flags().Changed("strict-push") {
					ctx.Classifier.StrictPush = strictPush
				}

				specs, err := utils.ExpandStdin(args, cmd.InOrStdin())
				if err != nil {
					return err
				}

				return actions.ExplainAction(ctx, actions.ExplainOptions{
					Specs:     specs,
					Operation: helpers.Operation(push),
				})
			})
		},
	}

	cmd.Flags().BoolVar(&push, "push", false, "Explain push refspecs instead of fetch refspecs")
	cmd.Flags().StringVar(&fetchDefault, "fetch-default", "", "What an empty fetch refspec fetches (current-branch or all-branches)")
	cmd.Flags().BoolVar(&strictPush, "strict-push", false, "Reject push refspecs without a destination")

	return cmd
}
