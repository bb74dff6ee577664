package cli

import (
	"github.com/spf13/cobra"

	"refspec.dev/refspec/internal/actions"
	"refspec.dev/refspec/internal/cli/helpers"
	"refspec.dev/refspec/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set repository configuration",
		Long: `Get and set repository configuration values.

Keys:
  fetch.default  what an empty fetch refspec fetches (current-branch, all-branches)
  push.strict    reject push refspecs without a destination (true, false)
  remote         remote used by 'refspec remote' without a name

Examples:
  refspec config get fetch.default
  refspec config set push.strict true
  refspec config list`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigListCmd())

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "get <key>",
		Short:             "Get a configuration value",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ConfigGetAction(ctx, args[0])
			})
		},
	}
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Set a configuration value",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: helpers.CompleteConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ConfigSetAction(ctx, args[0], args[1])
			})
		},
	}
}

// newConfigListCmd creates the config list command
func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.ConfigListAction)
		},
	}
}
