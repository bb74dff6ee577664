package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"refspec.dev/refspec/internal/output"
	"refspec.dev/refspec/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		debug   bool
		logFile string
		dir     string
	)

	rootCmd := &cobra.Command{
		Use:   "refspec",
		Short: "Parse git refspecs and explain what they do",
		Long: `refspec parses git refspecs and explains the fetch or push they describe.

Refspecs are read from the command line or from the remotes configured in a
repository. Every refspec is checked against git's ref name rules.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			splog, err := output.NewSplogWithConfig(cmd.ErrOrStderr(), output.LogFilePath(logFile), debug)
			if err != nil {
				return err
			}

			ctx, err := runtime.NewContextWithRepoRoot(cmd.OutOrStdout(), splog, dir)
			if err != nil {
				_ = splog.Close()
				return err
			}
			splog.Debug("running %s", cmd.CommandPath())

			cmd.SetContext(runtime.WithContext(cmd.Context(), ctx))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if ctx, ok := runtime.FromContext(cmd.Context()); ok {
				return ctx.Splog.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", `Also log to this file ("default" for ~/.refspec/logs/refspec.log)`)
	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "Run as if started in this directory")

	// Add subcommands
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newRemoteCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
