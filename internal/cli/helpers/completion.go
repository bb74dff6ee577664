// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"refspec.dev/refspec/internal/config"
	"refspec.dev/refspec/internal/git"
)

// CompleteRemotes is a helper for cobra.ValidArgsFunction that returns the
// remotes of the repository selected by --dir.
func CompleteRemotes(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	dir := "."
	if flag := cmd.Flag("dir"); flag != nil {
		dir = flag.Value.String()
	}
	repo, err := git.OpenRepository(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := repo.RemoteNames()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// CompleteConfigKeys completes the first argument of config get and set
func CompleteConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys, cobra.ShellCompDirectiveNoFileComp
}
