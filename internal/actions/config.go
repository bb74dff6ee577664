package actions

import (
	"fmt"

	"refspec.dev/refspec/internal/config"
	refspecerrors "refspec.dev/refspec/internal/errors"
	"refspec.dev/refspec/internal/runtime"
)

// ConfigGetAction prints the effective value of key
func ConfigGetAction(ctx *runtime.Context, key string) error {
	value, err := config.Get(ctx.RepoRoot, key)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", key, err)
	}
	fmt.Fprintln(ctx.Out, value)
	return nil
}

// ConfigSetAction stores value under key in the repository config
func ConfigSetAction(ctx *runtime.Context, key, value string) error {
	if ctx.RepoRoot == "" {
		return refspecerrors.ErrNotARepository
	}
	if err := config.Set(ctx.RepoRoot, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	ctx.Splog.Info("Set %s to: %s", key, value)
	return nil
}

// ConfigListAction prints every config key with its effective value
func ConfigListAction(ctx *runtime.Context) error {
	for _, key := range config.Keys {
		value, err := config.Get(ctx.RepoRoot, key)
		if err != nil {
			return fmt.Errorf("failed to get %s: %w", key, err)
		}
		fmt.Fprintf(ctx.Out, "%s %s\n", ctx.Styles.Label(key+":"), value)
	}
	return nil
}
