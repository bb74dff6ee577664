// Package config provides repository configuration management,
// including reading and writing refspec configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	refspecerrors "refspec.dev/refspec/internal/errors"
	"refspec.dev/refspec/refspec"
)

const (
	// ConfigFileName is the name of the config file inside the .git directory
	ConfigFileName = ".refspec_config"

	// DefaultRemote is used when no remote is configured
	DefaultRemote = "origin"

	// Config keys accepted by Get and Set
	KeyFetchDefault = "fetch.default"
	KeyPushStrict   = "push.strict"
	KeyRemote       = "remote"
)

// Keys lists the config keys in display order
var Keys = []string{KeyFetchDefault, KeyPushStrict, KeyRemote}

// RepoConfig represents the repository configuration
type RepoConfig struct {
	FetchDefault *string `json:"fetch.default,omitempty"`
	PushStrict   *bool   `json:"push.strict,omitempty"`
	Remote       *string `json:"remote,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ConfigFileName)
}

// GetRepoConfig reads the repository configuration.
// An empty repoRoot or a missing file yields the defaults.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	if repoRoot == "" {
		return &RepoConfig{}, nil
	}

	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

func writeRepoConfig(repoRoot string, config *RepoConfig) error {
	if _, err := os.Stat(filepath.Join(repoRoot, ".git")); err != nil {
		return fmt.Errorf("repository root does not exist: %w", err)
	}

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath(repoRoot), configJSON, 0600)
}

// GetFetchDefault returns what an empty fetch refspec fetches.
// REFSPEC_FETCH_DEFAULT overrides the config file.
func GetFetchDefault(repoRoot string) (refspec.DefaultFetch, error) {
	if env := os.Getenv("REFSPEC_FETCH_DEFAULT"); env != "" {
		return refspec.ParseDefaultFetch(env)
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return 0, err
	}

	if config.FetchDefault != nil {
		return refspec.ParseDefaultFetch(*config.FetchDefault)
	}

	return refspec.DefaultFetchCurrentBranch, nil
}

// SetFetchDefault updates fetch.default in the config
func SetFetchDefault(repoRoot string, value string) error {
	if _, err := refspec.ParseDefaultFetch(value); err != nil {
		return refspecerrors.NewInvalidConfigValueError(KeyFetchDefault, value)
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.FetchDefault = &value
	return writeRepoConfig(repoRoot, config)
}

// GetPushStrict returns whether push refspecs need an explicit destination.
// REFSPEC_PUSH_STRICT overrides the config file.
func GetPushStrict(repoRoot string) (bool, error) {
	if env := os.Getenv("REFSPEC_PUSH_STRICT"); env != "" {
		strict, err := strconv.ParseBool(env)
		if err != nil {
			return false, refspecerrors.NewInvalidConfigValueError("REFSPEC_PUSH_STRICT", env)
		}
		return strict, nil
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}

	if config.PushStrict != nil {
		return *config.PushStrict, nil
	}

	// Default to false
	return false, nil
}

// SetPushStrict updates push.strict in the config
func SetPushStrict(repoRoot string, strict bool) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.PushStrict = &strict
	return writeRepoConfig(repoRoot, config)
}

// GetRemote returns the configured remote, or "origin" as default
func GetRemote(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.Remote != nil && *config.Remote != "" {
		return *config.Remote, nil
	}

	return DefaultRemote, nil
}

// SetRemote updates the default remote in the config
func SetRemote(repoRoot string, remote string) error {
	if remote == "" {
		return refspecerrors.NewInvalidConfigValueError(KeyRemote, remote)
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.Remote = &remote
	return writeRepoConfig(repoRoot, config)
}

// Get returns the effective value of key as text
func Get(repoRoot string, key string) (string, error) {
	switch key {
	case KeyFetchDefault:
		d, err := GetFetchDefault(repoRoot)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	case KeyPushStrict:
		strict, err := GetPushStrict(repoRoot)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(strict), nil
	case KeyRemote:
		return GetRemote(repoRoot)
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// Set stores value under key
func Set(repoRoot string, key string, value string) error {
	switch key {
	case KeyFetchDefault:
		return SetFetchDefault(repoRoot, value)
	case KeyPushStrict:
		strict, err := strconv.ParseBool(value)
		if err != nil {
			return refspecerrors.NewInvalidConfigValueError(KeyPushStrict, value)
		}
		return SetPushStrict(repoRoot, strict)
	case KeyRemote:
		return SetRemote(repoRoot, value)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
}

// Classifier builds the refspec classifier configured for the repository
func Classifier(repoRoot string) (refspec.Classifier, error) {
	fetchDefault, err := GetFetchDefault(repoRoot)
	if err != nil {
		return refspec.Classifier{}, err
	}

	strict, err := GetPushStrict(repoRoot)
	if err != nil {
		return refspec.Classifier{}, err
	}

	return refspec.Classifier{FetchDefault: fetchDefault, StrictPush: strict}, nil
}
