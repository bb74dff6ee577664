// Package config manages refspec tool configuration.
//
// It handles:
//   - Repository-specific configuration stored in .git/.refspec_config
//   - Environment overrides for classification defaults
//   - Building the refspec.Classifier that commands use
package config
