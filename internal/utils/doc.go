// Package utils provides small helpers shared by the CLI commands.
package utils
