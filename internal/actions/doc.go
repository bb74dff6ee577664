// Package actions provides the logic behind refspec CLI commands.
//
// Each action corresponds to a command (parse, explain, remote, config) and
// writes its results through the runtime.Context it is given.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Out, Splog, Styles, Parser and Classifier
//   - Actions keep going after a bad refspec and return every failure joined together
//   - Repository access goes through the git package
package actions
