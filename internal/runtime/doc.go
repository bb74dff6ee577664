// Package runtime provides the execution context for refspec commands.
//
// It bundles the logger, output styles, repository root and the parser and
// classifier configured for that repository, and carries them on a
// context.Context so commands do not thread each one separately.
package runtime
