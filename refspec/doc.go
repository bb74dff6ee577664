// Package refspec parses git refspecs and classifies them into instructions.
//
// A refspec describes how references on one repository map to references on
// another during a fetch or a push:
//   - "+refs/heads/*:refs/remotes/origin/*" force-updates remote-tracking branches
//   - "^refs/heads/wip" excludes a ref from an otherwise broader fetch
//   - ":refs/heads/topic" deletes a branch when pushing
//   - "tag v1.0" is shorthand for "refs/tags/v1.0:refs/tags/v1.0"
//
// Parse returns a RefSpecRef borrowing from its input; ToOwned copies it into a
// RefSpec with an independent lifetime. Instruction resolves either form into
// one of the Fetch* or Push* instruction types.
package refspec
