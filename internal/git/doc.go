// Package git provides read access to the repository a refspec command runs in.
//
// It wraps go-git and provides:
//   - Repository discovery from any directory inside a worktree
//   - Remote listing and the fetch/push refspecs configured for each remote
//   - The current branch, used to describe the default fetch
//
// Refspec parsing itself lives in the refspec package; this package only
// supplies the raw strings stored in the git config.
package git
