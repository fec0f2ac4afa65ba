package git

import "errors"

// ErrNotRepository indicates no git repository encloses the directory
var ErrNotRepository = errors.New("not inside a git repository")

// Client defines the interface for Git operations
type Client interface {
	// WorktreeRoot returns the top-level directory of the worktree enclosing dir
	WorktreeRoot(dir string) (string, error)
}
