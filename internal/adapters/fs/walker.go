// Package fs provides file system adapters for walking, hashing and writing files.
package fs

import (
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Walker provides directory walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkDirs yields every directory under root, root included, in lexical order.
// Symbolic links to directories are followed, so a directory reachable through
// several links is yielded once per spelling. A link back to a directory that
// is being walked is not entered. Hidden entries and directories whose name
// matches one of ignores are skipped.
func (w *Walker) WalkDirs(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		ancestors := make(map[string]struct{})
		_ = w.walk(root, ignores, ancestors, yield)
	}
}

// walk returns false once the consumer stopped iterating.
// ancestors holds the canonical paths of the directories being walked.
func (w *Walker) walk(dir string, ignores []string, ancestors map[string]struct{}, yield func(string, error) bool) bool {
	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return yield("", zerr.With(zerr.Wrap(err, "failed to resolve directory"), "path", dir))
	}
	if _, loop := ancestors[canonical]; loop {
		return true
	}
	ancestors[canonical] = struct{}{}
	defer delete(ancestors, canonical)

	if !yield(dir, nil) {
		return false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return yield("", zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir))
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || w.ignored(name, ignores) {
			continue
		}

		path := filepath.Join(dir, name)
		if !isDir(entry, path) {
			continue
		}
		if !w.walk(path, ignores, ancestors, yield) {
			return false
		}
	}
	return true
}

func (w *Walker) ignored(name string, ignores []string) bool {
	return slices.ContainsFunc(ignores, func(ignore string) bool {
		matched, _ := filepath.Match(ignore, name)
		return matched
	})
}

// isDir reports whether entry is a directory or a symbolic link to one.
func isDir(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
