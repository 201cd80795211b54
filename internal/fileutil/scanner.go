package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolveResult contains the outcome of expanding path arguments.
type ResolveResult struct {
	// Files contains the scannable file paths, in argument order; files
	// discovered by a recursive walk keep their position relative to the
	// directory argument that produced them.
	Files []string
	// Errors contains one entry per path argument that could not be
	// expanded. Resolution never aborts on these.
	Errors []error
}

// Resolve expands the positional path arguments into the concrete ordered
// list of files to scan. Regular files are included as typed; directories
// are walked depth-first in lexical order when recursive is set, and
// rejected with a NotAFileError otherwise. Path text is preserved so
// output prefixes echo what the user supplied.
func Resolve(paths []string, recursive bool) *ResolveResult {
	result := &ResolveResult{}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				result.Errors = append(result.Errors, &NotFoundError{Path: path})
			} else {
				result.Errors = append(result.Errors, fmt.Errorf("%s: %w", path, err))
			}
			continue
		}

		if !info.IsDir() {
			result.Files = append(result.Files, path)
			continue
		}

		if !recursive {
			result.Errors = append(result.Errors, &NotAFileError{Path: path})
			continue
		}

		result.walk(path)
	}

	return result
}

// walk collects every regular file under dir. WalkDir visits entries in
// lexical order and does not follow symlinked directories, which bounds
// traversal on cyclic link structures; symlinks to regular files are kept
// and opened through the link.
//
// A directory argument that is itself a symlink is walked through its
// target (WalkDir would otherwise treat the link as a plain file), while
// reported paths keep the link name the user typed.
func (r *ResolveResult) walk(dir string) {
	root := dir
	if lst, err := os.Lstat(dir); err == nil && lst.Mode()&fs.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			root = resolved
		}
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			r.Errors = append(r.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil // continue walking
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Keep only links that resolve to regular files.
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				return nil
			}
		}
		if root != dir {
			path = filepath.Join(dir, strings.TrimPrefix(path, root))
		}
		r.Files = append(r.Files, path)
		return nil
	})
	if err != nil {
		r.Errors = append(r.Errors, fmt.Errorf("error walking %s: %w", dir, err))
	}
}
