// Package walk enumerates the files under a root directory.
//
// [Walk] returns a flat, ordered list of file paths. Directories are never
// part of the result. In non-recursive mode only the immediate file
// children of the root are listed; subdirectories are skipped without being
// opened. In recursive mode subdirectories are descended depth-first and
// their files are spliced in at the directory's position.
//
// Every returned path is the root joined with the path relative to it, so
// callers see the same shape of path in both modes:
//
//	paths, err := walk.Walk("icons", true)
//	// ["icons/a.svg", "icons/b.SVG", "icons/c.png", "icons/sub/d.svg"]
//
// Sibling order follows the directory listing, which [os.ReadDir] returns
// sorted by file name.
//
// # Errors
//
// A directory that cannot be listed aborts the whole walk with a
// TRAVERSAL error naming that directory. There is no partial result.
//
// Symbolic links to directories are reported as non-directory entries and
// are therefore never followed.
package walk
