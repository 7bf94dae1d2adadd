package scm

import "strings"

// SplitPath decomposes a logical path into its directory and basename.
// The basename is the final path segment, or "." when the path ends in a
// separator; the directory is everything before the basename. Joining
// directory + "/" + basename reproduces the input for regular file paths.
func SplitPath(path string) (directory, basename string) {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return "", path
	}
	directory = path[:idx]
	basename = path[idx+1:]
	if basename == "" {
		basename = "."
	}
	if directory == "" {
		directory = "/"
	}
	return directory, basename
}

// Extension returns the lowercased filename extension without the dot, or
// the whole lowercased basename when there is none (so extensionless names
// like "makefile" can still match a language).
func Extension(basename string) string {
	idx := strings.LastIndex(basename, ".")
	if idx < 0 || idx == len(basename)-1 {
		return strings.ToLower(basename)
	}
	return strings.ToLower(basename[idx+1:])
}
