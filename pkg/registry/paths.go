package registry

import "strings"

// Separator is the backslash character separating components in registry
// key paths.
const Separator = "\\"

// SplitPath splits a registry path into name components. Empty components
// from doubled or trailing separators are dropped. The root path ""
// yields nil.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}

	segments := make([]string, 0, strings.Count(path, Separator)+1)
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == Separator[0] {
			if i > start {
				segments = append(segments, path[start:i])
			}
			start = i + 1
		}
	}
	if start < len(path) {
		segments = append(segments, path[start:])
	}
	return segments
}

// ParentPaths returns all strict ancestor paths of path, nearest the root
// first, excluding the root itself.
// e.g. "A\\B\\C" -> ["A", "A\\B"].
func ParentPaths(path string) []string {
	if path == "" {
		return nil
	}

	parts := strings.Split(path, Separator)
	parents := make([]string, 0, len(parts)-1)
	for i := 1; i < len(parts); i++ {
		parents = append(parents, strings.Join(parts[:i], Separator))
	}
	return parents
}

// IsDescendant reports whether path is a strict descendant of ancestor:
// path begins with ancestor followed by the path separator. Every non-root
// path is a descendant of the root "".
func IsDescendant(path, ancestor string) bool {
	if ancestor == "" {
		return path != ""
	}
	return strings.HasPrefix(path, ancestor+Separator)
}
