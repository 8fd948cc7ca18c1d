package venvfile

import "path/filepath"

// ResolvePaths returns a copy of the venv config with all relative paths
// resolved against the given source directory. Absolute paths are left
// untouched, so the function is idempotent. The receiver is not modified.
func (c VenvConfig) ResolvePaths(sourceDir string) VenvConfig {
	c.Directory = resolvePath(sourceDir, c.Directory)
	c.RequirementFiles = resolvePathList(sourceDir, c.RequirementFiles)
	c.PthPaths = resolvePathList(sourceDir, c.PthPaths)
	return c
}

func resolvePath(sourceDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(sourceDir, path)
}

func resolvePathList(sourceDir string, paths []string) []string {
	if paths == nil {
		return nil
	}
	resolved := make([]string, len(paths))
	for i, path := range paths {
		resolved[i] = resolvePath(sourceDir, path)
	}
	return resolved
}
