package fileutils

import (
	"os"
	"path/filepath"

	"github.com/venvfromfile/cli/internal/errs"
	"github.com/venvfromfile/cli/internal/logging"
)

// TargetExists checks if the given file or folder exists
func TargetExists(path string) bool {
	return FileExists(path) || DirExists(path)
}

// FileExists checks if the given file (not folder) exists
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// DirExists checks if the given directory exists
func DirExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

// IsEmptyDir returns true if the given directory contains no entries
func IsEmptyDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, errs.Wrap(err, "Could not read directory %s", path)
	}
	return len(entries) == 0, nil
}

// Mkdir is a small helper function to create a directory if it doesnt already exist
func Mkdir(path string, subpath ...string) error {
	if len(subpath) > 0 {
		subpathStr := filepath.Join(subpath...)
		path = filepath.Join(path, subpathStr)
	}
	err := os.MkdirAll(path, os.ModePerm)
	if err != nil {
		return errs.Wrap(err, "MkdirAll failed for path: %s", path)
	}
	return nil
}

// MkdirUnlessExists will make the directory structure if it doesn't already exists
func MkdirUnlessExists(path string) error {
	if DirExists(path) {
		return nil
	}
	return Mkdir(path)
}

// ReadFile reads the content of a file
func ReadFile(filePath string) ([]byte, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errs.Wrap(err, "ReadFile %s failed", filePath)
	}
	return b, nil
}

// WriteFile writes data to a file, if it exists it is overwritten, if it doesn't exist it is created and data is written
func WriteFile(filePath string, data []byte) error {
	logging.Debug("WriteFile: %s", filePath)

	err := MkdirUnlessExists(filepath.Dir(filePath))
	if err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return errs.Wrap(err, "WriteFile %s failed", filePath)
	}
	return nil
}

// Touch will attempt to "touch" a given filename, this means it will try to create it if it doesn't exist yet
func Touch(path string) error {
	if err := MkdirUnlessExists(filepath.Dir(path)); err != nil {
		return err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errs.Wrap(err, "OpenFile failed for %s", path)
	}
	if err := file.Close(); err != nil {
		return errs.Wrap(err, "Close failed for %s", path)
	}
	return nil
}

// TempDirUnsafe returns a temp path, ignoring errors. This is for use in
// tests; production code should handle the error instead.
func TempDirUnsafe() string {
	f, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	return f
}
