package venv

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/thoas/go-funk"

	"github.com/venvfromfile/cli/internal/errs"
	"github.com/venvfromfile/cli/internal/fileutils"
	"github.com/venvfromfile/cli/internal/logging"
	"github.com/venvfromfile/cli/pkg/venvfile"
)

// WritePthPaths injects the config's pth_paths into the environment by
// appending them to a .pth file inside its site-packages directory.
// Paths already present in the file are not duplicated, and concurrent
// writers are serialized through a lock file.
func (e *Environment) WritePthPaths(ctx context.Context, cfg venvfile.VenvConfig) error {
	if len(cfg.PthPaths) == 0 {
		return nil
	}

	siteDir, err := e.SiteDir(ctx)
	if err != nil {
		return &PathInjectionError{Path: cfg.PthFileName(), err: err}
	}

	pthFile := filepath.Join(siteDir, cfg.PthFileName())
	if err := writePthFile(pthFile, cfg.PthPaths); err != nil {
		return &PathInjectionError{Path: pthFile, err: err}
	}
	return nil
}

func writePthFile(path string, paths []string) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return errs.Wrap(err, "Could not acquire lock for %s", path)
	}
	defer lock.Unlock()

	var existing []string
	if fileutils.FileExists(path) {
		data, err := fileutils.ReadFile(path)
		if err != nil {
			return errs.Wrap(err, "Could not read existing pth file")
		}
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimRight(line, "\r"); line != "" {
				existing = append(existing, line)
			}
		}
	}

	var missing []string
	for _, p := range funk.UniqString(paths) {
		if !funk.ContainsString(existing, p) {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		logging.Debug("All paths already present in %s", path)
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errs.Wrap(err, "Could not open pth file for appending")
	}
	defer f.Close()

	for _, p := range missing {
		if _, err := f.WriteString(p + "\n"); err != nil {
			return errs.Wrap(err, "Could not append to pth file")
		}
	}
	return nil
}
