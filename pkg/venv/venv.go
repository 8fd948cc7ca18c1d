// Package venv creates and provisions Python virtual environments by
// driving the interpreter's venv and pip modules as subprocesses.
package venv

import (
	"context"
	"encoding/json"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/venvfromfile/cli/internal/errs"
	"github.com/venvfromfile/cli/internal/exeutils"
	"github.com/venvfromfile/cli/internal/fileutils"
	"github.com/venvfromfile/cli/internal/logging"
	"github.com/venvfromfile/cli/pkg/pyver"
	"github.com/venvfromfile/cli/pkg/venvfile"
)

// Service drives a single Python interpreter. The zero timeout means
// subprocess calls only respect the caller's context.
type Service struct {
	python  string
	timeout time.Duration
}

// NewService returns a Service for the given interpreter executable.
func NewService(python string, timeout time.Duration) *Service {
	return &Service{python: python, timeout: timeout}
}

// Python returns the interpreter executable the service drives.
func (s *Service) Python() string {
	return s.python
}

func (s *Service) commandContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// PythonVersion reports the interpreter's version.
func (s *Service) PythonVersion(ctx context.Context) (pyver.Version, error) {
	ctx, cancel := s.commandContext(ctx)
	defer cancel()

	code := `import sys; print(".".join(str(v) for v in sys.version_info[:3]))`
	stdout, stderr, err := exeutils.ExecSimple(ctx, s.python, "-c", code)
	if err != nil {
		return pyver.Version{}, errs.Wrap(err, "Could not query version of %s: %s", s.python, stderr)
	}
	return parsePythonVersion(stdout)
}

func parsePythonVersion(out string) (pyver.Version, error) {
	v, err := pyver.ParseVersion(strings.TrimSpace(out))
	if err != nil {
		return pyver.Version{}, errs.Wrap(err, "Interpreter reported an unexpected version %q", strings.TrimSpace(out))
	}
	return v, nil
}

// Create materializes the virtual environment described by the given
// config. The target directory may already exist if it is empty, or if
// the config asks for it to be cleared or upgraded.
func (s *Service) Create(ctx context.Context, cfg venvfile.VenvConfig) (*Environment, error) {
	if fileutils.DirExists(cfg.Directory) && !cfg.Clear && !cfg.Upgrade {
		empty, err := fileutils.IsEmptyDir(cfg.Directory)
		if err != nil {
			return nil, &EnvironmentCreationError{Dir: cfg.Directory, err: err}
		}
		if !empty {
			return nil, &EnvironmentCreationError{
				Dir: cfg.Directory,
				err: errs.New("directory exists and is not empty; set clear or upgrade to reuse it"),
			}
		}
	}

	args := []string{"-m", "venv"}
	if cfg.SystemSitePackages {
		args = append(args, "--system-site-packages")
	}
	if cfg.Clear {
		args = append(args, "--clear")
	}
	if cfg.Symlinks != nil {
		if *cfg.Symlinks {
			args = append(args, "--symlinks")
		} else {
			args = append(args, "--copies")
		}
	}
	if cfg.Upgrade {
		args = append(args, "--upgrade")
	}
	if !cfg.PipEnabled() {
		args = append(args, "--without-pip")
	}
	if cfg.Prompt != "" {
		args = append(args, "--prompt", cfg.Prompt)
	}
	args = append(args, cfg.Directory)

	logging.Debug("Creating virtual environment: %s %s", s.python, strings.Join(args, " "))

	cmdCtx, cancel := s.commandContext(ctx)
	defer cancel()
	if _, err := exeutils.ExecuteAndPipeStd(cmdCtx, s.python, args, nil); err != nil {
		return nil, &EnvironmentCreationError{Dir: cfg.Directory, err: err}
	}

	return &Environment{Dir: cfg.Directory, exe: envExe(cfg.Directory), timeout: s.timeout}, nil
}

// Environment is a materialized virtual environment.
type Environment struct {
	Dir string

	exe     string
	timeout time.Duration
}

func envExe(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, "Scripts", "python.exe")
	}
	return filepath.Join(dir, "bin", "python")
}

// Python returns the environment's interpreter executable.
func (e *Environment) Python() string {
	return e.exe
}

func (e *Environment) commandContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, e.timeout)
}

func (e *Environment) pipInstall(ctx context.Context, args ...string) error {
	ctx, cancel := e.commandContext(ctx)
	defer cancel()

	cmdArgs := append([]string{"-m", "pip", "install"}, args...)
	logging.Debug("Running pip: %s %s", e.exe, strings.Join(cmdArgs, " "))
	_, err := exeutils.ExecuteAndPipeStd(ctx, e.exe, cmdArgs, nil)
	return err
}

// InstallRequirements installs the given requirement file into the
// environment.
func (e *Environment) InstallRequirements(ctx context.Context, file string) error {
	if err := e.pipInstall(ctx, "-r", file); err != nil {
		return &RequirementInstallationError{File: file, err: err}
	}
	return nil
}

// UpgradePip upgrades pip inside the environment to the latest release.
func (e *Environment) UpgradePip(ctx context.Context) error {
	if err := e.pipInstall(ctx, "--upgrade", "pip"); err != nil {
		return &RequirementInstallationError{File: "pip", err: err}
	}
	return nil
}

// InstallWheel installs the wheel package into the environment.
func (e *Environment) InstallWheel(ctx context.Context) error {
	if err := e.pipInstall(ctx, "wheel"); err != nil {
		return &RequirementInstallationError{File: "wheel", err: err}
	}
	return nil
}

// SiteDir reports the environment's site-packages directory, as seen by
// the environment's own interpreter.
func (e *Environment) SiteDir(ctx context.Context) (string, error) {
	ctx, cancel := e.commandContext(ctx)
	defer cancel()

	code := `import json, site; print(json.dumps(site.getsitepackages()))`
	stdout, stderr, err := exeutils.ExecSimple(ctx, e.exe, "-c", code)
	if err != nil {
		return "", errs.Wrap(err, "Could not query site-packages of %s: %s", e.Dir, stderr)
	}

	var dirs []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &dirs); err != nil {
		return "", errs.Wrap(err, "Could not parse site-packages listing %q", strings.TrimSpace(stdout))
	}
	if len(dirs) == 0 {
		return "", errs.New("Interpreter of %s reported no site-packages directory", e.Dir)
	}
	return dirs[0], nil
}
