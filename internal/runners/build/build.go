// Package build implements the runner that materializes every virtual
// environment declared by one or more layout files.
package build

import (
	"context"
	"fmt"
	"strconv"

	"github.com/venvfromfile/cli/internal/errs"
	"github.com/venvfromfile/cli/internal/locale"
	"github.com/venvfromfile/cli/internal/logging"
	"github.com/venvfromfile/cli/internal/output"
	"github.com/venvfromfile/cli/pkg/pyver"
	"github.com/venvfromfile/cli/pkg/venv"
	"github.com/venvfromfile/cli/pkg/venvfile"
)

// DuplicateDirectoryError reports that the same target directory is
// declared by more than one environment in a run.
type DuplicateDirectoryError struct {
	Directory string
}

func (e *DuplicateDirectoryError) Error() string {
	return fmt.Sprintf("duplicate environment directory %s", e.Directory)
}

// Env is a materialized environment that can be provisioned further.
type Env interface {
	InstallRequirements(ctx context.Context, file string) error
	UpgradePip(ctx context.Context) error
	InstallWheel(ctx context.Context) error
	WritePthPaths(ctx context.Context, cfg venvfile.VenvConfig) error
}

// EnvService abstracts the interpreter driving service so the runner can
// be exercised without spawning processes.
type EnvService interface {
	PythonVersion(ctx context.Context) (pyver.Version, error)
	Create(ctx context.Context, cfg venvfile.VenvConfig) (Env, error)
}

type serviceAdapter struct {
	*venv.Service
}

func (a serviceAdapter) Create(ctx context.Context, cfg venvfile.VenvConfig) (Env, error) {
	env, err := a.Service.Create(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// RunParams holds the invocation arguments of the build runner.
type RunParams struct {
	ConfigFiles []string
}

// Build is the runner orchestrating the full run.
type Build struct {
	out output.Outputer
	svc EnvService
}

// New returns a runner driving the given interpreter service.
func New(out output.Outputer, svc *venv.Service) *Build {
	return &Build{out: out, svc: serviceAdapter{svc}}
}

// NewWithService is like New but accepts any EnvService.
func NewWithService(out output.Outputer, svc EnvService) *Build {
	return &Build{out: out, svc: svc}
}

// Run executes the full build run. Each declared environment is built
// independently; a failure in one does not prevent attempts on the
// others. The returned error is non-nil when any environment failed.
func (b *Build) Run(ctx context.Context, params RunParams) error {
	version, err := b.svc.PythonVersion(ctx)
	if err != nil {
		return locale.WrapError(err, "err_detect_python",
			"Could not determine the version of interpreter {{.V0}}: {{.V1}}",
			"the configured interpreter", errs.JoinMessage(err))
	}
	logging.Debug("Interpreter version: %s", version.String())

	specs, err := b.collect(ctx, version, params.ConfigFiles)
	if err != nil {
		return err
	}

	if err := checkDuplicateDirectories(specs); err != nil {
		return err
	}

	report := newReport(version)
	for _, cfg := range specs {
		b.out.Notice(locale.Tr("notice_building", cfg.Directory))
		result := b.buildOne(ctx, cfg)
		if result.Status == Failed {
			logging.Error("Build of %s failed: %v", cfg.Directory, result.Err)
			b.out.Error(result.Err)
		}
		report.add(result)
	}

	b.out.Print(report)

	if failed := report.failedCount(); failed > 0 {
		return locale.NewError("err_builds_failed",
			"{{.V0}} of {{.V1}} environment(s) could not be built.",
			strconv.Itoa(failed), strconv.Itoa(len(report.Results)))
	}
	return nil
}

// collect parses the layout files and returns the resolved configs that
// apply to the given interpreter version, in declaration order.
func (b *Build) collect(ctx context.Context, version pyver.Version, files []string) ([]venvfile.VenvConfig, error) {
	var specs []venvfile.VenvConfig
	for _, file := range files {
		root, err := venvfile.Parse(file)
		if err != nil {
			return nil, locale.WrapError(err, "err_parse_config",
				"Could not read configuration file at {{.V0}}: {{.V1}}",
				file, errs.JoinMessage(err))
		}

		if !root.Applies(version) {
			b.out.Notice(locale.Tr("notice_config_inapplicable", file, version.String()))
			continue
		}

		for _, cfg := range root.VenvConfigs {
			if !cfg.Applies(version) {
				b.out.Notice(locale.Tr("notice_spec_inapplicable", cfg.Directory, version.String()))
				continue
			}
			specs = append(specs, cfg.ResolvePaths(root.SourceDir()))
		}
	}
	return specs, nil
}

func checkDuplicateDirectories(specs []venvfile.VenvConfig) error {
	seen := make(map[string]bool, len(specs))
	for _, cfg := range specs {
		if seen[cfg.Directory] {
			return locale.WrapInputError(
				&DuplicateDirectoryError{Directory: cfg.Directory},
				"err_duplicate_directory",
				"The directory {{.V0}} is declared by more than one environment; directories must be unique within a run.",
				cfg.Directory)
		}
		seen[cfg.Directory] = true
	}
	return nil
}

// buildOne runs the per-environment state machine. The first failing
// step marks the environment Failed and skips its remaining steps.
func (b *Build) buildOne(ctx context.Context, cfg venvfile.VenvConfig) Result {
	result := Result{Directory: cfg.Directory, Status: Pending}

	result.Status = Creating
	env, err := b.svc.Create(ctx, cfg)
	if err != nil {
		result.Status = Failed
		result.Err = err
		return result
	}

	if cfg.PipEnabled() {
		result.Status = Installing
		if err := b.install(ctx, env, cfg); err != nil {
			result.Status = Failed
			result.Err = err
			return result
		}
	}

	if len(cfg.PthPaths) > 0 {
		result.Status = Injecting
		if err := env.WritePthPaths(ctx, cfg); err != nil {
			result.Status = Failed
			result.Err = err
			return result
		}
	}

	result.Status = Done
	return result
}

func (b *Build) install(ctx context.Context, env Env, cfg venvfile.VenvConfig) error {
	if cfg.UpgradePipEnabled() {
		if err := env.UpgradePip(ctx); err != nil {
			return err
		}
	}
	if cfg.Wheel {
		if err := env.InstallWheel(ctx); err != nil {
			return err
		}
	}
	if cfg.InstallRequirementsEnabled() {
		for _, file := range cfg.RequirementFiles {
			if err := env.InstallRequirements(ctx, file); err != nil {
				return err
			}
		}
	}
	return nil
}
