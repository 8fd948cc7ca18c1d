// Package venvfile loads and validates declarative virtual environment
// layout files. A layout file describes one or more virtual environments
// to materialize, each with an optional interpreter version range,
// requirement files to install, and paths to inject via a .pth file.
package venvfile

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/venvfromfile/cli/internal/errs"
	"github.com/venvfromfile/cli/internal/fileutils"
	"github.com/venvfromfile/cli/pkg/pyver"
)

// MinConstraint is a lower interpreter version bound. A bare version is
// treated as inclusive.
type MinConstraint struct {
	pyver.Constraint
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (c *MinConstraint) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var text string
	if err := unmarshal(&text); err != nil {
		return err
	}
	parsed, err := pyver.ParseMinConstraint(text)
	if err != nil {
		return err
	}
	c.Constraint = parsed
	return nil
}

// MaxConstraint is an upper interpreter version bound. A bare version is
// treated as exclusive.
type MaxConstraint struct {
	pyver.Constraint
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (c *MaxConstraint) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var text string
	if err := unmarshal(&text); err != nil {
		return err
	}
	parsed, err := pyver.ParseMaxConstraint(text)
	if err != nil {
		return err
	}
	c.Constraint = parsed
	return nil
}

// VenvConfig describes a single virtual environment to materialize.
type VenvConfig struct {
	Directory          string         `yaml:"directory"`
	MinVersion         *MinConstraint `yaml:"min_version,omitempty"`
	MaxVersion         *MaxConstraint `yaml:"max_version,omitempty"`
	SystemSitePackages bool           `yaml:"system_site_packages,omitempty"`
	Clear              bool           `yaml:"clear,omitempty"`
	Symlinks           *bool          `yaml:"symlinks,omitempty"`
	Upgrade            bool           `yaml:"upgrade,omitempty"`
	WithPip            *bool          `yaml:"with_pip,omitempty"`
	Prompt             string         `yaml:"prompt,omitempty"`
	Wheel              bool           `yaml:"wheel,omitempty"`
	InstallRequirement *bool          `yaml:"install_requirements,omitempty"`
	RequirementFiles   []string       `yaml:"requirement_files,omitempty"`
	UpgradePip         *bool          `yaml:"upgrade_pip,omitempty"`
	PthPaths           []string       `yaml:"pth_paths,omitempty"`
	PthFile            string         `yaml:"pth_file,omitempty"`
}

// Root is the top level structure of a layout file.
type Root struct {
	MinVersion  *MinConstraint `yaml:"min_version,omitempty"`
	MaxVersion  *MaxConstraint `yaml:"max_version,omitempty"`
	VenvConfigs []VenvConfig   `yaml:"venv_configs"`

	path string
}

// Parse reads and validates the layout file at the given path. The path
// is made absolute first so that SourceDir based resolution always
// yields absolute paths, regardless of how the file was addressed.
// Unknown keys are rejected so that typos surface as parse errors rather
// than silently ignored configuration.
func Parse(path string) (*Root, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, errs.Wrap(err, "Could not resolve config file path %s", path)
	}

	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "Could not read config file %s", path)
	}

	root := &Root{}
	if err := yaml.UnmarshalStrict(data, root); err != nil {
		return nil, errs.Wrap(err, "Could not parse config file %s", path)
	}

	if len(root.VenvConfigs) == 0 {
		return nil, errs.New("Config file %s defines no venv_configs", path)
	}
	for i, cfg := range root.VenvConfigs {
		if strings.TrimSpace(cfg.Directory) == "" {
			return nil, errs.New("Config file %s: venv_configs[%d] is missing the directory field", path, i)
		}
	}

	root.path = path
	return root, nil
}

// Path returns the path the layout file was read from.
func (r *Root) Path() string {
	return r.path
}

// SourceDir returns the directory containing the layout file. Relative
// paths inside the file are resolved against it.
func (r *Root) SourceDir() string {
	return filepath.Dir(r.path)
}

// Range returns the interpreter version range applying to the file as a
// whole.
func (r *Root) Range() pyver.Range {
	return newRange(r.MinVersion, r.MaxVersion)
}

// Applies reports whether the file as a whole applies to the given
// interpreter version.
func (r *Root) Applies(v pyver.Version) bool {
	return r.Range().Applies(v)
}

// Range returns the interpreter version range applying to this venv.
func (c *VenvConfig) Range() pyver.Range {
	return newRange(c.MinVersion, c.MaxVersion)
}

// Applies reports whether this venv applies to the given interpreter
// version.
func (c *VenvConfig) Applies(v pyver.Version) bool {
	return c.Range().Applies(v)
}

// PipEnabled reports whether pip is bootstrapped into the environment.
// Defaults to true.
func (c *VenvConfig) PipEnabled() bool {
	return c.WithPip == nil || *c.WithPip
}

// InstallRequirementsEnabled reports whether the requirement files are
// installed. Defaults to true.
func (c *VenvConfig) InstallRequirementsEnabled() bool {
	return c.InstallRequirement == nil || *c.InstallRequirement
}

// UpgradePipEnabled reports whether pip is upgraded after creation.
// Defaults to true.
func (c *VenvConfig) UpgradePipEnabled() bool {
	return c.UpgradePip == nil || *c.UpgradePip
}

// PthFileName returns the name of the .pth file to write into the
// environment's site-packages directory. Defaults to the venv directory
// name with a .pth extension.
func (c *VenvConfig) PthFileName() string {
	if c.PthFile != "" {
		return c.PthFile
	}
	return filepath.Base(c.Directory) + ".pth"
}

func newRange(min *MinConstraint, max *MaxConstraint) pyver.Range {
	var minC, maxC *pyver.Constraint
	if min != nil {
		minC = &min.Constraint
	}
	if max != nil {
		maxC = &max.Constraint
	}
	return pyver.NewRange(minC, maxC)
}
