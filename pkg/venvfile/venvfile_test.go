package venvfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venvfromfile/cli/internal/errs"
	"github.com/venvfromfile/cli/pkg/pyver"
)

func version(t *testing.T, text string) pyver.Version {
	t.Helper()
	v, err := pyver.ParseVersion(text)
	require.NoError(t, err)
	return v
}

func TestParse(t *testing.T) {
	path := filepath.Join("testdata", "basic.yaml")
	root, err := Parse(path)
	require.NoError(t, err)

	absPath, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, absPath, root.Path())
	assert.Equal(t, filepath.Dir(absPath), root.SourceDir())
	require.Len(t, root.VenvConfigs, 2)

	first := root.VenvConfigs[0]
	assert.Equal(t, "venv", first.Directory)
	assert.Equal(t, []string{"requirements.txt"}, first.RequirementFiles)
	assert.Equal(t, []string{"src"}, first.PthPaths)
	assert.True(t, first.PipEnabled())
	assert.True(t, first.InstallRequirementsEnabled())
	assert.True(t, first.UpgradePipEnabled())
	assert.Nil(t, first.Symlinks)
	assert.Equal(t, "venv.pth", first.PthFileName())

	second := root.VenvConfigs[1]
	assert.Equal(t, "/opt/venvs/tool", second.Directory)
	assert.False(t, second.PipEnabled())
	require.NotNil(t, second.Symlinks)
	assert.True(t, *second.Symlinks)
	assert.Equal(t, "tool", second.Prompt)
	assert.Equal(t, "tool.pth", second.PthFileName())
	assert.Empty(t, second.RequirementFiles)
}

func TestParseResolvesRelativeConfigToAbsolutePaths(t *testing.T) {
	// A relatively addressed config file must still resolve every path to
	// an absolute one, or the written pth entries would be interpreted
	// relative to site-packages.
	root, err := Parse(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	resolved := root.VenvConfigs[0].ResolvePaths(root.SourceDir())
	assert.True(t, filepath.IsAbs(resolved.Directory), "directory should be absolute, got %q", resolved.Directory)
	for _, file := range resolved.RequirementFiles {
		assert.True(t, filepath.IsAbs(file), "requirement file should be absolute, got %q", file)
	}
	for _, path := range resolved.PthPaths {
		assert.True(t, filepath.IsAbs(path), "pth path should be absolute, got %q", path)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(filepath.Join("testdata", "unknown_key.yaml"))
	require.Error(t, err)
	assert.Contains(t, errs.JoinMessage(err), "requirements_files")
}

func TestParseRejectsMissingDirectory(t *testing.T) {
	_, err := Parse(filepath.Join("testdata", "missing_directory.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestParseRejectsMalformedConstraint(t *testing.T) {
	_, err := Parse(filepath.Join("testdata", "bad_constraint.yaml"))
	assert.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join("testdata", "does_not_exist.yaml"))
	assert.Error(t, err)
}

func TestApplies(t *testing.T) {
	root, err := Parse(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	assert.True(t, root.Applies(version(t, "3.8.5")))
	assert.False(t, root.Applies(version(t, "3.6.9")), "below the file wide minimum")

	unconstrained := root.VenvConfigs[0]
	assert.True(t, unconstrained.Applies(version(t, "2.7")))

	bounded := root.VenvConfigs[1]
	assert.True(t, bounded.Applies(version(t, "3.10")), "inclusive upper bound")
	assert.False(t, bounded.Applies(version(t, "3.11")))
}
