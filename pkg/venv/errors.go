package venv

import "fmt"

// EnvironmentCreationError reports that a virtual environment could not
// be created at its target directory.
type EnvironmentCreationError struct {
	Dir string
	err error
}

func (e *EnvironmentCreationError) Error() string {
	return fmt.Sprintf("could not create virtual environment at %s: %v", e.Dir, e.err)
}

func (e *EnvironmentCreationError) Unwrap() error {
	return e.err
}

// RequirementInstallationError reports that a requirement file could not
// be installed into an environment.
type RequirementInstallationError struct {
	File string
	err  error
}

func (e *RequirementInstallationError) Error() string {
	return fmt.Sprintf("could not install requirement file %s: %v", e.File, e.err)
}

func (e *RequirementInstallationError) Unwrap() error {
	return e.err
}

// PathInjectionError reports that a .pth file could not be written into
// an environment's site-packages directory.
type PathInjectionError struct {
	Path string
	err  error
}

func (e *PathInjectionError) Error() string {
	return fmt.Sprintf("could not inject paths via %s: %v", e.Path, e.err)
}

func (e *PathInjectionError) Unwrap() error {
	return e.err
}
