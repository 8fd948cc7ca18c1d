package build

// Status tracks the lifecycle of a single environment build.
type Status int

const (
	// Pending means the environment has been scheduled but work on it has
	// not started.
	Pending Status = iota
	// Creating means the environment directory is being materialized.
	Creating
	// Installing means packages are being installed into the environment.
	Installing
	// Injecting means extra paths are being written to the environment's
	// .pth file.
	Injecting
	// Done means the environment was built successfully.
	Done
	// Failed means a step errored and the remaining steps were skipped.
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Creating:
		return "creating"
	case Installing:
		return "installing"
	case Injecting:
		return "injecting"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return "unknown"
}
