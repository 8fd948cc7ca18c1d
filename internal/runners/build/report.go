package build

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/venvfromfile/cli/internal/locale"
	"github.com/venvfromfile/cli/internal/output"
	"github.com/venvfromfile/cli/pkg/pyver"
)

// Result is the outcome of a single environment build.
type Result struct {
	Directory string
	Status    Status
	Err       error
}

// Report collects the outcomes of a run, tagged with a unique run ID.
type Report struct {
	RunID         string
	PythonVersion string
	Results       []Result
}

func newReport(version pyver.Version) *Report {
	return &Report{
		RunID:         uuid.New().String(),
		PythonVersion: version.String(),
	}
}

func (r *Report) add(result Result) {
	r.Results = append(r.Results, result)
}

func (r *Report) failedCount() int {
	var n int
	for _, result := range r.Results {
		if result.Status == Failed {
			n++
		}
	}
	return n
}

type resultOutput struct {
	Directory string `json:"directory"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

type reportOutput struct {
	RunID         string         `json:"run_id"`
	PythonVersion string         `json:"python_version"`
	Results       []resultOutput `json:"results"`
}

// MarshalOutput implements the output.Marshaller interface.
func (r *Report) MarshalOutput(format output.Format) interface{} {
	if format == output.JSONFormatName {
		out := reportOutput{
			RunID:         r.RunID,
			PythonVersion: r.PythonVersion,
			Results:       make([]resultOutput, 0, len(r.Results)),
		}
		for _, result := range r.Results {
			ro := resultOutput{Directory: result.Directory, Status: result.Status.String()}
			if result.Err != nil {
				ro.Error = result.Err.Error()
			}
			out.Results = append(out.Results, ro)
		}
		return out
	}

	lines := []string{locale.T("build_report_title")}
	for _, result := range r.Results {
		line := fmt.Sprintf("  %s: %s", result.Directory, result.Status)
		if result.Err != nil {
			line += fmt.Sprintf(" (%s)", result.Err)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
