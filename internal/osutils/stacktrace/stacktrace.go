package stacktrace

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Stacktrace represents a stacktrace
type Stacktrace struct {
	Frames []Frame
}

// Frame is a single frame in a stacktrace
type Frame struct {
	// Func is the fully qualified function name
	Func string

	// File is the file that the function resides in
	File string

	// Line is the line number inside the file
	Line int
}

// String returns a human readable rendition of the stacktrace
func (t *Stacktrace) String() string {
	result := []string{}
	for _, frame := range t.Frames {
		result = append(result, fmt.Sprintf("%s:%d (%s)", frame.File, frame.Line, frame.Func))
	}
	return strings.Join(result, "\n")
}

// Get returns a stacktrace for the moment it was called
func Get() *Stacktrace {
	return GetWithSkip(nil)
}

// GetWithSkip returns a stacktrace that excludes frames originating from the
// given files, as well as from this package itself
func GetWithSkip(skipFiles []string) *Stacktrace {
	stacktrace := &Stacktrace{}
	skipFiles = append(skipFiles, currentFile())

	pc := make([]uintptr, 100)
	n := runtime.Callers(0, pc)
	if n == 0 {
		return stacktrace
	}

	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()

		skip := false
		for _, skipFile := range skipFiles {
			if sameFile(frame.File, skipFile) {
				skip = true
				break
			}
		}
		if !skip && frame.Func != nil {
			stacktrace.Frames = append(stacktrace.Frames, Frame{
				Func: frame.Function,
				File: frame.File,
				Line: frame.Line,
			})
		}

		if !more {
			break
		}
	}

	return stacktrace
}

func sameFile(f1, f2 string) bool {
	return filepath.Clean(f1) == filepath.Clean(f2)
}

func currentFile() string {
	_, file, _, _ := runtime.Caller(0)
	return file
}
