// A simple logging module that mimics the behavior of Python's logging module.
//
// All it does basically is wrap Go's logger with nice multi-level logging calls, and
// allows you to set the logging level of your app in runtime.
//
// Logging is done just like calling fmt.Sprintf:
//
//	logging.Info("This spec is %s and that one is %s", dir, that)
package logging

// This package may NOT depend on any other package in this repository

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/venvfromfile/cli/internal/osutils/stacktrace"
)

const (
	DEBUG    = 1
	INFO     = 2
	WARNING  = 4
	ERROR    = 8
	NOTICE   = 16
	CRITICAL = 32
	QUIET    = ERROR | NOTICE | CRITICAL               // setting for errors only
	NORMAL   = INFO | WARNING | ERROR | NOTICE | CRITICAL
	ALL      = 255
	NOTHING  = 0
)

var levelsAscending = []int{DEBUG, INFO, WARNING, ERROR, NOTICE, CRITICAL}

var levelsByName = map[string]int{
	"DEBUG":    DEBUG,
	"INFO":     INFO,
	"WARNING":  WARNING,
	"WARN":     WARNING,
	"ERROR":    ERROR,
	"NOTICE":   NOTICE,
	"CRITICAL": CRITICAL,
	"QUIET":    QUIET,
	"NORMAL":   NORMAL,
	"ALL":      ALL,
	"NOTHING":  NOTHING,
}

var (
	mu     sync.Mutex
	level  = NORMAL
	writer io.Writer = os.Stderr
)

// SetLevel sets the logging level as a bit mask of active levels, e.g. for
// INFO and ERROR use:
//
//	SetLevel(logging.INFO | logging.ERROR)
func SetLevel(l int) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetMinimalLevel sets a minimal level for logging, enabling all levels higher
// than the given one as well.
//
// The severity order is DEBUG, INFO, WARNING, ERROR, NOTICE, CRITICAL
func SetMinimalLevel(l int) {
	newLevel := 0
	for _, lv := range levelsAscending {
		if lv >= l {
			newLevel |= lv
		}
	}
	SetLevel(newLevel)
}

// SetMinimalLevelByName sets the minimal level by name, useful for command
// line arguments. Case insensitive.
func SetMinimalLevelByName(name string) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	l, found := levelsByName[name]
	if !found {
		return fmt.Errorf("invalid level %s", name)
	}
	SetMinimalLevel(l)
	return nil
}

// SetOutput sets the writer that log messages are emitted to. Used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	writer = w
}

// MessageContext carries the call site metadata of a log message
type MessageContext struct {
	Level     string
	File      string
	Line      int
	TimeStamp time.Time
}

func getContext(level string, skipDepth int) *MessageContext {
	_, file, line, _ := runtime.Caller(skipDepth)
	file = path.Base(file)

	return &MessageContext{
		Level:     level,
		File:      file,
		Line:      line,
		TimeStamp: time.Now(),
	}
}

func enabled(l int) bool {
	mu.Lock()
	defer mu.Unlock()
	return level&l != 0
}

func writeMessage(levelName string, msg string, args ...interface{}) {
	ctx := getContext(levelName, 3)
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(writer, DefaultFormatter.Format(ctx, msg, args...))
}

// Debug outputs debug level messages
func Debug(msg string, args ...interface{}) {
	if enabled(DEBUG) {
		writeMessage("DEBUG", msg, args...)
	}
}

// Info outputs info level messages
func Info(msg string, args ...interface{}) {
	if enabled(INFO) {
		writeMessage("INFO", msg, args...)
	}
}

// Warning outputs warning level messages
func Warning(msg string, args ...interface{}) {
	if enabled(WARNING) {
		writeMessage("WARNING", msg, args...)
	}
}

// Error outputs error level messages along with a stacktrace
func Error(msg string, args ...interface{}) {
	if enabled(ERROR) {
		writeMessage("ERROR", msg+"\n\nStacktrace: "+stacktrace.Get().String()+"\n", args...)
	}
}

// Errorf is the same as Error but also returns a formatted error object with
// the message, regardless of logging level
func Errorf(msg string, args ...interface{}) error {
	err := fmt.Errorf(msg, args...)
	if enabled(ERROR) {
		writeMessage("ERROR", err.Error())
	}
	return err
}

// Notice is like Info but for really important stuff ;)
func Notice(msg string, args ...interface{}) {
	if enabled(NOTICE) {
		writeMessage("NOTICE", msg, args...)
	}
}
