// Package log writes debug output to a state file. The terminal belongs to
// the TUI, so nothing here ever prints to stderr once the program is running.
package log

import (
	"fmt"
	stdlog "log"
	"os"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
)

const stateFile = "narrow/debug.log"

var (
	debugEnabled bool
	logFile      *os.File
	logPath      string
)

// Setup opens the debug log when debug is set. Calling it again is a no-op.
func Setup(debug bool) error {
	debugEnabled = debug
	if !debug || logFile != nil {
		return nil
	}
	path, err := xdg.StateFile(stateFile)
	if err != nil {
		return fmt.Errorf("resolve debug log: %w", err)
	}
	logFile, err = tea.LogToFile(path, "narrow")
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	logPath = path
	return nil
}

func Close() error {
	if logFile == nil {
		return nil
	}
	defer func() { logFile = nil }()
	return logFile.Close()
}

func DebugEnabled() bool {
	return debugEnabled
}

// Path is the debug log location, empty until Setup has opened it.
func Path() string {
	return logPath
}

func Printf(format string, args ...any) {
	if debugEnabled {
		stdlog.Printf("DEBUG: "+format, args...)
	}
}

// Errorf records failures that the UI already surfaced some other way.
func Errorf(format string, args ...any) {
	if debugEnabled {
		stdlog.Printf("ERROR: "+format, args...)
	}
}
