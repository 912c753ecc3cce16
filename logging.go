package memacs

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// dbg is the process-wide debug log, opened lazily the first time logf is
// called, generalizing debug.go's PROMPT_DEBUG-gated file logger to the
// editor's own MEMACS_DEBUG environment variable.
var dbg = struct {
	sync.Once
	w io.WriteCloser
}{}

func initDebugLog() {
	path := os.Getenv("MEMACS_DEBUG")
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	dbg.w = f
}

// logf writes a formatted line to the debug log if MEMACS_DEBUG names a
// writable path; otherwise it is a silent no-op, so call sites never need
// to guard on whether logging is enabled.
func logf(format string, args ...interface{}) {
	dbg.Do(initDebugLog)
	if dbg.w == nil {
		return
	}
	_, _ = io.WriteString(dbg.w, sprintfLine(format, args...))
}

func sprintfLine(format string, args ...interface{}) string {
	s := fmt.Sprintf(format, args...)
	if len(s) == 0 || s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
