package memacs

import (
	"bytes"
	"errors"
	"io"
	"os/exec"
	"strings"
	"syscall"

	"github.com/creack/pty"
)

// ShellPipe runs name with args under a pty, capturing its combined output,
// satisfying the concurrency model's "synchronous file I/O (... shell
// pipe)" suspension point: the call blocks the single-threaded editor loop
// until the subprocess exits, exactly as a read/write/glob call does. A
// pty (rather than exec.Command's plain Output) is used so interactive and
// line-buffering-sensitive subprocesses behave as they would at a terminal,
// the same collaborator cmd/termdebug used to drive an arbitrary command
// under a pty.
func ShellPipe(name string, args ...string) (string, error) {
	c := exec.Command(name, args...)
	ptmx, err := pty.Start(c)
	if err != nil {
		return "", NewOutcome(StatusFailure, "shell: %v", err)
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	_, copyErr := io.Copy(&buf, ptmx)
	waitErr := c.Wait()
	if waitErr != nil {
		return buf.String(), NewOutcome(StatusFailure, "shell: %v", waitErr)
	}
	// On Linux, reading the pty master after the child has exited and closed
	// its side fails with EIO; that marks the end of the output.
	if copyErr != nil && copyErr != io.EOF && !errors.Is(copyErr, syscall.EIO) {
		return buf.String(), NewOutcome(StatusFailure, "shell: %v", copyErr)
	}
	return buf.String(), nil
}

// InsertShellOutput runs cmd through ShellPipe and inserts its output at
// pt, the `readShellOutput`-style built-in command original_source/src
// provides for piping a subprocess's output into the current buffer.
func (ed *Editor) InsertShellOutput(b *Buffer, pt Point, name string, args ...string) (Point, error) {
	out, err := ShellPipe(name, args...)
	if err != nil {
		return pt, err
	}
	// The pty turns each newline of the output into CR-LF.
	return insertText(b, pt, strings.ReplaceAll(out, "\r\n", "\n")), nil
}
