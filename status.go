package memacs

import "fmt"

// Status is the severity ladder a core operation returns, coarsest to finest
// as defined by the editor's error handling design: Success is the zero
// value so a freshly zeroed Outcome reads as success.
type Status int

const (
	StatusSuccess Status = iota
	StatusNotFound
	StatusCancelled
	StatusUserAbort
	StatusFailure
	StatusScriptError
	statusMinExit
	StatusUserExit
	StatusHelpExit
	StatusFatalError
	StatusPanic
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotFound:
		return "not found"
	case StatusCancelled:
		return "cancelled"
	case StatusUserAbort:
		return "aborted"
	case StatusFailure:
		return "failure"
	case StatusScriptError:
		return "script error"
	case StatusUserExit:
		return "exit"
	case StatusHelpExit:
		return "help exit"
	case StatusFatalError:
		return "fatal error"
	case StatusPanic:
		return "panic"
	default:
		return "unknown status"
	}
}

// IsExit reports whether s is at or beyond the MinExit boundary, i.e. a
// status that ends the editing session rather than one statement.
func (s Status) IsExit() bool {
	return s > statusMinExit
}

// Outcome is the error type every core subsystem returns for anything other
// than StatusSuccess. It carries the severity plus, once a statement
// executor has annotated it, the buffer and line where the failure
// originated.
type Outcome struct {
	Status  Status
	Message string
	Buffer  string
	Line    int
}

func (o *Outcome) Error() string {
	if o == nil {
		return ""
	}
	if o.Buffer != "" {
		return fmt.Sprintf("Script failed, in buffer '%s' at line %d: %s", o.Buffer, o.Line, o.Message)
	}
	return o.Message
}

// NewOutcome builds an Outcome carrying the given status and formatted
// message. A StatusSuccess outcome is never constructed; callers that would
// succeed should return (result, nil).
func NewOutcome(status Status, format string, args ...interface{}) *Outcome {
	return &Outcome{Status: status, Message: fmt.Sprintf(format, args...)}
}

// WithContext annotates o with the buffer and line it failed in, the same
// lazy annotation point described for the statement executor: only the
// executor knows where it is, so the evaluator returns bare outcomes and the
// executor wraps them on the way out.
func (o *Outcome) WithContext(bufName string, line int) *Outcome {
	if o == nil {
		return nil
	}
	if o.Status < StatusFailure {
		return o
	}
	cp := *o
	cp.Buffer = bufName
	cp.Line = line
	if cp.Status == StatusFailure {
		cp.Status = StatusScriptError
	}
	return &cp
}

// outcomeOf extracts the Outcome carried by err, if any.
func outcomeOf(err error) *Outcome {
	if err == nil {
		return nil
	}
	if o, ok := err.(*Outcome); ok {
		return o
	}
	return NewOutcome(StatusFailure, "%s", err.Error())
}

// Forced demotes a NotFound, Cancelled, Failure or ScriptError (a Failure
// annotated with buffer and line) outcome to success, as the statement
// executor does for a statement prefixed with "force". UserAbort, UserExit,
// HelpExit, FatalError and Panic are never demoted.
func Forced(err error) error {
	o := outcomeOf(err)
	if o == nil {
		return nil
	}
	switch o.Status {
	case StatusFailure, StatusScriptError, StatusNotFound, StatusCancelled:
		return nil
	default:
		return o
	}
}
