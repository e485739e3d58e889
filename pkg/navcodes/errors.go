// Package navcodes defines the typed error codes the synthesizer and
// path-detail packages surface to callers, replacing the teacher's
// ad hoc fmt.Errorf calls with something callers can errors.Is against.
package navcodes

import "fmt"

type Code int

const (
	// PathMalformed means the predecessor chain was inconsistent: a
	// traversed edge id could not be resolved against the graph facade.
	PathMalformed Code = iota + 1
	// GraphContractViolation means the graph facade returned an attribute
	// outside its documented range, or omitted one the synthesizer needs.
	GraphContractViolation
)

func (c Code) Error() string {
	switch c {
	case PathMalformed:
		return "path malformed"
	case GraphContractViolation:
		return "graph contract violation"
	default:
		return fmt.Sprintf("navcodes: unknown code %d", int(c))
	}
}

// Error wraps a Code with context and, optionally, an underlying cause.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func New(code Code, msg string) error {
	return &Error{Code: code, Msg: msg}
}

func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, msg string, err error) error {
	return &Error{Code: code, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, navcodes.PathMalformed) work directly against the
// Code sentinel, without forcing callers to unwrap to *Error first.
func (e *Error) Is(target error) bool {
	code, ok := target.(Code)
	return ok && code == e.Code
}
