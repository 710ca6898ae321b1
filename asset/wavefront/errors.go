package wavefront

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrorKind classifies the errors returned by the parser.
type ErrorKind int

const (
	// The geometry file or a referenced material library could not be opened.
	FileNotFound ErrorKind = iota

	// A directive is missing required arguments, appears out of order or
	// references attribute data that does not exist.
	MalformedInput

	// A material binding names a material that is not defined by any
	// material library.
	UnresolvedReference
)

func (k ErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case MalformedInput:
		return "malformed input"
	case UnresolvedReference:
		return "unresolved reference"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is returned by all parse entrypoints.
type ParseError struct {
	Kind ErrorKind

	// The file and (1-based) line where the error was detected. Line is 0
	// for errors not tied to a particular line.
	File string
	Line int

	Msg string

	// Include frames, innermost first, describing how File was reached.
	Refs []string

	cause error
}

func (e *ParseError) Error() string {
	var errMsg string
	switch {
	case e.File != "" && e.Line > 0:
		errMsg = fmt.Sprintf("[%s: %d] error: %s", e.File, e.Line, e.Msg)
	case e.File != "":
		errMsg = fmt.Sprintf("[%s] error: %s", e.File, e.Msg)
	default:
		errMsg = fmt.Sprintf("error: %s", e.Msg)
	}

	if len(e.Refs) == 0 {
		return errMsg
	}
	return errMsg + "\n" + strings.Join(e.Refs, "\n")
}

// Unwrap returns the underlying I/O error, if any.
func (e *ParseError) Unwrap() error {
	return e.cause
}

// KindOf returns the kind of a parse error. The second return value is false
// if err is not (and does not wrap) a *ParseError.
func KindOf(err error) (ErrorKind, bool) {
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr.Kind, true
	}
	return 0, false
}

// IsKind returns true if err is a *ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
