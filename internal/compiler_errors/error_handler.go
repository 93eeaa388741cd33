package compiler_errors

import (
	"errors"
	"fmt"
	"io"
)

// ErrFailNow aborts the current compilation. Only the compile entry point
// recovers it; anything else letting it escape is a bug.
var ErrFailNow = errors.New("compilation failed")

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	default:
		panic(fmt.Sprintf("Severity.String(): received illegal severity: %d", int(s)))
	}
}

type CompilerError interface {
	GetMessage() string
}

// PositionedError is implemented by errors that carry a source position.
type PositionedError interface {
	CompilerError

	GetFileName() string
	GetLine() int
	GetColumn() int
	GetLength() int
}

type ErrorHandler interface {
	AddError(err CompilerError)
	AddWarning(err CompilerError)
	Errored() bool
	Errors() []CompilerError
	FailNow()
}

type diagnostic struct {
	severity Severity
	err      CompilerError
}

type CompilerErrorHandler struct {
	diagnostics []diagnostic
	errored     bool
	writer      io.Writer
}

func NewErrorHandler(outputWriter io.Writer) *CompilerErrorHandler {
	return &CompilerErrorHandler{
		diagnostics: make([]diagnostic, 0),
		writer:      outputWriter,
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.diagnostics = append(eh.diagnostics, diagnostic{SeverityError, err})
	eh.errored = true
}

func (eh *CompilerErrorHandler) AddWarning(err CompilerError) {
	eh.diagnostics = append(eh.diagnostics, diagnostic{SeverityWarning, err})
}

// Errored reports whether any error severity diagnostic was recorded.
// Warnings never gate the compilation result.
func (eh *CompilerErrorHandler) Errored() bool {
	return eh.errored
}

func (eh *CompilerErrorHandler) Errors() []CompilerError {
	errs := make([]CompilerError, 0, len(eh.diagnostics))
	for _, d := range eh.diagnostics {
		if d.severity == SeverityError {
			errs = append(errs, d.err)
		}
	}
	return errs
}

func (eh *CompilerErrorHandler) FailNow() {
	panic(ErrFailNow)
}

func (eh *CompilerErrorHandler) PrintErrors() {
	if len(eh.diagnostics) == 0 {
		return
	}

	fmt.Fprintln(eh.writer, "Build failed with errors:")

	for _, d := range eh.diagnostics {
		if perr, ok := d.err.(PositionedError); ok && perr.GetLine() > 0 {
			fmt.Fprintf(
				eh.writer,
				"%s: %s:%d:%d: %s\n",
				d.severity,
				perr.GetFileName(),
				perr.GetLine(),
				perr.GetColumn(),
				d.err.GetMessage())
			continue
		}

		fmt.Fprintf(eh.writer, "%s: %s\n", d.severity, d.err.GetMessage())
	}
}
