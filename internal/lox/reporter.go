package lox

import (
	"errors"
	"io"

	"github.com/fatih/color"
)

// Reporter defines the interface for structures that can display errors to
// the user. A reporter is defined to separate error reporting code from error
// displaying code. It keeps two flags so the caller can tell compile-time
// failures apart from runtime failures when deciding on an exit status.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadRuntimeError() bool
	Reset()
}

// SimpleReporter writes each reported error on its own line to the inner
// writer. Runtime errors are printed in bold red, every other diagnostic in
// red; colors are stripped when disabled through the color package.
type SimpleReporter struct {
	writer        io.Writer
	hadErr        bool
	hadRuntimeErr bool
	errColor      *color.Color
	runtimeColor  *color.Color
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{
		writer:       writer,
		errColor:     color.New(color.FgRed),
		runtimeColor: color.New(color.FgRed, color.Bold),
	}
}

func (reporter *SimpleReporter) Report(err error) {
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		reporter.hadRuntimeErr = true
		reporter.runtimeColor.Fprintln(reporter.writer, err)
		return
	}
	reporter.hadErr = true
	reporter.errColor.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

// Reset clears both error flags, it is called between REPL lines so an error
// does not poison the inputs that follow it.
func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}
