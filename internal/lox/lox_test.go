package lox

import "errors"

// mockReporter collects reported errors so tests can assert on the exact
// diagnostics without going through a writer.
type mockReporter struct {
	errors        []error
	hadErr        bool
	hadRuntimeErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false, false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *mockReporter) messages() []string {
	msgs := make([]string, 0, len(reporter.errors))
	for _, err := range reporter.errors {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func tokEOF(line int) *Token {
	return NewToken(EOF, "", nil, line)
}
