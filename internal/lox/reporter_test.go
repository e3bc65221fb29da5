package lox

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// plainColors disables colored output for the duration of a test so the
// assertions can compare plain text.
func plainColors(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)

	assert.False(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterSendAnyError(t *testing.T) {
	plainColors(t)
	assert := assert.New(t)
	err := errors.New("Test error")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterSendScanError(t *testing.T) {
	plainColors(t)
	assert := assert.New(t)
	err := newScanError(3, "Unexpected character.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal("[line 3] Error: Unexpected character.\n", out.String())
	assert.True(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterSendParseError(t *testing.T) {
	plainColors(t)
	assert := assert.New(t)

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(NewParseError(NewToken(PLUS, "+", nil, 2), "Expect expression."))
	r.Report(NewParseError(tokEOF(4), "Expect ';' after value."))

	assert.Equal(
		"[line 2] Error at '+': Expect expression.\n"+
			"[line 4] Error at end: Expect ';' after value.\n",
		out.String(),
	)
	assert.True(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterSendRuntimeError(t *testing.T) {
	plainColors(t)
	assert := assert.New(t)
	err := NewRuntimeError(NewToken(MINUS, "-", nil, 1), "Operands must be numbers.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal("Operands must be numbers.\n[line 1]\n", out.String())
	assert.False(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	plainColors(t)
	assert := assert.New(t)
	err1 := errors.New("Test error")
	err2 := NewRuntimeError(NewToken(MINUS, "-", nil, 1), "Operands must be numbers.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())
	assert.True(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestSimpleReporterReset(t *testing.T) {
	plainColors(t)
	assert := assert.New(t)
	err1 := errors.New("Test error")
	err2 := NewRuntimeError(NewToken(MINUS, "-", nil, 1), "Operands must be numbers.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	r.Reset()
	assert.False(r.HadRuntimeError())
	assert.False(r.HadError())
}
