package lox

import "fmt"

// ScanError wraps an error message produced during scanning with the line on
// which it occurred.
type ScanError struct {
	line    int
	message string
}

func newScanError(line int, message string) error {
	return &ScanError{line, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf(
		"[line %d] Error: %s",
		err.line,
		err.message,
	)
}

// ParseError wraps an error message produced while parsing with the token at
// which parsing failed.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new parse error at the given token.
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf(
			"[line %d] Error at end: %s",
			err.token.Line,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.token.Line,
		err.token.Lexeme,
		err.message,
	)
}

// RuntimeError wraps an error message produced while interpreting with the
// token that is responsible for the failed operation.
type RuntimeError struct {
	token   *Token
	message string
}

// NewRuntimeError creates a new runtime error at the given token.
func NewRuntimeError(token *Token, message string) error {
	return &RuntimeError{token, message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf(
		"%s\n[line %d]",
		err.message,
		err.token.Line,
	)
}
