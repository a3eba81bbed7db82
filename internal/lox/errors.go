package lox

import "fmt"

// ScanError wraps a diagnostic produced during scanning with the line where
// it occurred.
type ScanError struct {
	line    int
	message string
}

// NewScanError creates a new scanner error
func NewScanError(line int, message string) error {
	return &ScanError{line, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("%d: %s", err.line, err.message)
}

// ParseError wraps a diagnostic produced while parsing with the token where
// the parse went wrong.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new parser error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("%d: %s", err.token.Line, err.message)
}

// RuntimeError carries the message for a failure that occurred while
// evaluating the syntax tree. The message is rendered as-is; constructors
// that know the source line embed it themselves.
type RuntimeError struct {
	message string
}

// NewRuntimeError creates a new interpreter error
func NewRuntimeError(message string) error {
	return &RuntimeError{message}
}

func (err *RuntimeError) Error() string {
	return err.message
}
