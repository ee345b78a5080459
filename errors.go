package main

import (
	"fmt"
	"strings"
)

// ErrorKind classifies translation failures. Each kind is itself an error
// so callers can test with errors.Is(err, ErrTypeConflict).
type ErrorKind string

const (
	ErrTypeConflict          ErrorKind = "TypeConflict"
	ErrUnknownIdentifier     ErrorKind = "UnknownIdentifier"
	ErrUnsupportedStatement  ErrorKind = "UnsupportedStatement"
	ErrUnsupportedExpression ErrorKind = "UnsupportedExpression"
	ErrUnsupportedCall       ErrorKind = "UnsupportedCall"
	ErrUnsupportedIterable   ErrorKind = "UnsupportedIterable"
)

func (k ErrorKind) Error() string {
	return string(k)
}

// TranslateError is the single error a failed translation run returns.
type TranslateError struct {
	Kind     ErrorKind
	NodeKind NodeKind
	Pos      Position
	Message  string
}

func (e *TranslateError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *TranslateError) Unwrap() error {
	return e.Kind
}

func newError(kind ErrorKind, node *ASTNode, format string, args ...any) *TranslateError {
	err := &TranslateError{Kind: kind, Message: fmt.Sprintf(format, args...)}
	if node != nil {
		err.NodeKind = node.Kind
		err.Pos = node.Pos
	}
	return err
}

// CompileError is a front-end (lexing or parsing) diagnostic.
type CompileError struct {
	Pos     Position
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: error: %s", e.Pos, e.Message)
}

// ErrorCollection accumulates front-end diagnostics.
type ErrorCollection struct {
	errors []*CompileError
}

func (ec *ErrorCollection) Add(pos Position, format string, args ...any) {
	ec.errors = append(ec.errors, &CompileError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (ec *ErrorCollection) HasErrors() bool {
	return len(ec.errors) > 0
}

func (ec *ErrorCollection) Count() int {
	return len(ec.errors)
}

func (ec *ErrorCollection) Errors() []*CompileError {
	return ec.errors
}

func (ec *ErrorCollection) String() string {
	lines := make([]string, len(ec.errors))
	for i, err := range ec.errors {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// Error makes a non-empty collection usable as the error of a failed parse.
func (ec *ErrorCollection) Error() string {
	return ec.String()
}

// truncate drops diagnostics added after the first n.
func (ec *ErrorCollection) truncate(n int) {
	ec.errors = ec.errors[:n]
}
