// Package boterr formats evaluation failures with source context, the way
// the teacher repository's internal/errors package formats compiler errors:
// a file:line header, the offending source line, a caret, and the message,
// optionally ANSI-colored for a terminal. boterr additionally carries the
// evaluator's execution stack at the point of failure, since an evaluation
// error needs the full call trace, not just a single source position.
package boterr

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-botlang/internal/coderef"
)

// Kind classifies the failure, mirroring spec.md's error-kind table.
type Kind int

const (
	UnboundIdentifier Kind = iota
	NotAFunction
	ArityMismatch
	NoMatchingCondClause
	MacroArityMismatch
	PrimitiveFailure
)

func (k Kind) String() string {
	switch k {
	case UnboundIdentifier:
		return "unbound identifier"
	case NotAFunction:
		return "not a function"
	case ArityMismatch:
		return "arity mismatch"
	case NoMatchingCondClause:
		return "no matching cond clause"
	case MacroArityMismatch:
		return "macro arity mismatch"
	case PrimitiveFailure:
		return "primitive failure"
	default:
		return "error"
	}
}

// TraceFrame is one entry of the execution stack captured when an
// EvaluationError is raised: the node kind being evaluated and where it
// came from.
type TraceFrame struct {
	NodeKind string
	CodeRef  *coderef.Reference
}

func (f TraceFrame) summary() string {
	return fmt.Sprintf("\t%s, %s", f.NodeKind, f.CodeRef.String())
}

// EvaluationError is the single error type every evaluation failure in
// internal/eval surfaces as.
type EvaluationError struct {
	Kind    Kind
	Message string
	CodeRef *coderef.Reference
	Trace   []TraceFrame
}

// New builds an EvaluationError.
func New(kind Kind, message string, ref *coderef.Reference) *EvaluationError {
	return &EvaluationError{Kind: kind, Message: message, CodeRef: ref}
}

// WithTrace attaches the execution stack at the point of failure and
// returns the same error, builder-style.
func (e *EvaluationError) WithTrace(frames []TraceFrame) *EvaluationError {
	e.Trace = frames
	return e
}

// Error implements the error interface with the uncolored rendering.
func (e *EvaluationError) Error() string {
	return e.Format(false)
}

// Format renders the header, the offending source line with a line-number
// gutter and caret, the message, and the execution trace below it. If color
// is true, ANSI codes highlight the caret and the message, matching the
// teacher's CompilerError.Format.
func (e *EvaluationError) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s\n", e.Kind, e.CodeRef.String()))

	if e.CodeRef != nil && e.CodeRef.Code != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.CodeRef.StartLine)
		sb.WriteString(lineNumStr)
		sb.WriteString(e.CodeRef.Code)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	if len(e.Trace) > 0 {
		sb.WriteString("\n\nexecution stack:\n")
		for i := len(e.Trace) - 1; i >= 0; i-- {
			sb.WriteString(e.Trace[i].summary())
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
