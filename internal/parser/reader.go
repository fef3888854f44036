// Package parser turns Botlang source text into S-expressions
// (internal/sexpr) and, from there, into the typed AST (internal/ast). It
// deliberately knows nothing about macros or evaluation; this mirrors the
// teacher's own lexer/parser split (internal/lexer scans runes into
// tokens, internal/parser turns tokens into an AST, and nothing below
// internal/interp evaluates anything).
package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cwbudde/go-botlang/internal/coderef"
	"github.com/cwbudde/go-botlang/internal/sexpr"
)

// Reader scans Botlang source text into a sequence of top-level
// S-expressions. Like the teacher's Lexer, column and line positions are
// counted in runes, not bytes, so error locations stay stable across
// multi-byte UTF-8 source.
type Reader struct {
	file   string
	input  string
	lines  []string
	pos    int
	line   int
	column int
	ch     rune
	width  int
}

// NewReader builds a Reader over source, attributing any positions it
// records to file (used only in diagnostics; pass "" for inline snippets).
func NewReader(source, file string) *Reader {
	r := &Reader{
		file:  file,
		input: source,
		lines: strings.Split(source, "\n"),
		line:  1,
	}
	r.readRune()
	return r
}

func (r *Reader) readRune() {
	if r.pos >= len(r.input) {
		r.ch = 0
		r.width = 0
		return
	}
	ch, width := utf8.DecodeRuneInString(r.input[r.pos:])
	r.ch = ch
	r.width = width
}

func (r *Reader) advance() {
	if r.ch == '\n' {
		r.line++
		r.column = 0
	} else {
		r.column++
	}
	r.pos += r.width
	r.readRune()
}

func (r *Reader) atEOF() bool { return r.pos >= len(r.input) }

func (r *Reader) skipWhitespaceAndComments() {
	for !r.atEOF() {
		switch {
		case unicode.IsSpace(r.ch):
			r.advance()
		case r.ch == ';':
			for !r.atEOF() && r.ch != '\n' {
				r.advance()
			}
		default:
			return
		}
	}
}

func (r *Reader) ref(startLine int) *coderef.Reference {
	code := ""
	if startLine-1 >= 0 && startLine-1 < len(r.lines) {
		code = r.lines[startLine-1]
	}
	return coderef.New(r.file, startLine, code)
}

// ReadAll reads every top-level form in the source, in order.
func (r *Reader) ReadAll() ([]sexpr.SExpr, error) {
	var forms []sexpr.SExpr
	for {
		r.skipWhitespaceAndComments()
		if r.atEOF() {
			return forms, nil
		}
		form, err := r.readForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
}

func (r *Reader) readForm() (sexpr.SExpr, error) {
	r.skipWhitespaceAndComments()
	if r.atEOF() {
		return nil, fmt.Errorf("parser: unexpected end of input")
	}

	switch r.ch {
	case '(':
		return r.readCompound()
	case ')':
		return nil, fmt.Errorf("parser: unexpected ')' at line %d", r.line)
	case '"':
		return r.readString()
	default:
		return r.readAtom()
	}
}

func (r *Reader) readCompound() (sexpr.SExpr, error) {
	startLine := r.line
	r.advance() // consume '('
	var children []sexpr.SExpr
	for {
		r.skipWhitespaceAndComments()
		if r.atEOF() {
			return nil, fmt.Errorf("parser: unterminated list starting at line %d", startLine)
		}
		if r.ch == ')' {
			r.advance()
			return sexpr.NewCompound(children...).WithRef(r.ref(startLine)), nil
		}
		child, err := r.readForm()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func (r *Reader) readString() (sexpr.SExpr, error) {
	startLine := r.line
	var sb strings.Builder
	sb.WriteByte('"')
	r.advance() // consume opening quote
	for {
		if r.atEOF() {
			return nil, fmt.Errorf("parser: unterminated string starting at line %d", startLine)
		}
		if r.ch == '"' {
			sb.WriteByte('"')
			r.advance()
			break
		}
		if r.ch == '\\' {
			r.advance()
			sb.WriteRune(escapeRune(r.ch))
			r.advance()
			continue
		}
		sb.WriteRune(r.ch)
		r.advance()
	}
	return sexpr.NewAtom(sb.String()).WithRef(r.ref(startLine)), nil
}

func escapeRune(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return ch
	}
}

func isDelimiter(ch rune) bool {
	return ch == 0 || ch == '(' || ch == ')' || ch == '"' || ch == ';' || unicode.IsSpace(ch)
}

func (r *Reader) readAtom() (sexpr.SExpr, error) {
	startLine := r.line
	var sb strings.Builder
	for !isDelimiter(r.ch) {
		sb.WriteRune(r.ch)
		r.advance()
	}
	if sb.Len() == 0 {
		return nil, fmt.Errorf("parser: unexpected character %q at line %d", r.ch, r.line)
	}
	return sexpr.NewAtom(sb.String()).WithRef(r.ref(startLine)), nil
}
