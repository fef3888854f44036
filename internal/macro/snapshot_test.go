package macro

import (
	"testing"

	"github.com/cwbudde/go-botlang/internal/parser"
	"github.com/cwbudde/go-botlang/internal/sexpr"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMacroExpansionSnapshots pins the expanded surface syntax of a handful
// of macros, the same way the teacher snapshots DWScript fixture output:
// a regression in hygiene or splicing shows up as a snapshot diff instead
// of a silently wrong value.
func TestMacroExpansionSnapshots(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{
			name:   "unless",
			source: `(define-syntax-rule (unless c body) (if c nil body)) (unless false 42)`,
		},
		{
			name:   "my-or-with-hygienic-temp",
			source: `(define-syntax-rule (my-or a b) (local ((define tmp a)) (if tmp tmp b))) (my-or false tmp)`,
		},
		{
			name:   "nested-macro",
			source: `(define-syntax-rule (inc x) (+ x 1)) (define-syntax-rule (inc2 x) (inc (inc x))) (inc2 5)`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			forms, err := parser.Parse(tc.source, "<snapshot>")
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			expanded, err := NewExpander().ExpandProgram(forms)
			if err != nil {
				t.Fatalf("expand error: %v", err)
			}
			var rendered string
			for _, n := range expanded {
				rendered += sexpr.String(n.RawSExpr()) + "\n"
			}
			snaps.MatchSnapshot(t, rendered)
		})
	}
}
