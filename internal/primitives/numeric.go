package primitives

import (
	"fmt"

	"github.com/cwbudde/go-botlang/internal/runtime"
)

func asNumber(v runtime.Value, fn string, pos int) (float64, error) {
	n, ok := v.(runtime.Number)
	if !ok {
		return 0, fmt.Errorf("%s: argument %d is not a number, got %s", fn, pos, v.Kind())
	}
	return n.Val, nil
}

func numericFold(name string, identity float64, op func(a, b float64) float64) *runtime.Primitive {
	return runtime.NewPrimitive(name, -1, false, func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.Number{Val: identity}, nil
		}
		acc, err := asNumber(args[0], name, 0)
		if err != nil {
			return nil, err
		}
		for i, a := range args[1:] {
			n, err := asNumber(a, name, i+1)
			if err != nil {
				return nil, err
			}
			acc = op(acc, n)
		}
		return runtime.Number{Val: acc}, nil
	})
}

func numericCompare(name string, cmp func(a, b float64) bool) *runtime.Primitive {
	return runtime.NewPrimitive(name, -1, false, func(args []runtime.Value) (runtime.Value, error) {
		for i := 0; i < len(args)-1; i++ {
			a, err := asNumber(args[i], name, i)
			if err != nil {
				return nil, err
			}
			b, err := asNumber(args[i+1], name, i+1)
			if err != nil {
				return nil, err
			}
			if !cmp(a, b) {
				return runtime.Boolean{Val: false}, nil
			}
		}
		return runtime.Boolean{Val: true}, nil
	})
}

func installNumeric(prims map[string]*runtime.Primitive) {
	prims["+"] = numericFold("+", 0, func(a, b float64) float64 { return a + b })
	prims["*"] = numericFold("*", 1, func(a, b float64) float64 { return a * b })
	prims["-"] = runtime.NewPrimitive("-", -1, false, func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("-: expects at least 1 argument")
		}
		first, err := asNumber(args[0], "-", 0)
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return runtime.Number{Val: -first}, nil
		}
		acc := first
		for i, a := range args[1:] {
			n, err := asNumber(a, "-", i+1)
			if err != nil {
				return nil, err
			}
			acc -= n
		}
		return runtime.Number{Val: acc}, nil
	})
	prims["/"] = runtime.NewPrimitive("/", -1, false, func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("/: expects at least 1 argument")
		}
		first, err := asNumber(args[0], "/", 0)
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			if first == 0 {
				return nil, fmt.Errorf("/: division by zero")
			}
			return runtime.Number{Val: 1 / first}, nil
		}
		acc := first
		for i, a := range args[1:] {
			n, err := asNumber(a, "/", i+1)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				return nil, fmt.Errorf("/: division by zero")
			}
			acc /= n
		}
		return runtime.Number{Val: acc}, nil
	})

	prims["<"] = numericCompare("<", func(a, b float64) bool { return a < b })
	prims["<="] = numericCompare("<=", func(a, b float64) bool { return a <= b })
	prims[">"] = numericCompare(">", func(a, b float64) bool { return a > b })
	prims[">="] = numericCompare(">=", func(a, b float64) bool { return a >= b })
	prims["="] = numericCompare("=", func(a, b float64) bool { return a == b })
}
