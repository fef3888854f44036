package primitives

import (
	"fmt"

	"github.com/cwbudde/go-botlang/internal/runtime"
)

func asList(v runtime.Value, fn string, pos int) (runtime.List, error) {
	l, ok := v.(runtime.List)
	if !ok {
		return runtime.List{}, fmt.Errorf("%s: argument %d is not a list, got %s", fn, pos, v.Kind())
	}
	return l, nil
}

func installLists(prims map[string]*runtime.Primitive) {
	prims["list-ref"] = runtime.NewPrimitive("list-ref", 2, false, func(args []runtime.Value) (runtime.Value, error) {
		l, err := asList(args[0], "list-ref", 0)
		if err != nil {
			return nil, err
		}
		idx, err := asNumber(args[1], "list-ref", 1)
		if err != nil {
			return nil, err
		}
		i := int(idx)
		if i < 0 || i >= len(l.Elements) {
			return nil, fmt.Errorf("list-ref: index %d out of range", i)
		}
		return l.Elements[i], nil
	})

	prims["list-length"] = runtime.NewPrimitive("list-length", 1, false, func(args []runtime.Value) (runtime.Value, error) {
		l, err := asList(args[0], "list-length", 0)
		if err != nil {
			return nil, err
		}
		return runtime.Number{Val: float64(len(l.Elements))}, nil
	})

	prims["list-append"] = runtime.NewPrimitive("list-append", -1, false, func(args []runtime.Value) (runtime.Value, error) {
		var elems []runtime.Value
		for i, a := range args {
			l, err := asList(a, "list-append", i)
			if err != nil {
				return nil, err
			}
			elems = append(elems, l.Elements...)
		}
		return runtime.List{Elements: elems}, nil
	})

	prims["list-first"] = runtime.NewPrimitive("list-first", 1, false, func(args []runtime.Value) (runtime.Value, error) {
		l, err := asList(args[0], "list-first", 0)
		if err != nil {
			return nil, err
		}
		if len(l.Elements) == 0 {
			return nil, fmt.Errorf("list-first: empty list")
		}
		return l.Elements[0], nil
	})

	prims["list-rest"] = runtime.NewPrimitive("list-rest", 1, false, func(args []runtime.Value) (runtime.Value, error) {
		l, err := asList(args[0], "list-rest", 0)
		if err != nil {
			return nil, err
		}
		if len(l.Elements) == 0 {
			return nil, fmt.Errorf("list-rest: empty list")
		}
		return runtime.List{Elements: l.Elements[1:]}, nil
	})

	prims["list-empty?"] = runtime.NewPrimitive("list-empty?", 1, false, func(args []runtime.Value) (runtime.Value, error) {
		l, err := asList(args[0], "list-empty?", 0)
		if err != nil {
			return nil, err
		}
		return runtime.Boolean{Val: len(l.Elements) == 0}, nil
	})
}
