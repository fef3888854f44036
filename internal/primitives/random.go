package primitives

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/go-botlang/internal/runtime"
)

// installRandom registers the nondeterministic primitives. Both are marked
// cached: once a suspended bot-node evaluation records the value a random
// call produced, replaying that evaluation must reproduce the exact same
// value rather than rolling again, or two runs of the same conversation
// history would diverge.
func installRandom(prims map[string]*runtime.Primitive) {
	prims["random"] = runtime.NewPrimitive("random", 0, true, func(args []runtime.Value) (runtime.Value, error) {
		return runtime.Number{Val: rand.Float64()}, nil
	})

	prims["random-int"] = runtime.NewPrimitive("random-int", 2, true, func(args []runtime.Value) (runtime.Value, error) {
		lo, err := asNumber(args[0], "random-int", 0)
		if err != nil {
			return nil, err
		}
		hi, err := asNumber(args[1], "random-int", 1)
		if err != nil {
			return nil, err
		}
		low, high := int(lo), int(hi)
		if high <= low {
			return nil, fmt.Errorf("random-int: upper bound must exceed lower bound")
		}
		return runtime.Number{Val: float64(low + rand.Intn(high-low))}, nil
	})
}
