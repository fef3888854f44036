// Package primitives installs Botlang's built-in function table into a
// fresh runtime.Environment, split by concern the way the teacher repo
// splits its own built-ins (math.go, strings.go, collections.go, ...)
// rather than as one undifferentiated file.
package primitives

import "github.com/cwbudde/go-botlang/internal/runtime"

// Install populates env with every built-in primitive.
func Install(env *runtime.Environment) {
	prims := make(map[string]*runtime.Primitive)
	installNumeric(prims)
	installStrings(prims)
	installLists(prims)
	installRandom(prims)
	installHTTP(prims)
	env.AddPrimitives(prims)
}
