package primitives

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cwbudde/go-botlang/internal/runtime"
)

// HTTPClient is exposed so internal/config can install a client with a
// configured timeout instead of every Install call reaching for
// http.DefaultClient.
var HTTPClient = &http.Client{Timeout: 10 * time.Second}

// installHTTP registers the http-get primitive. It is marked cached for the
// same reason random is: an HTTP response is not reproducible on replay, so
// its result has to be recorded in the ExecutionState rather than
// re-fetched.
//
// net/http is standard library, not a third-party dependency; no example
// in the corpus wires an HTTP client library (the teacher and its domain
// have no network surface), so there is nothing in the pack to ground a
// substitute on. See DESIGN.md.
func installHTTP(prims map[string]*runtime.Primitive) {
	prims["http-get"] = runtime.NewPrimitive("http-get", 1, true, func(args []runtime.Value) (runtime.Value, error) {
		url, err := asString(args[0], "http-get", 0)
		if err != nil {
			return nil, err
		}
		resp, err := HTTPClient.Get(url)
		if err != nil {
			return nil, fmt.Errorf("http-get: %w", err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("http-get: %w", err)
		}
		return runtime.String{Val: string(body)}, nil
	})
}
