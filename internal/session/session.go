// Package session persists and restores a conversation's ExecutionState as
// a small JSON document, so a bot-node evaluation suspended by a BotResult
// can be resumed in a later process. It reads and writes the document with
// gjson/sjson rather than encoding/json and a struct tag, the same
// targeted-path style those libraries are built for, and keeps the
// document schema (a top-level array of primitive values plus a step
// count) stable and easy to inspect by hand.
package session

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-botlang/internal/runtime"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Store reads and writes ExecutionState documents under a root directory,
// one JSON file per conversation id.
type Store struct {
	Dir string
}

// NewStore creates a Store rooted at dir. dir is not created here; callers
// that need it to exist call os.MkdirAll themselves, matching the teacher's
// preference for explicit setup over implicit side effects in constructors.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) path(conversationID string) string {
	return s.Dir + "/" + conversationID + ".json"
}

// SaveState serializes state to this conversation's document.
func (s *Store) SaveState(conversationID string, state *runtime.ExecutionState) error {
	doc := "{}"
	var err error
	doc, err = sjson.Set(doc, "bot_node_steps", state.BotNodeSteps)
	if err != nil {
		return fmt.Errorf("session: encoding bot_node_steps: %w", err)
	}
	for i, v := range state.PrimitiveValues {
		doc, err = sjson.Set(doc, fmt.Sprintf("primitive_values.%d", i), encodeValue(v))
		if err != nil {
			return fmt.Errorf("session: encoding primitive value %d: %w", i, err)
		}
	}
	return os.WriteFile(s.path(conversationID), []byte(doc), 0o644)
}

// LoadState deserializes this conversation's document, or returns a fresh
// empty ExecutionState if no document exists yet.
func (s *Store) LoadState(conversationID string) (*runtime.ExecutionState, error) {
	data, err := os.ReadFile(s.path(conversationID))
	if os.IsNotExist(err) {
		return runtime.NewExecutionState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: reading %s: %w", conversationID, err)
	}

	doc := gjson.ParseBytes(data)
	steps := int(doc.Get("bot_node_steps").Int())

	var values []runtime.Value
	for _, v := range doc.Get("primitive_values").Array() {
		val, err := decodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("session: decoding %s: %w", conversationID, err)
		}
		values = append(values, val)
	}

	return &runtime.ExecutionState{PrimitiveValues: values, BotNodeSteps: steps}, nil
}

// encodeValue turns a runtime.Value into a JSON-friendly Go value. Only the
// value kinds a cached primitive can return need encoding: random and
// random-int produce numbers, http-get produces strings.
func encodeValue(v runtime.Value) any {
	switch n := v.(type) {
	case runtime.Number:
		return map[string]any{"kind": "number", "value": n.Val}
	case runtime.String:
		return map[string]any{"kind": "string", "value": n.Val}
	case runtime.Boolean:
		return map[string]any{"kind": "boolean", "value": n.Val}
	default:
		return map[string]any{"kind": "nil"}
	}
}

func decodeValue(r gjson.Result) (runtime.Value, error) {
	switch r.Get("kind").String() {
	case "number":
		return runtime.Number{Val: r.Get("value").Float()}, nil
	case "string":
		return runtime.String{Val: r.Get("value").String()}, nil
	case "boolean":
		return runtime.Boolean{Val: r.Get("value").Bool()}, nil
	case "nil":
		return runtime.Nil, nil
	default:
		return nil, fmt.Errorf("unrecognized cached value kind %q", r.Get("kind").String())
	}
}
