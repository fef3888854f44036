package session

import (
	"testing"

	"github.com/cwbudde/go-botlang/internal/runtime"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	state := &runtime.ExecutionState{
		PrimitiveValues: []runtime.Value{
			runtime.Number{Val: 3.5},
			runtime.String{Val: "hi"},
			runtime.Boolean{Val: true},
			runtime.Nil,
		},
		BotNodeSteps: 2,
	}

	if err := store.SaveState("alice", state); err != nil {
		t.Fatalf("SaveState error: %v", err)
	}

	got, err := store.LoadState("alice")
	if err != nil {
		t.Fatalf("LoadState error: %v", err)
	}

	if got.BotNodeSteps != 2 {
		t.Errorf("BotNodeSteps = %d, want 2", got.BotNodeSteps)
	}
	if len(got.PrimitiveValues) != 4 {
		t.Fatalf("got %d primitive values, want 4", len(got.PrimitiveValues))
	}
	if got.PrimitiveValues[0].String() != "3.5" {
		t.Errorf("value 0 = %s, want 3.5", got.PrimitiveValues[0].String())
	}
	if got.PrimitiveValues[1].String() != "hi" {
		t.Errorf("value 1 = %s, want hi", got.PrimitiveValues[1].String())
	}
	if got.PrimitiveValues[2].String() != "true" {
		t.Errorf("value 2 = %s, want true", got.PrimitiveValues[2].String())
	}
	if got.PrimitiveValues[3].Kind() != "nil" {
		t.Errorf("value 3 kind = %s, want nil", got.PrimitiveValues[3].Kind())
	}
}

func TestLoadStateMissingFileReturnsFresh(t *testing.T) {
	store := NewStore(t.TempDir())
	state, err := store.LoadState("never-saved")
	if err != nil {
		t.Fatalf("LoadState error: %v", err)
	}
	if state.BotNodeSteps != 0 || len(state.PrimitiveValues) != 0 {
		t.Errorf("expected a fresh empty state, got %+v", state)
	}
}
