package store

import (
	"testing"
)

func TestTimerTableExpireBefore(t *testing.T) {
	tt := NewTimerTable("timers")
	tt.Register(30, 3, []byte("c"))
	tt.Register(10, 1, []byte("a"))
	tt.Register(20, 2, []byte("b"))

	fired := tt.ExpireBefore(20)
	if len(fired) != 2 {
		t.Fatalf("fired %d timers, want 2", len(fired))
	}
	if fired[0].TsMs != 10 || fired[1].TsMs != 20 {
		t.Fatalf("fired out of order: %v", fired)
	}
	if tt.Len() != 1 {
		t.Fatalf("%d timers remain, want 1", tt.Len())
	}
	if fired := tt.ExpireBefore(15); len(fired) != 0 {
		t.Fatalf("re-fired expired timers: %v", fired)
	}
	fired = tt.ExpireBefore(100)
	if len(fired) != 1 || fired[0].Key != 3 {
		t.Fatalf("final expiry: %v", fired)
	}
}

func TestTimerTableOverwrite(t *testing.T) {
	tt := NewTimerTable("timers")
	tt.Register(5, 1, []byte("old"))
	tt.Register(5, 1, []byte("new"))
	fired := tt.ExpireBefore(5)
	if len(fired) != 1 || string(fired[0].Value) != "new" {
		t.Fatalf("overwrite: %v", fired)
	}
}
