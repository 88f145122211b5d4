package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/mordomo/internal/core"
)

func turn(role, content string) core.Turn {
	return core.Turn{Role: role, Content: content, CreatedAt: time.Now()}
}

func TestStore_ImplicitCreation(t *testing.T) {
	s := NewStore(30*time.Minute, 20)

	if got := s.History("nova"); len(got) != 0 {
		t.Fatalf("fresh session should be empty, got %d turns", len(got))
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestStore_AppendTruncatesToCap(t *testing.T) {
	// Cap of 2 exchanges keeps at most 4 turns.
	s := NewStore(30*time.Minute, 2)

	for i := 0; i < 6; i++ {
		s.Append("s1",
			turn(core.RoleUser, fmt.Sprintf("pergunta %d", i)),
			turn(core.RoleAssistant, fmt.Sprintf("resposta %d", i)),
		)
	}

	turns := s.History("s1")
	if len(turns) != 4 {
		t.Fatalf("len = %d, want 4", len(turns))
	}
	// Oldest turns dropped, newest kept.
	if turns[0].Content != "pergunta 4" {
		t.Errorf("oldest kept turn = %q, want \"pergunta 4\"", turns[0].Content)
	}
	if turns[3].Content != "resposta 5" {
		t.Errorf("newest turn = %q, want \"resposta 5\"", turns[3].Content)
	}
}

func TestStore_SweepEvictsStaleSessions(t *testing.T) {
	s := NewStore(30*time.Minute, 20)

	s.Append("stale", turn(core.RoleUser, "oi"))
	s.Append("fresh", turn(core.RoleUser, "oi"))

	// Age the stale session past the TTL by sweeping from the future.
	s.entries["stale"].lastSeen = time.Now().Add(-31 * time.Minute)

	evicted := s.Sweep(time.Now())
	if evicted != 1 {
		t.Fatalf("evicted = %d, want 1", evicted)
	}
	if _, ok := s.entries["stale"]; ok {
		t.Error("stale session survived the sweep")
	}
	if _, ok := s.entries["fresh"]; !ok {
		t.Error("fresh session was evicted")
	}
}

func TestStore_SweepSkipsLockedSessions(t *testing.T) {
	s := NewStore(30*time.Minute, 20)
	s.Append("busy", turn(core.RoleUser, "oi"))
	s.entries["busy"].lastSeen = time.Now().Add(-time.Hour)

	release := s.Lock("busy")
	defer release()

	if evicted := s.Sweep(time.Now()); evicted != 0 {
		t.Fatalf("evicted = %d, want 0: an in-flight turn means the session is active", evicted)
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore(30*time.Minute, 20)
	s.Append("s1", turn(core.RoleUser, "oi"))

	s.Reset("s1")

	if got := s.History("s1"); len(got) != 0 {
		t.Fatalf("reset session should be empty, got %d turns", len(got))
	}
}

func TestStore_PerSessionSerialization(t *testing.T) {
	s := NewStore(30*time.Minute, 100)

	// Concurrent read-modify-append cycles on one id must not lose turns.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			release := s.Lock("shared")
			defer release()

			before := len(s.History("shared"))
			s.Append("shared", turn(core.RoleUser, fmt.Sprintf("m%d", i)))
			if after := len(s.History("shared")); after != before+1 {
				t.Errorf("interleaved append: before=%d after=%d", before, after)
			}
		}(i)
	}
	wg.Wait()

	if got := len(s.History("shared")); got != 50 {
		t.Fatalf("turns = %d, want 50", got)
	}
}
