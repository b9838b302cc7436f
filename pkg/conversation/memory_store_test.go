package conversation

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Append(ctx, "s1", "hello", "hi"); err != nil {
		t.Fatal(err)
	}
	c, err := s.Load(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}

	if err := s.Clear(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	c, _ = s.Load(ctx, "s1")
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}

func TestMemoryStoreLoadReturnsSnapshot(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Append(ctx, "s1", "q1", "a1")
	c, _ := s.Load(ctx, "s1")
	c.Append("local", "mutation")

	stored, _ := s.Load(ctx, "s1")
	if stored.Len() != 1 {
		t.Errorf("stored Len() = %d after mutating a loaded copy, want 1", stored.Len())
	}
}

// Concurrent requests on one session must not share a mutable context.
// Run with -race.
func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Append(ctx, "shared", fmt.Sprintf("q%d-%d", n, j), "a")
				c, err := s.Load(ctx, "shared")
				if err != nil {
					t.Error(err)
					return
				}
				c.PromptLines()
			}
		}(i)
	}
	wg.Wait()

	c, _ := s.Load(ctx, "shared")
	if c.Len() != MaxExchanges {
		t.Errorf("Len() = %d after concurrent appends, want %d", c.Len(), MaxExchanges)
	}
}
