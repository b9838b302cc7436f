package conversation

import (
	"fmt"
	"testing"
)

func TestContextCapacity(t *testing.T) {
	tests := []struct {
		appended int
		wantLen  int
	}{
		{0, 0},
		{1, 1},
		{10, 10},
		{11, 10},
		{25, 10},
	}

	for _, tt := range tests {
		c := NewContext()
		for i := 0; i < tt.appended; i++ {
			c.Append(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
		}
		if c.Len() != tt.wantLen {
			t.Errorf("after %d appends Len() = %d, want %d", tt.appended, c.Len(), tt.wantLen)
		}
	}
}

func TestContextEvictsOldestFirst(t *testing.T) {
	c := NewContext()
	for i := 0; i < MaxExchanges+3; i++ {
		c.Append(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}

	exchanges := c.Exchanges()
	if exchanges[0].User != "q3" {
		t.Errorf("oldest surviving exchange = %q, want q3", exchanges[0].User)
	}
	if exchanges[len(exchanges)-1].User != fmt.Sprintf("q%d", MaxExchanges+2) {
		t.Errorf("newest exchange = %q, want q%d", exchanges[len(exchanges)-1].User, MaxExchanges+2)
	}
}

func TestRestoreReappliesBound(t *testing.T) {
	var stored []Exchange
	for i := 0; i < 15; i++ {
		stored = append(stored, Exchange{User: fmt.Sprintf("q%d", i), Assistant: fmt.Sprintf("a%d", i)})
	}

	c := Restore(stored)
	if c.Len() != MaxExchanges {
		t.Fatalf("Len() = %d, want %d", c.Len(), MaxExchanges)
	}
	if got := c.Exchanges()[0].User; got != "q5" {
		t.Errorf("oldest after restore = %q, want q5", got)
	}
}

func TestPromptLinesStripHTML(t *testing.T) {
	c := NewContext()
	c.Append("hello", `<div class="ai-response"><p>Hi there!</p></div>`)

	lines := c.PromptLines()
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0] != "User: hello" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[1] != "Assistant: Hi there!" {
		t.Errorf("lines[1] = %q", lines[1])
	}
}

func TestClear(t *testing.T) {
	c := NewContext()
	c.Append("q", "a")
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}
