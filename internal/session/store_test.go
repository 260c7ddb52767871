package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/auraya-bot/auraya/internal/domain"
)

func TestGetOrCreateReturnsSameDialog(t *testing.T) {
	s := NewStore(0)
	a := s.GetOrCreate("chat-1")
	b := s.GetOrCreate("chat-1")
	if a != b {
		t.Fatalf("GetOrCreate returned different dialogs for same id")
	}
	if s.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", s.Count())
	}
}

func TestResetDropsHistory(t *testing.T) {
	s := NewStore(0)
	d := s.GetOrCreate("chat-1")
	d.Append(domain.SpeakerUser, "hello")
	s.Reset("chat-1")

	if got := s.GetOrCreate("chat-1").Len(); got != 0 {
		t.Fatalf("history length after reset = %d, want 0", got)
	}
}

func TestDialogOrdering(t *testing.T) {
	s := NewStore(0)
	d := s.GetOrCreate("chat-1")
	d.Append(domain.SpeakerUser, "q1")
	d.Append(domain.SpeakerBot, "a1")
	d.Append(domain.SpeakerUser, "q2")
	d.Append(domain.SpeakerBot, "a2")

	history := d.History()
	if len(history) != 4 {
		t.Fatalf("history length = %d, want 4", len(history))
	}
	wantSpeakers := []domain.Speaker{
		domain.SpeakerUser, domain.SpeakerBot,
		domain.SpeakerUser, domain.SpeakerBot,
	}
	for i, m := range history {
		if m.Speaker != wantSpeakers[i] {
			t.Fatalf("history[%d].Speaker = %q, want %q", i, m.Speaker, wantSpeakers[i])
		}
		if i > 0 && m.Timestamp.Before(history[i-1].Timestamp) {
			t.Fatalf("timestamps not non-decreasing at %d", i)
		}
	}

	last, ok := d.LastUserMessage()
	if !ok || last.Text != "q2" {
		t.Fatalf("LastUserMessage() = %q, %v, want q2", last.Text, ok)
	}
}

func TestHistoryCap(t *testing.T) {
	s := NewStore(4)
	d := s.GetOrCreate("chat-1")
	for i := 0; i < 6; i++ {
		d.Append(domain.SpeakerUser, fmt.Sprintf("m%d", i))
	}
	history := d.History()
	if len(history) != 4 {
		t.Fatalf("capped history length = %d, want 4", len(history))
	}
	if history[0].Text != "m2" {
		t.Fatalf("oldest kept = %q, want m2", history[0].Text)
	}
}

func TestConcurrentConversations(t *testing.T) {
	s := NewStore(0)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("chat-%d", i%5)
			d := s.GetOrCreate(id)
			d.Append(domain.SpeakerUser, "hi")
			d.Append(domain.SpeakerBot, "hello")
		}(i)
	}
	wg.Wait()

	if s.Count() != 5 {
		t.Fatalf("Count() = %d, want 5", s.Count())
	}
	for i := 0; i < 5; i++ {
		d := s.GetOrCreate(fmt.Sprintf("chat-%d", i))
		if d.Len() != 8 {
			t.Fatalf("dialog %d length = %d, want 8", i, d.Len())
		}
	}
}
