package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// Message is one utterance in a conversation. Immutable once appended.
type Message struct {
	Speaker   Speaker
	Text      string
	Timestamp time.Time
}

// DialogContext holds the ordered message history of a single conversation.
// Appends are serialized by the context's own lock so two concurrent turns
// for the same conversation cannot corrupt the history; everything else in a
// turn (translation, skill calls, cache) runs outside this lock.
type DialogContext struct {
	mu         sync.Mutex
	history    []Message
	maxHistory int
}

func NewDialogContext(maxHistory int) *DialogContext {
	return &DialogContext{maxHistory: maxHistory}
}

// Append records one message. When the history exceeds the configured cap
// the oldest messages are dropped; unbounded growth is a deliberate non-choice.
func (d *DialogContext) Append(speaker Speaker, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.history = append(d.history, Message{
		Speaker:   speaker,
		Text:      text,
		Timestamp: time.Now().UTC(),
	})
	if d.maxHistory > 0 && len(d.history) > d.maxHistory {
		excess := len(d.history) - d.maxHistory
		d.history = append(d.history[:0:0], d.history[excess:]...)
	}
}

// History returns a copy of the message sequence.
func (d *DialogContext) History() []Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Message, len(d.history))
	copy(out, d.history)
	return out
}

func (d *DialogContext) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.history)
}

// LastUserMessage returns the most recent message spoken by the user.
func (d *DialogContext) LastUserMessage() (Message, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := len(d.history) - 1; i >= 0; i-- {
		if d.history[i].Speaker == SpeakerUser {
			return d.history[i], true
		}
	}
	return Message{}, false
}

// Summary renders the history as "speaker: text" lines.
func (d *DialogContext) Summary() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	lines := make([]string, len(d.history))
	for i, m := range d.history {
		lines[i] = fmt.Sprintf("%s: %s", m.Speaker, m.Text)
	}
	return strings.Join(lines, "\n")
}
