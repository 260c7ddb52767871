// Package session keeps per-conversation dialog state for the process
// lifetime. The store-level lock covers only the find-or-insert on the map;
// the returned DialogContext carries its own lock for history appends, so a
// slow turn in one conversation never blocks another.
package session

import (
	"sync"

	"github.com/auraya-bot/auraya/internal/domain"
)

type Store struct {
	mu         sync.Mutex
	dialogs    map[string]*domain.DialogContext
	maxHistory int
}

func NewStore(maxHistory int) *Store {
	return &Store{
		dialogs:    make(map[string]*domain.DialogContext),
		maxHistory: maxHistory,
	}
}

// GetOrCreate returns the dialog for a conversation id, creating it on first
// contact.
func (s *Store) GetOrCreate(conversationID string) *domain.DialogContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dialogs[conversationID]
	if !ok {
		d = domain.NewDialogContext(s.maxHistory)
		s.dialogs[conversationID] = d
	}
	return d
}

// Reset replaces the conversation's dialog with a fresh one.
func (s *Store) Reset(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs[conversationID] = domain.NewDialogContext(s.maxHistory)
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dialogs)
}
