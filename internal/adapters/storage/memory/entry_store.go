// Package memory provides the in-memory EntryStore used in local mode
// and tests. Entries live for the process lifetime only; nothing touches
// disk.
package memory

import (
	"context"
	"sync"

	"github.com/stillpage/stillpage/internal/domain"
)

type EntryStore struct {
	mu      sync.RWMutex
	entries map[domain.SessionID][]*domain.Entry
}

func NewEntryStore() *EntryStore {
	return &EntryStore{
		entries: make(map[domain.SessionID][]*domain.Entry),
	}
}

// AppendEntry stores a copy of the entry and assigns the next sequence
// number for its session.
func (s *EntryStore) AppendEntry(_ context.Context, entry *domain.Entry) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *entry
	stored.Themes = append([]string(nil), entry.Themes...)
	stored.Seq = int64(len(s.entries[entry.SessionID])) + 1
	s.entries[entry.SessionID] = append(s.entries[entry.SessionID], &stored)

	return stored.Seq, nil
}

// RecentEntries returns up to k most recent entries for the session,
// oldest first. k <= 0 returns everything.
func (s *EntryStore) RecentEntries(_ context.Context, sessionID domain.SessionID, k int) ([]*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.entries[sessionID]
	if k > 0 && len(all) > k {
		all = all[len(all)-k:]
	}

	out := make([]*domain.Entry, len(all))
	copy(out, all)
	return out, nil
}
