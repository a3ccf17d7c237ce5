package domain

import (
	"context"
	"errors"
)

// ErrStoreUnavailable marks append/read failures of the entry store
// collaborator. The core never composes a response from partial history;
// callers map this to a service-unavailable reply.
var ErrStoreUnavailable = errors.New("entry store unavailable")

// EntryStore defines the only persistence capabilities the core needs.
// AppendEntry assigns and returns the per-session sequence number.
// RecentEntries returns up to k most recent entries, oldest first.
type EntryStore interface {
	AppendEntry(ctx context.Context, entry *Entry) (int64, error)
	RecentEntries(ctx context.Context, sessionID SessionID, k int) ([]*Entry, error)
}
