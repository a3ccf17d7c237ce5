package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stillpage/stillpage/internal/adapters/storage/sqlite"
	"github.com/stillpage/stillpage/internal/domain"
)

func openTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "entries.db")
	store, err := sqlite.Open(context.Background(), path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	modes := []domain.Mode{domain.ModeBaseline, domain.ModeLowEnergy, domain.ModeLowEnergy}

	for i, m := range modes {
		seq, err := store.AppendEntry(ctx, &domain.Entry{
			SessionID: "s1",
			Text:      "entry text",
			Mode:      m,
			Themes:    []string{"health", "work"},
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}

	got, err := store.RecentEntries(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// oldest first
	assert.Equal(t, int64(2), got[0].Seq)
	assert.Equal(t, int64(3), got[1].Seq)
	assert.Equal(t, domain.ModeLowEnergy, got[0].Mode)
	assert.Equal(t, []string{"health", "work"}, got[0].Themes)
	assert.True(t, got[0].CreatedAt.Before(got[1].CreatedAt))
}

func TestSQLiteEmptyThemesRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	_, err := store.AppendEntry(ctx, &domain.Entry{
		SessionID: "s1", Text: "x", Mode: domain.ModeBaseline, CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	got, err := store.RecentEntries(ctx, "s1", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Themes)
}

// Two store handles over the same file must continue the same per-session
// sequence; assignment happens inside the append transaction, not in
// process memory.
func TestSQLiteSequenceContinuesAcrossHandles(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "entries.db")

	first, err := sqlite.Open(ctx, path, nil)
	require.NoError(t, err)

	seq, err := first.AppendEntry(ctx, &domain.Entry{SessionID: "s1", Text: "a", Mode: domain.ModeBaseline, CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)
	require.NoError(t, first.Close())

	second, err := sqlite.Open(ctx, path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	seq, err = second.AppendEntry(ctx, &domain.Entry{SessionID: "s1", Text: "b", Mode: domain.ModeBaseline, CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), seq)
}

func TestSQLiteSessionsIsolated(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	_, err := store.AppendEntry(ctx, &domain.Entry{SessionID: "a", Text: "x", Mode: domain.ModeBaseline, CreatedAt: time.Now()})
	require.NoError(t, err)

	seq, err := store.AppendEntry(ctx, &domain.Entry{SessionID: "b", Text: "y", Mode: domain.ModeBaseline, CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq, "each session has its own sequence")

	got, err := store.RecentEntries(ctx, "a", 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
