// Package sqlite provides the durable EntryStore backend. The schema is
// bootstrapped on open. Sequence numbers are assigned inside an
// immediate transaction, which takes the write lock up front so
// concurrent appends queue instead of racing the MAX(seq) read; the
// composite primary key rejects a duplicate outright if one ever slips
// through.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/stillpage/stillpage/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	session_id TEXT    NOT NULL,
	seq        INTEGER NOT NULL,
	text       TEXT    NOT NULL,
	mode       TEXT    NOT NULL,
	themes     TEXT    NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	PRIMARY KEY (session_id, seq)
);
`

type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_txlock=immediate&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	if logger != nil {
		logger.Info("sqlite entry store ready", "path", path)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) AppendEntry(ctx context.Context, entry *domain.Entry) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM entries WHERE session_id = ?`,
		string(entry.SessionID),
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO entries (session_id, seq, text, mode, themes, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		string(entry.SessionID), seq, entry.Text, string(entry.Mode), strings.Join(entry.Themes, ","), entry.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit append: %w", err)
	}
	return seq, nil
}

func (s *Store) RecentEntries(ctx context.Context, sessionID domain.SessionID, k int) ([]*domain.Entry, error) {
	if k <= 0 {
		k = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, text, mode, themes, created_at FROM entries
		 WHERE session_id = ? ORDER BY seq DESC LIMIT ?`,
		string(sessionID), k,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent entries: %w", err)
	}
	defer rows.Close()

	var newestFirst []*domain.Entry
	for rows.Next() {
		var (
			e         domain.Entry
			mode      string
			themes    string
			createdAt time.Time
		)
		if err := rows.Scan(&e.Seq, &e.Text, &mode, &themes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.SessionID = sessionID
		e.Mode = domain.Mode(mode)
		if themes != "" {
			e.Themes = strings.Split(themes, ",")
		}
		e.CreatedAt = createdAt
		newestFirst = append(newestFirst, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	// Flip to oldest-first, the order the insights layer expects.
	out := make([]*domain.Entry, len(newestFirst))
	for i, e := range newestFirst {
		out[len(out)-1-i] = e
	}
	return out, nil
}
