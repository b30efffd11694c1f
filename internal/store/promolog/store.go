// Package promolog keeps an append-only audit log of deal plan promotion
// attempts for later inspection.
package promolog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"sigdesk/internal/dealplan"

	_ "modernc.org/sqlite"
)

// Store writes promotion attempts to a local SQLite database.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

var _ dealplan.AuditLog = (*Store)(nil)

// Record is one persisted promotion attempt.
type Record struct {
	ID             int64     `json:"id"`
	FocusID        string    `json:"focus_id"`
	WeekOf         string    `json:"week_of"`
	AttemptedCount int       `json:"attempted_count"`
	AddedCount     int       `json:"added_count"`
	SignalIDs      []string  `json:"signal_ids"`
	Timestamp      time.Time `json:"ts"`
}

// Open creates or opens the audit database at path.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("promolog: db path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path))
	if err != nil {
		return nil, err
	}
	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS promotion_attempts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		focus_id TEXT NOT NULL,
		week_of TEXT NOT NULL,
		attempted_count INTEGER NOT NULL,
		added_count INTEGER NOT NULL,
		signal_ids TEXT NOT NULL,
		ts INTEGER NOT NULL
	)`); err != nil {
		return err
	}
	_, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_promo_focus_week ON promotion_attempts(focus_id, week_of)`)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends one promotion attempt.
func (s *Store) Record(ctx context.Context, entry dealplan.AuditEntry) error {
	ids, err := json.Marshal(entry.SignalIDs)
	if err != nil {
		return fmt.Errorf("encoding signal ids failed: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO promotion_attempts (focus_id, week_of, attempted_count, added_count, signal_ids, ts)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.FocusID, entry.WeekOf, entry.AttemptedCount, entry.AddedCount, string(ids), entry.Timestamp.UnixMilli())
	return err
}

// Recent returns the latest attempts, newest first. limit <= 0 means 50.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, focus_id, week_of, attempted_count, added_count, signal_ids, ts
		 FROM promotion_attempts ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var ids string
		var ts int64
		if err := rows.Scan(&rec.ID, &rec.FocusID, &rec.WeekOf, &rec.AttemptedCount, &rec.AddedCount, &ids, &ts); err != nil {
			return nil, err
		}
		if ids != "" {
			if err := json.Unmarshal([]byte(ids), &rec.SignalIDs); err != nil {
				return nil, fmt.Errorf("decoding signal ids failed: %w", err)
			}
		}
		rec.Timestamp = time.UnixMilli(ts)
		out = append(out, rec)
	}
	return out, rows.Err()
}
