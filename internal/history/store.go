package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/foundation/core/errors"
	"github.com/msto63/numtower/foundation/core/log"
	"github.com/msto63/numtower/pkg/tower"
)

// Entry is one evaluated line
type Entry struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Timestamp  time.Time `json:"timestamp"`
	Expression string    `json:"expression"`
	Result     string    `json:"result,omitempty"`
	Kind       string    `json:"kind,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// NewEntry builds an entry for expression. A non-nil err is recorded in
// place of the result.
func NewEntry(sessionID, expression string, value tower.Value, err error) *Entry {
	e := &Entry{SessionID: sessionID, Expression: expression}
	if err != nil {
		e.Error = err.Error()
		return e
	}
	e.Result = value.String()
	e.Kind = value.Kind().String()
	return e
}

// Failed reports whether the evaluation ended in an error
func (e *Entry) Failed() bool {
	return e.Error != ""
}

// Value parses the recorded result back into a tower value
func (e *Entry) Value() (tower.Value, error) {
	return tower.Parse(e.Result)
}

// Filter defines criteria for listing entries. Zero fields match everything.
type Filter struct {
	SessionID string
	Since     time.Time
	Failed    *bool
	Limit     int
	Offset    int
}

// Store persists evaluation history
type Store interface {
	Record(ctx context.Context, entry *Entry) error
	// Recent returns matching entries, newest first
	Recent(ctx context.Context, filter Filter) ([]*Entry, error)
	Count(ctx context.Context) (int64, error)
	Clear(ctx context.Context) (int64, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// Config holds configuration for the SQLite store
type Config struct {
	Path   string
	Logger *log.Logger // nil discards
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{Path: "./data/history.db"}
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore opens or creates the database at cfg.Path
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, dbError("Open", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError("Open", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Discard()
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError("Open", err)
	}
	logger.Debug("history store opened", log.Fields{"path": cfg.Path})
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		expression TEXT NOT NULL,
		result TEXT,
		kind TEXT,
		error TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_history_timestamp ON history(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_history_session ON history(session_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores entry, assigning an ID and timestamp when they are unset
func (s *SQLiteStore) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prepare(entry)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, session_id, timestamp, expression, result, kind, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.SessionID, entry.Timestamp, entry.Expression,
		nullString(entry.Result), nullString(entry.Kind), nullString(entry.Error))
	if err != nil {
		return dbError("Record", err)
	}
	return nil
}

// Recent retrieves entries matching filter, newest first
func (s *SQLiteStore) Recent(ctx context.Context, filter Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, session_id, timestamp, expression, result, kind, error FROM history WHERE 1=1`
	var args []interface{}

	if filter.SessionID != "" {
		query += " AND session_id = ?"
		args = append(args, filter.SessionID)
	}
	if !filter.Since.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, filter.Since.UTC())
	}
	if filter.Failed != nil {
		if *filter.Failed {
			query += " AND error IS NOT NULL"
		} else {
			query += " AND error IS NULL"
		}
	}

	query += " ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError("Recent", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var entry Entry
		var result, kind, failure sql.NullString
		if err := rows.Scan(&entry.ID, &entry.SessionID, &entry.Timestamp, &entry.Expression,
			&result, &kind, &failure); err != nil {
			return nil, dbError("Recent", err)
		}
		entry.Result = result.String
		entry.Kind = kind.String
		entry.Error = failure.String
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("Recent", err)
	}
	return entries, nil
}

// Count returns the number of stored entries
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&total); err != nil {
		return 0, dbError("Count", err)
	}
	return total, nil
}

// Clear deletes every entry
func (s *SQLiteStore) Clear(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, dbError("Clear", err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Prune deletes entries older than olderThan
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)
	result, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, dbError("Prune", err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func prepare(entry *Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	// stored as text; a single zone keeps the ordering lexical
	entry.Timestamp = entry.Timestamp.UTC()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func dbError(op string, err error) error {
	return errors.OperationError(errors.ModuleHistory, op, err, mdwerror.CodeDatabaseError)
}
