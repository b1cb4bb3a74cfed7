package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// ExpansionRecord is one served expansion request. It is an audit trail of
// service traffic; schedules themselves are never reloaded from it.
type ExpansionRecord struct {
	ID         string        `json:"id"`
	Expression string        `json:"expression"`
	Outcome    string        `json:"outcome"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
	CreatedAt  time.Time     `json:"created_at"`
}

// HistoryStorage defines the interface for the request audit log
type HistoryStorage interface {
	// Store stores a served request record
	Store(ctx context.Context, record *ExpansionRecord) error

	// List retrieves records ordered by creation time descending, with pagination
	List(ctx context.Context, offset, limit int) ([]*ExpansionRecord, error)

	// Count returns the total number of stored records
	Count(ctx context.Context) (int, error)

	// DeleteBefore deletes records older than the specified time
	DeleteBefore(ctx context.Context, before time.Time) error

	// Close releases the underlying database handle
	Close() error
}

// SQLiteHistory implements HistoryStorage using SQLite
type SQLiteHistory struct {
	logger *zap.Logger
	db     *sql.DB
}

// NewSQLiteHistory opens (or creates) the history database at dbPath
func NewSQLiteHistory(logger *zap.Logger, dbPath string) (*SQLiteHistory, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	storage := &SQLiteHistory{
		logger: logger.Named("history"),
		db:     db,
	}

	if err := storage.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return storage, nil
}

// initialize creates the schema if it does not exist
func (s *SQLiteHistory) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS expansion_history (
		id TEXT PRIMARY KEY,
		expression TEXT NOT NULL,
		outcome TEXT NOT NULL,
		error TEXT,
		duration_ns INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_expansion_history_created_at
		ON expansion_history(created_at);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Store implements HistoryStorage
func (s *SQLiteHistory) Store(ctx context.Context, record *ExpansionRecord) error {
	query := `
	INSERT INTO expansion_history (id, expression, outcome, error, duration_ns, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.Expression,
		record.Outcome,
		record.Error,
		record.Duration.Nanoseconds(),
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store record: %w", err)
	}

	s.logger.Debug("Stored expansion record",
		zap.String("id", record.ID),
		zap.String("outcome", record.Outcome))

	return nil
}

// List implements HistoryStorage
func (s *SQLiteHistory) List(ctx context.Context, offset, limit int) ([]*ExpansionRecord, error) {
	query := `
	SELECT id, expression, outcome, error, duration_ns, created_at
	FROM expansion_history
	ORDER BY created_at DESC
	LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*ExpansionRecord
	for rows.Next() {
		var record ExpansionRecord
		var errText sql.NullString
		var durationNS int64

		if err := rows.Scan(
			&record.ID,
			&record.Expression,
			&record.Outcome,
			&errText,
			&durationNS,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		record.Error = errText.String
		record.Duration = time.Duration(durationNS)
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// Count implements HistoryStorage
func (s *SQLiteHistory) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expansion_history`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// DeleteBefore implements HistoryStorage
func (s *SQLiteHistory) DeleteBefore(ctx context.Context, before time.Time) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM expansion_history WHERE created_at < ?`, before)
	if err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted count: %w", err)
	}

	s.logger.Info("Cleaned up expansion history",
		zap.Int64("deleted", deleted),
		zap.Time("before", before))

	return nil
}

// Close implements HistoryStorage
func (s *SQLiteHistory) Close() error {
	return s.db.Close()
}
