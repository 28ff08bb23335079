package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tempo/internal/modules/tracker/domain"
	"tempo/internal/platform/datetime"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/tx"

	_ "modernc.org/sqlite"
)

// SQLiteSessionStore persists sessions in a single table. Timestamps are
// stored as RFC 3339 text so ORDER BY and range predicates compare correctly.
type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(dbPath string) (*SQLiteSessionStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteSessionStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id INTEGER PRIMARY KEY,
  topic TEXT NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

// DB exposes the handle for collaborators sharing the same database file
// (stats reader, transaction manager).
func (s *SQLiteSessionStore) DB() *sql.DB {
	return s.db
}

func (s *SQLiteSessionStore) Close() error {
	return s.db.Close()
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *SQLiteSessionStore) conn(ctx context.Context) querier {
	if txn, ok := tx.From(ctx); ok {
		return txn
	}
	return s.db
}

func (s *SQLiteSessionStore) Active(ctx context.Context) (domain.Session, error) {
	row := s.conn(ctx).QueryRowContext(ctx,
		`SELECT id, topic, start_time, end_time FROM sessions WHERE end_time IS NULL`)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, apperrors.ErrNoActiveSession
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("query active session: %w", err)
	}
	return sess, nil
}

func (s *SQLiteSessionStore) Start(ctx context.Context, topic string, start time.Time) (domain.Session, error) {
	res, err := s.conn(ctx).ExecContext(ctx,
		`INSERT INTO sessions (topic, start_time) VALUES (?, ?)`,
		topic, datetime.FormatStore(start))
	if err != nil {
		return domain.Session{}, fmt.Errorf("insert session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Session{}, fmt.Errorf("session id: %w", err)
	}
	return domain.Session{ID: id, Topic: topic, Start: start}, nil
}

func (s *SQLiteSessionStore) Finish(ctx context.Context, id int64, end time.Time) error {
	if _, err := s.conn(ctx).ExecContext(ctx,
		`UPDATE sessions SET end_time = ? WHERE id = ?`,
		datetime.FormatStore(end), id); err != nil {
		return fmt.Errorf("finish session %d: %w", id, err)
	}
	return nil
}

func (s *SQLiteSessionStore) Recent(ctx context.Context, limit int) ([]domain.Session, error) {
	rows, err := s.conn(ctx).QueryContext(ctx,
		`SELECT id, topic, start_time, end_time FROM sessions ORDER BY start_time DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	return scanSessions(rows)
}

func (s *SQLiteSessionStore) Closed(ctx context.Context) ([]domain.Session, error) {
	rows, err := s.conn(ctx).QueryContext(ctx,
		`SELECT id, topic, start_time, end_time FROM sessions WHERE end_time IS NOT NULL ORDER BY start_time ASC`)
	if err != nil {
		return nil, fmt.Errorf("query closed sessions: %w", err)
	}
	return scanSessions(rows)
}

func (s *SQLiteSessionStore) Insert(ctx context.Context, topic string, start, end time.Time) (domain.Session, error) {
	res, err := s.conn(ctx).ExecContext(ctx,
		`INSERT INTO sessions (topic, start_time, end_time) VALUES (?, ?, ?)`,
		topic, datetime.FormatStore(start), datetime.FormatStore(end))
	if err != nil {
		return domain.Session{}, fmt.Errorf("insert session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Session{}, fmt.Errorf("session id: %w", err)
	}
	return domain.Session{ID: id, Topic: topic, Start: start, End: &end}, nil
}

func (s *SQLiteSessionStore) UpdateTopic(ctx context.Context, id int64, topic string) error {
	if _, err := s.conn(ctx).ExecContext(ctx,
		`UPDATE sessions SET topic = ? WHERE id = ?`, topic, id); err != nil {
		return fmt.Errorf("update topic of session %d: %w", id, err)
	}
	return nil
}

func (s *SQLiteSessionStore) UpdateStart(ctx context.Context, id int64, start time.Time) error {
	if _, err := s.conn(ctx).ExecContext(ctx,
		`UPDATE sessions SET start_time = ? WHERE id = ?`, datetime.FormatStore(start), id); err != nil {
		return fmt.Errorf("update start of session %d: %w", id, err)
	}
	return nil
}

func (s *SQLiteSessionStore) UpdateEnd(ctx context.Context, id int64, end time.Time) error {
	if _, err := s.conn(ctx).ExecContext(ctx,
		`UPDATE sessions SET end_time = ? WHERE id = ?`, datetime.FormatStore(end), id); err != nil {
		return fmt.Errorf("update end of session %d: %w", id, err)
	}
	return nil
}

func (s *SQLiteSessionStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.conn(ctx).ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete session %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete session %d: %w", id, err)
	}
	return affected > 0, nil
}

func (s *SQLiteSessionStore) DeleteAll(ctx context.Context) error {
	if _, err := s.conn(ctx).ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("delete all sessions: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := s.conn(ctx).QueryRowContext(ctx, `SELECT 1 FROM sessions WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query session %d: %w", id, err)
	}
	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.Session, error) {
	var (
		sess     domain.Session
		startRaw string
		endRaw   sql.NullString
	)
	if err := row.Scan(&sess.ID, &sess.Topic, &startRaw, &endRaw); err != nil {
		return domain.Session{}, err
	}
	start, err := datetime.ParseStore(startRaw)
	if err != nil {
		return domain.Session{}, err
	}
	sess.Start = start
	if endRaw.Valid {
		end, err := datetime.ParseStore(endRaw.String)
		if err != nil {
			return domain.Session{}, err
		}
		sess.End = &end
	}
	return sess, nil
}

func scanSessions(rows *sql.Rows) ([]domain.Session, error) {
	defer rows.Close()
	var sessions []domain.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}
