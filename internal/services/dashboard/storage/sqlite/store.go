package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	sqlitemigrate "github.com/louisbranch/portfolio-dashboard/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/storage"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/storage/sqlite/migrations"
)

const (
	// timeFormat keeps a fixed width so recorded_at sorts as text.
	timeFormat     = "2006-01-02T15:04:05.000000000Z07:00"
	maxRecentLimit = 100
	maxDetailRunes = 500
)

// Store provides a SQLite-backed activity journal.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens the journal at path, creating and migrating it as needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	params := url.Values{}
	params.Add("_pragma", "journal_mode(WAL)")
	params.Add("_pragma", "busy_timeout(5000)")
	params.Add("_pragma", "synchronous(NORMAL)")
	sqlDB, err := sql.Open("sqlite", "file:"+cleanPath+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordActivity appends one mutation attempt. A missing id or timestamp is
// filled in.
func (s *Store) RecordActivity(ctx context.Context, activity storage.Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return errors.New("storage is not configured")
	}
	if strings.TrimSpace(string(activity.Op)) == "" {
		return errors.New("activity operation is required")
	}
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.At.IsZero() {
		activity.At = s.now()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO activity (id, op, kind, object_id, title, failed, detail, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		activity.ID,
		string(activity.Op),
		string(activity.Kind),
		activity.ObjectID,
		activity.Title,
		activity.Failed,
		truncate(activity.Detail, maxDetailRunes),
		activity.At.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// RecentActivity returns up to limit entries, newest first.
func (s *Store) RecentActivity(ctx context.Context, limit int) ([]storage.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, errors.New("storage is not configured")
	}
	if limit <= 0 {
		limit = storage.DefaultRecentLimit
	}
	limit = min(limit, maxRecentLimit)

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, op, kind, object_id, title, failed, detail, recorded_at
		 FROM activity ORDER BY recorded_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var out []storage.Activity
	for rows.Next() {
		var (
			activity   storage.Activity
			op, kind   string
			recordedAt string
		)
		if err := rows.Scan(&activity.ID, &op, &kind, &activity.ObjectID, &activity.Title, &activity.Failed, &activity.Detail, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activity.Op = content.Operation(op)
		activity.Kind = content.Kind(kind)
		activity.At, err = time.Parse(timeFormat, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parse activity time %q: %w", recordedAt, err)
		}
		out = append(out, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return out, nil
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}

var _ storage.Store = (*Store)(nil)
