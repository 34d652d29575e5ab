package logsink

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS exercise_logs (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	age            INTEGER NOT NULL,
	weight_kg      REAL    NOT NULL,
	height_cm      REAL    NOT NULL,
	bmi            REAL    NOT NULL,
	diabetes       TEXT    NOT NULL,
	activity       TEXT    NOT NULL,
	calorie_target INTEGER NOT NULL,
	health_issue   TEXT    NOT NULL DEFAULT '',
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteSink inserts rows into a local SQLite database file.
type SQLiteSink struct {
	db *sql.DB
}

// NewSQLiteSink opens (or creates) the database at path and ensures the
// exercise_logs table exists.
func NewSQLiteSink(ctx context.Context, path string) (*SQLiteSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite sink: create dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite sink: open: %w", err)
	}
	// One writer; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite sink: init schema: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

func (s *SQLiteSink) Append(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exercise_logs
			(age, weight_kg, height_cm, bmi, diabetes, activity, calorie_target, health_issue)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Age, rec.Weight, rec.Height, rec.BMI,
		rec.Diabetes, rec.Activity, rec.CalorieTarget, rec.HealthIssue)
	if err != nil {
		return fmt.Errorf("sqlite sink: insert: %w", err)
	}
	return nil
}

func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

var _ Sink = (*SQLiteSink)(nil)
