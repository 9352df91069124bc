package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS analysis_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_version  TEXT NOT NULL,
	trigger_type TEXT NOT NULL,
	signals_json TEXT,
	decision     TEXT NOT NULL,
	reason       TEXT,
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analysis_log_run_version
	ON analysis_log(run_version);
`

// #endregion schema

// #region logger
// Logger appends analysis provenance to the analysis_log table.
type Logger struct {
	db *sql.DB
}

// NewLogger prepares the analysis_log table on an existing connection so
// provenance can share one database file with run history and scan outcomes.
func NewLogger(db *sql.DB) (*Logger, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate analysis log: %w", err)
	}
	return &Logger{db: db}, nil
}

// LogStep writes one provenance entry. A zero CreatedAt is filled with the
// current UTC time.
func (l *Logger) LogStep(entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := l.db.Exec(
		`INSERT INTO analysis_log (run_version, trigger_type, signals_json, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.RunVersion,
		string(entry.Trigger),
		nullIfEmpty(entry.SignalsJSON),
		entry.Decision,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log step: %w", err)
	}
	return nil
}

// Recent returns the newest n entries, most recent first.
func (l *Logger) Recent(n int) ([]Entry, error) {
	rows, err := l.db.Query(
		`SELECT id, run_version, trigger_type, signals_json, decision, reason, created_at
		 FROM analysis_log
		 ORDER BY id DESC
		 LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("query analysis log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			trigger   string
			signals   sql.NullString
			reason    sql.NullString
			createdAt string
		)
		if err := rows.Scan(&entry.ID, &entry.RunVersion, &trigger, &signals, &entry.Decision, &reason, &createdAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entry.Trigger = Trigger(trigger)
		entry.SignalsJSON = signals.String
		entry.Reason = reason.String
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		entry.CreatedAt = ts
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analysis log: %w", err)
	}
	return entries, nil
}

// #endregion logger

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
