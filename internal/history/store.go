package history

import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS run_versions (
	version_id    TEXT PRIMARY KEY,
	parent_id     TEXT,
	field_vector  BLOB NOT NULL,
	meta_json     TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	metrics_json  TEXT,
	FOREIGN KEY (parent_id) REFERENCES run_versions(version_id)
);

CREATE TABLE IF NOT EXISTS active_run (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	version_id    TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES run_versions(version_id)
);
`
// #endregion schema

// #region store-struct
// Store manages versioned run snapshots in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreWithDB runs migrations on an existing connection, so one
// database can hold run history next to scan outcomes and the
// provenance log.
func NewStoreWithDB(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region create-initial
// CreateInitialRun creates a zero-vector initial version of dimension dim
// and points the active run at it.
func (s *Store) CreateInitialRun(meta RunMeta, dim int) (RunRecord, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	rec := RunRecord{
		VersionID:   id,
		ParentID:    "",
		FieldVector: make([]float64, dim),
		Meta:        meta,
		CreatedAt:   now,
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return RunRecord{}, fmt.Errorf("marshal meta: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return RunRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO run_versions (version_id, parent_id, field_vector, meta_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id, nil, encodeVector(rec.FieldVector), string(metaJSON), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("insert version: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO active_run (id, version_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET version_id = excluded.version_id`,
		id,
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("set active: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return RunRecord{}, fmt.Errorf("commit: %w", err)
	}

	return rec, nil
}
// #endregion create-initial

// #region get-current
// GetCurrent reads the active run version.
func (s *Store) GetCurrent() (RunRecord, error) {
	var versionID string
	err := s.db.QueryRow(`SELECT version_id FROM active_run WHERE id = 1`).Scan(&versionID)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get active: %w", err)
	}
	return s.GetVersion(versionID)
}
// #endregion get-current

// #region get-version
// GetVersion retrieves a specific run version by ID.
func (s *Store) GetVersion(id string) (RunRecord, error) {
	var rec RunRecord
	var parentID sql.NullString
	var vecBlob []byte
	var metaJSON string
	var createdStr string
	var metricsJSON sql.NullString

	err := s.db.QueryRow(
		`SELECT version_id, parent_id, field_vector, meta_json, created_at, metrics_json
		 FROM run_versions WHERE version_id = ?`, id,
	).Scan(&rec.VersionID, &parentID, &vecBlob, &metaJSON, &createdStr, &metricsJSON)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get version %s: %w", id, err)
	}

	if parentID.Valid {
		rec.ParentID = parentID.String
	}
	rec.FieldVector = decodeVector(vecBlob)
	if err := json.Unmarshal([]byte(metaJSON), &rec.Meta); err != nil {
		return RunRecord{}, fmt.Errorf("unmarshal meta: %w", err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	if metricsJSON.Valid {
		rec.MetricsJSON = metricsJSON.String
	}

	return rec, nil
}
// #endregion get-version

// #region commit-run
// CommitRun inserts a new version and updates the active pointer atomically.
func (s *Store) CommitRun(rec RunRecord) error {
	metaJSON, err := json.Marshal(rec.Meta)
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var parentPtr interface{}
	if rec.ParentID != "" {
		parentPtr = rec.ParentID
	}

	var metricsPtr interface{}
	if rec.MetricsJSON != "" {
		metricsPtr = rec.MetricsJSON
	}

	_, err = tx.Exec(
		`INSERT INTO run_versions (version_id, parent_id, field_vector, meta_json, created_at, metrics_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.VersionID, parentPtr, encodeVector(rec.FieldVector), string(metaJSON),
		rec.CreatedAt.Format(time.RFC3339Nano), metricsPtr,
	)
	if err != nil {
		return fmt.Errorf("insert version: %w", err)
	}

	_, err = tx.Exec(
		`UPDATE active_run SET version_id = ? WHERE id = 1`, rec.VersionID,
	)
	if err != nil {
		return fmt.Errorf("update active: %w", err)
	}

	return tx.Commit()
}
// #endregion commit-run

// #region rollback
// Rollback sets the active pointer to a previous version.
func (s *Store) Rollback(targetVersionID string) error {
	// Verify the target version exists
	var exists int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM run_versions WHERE version_id = ?`, targetVersionID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check version: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("version %s not found", targetVersionID)
	}

	_, err = s.db.Exec(`UPDATE active_run SET version_id = ? WHERE id = 1`, targetVersionID)
	if err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}
// #endregion rollback

// #region list-versions
// ListVersions returns the most recent run versions.
func (s *Store) ListVersions(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT version_id, parent_id, field_vector, meta_json, created_at, metrics_json
		 FROM run_versions ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var parentID sql.NullString
		var vecBlob []byte
		var metaJSON string
		var createdStr string
		var metricsJSON sql.NullString

		if err := rows.Scan(&rec.VersionID, &parentID, &vecBlob, &metaJSON, &createdStr, &metricsJSON); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if parentID.Valid {
			rec.ParentID = parentID.String
		}
		rec.FieldVector = decodeVector(vecBlob)
		if err := json.Unmarshal([]byte(metaJSON), &rec.Meta); err != nil {
			return nil, fmt.Errorf("unmarshal meta: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		if metricsJSON.Valid {
			rec.MetricsJSON = metricsJSON.String
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
// #endregion list-versions

// #region vector-encoding
func encodeVector(v []float64) []byte {
	buf := make([]byte, len(v)*8)
	for i, f := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

func decodeVector(b []byte) []float64 {
	v := make([]float64, len(b)/8)
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return v
}
// #endregion vector-encoding
