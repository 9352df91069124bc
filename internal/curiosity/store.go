package curiosity

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS discoveries (
	discovery_id  TEXT PRIMARY KEY,
	storm_kind    TEXT NOT NULL,
	signals       BLOB NOT NULL,
	joy           REAL NOT NULL,
	resonance     REAL NOT NULL,
	confirmed     INTEGER NOT NULL,
	created_at    TEXT NOT NULL
);
`
// #endregion schema

// #region store

// Store persists discoveries in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an existing connection. The schema must already
// be in place.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region save

// Save persists one observation and returns the stored discovery.
func (s *Store) Save(obs Observation) (Discovery, error) {
	d := Discovery{
		ID:        uuid.New().String(),
		StormKind: obs.Kind,
		Signals:   obs.Signals.Vector(),
		Joy:       obs.JoyGain,
		Resonance: obs.Resonance,
		Confirmed: obs.Confirmed,
		CreatedAt: time.Now().UTC(),
	}

	confirmed := 0
	if d.Confirmed {
		confirmed = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO discoveries (discovery_id, storm_kind, signals, joy, resonance, confirmed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.StormKind, encodeSignals(d.Signals), d.Joy, d.Resonance, confirmed,
		d.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Discovery{}, fmt.Errorf("insert discovery: %w", err)
	}
	return d, nil
}

// #endregion save

// #region queries

// Recent returns the newest discoveries, most recent first.
func (s *Store) Recent(n int) ([]Discovery, error) {
	rows, err := s.db.Query(
		`SELECT discovery_id, storm_kind, signals, joy, resonance, confirmed, created_at
		 FROM discoveries ORDER BY created_at DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("list discoveries: %w", err)
	}
	defer rows.Close()

	var out []Discovery
	for rows.Next() {
		var d Discovery
		var blob []byte
		var confirmed int
		var createdStr string
		if err := rows.Scan(&d.ID, &d.StormKind, &blob, &d.Joy, &d.Resonance, &confirmed, &createdStr); err != nil {
			return nil, fmt.Errorf("scan discovery: %w", err)
		}
		d.Signals = decodeSignals(blob)
		d.Confirmed = confirmed != 0
		d.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, d)
	}
	return out, rows.Err()
}

// Count returns the number of stored discoveries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM discoveries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count discoveries: %w", err)
	}
	return n, nil
}

// #endregion queries

// #region signal-encoding

func encodeSignals(v []float64) []byte {
	buf := make([]byte, len(v)*8)
	for i, f := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

func decodeSignals(b []byte) []float64 {
	v := make([]float64, len(b)/8)
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return v
}

// #endregion signal-encoding
