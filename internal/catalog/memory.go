package catalog

// #region imports
import (
	"database/sql"
	"math"
	"time"
)

// #endregion

// #region schema

const scanOutcomesSchema = `
CREATE TABLE IF NOT EXISTS scan_outcomes (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    scan_id       TEXT NOT NULL,
    domain        TEXT NOT NULL,
    scale         TEXT NOT NULL,
    stakes        TEXT NOT NULL,
    strategy_id   TEXT NOT NULL,
    attempt_num   INTEGER NOT NULL,
    significance  REAL NOT NULL,
    failure_kind  TEXT NOT NULL DEFAULT 'none',
    accepted      INTEGER NOT NULL DEFAULT 0,
    created_at    TEXT NOT NULL
);
`

const scanOutcomesIndex = `
CREATE INDEX IF NOT EXISTS idx_scan_outcomes_lookup
ON scan_outcomes(domain, scale, stakes, strategy_id);
`

// #endregion

// #region memory-struct

// ScanMemory persists scan outcomes in SQLite and queries decay-weighted results.
type ScanMemory struct {
	db *sql.DB
}

// NewScanMemory initializes the scan_outcomes table and returns a ScanMemory.
func NewScanMemory(db *sql.DB) (*ScanMemory, error) {
	if _, err := db.Exec(scanOutcomesSchema); err != nil {
		return nil, err
	}
	if _, err := db.Exec(scanOutcomesIndex); err != nil {
		return nil, err
	}
	return &ScanMemory{db: db}, nil
}

// #endregion

// #region record-outcome

// RecordOutcome persists a single scan outcome row.
func (m *ScanMemory) RecordOutcome(rec OutcomeRecord) error {
	accepted := 0
	if rec.Accepted {
		accepted = 1
	}
	_, err := m.db.Exec(`
		INSERT INTO scan_outcomes
		(scan_id, domain, scale, stakes, strategy_id, attempt_num,
		 significance, failure_kind, accepted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ScanID,
		string(rec.Domain),
		string(rec.Scale),
		string(rec.Stakes),
		string(rec.StrategyID),
		rec.AttemptNum,
		rec.Significance,
		string(rec.Failure),
		accepted,
		rec.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// #endregion

// #region best-strategy

// BestStrategy returns the strategy with the highest decay-weighted
// significance for the given classification. Returns ("", 0, nil) if no
// strategy has 3 or more accepted samples.
func (m *ScanMemory) BestStrategy(domain, scale, stakes string) (StrategyID, float64, error) {
	rows, err := m.db.Query(`
		SELECT strategy_id, significance, created_at
		FROM scan_outcomes
		WHERE domain = ? AND scale = ? AND stakes = ? AND accepted = 1`,
		domain, scale, stakes,
	)
	if err != nil {
		return "", 0, err
	}
	defer rows.Close()

	type stratAccum struct {
		weightedSum float64
		totalWeight float64
		count       int
	}

	now := time.Now()
	halfLife := 7.0 * 24.0 // 7 days in hours
	accum := make(map[StrategyID]*stratAccum)

	for rows.Next() {
		var sid string
		var significance float64
		var createdAtStr string
		if err := rows.Scan(&sid, &significance, &createdAtStr); err != nil {
			return "", 0, err
		}
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			continue
		}
		ageHours := now.Sub(createdAt).Hours()
		weight := math.Exp(-ageHours / halfLife)

		stratID := StrategyID(sid)
		if _, ok := accum[stratID]; !ok {
			accum[stratID] = &stratAccum{}
		}
		accum[stratID].weightedSum += significance * weight
		accum[stratID].totalWeight += weight
		accum[stratID].count++
	}
	if err := rows.Err(); err != nil {
		return "", 0, err
	}

	var bestID StrategyID
	bestScore := -1.0

	for sid, a := range accum {
		if a.count < 3 {
			continue
		}
		avg := a.weightedSum / a.totalWeight
		if avg > bestScore {
			bestScore = avg
			bestID = sid
		}
	}

	if bestID == "" {
		return "", 0, nil
	}
	return bestID, bestScore, nil
}

// #endregion
