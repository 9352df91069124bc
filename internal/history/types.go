package history

import "time"

// #region run-record
// RunRecord is a versioned snapshot of a run's field vector.
type RunRecord struct {
	VersionID   string
	ParentID    string
	FieldVector []float64
	Meta        RunMeta
	CreatedAt   time.Time
	MetricsJSON string
}
// #endregion run-record

// #region run-meta
// RunMeta tags a version with the kind of run that produced it.
type RunMeta struct {
	Kind  string `json:"kind"` // "regeneration" | "storm" | "coupling" | "scan"
	Label string `json:"label"`
}
// #endregion run-meta
