package models

// BackupVersion is the only schema version the importer accepts today.
// Version negotiation beyond this is a future extension point.
const BackupVersion = 1

// AppVersion is stamped into exported backups.
const AppVersion = "1.0.0"

// BackupDocument is the versioned export/import container for the candidate
// collection.
type BackupDocument struct {
	Candidates []Candidate `json:"candidates"`
	ExportDate string      `json:"exportDate"`
	Version    int         `json:"version"`
	AppVersion string      `json:"appVersion"`
}

// ImportResult summarizes an import run for the caller.
type ImportResult struct {
	TotalCandidates    int      `json:"total_candidates"`
	ImportedCandidates int      `json:"imported_candidates"`
	Errors             []string `json:"errors,omitempty"`
	TimeTaken          string   `json:"time_taken"`
}

// StorageUsage is a heuristic estimate of persistent store consumption
// against an assumed quota, not an authoritative quota query.
type StorageUsage struct {
	UsedBytes      int     `json:"used_bytes"`
	AvailableBytes int     `json:"available_bytes"`
	Percentage     float64 `json:"percentage"`
}
