package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/adamspd/InterviewPrep/models"
	"github.com/adamspd/InterviewPrep/storage"
	"github.com/adamspd/InterviewPrep/utils"
	"github.com/google/uuid"
)

// BackupKey is where the local backup copy lives in the KV store, separate
// from the primary document.
const BackupKey = "ai-interview-assistant-backup"

// assumedQuota is the storage budget the usage estimate is measured
// against. The underlying medium does not expose a real limit, so 5 MiB is
// assumed.
const assumedQuota = 5 * 1024 * 1024

// Manager serializes the candidate collection to versioned backup
// documents and validates and merges documents back in. It never mutates
// existing records: export only reads, import only produces new ones.
type Manager struct {
	kv storage.KV
}

func NewManager(kv storage.KV) *Manager {
	return &Manager{kv: kv}
}

// Create stamps a backup document with the current time and schema version.
func Create(candidates []models.Candidate) models.BackupDocument {
	return models.BackupDocument{
		Candidates: candidates,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		Version:    models.BackupVersion,
		AppVersion: models.AppVersion,
	}
}

// ExportJSON renders the backup document as indented JSON.
func ExportJSON(candidates []models.Candidate) ([]byte, error) {
	data, err := json.MarshalIndent(Create(candidates), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize backup: %w", err)
	}
	return data, nil
}

// ExportFilename is the download name convention for exports.
func ExportFilename() string {
	return fmt.Sprintf("interview-data-%s.json", time.Now().UTC().Format("2006-01-02"))
}

// Validate structurally checks a decoded document. It fails closed: any
// missing or mistyped field invalidates the whole document, so a malformed
// file never partially imports.
func Validate(doc interface{}) bool {
	root, ok := doc.(map[string]interface{})
	if !ok {
		return false
	}

	rawCandidates, ok := root["candidates"].([]interface{})
	if !ok {
		return false
	}
	if _, ok := root["exportDate"].(string); !ok {
		return false
	}
	if _, ok := root["version"].(float64); !ok {
		return false
	}

	for _, raw := range rawCandidates {
		candidate, ok := raw.(map[string]interface{})
		if !ok {
			return false
		}
		for _, field := range []string{"id", "name", "email", "phone"} {
			value, ok := candidate[field].(string)
			if !ok || value == "" {
				return false
			}
		}
		if _, ok := candidate["answers"].([]interface{}); !ok {
			return false
		}
	}

	return true
}

// Import parses and validates a raw backup document and returns its
// candidates unchanged. Malformed input yields a ParseError, a well-formed
// but schema-invalid document a FormatError.
func Import(raw []byte) ([]models.Candidate, error) {
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, &models.ParseError{Err: err}
	}

	if !Validate(generic) {
		return nil, &models.FormatError{Reason: "document failed structural validation"}
	}

	var doc models.BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &models.ParseError{Err: err}
	}
	return doc.Candidates, nil
}

// Reidentify assigns fresh IDs to imported candidates so an import is
// always additive and can never collide with or overwrite existing records.
func Reidentify(candidates []models.Candidate) []models.Candidate {
	reidentified := make([]models.Candidate, len(candidates))
	for i, candidate := range candidates {
		candidate.ID = fmt.Sprintf("imported_%s", uuid.NewString())
		reidentified[i] = candidate
	}
	return reidentified
}

// ImportInto imports a raw document into the store, re-identifying every
// candidate first.
func (m *Manager) ImportInto(store *storage.Store, raw []byte) (models.ImportResult, error) {
	start := time.Now()

	candidates, err := Import(raw)
	if err != nil {
		utils.LogImport("Import rejected: %v", err)
		return models.ImportResult{}, err
	}

	store.AddAll(Reidentify(candidates))

	result := models.ImportResult{
		TotalCandidates:    len(candidates),
		ImportedCandidates: len(candidates),
		TimeTaken:          time.Since(start).String(),
	}
	utils.LogImport("Imported %d candidates in %s", result.ImportedCandidates, result.TimeTaken)
	return result, nil
}

// SaveLocal writes a backup copy of the candidates under the backup key.
func (m *Manager) SaveLocal(candidates []models.Candidate) error {
	data, err := json.Marshal(Create(candidates))
	if err != nil {
		return fmt.Errorf("failed to serialize backup: %w", err)
	}
	return m.kv.Set(BackupKey, string(data))
}

// LoadLocal returns the candidates from the local backup copy, or nil when
// no valid backup exists.
func (m *Manager) LoadLocal() []models.Candidate {
	raw, ok, err := m.kv.Get(BackupKey)
	if err != nil || !ok {
		return nil
	}
	candidates, err := Import([]byte(raw))
	if err != nil {
		utils.LogError("Local backup is not usable: %v", err)
		return nil
	}
	return candidates
}

// ClearLocal removes the local backup copy.
func (m *Manager) ClearLocal() error {
	return m.kv.Remove(BackupKey)
}

// Usage estimates storage consumption: the serialized byte length of the
// primary document plus the backup copy, against the assumed quota.
func (m *Manager) Usage() models.StorageUsage {
	used := 0
	if raw, ok, err := m.kv.Get(storage.StateKey); err == nil && ok {
		used += len(raw)
	}
	if raw, ok, err := m.kv.Get(BackupKey); err == nil && ok {
		used += len(raw)
	}

	return models.StorageUsage{
		UsedBytes:      used,
		AvailableBytes: assumedQuota,
		Percentage:     float64(used) / float64(assumedQuota) * 100,
	}
}
