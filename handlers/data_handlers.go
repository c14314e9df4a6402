package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/adamspd/InterviewPrep/backup"
	"github.com/adamspd/InterviewPrep/models"
	"github.com/adamspd/InterviewPrep/storage"
	"github.com/adamspd/InterviewPrep/utils"
)

// maxImportSize caps uploaded backup documents at 10 MiB.
const maxImportSize = 10 << 20

type DataHandlers struct {
	store   *storage.Store
	backups *backup.Manager
}

func NewDataHandlers(store *storage.Store, backups *backup.Manager) *DataHandlers {
	return &DataHandlers{
		store:   store,
		backups: backups,
	}
}

func (dh *DataHandlers) ExportData(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /data/export", r.Method)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	candidates := dh.store.Candidates()
	data, err := backup.ExportJSON(candidates)
	if err != nil {
		utils.LogError("Failed to export data: %v", err)
		http.Error(w, "Failed to export data", http.StatusInternalServerError)
		return
	}

	filename := backup.ExportFilename()
	utils.LogHTTP("Exporting %d candidates as %s", len(candidates), filename)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

func (dh *DataHandlers) ImportData(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /data/import", r.Method)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	result, err := dh.backups.ImportInto(dh.store, raw)
	if err != nil {
		var parseErr *models.ParseError
		var formatErr *models.FormatError
		switch {
		case errors.As(err, &parseErr):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.As(err, &formatErr):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			utils.LogError("Import failed: %v", err)
			http.Error(w, "Failed to import data", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

func (dh *DataHandlers) GetStorageUsage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dh.backups.Usage())
}

func (dh *DataHandlers) HandleLocalBackup(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /data/backup", r.Method)
	switch r.Method {
	case http.MethodPost:
		dh.createLocalBackup(w, r)
	case http.MethodDelete:
		dh.clearLocalBackup(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (dh *DataHandlers) createLocalBackup(w http.ResponseWriter, r *http.Request) {
	candidates := dh.store.Candidates()
	if err := dh.backups.SaveLocal(candidates); err != nil {
		utils.LogError("Failed to create local backup: %v", err)
		http.Error(w, "Failed to create backup", http.StatusInternalServerError)
		return
	}

	utils.LogHTTP("Local backup created with %d candidates", len(candidates))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"candidates": len(candidates),
	})
}

func (dh *DataHandlers) clearLocalBackup(w http.ResponseWriter, r *http.Request) {
	if err := dh.backups.ClearLocal(); err != nil {
		utils.LogError("Failed to clear local backup: %v", err)
		http.Error(w, "Failed to clear backup", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (dh *DataHandlers) ClearAllData(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /data/clear", r.Method)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := dh.store.ClearAll(); err != nil {
		utils.LogError("Failed to clear data: %v", err)
		http.Error(w, "Failed to clear data", http.StatusInternalServerError)
		return
	}

	utils.LogHTTP("All data cleared")
	w.WriteHeader(http.StatusNoContent)
}
