package handlers

import (
	"net/http"

	"github.com/adamspd/InterviewPrep/backup"
	"github.com/adamspd/InterviewPrep/interview"
	"github.com/adamspd/InterviewPrep/scoring"
	"github.com/adamspd/InterviewPrep/storage"
)

// API wrapper to hold all handlers
type API struct {
	candidateHandlers *CandidateHandlers
	interviewHandlers *InterviewHandlers
	dataHandlers      *DataHandlers
	resumeHandlers    *ResumeHandlers
}

func NewAPI(store *storage.Store, engine *interview.Engine, scorer *scoring.Engine, backups *backup.Manager) *API {
	return &API{
		candidateHandlers: NewCandidateHandlers(store, scorer),
		interviewHandlers: NewInterviewHandlers(store, engine),
		dataHandlers:      NewDataHandlers(store, backups),
		resumeHandlers:    NewResumeHandlers(),
	}
}

func NewRouter(store *storage.Store, engine *interview.Engine, scorer *scoring.Engine, backups *backup.Manager) http.Handler {
	api := NewAPI(store, engine, scorer, backups)

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", healthCheck)

	// Candidate routes (the interviewer dashboard)
	mux.HandleFunc("/candidates", api.candidateHandlers.HandleCandidates)
	mux.HandleFunc("/candidates/", api.candidateHandlers.HandleCandidateByID)

	// Interview session routes
	mux.HandleFunc("/interview/start", api.interviewHandlers.StartInterview)
	mux.HandleFunc("/interview/state", api.interviewHandlers.GetState)
	mux.HandleFunc("/interview/answer", api.interviewHandlers.SubmitAnswer)
	mux.HandleFunc("/interview/resume", api.interviewHandlers.ResumeInterview)
	mux.HandleFunc("/interview/abandon", api.interviewHandlers.AbandonInterview)

	// Data management routes
	mux.HandleFunc("/data/export", api.dataHandlers.ExportData)
	mux.HandleFunc("/data/import", api.dataHandlers.ImportData)
	mux.HandleFunc("/data/usage", api.dataHandlers.GetStorageUsage)
	mux.HandleFunc("/data/backup", api.dataHandlers.HandleLocalBackup)
	mux.HandleFunc("/data/clear", api.dataHandlers.ClearAllData)

	// Resume upload
	mux.HandleFunc("/resume/upload", api.resumeHandlers.UploadResume)

	return loggingMiddleware(corsMiddleware(mux))
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
