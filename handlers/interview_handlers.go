package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adamspd/InterviewPrep/interview"
	"github.com/adamspd/InterviewPrep/storage"
	"github.com/adamspd/InterviewPrep/utils"
)

type InterviewHandlers struct {
	store  *storage.Store
	engine *interview.Engine
}

func NewInterviewHandlers(store *storage.Store, engine *interview.Engine) *InterviewHandlers {
	return &InterviewHandlers{
		store:  store,
		engine: engine,
	}
}

// AnswerRequest is the submission body. Auto marks a timer-expiry
// submission; handlers normally send false, the ticker path never goes
// through HTTP.
type AnswerRequest struct {
	Answer string `json:"answer"`
	Auto   bool   `json:"auto,omitempty"`
}

func (ih *InterviewHandlers) StartInterview(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /interview/start", r.Method)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := ih.engine.Start(); err != nil {
		utils.LogError("Failed to start interview: %v", err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ih.engine.State())
}

func (ih *InterviewHandlers) GetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ih.engine.State())
}

func (ih *InterviewHandlers) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /interview/answer", r.Method)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in answer request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := ih.engine.SubmitAnswer(req.Answer, req.Auto)
	if err != nil {
		utils.LogError("Failed to submit answer: %v", err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if result == nil {
		// Another submission was already in flight; dropped, not queued.
		http.Error(w, "Submission already in progress", http.StatusTooManyRequests)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (ih *InterviewHandlers) ResumeInterview(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /interview/resume", r.Method)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := ih.engine.Resume(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ih.engine.State())
}

func (ih *InterviewHandlers) AbandonInterview(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /interview/abandon", r.Method)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ih.engine.Abandon()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ih.engine.State())
}
