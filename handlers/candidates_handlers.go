package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/adamspd/InterviewPrep/models"
	"github.com/adamspd/InterviewPrep/scoring"
	"github.com/adamspd/InterviewPrep/storage"
	"github.com/adamspd/InterviewPrep/utils"
	"github.com/google/uuid"
)

type CandidateHandlers struct {
	store  *storage.Store
	scorer *scoring.Engine
}

func NewCandidateHandlers(store *storage.Store, scorer *scoring.Engine) *CandidateHandlers {
	return &CandidateHandlers{
		store:  store,
		scorer: scorer,
	}
}

// CandidateRequest creates a candidate from manual entry or parsed resume
// data and makes it the current one.
type CandidateRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ResumeText string `json:"resumeText,omitempty"`
}

func (ch *CandidateHandlers) HandleCandidates(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /candidates", r.Method)
	switch r.Method {
	case http.MethodGet:
		ch.listCandidates(w, r)
	case http.MethodPost:
		ch.createCandidate(w, r)
	default:
		utils.LogHTTP("Method %s not allowed for /candidates", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (ch *CandidateHandlers) listCandidates(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	candidates := ch.store.Search(search)

	utils.LogHTTP("Returning %d candidates (search=%q)", len(candidates), search)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"candidates": candidates,
	})
}

func (ch *CandidateHandlers) createCandidate(w http.ResponseWriter, r *http.Request) {
	var req CandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in create request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateCandidateRequest(req.Name, req.Email, req.Phone); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	candidate := models.NewCandidate(uuid.NewString(), req.Name, req.Email, req.Phone, req.ResumeText)
	ch.store.SetCurrent(candidate)

	utils.LogHTTP("Created candidate %s (%s)", candidate.ID, candidate.Name)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(candidate)
}

func (ch *CandidateHandlers) HandleCandidateByID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/candidates/")
	parts := strings.Split(path, "/")
	id := parts[0]
	if id == "" {
		http.Error(w, "Invalid candidate ID", http.StatusBadRequest)
		return
	}

	if len(parts) == 2 && parts[1] == "profile" {
		ch.getCandidateProfile(w, r, id)
		return
	}

	utils.LogHTTP("%s /candidates/%s", r.Method, id)
	switch r.Method {
	case http.MethodGet:
		ch.getCandidateByID(w, r, id)
	default:
		utils.LogHTTP("Method %s not allowed for /candidates/%s", r.Method, id)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (ch *CandidateHandlers) getCandidateByID(w http.ResponseWriter, r *http.Request, id string) {
	candidate, ok := ch.store.Get(id)
	if !ok {
		http.Error(w, "Candidate not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(candidate)
}

func (ch *CandidateHandlers) getCandidateProfile(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	candidate, ok := ch.store.Get(id)
	if !ok {
		http.Error(w, "Candidate not found", http.StatusNotFound)
		return
	}

	profile := ch.scorer.AnalyzeProfile(candidate.Answers)
	utils.LogHTTP("Profile for %s: %s", id, profile.OverallRating)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
