package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/adamspd/InterviewPrep/models"
	"github.com/adamspd/InterviewPrep/resume"
	"github.com/adamspd/InterviewPrep/utils"
)

// maxResumeSize caps uploaded resumes at 10 MiB.
const maxResumeSize = 10 << 20

type ResumeHandlers struct{}

func NewResumeHandlers() *ResumeHandlers {
	return &ResumeHandlers{}
}

// UploadResume parses an uploaded resume and returns the extracted fields.
// Empty fields mean extraction failed for them and the client should fall
// back to manual entry before creating the candidate.
func (rh *ResumeHandlers) UploadResume(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /resume/upload", r.Method)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		http.Error(w, "Missing resume file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusBadRequest)
		return
	}

	parsed, err := resume.ParseDocument(header.Filename, data)
	if err != nil {
		var unsupported *models.UnsupportedFileTypeError
		var parseErr *models.ParseError
		switch {
		case errors.As(err, &unsupported):
			http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
		case errors.As(err, &parseErr):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			utils.LogError("Resume parsing failed: %v", err)
			http.Error(w, "Failed to parse resume", http.StatusInternalServerError)
		}
		return
	}

	utils.LogHTTP("Parsed resume %s (%d bytes)", header.Filename, len(data))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parsed)
}
