package models

import "time"

// Answer records one answered question. Created exactly once per question
// and never mutated afterwards.
type Answer struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	TimeSpent  int    `json:"timeSpent"`
	Difficulty string `json:"difficulty"`
}

// Candidate is a person's interview record. Score and Summary are both nil
// or both set; they are attached atomically when the interview completes.
type Candidate struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	ResumeText string   `json:"resumeText,omitempty"`
	Score      *float64 `json:"score,omitempty"`
	Summary    *string  `json:"summary,omitempty"`
	CreatedAt  string   `json:"createdAt"`
	Answers    []Answer `json:"answers"`
}

// NewCandidate builds a fresh record with no answers and a UTC timestamp.
func NewCandidate(id, name, email, phone, resumeText string) Candidate {
	return Candidate{
		ID:         id,
		Name:       name,
		Email:      email,
		Phone:      phone,
		ResumeText: resumeText,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Answers:    []Answer{},
	}
}

// IsCompleted reports whether the interview finished and results were
// attached.
func (c *Candidate) IsCompleted() bool {
	return c.Score != nil && c.Summary != nil
}

// HasUnfinishedInterview reports whether the candidate answered at least one
// question but never reached completion.
func (c *Candidate) HasUnfinishedInterview() bool {
	return len(c.Answers) > 0 && c.Score == nil
}

// TotalTimeSpent sums time spent across all recorded answers, in seconds.
func (c *Candidate) TotalTimeSpent() int {
	total := 0
	for _, ans := range c.Answers {
		total += ans.TimeSpent
	}
	return total
}
