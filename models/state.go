package models

// CandidateState is the candidate section of the persisted document.
type CandidateState struct {
	Candidates       []Candidate `json:"candidates"`
	CurrentCandidate *Candidate  `json:"currentCandidate"`
}

// InterviewState is the interview section of the persisted document. The
// live session is reconstructed from it plus the current candidate at load.
type InterviewState struct {
	Questions              []Question `json:"questions"`
	CurrentQuestionIndex   int        `json:"currentQuestionIndex"`
	IsInterviewActive      bool       `json:"isInterviewActive"`
	TimeRemaining          int        `json:"timeRemaining"`
	IsTimerRunning         bool       `json:"isTimerRunning"`
	HasUnfinishedInterview bool       `json:"hasUnfinishedInterview"`
}

// PersistedState is the single shared document written to the key-value
// store after every committed transition. Last writer wins; there is exactly
// one writer in this single-user design.
type PersistedState struct {
	Candidate CandidateState `json:"candidate"`
	Interview InterviewState `json:"interview"`
}
