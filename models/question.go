package models

// Difficulty levels for interview questions
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Per-difficulty answer time limits in seconds.
const (
	TimeLimitEasy   = 20
	TimeLimitMedium = 60
	TimeLimitHard   = 120
)

// QuestionsPerInterview is the fixed length of every generated question set.
const QuestionsPerInterview = 6

// Question is one timed interview question. Immutable once generated for a
// session; IDs are deterministic per position, not unique across sessions.
type Question struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
	TimeLimit  int    `json:"timeLimit"`
}

// TimeLimitFor returns the answer time limit for a difficulty level.
// Unknown difficulties get the Medium limit.
func TimeLimitFor(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return TimeLimitEasy
	case DifficultyHard:
		return TimeLimitHard
	default:
		return TimeLimitMedium
	}
}
