package scoring

import (
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/adamspd/InterviewPrep/models"
)

// Keyword list for the content sub-score. Matches are substring,
// case-insensitive.
var positiveKeywords = []string{
	"experience",
	"skills",
	"team",
	"project",
	"challenge",
	"solution",
	"learn",
	"improve",
	"achieve",
	"success",
	"collaborate",
	"communicate",
	"leadership",
	"problem",
	"solve",
	"goal",
	"result",
	"impact",
	"growth",
	"development",
}

// Indicator phrases used to classify a question's expected duration when
// only its text is available. Anything matching neither set is Medium.
var (
	easyIndicators = []string{"tell me about yourself", "strengths", "motivates you", "ideal work"}
	hardIndicators = []string{"5 years", "lead a team", "incomplete information", "disagreed with manager"}
)

// Engine scores answers and generates candidate summaries. The perturbation
// term comes from the engine's own rand source so tests can seed it. One
// instance is shared between request handlers and the session ticker, and
// rand.Rand is not safe for concurrent use, so the source sits behind a
// mutex.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine returns an engine with a seeded rand source.
func NewEngine(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// ScoreAnswer maps an answer to a score in [0,10], rounded to one decimal.
// Four additive sub-scores (length 0-3, words 0-2, time efficiency 0-2,
// content 0-3) plus a uniform perturbation in [-0.5,+0.5]. Repeated calls on
// the same input may differ by up to a point; callers tolerate that.
func (e *Engine) ScoreAnswer(question, answer string, timeSpent int) float64 {
	trimmed := strings.TrimSpace(answer)

	lengthScore := 0
	switch {
	case len(trimmed) >= 200:
		lengthScore = 3
	case len(trimmed) >= 100:
		lengthScore = 2
	case len(trimmed) >= 50:
		lengthScore = 1
	}

	wordScore := 0
	wordCount := len(strings.Fields(trimmed))
	switch {
	case wordCount >= 40:
		wordScore = 2
	case wordCount >= 20:
		wordScore = 1
	}

	// Reward concise answers; no credit for using most or all of the time.
	timeScore := 0
	expected := models.TimeLimitFor(ClassifyDifficulty(question))
	timeRatio := float64(timeSpent) / float64(expected)
	switch {
	case timeRatio <= 0.5:
		timeScore = 2
	case timeRatio <= 0.8:
		timeScore = 1
	}

	contentScore := 0
	matches := countKeywordMatches(trimmed)
	switch {
	case matches >= 5:
		contentScore = 3
	case matches >= 3:
		contentScore = 2
	case matches >= 1:
		contentScore = 1
	}

	total := float64(lengthScore + wordScore + timeScore + contentScore)
	e.mu.Lock()
	total += e.rng.Float64() - 0.5
	e.mu.Unlock()
	total = math.Max(0, math.Min(10, total))

	return math.Round(total*10) / 10
}

// ClassifyDifficulty guesses a question's difficulty from indicator phrases
// in its text. Hard indicators win over easy ones; the fallback is Medium.
func ClassifyDifficulty(question string) string {
	lower := strings.ToLower(question)

	for _, indicator := range hardIndicators {
		if strings.Contains(lower, indicator) {
			return models.DifficultyHard
		}
	}
	for _, indicator := range easyIndicators {
		if strings.Contains(lower, indicator) {
			return models.DifficultyEasy
		}
	}
	return models.DifficultyMedium
}

func countKeywordMatches(answer string) int {
	lower := strings.ToLower(answer)
	matches := 0
	for _, keyword := range positiveKeywords {
		if strings.Contains(lower, keyword) {
			matches++
		}
	}
	return matches
}
