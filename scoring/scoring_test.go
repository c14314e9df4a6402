package scoring

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/adamspd/InterviewPrep/models"
)

// scoreBounds asserts the score is inside [0,10] and rounded to one decimal.
func scoreBounds(t *testing.T, score float64) {
	t.Helper()
	if score < 0 || score > 10 {
		t.Errorf("Score %f out of [0,10]", score)
	}
	if math.Abs(score*10-math.Round(score*10)) > 1e-9 {
		t.Errorf("Score %f not rounded to one decimal", score)
	}
}

func TestScoreAnswerBounds(t *testing.T) {
	engine := NewEngine(1)

	inputs := []struct {
		name      string
		answer    string
		timeSpent int
	}{
		{"empty", "", 20},
		{"whitespace", "   ", 5},
		{"short", "I like teams.", 10},
		{"long", strings.Repeat("experience skills team project challenge solution ", 20), 30},
	}

	for _, tc := range inputs {
		score := engine.ScoreAnswer("Tell me about yourself and your background.", tc.answer, tc.timeSpent)
		scoreBounds(t, score)
	}
}

// An empty answer earns no length, word or content points. With the full
// time limit used it earns no time points either, so only the perturbation
// remains.
func TestScoreAnswerEmptyNearZero(t *testing.T) {
	engine := NewEngine(3)

	for i := 0; i < 50; i++ {
		score := engine.ScoreAnswer("What are your greatest strengths?", "", 20)
		scoreBounds(t, score)
		if score > 0.5 {
			t.Errorf("Empty answer at full time scored %f, expected at most 0.5", score)
		}
	}
}

// A long, keyword-rich, fast answer maxes every sub-score; the result must
// stay at least 9.5 whatever the perturbation does.
func TestScoreAnswerStrongAnswerNearTen(t *testing.T) {
	engine := NewEngine(4)
	answer := strings.Repeat("My experience leading a team through a project taught me skills in communication, "+
		"problem solving and leadership, with measurable results and impact on growth. ", 3)

	for i := 0; i < 50; i++ {
		score := engine.ScoreAnswer("Describe a challenging project you worked on and how you overcame obstacles.", answer, 10)
		scoreBounds(t, score)
		if score < 9.5 {
			t.Errorf("Strong answer scored %f, expected at least 9.5", score)
		}
	}
}

func TestScoreAnswerSeededReproducible(t *testing.T) {
	answer := "I collaborate with my team on every project and learn from each challenge."
	first := NewEngine(12345).ScoreAnswer("How do you approach problem-solving in your work?", answer, 25)
	second := NewEngine(12345).ScoreAnswer("How do you approach problem-solving in your work?", answer, 25)

	if first != second {
		t.Errorf("Same seed produced different scores: %f vs %f", first, second)
	}
}

// One engine instance is shared between request handlers and the session
// ticker, so scoring must hold up under concurrent callers (run with -race).
func TestScoreAnswerConcurrent(t *testing.T) {
	engine := NewEngine(9)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				score := engine.ScoreAnswer("How do you approach problem-solving in your work?",
					"I collaborate with my team on every project.", 10)
				if score < 0 || score > 10 {
					t.Errorf("Score %f out of [0,10]", score)
				}
			}
		}()
	}
	wg.Wait()
}

func TestClassifyDifficulty(t *testing.T) {
	cases := []struct {
		question string
		want     string
	}{
		{"Tell me about yourself and your background.", models.DifficultyEasy},
		{"What are your greatest strengths?", models.DifficultyEasy},
		{"Where do you see yourself in 5 years and how does this role fit into your career goals?", models.DifficultyHard},
		{"Tell me about a time when you had to make a decision with incomplete information.", models.DifficultyHard},
		{"How do you prioritize tasks when you have multiple deadlines?", models.DifficultyMedium},
		{"Something entirely unrecognized.", models.DifficultyMedium},
	}

	for _, tc := range cases {
		if got := ClassifyDifficulty(tc.question); got != tc.want {
			t.Errorf("ClassifyDifficulty(%q) = %s, want %s", tc.question, got, tc.want)
		}
	}
}

// Time sub-score rewards finishing early. Identical answers differing only
// in time spent must never rank the slower one higher by more than the
// combined perturbation width.
func TestScoreAnswerTimeEfficiency(t *testing.T) {
	engine := NewEngine(8)
	answer := strings.Repeat("experience skills team project challenge solution learn improve achieve success ", 5)
	question := "How do you handle working under pressure and tight deadlines?"

	fast := engine.ScoreAnswer(question, answer, 10) // ratio 0.17 -> 2 points
	slow := engine.ScoreAnswer(question, answer, 60) // ratio 1.0 -> 0 points

	if slow > fast+1.0 {
		t.Errorf("Slow answer (%f) outranked fast answer (%f) beyond perturbation width", slow, fast)
	}
}
