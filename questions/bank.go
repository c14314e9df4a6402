package questions

import (
	"fmt"
	"math/rand"

	"github.com/adamspd/InterviewPrep/models"
)

// Built-in question pools, 8 per difficulty. An interview draws 2 from each
// pool without replacement, concatenated in Easy, Medium, Hard order.
var defaultPools = Pools{
	Easy: []string{
		"Tell me about yourself and your background.",
		"What are your greatest strengths?",
		"Why are you interested in this position?",
		"What motivates you in your work?",
		"Describe your ideal work environment.",
		"What are your short-term career goals?",
		"How do you handle feedback and criticism?",
		"What makes you unique as a candidate?",
	},
	Medium: []string{
		"Describe a challenging project you worked on and how you overcame obstacles.",
		"How do you handle working under pressure and tight deadlines?",
		"Tell me about a time when you had to work with a difficult team member.",
		"Describe a situation where you had to learn something new quickly.",
		"How do you prioritize tasks when you have multiple deadlines?",
		"Tell me about a time when you made a mistake and how you handled it.",
		"Describe a time when you had to adapt to a significant change at work.",
		"How do you approach problem-solving in your work?",
	},
	Hard: []string{
		"Where do you see yourself in 5 years and how does this role fit into your career goals?",
		"Describe a time when you had to lead a team through a difficult situation.",
		"Tell me about a time when you had to make a decision with incomplete information.",
		"How would you handle a situation where you disagreed with your manager?",
		"Describe a time when you had to influence others without having authority over them.",
		"What would you do if you discovered a significant error in a project that was about to be delivered?",
		"How do you stay current with industry trends and continue learning?",
		"Describe a time when you had to balance competing priorities from different stakeholders.",
	},
}

// Pools holds the question text pools keyed by difficulty.
type Pools struct {
	Easy   []string `yaml:"easy"`
	Medium []string `yaml:"medium"`
	Hard   []string `yaml:"hard"`
}

// perDifficulty is how many questions are drawn from each pool.
const perDifficulty = 2

// Bank selects interview question sets from its pools.
type Bank struct {
	pools Pools
	rng   *rand.Rand
}

// NewBank returns a bank over the built-in pools with its own rand source.
func NewBank(seed int64) *Bank {
	return &Bank{
		pools: defaultPools,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// NewBankWithPools returns a bank over custom pools, e.g. loaded from a
// config file.
func NewBankWithPools(pools Pools, seed int64) (*Bank, error) {
	if err := validatePools(pools); err != nil {
		return nil, err
	}
	return &Bank{
		pools: pools,
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

func validatePools(pools Pools) error {
	if len(pools.Easy) < perDifficulty {
		return fmt.Errorf("easy pool needs at least %d questions, has %d", perDifficulty, len(pools.Easy))
	}
	if len(pools.Medium) < perDifficulty {
		return fmt.Errorf("medium pool needs at least %d questions, has %d", perDifficulty, len(pools.Medium))
	}
	if len(pools.Hard) < perDifficulty {
		return fmt.Errorf("hard pool needs at least %d questions, has %d", perDifficulty, len(pools.Hard))
	}
	return nil
}

// Select returns 6 questions: 2 Easy, 2 Medium, 2 Hard, randomized within
// each pool. IDs are deterministic per position ({difficulty}_{n}).
func (b *Bank) Select() []models.Question {
	selected := make([]models.Question, 0, models.QuestionsPerInterview)
	selected = append(selected, b.draw(b.pools.Easy, models.DifficultyEasy)...)
	selected = append(selected, b.draw(b.pools.Medium, models.DifficultyMedium)...)
	selected = append(selected, b.draw(b.pools.Hard, models.DifficultyHard)...)
	return selected
}

func (b *Bank) draw(pool []string, difficulty string) []models.Question {
	picked := b.rng.Perm(len(pool))[:perDifficulty]

	questions := make([]models.Question, 0, perDifficulty)
	for i, poolIndex := range picked {
		questions = append(questions, models.Question{
			ID:         fmt.Sprintf("%s_%d", lowerDifficulty(difficulty), i+1),
			Text:       pool[poolIndex],
			Difficulty: difficulty,
			TimeLimit:  models.TimeLimitFor(difficulty),
		})
	}
	return questions
}

func lowerDifficulty(difficulty string) string {
	switch difficulty {
	case models.DifficultyEasy:
		return "easy"
	case models.DifficultyHard:
		return "hard"
	default:
		return "medium"
	}
}
