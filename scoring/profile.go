package scoring

import "github.com/adamspd/InterviewPrep/models"

// Overall ratings for a candidate profile.
const (
	RatingExcellent        = "Excellent"
	RatingGood             = "Good"
	RatingFair             = "Fair"
	RatingNeedsImprovement = "Needs Improvement"
)

// Profile is a rule-driven breakdown of a candidate's answer patterns,
// shown on the candidate detail view.
type Profile struct {
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"improvements"`
	OverallRating string   `json:"overall_rating"`
}

// AnalyzeProfile re-scores the answers and derives strengths, improvement
// areas and an overall rating from fixed thresholds.
func (e *Engine) AnalyzeProfile(answers []models.Answer) Profile {
	profile := Profile{
		Strengths:    []string{},
		Improvements: []string{},
	}
	if len(answers) == 0 {
		profile.OverallRating = RatingNeedsImprovement
		return profile
	}

	totalScore := 0.0
	totalLength := 0
	totalTime := 0
	for _, ans := range answers {
		totalScore += e.ScoreAnswer(ans.Question, ans.Answer, ans.TimeSpent)
		totalLength += len(ans.Answer)
		totalTime += ans.TimeSpent
	}
	avgScore := totalScore / float64(len(answers))
	avgLength := float64(totalLength) / float64(len(answers))
	avgTime := float64(totalTime) / float64(len(answers))

	if avgLength >= 150 {
		profile.Strengths = append(profile.Strengths, "Provides detailed, comprehensive responses")
	} else if avgLength < 75 {
		profile.Improvements = append(profile.Improvements, "Could provide more detailed examples and explanations")
	}

	if avgTime <= 45 {
		profile.Strengths = append(profile.Strengths, "Efficient time management and quick thinking")
	} else if avgTime >= 90 {
		profile.Improvements = append(profile.Improvements, "Could work on being more concise and time-efficient")
	}

	if avgScore >= 7 {
		profile.Strengths = append(profile.Strengths, "Strong overall interview performance")
	}
	if avgScore >= 6 {
		profile.Strengths = append(profile.Strengths, "Good communication and articulation skills")
	}

	if avgScore < 6 {
		profile.Improvements = append(profile.Improvements, "Would benefit from more interview practice and preparation")
	}
	if avgScore < 5 {
		profile.Improvements = append(profile.Improvements, "Needs significant improvement in response quality and depth")
	}

	switch {
	case avgScore >= 8:
		profile.OverallRating = RatingExcellent
	case avgScore >= 6.5:
		profile.OverallRating = RatingGood
	case avgScore >= 5:
		profile.OverallRating = RatingFair
	default:
		profile.OverallRating = RatingNeedsImprovement
	}

	return profile
}
