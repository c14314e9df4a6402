package scoring

import (
	"strings"

	"github.com/adamspd/InterviewPrep/models"
)

// scoreTier pairs a threshold with the sentence appended when the measured
// value reaches it. Tables are walked in order; the first match wins, the
// last entry is the catch-all.
type scoreTier struct {
	min      float64
	sentence string
}

var overallTiers = []scoreTier{
	{8, "demonstrated exceptional interview performance with comprehensive, well-articulated responses. "},
	{6.5, "showed strong interview skills with solid, thoughtful answers across most questions. "},
	{5, "provided adequate responses but with room for improvement in depth and clarity. "},
	{-1, "struggled with several questions and would benefit from additional interview preparation. "},
}

var lengthTiers = []scoreTier{
	{150, "The candidate provided detailed, comprehensive answers showing good communication skills. "},
	{75, "Responses were appropriately detailed with clear communication. "},
	{-1, "Answers were brief and could benefit from more specific examples and elaboration. "},
}

// Time efficiency tiers use exclusive thresholds: >0.3, >0, else.
var timeTiers = []scoreTier{
	{0.3, "Excellent time management, completing responses efficiently while maintaining quality. "},
	{0, "Good time management with appropriate pacing throughout the interview. "},
	{-2, "Used most or all available time, suggesting careful consideration but potentially slower processing. "},
}

var hardTiers = []scoreTier{
	{7, "Particularly strong performance on complex questions demonstrates senior-level thinking and problem-solving abilities."},
	{5, "Handled challenging questions reasonably well with room for growth in complex problem-solving scenarios."},
	{-1, "May need additional support and development when facing complex, strategic challenges."},
}

// Summarize produces the interviewer-facing performance paragraph from
// canned sentence fragments. totalScore is the sum over all answers, not the
// average. Hard-question answers are re-scored here, so the fragment chosen
// can differ slightly between calls through the perturbation term.
func (e *Engine) Summarize(name string, answers []models.Answer, totalScore float64) string {
	if len(answers) == 0 {
		return name
	}

	avgScore := totalScore / float64(len(answers))

	totalLength := 0
	totalUsed := 0
	totalAllowed := 0
	var hardAnswers []models.Answer
	for _, ans := range answers {
		totalLength += len(ans.Answer)
		totalUsed += ans.TimeSpent
		totalAllowed += models.TimeLimitFor(ans.Difficulty)
		if ans.Difficulty == models.DifficultyHard {
			hardAnswers = append(hardAnswers, ans)
		}
	}
	avgLength := float64(totalLength) / float64(len(answers))
	timeEfficiency := float64(totalAllowed-totalUsed) / float64(totalAllowed)

	var summary strings.Builder
	summary.WriteString(name)
	summary.WriteString(" ")
	summary.WriteString(pickTier(overallTiers, avgScore, false))
	summary.WriteString(pickTier(lengthTiers, avgLength, false))
	summary.WriteString(pickTier(timeTiers, timeEfficiency, true))

	if len(hardAnswers) > 0 {
		hardTotal := 0.0
		for _, ans := range hardAnswers {
			hardTotal += e.ScoreAnswer(ans.Question, ans.Answer, ans.TimeSpent)
		}
		hardAvg := hardTotal / float64(len(hardAnswers))
		summary.WriteString(pickTier(hardTiers, hardAvg, false))
	}

	return summary.String()
}

func pickTier(tiers []scoreTier, value float64, exclusive bool) string {
	for _, tier := range tiers {
		if exclusive {
			if value > tier.min {
				return tier.sentence
			}
		} else if value >= tier.min {
			return tier.sentence
		}
	}
	return tiers[len(tiers)-1].sentence
}
