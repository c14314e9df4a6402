package interview

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/adamspd/InterviewPrep/models"
	"github.com/adamspd/InterviewPrep/questions"
	"github.com/adamspd/InterviewPrep/scoring"
	"github.com/adamspd/InterviewPrep/storage"
	"github.com/adamspd/InterviewPrep/utils"
)

// AutoSubmitText is recorded when the timer expires with nothing typed.
// The placeholder is still scored like any other answer.
const AutoSubmitText = "No answer provided (time expired)"

// Engine drives a single interview session: question progression, the
// countdown timer and the scoring pipeline at submission boundaries. The
// mutex makes every transition run to completion before the next begins,
// so a timer tick and a manual submit cannot interleave.
//
// Timing is deadline-based. Each tick recomputes remaining time from the
// wall clock instead of counting wake-ups, so a suspended process loses
// the elapsed time when it wakes rather than drifting.
type Engine struct {
	mu     sync.Mutex
	store  *storage.Store
	bank   *questions.Bank
	scorer *scoring.Engine
	clock  Clock

	questionList  []models.Question
	index         int
	active        bool
	timerRunning  bool
	timeRemaining int
	questionStart time.Time
	isSubmitting  bool
}

// SubmitResult reports what a submission did.
type SubmitResult struct {
	Answer        models.Answer    `json:"answer"`
	Score         float64          `json:"score"`
	Completed     bool             `json:"completed"`
	FinalScore    float64          `json:"final_score,omitempty"`
	Summary       string           `json:"summary,omitempty"`
	NextQuestion  *models.Question `json:"next_question,omitempty"`
	TimeRemaining int              `json:"time_remaining"`
}

// State is a read-only view of the session for callers.
type State struct {
	Active          bool             `json:"active"`
	TimerRunning    bool             `json:"timer_running"`
	QuestionIndex   int              `json:"question_index"`
	QuestionCount   int              `json:"question_count"`
	TimeRemaining   int              `json:"time_remaining"`
	CurrentQuestion *models.Question `json:"current_question,omitempty"`
	CanResume       bool             `json:"can_resume"`
}

// NewEngine builds a session engine over the store, bank and scorer.
func NewEngine(store *storage.Store, bank *questions.Bank, scorer *scoring.Engine, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	return &Engine{
		store:  store,
		bank:   bank,
		scorer: scorer,
		clock:  clock,
	}
}

// Restore rebuilds session state from the persisted interview section. An
// interrupted session is parked until the caller decides to Resume or
// Abandon; the in-progress question gets a fresh full time limit on resume
// because elapsed mid-question time is not durably tracked.
func (e *Engine) Restore() {
	e.mu.Lock()
	defer e.mu.Unlock()

	saved := e.store.InterviewState()
	if !saved.HasUnfinishedInterview || len(saved.Questions) == 0 {
		return
	}

	current := e.store.Current()
	if current == nil || !current.HasUnfinishedInterview() {
		return
	}

	e.questionList = saved.Questions
	if len(current.Answers) >= len(e.questionList) {
		// Every question was answered but the process died before results
		// were attached. Finish the scoring now instead of re-asking.
		utils.LogInterview("Finishing interrupted interview for %s", current.Name)
		e.finalize()
		return
	}
	e.index = len(current.Answers)
	e.active = false
	e.timerRunning = false
	utils.LogInterview("Found unfinished interview for %s: %d/%d answered",
		current.Name, len(current.Answers), len(e.questionList))
}

// Start begins an interview for the current candidate. Calling Start while
// a session is already active is a no-op, which guards against
// double-initialization. The candidate must have no answers and no score.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active {
		return nil
	}

	candidate := e.store.Current()
	if candidate == nil {
		return fmt.Errorf("no current candidate")
	}
	if len(candidate.Answers) > 0 || candidate.Score != nil {
		return fmt.Errorf("candidate %s already has interview data", candidate.ID)
	}

	e.questionList = e.bank.Select()
	e.index = 0
	e.active = true
	e.timerRunning = true
	e.timeRemaining = e.questionList[0].TimeLimit
	e.questionStart = e.clock.Now()
	e.isSubmitting = false

	e.persistState()
	utils.LogInterview("Started interview for %s with %d questions", candidate.Name, len(e.questionList))
	return nil
}

// CanResume reports whether a parked unfinished session is waiting for a
// resume-or-abandon decision.
func (e *Engine) CanResume() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.canResume()
}

func (e *Engine) canResume() bool {
	if e.active || len(e.questionList) == 0 {
		return false
	}
	current := e.store.Current()
	return current != nil && current.HasUnfinishedInterview()
}

// Resume re-enters the session at the next unanswered question with a
// fresh full time limit.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active {
		return nil
	}
	if !e.canResume() {
		return fmt.Errorf("no unfinished interview to resume")
	}

	current := e.store.Current()
	if len(current.Answers) >= len(e.questionList) {
		utils.LogInterview("Finishing fully answered interview for %s", current.Name)
		e.finalize()
		return nil
	}
	e.index = len(current.Answers)
	e.active = true
	e.timerRunning = true
	e.timeRemaining = e.questionList[e.index].TimeLimit
	e.questionStart = e.clock.Now()

	e.persistState()
	utils.LogInterview("Resumed interview for %s at question %d (%s on the clock)",
		current.Name, e.index+1, utils.FormatClock(e.timeRemaining))
	return nil
}

// Abandon discards the session and the current candidate reference without
// scoring. Used both for "start new interview" and the resume-prompt's
// decline path.
func (e *Engine) Abandon() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.store.ClearCurrent()
	e.reset()
	utils.LogInterview("Interview abandoned")
}

// Tick advances the countdown from wall-clock elapsed time. At zero it
// auto-submits the current question.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active || !e.timerRunning {
		return
	}

	limit := e.questionList[e.index].TimeLimit
	elapsed := int(e.clock.Now().Sub(e.questionStart) / time.Second)
	remaining := limit - elapsed
	if remaining < 0 {
		remaining = 0
	}

	if remaining == e.timeRemaining && remaining > 0 {
		return
	}
	e.timeRemaining = remaining
	e.persistState()

	if remaining == 0 {
		if _, err := e.submit("", true); err != nil {
			utils.LogError("Auto-submit failed: %v", err)
		}
	}
}

// SubmitAnswer records an answer for the current question. Timer expiry and
// manual submission both land here, so at most one Answer is appended per
// question. A submit while another is in flight is dropped silently and
// returns a nil result.
func (e *Engine) SubmitAnswer(text string, autoSubmit bool) (*SubmitResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submit(text, autoSubmit)
}

func (e *Engine) submit(text string, autoSubmit bool) (*SubmitResult, error) {
	if !e.active {
		return nil, fmt.Errorf("no active interview")
	}
	if e.isSubmitting {
		return nil, nil
	}
	e.isSubmitting = true
	defer func() { e.isSubmitting = false }()

	// Stop the timer source before anything else so expiry cannot race
	// this submission.
	e.timerRunning = false

	question := e.questionList[e.index]
	timeSpent := int(e.clock.Now().Sub(e.questionStart) / time.Second)
	if timeSpent < 0 {
		timeSpent = 0
	}

	if autoSubmit && text == "" {
		text = AutoSubmitText
	}

	answer := models.Answer{
		Question:   question.Text,
		Answer:     text,
		TimeSpent:  timeSpent,
		Difficulty: question.Difficulty,
	}

	score := e.scorer.ScoreAnswer(question.Text, text, timeSpent)

	if !e.store.UpdateCurrent(func(c *models.Candidate) {
		c.Answers = append(c.Answers, answer)
	}) {
		return nil, fmt.Errorf("no current candidate")
	}

	result := &SubmitResult{Answer: answer, Score: score}

	if e.index >= len(e.questionList)-1 {
		e.finish(result)
	} else {
		e.index++
		e.timeRemaining = e.questionList[e.index].TimeLimit
		e.timerRunning = true
		e.questionStart = e.clock.Now()
		next := e.questionList[e.index]
		result.NextQuestion = &next
		result.TimeRemaining = e.timeRemaining
		e.persistState()
		utils.LogInterview("Question %d/%d answered (auto=%t, score=%.1f)",
			e.index, len(e.questionList), autoSubmit, score)
	}

	return result, nil
}

// finish attaches the final results to the submission response.
func (e *Engine) finish(result *SubmitResult) {
	avg, summary, ok := e.finalize()
	if !ok {
		return
	}
	result.Completed = true
	result.FinalScore = avg
	result.Summary = summary
}

// finalize runs the scoring pipeline over the full answer list and attaches
// score and summary atomically. The answers are re-scored here with fresh
// perturbations, so the stored average can diverge slightly from the
// per-question scores shown earlier; that is intentional. The current
// candidate can vanish mid-submit when a concurrent data wipe lands, so the
// session resets without results in that case. Callers hold e.mu.
func (e *Engine) finalize() (float64, string, bool) {
	candidate := e.store.Current()
	if candidate == nil || len(candidate.Answers) == 0 {
		utils.LogError("Interview finished but current candidate vanished")
		e.reset()
		return 0, "", false
	}

	total := 0.0
	for _, ans := range candidate.Answers {
		total += e.scorer.ScoreAnswer(ans.Question, ans.Answer, ans.TimeSpent)
	}
	avg := math.Round(total/float64(len(candidate.Answers))*10) / 10
	summary := e.scorer.Summarize(candidate.Name, candidate.Answers, total)

	finished, ok := e.store.CompleteCurrent(avg, summary)
	if !ok {
		utils.LogError("Interview finished but current candidate vanished")
		e.reset()
		return 0, "", false
	}

	e.reset()
	utils.LogInterview("Interview completed for %s: score %.1f", finished.Name, avg)
	return avg, summary, true
}

// reset clears the live session fields. Callers hold e.mu.
func (e *Engine) reset() {
	e.active = false
	e.timerRunning = false
	e.questionList = nil
	e.index = 0
	e.timeRemaining = 0
	e.persistState()
}

// State returns the current session view.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	state := State{
		Active:        e.active,
		TimerRunning:  e.timerRunning,
		QuestionIndex: e.index,
		QuestionCount: len(e.questionList),
		TimeRemaining: e.timeRemaining,
		CanResume:     e.canResume(),
	}
	if e.active && e.index < len(e.questionList) {
		question := e.questionList[e.index]
		state.CurrentQuestion = &question
	}
	return state
}

// RunTicker drives Tick once per second until the context is cancelled.
func (e *Engine) RunTicker(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.Tick()
		}
	}
}

// persistState mirrors the session into the persisted interview section.
// Callers hold e.mu.
func (e *Engine) persistState() {
	hasUnfinished := false
	if current := e.store.Current(); current != nil {
		hasUnfinished = e.active || current.HasUnfinishedInterview()
	}
	e.store.SetInterviewState(models.InterviewState{
		Questions:              e.questionList,
		CurrentQuestionIndex:   e.index,
		IsInterviewActive:      e.active,
		TimeRemaining:          e.timeRemaining,
		IsTimerRunning:         e.timerRunning,
		HasUnfinishedInterview: hasUnfinished,
	})
}
