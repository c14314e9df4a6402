package storage

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/adamspd/InterviewPrep/models"
	"github.com/adamspd/InterviewPrep/utils"
)

// StateKey is where the primary application document lives in the KV store.
const StateKey = "ai-interview-assistant"

// Observer is invoked after every committed state transition with a
// snapshot of the new state.
type Observer func(models.PersistedState)

// Store owns all candidate records plus the persisted interview section.
// Every committed mutation re-serializes the full document and overwrites
// the previous one (last writer wins; there is exactly one writer).
type Store struct {
	mu        sync.Mutex
	kv        KV
	state     models.PersistedState
	observers []Observer
}

// NewStore loads the persisted document from the KV store. A corrupt
// document is discarded and the store starts empty rather than failing.
func NewStore(kv KV) *Store {
	s := &Store{kv: kv}
	s.state.Candidate.Candidates = []models.Candidate{}

	raw, ok, err := kv.Get(StateKey)
	if err != nil {
		utils.LogError("Failed to load persisted state, starting empty: %v", err)
		return s
	}
	if !ok {
		utils.LogDB("No persisted state found, starting empty")
		return s
	}

	var state models.PersistedState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		utils.LogError("Persisted state is corrupt, discarding it: %v", err)
		return s
	}
	if state.Candidate.Candidates == nil {
		state.Candidate.Candidates = []models.Candidate{}
	}
	s.state = state
	utils.LogDB("Loaded persisted state: %d candidates", len(state.Candidate.Candidates))
	return s
}

// Subscribe registers an observer for committed transitions.
func (s *Store) Subscribe(obs Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, obs)
	s.mu.Unlock()
}

// commit persists the document and notifies observers. Callers hold s.mu;
// observers run under the lock and must not call back into the store.
func (s *Store) commit() {
	snapshot := s.snapshotLocked()

	data, err := json.Marshal(snapshot)
	if err != nil {
		utils.LogError("Failed to serialize state: %v", err)
	} else if err := s.kv.Set(StateKey, string(data)); err != nil {
		utils.LogError("Failed to persist state: %v", err)
	}

	for _, obs := range s.observers {
		obs(snapshot)
	}
}

func (s *Store) snapshotLocked() models.PersistedState {
	snapshot := s.state
	snapshot.Candidate.Candidates = append([]models.Candidate(nil), s.state.Candidate.Candidates...)
	if s.state.Candidate.CurrentCandidate != nil {
		current := *s.state.Candidate.CurrentCandidate
		snapshot.Candidate.CurrentCandidate = &current
	}
	snapshot.Interview.Questions = append([]models.Question(nil), s.state.Interview.Questions...)
	return snapshot
}

// Candidates returns a copy of all records.
func (s *Store) Candidates() []models.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Candidate(nil), s.state.Candidate.Candidates...)
}

// Get returns a candidate by ID.
func (s *Store) Get(id string) (models.Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.state.Candidate.Candidates {
		if c.ID == id {
			return c, true
		}
	}
	return models.Candidate{}, false
}

// Search filters candidates by case-insensitive substring match on name or
// email. An empty term returns everything.
func (s *Store) Search(term string) []models.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]models.Candidate(nil), s.state.Candidate.Candidates...)
	}

	matched := []models.Candidate{}
	for _, c := range s.state.Candidate.Candidates {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) {
			matched = append(matched, c)
		}
	}
	return matched
}

// Add appends a candidate to the collection.
func (s *Store) Add(candidate models.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Candidate.Candidates = append(s.state.Candidate.Candidates, candidate)
	s.commit()
}

// AddAll appends candidates in one committed transition, used by import.
func (s *Store) AddAll(candidates []models.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Candidate.Candidates = append(s.state.Candidate.Candidates, candidates...)
	s.commit()
}

// Update replaces the stored record with the same ID.
func (s *Store) Update(candidate models.Candidate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.state.Candidate.Candidates {
		if c.ID == candidate.ID {
			s.state.Candidate.Candidates[i] = candidate
			s.commit()
			return true
		}
	}
	return false
}

// Current returns the current candidate reference, or nil.
func (s *Store) Current() *models.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Candidate.CurrentCandidate == nil {
		return nil
	}
	current := *s.state.Candidate.CurrentCandidate
	return &current
}

// SetCurrent makes the candidate the current one for an interview session.
func (s *Store) SetCurrent(candidate models.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Candidate.CurrentCandidate = &candidate
	s.commit()
}

// UpdateCurrent applies a mutation to the current candidate. No-op when
// there is no current candidate.
func (s *Store) UpdateCurrent(mutate func(*models.Candidate)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Candidate.CurrentCandidate == nil {
		return false
	}
	mutate(s.state.Candidate.CurrentCandidate)
	s.commit()
	return true
}

// ClearCurrent drops the current candidate reference.
func (s *Store) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Candidate.CurrentCandidate = nil
	s.commit()
}

// CompleteCurrent attaches score and summary to the current candidate in a
// single transition and adopts the finished record into the collection.
// Score and summary are never set separately.
func (s *Store) CompleteCurrent(score float64, summary string) (models.Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Candidate.CurrentCandidate == nil {
		return models.Candidate{}, false
	}

	current := s.state.Candidate.CurrentCandidate
	current.Score = &score
	current.Summary = &summary

	finished := *current
	replaced := false
	for i, c := range s.state.Candidate.Candidates {
		if c.ID == finished.ID {
			s.state.Candidate.Candidates[i] = finished
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.Candidate.Candidates = append(s.state.Candidate.Candidates, finished)
	}

	s.commit()
	return finished, true
}

// InterviewState returns the persisted interview section.
func (s *Store) InterviewState() models.InterviewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state.Interview
	state.Questions = append([]models.Question(nil), state.Questions...)
	return state
}

// SetInterviewState replaces the persisted interview section.
func (s *Store) SetInterviewState(state models.InterviewState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Interview = state
	s.commit()
}

// ClearAll wipes the persisted document and resets to empty state.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Remove(StateKey); err != nil {
		return err
	}
	s.state = models.PersistedState{}
	s.state.Candidate.Candidates = []models.Candidate{}
	return nil
}
