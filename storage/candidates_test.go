package storage

import (
	"encoding/json"
	"testing"

	"github.com/adamspd/InterviewPrep/models"
)

type memKV struct {
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: map[string]string{}}
}

func (kv *memKV) Get(key string) (string, bool, error) {
	value, ok := kv.data[key]
	return value, ok, nil
}

func (kv *memKV) Set(key, value string) error {
	kv.data[key] = value
	return nil
}

func (kv *memKV) Remove(key string) error {
	delete(kv.data, key)
	return nil
}

func testCandidate(id, name string) models.Candidate {
	return models.NewCandidate(id, name, name+"@example.com", "555-111-2222", "")
}

func TestAddAndGet(t *testing.T) {
	store := NewStore(newMemKV())
	store.Add(testCandidate("c1", "alice"))

	got, ok := store.Get("c1")
	if !ok {
		t.Fatal("Expected to find candidate c1")
	}
	if got.Name != "alice" {
		t.Errorf("Expected name alice, got %s", got.Name)
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("Expected lookup miss for unknown ID")
	}
}

func TestSearchMatchesNameAndEmail(t *testing.T) {
	store := NewStore(newMemKV())
	store.Add(testCandidate("c1", "Alice Johnson"))
	store.Add(testCandidate("c2", "Bob Smith"))
	store.Add(models.NewCandidate("c3", "Carol", "carol.johnson@example.com", "555-000-1111", ""))

	cases := []struct {
		term string
		want int
	}{
		{"johnson", 2}, // name of c1, email of c3
		{"ALICE", 1},   // case-insensitive
		{"smith", 1},
		{"", 3},
		{"nobody", 0},
	}
	for _, tc := range cases {
		if got := len(store.Search(tc.term)); got != tc.want {
			t.Errorf("Search(%q) returned %d candidates, want %d", tc.term, got, tc.want)
		}
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv)
	store.Add(testCandidate("c1", "alice"))
	store.SetCurrent(testCandidate("c2", "bob"))
	store.SetInterviewState(models.InterviewState{
		Questions:              []models.Question{{ID: "easy_1", Text: "q", Difficulty: models.DifficultyEasy, TimeLimit: 20}},
		HasUnfinishedInterview: true,
	})

	reloaded := NewStore(kv)
	if len(reloaded.Candidates()) != 1 {
		t.Fatalf("Expected 1 candidate after reload, got %d", len(reloaded.Candidates()))
	}
	current := reloaded.Current()
	if current == nil || current.Name != "bob" {
		t.Error("Current candidate did not survive reload")
	}
	saved := reloaded.InterviewState()
	if !saved.HasUnfinishedInterview || len(saved.Questions) != 1 {
		t.Error("Interview section did not survive reload")
	}
}

func TestCorruptDocumentIsDiscarded(t *testing.T) {
	kv := newMemKV()
	kv.data[StateKey] = "{not valid json"

	store := NewStore(kv)
	if len(store.Candidates()) != 0 {
		t.Error("Expected empty store after discarding corrupt document")
	}
	if store.Current() != nil {
		t.Error("Expected no current candidate after discarding corrupt document")
	}
}

func TestPersistedDocumentFieldNames(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv)
	store.Add(testCandidate("c1", "alice"))

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(kv.data[StateKey]), &doc); err != nil {
		t.Fatalf("Persisted document is not valid JSON: %v", err)
	}
	for _, key := range []string{"candidate", "interview"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("Persisted document missing top-level %q section", key)
		}
	}
}

func TestCompleteCurrentAttachesBothAndAdopts(t *testing.T) {
	store := NewStore(newMemKV())
	candidate := testCandidate("c1", "alice")
	candidate.Answers = []models.Answer{{Question: "q", Answer: "a", TimeSpent: 5, Difficulty: models.DifficultyEasy}}
	store.SetCurrent(candidate)

	finished, ok := store.CompleteCurrent(7.3, "did well")
	if !ok {
		t.Fatal("CompleteCurrent failed with a current candidate set")
	}
	if finished.Score == nil || *finished.Score != 7.3 {
		t.Error("Score not attached")
	}
	if finished.Summary == nil || *finished.Summary != "did well" {
		t.Error("Summary not attached")
	}

	candidates := store.Candidates()
	if len(candidates) != 1 {
		t.Fatalf("Expected finished candidate adopted into collection, got %d records", len(candidates))
	}
	if (candidates[0].Score == nil) != (candidates[0].Summary == nil) {
		t.Error("Score and summary must be both present or both absent")
	}
}

func TestCompleteCurrentReplacesExistingRecord(t *testing.T) {
	store := NewStore(newMemKV())
	candidate := testCandidate("c1", "alice")
	store.Add(candidate)
	store.SetCurrent(candidate)

	if _, ok := store.CompleteCurrent(5.0, "ok"); !ok {
		t.Fatal("CompleteCurrent failed")
	}
	if len(store.Candidates()) != 1 {
		t.Errorf("Expected replace-by-ID, got %d records", len(store.Candidates()))
	}
}

func TestCompleteCurrentWithoutCurrentFails(t *testing.T) {
	store := NewStore(newMemKV())
	if _, ok := store.CompleteCurrent(5.0, "ok"); ok {
		t.Error("Expected failure with no current candidate")
	}
}

func TestObserverFiresOncePerCommit(t *testing.T) {
	store := NewStore(newMemKV())

	fired := 0
	var lastCount int
	store.Subscribe(func(state models.PersistedState) {
		fired++
		lastCount = len(state.Candidate.Candidates)
	})

	store.Add(testCandidate("c1", "alice"))
	if fired != 1 {
		t.Errorf("Expected 1 notification after Add, got %d", fired)
	}

	// Import-style bulk insert is a single transition.
	store.AddAll([]models.Candidate{testCandidate("c2", "bob"), testCandidate("c3", "carol")})
	if fired != 2 {
		t.Errorf("Expected 2 notifications after AddAll, got %d", fired)
	}
	if lastCount != 3 {
		t.Errorf("Observer snapshot had %d candidates, want 3", lastCount)
	}
}

func TestUpdateCurrentMutatesInPlace(t *testing.T) {
	store := NewStore(newMemKV())
	store.SetCurrent(testCandidate("c1", "alice"))

	ok := store.UpdateCurrent(func(c *models.Candidate) {
		c.Answers = append(c.Answers, models.Answer{Question: "q", Answer: "a", TimeSpent: 3, Difficulty: models.DifficultyEasy})
	})
	if !ok {
		t.Fatal("UpdateCurrent failed with a current candidate set")
	}
	current := store.Current()
	if len(current.Answers) != 1 {
		t.Errorf("Expected 1 answer on current candidate, got %d", len(current.Answers))
	}

	store.ClearCurrent()
	if store.UpdateCurrent(func(c *models.Candidate) {}) {
		t.Error("Expected UpdateCurrent to fail after ClearCurrent")
	}
}

func TestClearAllWipesEverything(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv)
	store.Add(testCandidate("c1", "alice"))
	store.SetCurrent(testCandidate("c2", "bob"))

	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}
	if len(store.Candidates()) != 0 {
		t.Error("Expected no candidates after ClearAll")
	}
	if store.Current() != nil {
		t.Error("Expected no current candidate after ClearAll")
	}
	if _, ok := kv.data[StateKey]; ok {
		t.Error("Expected persisted document removed from KV store")
	}
}
