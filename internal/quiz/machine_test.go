package quiz_test

import (
	"fmt"
	"testing"

	"perception-quiz-service/internal/domain"
	"perception-quiz-service/internal/quiz"
)

func TestSelectAfterRevealIsNoop(t *testing.T) {
	m := quiz.NewCrimeMachine(sampleQuestions())
	s := m.Start()
	s = m.Select(s, pick("a"))
	s = m.Submit(s)
	if !s.Revealed {
		t.Fatalf("expected revealed after submit")
	}

	after := m.Select(s, pick("b"))
	if after.Pending != "a" {
		t.Fatalf("expected pending choice unchanged, got %q", after.Pending)
	}
}

func TestReselectOverwritesPending(t *testing.T) {
	m := quiz.NewCrimeMachine(sampleQuestions())
	s := m.Start()
	s = m.Select(s, pick("a"))
	s = m.Select(s, pick("b"))
	if s.Pending != "b" {
		t.Fatalf("expected pending b, got %q", s.Pending)
	}
	if len(s.History) != 0 {
		t.Fatalf("selection must not append to history")
	}
}

func TestSubmitRequiresChoice(t *testing.T) {
	m := quiz.NewCrimeMachine(sampleQuestions())
	s := m.Submit(m.Start())
	if s.Revealed {
		t.Fatalf("submit without a choice must be a no-op")
	}
}

func TestAdvanceBeforeRevealIsNoop(t *testing.T) {
	m := quiz.NewCrimeMachine(sampleQuestions())
	s := m.Start()
	s = m.Select(s, pick("a"))

	after := m.Advance(s)
	if after.Index != 0 || len(after.History) != 0 || after.Phase != quiz.InProgress {
		t.Fatalf("advance before reveal changed state: %+v", after)
	}
}

func TestTransitionsOutsideSessionAreNoops(t *testing.T) {
	m := quiz.NewCrimeMachine(sampleQuestions())
	var s quiz.CrimeState
	s = m.Select(s, pick("a"))
	s = m.Submit(s)
	s = m.Advance(s)
	if s.Phase != quiz.NotStarted || s.Pending != "" || s.Revealed {
		t.Fatalf("expected untouched not-started state, got %+v", s)
	}
}

func TestCrimeEndToEnd(t *testing.T) {
	m := quiz.NewCrimeMachine(sampleQuestions())
	s := m.Start()
	for _, choice := range []string{"a", "c", "a"} {
		s = m.Advance(m.Submit(m.Select(s, pick(choice))))
	}
	if s.Phase != quiz.Finished {
		t.Fatalf("expected finished, got %v", s.Phase)
	}
	if len(s.History) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(s.History))
	}
	sub := quiz.CrimeSubmission(s.SessionID, s.History)
	if sub.CorrectCount != 1 || sub.TotalQuestions != 3 || sub.PerceptionGapPercent != 67 {
		t.Fatalf("unexpected submission summary: %+v", sub)
	}

	// Finished sessions ignore further events.
	again := m.Advance(m.Submit(m.Select(s, pick("a"))))
	if len(again.History) != 3 || again.Phase != quiz.Finished {
		t.Fatalf("finished state changed: %+v", again)
	}
}

func TestHistoryNeverExceedsContentAndIDsUnique(t *testing.T) {
	m := quiz.NewCrimeMachine(sampleQuestions())
	s := m.Start()
	for i := 0; i < 10; i++ {
		s = m.Advance(m.Submit(m.Select(s, pick("a"))))
	}
	if len(s.History) != m.Len() {
		t.Fatalf("expected %d answers, got %d", m.Len(), len(s.History))
	}
	seen := map[int]bool{}
	for _, a := range s.History {
		if seen[a.QuestionID] {
			t.Fatalf("question %d answered twice", a.QuestionID)
		}
		seen[a.QuestionID] = true
	}
}

func TestEarlierSnapshotsAreNotMutated(t *testing.T) {
	m := quiz.NewCrimeMachine(sampleQuestions())
	s := m.Advance(m.Submit(m.Select(m.Start(), pick("a"))))
	snapshot := s

	s1 := m.Advance(m.Submit(m.Select(snapshot, pick("a"))))
	s2 := m.Advance(m.Submit(m.Select(snapshot, pick("b"))))
	if s1.History[1].UserAnswer != "a" || s2.History[1].UserAnswer != "b" {
		t.Fatalf("branches share history: %+v / %+v", s1.History, s2.History)
	}
	if len(snapshot.History) != 1 {
		t.Fatalf("snapshot history grew to %d", len(snapshot.History))
	}
}

func TestRestartIssuesFreshSession(t *testing.T) {
	ids := 0
	m := quiz.NewCrimeMachine(sampleQuestions(), quiz.WithSessionIDs(func() string {
		ids++
		return fmt.Sprintf("session-%d", ids)
	}))
	s := m.Advance(m.Submit(m.Select(m.Start(), pick("a"))))

	first := m.Restart(s)
	second := m.Restart(first)
	for _, r := range []quiz.CrimeState{first, second} {
		if r.Phase != quiz.InProgress || r.Index != 0 || r.Revealed || len(r.History) != 0 || r.Pending != "" {
			t.Fatalf("restart did not reset state: %+v", r)
		}
	}
	if first.SessionID == s.SessionID || second.SessionID == first.SessionID {
		t.Fatalf("expected distinct session ids, got %q %q %q", s.SessionID, first.SessionID, second.SessionID)
	}
}

func TestDefaultSessionIDsAreUUIDs(t *testing.T) {
	m := quiz.NewCrimeMachine(sampleQuestions())
	a, b := m.Start().SessionID, m.Start().SessionID
	if len(a) != 36 || a == b {
		t.Fatalf("unexpected session ids %q %q", a, b)
	}
}

func TestStatusRequiresBothAnswersAndOpinion(t *testing.T) {
	m := quiz.NewStatusMachine(sampleVignettes())
	s := m.Start()

	s = m.Select(s, func(c quiz.StatusChoice) quiz.StatusChoice { c.Q1 = domain.Yes; return c })
	if m.Submit(s).Revealed {
		t.Fatalf("submit must wait for both sub-answers")
	}
	s = m.Select(s, func(c quiz.StatusChoice) quiz.StatusChoice { c.Q2 = domain.No; return c })
	s = m.Submit(s)
	if !s.Revealed {
		t.Fatalf("expected reveal once both answers are set")
	}

	if got := m.Advance(s); got.Index != 0 || len(got.History) != 0 {
		t.Fatalf("advance must wait for an opinion")
	}
	s = m.Annotate(s, func(c quiz.StatusChoice) quiz.StatusChoice { c.Opinion = domain.OpinionUnsure; return c })
	s = m.Advance(s)
	if s.Index != 1 || len(s.History) != 1 {
		t.Fatalf("expected to move to vignette 2, got %+v", s)
	}
	item := s.History[0]
	if item.Points != 0.5 || item.DeportationOpinion != domain.OpinionUnsure || item.ID != 10 {
		t.Fatalf("unexpected history item: %+v", item)
	}
	if s.Pending != (quiz.StatusChoice{}) {
		t.Fatalf("pending choice not cleared: %+v", s.Pending)
	}
}

func TestAnnotateBeforeRevealIsNoop(t *testing.T) {
	m := quiz.NewStatusMachine(sampleVignettes())
	s := m.Annotate(m.Start(), func(c quiz.StatusChoice) quiz.StatusChoice { c.Opinion = domain.OpinionYes; return c })
	if s.Pending.Opinion != "" {
		t.Fatalf("opinion recorded before reveal")
	}
}

func TestEmptyContentFinishesImmediately(t *testing.T) {
	m := quiz.NewCrimeMachine(nil)
	s := m.Start()
	if s.Phase != quiz.Finished {
		t.Fatalf("expected finished for empty content, got %v", s.Phase)
	}
	if _, ok := m.Item(s); ok {
		t.Fatalf("expected no current item")
	}
}

func pick(v string) func(string) string {
	return func(string) string { return v }
}

func sampleQuestions() []domain.QuestionItem {
	return []domain.QuestionItem{
		{ID: 1, Prompt: "first", CorrectAnswer: "a", Options: []domain.Option{{Value: "a", Correct: true}, {Value: "b"}, {Value: "c"}}},
		{ID: 2, Prompt: "second", CorrectAnswer: "b", Options: []domain.Option{{Value: "a"}, {Value: "b", Correct: true}, {Value: "c"}}},
		{ID: 3, Prompt: "third", CorrectAnswer: "c", Options: []domain.Option{{Value: "a"}, {Value: "b"}, {Value: "c", Correct: true}}},
	}
}

func sampleVignettes() []domain.Vignette {
	return []domain.Vignette{
		{
			ID:                 10,
			Q1:                 domain.SubQuestion{Answer: domain.No},
			Q2:                 domain.SubQuestion{Answer: domain.No},
			AffectedPopulation: domain.Population{Low: 5000, High: 20000},
		},
		{
			ID:                 11,
			Q1:                 domain.SubQuestion{Answer: domain.Yes},
			Q2:                 domain.SubQuestion{Answer: domain.Yes},
			AffectedPopulation: domain.Population{Low: 100000, High: 300000},
		},
	}
}
