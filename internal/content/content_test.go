package content

import (
	"testing"

	"perception-quiz-service/internal/domain"
)

func TestCrimeQuestionsWellFormed(t *testing.T) {
	seen := map[int]bool{}
	for _, q := range CrimeQuestions() {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true

		correct := 0
		for _, opt := range q.Options {
			if opt.Correct {
				correct++
				if opt.Value != q.CorrectAnswer {
					t.Fatalf("question %d: correct option %q does not match correctAnswer %q", q.ID, opt.Value, q.CorrectAnswer)
				}
			}
		}
		if correct != 1 {
			t.Fatalf("question %d: expected exactly one correct option, got %d", q.ID, correct)
		}
		if len(q.Sources) == 0 {
			t.Fatalf("question %d has no sources", q.ID)
		}
		switch q.Surprise {
		case domain.SurpriseLow, domain.SurpriseMedium, domain.SurpriseHigh:
		default:
			t.Fatalf("question %d: unexpected surprise tier %q", q.ID, q.Surprise)
		}
	}
}

func TestVignettesWellFormed(t *testing.T) {
	seen := map[int]bool{}
	for _, v := range Vignettes() {
		if seen[v.ID] {
			t.Fatalf("duplicate vignette id %d", v.ID)
		}
		seen[v.ID] = true

		for _, ans := range []domain.YesNo{v.Q1.Answer, v.Q2.Answer} {
			if ans != domain.Yes && ans != domain.No {
				t.Fatalf("vignette %d: invalid answer %q", v.ID, ans)
			}
		}
		switch v.ConflictType {
		case domain.ConflictConsistent, domain.ConflictParadox, domain.ConflictTragedy, domain.ConflictNuanced:
		default:
			t.Fatalf("vignette %d: unexpected conflict type %q", v.ID, v.ConflictType)
		}
		if v.AffectedPopulation.Low > v.AffectedPopulation.High {
			t.Fatalf("vignette %d: population low > high", v.ID)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	qs := CrimeQuestions()
	qs[0].Options[0].Value = "tampered"
	qs[0].Prompt = "tampered"

	again := CrimeQuestions()
	if again[0].Options[0].Value == "tampered" || again[0].Prompt == "tampered" {
		t.Fatalf("crime table was mutated through accessor")
	}

	catalog := NewCatalog()
	v, ok := catalog.Vignette(1)
	if !ok {
		t.Fatalf("expected vignette 1")
	}
	v.Sources[0].Title = "tampered"
	v2, _ := catalog.Vignette(1)
	if v2.Sources[0].Title == "tampered" {
		t.Fatalf("catalog vignette was mutated")
	}
}

func TestCatalogLookup(t *testing.T) {
	catalog := NewCatalog()
	if catalog.CrimeQuestionCount() != len(CrimeQuestions()) {
		t.Fatalf("catalog question count mismatch")
	}
	if catalog.VignetteCount() != len(Vignettes()) {
		t.Fatalf("catalog vignette count mismatch")
	}
	if _, ok := catalog.CrimeQuestion(999); ok {
		t.Fatalf("expected unknown question lookup to fail")
	}
	q, ok := catalog.CrimeQuestion(3)
	if !ok || q.CorrectAnswer != "decreased" {
		t.Fatalf("unexpected question 3: %+v", q)
	}
}
