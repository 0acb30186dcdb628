package scoring

import (
	"errors"
	"testing"

	"perception-quiz-service/internal/domain"
)

func TestPerceptionGap(t *testing.T) {
	tests := []struct {
		name        string
		history     []domain.UserAnswer
		wantCorrect int
		wantGap     int
	}{
		{
			name: "one of three correct",
			history: []domain.UserAnswer{
				{QuestionID: 1, UserAnswer: "much-lower", WasCorrect: true},
				{QuestionID: 2, UserAnswer: "higher"},
				{QuestionID: 3, UserAnswer: "surged"},
			},
			wantCorrect: 1,
			wantGap:     67,
		},
		{
			name:        "all correct",
			history:     []domain.UserAnswer{{QuestionID: 1, WasCorrect: true}, {QuestionID: 2, WasCorrect: true}},
			wantCorrect: 2,
			wantGap:     0,
		},
		{
			name:        "all wrong",
			history:     []domain.UserAnswer{{QuestionID: 1}, {QuestionID: 2}},
			wantCorrect: 0,
			wantGap:     100,
		},
		{
			name: "half rounds up",
			history: []domain.UserAnswer{
				{QuestionID: 1}, {QuestionID: 2, WasCorrect: true}, {QuestionID: 3, WasCorrect: true}, {QuestionID: 4, WasCorrect: true},
				{QuestionID: 5, WasCorrect: true}, {QuestionID: 6, WasCorrect: true}, {QuestionID: 7, WasCorrect: true}, {QuestionID: 8, WasCorrect: true},
			},
			wantCorrect: 7,
			wantGap:     13,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gap, err := PerceptionGap(tt.history)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gap.Total != len(tt.history) || gap.CorrectCount != tt.wantCorrect || gap.GapPercent != tt.wantGap {
				t.Errorf("PerceptionGap() = %+v, want correct=%d gap=%d", gap, tt.wantCorrect, tt.wantGap)
			}
		})
	}
}

func TestPerceptionGapBounds(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for correct := 0; correct <= n; correct++ {
			history := make([]domain.UserAnswer, n)
			for i := 0; i < correct; i++ {
				history[i].WasCorrect = true
			}
			gap, err := PerceptionGap(history)
			if err != nil {
				t.Fatalf("n=%d: %v", n, err)
			}
			if gap.GapPercent < 0 || gap.GapPercent > 100 {
				t.Fatalf("n=%d correct=%d: gap %d out of bounds", n, correct, gap.GapPercent)
			}
		}
	}
}

func TestPerceptionGapEmpty(t *testing.T) {
	if _, err := PerceptionGap(nil); !errors.Is(err, domain.ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
}

func TestScaleImpact(t *testing.T) {
	history := []domain.AnswerHistoryItem{
		{
			Vignette:           domain.Vignette{ID: 6, AffectedPopulation: domain.Population{Low: 5000, High: 20000}},
			DeportationOpinion: domain.OpinionYes,
		},
		{
			Vignette:           domain.Vignette{ID: 1, AffectedPopulation: domain.Population{Low: 100000, High: 300000}},
			DeportationOpinion: domain.OpinionNo,
		},
	}
	got := ScaleImpact(history)
	if got.Low != 5000 || got.High != 20000 {
		t.Fatalf("ScaleImpact() = %+v, want {5000 20000}", got)
	}
}

func TestScaleImpactMonotonic(t *testing.T) {
	var history []domain.AnswerHistoryItem
	prev := ScaleImpact(history)
	opinions := []domain.Opinion{domain.OpinionYes, domain.OpinionNo, domain.OpinionUnsure, "", domain.OpinionYes}
	for i, op := range opinions {
		history = append(history, domain.AnswerHistoryItem{
			Vignette:           domain.Vignette{ID: i + 1, AffectedPopulation: domain.Population{Low: int64(1000 * (i + 1)), High: int64(5000 * (i + 1))}},
			DeportationOpinion: op,
		})
		next := ScaleImpact(history)
		if next.Low < prev.Low || next.High < prev.High {
			t.Fatalf("scale impact decreased after %q: %+v -> %+v", op, prev, next)
		}
		if op != domain.OpinionYes && next != prev {
			t.Fatalf("non-Yes opinion %q changed impact: %+v -> %+v", op, prev, next)
		}
		prev = next
	}
}

func TestFormatScale(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000+"},
		{1500, "2,000+"},
		{20000, "20,000+"},
		{1000000, "1 million"},
		{2500000, "2.5 million"},
		{1200000, "1.2 million"},
	}
	for _, tt := range tests {
		if got := FormatScale(tt.in); got != tt.want {
			t.Errorf("FormatScale(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVignettePointsAndTotals(t *testing.T) {
	v := domain.Vignette{
		Q1: domain.SubQuestion{Answer: domain.Yes},
		Q2: domain.SubQuestion{Answer: domain.No},
	}
	if p := VignettePoints(v, domain.Yes, domain.No); p != 1 {
		t.Fatalf("expected 1 point, got %v", p)
	}
	if p := VignettePoints(v, domain.No, domain.No); p != 0.5 {
		t.Fatalf("expected 0.5 point, got %v", p)
	}
	if p := VignettePoints(v, domain.No, domain.Yes); p != 0 {
		t.Fatalf("expected 0 points, got %v", p)
	}

	history := []domain.AnswerHistoryItem{
		{Points: 1, DeportationOpinion: domain.OpinionYes},
		{Points: 0.5, DeportationOpinion: domain.OpinionUnsure},
		{Points: 0, DeportationOpinion: domain.OpinionYes},
	}
	if s := TotalScore(history); s != 1.5 {
		t.Fatalf("expected total 1.5, got %v", s)
	}
	if n := DeportationYesCount(history); n != 2 {
		t.Fatalf("expected 2 yes opinions, got %d", n)
	}
}

func TestAccuracy(t *testing.T) {
	if a := Accuracy(1, 3); a != 33.3 {
		t.Fatalf("Accuracy(1,3) = %v", a)
	}
	if a := Accuracy(0, 0); a != 0 {
		t.Fatalf("Accuracy(0,0) = %v", a)
	}
}
