package quiz

import (
	"perception-quiz-service/internal/domain"
	"perception-quiz-service/internal/scoring"
)

// CrimeRules: the pending choice is the selected option value.
type CrimeRules struct{}

func (CrimeRules) CanSubmit(choice string) bool { return choice != "" }

func (CrimeRules) CanAdvance(choice string) bool { return choice != "" }

func (CrimeRules) Finalize(q domain.QuestionItem, choice string) domain.UserAnswer {
	return domain.UserAnswer{
		QuestionID: q.ID,
		UserAnswer: choice,
		WasCorrect: choice == q.CorrectAnswer,
	}
}

// StatusChoice collects the per-vignette inputs of the status quiz.
type StatusChoice struct {
	Q1      domain.YesNo   `json:"q1,omitempty"`
	Q2      domain.YesNo   `json:"q2,omitempty"`
	Opinion domain.Opinion `json:"deportationOpinion,omitempty"`
}

// StatusRules require both sub-answers before reveal and an opinion before advancing.
type StatusRules struct{}

func (StatusRules) CanSubmit(c StatusChoice) bool { return c.Q1 != "" && c.Q2 != "" }

func (StatusRules) CanAdvance(c StatusChoice) bool { return c.Opinion.Valid() }

func (StatusRules) Finalize(v domain.Vignette, c StatusChoice) domain.AnswerHistoryItem {
	return domain.AnswerHistoryItem{
		Vignette:           v,
		UserQ1:             c.Q1,
		UserQ2:             c.Q2,
		DeportationOpinion: c.Opinion,
		Points:             scoring.VignettePoints(v, c.Q1, c.Q2),
	}
}

type (
	CrimeMachine  = Machine[domain.QuestionItem, string, domain.UserAnswer]
	CrimeState    = State[string, domain.UserAnswer]
	StatusMachine = Machine[domain.Vignette, StatusChoice, domain.AnswerHistoryItem]
	StatusState   = State[StatusChoice, domain.AnswerHistoryItem]
)

// NewCrimeMachine builds the crime quiz engine.
func NewCrimeMachine(questions []domain.QuestionItem, opts ...Option) *CrimeMachine {
	return NewMachine[domain.QuestionItem, string, domain.UserAnswer](questions, CrimeRules{}, opts...)
}

// NewStatusMachine builds the status quiz engine.
func NewStatusMachine(vignettes []domain.Vignette, opts ...Option) *StatusMachine {
	return NewMachine[domain.Vignette, StatusChoice, domain.AnswerHistoryItem](vignettes, StatusRules{}, opts...)
}

// CrimeSubmission packages a finished crime history for the collection endpoint.
func CrimeSubmission(sessionID string, history []domain.UserAnswer) domain.CrimeSubmission {
	sub := domain.CrimeSubmission{SessionID: sessionID, AnswerHistory: history}
	if gap, err := scoring.PerceptionGap(history); err == nil {
		sub.CorrectCount = gap.CorrectCount
		sub.TotalQuestions = gap.Total
		sub.PerceptionGapPercent = gap.GapPercent
	}
	return sub
}

// StatusSubmission packages a finished status history for the collection endpoint.
func StatusSubmission(sessionID string, history []domain.AnswerHistoryItem, totalQuestions int) domain.StatusSubmission {
	return domain.StatusSubmission{
		SessionID:      sessionID,
		Score:          scoring.TotalScore(history),
		TotalQuestions: totalQuestions,
		AnswerHistory:  history,
		ScaleImpact:    scoring.ScaleImpact(history),
	}
}
