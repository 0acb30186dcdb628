package quiz

import (
	"context"

	"perception-quiz-service/internal/domain"
	"perception-quiz-service/internal/scoring"
)

// CrimeQuiz is a single-user controller for the crime quiz. It is not safe for
// concurrent use; callers serialize events the way a UI event loop does.
type CrimeQuiz struct {
	machine   *CrimeMachine
	state     CrimeState
	submitter *Submitter[domain.CrimeSubmission]
}

func NewCrimeQuiz(machine *CrimeMachine, submitter *Submitter[domain.CrimeSubmission]) *CrimeQuiz {
	if submitter == nil {
		submitter = NewSubmitter[domain.CrimeSubmission](nil)
	}
	return &CrimeQuiz{machine: machine, submitter: submitter}
}

func (q *CrimeQuiz) Start() {
	q.submitter.Reset()
	q.state = q.machine.Start()
}

// Restart abandons the current attempt; a new session id is issued.
func (q *CrimeQuiz) Restart() {
	q.submitter.Reset()
	q.state = q.machine.Restart(q.state)
}

// Select ignores values that are not options of the current question.
func (q *CrimeQuiz) Select(value string) {
	item, ok := q.machine.Item(q.state)
	if !ok {
		return
	}
	if _, ok := item.Option(value); !ok {
		return
	}
	q.state = q.machine.Select(q.state, func(string) string { return value })
}

func (q *CrimeQuiz) Submit() {
	q.state = q.machine.Submit(q.state)
}

// Advance finalizes the current answer. Finishing the quiz hands the history to
// the submitter exactly once.
func (q *CrimeQuiz) Advance() {
	before := q.state.Phase
	q.state = q.machine.Advance(q.state)
	if before != Finished && q.state.Phase == Finished {
		q.submitter.Submit(q.state.SessionID, CrimeSubmission(q.state.SessionID, q.state.History))
	}
}

func (q *CrimeQuiz) State() CrimeState { return q.state }

func (q *CrimeQuiz) Len() int { return q.machine.Len() }

func (q *CrimeQuiz) Current() (domain.QuestionItem, bool) { return q.machine.Item(q.state) }

// Results scores the history collected so far.
func (q *CrimeQuiz) Results() (scoring.Gap, error) {
	return scoring.PerceptionGap(q.state.History)
}

func (q *CrimeQuiz) Submission() SubmitResult { return q.submitter.Result() }

func (q *CrimeQuiz) WaitSubmission(ctx context.Context) SubmitResult { return q.submitter.Wait(ctx) }

// SubQuestion names one of the two Yes/No questions of a vignette.
type SubQuestion string

const (
	LegalStatus SubQuestion = "q1"
	Compliance  SubQuestion = "q2"
)

// StatusResults is the summary shown when the status quiz finishes.
type StatusResults struct {
	Score               float64      `json:"score"`
	TotalQuestions      int          `json:"totalQuestions"`
	DeportationYesCount int          `json:"deportationYesCount"`
	ScaleImpact         domain.Range `json:"scaleImpact"`
	ScaleLow            string       `json:"scaleLow"`
	ScaleHigh           string       `json:"scaleHigh"`
}

// StatusQuiz is a single-user controller for the status quiz.
type StatusQuiz struct {
	machine   *StatusMachine
	state     StatusState
	submitter *Submitter[domain.StatusSubmission]
}

func NewStatusQuiz(machine *StatusMachine, submitter *Submitter[domain.StatusSubmission]) *StatusQuiz {
	if submitter == nil {
		submitter = NewSubmitter[domain.StatusSubmission](nil)
	}
	return &StatusQuiz{machine: machine, submitter: submitter}
}

func (q *StatusQuiz) Start() {
	q.submitter.Reset()
	q.state = q.machine.Start()
}

func (q *StatusQuiz) Restart() {
	q.submitter.Reset()
	q.state = q.machine.Restart(q.state)
}

// SelectAnswer records a Yes/No answer for one sub-question. Unknown keys are ignored.
func (q *StatusQuiz) SelectAnswer(which SubQuestion, answer domain.YesNo) {
	if answer != domain.Yes && answer != domain.No {
		return
	}
	q.state = q.machine.Select(q.state, func(c StatusChoice) StatusChoice {
		switch which {
		case LegalStatus:
			c.Q1 = answer
		case Compliance:
			c.Q2 = answer
		}
		return c
	})
}

func (q *StatusQuiz) Submit() {
	q.state = q.machine.Submit(q.state)
}

// SetOpinion records the deportation opinion; only accepted once feedback is shown.
func (q *StatusQuiz) SetOpinion(op domain.Opinion) {
	if !op.Valid() {
		return
	}
	q.state = q.machine.Annotate(q.state, func(c StatusChoice) StatusChoice {
		c.Opinion = op
		return c
	})
}

func (q *StatusQuiz) Advance() {
	before := q.state.Phase
	q.state = q.machine.Advance(q.state)
	if before != Finished && q.state.Phase == Finished {
		q.submitter.Submit(q.state.SessionID, StatusSubmission(q.state.SessionID, q.state.History, q.machine.Len()))
	}
}

func (q *StatusQuiz) State() StatusState { return q.state }

func (q *StatusQuiz) Len() int { return q.machine.Len() }

func (q *StatusQuiz) Current() (domain.Vignette, bool) { return q.machine.Item(q.state) }

// RevealedPoints is the score of the current vignette once feedback is shown.
func (q *StatusQuiz) RevealedPoints() (float64, bool) {
	v, ok := q.machine.Item(q.state)
	if !ok || !q.state.Revealed {
		return 0, false
	}
	return scoring.VignettePoints(v, q.state.Pending.Q1, q.state.Pending.Q2), true
}

// Score is the running total over finalized vignettes.
func (q *StatusQuiz) Score() float64 { return scoring.TotalScore(q.state.History) }

func (q *StatusQuiz) Results() StatusResults {
	impact := scoring.ScaleImpact(q.state.History)
	return StatusResults{
		Score:               scoring.TotalScore(q.state.History),
		TotalQuestions:      q.machine.Len(),
		DeportationYesCount: scoring.DeportationYesCount(q.state.History),
		ScaleImpact:         impact,
		ScaleLow:            scoring.FormatScale(impact.Low),
		ScaleHigh:           scoring.FormatScale(impact.High),
	}
}

func (q *StatusQuiz) Submission() SubmitResult { return q.submitter.Result() }

func (q *StatusQuiz) WaitSubmission(ctx context.Context) SubmitResult { return q.submitter.Wait(ctx) }
