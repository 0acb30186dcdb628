package http

import (
	"encoding/json"
	"fmt"

	"perception-quiz-service/internal/domain"
	"perception-quiz-service/internal/quiz"
	"perception-quiz-service/internal/scoring"
)

// playSession adapts one quiz controller to websocket messages. Implementations
// are driven from a single read loop and are not safe for concurrent use.
type playSession interface {
	// apply handles one inbound event. Unknown or malformed events are errors.
	apply(msgType string, payload json.RawMessage) error
	view() any
}

type selectPayload struct {
	Value  string `json:"value"`
	Which  string `json:"which"`
	Answer string `json:"answer"`
}

type opinionPayload struct {
	Opinion string `json:"opinion"`
}

type crimeView struct {
	Phase      string               `json:"phase"`
	SessionID  string               `json:"sessionId"`
	Index      int                  `json:"index"`
	Total      int                  `json:"total"`
	Revealed   bool                 `json:"revealed"`
	Selected   string               `json:"selected,omitempty"`
	Question   *domain.QuestionItem `json:"question,omitempty"`
	Results    *scoring.Gap         `json:"results,omitempty"`
	Submission string               `json:"submission"`
}

type crimePlay struct {
	q *quiz.CrimeQuiz
}

func (p *crimePlay) apply(msgType string, payload json.RawMessage) error {
	switch msgType {
	case "start":
		p.q.Start()
	case "restart":
		p.q.Restart()
	case "select":
		var sel selectPayload
		if err := json.Unmarshal(payload, &sel); err != nil {
			return fmt.Errorf("invalid select payload")
		}
		if item, ok := p.q.Current(); ok {
			if _, ok := item.Option(sel.Value); !ok {
				return fmt.Errorf("unknown option %q", sel.Value)
			}
		}
		p.q.Select(sel.Value)
	case "submit":
		p.q.Submit()
	case "next":
		p.q.Advance()
	default:
		return fmt.Errorf("unsupported message type")
	}
	return nil
}

func (p *crimePlay) view() any {
	st := p.q.State()
	v := crimeView{
		Phase:      st.Phase.String(),
		SessionID:  st.SessionID,
		Index:      st.Index,
		Total:      p.q.Len(),
		Revealed:   st.Revealed,
		Selected:   st.Pending,
		Submission: p.q.Submission().Status.String(),
	}
	if item, ok := p.q.Current(); ok && st.Phase == quiz.InProgress {
		if !st.Revealed {
			item = hideAnswer(item)
		}
		v.Question = &item
	}
	if st.Phase == quiz.Finished {
		if gap, err := p.q.Results(); err == nil {
			v.Results = &gap
		}
	}
	return v
}

type statusView struct {
	Phase      string              `json:"phase"`
	SessionID  string              `json:"sessionId"`
	Index      int                 `json:"index"`
	Total      int                 `json:"total"`
	Revealed   bool                `json:"revealed"`
	Choice     quiz.StatusChoice   `json:"choice"`
	Points     *float64            `json:"points,omitempty"`
	Score      float64             `json:"score"`
	Vignette   *domain.Vignette    `json:"vignette,omitempty"`
	Results    *quiz.StatusResults `json:"results,omitempty"`
	Submission string              `json:"submission"`
}

type statusPlay struct {
	q *quiz.StatusQuiz
}

func (p *statusPlay) apply(msgType string, payload json.RawMessage) error {
	switch msgType {
	case "start":
		p.q.Start()
	case "restart":
		p.q.Restart()
	case "select":
		var sel selectPayload
		if err := json.Unmarshal(payload, &sel); err != nil {
			return fmt.Errorf("invalid select payload")
		}
		p.q.SelectAnswer(quiz.SubQuestion(sel.Which), domain.YesNo(sel.Answer))
	case "opinion":
		var op opinionPayload
		if err := json.Unmarshal(payload, &op); err != nil {
			return fmt.Errorf("invalid opinion payload")
		}
		p.q.SetOpinion(domain.Opinion(op.Opinion))
	case "submit":
		p.q.Submit()
	case "next":
		p.q.Advance()
	default:
		return fmt.Errorf("unsupported message type")
	}
	return nil
}

func (p *statusPlay) view() any {
	st := p.q.State()
	v := statusView{
		Phase:      st.Phase.String(),
		SessionID:  st.SessionID,
		Index:      st.Index,
		Total:      p.q.Len(),
		Revealed:   st.Revealed,
		Choice:     st.Pending,
		Score:      p.q.Score(),
		Submission: p.q.Submission().Status.String(),
	}
	if item, ok := p.q.Current(); ok && st.Phase == quiz.InProgress {
		if !st.Revealed {
			item = hideVerdict(item)
		}
		v.Vignette = &item
	}
	if pts, ok := p.q.RevealedPoints(); ok {
		v.Points = &pts
	}
	if st.Phase == quiz.Finished {
		res := p.q.Results()
		v.Results = &res
	}
	return v
}

// hideAnswer strips everything that gives the answer away before reveal.
func hideAnswer(q domain.QuestionItem) domain.QuestionItem {
	opts := make([]domain.Option, len(q.Options))
	for i, o := range q.Options {
		opts[i] = domain.Option{Label: o.Label, Value: o.Value}
	}
	q.Options = opts
	q.CorrectAnswer = ""
	q.ActualData = ""
	q.Explanation = ""
	q.Reflection = ""
	q.Surprise = ""
	q.Sources = nil
	return q
}

func hideVerdict(v domain.Vignette) domain.Vignette {
	v.Q1 = domain.SubQuestion{Text: v.Q1.Text}
	v.Q2 = domain.SubQuestion{Text: v.Q2.Text}
	v.Explanation = ""
	v.ConflictType = ""
	v.ConflictText = ""
	v.ScaleEstimate = ""
	v.ScaleDescription = ""
	v.AffectedPopulation = domain.Population{}
	v.Sources = nil
	return v
}
