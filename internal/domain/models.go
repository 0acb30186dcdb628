package domain

// QuizKind names one of the two quizzes served by the application.
type QuizKind string

const (
	QuizCrime  QuizKind = "crime"
	QuizStatus QuizKind = "status"
)

// Surprise rates how unexpected a crime statistic typically is to respondents.
type Surprise string

const (
	SurpriseLow    Surprise = "low"
	SurpriseMedium Surprise = "medium"
	SurpriseHigh   Surprise = "high"
)

// ConflictType classifies how legal status and compliance relate in a vignette.
type ConflictType string

const (
	ConflictConsistent ConflictType = "Consistent"
	ConflictParadox    ConflictType = "Paradox"
	ConflictTragedy    ConflictType = "Tragedy"
	ConflictNuanced    ConflictType = "Nuanced"
)

// YesNo is the answer to a vignette sub-question. Empty means unanswered.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// Opinion is the unscored deportation opinion recorded per vignette.
type Opinion string

const (
	OpinionYes    Opinion = "Yes"
	OpinionNo     Opinion = "No"
	OpinionUnsure Opinion = "Unsure"
)

// Valid reports whether o is one of the three accepted opinions.
func (o Opinion) Valid() bool {
	return o == OpinionYes || o == OpinionNo || o == OpinionUnsure
}

// Source is a citation attached to content items.
type Source struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Option is one selectable answer of a crime question.
type Option struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Correct bool   `json:"isCorrect"`
}

// QuestionItem is an immutable crime quiz question.
type QuestionItem struct {
	ID            int      `json:"id"`
	Category      string   `json:"category"`
	Prompt        string   `json:"question"`
	Context       string   `json:"context,omitempty"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	ActualData    string   `json:"actualData"`
	Explanation   string   `json:"explanation"`
	Reflection    string   `json:"reflection,omitempty"`
	Surprise      Surprise `json:"surprise"`
	Sources       []Source `json:"sources"`
}

// Option returns the option carrying value, if any.
func (q QuestionItem) Option(value string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// SubQuestion is a Yes/No question asked about a vignette.
type SubQuestion struct {
	Text     string `json:"text"`
	Answer   YesNo  `json:"answer"`
	Feedback string `json:"feedback"`
}

// Population is an estimated range of people affected by a vignette's situation.
type Population struct {
	Low  int64  `json:"low"`
	High int64  `json:"high"`
	Unit string `json:"unit"`
}

// Vignette is an immutable status quiz scenario.
type Vignette struct {
	ID                 int          `json:"id"`
	Title              string       `json:"title"`
	Person             string       `json:"person"`
	Scenario           string       `json:"scenario"`
	Q1                 SubQuestion  `json:"q1"` // legal status
	Q2                 SubQuestion  `json:"q2"` // compliance
	Explanation        string       `json:"explanation"`
	ConflictType       ConflictType `json:"conflictType"`
	ConflictText       string       `json:"conflictText"`
	ScaleEstimate      string       `json:"scaleEstimate"`
	ScaleDescription   string       `json:"scaleDescription"`
	AffectedPopulation Population   `json:"affectedPopulation"`
	Sources            []Source     `json:"sources"`
}

// PushbackItem pairs a common objection with a response.
type PushbackItem struct {
	Statement string `json:"statement"`
	Response  string `json:"response"`
}

// UserAnswer is one finalized crime quiz answer.
type UserAnswer struct {
	QuestionID int    `json:"questionId"`
	UserAnswer string `json:"userAnswer"`
	WasCorrect bool   `json:"wasCorrect"`
}

// AnswerHistoryItem is one finalized status quiz answer, carrying a copy of its vignette.
type AnswerHistoryItem struct {
	Vignette
	UserQ1             YesNo   `json:"userQ1"`
	UserQ2             YesNo   `json:"userQ2"`
	DeportationOpinion Opinion `json:"deportationOpinion"`
	Points             float64 `json:"points"`
}

// Range is an additive low/high population estimate.
type Range struct {
	Low  int64 `json:"low"`
	High int64 `json:"high"`
}
