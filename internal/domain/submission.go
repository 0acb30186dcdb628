package domain

// CrimeSubmission is the body posted when a crime quiz session finishes.
type CrimeSubmission struct {
	SessionID            string       `json:"sessionId"`
	AnswerHistory        []UserAnswer `json:"answerHistory"`
	CorrectCount         int          `json:"correctCount"`
	TotalQuestions       int          `json:"totalQuestions"`
	PerceptionGapPercent int          `json:"perceptionGapPercent"`
}

// StatusSubmission is the body posted when a status quiz session finishes.
type StatusSubmission struct {
	SessionID      string              `json:"sessionId"`
	Score          float64             `json:"score"`
	TotalQuestions int                 `json:"totalQuestions"`
	AnswerHistory  []AnswerHistoryItem `json:"answerHistory"`
	ScaleImpact    Range               `json:"scaleImpact"`
}

// Ack is the collection endpoint's answer to a recorded submission.
type Ack struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Persisted bool   `json:"-"`
}

// CrimeSessionRecord is a crime_sessions row.
type CrimeSessionRecord struct {
	SessionID            string
	CorrectCount         int
	TotalQuestions       int
	PerceptionGapPercent int
}

// CrimeResponseRecord is a crime_responses row.
type CrimeResponseRecord struct {
	SessionID  string
	QuestionID int
	UserAnswer string
	WasCorrect bool
}

// StatusSessionRecord is a sessions row.
type StatusSessionRecord struct {
	SessionID           string
	TotalScore          float64
	TotalQuestions      int
	DeportationYesCount int
	ScaleImpactLow      int64
	ScaleImpactHigh     int64
}

// StatusResponseRecord is a responses row.
type StatusResponseRecord struct {
	SessionID          string
	VignetteID         int
	UserQ1             string
	UserQ2             string
	DeportationOpinion string
	CorrectQ1          bool
	CorrectQ2          bool
}

// CrimeSessionStats aggregates crime_sessions.
type CrimeSessionStats struct {
	TotalSessions    int64   `json:"total_sessions"`
	AvgPerceptionGap float64 `json:"avg_perception_gap"`
	AvgAccuracy      float64 `json:"avg_accuracy"`
}

// CrimeQuestionStats aggregates crime_responses for one question.
type CrimeQuestionStats struct {
	QuestionID        int     `json:"question_id"`
	TotalResponses    int64   `json:"total_responses"`
	CorrectCount      int64   `json:"correct_count"`
	CorrectPercentage float64 `json:"correct_percentage"`
}

// CrimeStats is the crime aggregate payload.
type CrimeStats struct {
	Configured    bool                 `json:"configured"`
	Message       string               `json:"message,omitempty"`
	SessionStats  *CrimeSessionStats   `json:"sessionStats,omitempty"`
	QuestionStats []CrimeQuestionStats `json:"questionStats,omitempty"`
}

// StatusSessionStats aggregates sessions.
type StatusSessionStats struct {
	TotalSessions  int64   `json:"total_sessions"`
	AvgScore       float64 `json:"avg_score"`
	AvgDeportYes   float64 `json:"avg_deport_yes"`
	TotalDeportYes int64   `json:"total_deport_yes"`
}

// VignetteStats aggregates responses for one vignette.
type VignetteStats struct {
	VignetteID     int   `json:"vignette_id"`
	TotalResponses int64 `json:"total_responses"`
	Q1Correct      int64 `json:"q1_correct"`
	Q2Correct      int64 `json:"q2_correct"`
	DeportYes      int64 `json:"deport_yes"`
	DeportNo       int64 `json:"deport_no"`
	DeportUnsure   int64 `json:"deport_unsure"`
}

// StatusStats is the status aggregate payload.
type StatusStats struct {
	Configured    bool                `json:"configured"`
	Message       string              `json:"message,omitempty"`
	SessionStats  *StatusSessionStats `json:"sessionStats,omitempty"`
	VignetteStats []VignetteStats     `json:"vignetteStats,omitempty"`
}

// Insights combines both aggregates for the dashboard.
type Insights struct {
	Configured     bool        `json:"configured"`
	TotalResponses int64       `json:"totalResponses"`
	Status         StatusStats `json:"status"`
	Crime          CrimeStats  `json:"crime"`
}
