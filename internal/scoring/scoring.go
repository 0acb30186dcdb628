// Package scoring derives summary metrics from completed answer histories.
package scoring

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"perception-quiz-service/internal/domain"
)

// Gap summarizes how far a respondent's intuitions were from the data.
type Gap struct {
	Total        int `json:"totalQuestions"`
	CorrectCount int `json:"correctIntuitions"`
	GapPercent   int `json:"gapPercentage"`
}

// PerceptionGap counts correct answers and the rounded share of misses.
// It is undefined for an empty history and returns domain.ErrEmptyHistory.
func PerceptionGap(history []domain.UserAnswer) (Gap, error) {
	if len(history) == 0 {
		return Gap{}, domain.ErrEmptyHistory
	}
	correct := 0
	for _, a := range history {
		if a.WasCorrect {
			correct++
		}
	}
	n := len(history)
	return Gap{
		Total:        n,
		CorrectCount: correct,
		GapPercent:   roundHalfUp(float64(n-correct) / float64(n) * 100),
	}, nil
}

// ScaleImpact sums the affected population of every vignette the respondent
// would deport. Overlapping populations are not deduplicated.
func ScaleImpact(history []domain.AnswerHistoryItem) domain.Range {
	var out domain.Range
	for _, item := range history {
		if item.DeportationOpinion != domain.OpinionYes {
			continue
		}
		out.Low += item.AffectedPopulation.Low
		out.High += item.AffectedPopulation.High
	}
	return out
}

// VignettePoints awards half a point per correctly answered sub-question.
func VignettePoints(v domain.Vignette, q1, q2 domain.YesNo) float64 {
	points := 0.0
	if q1 == v.Q1.Answer {
		points += 0.5
	}
	if q2 == v.Q2.Answer {
		points += 0.5
	}
	return points
}

// TotalScore sums the points of a status history.
func TotalScore(history []domain.AnswerHistoryItem) float64 {
	total := 0.0
	for _, item := range history {
		total += item.Points
	}
	return total
}

// DeportationYesCount counts items with a "Yes" deportation opinion.
func DeportationYesCount(history []domain.AnswerHistoryItem) int {
	n := 0
	for _, item := range history {
		if item.DeportationOpinion == domain.OpinionYes {
			n++
		}
	}
	return n
}

// Accuracy returns correct/total as a percentage with one decimal, or 0 when total is 0.
func Accuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}

// FormatScale renders population sizes for display: "2.5 million", "2,000+", "999".
func FormatScale(n int64) string {
	switch {
	case n >= 1_000_000:
		millions := math.Round(float64(n)/1_000_000*10) / 10
		s := strconv.FormatFloat(millions, 'f', 1, 64)
		return strings.TrimSuffix(s, ".0") + " million"
	case n >= 1_000:
		thousands := int64(roundHalfUp(float64(n) / 1_000))
		return humanize.Comma(thousands) + ",000+"
	default:
		return humanize.Comma(n)
	}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
