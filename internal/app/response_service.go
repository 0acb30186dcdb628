package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/golang/glog"

	"perception-quiz-service/internal/domain"
	"perception-quiz-service/internal/scoring"
)

const (
	// CrimeStatsKey and StatusStatsKey name the cached aggregates of each quiz.
	CrimeStatsKey  = "stats:crime"
	StatusStatsKey = "stats:status"

	msgNoDatabase    = "Response logged (no database configured)"
	msgSaved         = "Responses saved successfully"
	msgNotConfigured = "Database not configured"
)

// ResponseStore persists completed sessions and computes aggregates over them.
type ResponseStore interface {
	// SaveCrimeSession writes the summary row and all response rows atomically.
	SaveCrimeSession(ctx context.Context, session domain.CrimeSessionRecord, responses []domain.CrimeResponseRecord) error
	// SaveStatusSession writes the summary row and all response rows atomically.
	SaveStatusSession(ctx context.Context, session domain.StatusSessionRecord, responses []domain.StatusResponseRecord) error
	CrimeStats(ctx context.Context) (domain.CrimeStats, error)
	StatusStats(ctx context.Context) (domain.StatusStats, error)
	Close() error
}

// StatsCache memoizes serialized aggregates (in-memory, Redis, etc).
type StatsCache interface {
	GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) ([]byte, error)) ([]byte, error)
	Invalidate(ctx context.Context, key string) error
}

// Catalog resolves content items by id so correctness can be re-derived server side.
type Catalog interface {
	CrimeQuestion(id int) (domain.QuestionItem, bool)
	Vignette(id int) (domain.Vignette, bool)
}

// ResponseService is the collection endpoint: it records finished sessions and
// serves aggregates. A nil store runs it in degraded mode where submissions are
// acknowledged but never written.
type ResponseService struct {
	store   ResponseStore
	cache   StatsCache
	catalog Catalog
}

func NewResponseService(store ResponseStore, cache StatsCache, catalog Catalog) *ResponseService {
	return &ResponseService{store: store, cache: cache, catalog: catalog}
}

// Configured reports whether a backing store is present.
func (s *ResponseService) Configured() bool {
	return s.store != nil
}

// RecordCrime validates and stores a finished crime quiz session.
func (s *ResponseService) RecordCrime(ctx context.Context, sub domain.CrimeSubmission) (domain.Ack, error) {
	if sub.SessionID == "" {
		return domain.Ack{}, domain.ErrMissingSessionID
	}
	if sub.AnswerHistory == nil {
		return domain.Ack{}, domain.ErrMalformedHistory
	}
	if s.store == nil {
		glog.Infof("crime responses for session %s not stored: no database configured", sub.SessionID)
		return domain.Ack{Success: true, Message: msgNoDatabase}, nil
	}

	session := domain.CrimeSessionRecord{
		SessionID:            sub.SessionID,
		CorrectCount:         sub.CorrectCount,
		TotalQuestions:       sub.TotalQuestions,
		PerceptionGapPercent: sub.PerceptionGapPercent,
	}
	allKnown := true
	scored := make([]domain.UserAnswer, 0, len(sub.AnswerHistory))
	rows := make([]domain.CrimeResponseRecord, 0, len(sub.AnswerHistory))
	for _, a := range sub.AnswerHistory {
		correct := a.WasCorrect
		if q, ok := s.lookupQuestion(a.QuestionID); ok {
			correct = a.UserAnswer == q.CorrectAnswer
		} else {
			allKnown = false
		}
		scored = append(scored, domain.UserAnswer{QuestionID: a.QuestionID, UserAnswer: a.UserAnswer, WasCorrect: correct})
		rows = append(rows, domain.CrimeResponseRecord{
			SessionID:  sub.SessionID,
			QuestionID: a.QuestionID,
			UserAnswer: a.UserAnswer,
			WasCorrect: correct,
		})
	}
	// The summary must agree with the rows whenever the server scored all of them.
	if allKnown {
		if gap, err := scoring.PerceptionGap(scored); err == nil {
			session.CorrectCount = gap.CorrectCount
			session.TotalQuestions = gap.Total
			session.PerceptionGapPercent = gap.GapPercent
		}
	}

	if err := s.store.SaveCrimeSession(ctx, session, rows); err != nil {
		return domain.Ack{}, fmt.Errorf("save crime session %s: %w", sub.SessionID, err)
	}
	s.invalidate(ctx, CrimeStatsKey)
	glog.V(2).Infof("stored crime session %s with %d responses", sub.SessionID, len(rows))
	return domain.Ack{Success: true, Message: msgSaved, Persisted: true}, nil
}

// RecordStatus validates and stores a finished status quiz session.
func (s *ResponseService) RecordStatus(ctx context.Context, sub domain.StatusSubmission) (domain.Ack, error) {
	if sub.SessionID == "" {
		return domain.Ack{}, domain.ErrMissingSessionID
	}
	if sub.AnswerHistory == nil {
		return domain.Ack{}, domain.ErrMalformedHistory
	}
	if s.store == nil {
		glog.Infof("status responses for session %s not stored: no database configured", sub.SessionID)
		return domain.Ack{Success: true, Message: msgNoDatabase}, nil
	}

	allKnown := true
	score := 0.0
	var impact domain.Range
	rows := make([]domain.StatusResponseRecord, 0, len(sub.AnswerHistory))
	for _, item := range sub.AnswerHistory {
		v, ok := s.lookupVignette(item.ID)
		if !ok {
			allKnown = false
			v = item.Vignette
		}
		q1, q2 := v.Q1.Answer, v.Q2.Answer
		score += scoring.VignettePoints(v, item.UserQ1, item.UserQ2)
		if item.DeportationOpinion == domain.OpinionYes {
			impact.Low += v.AffectedPopulation.Low
			impact.High += v.AffectedPopulation.High
		}
		rows = append(rows, domain.StatusResponseRecord{
			SessionID:          sub.SessionID,
			VignetteID:         item.ID,
			UserQ1:             string(item.UserQ1),
			UserQ2:             string(item.UserQ2),
			DeportationOpinion: string(item.DeportationOpinion),
			CorrectQ1:          item.UserQ1 == q1,
			CorrectQ2:          item.UserQ2 == q2,
		})
	}
	session := domain.StatusSessionRecord{
		SessionID:           sub.SessionID,
		TotalScore:          sub.Score,
		TotalQuestions:      sub.TotalQuestions,
		DeportationYesCount: scoring.DeportationYesCount(sub.AnswerHistory),
		ScaleImpactLow:      sub.ScaleImpact.Low,
		ScaleImpactHigh:     sub.ScaleImpact.High,
	}

	if allKnown && len(rows) > 0 {
		session.TotalScore = score
		session.ScaleImpactLow, session.ScaleImpactHigh = impact.Low, impact.High
	}

	if err := s.store.SaveStatusSession(ctx, session, rows); err != nil {
		return domain.Ack{}, fmt.Errorf("save status session %s: %w", sub.SessionID, err)
	}
	s.invalidate(ctx, StatusStatsKey)
	glog.V(2).Infof("stored status session %s with %d responses", sub.SessionID, len(rows))
	return domain.Ack{Success: true, Message: msgSaved, Persisted: true}, nil
}

// SendCrime adapts RecordCrime to an in-process submission sender.
func (s *ResponseService) SendCrime(ctx context.Context, sub domain.CrimeSubmission) error {
	_, err := s.RecordCrime(ctx, sub)
	return err
}

// SendStatus adapts RecordStatus to an in-process submission sender.
func (s *ResponseService) SendStatus(ctx context.Context, sub domain.StatusSubmission) error {
	_, err := s.RecordStatus(ctx, sub)
	return err
}

// CrimeStats returns the crime aggregates, or configured=false without a store.
func (s *ResponseService) CrimeStats(ctx context.Context) (domain.CrimeStats, error) {
	if s.store == nil {
		return domain.CrimeStats{Configured: false, Message: msgNotConfigured}, nil
	}
	var stats domain.CrimeStats
	err := s.cached(ctx, CrimeStatsKey, &stats, func(ctx context.Context) (any, error) {
		return s.store.CrimeStats(ctx)
	})
	if err != nil {
		return domain.CrimeStats{}, fmt.Errorf("crime stats: %w", err)
	}
	stats.Configured = true
	return stats, nil
}

// StatusStats returns the status aggregates, or configured=false without a store.
func (s *ResponseService) StatusStats(ctx context.Context) (domain.StatusStats, error) {
	if s.store == nil {
		return domain.StatusStats{Configured: false, Message: msgNotConfigured}, nil
	}
	var stats domain.StatusStats
	err := s.cached(ctx, StatusStatsKey, &stats, func(ctx context.Context) (any, error) {
		return s.store.StatusStats(ctx)
	})
	if err != nil {
		return domain.StatusStats{}, fmt.Errorf("status stats: %w", err)
	}
	stats.Configured = true
	return stats, nil
}

// Insights combines both aggregates with the number of completed sessions.
func (s *ResponseService) Insights(ctx context.Context) (domain.Insights, error) {
	status, err := s.StatusStats(ctx)
	if err != nil {
		return domain.Insights{}, err
	}
	crime, err := s.CrimeStats(ctx)
	if err != nil {
		return domain.Insights{}, err
	}

	out := domain.Insights{Configured: s.Configured(), Status: status, Crime: crime}
	if status.SessionStats != nil {
		out.TotalResponses += status.SessionStats.TotalSessions
	}
	if crime.SessionStats != nil {
		out.TotalResponses += crime.SessionStats.TotalSessions
	}
	return out, nil
}

// Close releases the backing store, if any.
func (s *ResponseService) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

func (s *ResponseService) cached(ctx context.Context, key string, out any, load func(ctx context.Context) (any, error)) error {
	fill := func(ctx context.Context) ([]byte, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	}

	var (
		raw []byte
		err error
	)
	if s.cache != nil {
		raw, err = s.cache.GetOrLoad(ctx, key, fill)
	} else {
		raw, err = fill(ctx)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (s *ResponseService) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, key); err != nil {
		glog.Errorf("invalidate %s: %v", key, err)
	}
}

func (s *ResponseService) lookupQuestion(id int) (domain.QuestionItem, bool) {
	if s.catalog == nil {
		return domain.QuestionItem{}, false
	}
	return s.catalog.CrimeQuestion(id)
}

func (s *ResponseService) lookupVignette(id int) (domain.Vignette, bool) {
	if s.catalog == nil {
		return domain.Vignette{}, false
	}
	return s.catalog.Vignette(id)
}
