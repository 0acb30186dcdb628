package postgres

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"

	"perception-quiz-service/internal/domain"
)

// ResponseStore persists quiz sessions in Postgres.
type ResponseStore struct {
	pool *pgxpool.Pool
}

func NewResponseStore(pool *pgxpool.Pool) *ResponseStore {
	return &ResponseStore{pool: pool}
}

// Connect opens a pool for url.
func Connect(ctx context.Context, url string) (*ResponseStore, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "connect postgres")
	}
	return NewResponseStore(pool), nil
}

func (s *ResponseStore) SaveCrimeSession(ctx context.Context, session domain.CrimeSessionRecord, responses []domain.CrimeResponseRecord) error {
	return s.pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO crime_sessions (session_id, correct_count, total_questions, perception_gap_percent)
			VALUES ($1, $2, $3, $4)`,
			session.SessionID, session.CorrectCount, session.TotalQuestions, session.PerceptionGapPercent)
		if err != nil {
			return errors.Wrap(err, "insert crime session")
		}

		batch := &pgx.Batch{}
		for _, r := range responses {
			batch.Queue(`
				INSERT INTO crime_responses (session_id, question_id, user_answer, was_correct)
				VALUES ($1, $2, $3, $4)`,
				r.SessionID, r.QuestionID, r.UserAnswer, r.WasCorrect)
		}
		return execBatch(ctx, tx, batch, "insert crime response")
	})
}

func (s *ResponseStore) SaveStatusSession(ctx context.Context, session domain.StatusSessionRecord, responses []domain.StatusResponseRecord) error {
	return s.pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO sessions (session_id, total_score, total_questions, deportation_yes_count, scale_impact_low, scale_impact_high)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			session.SessionID, session.TotalScore, session.TotalQuestions, session.DeportationYesCount,
			session.ScaleImpactLow, session.ScaleImpactHigh)
		if err != nil {
			return errors.Wrap(err, "insert session")
		}

		batch := &pgx.Batch{}
		for _, r := range responses {
			batch.Queue(`
				INSERT INTO responses (session_id, vignette_id, user_q1, user_q2, deportation_opinion, correct_q1, correct_q2)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				r.SessionID, r.VignetteID, r.UserQ1, r.UserQ2, r.DeportationOpinion, r.CorrectQ1, r.CorrectQ2)
		}
		return execBatch(ctx, tx, batch, "insert response")
	})
}

// execBatch sends queued inserts in one round trip; rows are written in queue order.
func execBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch, what string) error {
	if batch.Len() == 0 {
		return nil
	}
	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return errors.Wrapf(err, "%s %d", what, i)
		}
	}
	return errors.Wrap(br.Close(), what)
}

func (s *ResponseStore) CrimeStats(ctx context.Context) (domain.CrimeStats, error) {
	var sess domain.CrimeSessionStats
	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(ROUND(AVG(perception_gap_percent)::numeric, 1), 0)::float8,
			COALESCE(ROUND(AVG(correct_count::numeric / NULLIF(total_questions, 0) * 100), 1), 0)::float8
		FROM crime_sessions`).Scan(&sess.TotalSessions, &sess.AvgPerceptionGap, &sess.AvgAccuracy)
	if err != nil {
		return domain.CrimeStats{}, errors.Wrap(err, "query crime session stats")
	}

	rows, err := s.pool.Query(ctx, `
		SELECT
			question_id,
			COUNT(*),
			SUM(CASE WHEN was_correct THEN 1 ELSE 0 END),
			ROUND(AVG(CASE WHEN was_correct THEN 1 ELSE 0 END) * 100, 1)::float8
		FROM crime_responses
		GROUP BY question_id
		ORDER BY question_id`)
	if err != nil {
		return domain.CrimeStats{}, errors.Wrap(err, "query crime question stats")
	}
	defer rows.Close()

	questions := []domain.CrimeQuestionStats{}
	for rows.Next() {
		var q domain.CrimeQuestionStats
		if err := rows.Scan(&q.QuestionID, &q.TotalResponses, &q.CorrectCount, &q.CorrectPercentage); err != nil {
			return domain.CrimeStats{}, errors.Wrap(err, "scan crime question stats")
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return domain.CrimeStats{}, errors.Wrap(err, "iterate crime question stats")
	}

	return domain.CrimeStats{Configured: true, SessionStats: &sess, QuestionStats: questions}, nil
}

func (s *ResponseStore) StatusStats(ctx context.Context) (domain.StatusStats, error) {
	var sess domain.StatusSessionStats
	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(AVG(total_score), 0)::float8,
			COALESCE(AVG(deportation_yes_count), 0)::float8,
			COALESCE(SUM(deportation_yes_count), 0)::bigint
		FROM sessions`).Scan(&sess.TotalSessions, &sess.AvgScore, &sess.AvgDeportYes, &sess.TotalDeportYes)
	if err != nil {
		return domain.StatusStats{}, errors.Wrap(err, "query session stats")
	}

	rows, err := s.pool.Query(ctx, `
		SELECT
			vignette_id,
			COUNT(*),
			SUM(CASE WHEN correct_q1 THEN 1 ELSE 0 END),
			SUM(CASE WHEN correct_q2 THEN 1 ELSE 0 END),
			SUM(CASE WHEN deportation_opinion = 'Yes' THEN 1 ELSE 0 END),
			SUM(CASE WHEN deportation_opinion = 'No' THEN 1 ELSE 0 END),
			SUM(CASE WHEN deportation_opinion = 'Unsure' THEN 1 ELSE 0 END)
		FROM responses
		GROUP BY vignette_id
		ORDER BY vignette_id`)
	if err != nil {
		return domain.StatusStats{}, errors.Wrap(err, "query vignette stats")
	}
	defer rows.Close()

	vignettes := []domain.VignetteStats{}
	for rows.Next() {
		var v domain.VignetteStats
		if err := rows.Scan(&v.VignetteID, &v.TotalResponses, &v.Q1Correct, &v.Q2Correct, &v.DeportYes, &v.DeportNo, &v.DeportUnsure); err != nil {
			return domain.StatusStats{}, errors.Wrap(err, "scan vignette stats")
		}
		vignettes = append(vignettes, v)
	}
	if err := rows.Err(); err != nil {
		return domain.StatusStats{}, errors.Wrap(err, "iterate vignette stats")
	}

	return domain.StatusStats{Configured: true, SessionStats: &sess, VignetteStats: vignettes}, nil
}

func (s *ResponseStore) Close() error {
	s.pool.Close()
	return nil
}
