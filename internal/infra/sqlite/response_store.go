// Package sqlite is a single-file alternative to the Postgres store, built on
// gorm with the pure-Go SQLite driver.
package sqlite

import (
	"context"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"perception-quiz-service/internal/domain"
)

type crimeSession struct {
	ID                   uint   `gorm:"primaryKey"`
	SessionID            string `gorm:"column:session_id;uniqueIndex;not null"`
	CorrectCount         int    `gorm:"column:correct_count;not null"`
	TotalQuestions       int    `gorm:"column:total_questions;not null"`
	PerceptionGapPercent int    `gorm:"column:perception_gap_percent;not null"`
	CreatedAt            time.Time
}

func (crimeSession) TableName() string { return "crime_sessions" }

type crimeResponse struct {
	ID         uint   `gorm:"primaryKey"`
	SessionID  string `gorm:"column:session_id;index;not null"`
	QuestionID int    `gorm:"column:question_id;index;not null"`
	UserAnswer string `gorm:"column:user_answer;not null"`
	WasCorrect bool   `gorm:"column:was_correct;not null"`
	CreatedAt  time.Time
}

func (crimeResponse) TableName() string { return "crime_responses" }

type statusSession struct {
	ID                  uint    `gorm:"primaryKey"`
	SessionID           string  `gorm:"column:session_id;uniqueIndex;not null"`
	TotalScore          float64 `gorm:"column:total_score;not null"`
	TotalQuestions      int     `gorm:"column:total_questions;not null"`
	DeportationYesCount int     `gorm:"column:deportation_yes_count;not null"`
	ScaleImpactLow      int64   `gorm:"column:scale_impact_low;not null"`
	ScaleImpactHigh     int64   `gorm:"column:scale_impact_high;not null"`
	CreatedAt           time.Time
}

func (statusSession) TableName() string { return "sessions" }

type statusResponse struct {
	ID                 uint   `gorm:"primaryKey"`
	SessionID          string `gorm:"column:session_id;index;not null"`
	VignetteID         int    `gorm:"column:vignette_id;index;not null"`
	UserQ1             string `gorm:"column:user_q1;not null"`
	UserQ2             string `gorm:"column:user_q2;not null"`
	DeportationOpinion string `gorm:"column:deportation_opinion;not null"`
	CorrectQ1          bool   `gorm:"column:correct_q1;not null"`
	CorrectQ2          bool   `gorm:"column:correct_q2;not null"`
	CreatedAt          time.Time
}

func (statusResponse) TableName() string { return "responses" }

// ResponseStore persists quiz sessions in a SQLite file.
type ResponseStore struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*ResponseStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", path)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "sqlite handle")
	}
	// One connection keeps :memory: databases shared and serializes writers.
	sqlDB.SetMaxOpenConns(1)
	return &ResponseStore{db: db}, nil
}

// AutoMigrate creates or updates the four tables.
func (s *ResponseStore) AutoMigrate() error {
	return errors.Wrap(s.db.AutoMigrate(
		&crimeSession{},
		&crimeResponse{},
		&statusSession{},
		&statusResponse{},
	), "sqlite automigrate")
}

func (s *ResponseStore) SaveCrimeSession(ctx context.Context, session domain.CrimeSessionRecord, responses []domain.CrimeResponseRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := crimeSession{
			SessionID:            session.SessionID,
			CorrectCount:         session.CorrectCount,
			TotalQuestions:       session.TotalQuestions,
			PerceptionGapPercent: session.PerceptionGapPercent,
		}
		if err := tx.Create(&row).Error; err != nil {
			return errors.Wrap(err, "insert crime session")
		}
		if len(responses) == 0 {
			return nil
		}
		rows := make([]crimeResponse, 0, len(responses))
		for _, r := range responses {
			rows = append(rows, crimeResponse{
				SessionID:  r.SessionID,
				QuestionID: r.QuestionID,
				UserAnswer: r.UserAnswer,
				WasCorrect: r.WasCorrect,
			})
		}
		return errors.Wrap(tx.Create(&rows).Error, "insert crime responses")
	})
}

func (s *ResponseStore) SaveStatusSession(ctx context.Context, session domain.StatusSessionRecord, responses []domain.StatusResponseRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := statusSession{
			SessionID:           session.SessionID,
			TotalScore:          session.TotalScore,
			TotalQuestions:      session.TotalQuestions,
			DeportationYesCount: session.DeportationYesCount,
			ScaleImpactLow:      session.ScaleImpactLow,
			ScaleImpactHigh:     session.ScaleImpactHigh,
		}
		if err := tx.Create(&row).Error; err != nil {
			return errors.Wrap(err, "insert session")
		}
		if len(responses) == 0 {
			return nil
		}
		rows := make([]statusResponse, 0, len(responses))
		for _, r := range responses {
			rows = append(rows, statusResponse{
				SessionID:          r.SessionID,
				VignetteID:         r.VignetteID,
				UserQ1:             r.UserQ1,
				UserQ2:             r.UserQ2,
				DeportationOpinion: r.DeportationOpinion,
				CorrectQ1:          r.CorrectQ1,
				CorrectQ2:          r.CorrectQ2,
			})
		}
		return errors.Wrap(tx.Create(&rows).Error, "insert responses")
	})
}

type crimeSessionRow struct {
	TotalSessions    int64   `gorm:"column:total_sessions"`
	AvgPerceptionGap float64 `gorm:"column:avg_perception_gap"`
	AvgAccuracy      float64 `gorm:"column:avg_accuracy"`
}

type crimeQuestionRow struct {
	QuestionID        int     `gorm:"column:question_id"`
	TotalResponses    int64   `gorm:"column:total_responses"`
	CorrectCount      int64   `gorm:"column:correct_count"`
	CorrectPercentage float64 `gorm:"column:correct_percentage"`
}

func (s *ResponseStore) CrimeStats(ctx context.Context) (domain.CrimeStats, error) {
	db := s.db.WithContext(ctx)

	var sess crimeSessionRow
	err := db.Model(&crimeSession{}).
		Select(`COUNT(*) AS total_sessions,
			COALESCE(ROUND(AVG(perception_gap_percent), 1), 0) AS avg_perception_gap,
			COALESCE(ROUND(AVG(CAST(correct_count AS REAL) / NULLIF(total_questions, 0) * 100), 1), 0) AS avg_accuracy`).
		Scan(&sess).Error
	if err != nil {
		return domain.CrimeStats{}, errors.Wrap(err, "query crime session stats")
	}

	var rows []crimeQuestionRow
	err = db.Model(&crimeResponse{}).
		Select(`question_id,
			COUNT(*) AS total_responses,
			SUM(CASE WHEN was_correct THEN 1 ELSE 0 END) AS correct_count,
			ROUND(AVG(CASE WHEN was_correct THEN 1.0 ELSE 0.0 END) * 100, 1) AS correct_percentage`).
		Group("question_id").
		Order("question_id").
		Scan(&rows).Error
	if err != nil {
		return domain.CrimeStats{}, errors.Wrap(err, "query crime question stats")
	}

	questions := make([]domain.CrimeQuestionStats, 0, len(rows))
	for _, r := range rows {
		questions = append(questions, domain.CrimeQuestionStats(r))
	}
	return domain.CrimeStats{
		Configured:    true,
		SessionStats:  &domain.CrimeSessionStats{TotalSessions: sess.TotalSessions, AvgPerceptionGap: sess.AvgPerceptionGap, AvgAccuracy: sess.AvgAccuracy},
		QuestionStats: questions,
	}, nil
}

type statusSessionRow struct {
	TotalSessions  int64   `gorm:"column:total_sessions"`
	AvgScore       float64 `gorm:"column:avg_score"`
	AvgDeportYes   float64 `gorm:"column:avg_deport_yes"`
	TotalDeportYes int64   `gorm:"column:total_deport_yes"`
}

type vignetteRow struct {
	VignetteID     int   `gorm:"column:vignette_id"`
	TotalResponses int64 `gorm:"column:total_responses"`
	Q1Correct      int64 `gorm:"column:q1_correct"`
	Q2Correct      int64 `gorm:"column:q2_correct"`
	DeportYes      int64 `gorm:"column:deport_yes"`
	DeportNo       int64 `gorm:"column:deport_no"`
	DeportUnsure   int64 `gorm:"column:deport_unsure"`
}

func (s *ResponseStore) StatusStats(ctx context.Context) (domain.StatusStats, error) {
	db := s.db.WithContext(ctx)

	var sess statusSessionRow
	err := db.Model(&statusSession{}).
		Select(`COUNT(*) AS total_sessions,
			COALESCE(AVG(total_score), 0) AS avg_score,
			COALESCE(AVG(deportation_yes_count), 0) AS avg_deport_yes,
			COALESCE(SUM(deportation_yes_count), 0) AS total_deport_yes`).
		Scan(&sess).Error
	if err != nil {
		return domain.StatusStats{}, errors.Wrap(err, "query session stats")
	}

	var rows []vignetteRow
	err = db.Model(&statusResponse{}).
		Select(`vignette_id,
			COUNT(*) AS total_responses,
			SUM(CASE WHEN correct_q1 THEN 1 ELSE 0 END) AS q1_correct,
			SUM(CASE WHEN correct_q2 THEN 1 ELSE 0 END) AS q2_correct,
			SUM(CASE WHEN deportation_opinion = 'Yes' THEN 1 ELSE 0 END) AS deport_yes,
			SUM(CASE WHEN deportation_opinion = 'No' THEN 1 ELSE 0 END) AS deport_no,
			SUM(CASE WHEN deportation_opinion = 'Unsure' THEN 1 ELSE 0 END) AS deport_unsure`).
		Group("vignette_id").
		Order("vignette_id").
		Scan(&rows).Error
	if err != nil {
		return domain.StatusStats{}, errors.Wrap(err, "query vignette stats")
	}

	vignettes := make([]domain.VignetteStats, 0, len(rows))
	for _, r := range rows {
		vignettes = append(vignettes, domain.VignetteStats(r))
	}
	return domain.StatusStats{
		Configured:    true,
		SessionStats:  &domain.StatusSessionStats{TotalSessions: sess.TotalSessions, AvgScore: sess.AvgScore, AvgDeportYes: sess.AvgDeportYes, TotalDeportYes: sess.TotalDeportYes},
		VignetteStats: vignettes,
	}, nil
}

func (s *ResponseStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
