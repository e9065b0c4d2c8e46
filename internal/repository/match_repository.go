package repository

import (
	"context"
	"errors"
	"time"

	"resume-matcher/internal/database"
	"resume-matcher/internal/domain/match"

	"github.com/google/uuid"
)

// StoredMatch is a match row joined with the job fields the listing needs.
type StoredMatch struct {
	JobID         uuid.UUID
	Title         string
	Company       string
	Score         int
	MissingSkills []string
	ApplyURL      string
	CreatedAt     time.Time
}

type MatchRepository interface {
	// Insert appends. Match history is never updated or deleted; a rerun
	// for the same pair produces a second row.
	Insert(ctx context.Context, m *match.Match) (uuid.UUID, error)
	// ListByResume returns the resume's matches ordered by score
	// descending, ties broken by ascending job id for determinism. Zero
	// matches is an empty slice, not an error.
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]StoredMatch, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Insert(ctx context.Context, m *match.Match) (uuid.UUID, error) {
	if m == nil {
		return uuid.Nil, errors.New("nil match")
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if m.MissingSkills == nil {
		m.MissingSkills = []string{}
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO matches (id, resume_id, job_id, score, semantic_similarity, skill_overlap, missing_skills, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		m.ID, m.ResumeID, m.JobID, m.Score, m.SemanticSimilarity, m.SkillOverlap, m.MissingSkills, m.CreatedAt,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return m.ID, nil
}

func (r *PostgresMatchRepository) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]StoredMatch, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.job_id, COALESCE(j.title, ''), COALESCE(j.company, ''), m.score,
			m.missing_skills, COALESCE(j.apply_url, ''), m.created_at
		 FROM matches m
		 LEFT JOIN jobs j ON j.id = m.job_id
		 WHERE m.resume_id = $1
		 ORDER BY m.score DESC, m.job_id ASC`,
		resumeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StoredMatch, 0)
	for rows.Next() {
		var sm StoredMatch
		if err := rows.Scan(&sm.JobID, &sm.Title, &sm.Company, &sm.Score,
			&sm.MissingSkills, &sm.ApplyURL, &sm.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
