package repository

import (
	"context"
	"errors"
	"time"

	"resume-matcher/internal/database"
	"resume-matcher/internal/domain/resume"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Insert(ctx context.Context, r *resume.Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ListAll(ctx context.Context) ([]resume.Resume, error)
	UpdateEmbedding(ctx context.Context, resumeID uuid.UUID, vector []float32) error
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Insert(ctx context.Context, res *resume.Resume) error {
	if res == nil {
		return errors.New("nil resume")
	}
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}
	if res.Skills == nil {
		res.Skills = []string{}
	}

	emb, err := encodeVector(res.Embedding)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO resumes (id, text, skills, embedding, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		res.ID, res.Text, res.Skills, emb, res.CreatedAt,
	)
	return err
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	var res resume.Resume
	var emb string

	row := r.db.QueryRow(ctx,
		`SELECT id, text, skills, COALESCE(embedding::text, ''), created_at
		 FROM resumes WHERE id = $1`,
		id,
	)
	if err := row.Scan(&res.ID, &res.Text, &res.Skills, &emb, &res.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, err
	}
	res.Embedding = decodeVector(emb)
	return res, nil
}

func (r *PostgresResumeRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM resumes WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresResumeRepository) ListAll(ctx context.Context) ([]resume.Resume, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, text, skills, COALESCE(embedding::text, ''), created_at
		 FROM resumes ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Resume, 0)
	for rows.Next() {
		var res resume.Resume
		var emb string
		if err := rows.Scan(&res.ID, &res.Text, &res.Skills, &emb, &res.CreatedAt); err != nil {
			return nil, err
		}
		res.Embedding = decodeVector(emb)
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresResumeRepository) UpdateEmbedding(ctx context.Context, resumeID uuid.UUID, vector []float32) error {
	emb, err := encodeVector(vector)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx, `UPDATE resumes SET embedding = $1 WHERE id = $2`, emb, resumeID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrResumeNotFound
	}
	return nil
}
