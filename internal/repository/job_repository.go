package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"resume-matcher/internal/database"
	"resume-matcher/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	// Ingest stores a normalized posting. When the record carries an
	// external id that already exists, the stored Job wins unchanged;
	// ingestion is idempotent by identity, not an upsert.
	Ingest(ctx context.Context, rec job.IngestRecord) (job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	UpdateEmbedding(ctx context.Context, jobID uuid.UUID, vector []float32) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Ingest(ctx context.Context, rec job.IngestRecord) (job.Job, error) {
	externalID := normalizeExternalID(rec.ExternalID)

	if externalID != nil {
		existing, err := r.getByExternalID(ctx, *externalID)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, ErrJobNotFound) {
			return job.Job{}, err
		}
	}

	j := job.Job{
		ID:          uuid.New(),
		ExternalID:  externalID,
		Title:       rec.Title,
		Company:     rec.Company,
		Description: rec.Description,
		PostedAt:    rec.PostedAt,
		ApplyURL:    rec.ApplyURL,
		CreatedAt:   time.Now().UTC(),
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, external_id, title, company, description, posted_at, apply_url, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (external_id) WHERE external_id IS NOT NULL DO NOTHING
		 RETURNING id`,
		j.ID, j.ExternalID, j.Title, j.Company, j.Description, j.PostedAt, j.ApplyURL, j.CreatedAt,
	)

	var inserted uuid.UUID
	err := row.Scan(&inserted)
	if err == nil {
		return j, nil
	}

	// A concurrent ingest of the same external id won the race. The loser
	// re-reads the winner instead of surfacing the conflict.
	if externalID != nil && (errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err)) {
		return r.getByExternalID(ctx, *externalID)
	}
	return job.Job{}, err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	return r.scanOne(r.db.QueryRow(ctx, selectJob+` WHERE id = $1`, id))
}

func (r *PostgresJobRepository) getByExternalID(ctx context.Context, externalID string) (job.Job, error) {
	return r.scanOne(r.db.QueryRow(ctx, selectJob+` WHERE external_id = $1`, externalID))
}

func (r *PostgresJobRepository) UpdateEmbedding(ctx context.Context, jobID uuid.UUID, vector []float32) error {
	emb, err := encodeVector(vector)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx, `UPDATE jobs SET embedding = $1 WHERE id = $2`, emb, jobID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

const selectJob = `SELECT id, external_id, title, COALESCE(company, ''), description,
	posted_at, COALESCE(apply_url, ''), COALESCE(embedding::text, ''), created_at
	FROM jobs`

func (r *PostgresJobRepository) scanOne(row database.Row) (job.Job, error) {
	var j job.Job
	var company, applyURL, emb string

	if err := row.Scan(&j.ID, &j.ExternalID, &j.Title, &company, &j.Description,
		&j.PostedAt, &applyURL, &emb, &j.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}

	if company != "" {
		j.Company = &company
	}
	if applyURL != "" {
		j.ApplyURL = &applyURL
	}
	j.Embedding = decodeVector(emb)
	return j, nil
}

func normalizeExternalID(id *string) *string {
	if id == nil {
		return nil
	}
	v := strings.TrimSpace(*id)
	if v == "" {
		return nil
	}
	return &v
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
