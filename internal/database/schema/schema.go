package schema

import (
	"context"
	"fmt"

	"resume-matcher/internal/database"
)

// Initialize creates the storage layout and verifies it. It is called once
// from bootstrap; loading any matching package never touches the database.
func Initialize(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	for _, stmt := range ddl {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	checks := map[string][]string{
		"resumes": {"id", "text", "skills", "embedding", "created_at"},
		"jobs":    {"id", "external_id", "title", "company", "description", "posted_at", "apply_url", "embedding", "created_at"},
		"matches": {"id", "resume_id", "job_id", "score", "semantic_similarity", "skill_overlap", "missing_skills", "created_at"},
	}
	for table, cols := range checks {
		if err := ensureTableColumns(ctx, db, table, cols...); err != nil {
			return err
		}
	}
	return nil
}

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS resumes (
		id UUID PRIMARY KEY,
		text TEXT NOT NULL,
		skills TEXT[] NOT NULL DEFAULT '{}',
		embedding JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		external_id TEXT,
		title TEXT NOT NULL,
		company TEXT,
		description TEXT NOT NULL,
		posted_at TIMESTAMPTZ,
		apply_url TEXT,
		embedding JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// Uniqueness must live in the database so concurrent ingestion of the
	// same external id cannot slip past the application-level check.
	`CREATE UNIQUE INDEX IF NOT EXISTS jobs_external_id_uq
		ON jobs (external_id) WHERE external_id IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS matches (
		id UUID PRIMARY KEY,
		resume_id UUID NOT NULL,
		job_id UUID NOT NULL,
		score INT NOT NULL,
		semantic_similarity DOUBLE PRECISION NOT NULL,
		skill_overlap DOUBLE PRECISION NOT NULL,
		missing_skills TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS matches_resume_id_idx ON matches (resume_id)`,
	`CREATE INDEX IF NOT EXISTS matches_job_id_idx ON matches (job_id)`,
}

func ensureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
