package repository

import (
	"context"
	"time"

	"resume-forge/internal/database"

	"github.com/google/uuid"
)

const (
	GenerationStatusSuccess = "success"
	GenerationStatusFailed  = "failed"
)

// Generation is one audit row per pipeline run, successful or not.
type Generation struct {
	ID         uuid.UUID
	Filename   string
	ObjectKey  string
	PublicURL  string
	Status     string
	ErrorKind  string
	DurationMS int64
	CreatedAt  time.Time
}

type GenerationRepository interface {
	EnsureSchema(ctx context.Context) error
	Record(ctx context.Context, g Generation) error
	ListRecent(ctx context.Context, limit int) ([]Generation, error)
}

type PostgresGenerationRepository struct {
	db database.DB
}

func NewPostgresGenerationRepository(db database.DB) *PostgresGenerationRepository {
	return &PostgresGenerationRepository{db: db}
}

func (r *PostgresGenerationRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS generations (
			id UUID PRIMARY KEY,
			filename TEXT NOT NULL,
			object_key TEXT NOT NULL DEFAULT '',
			public_url TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			error_kind TEXT NOT NULL DEFAULT '',
			duration_ms BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	)
	return err
}

func (r *PostgresGenerationRepository) Record(ctx context.Context, g Generation) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO generations (id, filename, object_key, public_url, status, error_kind, duration_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		g.ID, g.Filename, g.ObjectKey, g.PublicURL, g.Status, g.ErrorKind, g.DurationMS, g.CreatedAt,
	)
	return err
}

func (r *PostgresGenerationRepository) ListRecent(ctx context.Context, limit int) ([]Generation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, filename, object_key, public_url, status, error_kind, duration_ms, created_at
		 FROM generations
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Generation, 0)
	for rows.Next() {
		var g Generation
		if err := rows.Scan(&g.ID, &g.Filename, &g.ObjectKey, &g.PublicURL, &g.Status, &g.ErrorKind, &g.DurationMS, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
