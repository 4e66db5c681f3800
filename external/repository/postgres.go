package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ninfea/babylog/internal/repository"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.Repository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) InsertEvent(ctx context.Context, input repository.InsertEventInput) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO events (occurred_at, kind, actor, actor_id)
		 VALUES ($1, $2, $3, $4)`,
		input.OccurredAt, input.Kind, input.Actor, input.ActorID)
	return err
}

func (r *PostgresRepository) OpenNap(ctx context.Context, input repository.OpenNapInput) (*repository.Nap, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO naps (started_at, started_by, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id, started_at, started_by, ended_at, ended_by, duration_seconds, status`,
		input.StartedAt, input.StartedBy)
	return scanNap(row)
}

func (r *PostgresRepository) CloseOpenNap(ctx context.Context, input repository.CloseNapInput) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE naps SET status = 'completed', ended_at = $1, ended_by = $2, duration_seconds = $3
		 WHERE status = 'running'`,
		input.EndedAt, input.EndedBy, input.DurationSeconds)
	return err
}

func (r *PostgresRepository) GetOpenNap(ctx context.Context) (*repository.Nap, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, started_at, started_by, ended_at, ended_by, duration_seconds, status
		 FROM naps WHERE status = 'running'
		 ORDER BY started_at DESC LIMIT 1`)
	n, err := scanNap(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return n, nil
}

func (r *PostgresRepository) GetLastNapStart(ctx context.Context) (*time.Time, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT started_at FROM naps ORDER BY started_at DESC LIMIT 1`)
	var startedAt time.Time
	if err := row.Scan(&startedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &startedAt, nil
}

func scanNap(row pgx.Row) (*repository.Nap, error) {
	var n repository.Nap
	var endedAt *time.Time
	var endedBy *string
	err := row.Scan(&n.ID, &n.StartedAt, &n.StartedBy, &endedAt, &endedBy, &n.DurationSeconds, &n.Status)
	if err != nil {
		return nil, err
	}
	n.EndedAt = endedAt
	if endedBy != nil {
		n.EndedBy = *endedBy
	}
	return &n, nil
}
