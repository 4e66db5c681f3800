package repository

import (
	"context"
	"time"

	"github.com/ninfea/babylog/internal/repository"
)

// NoopRepository is wired when no database is configured. The bot then
// behaves like the in-memory original: no event mirror, no nap recovery.
type NoopRepository struct{}

func NewNoopRepository() repository.Repository {
	return &NoopRepository{}
}

func (r *NoopRepository) InsertEvent(_ context.Context, _ repository.InsertEventInput) error {
	return nil
}

func (r *NoopRepository) OpenNap(_ context.Context, _ repository.OpenNapInput) (*repository.Nap, error) {
	return nil, nil
}

func (r *NoopRepository) CloseOpenNap(_ context.Context, _ repository.CloseNapInput) error {
	return nil
}

func (r *NoopRepository) GetOpenNap(_ context.Context) (*repository.Nap, error) {
	return nil, nil
}

func (r *NoopRepository) GetLastNapStart(_ context.Context) (*time.Time, error) {
	return nil, nil
}
