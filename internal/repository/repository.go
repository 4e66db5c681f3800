package repository

import (
	"context"
	"time"
)

type InsertEventInput struct {
	OccurredAt time.Time
	Kind       string
	Actor      string
	ActorID    int64
}

type OpenNapInput struct {
	StartedAt time.Time
	StartedBy string
}

type CloseNapInput struct {
	EndedAt         time.Time
	EndedBy         string
	DurationSeconds int64
}

type EventRepository interface {
	InsertEvent(ctx context.Context, input InsertEventInput) error
}

// NapRepository mirrors the in-memory nap session so an active nap survives
// a process restart. GetOpenNap returns nil when no nap is running.
type NapRepository interface {
	OpenNap(ctx context.Context, input OpenNapInput) (*Nap, error)
	CloseOpenNap(ctx context.Context, input CloseNapInput) error
	GetOpenNap(ctx context.Context) (*Nap, error)
	GetLastNapStart(ctx context.Context) (*time.Time, error)
}

type Repository interface {
	EventRepository
	NapRepository
}
