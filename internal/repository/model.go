package repository

import "time"

type NapStatus string

const (
	NapStatusRunning   NapStatus = "running"
	NapStatusCompleted NapStatus = "completed"
)

type Nap struct {
	ID              string
	StartedAt       time.Time
	StartedBy       string
	EndedAt         *time.Time
	EndedBy         string
	DurationSeconds int64
	Status          NapStatus
}

type Event struct {
	ID         string
	OccurredAt time.Time
	Kind       string
	Actor      string
	ActorID    int64
	CreatedAt  time.Time
}
