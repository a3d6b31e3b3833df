// Package gamesession defines the durable store for game session aggregates
package gamesession

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesessionmock github.com/hearthforge/tavern-api/internal/repositories/gamesession Repository

import (
	"context"

	"github.com/hearthforge/tavern-api/internal/entities"
)

// Repository is the durable store for session aggregates. It is the source
// of truth; the snapshot cache in front of it carries no authority.
type Repository interface {
	// Create stores a brand-new aggregate with version 1
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the session id is taken
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get reconstructs the aggregate by joining the session, inventory,
	// tavern, and slot capacity records
	// Returns errors.NotFound if the session doesn't exist
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Save persists a mutated aggregate. The stored version must equal
	// ExpectedVersion; on success the stored version becomes
	// ExpectedVersion+1. Every write path goes through this check;
	// call sites cannot opt out.
	// Returns errors.Conflict if the stored version has advanced
	// Returns errors.NotFound if the session doesn't exist
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Delete removes the aggregate and its player index entry
	// Returns errors.NotFound if the session doesn't exist
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// ListByPlayer returns every session aggregate owned by a player
	ListByPlayer(ctx context.Context, input *ListByPlayerInput) (*ListByPlayerOutput, error)
}

// CreateInput defines the input for creating a session aggregate
type CreateInput struct {
	Aggregate *entities.SessionAggregate
}

// CreateOutput defines the output for creating a session aggregate
type CreateOutput struct {
	Aggregate *entities.SessionAggregate
}

// GetInput defines the input for loading a session aggregate
type GetInput struct {
	SessionID string
}

// GetOutput defines the output for loading a session aggregate
type GetOutput struct {
	Aggregate *entities.SessionAggregate
}

// SaveInput defines the input for persisting a mutated aggregate
type SaveInput struct {
	Aggregate *entities.SessionAggregate

	// ExpectedVersion is the version the caller loaded before mutating
	ExpectedVersion int64
}

// SaveOutput defines the output for persisting a mutated aggregate
type SaveOutput struct {
	// NewVersion is the stored version after the save
	NewVersion int64
}

// DeleteInput defines the input for deleting a session aggregate
type DeleteInput struct {
	SessionID string
}

// DeleteOutput defines the output for deleting a session aggregate
type DeleteOutput struct{}

// ListByPlayerInput defines the input for listing a player's sessions
type ListByPlayerInput struct {
	PlayerID string
}

// ListByPlayerOutput defines the output for listing a player's sessions
type ListByPlayerOutput struct {
	Aggregates []*entities.SessionAggregate
}
