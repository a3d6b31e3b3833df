// Package catalog defines the read-only card catalog interface
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/hearthforge/tavern-api/internal/repositories/catalog Repository

import (
	"context"

	"github.com/hearthforge/tavern-api/internal/entities"
)

// Repository defines read-only lookups against the card catalog.
// Catalog data is static reference data; nothing here mutates during a run.
type Repository interface {
	// GetCardByID retrieves a single card
	// Returns errors.CardNotFound if the id is not in the catalog
	GetCardByID(ctx context.Context, input *GetCardByIDInput) (*GetCardByIDOutput, error)

	// ListCards returns every card in the catalog
	ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error)

	// GetRandomCards draws Count distinct random cards from the non-boss
	// pool, skipping every id in ExcludeIDs.
	// Returns errors.InsufficientCatalog when fewer eligible cards exist
	// than requested
	GetRandomCards(ctx context.Context, input *GetRandomCardsInput) (*GetRandomCardsOutput, error)

	// ListBossCards returns the boss pool
	ListBossCards(ctx context.Context, input *ListBossCardsInput) (*ListBossCardsOutput, error)
}

// GetCardByIDInput defines the input for getting a card
type GetCardByIDInput struct {
	CardID string
}

// GetCardByIDOutput defines the output for getting a card
type GetCardByIDOutput struct {
	Card *entities.Card
}

// ListCardsInput defines the input for listing the catalog
type ListCardsInput struct {
	// IncludeBoss includes boss cards in the listing
	IncludeBoss bool
}

// ListCardsOutput defines the output for listing the catalog
type ListCardsOutput struct {
	Cards []*entities.Card
}

// GetRandomCardsInput defines the input for a random draw
type GetRandomCardsInput struct {
	Count      int
	ExcludeIDs []string
}

// GetRandomCardsOutput defines the output for a random draw
type GetRandomCardsOutput struct {
	Cards []*entities.Card
}

// ListBossCardsInput defines the input for listing boss cards
type ListBossCardsInput struct{}

// ListBossCardsOutput defines the output for listing boss cards
type ListBossCardsOutput struct {
	Cards []*entities.Card
}
