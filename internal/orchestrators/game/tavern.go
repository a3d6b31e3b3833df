package game

import (
	"context"
	"log/slog"
	"sort"

	"github.com/hearthforge/tavern-api/internal/entities"
	"github.com/hearthforge/tavern-api/internal/errors"
	"github.com/hearthforge/tavern-api/internal/repositories/catalog"
)

// ReplenishTavern refills empty tavern positions from the catalog. A full
// pool is a no-op.
func (o *Orchestrator) ReplenishTavern(ctx context.Context, input *ReplenishTavernInput) (*ReplenishTavernOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var drawn []*entities.Card
	agg, err := o.mutate(ctx, input.SessionID, func(agg *entities.SessionAggregate) error {
		if err := requireMutable(agg); err != nil {
			return err
		}
		var err error
		drawn, err = o.replenish(ctx, agg)
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(drawn) > 0 {
		slog.Info("tavern replenished",
			"session_id", input.SessionID,
			"drawn", len(drawn),
		)
	}

	return &ReplenishTavernOutput{Aggregate: agg, Drawn: drawn}, nil
}

// replenish fills every empty tavern position with a fresh draw. The draw
// pool excludes cards already in the tavern and cards the player owns, so
// a run never duplicates a card beyond catalog limits. Returns the cards
// drawn, in position order.
func (o *Orchestrator) replenish(ctx context.Context, agg *entities.SessionAggregate) ([]*entities.Card, error) {
	empty := emptyPositions(agg)
	if len(empty) == 0 {
		return nil, nil
	}

	excludeIDs := append(agg.OwnedCardIDs(), agg.TavernCardIDs()...)

	drawOut, err := o.catalogRepo.GetRandomCards(ctx, &catalog.GetRandomCardsInput{
		Count:      len(empty),
		ExcludeIDs: excludeIDs,
	})
	if err != nil {
		// InsufficientCatalog surfaces loudly: downstream code assumes
		// exactly TavernPoolSize occupants during the tavern phase
		return nil, err
	}

	for i, pos := range empty {
		card := drawOut.Cards[i]
		agg.Tavern = append(agg.Tavern, &entities.TavernSlot{
			GameID:        agg.Session.ID,
			Card:          *card,
			Position:      pos,
			CurrentHP:     card.BaseHP,
			CurrentShield: card.BaseShield,
		})
	}

	sort.Slice(agg.Tavern, func(i, j int) bool {
		return agg.Tavern[i].Position < agg.Tavern[j].Position
	})

	return drawOut.Cards, nil
}

// emptyPositions returns the unoccupied tavern positions in ascending order
func emptyPositions(agg *entities.SessionAggregate) []int32 {
	occupied := make(map[int32]bool, len(agg.Tavern))
	for _, t := range agg.Tavern {
		occupied[t.Position] = true
	}

	var empty []int32
	for pos := int32(0); pos < entities.TavernPoolSize; pos++ {
		if !occupied[pos] {
			empty = append(empty, pos)
		}
	}
	return empty
}
