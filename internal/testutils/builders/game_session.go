// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/hearthforge/tavern-api/internal/entities"
)

// AggregateBuilder provides a fluent interface for building test SessionAggregate instances
type AggregateBuilder struct {
	agg *entities.SessionAggregate
}

// NewAggregateBuilder creates a new builder with minimal defaults: an active
// session in the tavern phase at version 1, with empty inventory and tavern.
func NewAggregateBuilder() *AggregateBuilder {
	now := time.Now().Unix()
	return &AggregateBuilder{
		agg: &entities.SessionAggregate{
			Session: &entities.GameSession{
				ID:          "game-test-123",
				PlayerID:    "player-test-123",
				Status:      entities.StatusActive,
				Phase:       entities.PhaseTavern,
				Turn:        1,
				PlayerHP:    0,
				PlayerMaxHP: 0,
				Version:     1,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
	}
}

// WithID sets the session ID
func (b *AggregateBuilder) WithID(id string) *AggregateBuilder {
	b.agg.Session.ID = id
	return b
}

// WithPlayerID sets the player ID
func (b *AggregateBuilder) WithPlayerID(playerID string) *AggregateBuilder {
	b.agg.Session.PlayerID = playerID
	return b
}

// WithPhase sets the game phase
func (b *AggregateBuilder) WithPhase(phase entities.GamePhase) *AggregateBuilder {
	b.agg.Session.Phase = phase
	return b
}

// WithStatus sets the game status
func (b *AggregateBuilder) WithStatus(status entities.GameStatus) *AggregateBuilder {
	b.agg.Session.Status = status
	return b
}

// WithVersion sets the aggregate version
func (b *AggregateBuilder) WithVersion(version int64) *AggregateBuilder {
	b.agg.Session.Version = version
	return b
}

// WithTurn sets the turn counter
func (b *AggregateBuilder) WithTurn(turn int32) *AggregateBuilder {
	b.agg.Session.Turn = turn
	return b
}

// WithPlayerVitals sets current and max player HP directly, bypassing
// recalculation from equipped cards.
func (b *AggregateBuilder) WithPlayerVitals(hp, maxHP int32) *AggregateBuilder {
	b.agg.Session.PlayerHP = hp
	b.agg.Session.PlayerMaxHP = maxHP
	return b
}

// WithReserveCard adds a card to the inventory in the reserve
func (b *AggregateBuilder) WithReserveCard(card *entities.Card) *AggregateBuilder {
	b.agg.Inventory = append(b.agg.Inventory, &entities.InventoryEntry{
		GameID:   b.agg.Session.ID,
		Card:     *card,
		Location: entities.LocationReserve,
	})
	return b
}

// WithEquippedCard adds a card to the inventory equipped in the given slot and
// position, and recalculates player vitals so HP invariants hold.
func (b *AggregateBuilder) WithEquippedCard(card *entities.Card, slot entities.SlotType, position int32) *AggregateBuilder {
	b.agg.Inventory = append(b.agg.Inventory, &entities.InventoryEntry{
		GameID:   b.agg.Session.ID,
		Card:     *card,
		Location: entities.LocationEquipped,
		SlotType: slot,
		Position: position,
	})
	b.agg.RecalculateVitals()
	b.agg.Session.PlayerHP = b.agg.Session.PlayerMaxHP
	return b
}

// WithTavernCard places a card in the tavern at the given position at its base
// HP and shield.
func (b *AggregateBuilder) WithTavernCard(card *entities.Card, position int32) *AggregateBuilder {
	b.agg.Tavern = append(b.agg.Tavern, &entities.TavernSlot{
		GameID:        b.agg.Session.ID,
		Card:          *card,
		Position:      position,
		CurrentHP:     card.BaseHP,
		CurrentShield: card.BaseShield,
	})
	return b
}

// WithSlotCapacity sets the capacity override for a slot type
func (b *AggregateBuilder) WithSlotCapacity(slot entities.SlotType, capacity int32) *AggregateBuilder {
	b.agg.Capacities = append(b.agg.Capacities, &entities.SlotCapacity{
		GameID:   b.agg.Session.ID,
		SlotType: slot,
		Capacity: capacity,
	})
	return b
}

// Build returns the built aggregate
func (b *AggregateBuilder) Build() *entities.SessionAggregate {
	return b.agg
}

// BuildClone returns a deep copy, letting one builder produce several
// independent aggregates.
func (b *AggregateBuilder) BuildClone() *entities.SessionAggregate {
	return b.agg.Clone()
}
