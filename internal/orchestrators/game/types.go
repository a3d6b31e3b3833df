package game

import (
	"github.com/hearthforge/tavern-api/internal/entities"
)

// CreateGameInput defines the input for starting a run
type CreateGameInput struct {
	PlayerID string
}

// CreateGameOutput defines the output for starting a run
type CreateGameOutput struct {
	Aggregate *entities.SessionAggregate
}

// GetGameInput defines the input for loading a run
type GetGameInput struct {
	SessionID string
}

// GetGameOutput defines the output for loading a run
type GetGameOutput struct {
	Aggregate *entities.SessionAggregate
}

// ListGamesInput defines the input for listing a player's runs
type ListGamesInput struct {
	PlayerID string
}

// ListGamesOutput defines the output for listing a player's runs.
// Active runs sort before finished ones.
type ListGamesOutput struct {
	Aggregates []*entities.SessionAggregate
}

// EquipInput defines the input for equipping a reserve card
type EquipInput struct {
	SessionID string
	CardID    string
	SlotType  string
}

// EquipOutput defines the output for equipping a reserve card
type EquipOutput struct {
	Aggregate *entities.SessionAggregate
}

// UnequipInput defines the input for returning a card to reserve
type UnequipInput struct {
	SessionID string
	CardID    string
}

// UnequipOutput defines the output for returning a card to reserve
type UnequipOutput struct {
	Aggregate *entities.SessionAggregate
}

// DiscardInput defines the input for permanently removing a reserve card
type DiscardInput struct {
	SessionID string
	CardID    string
}

// DiscardOutput defines the output for permanently removing a reserve card
type DiscardOutput struct {
	Aggregate *entities.SessionAggregate
}

// UpgradeSlotInput defines the input for raising a slot's capacity
type UpgradeSlotInput struct {
	SessionID string
	SlotType  string
}

// UpgradeSlotOutput defines the output for raising a slot's capacity
type UpgradeSlotOutput struct {
	Aggregate *entities.SessionAggregate

	// NewCapacity is the slot's capacity after the upgrade
	NewCapacity int32
}

// AttackInput defines the input for one combat turn
type AttackInput struct {
	SessionID    string
	TargetCardID string
}

// AttackOutput defines the output for one combat turn
type AttackOutput struct {
	Aggregate *entities.SessionAggregate

	// TargetDestroyed is true when the target was defeated and captured
	TargetDestroyed bool

	// Log explains the whole turn in resolution order
	Log []entities.CombatLogEntry
}

// ReplenishTavernInput defines the input for refilling the tavern pool
type ReplenishTavernInput struct {
	SessionID string
}

// ReplenishTavernOutput defines the output for refilling the tavern pool
type ReplenishTavernOutput struct {
	Aggregate *entities.SessionAggregate

	// Drawn lists the cards added to the pool, in position order
	Drawn []*entities.Card
}

// AdvanceTurnInput defines the input for advancing the turn counter
type AdvanceTurnInput struct {
	SessionID string
}

// AdvanceTurnOutput defines the output for advancing the turn counter
type AdvanceTurnOutput struct {
	Aggregate *entities.SessionAggregate
}

// SetPhaseInput defines the input for a phase transition
type SetPhaseInput struct {
	SessionID string
	Phase     string
}

// SetPhaseOutput defines the output for a phase transition
type SetPhaseOutput struct {
	Aggregate *entities.SessionAggregate
}

// AbandonGameInput defines the input for abandoning a run
type AbandonGameInput struct {
	SessionID string
}

// AbandonGameOutput defines the output for abandoning a run
type AbandonGameOutput struct {
	Aggregate *entities.SessionAggregate
}

// DeleteGameInput defines the input for deleting a run
type DeleteGameInput struct {
	SessionID string
}

// DeleteGameOutput defines the output for deleting a run
type DeleteGameOutput struct{}
