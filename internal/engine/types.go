package engine

import (
	"github.com/hearthforge/tavern-api/internal/entities"
)

// ResolveAttackInput carries the aggregate being mutated and the attack target
type ResolveAttackInput struct {
	// Aggregate is mutated in place; callers own copying and persistence
	Aggregate *entities.SessionAggregate

	// TargetCardID names the tavern card being attacked
	TargetCardID string
}

// ResolveAttackOutput describes the resolved turn
type ResolveAttackOutput struct {
	// TargetDestroyed is true when the attack defeated the target. The
	// defeated card has been moved to the player's reserve; the caller
	// replenishes the tavern in the same logical turn.
	TargetDestroyed bool

	// PlayerDefeated is true when retaliation dropped the player to zero
	PlayerDefeated bool

	// Log is the ordered record of everything that happened this turn
	Log []entities.CombatLogEntry
}
