// Package engine defines the combat resolution engine
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/hearthforge/tavern-api/internal/engine Engine

import (
	"context"
)

// Engine resolves combat turns over a session aggregate. Implementations
// are pure over the aggregate: they mutate the in-memory copy handed to
// them and never touch storage. Given identical pre-state and target, the
// resulting state and log are deterministic.
type Engine interface {
	// ResolveAttack runs one attack command through the turn state
	// machine: validate, apply damage, then either capture the defeated
	// card or resolve retaliation.
	// Returns errors.InvalidTarget if the target is not in the tavern pool
	// Returns errors.NoAttackPower if the player has no equipped hp cards
	ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error)
}
