// Package brawl implements the combat resolution engine for tavern fights
package brawl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hearthforge/tavern-api/internal/engine"
	"github.com/hearthforge/tavern-api/internal/entities"
	"github.com/hearthforge/tavern-api/internal/errors"
)

// Engine is the concrete combat resolver. It is stateless; all state lives
// in the aggregate passed to each call.
type Engine struct {
	abilities map[entities.AbilityKind]AbilityHandler
}

// Config holds the dependencies for the brawl engine
type Config struct {
	// AbilityHandlers overrides the handler for specific ability kinds.
	// Unset kinds keep the default behavior.
	AbilityHandlers map[entities.AbilityKind]AbilityHandler
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	return nil
}

// New creates a brawl engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	handlers := defaultAbilityHandlers()
	for kind, h := range cfg.AbilityHandlers {
		handlers[kind] = h
	}

	return &Engine{abilities: handlers}, nil
}

var _ engine.Engine = (*Engine)(nil)

// ResolveAttack runs one attack command through the turn state machine
func (e *Engine) ResolveAttack(ctx context.Context, input *engine.ResolveAttackInput) (*engine.ResolveAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Aggregate == nil || input.Aggregate.Session == nil {
		return nil, errors.InvalidArgument("aggregate is required")
	}
	if input.TargetCardID == "" {
		return nil, errors.InvalidArgument("target card ID is required")
	}

	agg := input.Aggregate
	session := agg.Session

	// All validation happens before any mutation
	target := agg.FindTavern(input.TargetCardID)
	if target == nil {
		return nil, errors.InvalidTargetf("card %s is not in the tavern pool", input.TargetCardID)
	}

	attackPower := agg.AttackPower()
	if attackPower <= 0 {
		return nil, errors.NoAttackPower("no hp cards equipped; attack power is zero")
	}

	output := &engine.ResolveAttackOutput{}

	// Player attack: shield absorbs first, remainder hits HP
	shieldAbsorbed := minInt32(attackPower, target.CurrentShield)
	hpDamage := attackPower - shieldAbsorbed
	newTargetHP := maxInt32(0, target.CurrentHP-hpDamage)

	target.CurrentShield -= shieldAbsorbed
	target.CurrentHP = newTargetHP

	output.Log = append(output.Log, entities.CombatLogEntry{
		Actor:          entities.ActorPlayer,
		Action:         entities.ActionPlayerAttack,
		Target:         target.Card.ID,
		ShieldAbsorbed: shieldAbsorbed,
		Damage:         hpDamage,
		Result: fmt.Sprintf("%s attacks %s for %d (%d absorbed by shield), leaving %d hp",
			entities.ActorPlayer, target.Card.Name, attackPower, shieldAbsorbed, newTargetHP),
	})

	if newTargetHP <= 0 {
		e.resolveVictory(agg, target, output)
		return output, nil
	}

	e.resolveRetaliation(agg, target, output)

	if session.PlayerHP <= 0 {
		output.PlayerDefeated = true
		session.Phase = entities.PhaseDefeat
		session.Status = entities.StatusCompleted
		output.Log = append(output.Log, entities.CombatLogEntry{
			Actor:  entities.ActorTavern,
			Action: entities.ActionPlayerDefeat,
			Target: entities.ActorPlayer,
			Result: "the player falls; the run is over",
		})
		return output, nil
	}

	session.Turn++
	return output, nil
}

// resolveVictory captures the defeated card into the reserve. The caller
// replenishes the tavern within the same logical turn.
func (e *Engine) resolveVictory(agg *entities.SessionAggregate, target *entities.TavernSlot, output *engine.ResolveAttackOutput) {
	output.TargetDestroyed = true

	for i, t := range agg.Tavern {
		if t.Card.ID == target.Card.ID {
			agg.Tavern = append(agg.Tavern[:i], agg.Tavern[i+1:]...)
			break
		}
	}

	agg.Inventory = append(agg.Inventory, &entities.InventoryEntry{
		GameID:   agg.Session.ID,
		Card:     target.Card,
		Location: entities.LocationReserve,
	})

	output.Log = append(output.Log, entities.CombatLogEntry{
		Actor:  entities.ActorPlayer,
		Action: entities.ActionDefeated,
		Target: target.Card.ID,
		Result: fmt.Sprintf("%s is defeated and joins the reserve", target.Card.Name),
	})

	if target.Card.IsBoss {
		agg.Session.BossDefeated = true
		agg.Session.Phase = entities.PhaseVictory
		agg.Session.Status = entities.StatusCompleted
		output.Log = append(output.Log, entities.CombatLogEntry{
			Actor:  entities.ActorPlayer,
			Action: entities.ActionDefeated,
			Target: target.Card.ID,
			Result: fmt.Sprintf("the boss %s has fallen; the run is won", target.Card.Name),
		})
	}
}

// resolveRetaliation fires the surviving target's abilities in the fixed
// special, normal, passive order, then regenerates its shield to base.
func (e *Engine) resolveRetaliation(agg *entities.SessionAggregate, target *entities.TavernSlot, output *engine.ResolveAttackOutput) {
	var totalDamage int32

	for _, slot := range entities.AbilityResolutionOrder {
		ability, ok := target.Card.AbilityIn(slot)
		if !ok {
			continue
		}

		handler, known := e.abilities[ability.Kind]
		if !known {
			slog.Warn("unknown ability kind in retaliation",
				"card_id", target.Card.ID,
				"ability_id", ability.ID,
				"kind", string(ability.Kind),
			)
			output.Log = append(output.Log, entities.CombatLogEntry{
				Actor:  entities.ActorTavern,
				Action: entities.ActionAbility,
				Target: entities.ActorPlayer,
				Result: fmt.Sprintf("%s uses %s to no visible effect", target.Card.Name, ability.Name),
			})
			continue
		}

		totalDamage += handler(agg, target, ability, output)
	}

	// Shields reset every turn the target survives; HP does not
	target.CurrentShield = target.Card.BaseShield
	output.Log = append(output.Log, entities.CombatLogEntry{
		Actor:  entities.ActorTavern,
		Action: entities.ActionShieldRegen,
		Target: target.Card.ID,
		Result: fmt.Sprintf("%s regenerates its shield to %d", target.Card.Name, target.Card.BaseShield),
	})

	agg.Session.PlayerHP = maxInt32(0, agg.Session.PlayerHP-totalDamage)
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
