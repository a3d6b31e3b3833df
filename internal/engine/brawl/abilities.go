package brawl

import (
	"fmt"

	"github.com/hearthforge/tavern-api/internal/engine"
	"github.com/hearthforge/tavern-api/internal/entities"
)

// AbilityHandler applies one retaliation ability and returns the damage
// dealt to the player (zero for non-damage kinds). Handlers append their
// own log entries; the engine owns shield regeneration and HP application.
type AbilityHandler func(
	agg *entities.SessionAggregate,
	source *entities.TavernSlot,
	ability entities.Ability,
	output *engine.ResolveAttackOutput,
) int32

func defaultAbilityHandlers() map[entities.AbilityKind]AbilityHandler {
	return map[entities.AbilityKind]AbilityHandler{
		entities.AbilityKindDamage: handleDamage,
		entities.AbilityKindHeal:   handleHeal,
		entities.AbilityKindShield: handleShield,
	}
}

// handleDamage runs the ability's damage through the player's shield using
// the same shield-then-HP absorption as the player's own attack.
func handleDamage(agg *entities.SessionAggregate, source *entities.TavernSlot, ability entities.Ability, output *engine.ResolveAttackOutput) int32 {
	playerShield := agg.ShieldPower()
	absorbed := minInt32(ability.Value, playerShield)
	damage := ability.Value - absorbed

	output.Log = append(output.Log, entities.CombatLogEntry{
		Actor:          entities.ActorTavern,
		Action:         entities.ActionAbility,
		Target:         entities.ActorPlayer,
		ShieldAbsorbed: absorbed,
		Damage:         damage,
		Result: fmt.Sprintf("%s retaliates with %s for %d (%d absorbed by shield)",
			source.Card.Name, ability.Name, ability.Value, absorbed),
	})

	return damage
}

// handleHeal is a narrative self-buff on the source card. It does not yet
// mutate tavern HP; swap in a mutating handler via Config.AbilityHandlers
// once the product rules for heal effects are settled.
func handleHeal(agg *entities.SessionAggregate, source *entities.TavernSlot, ability entities.Ability, output *engine.ResolveAttackOutput) int32 {
	output.Log = append(output.Log, entities.CombatLogEntry{
		Actor:  entities.ActorTavern,
		Action: entities.ActionAbility,
		Target: source.Card.ID,
		Result: fmt.Sprintf("%s channels %s, mending itself", source.Card.Name, ability.Name),
	})
	return 0
}

// handleShield is a narrative self-buff on the source card, mirroring
// handleHeal's extension point.
func handleShield(agg *entities.SessionAggregate, source *entities.TavernSlot, ability entities.Ability, output *engine.ResolveAttackOutput) int32 {
	output.Log = append(output.Log, entities.CombatLogEntry{
		Actor:  entities.ActorTavern,
		Action: entities.ActionAbility,
		Target: source.Card.ID,
		Result: fmt.Sprintf("%s raises %s, bracing behind it", source.Card.Name, ability.Name),
	})
	return 0
}
