package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hearthforge/tavern-api/internal/engine"
	"github.com/hearthforge/tavern-api/internal/entities"
	"github.com/hearthforge/tavern-api/internal/errors"
	"github.com/hearthforge/tavern-api/internal/repositories/catalog"
)

// Attack resolves one combat turn against a tavern card. On a kill the
// captured card joins the reserve and the tavern refills within the same
// mutation, so readers never observe a short pool.
func (o *Orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TargetCardID == "" {
		return nil, errors.InvalidArgument("target card ID is required")
	}

	var (
		log             []entities.CombatLogEntry
		targetDestroyed bool
	)

	agg, err := o.mutate(ctx, input.SessionID, func(agg *entities.SessionAggregate) error {
		if err := requireMutable(agg); err != nil {
			return err
		}
		if agg.Session.Phase != entities.PhaseTavern && agg.Session.Phase != entities.PhaseCombat {
			return errors.InvalidPhasef("cannot attack during the %s phase", agg.Session.Phase)
		}

		resolveOut, err := o.engine.ResolveAttack(ctx, &engine.ResolveAttackInput{
			Aggregate:    agg,
			TargetCardID: input.TargetCardID,
		})
		if err != nil {
			return err
		}

		log = resolveOut.Log
		targetDestroyed = resolveOut.TargetDestroyed

		// Destroy-and-replenish happens inside one logical turn
		if resolveOut.TargetDestroyed && agg.Session.Phase == entities.PhaseTavern {
			drawn, err := o.replenish(ctx, agg)
			if err != nil {
				return err
			}
			log = append(log, replenishLogEntry(drawn))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("attack resolved",
		"session_id", input.SessionID,
		"target_card_id", input.TargetCardID,
		"target_destroyed", targetDestroyed,
		"player_hp", agg.Session.PlayerHP,
		"turn", agg.Session.Turn,
	)

	return &AttackOutput{
		Aggregate:       agg,
		TargetDestroyed: targetDestroyed,
		Log:             log,
	}, nil
}

// enterCombat clears the tavern pool and seats the next undefeated boss
// at position zero. Defeating it hands the run its victory.
func (o *Orchestrator) enterCombat(ctx context.Context, agg *entities.SessionAggregate) error {
	bossOut, err := o.catalogRepo.ListBossCards(ctx, &catalog.ListBossCardsInput{})
	if err != nil {
		return errors.Wrap(err, "failed to load the boss pool")
	}

	owned := make(map[string]bool)
	for _, id := range agg.OwnedCardIDs() {
		owned[id] = true
	}

	var boss *entities.Card
	for _, c := range bossOut.Cards {
		if !owned[c.ID] {
			boss = c
			break
		}
	}
	if boss == nil {
		return errors.InvalidPhase("every boss has already been defeated")
	}

	agg.Tavern = []*entities.TavernSlot{{
		GameID:        agg.Session.ID,
		Card:          *boss,
		Position:      0,
		CurrentHP:     boss.BaseHP,
		CurrentShield: boss.BaseShield,
	}}

	slog.Info("boss seated for combat",
		"session_id", agg.Session.ID,
		"boss_card_id", boss.ID,
	)

	return nil
}

// replenishLogEntry summarizes the refill draw for the combat log
func replenishLogEntry(drawn []*entities.Card) entities.CombatLogEntry {
	names := make([]string, len(drawn))
	for i, c := range drawn {
		names[i] = c.Name
	}
	return entities.CombatLogEntry{
		Actor:  entities.ActorTavern,
		Action: entities.ActionReplenish,
		Result: fmt.Sprintf("the tavern refills: %s", strings.Join(names, ", ")),
	}
}
