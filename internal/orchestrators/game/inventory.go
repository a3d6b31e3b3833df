package game

import (
	"context"
	"log/slog"

	"github.com/hearthforge/tavern-api/internal/entities"
	"github.com/hearthforge/tavern-api/internal/errors"
)

// Equip moves a reserve card into an equipment slot.
//
// Equipping an hp card refills the player to the new max. That mirrors the
// game's established behavior and is covered by tests as a named contract;
// do not "fix" it here without a product decision.
func (o *Orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CardID == "" {
		return nil, errors.InvalidArgument("card ID is required")
	}

	slotType := entities.SlotType(input.SlotType)
	if !slotType.IsValid() {
		return nil, errors.InvalidSlotf("unknown slot type %q", input.SlotType)
	}

	agg, err := o.mutate(ctx, input.SessionID, func(agg *entities.SessionAggregate) error {
		if err := requireMutable(agg); err != nil {
			return err
		}
		return equipCard(agg, input.CardID, slotType)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("card equipped",
		"session_id", input.SessionID,
		"card_id", input.CardID,
		"slot", input.SlotType,
	)

	return &EquipOutput{Aggregate: agg}, nil
}

// Unequip returns an equipped card to the reserve
func (o *Orchestrator) Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CardID == "" {
		return nil, errors.InvalidArgument("card ID is required")
	}

	agg, err := o.mutate(ctx, input.SessionID, func(agg *entities.SessionAggregate) error {
		if err := requireMutable(agg); err != nil {
			return err
		}
		return unequipCard(agg, input.CardID)
	})
	if err != nil {
		return nil, err
	}

	return &UnequipOutput{Aggregate: agg}, nil
}

// Discard permanently removes a reserve card. Discarding is the cost side
// of a slot upgrade, but the two operations are deliberately independent:
// the engine does not require a discard before UpgradeSlot.
func (o *Orchestrator) Discard(ctx context.Context, input *DiscardInput) (*DiscardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CardID == "" {
		return nil, errors.InvalidArgument("card ID is required")
	}

	agg, err := o.mutate(ctx, input.SessionID, func(agg *entities.SessionAggregate) error {
		if err := requireMutable(agg); err != nil {
			return err
		}
		return discardCard(agg, input.CardID)
	})
	if err != nil {
		return nil, err
	}

	return &DiscardOutput{Aggregate: agg}, nil
}

// UpgradeSlot raises a slot type's capacity by one
func (o *Orchestrator) UpgradeSlot(ctx context.Context, input *UpgradeSlotInput) (*UpgradeSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	slotType := entities.SlotType(input.SlotType)
	if !slotType.IsValid() {
		return nil, errors.InvalidSlotf("unknown slot type %q", input.SlotType)
	}

	var newCapacity int32
	agg, err := o.mutate(ctx, input.SessionID, func(agg *entities.SessionAggregate) error {
		if err := requireMutable(agg); err != nil {
			return err
		}
		newCapacity = upgradeSlot(agg, slotType)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("slot upgraded",
		"session_id", input.SessionID,
		"slot", input.SlotType,
		"capacity", newCapacity,
	)

	return &UpgradeSlotOutput{Aggregate: agg, NewCapacity: newCapacity}, nil
}

// equipCard performs the aggregate mutation for Equip
func equipCard(agg *entities.SessionAggregate, cardID string, slotType entities.SlotType) error {
	entry := agg.FindInventory(cardID)
	if entry == nil {
		return errors.CardNotOwnedf("card %s is not in this game's inventory", cardID)
	}
	if entry.Location != entities.LocationReserve {
		return errors.InvalidArgumentf("card %s is already equipped", cardID)
	}

	equipped := agg.EquippedInSlot(slotType)
	capacity := agg.CapacityFor(slotType)
	if int32(len(equipped)) >= capacity {
		return errors.SlotFullf("%s slot is at capacity %d", slotType, capacity).
			WithMeta("slot", slotType.String()).
			WithMeta("capacity", capacity)
	}

	entry.Location = entities.LocationEquipped
	entry.SlotType = slotType
	entry.Position = firstFreePosition(equipped)

	if slotType == entities.SlotHP {
		// Equipping an hp card heals to the new max
		agg.RecalculateVitals()
		agg.Session.PlayerHP = agg.Session.PlayerMaxHP
	}

	return nil
}

// unequipCard performs the aggregate mutation for Unequip
func unequipCard(agg *entities.SessionAggregate, cardID string) error {
	entry := agg.FindInventory(cardID)
	if entry == nil {
		return errors.CardNotOwnedf("card %s is not in this game's inventory", cardID)
	}
	if !entry.IsEquipped() {
		return errors.InvalidArgumentf("card %s is not equipped", cardID)
	}

	wasHP := entry.SlotType == entities.SlotHP

	entry.Location = entities.LocationReserve
	entry.SlotType = ""
	entry.Position = 0

	if wasHP {
		// Max drops to the remaining hp cards; current clamps to it
		agg.RecalculateVitals()
	}

	return nil
}

// discardCard performs the aggregate mutation for Discard
func discardCard(agg *entities.SessionAggregate, cardID string) error {
	entry := agg.FindInventory(cardID)
	if entry == nil {
		return errors.CardNotOwnedf("card %s is not in this game's inventory", cardID)
	}
	if entry.IsEquipped() {
		return errors.InvalidArgumentf("card %s must be unequipped before discarding", cardID)
	}

	for i, e := range agg.Inventory {
		if e.Card.ID == cardID {
			agg.Inventory = append(agg.Inventory[:i], agg.Inventory[i+1:]...)
			break
		}
	}

	return nil
}

// upgradeSlot raises the capacity record for a slot type, creating it at
// DefaultSlotCapacity+1 when absent. Capacities never decrease.
func upgradeSlot(agg *entities.SessionAggregate, slotType entities.SlotType) int32 {
	for _, c := range agg.Capacities {
		if c.SlotType == slotType {
			c.Capacity++
			return c.Capacity
		}
	}

	rec := &entities.SlotCapacity{
		GameID:   agg.Session.ID,
		SlotType: slotType,
		Capacity: entities.DefaultSlotCapacity + 1,
	}
	agg.Capacities = append(agg.Capacities, rec)
	return rec.Capacity
}

// firstFreePosition returns the lowest position not taken by the given
// equipped entries
func firstFreePosition(equipped []*entities.InventoryEntry) int32 {
	taken := make(map[int32]bool, len(equipped))
	for _, e := range equipped {
		taken[e.Position] = true
	}
	var pos int32
	for taken[pos] {
		pos++
	}
	return pos
}
