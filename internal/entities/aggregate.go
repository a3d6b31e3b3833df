package entities

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Cards and sessions participate in the shared entity model
var (
	_ core.Entity = (*Card)(nil)
	_ core.Entity = (*GameSession)(nil)
)

// SessionAggregate is the full mutable state of one run: the session row
// plus its inventory, tavern pool, and slot capacity records. The session
// store loads and persists it as a unit; mutation happens on a deep copy so
// a failed operation leaves no partial state.
type SessionAggregate struct {
	Session    *GameSession
	Inventory  []*InventoryEntry
	Tavern     []*TavernSlot
	Capacities []*SlotCapacity
}

// Clone returns a deep copy of the aggregate
func (a *SessionAggregate) Clone() *SessionAggregate {
	if a == nil {
		return nil
	}

	clone := &SessionAggregate{}

	if a.Session != nil {
		s := *a.Session
		clone.Session = &s
	}

	clone.Inventory = make([]*InventoryEntry, len(a.Inventory))
	for i, e := range a.Inventory {
		entry := *e
		entry.Card = cloneCard(e.Card)
		clone.Inventory[i] = &entry
	}

	clone.Tavern = make([]*TavernSlot, len(a.Tavern))
	for i, t := range a.Tavern {
		slot := *t
		slot.Card = cloneCard(t.Card)
		clone.Tavern[i] = &slot
	}

	clone.Capacities = make([]*SlotCapacity, len(a.Capacities))
	for i, c := range a.Capacities {
		rec := *c
		clone.Capacities[i] = &rec
	}

	return clone
}

func cloneCard(c Card) Card {
	out := c
	if c.Abilities != nil {
		out.Abilities = make(map[AbilitySlot]Ability, len(c.Abilities))
		for slot, ability := range c.Abilities {
			out.Abilities[slot] = ability
		}
	}
	return out
}

// FindInventory returns the inventory entry holding the given card id
func (a *SessionAggregate) FindInventory(cardID string) *InventoryEntry {
	for _, e := range a.Inventory {
		if e.Card.ID == cardID {
			return e
		}
	}
	return nil
}

// FindTavern returns the tavern slot holding the given card id
func (a *SessionAggregate) FindTavern(cardID string) *TavernSlot {
	for _, t := range a.Tavern {
		if t.Card.ID == cardID {
			return t
		}
	}
	return nil
}

// EquippedInSlot returns the entries equipped to a slot type, ordered by position
func (a *SessionAggregate) EquippedInSlot(slotType SlotType) []*InventoryEntry {
	var equipped []*InventoryEntry
	for _, e := range a.Inventory {
		if e.IsEquipped() && e.SlotType == slotType {
			equipped = append(equipped, e)
		}
	}
	sort.Slice(equipped, func(i, j int) bool {
		return equipped[i].Position < equipped[j].Position
	})
	return equipped
}

// CapacityFor returns the current capacity of a slot type. A slot with no
// upgrade record has DefaultSlotCapacity.
func (a *SessionAggregate) CapacityFor(slotType SlotType) int32 {
	for _, c := range a.Capacities {
		if c.SlotType == slotType {
			return c.Capacity
		}
	}
	return DefaultSlotCapacity
}

// AttackPower is the sum of base HP across equipped hp cards. Attack is
// derived from hp cards; there is no separate attack stat.
func (a *SessionAggregate) AttackPower() int32 {
	var total int32
	for _, e := range a.EquippedInSlot(SlotHP) {
		total += e.Card.BaseHP
	}
	return total
}

// ShieldPower is the sum of base shield across equipped shield cards
func (a *SessionAggregate) ShieldPower() int32 {
	var total int32
	for _, e := range a.EquippedInSlot(SlotShield) {
		total += e.Card.BaseShield
	}
	return total
}

// OwnedCardIDs returns the ids of every card in reserve or equipped
func (a *SessionAggregate) OwnedCardIDs() []string {
	ids := make([]string, 0, len(a.Inventory))
	for _, e := range a.Inventory {
		ids = append(ids, e.Card.ID)
	}
	return ids
}

// TavernCardIDs returns the ids of every card currently in the pool
func (a *SessionAggregate) TavernCardIDs() []string {
	ids := make([]string, 0, len(a.Tavern))
	for _, t := range a.Tavern {
		ids = append(ids, t.Card.ID)
	}
	return ids
}

// RecalculateVitals recomputes PlayerMaxHP from the equipped hp cards and
// clamps PlayerHP into [0, PlayerMaxHP]. Max HP is never stored with an
// independent value.
func (a *SessionAggregate) RecalculateVitals() {
	var maxHP int32
	for _, e := range a.EquippedInSlot(SlotHP) {
		maxHP += e.Card.BaseHP
	}
	a.Session.PlayerMaxHP = maxHP
	if a.Session.PlayerHP > maxHP {
		a.Session.PlayerHP = maxHP
	}
	if a.Session.PlayerHP < 0 {
		a.Session.PlayerHP = 0
	}
}
