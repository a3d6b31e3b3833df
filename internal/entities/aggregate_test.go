package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthforge/tavern-api/internal/entities"
)

func sampleAggregate() *entities.SessionAggregate {
	return &entities.SessionAggregate{
		Session: &entities.GameSession{
			ID:       "game_1",
			PlayerID: "player_1",
			Status:   entities.StatusActive,
			Phase:    entities.PhaseTavern,
			PlayerHP: 30,
			Version:  1,
		},
		Inventory: []*entities.InventoryEntry{
			{
				GameID:   "game_1",
				Card:     entities.Card{ID: "card_a", Name: "Alpha", BaseHP: 20},
				Location: entities.LocationEquipped,
				SlotType: entities.SlotHP,
				Position: 1,
			},
			{
				GameID:   "game_1",
				Card:     entities.Card{ID: "card_b", Name: "Bravo", BaseHP: 10},
				Location: entities.LocationEquipped,
				SlotType: entities.SlotHP,
				Position: 0,
			},
			{
				GameID:   "game_1",
				Card:     entities.Card{ID: "card_c", Name: "Charlie", BaseShield: 5},
				Location: entities.LocationReserve,
			},
		},
		Tavern: []*entities.TavernSlot{
			{
				GameID:        "game_1",
				Card:          entities.Card{ID: "card_x", Name: "Xeno", BaseHP: 8, BaseShield: 2},
				Position:      0,
				CurrentHP:     8,
				CurrentShield: 2,
			},
		},
		Capacities: []*entities.SlotCapacity{
			{GameID: "game_1", SlotType: entities.SlotHP, Capacity: 2},
		},
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleAggregate()
	clone := original.Clone()

	clone.Session.PlayerHP = 1
	clone.Inventory[0].Card.BaseHP = 99
	clone.Tavern[0].CurrentHP = 0
	clone.Capacities[0].Capacity = 9

	assert.Equal(t, int32(30), original.Session.PlayerHP)
	assert.Equal(t, int32(20), original.Inventory[0].Card.BaseHP)
	assert.Equal(t, int32(8), original.Tavern[0].CurrentHP)
	assert.Equal(t, int32(2), original.Capacities[0].Capacity)
}

func TestCloneCopiesAbilities(t *testing.T) {
	original := sampleAggregate()
	original.Inventory[0].Card.Abilities = map[entities.AbilitySlot]entities.Ability{
		entities.AbilitySlotNormal: {ID: "ability_1", Name: "Jab", Kind: entities.AbilityKindDamage, Value: 2},
	}

	clone := original.Clone()
	clone.Inventory[0].Card.Abilities[entities.AbilitySlotNormal] = entities.Ability{ID: "ability_2"}

	assert.Equal(t, "ability_1", original.Inventory[0].Card.Abilities[entities.AbilitySlotNormal].ID)
}

func TestEquippedInSlotSortsByPosition(t *testing.T) {
	agg := sampleAggregate()

	equipped := agg.EquippedInSlot(entities.SlotHP)
	require.Len(t, equipped, 2)
	assert.Equal(t, "card_b", equipped[0].Card.ID)
	assert.Equal(t, "card_a", equipped[1].Card.ID)
}

func TestDerivedStats(t *testing.T) {
	agg := sampleAggregate()

	t.Run("attack power sums equipped hp cards", func(t *testing.T) {
		assert.Equal(t, int32(30), agg.AttackPower())
	})

	t.Run("reserve cards contribute nothing", func(t *testing.T) {
		assert.Equal(t, int32(0), agg.ShieldPower())
	})

	t.Run("capacity falls back to the default", func(t *testing.T) {
		assert.Equal(t, int32(2), agg.CapacityFor(entities.SlotHP))
		assert.Equal(t, int32(entities.DefaultSlotCapacity), agg.CapacityFor(entities.SlotShield))
	})
}

func TestRecalculateVitals(t *testing.T) {
	t.Run("max follows equipped hp cards", func(t *testing.T) {
		agg := sampleAggregate()
		agg.RecalculateVitals()
		assert.Equal(t, int32(30), agg.Session.PlayerMaxHP)
		assert.Equal(t, int32(30), agg.Session.PlayerHP)
	})

	t.Run("current clamps down to a shrunken max", func(t *testing.T) {
		agg := sampleAggregate()
		agg.Inventory[0].Location = entities.LocationReserve
		agg.RecalculateVitals()
		assert.Equal(t, int32(10), agg.Session.PlayerMaxHP)
		assert.Equal(t, int32(10), agg.Session.PlayerHP)
	})

	t.Run("negative hp floors at zero", func(t *testing.T) {
		agg := sampleAggregate()
		agg.Session.PlayerHP = -5
		agg.RecalculateVitals()
		assert.Equal(t, int32(0), agg.Session.PlayerHP)
	})
}

func TestLookups(t *testing.T) {
	agg := sampleAggregate()

	assert.NotNil(t, agg.FindInventory("card_c"))
	assert.Nil(t, agg.FindInventory("card_x"))
	assert.NotNil(t, agg.FindTavern("card_x"))
	assert.Nil(t, agg.FindTavern("card_a"))

	assert.ElementsMatch(t, []string{"card_a", "card_b", "card_c"}, agg.OwnedCardIDs())
	assert.Equal(t, []string{"card_x"}, agg.TavernCardIDs())
}

func TestPhaseAndStatusPredicates(t *testing.T) {
	assert.True(t, entities.PhaseVictory.IsTerminal())
	assert.True(t, entities.PhaseDefeat.IsTerminal())
	assert.False(t, entities.PhaseTavern.IsTerminal())
	assert.False(t, entities.PhaseCombat.IsTerminal())

	assert.True(t, entities.SlotHP.IsValid())
	assert.False(t, entities.SlotType("weapon").IsValid())
}
