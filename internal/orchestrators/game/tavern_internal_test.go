package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthforge/tavern-api/internal/entities"
	"github.com/hearthforge/tavern-api/internal/testutils/builders"
)

func TestEmptyPositions(t *testing.T) {
	t.Run("empty pool lists every position", func(t *testing.T) {
		agg := builders.NewAggregateBuilder().Build()
		assert.Len(t, emptyPositions(agg), entities.TavernPoolSize)
	})

	t.Run("occupied positions are skipped in order", func(t *testing.T) {
		agg := builders.NewAggregateBuilder().
			WithTavernCard(&entities.Card{ID: "card_a", Name: "Alpha", BaseHP: 5}, 0).
			WithTavernCard(&entities.Card{ID: "card_b", Name: "Bravo", BaseHP: 5}, 4).
			Build()

		assert.Equal(t, []int32{1, 2, 3, 5, 6, 7, 8}, emptyPositions(agg))
	})
}

func TestFirstFreePosition(t *testing.T) {
	entries := []*entities.InventoryEntry{
		{Position: 0},
		{Position: 2},
	}
	assert.Equal(t, int32(1), firstFreePosition(entries))
	assert.Equal(t, int32(0), firstFreePosition(nil))
}
