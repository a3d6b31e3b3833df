package game_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hearthforge/tavern-api/internal/entities"
	"github.com/hearthforge/tavern-api/internal/errors"
	"github.com/hearthforge/tavern-api/internal/orchestrators/game"
)

type TavernTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *TavernTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *TavernTestSuite) TestReplenishIsIdempotent() {
	fx := newServiceFixture(s.T(), testDeck())
	defer fx.cleanup()

	created, err := fx.service.CreateGame(s.ctx, &game.CreateGameInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	id := created.Aggregate.Session.ID

	out, err := fx.service.ReplenishTavern(s.ctx, &game.ReplenishTavernInput{SessionID: id})
	s.Require().NoError(err)

	s.Run("a full pool draws nothing", func() {
		s.Empty(out.Drawn)
		s.Len(out.Aggregate.Tavern, entities.TavernPoolSize)
	})

	s.Run("pool contents are unchanged", func() {
		for i, slot := range out.Aggregate.Tavern {
			s.Equal(created.Aggregate.Tavern[i].Card.ID, slot.Card.ID)
		}
	})
}

func (s *TavernTestSuite) TestReplenishAfterKill() {
	fx := newServiceFixture(s.T(), testDeck())
	defer fx.cleanup()

	created, err := fx.service.CreateGame(s.ctx, &game.CreateGameInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	id := created.Aggregate.Session.ID

	_, err = fx.service.Equip(s.ctx, &game.EquipInput{
		SessionID: id,
		CardID:    "card_01",
		SlotType:  "hp",
	})
	s.Require().NoError(err)

	out, err := fx.service.Attack(s.ctx, &game.AttackInput{
		SessionID:    id,
		TargetCardID: "card_04",
	})
	s.Require().NoError(err)
	s.Require().True(out.TargetDestroyed)

	s.Run("the pool refills to nine in the same turn", func() {
		s.Len(out.Aggregate.Tavern, entities.TavernPoolSize)
	})

	s.Run("the refill never duplicates an owned or seated card", func() {
		seen := make(map[string]bool)
		for _, entry := range out.Aggregate.Inventory {
			seen[entry.Card.ID] = true
		}
		for _, slot := range out.Aggregate.Tavern {
			s.False(seen[slot.Card.ID], "card %s seated twice", slot.Card.ID)
			seen[slot.Card.ID] = true
		}
	})

	s.Run("positions stay dense and ordered", func() {
		for i, slot := range out.Aggregate.Tavern {
			s.Equal(int32(i), slot.Position)
		}
	})
}

func (s *TavernTestSuite) TestReplenishExhaustsCatalog() {
	// Twelve non-boss cards: the opening deal consumes the entire catalog,
	// so the refill after a kill has nothing left to draw
	fx := newServiceFixture(s.T(), testDeck()[:12])
	defer fx.cleanup()

	created, err := fx.service.CreateGame(s.ctx, &game.CreateGameInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	id := created.Aggregate.Session.ID

	_, err = fx.service.Equip(s.ctx, &game.EquipInput{
		SessionID: id,
		CardID:    "card_01",
		SlotType:  "hp",
	})
	s.Require().NoError(err)

	_, err = fx.service.Attack(s.ctx, &game.AttackInput{
		SessionID:    id,
		TargetCardID: "card_04",
	})
	s.Require().Error(err)
	s.True(errors.IsInsufficientCatalog(err))

	s.Run("the failed turn leaves no partial state", func() {
		out, err := fx.service.GetGame(s.ctx, &game.GetGameInput{SessionID: id})
		s.Require().NoError(err)

		target := out.Aggregate.FindTavern("card_04")
		s.Require().NotNil(target, "target should still be seated")
		s.Equal(int32(10), target.CurrentHP)
		s.Nil(out.Aggregate.FindInventory("card_04"))
		s.Len(out.Aggregate.Tavern, entities.TavernPoolSize)
	})
}

func TestTavernTestSuite(t *testing.T) {
	suite.Run(t, new(TavernTestSuite))
}
