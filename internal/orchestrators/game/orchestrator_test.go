package game_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hearthforge/tavern-api/internal/cache"
	"github.com/hearthforge/tavern-api/internal/engine/brawl"
	"github.com/hearthforge/tavern-api/internal/entities"
	"github.com/hearthforge/tavern-api/internal/errors"
	"github.com/hearthforge/tavern-api/internal/orchestrators/game"
	"github.com/hearthforge/tavern-api/internal/pkg/clock"
	"github.com/hearthforge/tavern-api/internal/pkg/idgen"
	"github.com/hearthforge/tavern-api/internal/repositories/catalog"
	"github.com/hearthforge/tavern-api/internal/repositories/gamesession"
	"github.com/hearthforge/tavern-api/internal/testutils"
)

// lowRoller always rolls 1, so draws walk the eligible pool in id order
type lowRoller struct{}

func (r *lowRoller) Roll(size int) (int, error) { return 1, nil }
func (r *lowRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

// testDeck is sixteen plain cards plus two bosses. With the low roller a
// fresh game deals card_01..card_03 as the hand and card_04..card_12 as
// the opening tavern pool.
func testDeck() []*entities.Card {
	deck := make([]*entities.Card, 0, 18)
	for i := 1; i <= 16; i++ {
		deck = append(deck, &entities.Card{
			ID:     fmt.Sprintf("card_%02d", i),
			Name:   fmt.Sprintf("Regular %02d", i),
			BaseHP: 10,
			Rarity: entities.RarityCommon,
		})
	}

	// card_06 survives a first hit and bites back
	deck[5].BaseHP = 25
	deck[5].Abilities = map[entities.AbilitySlot]entities.Ability{
		entities.AbilitySlotNormal: {
			ID:    "ability_bite",
			Name:  "Bite",
			Kind:  entities.AbilityKindDamage,
			Value: 3,
		},
	}

	deck = append(deck,
		&entities.Card{
			ID:     "card_boss_01",
			Name:   "The Innkeeper",
			BaseHP: 12,
			IsBoss: true,
			Rarity: entities.RarityLegendary,
		},
		&entities.Card{
			ID:     "card_boss_02",
			Name:   "The Cellar King",
			BaseHP: 40,
			IsBoss: true,
			Rarity: entities.RarityLegendary,
		},
	)
	return deck
}

// serviceFixture wires a full orchestrator over miniredis with a
// deterministic catalog, sequential ids, and a fixed clock.
type serviceFixture struct {
	service game.Service
	cache   cache.SessionCache
	repo    gamesession.Repository
	cleanup func()
}

func newServiceFixture(t *testing.T, cards []*entities.Card) *serviceFixture {
	client, cleanup := testutils.CreateTestRedisClient(t)

	repo := gamesession.NewRedisRepository(client)
	catalogRepo := catalog.NewInMemory(&catalog.InMemoryConfig{
		Cards:  cards,
		Roller: &lowRoller{},
	})
	sessionCache := cache.NewLRU(cache.DefaultSize, cache.DefaultTTL)

	eng, err := brawl.New(&brawl.Config{})
	require.NoError(t, err)

	svc, err := game.New(&game.Config{
		SessionRepo: repo,
		CatalogRepo: catalogRepo,
		Cache:       sessionCache,
		Engine:      eng,
		IDGenerator: idgen.NewSequential("game"),
		Clock:       &clock.Fixed{T: time.Unix(1756000000, 0)},
	})
	require.NoError(t, err)

	return &serviceFixture{
		service: svc,
		cache:   sessionCache,
		repo:    repo,
		cleanup: cleanup,
	}
}

type OrchestratorTestSuite struct {
	suite.Suite
	fx  *serviceFixture
	ctx context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.fx = newServiceFixture(s.T(), testDeck())
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.fx.cleanup()
}

func (s *OrchestratorTestSuite) createGame() *entities.SessionAggregate {
	out, err := s.fx.service.CreateGame(s.ctx, &game.CreateGameInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	return out.Aggregate
}

func (s *OrchestratorTestSuite) TestCreateGame() {
	agg := s.createGame()

	s.Run("session starts active in the tavern phase", func() {
		s.Equal("game_1", agg.Session.ID)
		s.Equal("player_1", agg.Session.PlayerID)
		s.Equal(entities.StatusActive, agg.Session.Status)
		s.Equal(entities.PhaseTavern, agg.Session.Phase)
		s.Equal(int64(1), agg.Session.Version)
	})

	s.Run("starting hand lands in the reserve", func() {
		s.Require().Len(agg.Inventory, game.StartingHandSize)
		for _, entry := range agg.Inventory {
			s.Equal(entities.LocationReserve, entry.Location)
		}
	})

	s.Run("tavern pool is full", func() {
		s.Require().Len(agg.Tavern, entities.TavernPoolSize)
		for i, slot := range agg.Tavern {
			s.Equal(int32(i), slot.Position)
			s.Equal(slot.Card.BaseHP, slot.CurrentHP)
			s.Equal(slot.Card.BaseShield, slot.CurrentShield)
		}
	})

	s.Run("hand and pool never overlap", func() {
		seen := make(map[string]bool)
		for _, entry := range agg.Inventory {
			s.False(seen[entry.Card.ID])
			seen[entry.Card.ID] = true
		}
		for _, slot := range agg.Tavern {
			s.False(seen[slot.Card.ID])
			seen[slot.Card.ID] = true
		}
	})

	s.Run("player id is required", func() {
		_, err := s.fx.service.CreateGame(s.ctx, &game.CreateGameInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestGetGame() {
	created := s.createGame()

	s.Run("loads through the cache", func() {
		out, err := s.fx.service.GetGame(s.ctx, &game.GetGameInput{SessionID: created.Session.ID})
		s.Require().NoError(err)
		s.Equal(created.Session.ID, out.Aggregate.Session.ID)
	})

	s.Run("survives a cache flush unchanged", func() {
		before, err := s.fx.service.GetGame(s.ctx, &game.GetGameInput{SessionID: created.Session.ID})
		s.Require().NoError(err)

		s.fx.cache.Purge()

		after, err := s.fx.service.GetGame(s.ctx, &game.GetGameInput{SessionID: created.Session.ID})
		s.Require().NoError(err)

		s.Equal(before.Aggregate.Session, after.Aggregate.Session)
		s.Equal(len(before.Aggregate.Inventory), len(after.Aggregate.Inventory))
		s.Equal(len(before.Aggregate.Tavern), len(after.Aggregate.Tavern))
	})

	s.Run("unknown session returns NotFound", func() {
		_, err := s.fx.service.GetGame(s.ctx, &game.GetGameInput{SessionID: "game_nope"})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestVersionMonotonic() {
	agg := s.createGame()
	id := agg.Session.ID
	s.Equal(int64(1), agg.Session.Version)

	out1, err := s.fx.service.AdvanceTurn(s.ctx, &game.AdvanceTurnInput{SessionID: id})
	s.Require().NoError(err)
	s.Equal(int64(2), out1.Aggregate.Session.Version)

	out2, err := s.fx.service.AdvanceTurn(s.ctx, &game.AdvanceTurnInput{SessionID: id})
	s.Require().NoError(err)
	s.Equal(int64(3), out2.Aggregate.Session.Version)
}

func (s *OrchestratorTestSuite) TestConflictSelfHeals() {
	agg := s.createGame()
	id := agg.Session.ID

	// Advance the stored version behind the cache's back
	stale, err := s.fx.repo.Get(s.ctx, &gamesession.GetInput{SessionID: id})
	s.Require().NoError(err)
	side := stale.Aggregate.Clone()
	side.Session.Turn = 7
	_, err = s.fx.repo.Save(s.ctx, &gamesession.SaveInput{
		Aggregate:       side,
		ExpectedVersion: 1,
	})
	s.Require().NoError(err)

	s.Run("stale snapshot surfaces a conflict", func() {
		_, err := s.fx.service.AdvanceTurn(s.ctx, &game.AdvanceTurnInput{SessionID: id})
		s.Require().Error(err)
		s.True(errors.IsConflict(err))
	})

	s.Run("retry after the conflict succeeds against fresh state", func() {
		out, err := s.fx.service.AdvanceTurn(s.ctx, &game.AdvanceTurnInput{SessionID: id})
		s.Require().NoError(err)
		s.Equal(int64(3), out.Aggregate.Session.Version)
		s.Equal(int32(8), out.Aggregate.Session.Turn)
	})
}

func (s *OrchestratorTestSuite) TestListGames() {
	first := s.createGame()

	second, err := s.fx.service.CreateGame(s.ctx, &game.CreateGameInput{PlayerID: "player_1"})
	s.Require().NoError(err)

	_, err = s.fx.service.AbandonGame(s.ctx, &game.AbandonGameInput{SessionID: first.Session.ID})
	s.Require().NoError(err)

	out, err := s.fx.service.ListGames(s.ctx, &game.ListGamesInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Aggregates, 2)

	s.Run("active runs sort first", func() {
		s.Equal(second.Aggregate.Session.ID, out.Aggregates[0].Session.ID)
		s.Equal(entities.StatusActive, out.Aggregates[0].Session.Status)
		s.Equal(entities.StatusAbandoned, out.Aggregates[1].Session.Status)
	})
}

func (s *OrchestratorTestSuite) TestSetPhase() {
	agg := s.createGame()
	id := agg.Session.ID

	s.Run("entering combat seats the next boss", func() {
		out, err := s.fx.service.SetPhase(s.ctx, &game.SetPhaseInput{
			SessionID: id,
			Phase:     "combat",
		})
		s.Require().NoError(err)

		s.Equal(entities.PhaseCombat, out.Aggregate.Session.Phase)
		s.Require().Len(out.Aggregate.Tavern, 1)
		s.True(out.Aggregate.Tavern[0].Card.IsBoss)
		s.Equal("card_boss_01", out.Aggregate.Tavern[0].Card.ID)
	})

	s.Run("returning to the tavern refills the pool", func() {
		out, err := s.fx.service.SetPhase(s.ctx, &game.SetPhaseInput{
			SessionID: id,
			Phase:     "tavern",
		})
		s.Require().NoError(err)

		s.Equal(entities.PhaseTavern, out.Aggregate.Session.Phase)
		s.Len(out.Aggregate.Tavern, entities.TavernPoolSize)
	})

	s.Run("unknown phase is rejected", func() {
		_, err := s.fx.service.SetPhase(s.ctx, &game.SetPhaseInput{
			SessionID: id,
			Phase:     "intermission",
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidPhase(err))
	})

	s.Run("terminal phases complete the run", func() {
		out, err := s.fx.service.SetPhase(s.ctx, &game.SetPhaseInput{
			SessionID: id,
			Phase:     "defeat",
		})
		s.Require().NoError(err)
		s.Equal(entities.StatusCompleted, out.Aggregate.Session.Status)
	})

	s.Run("terminal phases have no exits", func() {
		_, err := s.fx.service.SetPhase(s.ctx, &game.SetPhaseInput{
			SessionID: id,
			Phase:     "tavern",
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidPhase(err))
	})
}

func (s *OrchestratorTestSuite) TestAbandonGame() {
	agg := s.createGame()
	id := agg.Session.ID

	out, err := s.fx.service.AbandonGame(s.ctx, &game.AbandonGameInput{SessionID: id})
	s.Require().NoError(err)
	s.Equal(entities.StatusAbandoned, out.Aggregate.Session.Status)

	s.Run("abandoned runs reject mutation", func() {
		_, err := s.fx.service.AdvanceTurn(s.ctx, &game.AdvanceTurnInput{SessionID: id})
		s.Require().Error(err)
		s.True(errors.IsInvalidPhase(err))
	})

	s.Run("abandoning twice fails", func() {
		_, err := s.fx.service.AbandonGame(s.ctx, &game.AbandonGameInput{SessionID: id})
		s.Require().Error(err)
		s.True(errors.IsInvalidPhase(err))
	})
}

func (s *OrchestratorTestSuite) TestDeleteGame() {
	agg := s.createGame()
	id := agg.Session.ID

	_, err := s.fx.service.DeleteGame(s.ctx, &game.DeleteGameInput{SessionID: id})
	s.Require().NoError(err)

	_, err = s.fx.service.GetGame(s.ctx, &game.GetGameInput{SessionID: id})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestAdvanceTurn() {
	agg := s.createGame()
	startTurn := agg.Session.Turn

	out, err := s.fx.service.AdvanceTurn(s.ctx, &game.AdvanceTurnInput{SessionID: agg.Session.ID})
	s.Require().NoError(err)
	s.Equal(startTurn+1, out.Aggregate.Session.Turn)
}

// Same-session commands serialize behind the session lock: firing many
// turns at once loses none of them, and every save lands on a fresh
// version with no conflicts.
func (s *OrchestratorTestSuite) TestConcurrentAdvanceTurnsSerialize() {
	agg := s.createGame()
	startTurn := agg.Session.Turn
	startVersion := agg.Session.Version

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.fx.service.AdvanceTurn(s.ctx, &game.AdvanceTurnInput{
				SessionID: agg.Session.ID,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}

	got, err := s.fx.service.GetGame(s.ctx, &game.GetGameInput{SessionID: agg.Session.ID})
	s.Require().NoError(err)
	s.Equal(startTurn+workers, got.Aggregate.Session.Turn)
	s.Equal(startVersion+workers, got.Aggregate.Session.Version)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
