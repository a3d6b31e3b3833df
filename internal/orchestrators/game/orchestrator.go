// Package game implements the game session store: the aggregate-owning
// orchestrator behind every inventory, tavern, and combat operation.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/hearthforge/tavern-api/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/hearthforge/tavern-api/internal/cache"
	"github.com/hearthforge/tavern-api/internal/engine"
	"github.com/hearthforge/tavern-api/internal/entities"
	"github.com/hearthforge/tavern-api/internal/errors"
	"github.com/hearthforge/tavern-api/internal/pkg/clock"
	"github.com/hearthforge/tavern-api/internal/pkg/idgen"
	"github.com/hearthforge/tavern-api/internal/repositories/catalog"
	"github.com/hearthforge/tavern-api/internal/repositories/gamesession"
)

// StartingHandSize is how many reserve cards a fresh run begins with
const StartingHandSize = 3

// Service defines the game session store operations
type Service interface {
	// CreateGame starts a run: a fresh session, a starting hand, and a
	// full tavern pool
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame loads a run through the snapshot cache
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// ListGames returns a player's runs, active first
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// Equip moves a reserve card into an equipment slot
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)

	// Unequip returns an equipped card to the reserve
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)

	// Discard permanently removes a reserve card
	Discard(ctx context.Context, input *DiscardInput) (*DiscardOutput, error)

	// UpgradeSlot raises a slot type's capacity by one
	UpgradeSlot(ctx context.Context, input *UpgradeSlotInput) (*UpgradeSlotOutput, error)

	// Attack resolves one combat turn against a tavern card
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// ReplenishTavern refills empty tavern positions from the catalog
	ReplenishTavern(ctx context.Context, input *ReplenishTavernInput) (*ReplenishTavernOutput, error)

	// AdvanceTurn bumps the turn counter without resolving combat
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)

	// SetPhase performs a validated phase transition
	SetPhase(ctx context.Context, input *SetPhaseInput) (*SetPhaseOutput, error)

	// AbandonGame marks the run abandoned; no further mutation is allowed
	AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error)

	// DeleteGame removes the run from storage and cache
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	SessionRepo gamesession.Repository
	CatalogRepo catalog.Repository
	Cache       cache.SessionCache
	Engine      engine.Engine
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.Cache == nil {
		vb.RequiredField("Cache")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	sessionRepo gamesession.Repository
	catalogRepo catalog.Repository
	cache       cache.SessionCache
	engine      engine.Engine
	idGen       idgen.Generator
	clock       clock.Clock

	// locks serializes mutations per session id. Operations on distinct
	// sessions run concurrently; same-session commands never interleave.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a game orchestrator with the provided dependencies
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		sessionRepo: cfg.SessionRepo,
		catalogRepo: cfg.CatalogRepo,
		cache:       cfg.Cache,
		engine:      cfg.Engine,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		locks:       make(map[string]*sync.Mutex),
	}, nil
}

var _ Service = (*Orchestrator)(nil)

// sessionLock returns the mutex guarding one session id
func (o *Orchestrator) sessionLock(sessionID string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()

	lock, ok := o.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		o.locks[sessionID] = lock
	}
	return lock
}

// dropSessionLock forgets a session's mutex so the map does not grow one
// entry per run for the life of the process. Only called once the session
// can no longer be mutated; a racer still holding the old mutex can only
// observe a not-found or rejected write afterwards.
func (o *Orchestrator) dropSessionLock(sessionID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.locks, sessionID)
}

// loadAggregate is the read-through path: cache hit wins, a miss loads
// from the durable store and repopulates the cache.
func (o *Orchestrator) loadAggregate(ctx context.Context, sessionID string) (*entities.SessionAggregate, error) {
	if agg, ok := o.cache.Get(sessionID); ok {
		return agg, nil
	}

	out, err := o.sessionRepo.Get(ctx, &gamesession.GetInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	o.cache.Set(sessionID, out.Aggregate)
	return out.Aggregate, nil
}

// mutate runs fn against a working copy of the aggregate under the
// session's lock, persists with a version check, and rewrites the cache.
// A failure at any point leaves storage and cache consistent: storage is
// untouched on validation errors, and the cache entry is dropped whenever
// its freshness is in doubt.
func (o *Orchestrator) mutate(ctx context.Context, sessionID string, fn func(agg *entities.SessionAggregate) error) (*entities.SessionAggregate, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	lock := o.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	loaded, err := o.loadAggregate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	loadedVersion := loaded.Session.Version

	// Mutate a deep copy so a failed operation leaves no partial state
	working := loaded.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	working.Session.UpdatedAt = o.clock.Now().Unix()

	saveOut, err := o.sessionRepo.Save(ctx, &gamesession.SaveInput{
		Aggregate:       working,
		ExpectedVersion: loadedVersion,
	})
	if err != nil {
		// A conflict means our snapshot was stale; drop it so the next
		// read reloads from the durable store
		if errors.IsConflict(err) {
			o.cache.Delete(sessionID)
		}
		return nil, err
	}

	working.Session.Version = saveOut.NewVersion
	o.cache.Set(sessionID, working)

	return working, nil
}

// requireMutable rejects mutation of finished or abandoned runs
func requireMutable(agg *entities.SessionAggregate) error {
	if agg.Session.Status != entities.StatusActive {
		return errors.InvalidPhasef("game is %s and can no longer change", agg.Session.Status)
	}
	if agg.Session.Phase.IsTerminal() {
		return errors.InvalidPhasef("game has reached the %s phase", agg.Session.Phase)
	}
	return nil
}

// CreateGame starts a run with a starting hand and a full tavern pool
func (o *Orchestrator) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	sessionID := o.idGen.Generate()

	agg := &entities.SessionAggregate{
		Session: &entities.GameSession{
			ID:        sessionID,
			PlayerID:  input.PlayerID,
			Status:    entities.StatusActive,
			Phase:     entities.PhaseTavern,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	// Starting hand goes to the reserve; the player equips from there
	handOut, err := o.catalogRepo.GetRandomCards(ctx, &catalog.GetRandomCardsInput{
		Count: StartingHandSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw starting hand")
	}
	for _, card := range handOut.Cards {
		agg.Inventory = append(agg.Inventory, &entities.InventoryEntry{
			GameID:   sessionID,
			Card:     *card,
			Location: entities.LocationReserve,
		})
	}

	if _, err := o.replenish(ctx, agg); err != nil {
		return nil, errors.Wrap(err, "failed to seat the opening tavern pool")
	}

	createOut, err := o.sessionRepo.Create(ctx, &gamesession.CreateInput{Aggregate: agg})
	if err != nil {
		return nil, err
	}

	o.cache.Set(sessionID, createOut.Aggregate)

	slog.Info("game created",
		"session_id", sessionID,
		"player_id", input.PlayerID,
		"hand_size", len(createOut.Aggregate.Inventory),
	)

	return &CreateGameOutput{Aggregate: createOut.Aggregate}, nil
}

// GetGame loads a run through the snapshot cache
func (o *Orchestrator) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	agg, err := o.loadAggregate(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{Aggregate: agg}, nil
}

// ListGames returns a player's runs, active first
func (o *Orchestrator) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.sessionRepo.ListByPlayer(ctx, &gamesession.ListByPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	aggregates := out.Aggregates
	sort.SliceStable(aggregates, func(i, j int) bool {
		iActive := aggregates[i].Session.Status == entities.StatusActive
		jActive := aggregates[j].Session.Status == entities.StatusActive
		if iActive != jActive {
			return iActive
		}
		return aggregates[i].Session.CreatedAt > aggregates[j].Session.CreatedAt
	})

	return &ListGamesOutput{Aggregates: aggregates}, nil
}

// AdvanceTurn bumps the turn counter without resolving combat
func (o *Orchestrator) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	agg, err := o.mutate(ctx, input.SessionID, func(agg *entities.SessionAggregate) error {
		if err := requireMutable(agg); err != nil {
			return err
		}
		agg.Session.Turn++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AdvanceTurnOutput{Aggregate: agg}, nil
}

// legalPhaseTransitions lists the allowed phase moves. Terminal phases
// have no exits.
var legalPhaseTransitions = map[entities.GamePhase][]entities.GamePhase{
	entities.PhaseTavern: {entities.PhaseCombat, entities.PhaseVictory, entities.PhaseDefeat},
	entities.PhaseCombat: {entities.PhaseTavern, entities.PhaseVictory, entities.PhaseDefeat},
}

// SetPhase performs a validated phase transition
func (o *Orchestrator) SetPhase(ctx context.Context, input *SetPhaseInput) (*SetPhaseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	target := entities.GamePhase(input.Phase)
	switch target {
	case entities.PhaseTavern, entities.PhaseCombat, entities.PhaseVictory, entities.PhaseDefeat:
	default:
		return nil, errors.InvalidPhasef("unknown phase %q", input.Phase)
	}

	agg, err := o.mutate(ctx, input.SessionID, func(agg *entities.SessionAggregate) error {
		if agg.Session.Status != entities.StatusActive {
			return errors.InvalidPhasef("game is %s and can no longer change", agg.Session.Status)
		}

		current := agg.Session.Phase
		allowed := false
		for _, next := range legalPhaseTransitions[current] {
			if next == target {
				allowed = true
				break
			}
		}
		if !allowed {
			return errors.InvalidPhasef("cannot move from %s to %s", current, target)
		}

		agg.Session.Phase = target
		if target.IsTerminal() {
			agg.Session.Status = entities.StatusCompleted
			return nil
		}

		// Combat is the boss arena; the tavern pool swaps for the boss on
		// the way in and refills on the way back out
		switch target {
		case entities.PhaseCombat:
			if current == entities.PhaseTavern {
				return o.enterCombat(ctx, agg)
			}
		case entities.PhaseTavern:
			if current == entities.PhaseCombat {
				agg.Tavern = nil
				if _, err := o.replenish(ctx, agg); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SetPhaseOutput{Aggregate: agg}, nil
}

// AbandonGame marks the run abandoned
func (o *Orchestrator) AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	agg, err := o.mutate(ctx, input.SessionID, func(agg *entities.SessionAggregate) error {
		if agg.Session.Status != entities.StatusActive {
			return errors.InvalidPhasef("game is already %s", agg.Session.Status)
		}
		agg.Session.Status = entities.StatusAbandoned
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.dropSessionLock(input.SessionID)

	slog.Info("game abandoned", "session_id", input.SessionID)

	return &AbandonGameOutput{Aggregate: agg}, nil
}

// DeleteGame removes the run from storage and cache
func (o *Orchestrator) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	lock := o.sessionLock(input.SessionID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := o.sessionRepo.Delete(ctx, &gamesession.DeleteInput{SessionID: input.SessionID}); err != nil {
		return nil, err
	}

	o.cache.Delete(input.SessionID)
	o.dropSessionLock(input.SessionID)

	slog.Info("game deleted", "session_id", input.SessionID)

	return &DeleteGameOutput{}, nil
}
