package catalog

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/hearthforge/tavern-api/internal/entities"
	"github.com/hearthforge/tavern-api/internal/errors"
)

// InMemoryRepository implements Repository over a static card table.
// Random draws go through an injected dice.Roller so tests can pin the
// draw order.
type InMemoryRepository struct {
	cards  map[string]*entities.Card
	roller dice.Roller
}

// InMemoryConfig holds the dependencies for the in-memory catalog
type InMemoryConfig struct {
	// Cards is the catalog content; nil loads the built-in seed set
	Cards []*entities.Card

	// Roller drives random draws; nil uses the default roller
	Roller dice.Roller
}

// NewInMemory creates a catalog repository over the given card set
func NewInMemory(cfg *InMemoryConfig) *InMemoryRepository {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}

	cards := cfg.Cards
	if cards == nil {
		cards = SeedCards()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	store := make(map[string]*entities.Card, len(cards))
	for _, c := range cards {
		store[c.ID] = c
	}

	return &InMemoryRepository{
		cards:  store,
		roller: roller,
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// GetCardByID retrieves a single card by id
func (r *InMemoryRepository) GetCardByID(ctx context.Context, input *GetCardByIDInput) (*GetCardByIDOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CardID == "" {
		return nil, errors.InvalidArgument("card ID is required")
	}

	card, exists := r.cards[input.CardID]
	if !exists {
		return nil, errors.CardNotFoundf("card %s not in catalog", input.CardID)
	}

	return &GetCardByIDOutput{Card: copyCard(card)}, nil
}

// ListCards returns the catalog contents in stable id order
func (r *InMemoryRepository) ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error) {
	if input == nil {
		input = &ListCardsInput{}
	}

	cards := make([]*entities.Card, 0, len(r.cards))
	for _, c := range r.cards {
		if c.IsBoss && !input.IncludeBoss {
			continue
		}
		cards = append(cards, copyCard(c))
	}
	sortCards(cards)

	return &ListCardsOutput{Cards: cards}, nil
}

// GetRandomCards draws Count distinct non-boss cards not in ExcludeIDs
func (r *InMemoryRepository) GetRandomCards(ctx context.Context, input *GetRandomCardsInput) (*GetRandomCardsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Count <= 0 {
		return nil, errors.InvalidArgumentf("draw count must be positive, got %d", input.Count)
	}

	excluded := make(map[string]bool, len(input.ExcludeIDs))
	for _, id := range input.ExcludeIDs {
		excluded[id] = true
	}

	eligible := make([]*entities.Card, 0, len(r.cards))
	for _, c := range r.cards {
		if c.IsBoss || excluded[c.ID] {
			continue
		}
		eligible = append(eligible, c)
	}
	// Stable order so a pinned roller yields a reproducible draw
	sortCards(eligible)

	if len(eligible) < input.Count {
		return nil, errors.InsufficientCatalogf(
			"need %d cards but only %d eligible cards remain in the catalog",
			input.Count, len(eligible))
	}

	drawn := make([]*entities.Card, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		// Roll returns a value in [1, size]
		n, err := r.roller.Roll(len(eligible))
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll card draw")
		}
		idx := n - 1
		drawn = append(drawn, copyCard(eligible[idx]))
		eligible = append(eligible[:idx], eligible[idx+1:]...)
	}

	return &GetRandomCardsOutput{Cards: drawn}, nil
}

// ListBossCards returns the boss pool in stable id order
func (r *InMemoryRepository) ListBossCards(ctx context.Context, input *ListBossCardsInput) (*ListBossCardsOutput, error) {
	var bosses []*entities.Card
	for _, c := range r.cards {
		if c.IsBoss {
			bosses = append(bosses, copyCard(c))
		}
	}
	sortCards(bosses)

	return &ListBossCardsOutput{Cards: bosses}, nil
}

// copyCard returns a copy so callers cannot mutate catalog data
func copyCard(c *entities.Card) *entities.Card {
	out := *c
	if c.Abilities != nil {
		out.Abilities = make(map[entities.AbilitySlot]entities.Ability, len(c.Abilities))
		for slot, ability := range c.Abilities {
			out.Abilities[slot] = ability
		}
	}
	return &out
}

func sortCards(cards []*entities.Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].ID < cards[j].ID
	})
}
