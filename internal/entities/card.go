package entities

// Card is catalog reference data, immutable within a run. Other entities
// hold cards by value so a run is unaffected by catalog edits.
type Card struct {
	ID         string
	Name       string
	BaseHP     int32
	BaseShield int32
	Rarity     Rarity
	IsBoss     bool

	// Abilities holds at most one ability per ability slot
	Abilities map[AbilitySlot]Ability
}

// GetID returns the card's unique identifier
func (c *Card) GetID() string {
	return c.ID
}

// GetType returns the entity type for the card
func (c *Card) GetType() string {
	return "card"
}

// AbilityIn returns the ability in the given slot, if any
func (c *Card) AbilityIn(slot AbilitySlot) (Ability, bool) {
	a, ok := c.Abilities[slot]
	return a, ok
}

// Ability is a catalog-defined card ability
type Ability struct {
	ID          string
	Name        string
	Kind        AbilityKind
	Value       int32
	Description string
}
