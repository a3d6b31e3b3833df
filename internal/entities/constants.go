package entities

// TavernPoolSize is the number of opponent cards available while the game
// is in the tavern phase. The pool is always refilled back to this size in
// the same turn a card is defeated.
const TavernPoolSize = 9

// DefaultSlotCapacity is the capacity of a slot with no upgrade record.
const DefaultSlotCapacity = 1

// SlotType identifies an equipment slot on the player's loadout
type SlotType string

// Equipment slot types
const (
	SlotHP      SlotType = "hp"
	SlotShield  SlotType = "shield"
	SlotSpecial SlotType = "special"
	SlotPassive SlotType = "passive"
	SlotNormal  SlotType = "normal"
)

// AllSlotTypes lists every valid slot type
var AllSlotTypes = []SlotType{SlotHP, SlotShield, SlotSpecial, SlotPassive, SlotNormal}

// IsValid reports whether the slot type is one of the defined slots
func (s SlotType) IsValid() bool {
	switch s {
	case SlotHP, SlotShield, SlotSpecial, SlotPassive, SlotNormal:
		return true
	default:
		return false
	}
}

// String returns the string representation of the slot type
func (s SlotType) String() string {
	return string(s)
}

// AbilitySlot identifies which of a card's ability slots an ability occupies
type AbilitySlot string

// Ability slots
const (
	AbilitySlotSpecial AbilitySlot = "special"
	AbilitySlotNormal  AbilitySlot = "normal"
	AbilitySlotPassive AbilitySlot = "passive"
)

// AbilityResolutionOrder is the fixed order retaliation abilities resolve in.
// Special fires first, then normal, then passive.
var AbilityResolutionOrder = []AbilitySlot{AbilitySlotSpecial, AbilitySlotNormal, AbilitySlotPassive}

// AbilityKind classifies what an ability does when it triggers
type AbilityKind string

// Ability kinds
const (
	AbilityKindDamage AbilityKind = "damage"
	AbilityKindHeal   AbilityKind = "heal"
	AbilityKindShield AbilityKind = "shield"
)

// CardLocation is where a player-owned card currently sits
type CardLocation string

// Card locations
const (
	LocationReserve  CardLocation = "reserve"
	LocationEquipped CardLocation = "equipped"
)

// GamePhase is the phase an in-progress run is in
type GamePhase string

// Game phases
const (
	PhaseTavern  GamePhase = "tavern"
	PhaseCombat  GamePhase = "combat"
	PhaseVictory GamePhase = "victory"
	PhaseDefeat  GamePhase = "defeat"
)

// IsTerminal reports whether the phase ends the run
func (p GamePhase) IsTerminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// GameStatus is the lifecycle status of a session
type GameStatus string

// Game statuses
const (
	StatusActive    GameStatus = "active"
	StatusCompleted GameStatus = "completed"
	StatusAbandoned GameStatus = "abandoned"
)

// Rarity is a card's rarity tier
type Rarity string

// Rarity tiers
const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Combat log actor names
const (
	ActorPlayer = "player"
	ActorTavern = "tavern"
)

// Combat log action names
const (
	ActionPlayerAttack = "player_attack"
	ActionDefeated     = "defeated"
	ActionReplenish    = "replenish"
	ActionAbility      = "ability"
	ActionShieldRegen  = "shield_regen"
	ActionPlayerDefeat = "player_defeat"
)
