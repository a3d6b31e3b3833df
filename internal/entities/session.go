package entities

// GameSession is the aggregate root for one roguelike run.
// NOTE: This is a data-only struct. PlayerMaxHP has no independent value;
// it is always recomputed from the equipped hp cards by the inventory code.
type GameSession struct {
	ID           string
	PlayerID     string
	Status       GameStatus
	Phase        GamePhase
	Turn         int32
	PlayerHP     int32
	PlayerMaxHP  int32
	BossDefeated bool

	// Version increments on every persisted mutation. Saves carrying a
	// stale version fail with a conflict.
	Version   int64
	CreatedAt int64
	UpdatedAt int64
}

// GetID returns the session's unique identifier
func (g *GameSession) GetID() string {
	return g.ID
}

// GetType returns the entity type for the session
func (g *GameSession) GetType() string {
	return "game_session"
}

// InventoryEntry is one player-owned card within a session. SlotType and
// Position are set if and only if Location is equipped.
type InventoryEntry struct {
	GameID   string
	Card     Card
	Location CardLocation
	SlotType SlotType
	Position int32
}

// IsEquipped reports whether the entry occupies an equipment slot
func (e *InventoryEntry) IsEquipped() bool {
	return e.Location == LocationEquipped
}

// SlotCapacity is a per-session capacity upgrade record for one slot type.
// Absence of a record means DefaultSlotCapacity.
type SlotCapacity struct {
	GameID   string
	SlotType SlotType
	Capacity int32
}

// TavernSlot is one live opponent card in the tavern pool. CurrentHP and
// CurrentShield track accumulated damage; the card's base stats stay intact.
type TavernSlot struct {
	GameID        string
	Card          Card
	Position      int32
	CurrentHP     int32
	CurrentShield int32
}

// CombatLogEntry describes one step of a resolved combat turn. Entries are
// ephemeral: returned to callers in order, never persisted with the session.
type CombatLogEntry struct {
	Actor          string
	Action         string
	Target         string
	ShieldAbsorbed int32
	Damage         int32
	Result         string
}
