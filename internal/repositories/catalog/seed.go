package catalog

import (
	"github.com/hearthforge/tavern-api/internal/entities"
)

// SeedCards returns the built-in catalog used when no card set is supplied.
// IDs are stable; gameplay balance lives in the stat numbers only.
func SeedCards() []*entities.Card {
	return []*entities.Card{
		{ID: "card_rat_swarm", Name: "Rat Swarm", BaseHP: 8, BaseShield: 0, Rarity: entities.RarityCommon},
		{ID: "card_cellar_spider", Name: "Cellar Spider", BaseHP: 10, BaseShield: 2, Rarity: entities.RarityCommon,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotNormal: {ID: "ab_venom_bite", Name: "Venom Bite", Kind: entities.AbilityKindDamage, Value: 3,
					Description: "A poisoned bite against the attacker"},
			}},
		{ID: "card_drunk_goblin", Name: "Drunk Goblin", BaseHP: 12, BaseShield: 0, Rarity: entities.RarityCommon,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotNormal: {ID: "ab_bottle_smash", Name: "Bottle Smash", Kind: entities.AbilityKindDamage, Value: 4,
					Description: "Smashes a bottle over the attacker's head"},
			}},
		{ID: "card_tavern_brawler", Name: "Tavern Brawler", BaseHP: 15, BaseShield: 3, Rarity: entities.RarityCommon,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotNormal: {ID: "ab_haymaker", Name: "Haymaker", Kind: entities.AbilityKindDamage, Value: 5,
					Description: "A wild swinging punch"},
			}},
		{ID: "card_stray_hound", Name: "Stray Hound", BaseHP: 11, BaseShield: 0, Rarity: entities.RarityCommon},
		{ID: "card_pickpocket", Name: "Pickpocket", BaseHP: 9, BaseShield: 1, Rarity: entities.RarityCommon,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotSpecial: {ID: "ab_dirty_trick", Name: "Dirty Trick", Kind: entities.AbilityKindDamage, Value: 2,
					Description: "A cheap shot while you count your coin"},
			}},
		{ID: "card_mead_golem", Name: "Mead Golem", BaseHP: 20, BaseShield: 6, Rarity: entities.RarityRare,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotPassive: {ID: "ab_sticky_hide", Name: "Sticky Hide", Kind: entities.AbilityKindShield, Value: 3,
					Description: "Hardens its candied crust"},
			}},
		{ID: "card_barrel_mimic", Name: "Barrel Mimic", BaseHP: 18, BaseShield: 4, Rarity: entities.RarityRare,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotNormal: {ID: "ab_snap_shut", Name: "Snap Shut", Kind: entities.AbilityKindDamage, Value: 6,
					Description: "Slams its lid on the attacker"},
			}},
		{ID: "card_fire_imp", Name: "Fire Imp", BaseHP: 13, BaseShield: 0, Rarity: entities.RarityRare,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotSpecial: {ID: "ab_cinder_spit", Name: "Cinder Spit", Kind: entities.AbilityKindDamage, Value: 7,
					Description: "Spits burning embers"},
				entities.AbilitySlotPassive: {ID: "ab_warm_glow", Name: "Warm Glow", Kind: entities.AbilityKindHeal, Value: 2,
					Description: "Feeds on ambient heat"},
			}},
		{ID: "card_bog_witch", Name: "Bog Witch", BaseHP: 16, BaseShield: 2, Rarity: entities.RarityRare,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotSpecial: {ID: "ab_hex", Name: "Hex", Kind: entities.AbilityKindDamage, Value: 5,
					Description: "Mutters a stinging curse"},
				entities.AbilitySlotNormal: {ID: "ab_brew_sip", Name: "Brew Sip", Kind: entities.AbilityKindHeal, Value: 4,
					Description: "Sips a restorative brew"},
			}},
		{ID: "card_rust_knight", Name: "Rust Knight", BaseHP: 22, BaseShield: 8, Rarity: entities.RarityRare},
		{ID: "card_cave_bear", Name: "Cave Bear", BaseHP: 25, BaseShield: 0, Rarity: entities.RarityRare,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotNormal: {ID: "ab_maul", Name: "Maul", Kind: entities.AbilityKindDamage, Value: 8,
					Description: "A crushing swipe"},
			}},
		{ID: "card_grave_shade", Name: "Grave Shade", BaseHP: 14, BaseShield: 5, Rarity: entities.RarityEpic,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotSpecial: {ID: "ab_chill_touch", Name: "Chill Touch", Kind: entities.AbilityKindDamage, Value: 9,
					Description: "A touch that drains warmth"},
				entities.AbilitySlotPassive: {ID: "ab_fade", Name: "Fade", Kind: entities.AbilityKindShield, Value: 4,
					Description: "Slips halfway out of reach"},
			}},
		{ID: "card_ogre_bouncer", Name: "Ogre Bouncer", BaseHP: 30, BaseShield: 5, Rarity: entities.RarityEpic,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotNormal: {ID: "ab_eject", Name: "Eject", Kind: entities.AbilityKindDamage, Value: 10,
					Description: "Hurls the attacker across the room"},
			}},
		{ID: "card_hearth_drake", Name: "Hearth Drake", BaseHP: 26, BaseShield: 7, Rarity: entities.RarityEpic,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotSpecial: {ID: "ab_flame_gout", Name: "Flame Gout", Kind: entities.AbilityKindDamage, Value: 12,
					Description: "Breathes a gout of hearth-fire"},
				entities.AbilitySlotPassive: {ID: "ab_ember_scales", Name: "Ember Scales", Kind: entities.AbilityKindShield, Value: 5,
					Description: "Scales glow and harden"},
			}},
		{ID: "card_wandering_bard", Name: "Wandering Bard", BaseHP: 12, BaseShield: 3, Rarity: entities.RarityCommon,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotSpecial: {ID: "ab_cutting_verse", Name: "Cutting Verse", Kind: entities.AbilityKindDamage, Value: 4,
					Description: "An insult sharp enough to wound"},
			}},
		{ID: "card_keg_sprite", Name: "Keg Sprite", BaseHP: 7, BaseShield: 2, Rarity: entities.RarityCommon,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotPassive: {ID: "ab_foam_shield", Name: "Foam Shield", Kind: entities.AbilityKindShield, Value: 2,
					Description: "Hides in a wall of foam"},
			}},
		{ID: "card_iron_rooster", Name: "Iron Rooster", BaseHP: 17, BaseShield: 9, Rarity: entities.RarityRare},
		{ID: "card_moor_troll", Name: "Moor Troll", BaseHP: 28, BaseShield: 2, Rarity: entities.RarityEpic,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotNormal: {ID: "ab_regrow", Name: "Regrow", Kind: entities.AbilityKindHeal, Value: 6,
					Description: "Knits its wounds closed"},
			}},
		{ID: "card_dust_wraith", Name: "Dust Wraith", BaseHP: 15, BaseShield: 6, Rarity: entities.RarityEpic,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotSpecial: {ID: "ab_smother", Name: "Smother", Kind: entities.AbilityKindDamage, Value: 8,
					Description: "A blinding cloud of dust"},
			}},
		{ID: "card_salt_gargoyle", Name: "Salt Gargoyle", BaseHP: 19, BaseShield: 10, Rarity: entities.RarityRare},
		{ID: "card_pit_fiddler", Name: "Pit Fiddler", BaseHP: 10, BaseShield: 1, Rarity: entities.RarityCommon,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotNormal: {ID: "ab_screech", Name: "Screech", Kind: entities.AbilityKindDamage, Value: 3,
					Description: "A bow-scrape that sets teeth on edge"},
			}},

		// Boss pool; never enters the tavern draw
		{ID: "card_boss_innkeeper", Name: "The Innkeeper", BaseHP: 60, BaseShield: 15, Rarity: entities.RarityLegendary, IsBoss: true,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotSpecial: {ID: "ab_last_call", Name: "Last Call", Kind: entities.AbilityKindDamage, Value: 15,
					Description: "Throws the whole bar at you"},
				entities.AbilitySlotNormal: {ID: "ab_lock_up", Name: "Lock Up", Kind: entities.AbilityKindShield, Value: 10,
					Description: "Bars the doors"},
				entities.AbilitySlotPassive: {ID: "ab_house_rules", Name: "House Rules", Kind: entities.AbilityKindHeal, Value: 5,
					Description: "The house always recovers"},
			}},
		{ID: "card_boss_cellar_king", Name: "King Under the Cellar", BaseHP: 75, BaseShield: 20, Rarity: entities.RarityLegendary, IsBoss: true,
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.AbilitySlotSpecial: {ID: "ab_root_crush", Name: "Root Crush", Kind: entities.AbilityKindDamage, Value: 18,
					Description: "Roots burst from the floor"},
				entities.AbilitySlotNormal: {ID: "ab_dank_mantle", Name: "Dank Mantle", Kind: entities.AbilityKindShield, Value: 12,
					Description: "Wraps itself in cold earth"},
			}},
	}
}
