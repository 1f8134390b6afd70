package catalog

import "shopkeep/internal/domain/entity"

// Recipe ids referenced outside the catalog.
const (
	IronDagger    entity.RecipeID = "iron_dagger"
	IronSword     entity.RecipeID = "iron_sword"
	HealingPotion entity.RecipeID = "healing_potion"
	CopperRing    entity.RecipeID = "copper_ring"
)

func defaultRecipes() []entity.Recipe {
	return []entity.Recipe{
		// Weapons
		{ID: IronDagger, Name: "Iron Dagger", Ingredients: map[entity.MaterialID]int{Iron: 1, Wood: 1},
			Type: entity.ItemTypeWeapon, Subcategory: "dagger", Rarity: entity.RarityCommon, Icon: "🗡️"},
		{ID: "hunting_bow", Name: "Hunting Bow", Ingredients: map[entity.MaterialID]int{Wood: 2, String: 1},
			Type: entity.ItemTypeWeapon, Subcategory: "bow", Rarity: entity.RarityCommon, Icon: "🏹"},
		{ID: IronSword, Name: "Iron Sword", Ingredients: map[entity.MaterialID]int{Iron: 3, Wood: 1, Leather: 1},
			Type: entity.ItemTypeWeapon, Subcategory: "sword", Rarity: entity.RarityUncommon, Icon: "⚔️"},
		{ID: "silver_rapier", Name: "Silver Rapier", Ingredients: map[entity.MaterialID]int{Silver: 2, Leather: 1},
			Type: entity.ItemTypeWeapon, Subcategory: "sword", Rarity: entity.RarityUncommon, Icon: "🤺"},
		{ID: "mithril_blade", Name: "Mithril Blade", Ingredients: map[entity.MaterialID]int{Mithril: 2, Leather: 1},
			Type: entity.ItemTypeWeapon, Subcategory: "sword", Rarity: entity.RarityRare, Icon: "🔱"},
		{ID: "dragonbone_bow", Name: "Dragonbone Bow", Ingredients: map[entity.MaterialID]int{DragonScale: 1, Hardwood: 2, String: 1},
			Type: entity.ItemTypeWeapon, Subcategory: "bow", Rarity: entity.RarityRare, Icon: "🐲"},

		// Armor
		{ID: "leather_vest", Name: "Leather Vest", Ingredients: map[entity.MaterialID]int{Leather: 2, String: 1},
			Type: entity.ItemTypeArmor, Subcategory: "vest", Rarity: entity.RarityCommon, Icon: "🦺"},
		{ID: "cloth_robe", Name: "Cloth Robe", Ingredients: map[entity.MaterialID]int{Cloth: 3},
			Type: entity.ItemTypeArmor, Subcategory: "robe", Rarity: entity.RarityCommon, Icon: "👘"},
		{ID: "iron_helm", Name: "Iron Helm", Ingredients: map[entity.MaterialID]int{Iron: 3},
			Type: entity.ItemTypeArmor, Subcategory: "helmet", Rarity: entity.RarityCommon, Icon: "⛑️"},
		{ID: "chainmail", Name: "Chainmail", Ingredients: map[entity.MaterialID]int{Iron: 4, Leather: 1},
			Type: entity.ItemTypeArmor, Subcategory: "mail", Rarity: entity.RarityUncommon, Icon: "🛡️"},
		{ID: "silk_robe", Name: "Silk Robe", Ingredients: map[entity.MaterialID]int{Silk: 2, Cloth: 1},
			Type: entity.ItemTypeArmor, Subcategory: "robe", Rarity: entity.RarityUncommon, Icon: "🥻"},
		{ID: "dragon_scale_mail", Name: "Dragon Scale Mail", Ingredients: map[entity.MaterialID]int{DragonScale: 2, Leather: 2},
			Type: entity.ItemTypeArmor, Subcategory: "mail", Rarity: entity.RarityRare, Icon: "🐉"},

		// Trinkets
		{ID: CopperRing, Name: "Copper Ring", Ingredients: map[entity.MaterialID]int{Copper: 2},
			Type: entity.ItemTypeTrinket, Subcategory: "ring", Rarity: entity.RarityCommon, Icon: "💍"},
		{ID: "bone_charm", Name: "Bone Charm", Ingredients: map[entity.MaterialID]int{Bone: 2, String: 1},
			Type: entity.ItemTypeTrinket, Subcategory: "charm", Rarity: entity.RarityCommon, Icon: "🧿"},
		{ID: "quartz_amulet", Name: "Quartz Amulet", Ingredients: map[entity.MaterialID]int{Quartz: 1, String: 1},
			Type: entity.ItemTypeTrinket, Subcategory: "amulet", Rarity: entity.RarityUncommon, Icon: "📿"},
		{ID: "silver_ring", Name: "Silver Ring", Ingredients: map[entity.MaterialID]int{Silver: 1, Quartz: 1},
			Type: entity.ItemTypeTrinket, Subcategory: "ring", Rarity: entity.RarityUncommon, Icon: "💍"},
		{ID: "ruby_pendant", Name: "Ruby Pendant", Ingredients: map[entity.MaterialID]int{Ruby: 1, Silver: 1},
			Type: entity.ItemTypeTrinket, Subcategory: "amulet", Rarity: entity.RarityRare, Icon: "❤️"},

		// Potions
		{ID: HealingPotion, Name: "Healing Potion", Ingredients: map[entity.MaterialID]int{Herbs: 2, GlassVial: 1},
			Type: entity.ItemTypePotion, Subcategory: "healing", Rarity: entity.RarityCommon, Icon: "🧪"},
		{ID: "antidote", Name: "Antidote", Ingredients: map[entity.MaterialID]int{Herbs: 1, Bone: 1, GlassVial: 1},
			Type: entity.ItemTypePotion, Subcategory: "cure", Rarity: entity.RarityCommon, Icon: "💚"},
		{ID: "moonlight_elixir", Name: "Moonlight Elixir", Ingredients: map[entity.MaterialID]int{Moonpetal: 2, GlassVial: 1},
			Type: entity.ItemTypePotion, Subcategory: "elixir", Rarity: entity.RarityUncommon, Icon: "🌙"},
		{ID: "phoenix_draught", Name: "Phoenix Draught", Ingredients: map[entity.MaterialID]int{PhoenixFeather: 1, Moonpetal: 1, GlassVial: 1},
			Type: entity.ItemTypePotion, Subcategory: "elixir", Rarity: entity.RarityRare, Icon: "🔥"},

		// Tools
		{ID: "stone_hammer", Name: "Stone Hammer", Ingredients: map[entity.MaterialID]int{Stone: 2, Wood: 1},
			Type: entity.ItemTypeTool, Subcategory: "hammer", Rarity: entity.RarityCommon, Icon: "🔨"},
		{ID: "iron_pickaxe", Name: "Iron Pickaxe", Ingredients: map[entity.MaterialID]int{Iron: 2, Wood: 1},
			Type: entity.ItemTypeTool, Subcategory: "pickaxe", Rarity: entity.RarityCommon, Icon: "⛏️"},
		{ID: "copper_lantern", Name: "Copper Lantern", Ingredients: map[entity.MaterialID]int{Copper: 2, GlassVial: 1},
			Type: entity.ItemTypeTool, Subcategory: "lantern", Rarity: entity.RarityCommon, Icon: "🏮"},
		{ID: "enchanted_quill", Name: "Enchanted Quill", Ingredients: map[entity.MaterialID]int{ArcaneDust: 1, Wood: 1},
			Type: entity.ItemTypeTool, Subcategory: "writing", Rarity: entity.RarityUncommon, Icon: "🪶"},
		{ID: "mithril_pickaxe", Name: "Mithril Pickaxe", Ingredients: map[entity.MaterialID]int{Mithril: 1, Hardwood: 1},
			Type: entity.ItemTypeTool, Subcategory: "pickaxe", Rarity: entity.RarityRare, Icon: "⚒️"},
	}
}
