package catalog

import "shopkeep/internal/domain/entity"

// Material ids referenced by the default recipes and professions.
const (
	Iron           entity.MaterialID = "iron"
	Copper         entity.MaterialID = "copper"
	Wood           entity.MaterialID = "wood"
	Leather        entity.MaterialID = "leather"
	Bone           entity.MaterialID = "bone"
	Cloth          entity.MaterialID = "cloth"
	Stone          entity.MaterialID = "stone"
	Herbs          entity.MaterialID = "herbs"
	GlassVial      entity.MaterialID = "glass_vial"
	String         entity.MaterialID = "string"
	Silver         entity.MaterialID = "silver"
	Hardwood       entity.MaterialID = "hardwood"
	WolfPelt       entity.MaterialID = "wolf_pelt"
	Silk           entity.MaterialID = "silk"
	Quartz         entity.MaterialID = "quartz"
	Moonpetal      entity.MaterialID = "moonpetal"
	ArcaneDust     entity.MaterialID = "arcane_dust"
	Mithril        entity.MaterialID = "mithril"
	DragonScale    entity.MaterialID = "dragon_scale"
	Ruby           entity.MaterialID = "ruby"
	PhoenixFeather entity.MaterialID = "phoenix_feather"
)

func defaultMaterials() []entity.Material {
	return []entity.Material{
		{ID: Iron, Name: "Iron", Rarity: entity.RarityCommon, Icon: "⛓️", Category: entity.CategoryMetal},
		{ID: Copper, Name: "Copper", Rarity: entity.RarityCommon, Icon: "🟠", Category: entity.CategoryMetal},
		{ID: Wood, Name: "Wood", Rarity: entity.RarityCommon, Icon: "🪵", Category: entity.CategoryWood},
		{ID: Leather, Name: "Leather", Rarity: entity.RarityCommon, Icon: "🟫", Category: entity.CategoryBeast},
		{ID: Bone, Name: "Bone", Rarity: entity.RarityCommon, Icon: "🦴", Category: entity.CategoryBeast},
		{ID: Cloth, Name: "Cloth", Rarity: entity.RarityCommon, Icon: "🧵", Category: entity.CategoryFabric},
		{ID: Stone, Name: "Stone", Rarity: entity.RarityCommon, Icon: "🪨", Category: entity.CategoryStone},
		{ID: Herbs, Name: "Herbs", Rarity: entity.RarityCommon, Icon: "🌿", Category: entity.CategoryOrganic},
		{ID: GlassVial, Name: "Glass Vial", Rarity: entity.RarityCommon, Icon: "🧪", Category: entity.CategoryContainer},
		{ID: String, Name: "String", Rarity: entity.RarityCommon, Icon: "🪢", Category: entity.CategoryUtility},
		{ID: Silver, Name: "Silver", Rarity: entity.RarityUncommon, Icon: "🥈", Category: entity.CategoryMetal},
		{ID: Hardwood, Name: "Hardwood", Rarity: entity.RarityUncommon, Icon: "🌳", Category: entity.CategoryWood},
		{ID: WolfPelt, Name: "Wolf Pelt", Rarity: entity.RarityUncommon, Icon: "🐺", Category: entity.CategoryBeast},
		{ID: Silk, Name: "Silk", Rarity: entity.RarityUncommon, Icon: "🎀", Category: entity.CategoryFabric},
		{ID: Quartz, Name: "Quartz", Rarity: entity.RarityUncommon, Icon: "🔹", Category: entity.CategoryGem},
		{ID: Moonpetal, Name: "Moonpetal", Rarity: entity.RarityUncommon, Icon: "🌙", Category: entity.CategoryOrganic},
		{ID: ArcaneDust, Name: "Arcane Dust", Rarity: entity.RarityUncommon, Icon: "✨", Category: entity.CategoryMagical},
		{ID: Mithril, Name: "Mithril", Rarity: entity.RarityRare, Icon: "💠", Category: entity.CategoryMetal},
		{ID: DragonScale, Name: "Dragon Scale", Rarity: entity.RarityRare, Icon: "🐉", Category: entity.CategoryBeast},
		{ID: Ruby, Name: "Ruby", Rarity: entity.RarityRare, Icon: "💎", Category: entity.CategoryGem},
		{ID: PhoenixFeather, Name: "Phoenix Feather", Rarity: entity.RarityRare, Icon: "🪶", Category: entity.CategoryMagical},
	}
}
