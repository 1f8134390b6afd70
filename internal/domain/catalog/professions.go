package catalog

import "shopkeep/internal/domain/entity"

func defaultProfessions() []entity.Profession {
	return []entity.Profession{
		{
			ID:   entity.ProfessionAdventurer,
			Name: "Adventurer",
			Preferences: map[entity.ItemType][]string{
				entity.ItemTypeWeapon: {"sword", "bow"},
				entity.ItemTypeArmor:  {"vest", "mail"},
				entity.ItemTypePotion: {"healing"},
			},
			NamePool:           []string{"Aria", "Borin", "Kael", "Lyra", "Thorne", "Vex"},
			PreferredMaterials: []entity.MaterialID{Leather, Bone, Herbs, WolfPelt, DragonScale},
		},
		{
			ID:   entity.ProfessionNoble,
			Name: "Noble",
			Preferences: map[entity.ItemType][]string{
				entity.ItemTypeTrinket: {"ring", "amulet"},
				entity.ItemTypeArmor:   {"robe"},
				entity.ItemTypeWeapon:  {"sword"},
			},
			NamePool:           []string{"Lady Evelyn", "Lord Cedric", "Duchess Mira", "Baron Aldric"},
			PreferredMaterials: []entity.MaterialID{Silk, Silver, Quartz, Ruby},
			BudgetTier:         entity.BudgetTierWealthy,
		},
		{
			ID:   entity.ProfessionGuard,
			Name: "Town Guard",
			Preferences: map[entity.ItemType][]string{
				entity.ItemTypeWeapon: {"sword", "dagger"},
				entity.ItemTypeArmor:  {"helmet", "mail"},
			},
			NamePool:           []string{"Sergeant Holt", "Corporal Finn", "Watchman Bram", "Guard Tessa"},
			PreferredMaterials: []entity.MaterialID{Iron, Copper, Leather, Stone},
			BudgetTier:         entity.BudgetTierBudget,
		},
		{
			ID:   entity.ProfessionScholar,
			Name: "Scholar",
			Preferences: map[entity.ItemType][]string{
				entity.ItemTypeTool:    {"writing", "lantern"},
				entity.ItemTypePotion:  {"elixir"},
				entity.ItemTypeArmor:   {"robe"},
				entity.ItemTypeTrinket: {"amulet"},
			},
			NamePool:           []string{"Master Orrin", "Sage Ilsa", "Archivist Pell", "Magister Quen"},
			PreferredMaterials: []entity.MaterialID{GlassVial, Cloth, Moonpetal, ArcaneDust},
		},
		{
			ID:   entity.ProfessionMerchant,
			Name: "Travelling Merchant",
			Preferences: map[entity.ItemType][]string{
				entity.ItemTypeTrinket: {"ring", "charm"},
				entity.ItemTypeTool:    {"lantern"},
			},
			NamePool:           []string{"Dario", "Fenna", "Old Gus", "Marisol"},
			PreferredMaterials: []entity.MaterialID{Copper, Cloth, Silver, Quartz},
		},
		{
			ID:   entity.ProfessionFarmer,
			Name: "Farmer",
			Preferences: map[entity.ItemType][]string{
				entity.ItemTypeTool:   {"pickaxe", "hammer"},
				entity.ItemTypePotion: {"cure", "healing"},
			},
			NamePool:           []string{"Hob", "Marta", "Jeb", "Wren"},
			PreferredMaterials: []entity.MaterialID{Wood, Herbs, Stone, String},
		},
	}
}
