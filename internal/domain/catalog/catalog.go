package catalog

import (
	"cmp"
	"slices"

	"shopkeep/internal/domain/entity"

	"github.com/agnivade/levenshtein"
	"github.com/pkg/errors"
)

const (
	maxSuggestions     = 3
	minSuggestDistance = 2
)

// Catalog is the immutable, validated view of a Base with derived recipe prices.
// All accessors return copies or read-only values; a Catalog is safe for concurrent use.
type Catalog struct {
	base Base

	materials   map[entity.MaterialID]entity.Material
	recipes     map[entity.RecipeID]entity.Recipe
	boxes       map[entity.BoxID]entity.BoxType
	professions map[entity.ProfessionID]entity.Profession

	recipeOrder []entity.RecipeID
	materialIDs []entity.MaterialID
	byRarity    map[entity.Rarity][]entity.MaterialID
}

// New validates base and builds the derived catalog.
func New(base Base) (*Catalog, error) {
	c := &Catalog{
		base:        base,
		materials:   make(map[entity.MaterialID]entity.Material, len(base.Materials)),
		recipes:     make(map[entity.RecipeID]entity.Recipe, len(base.Recipes)),
		boxes:       make(map[entity.BoxID]entity.BoxType, len(base.Boxes)),
		professions: make(map[entity.ProfessionID]entity.Profession, len(base.Professions)),
		byRarity:    make(map[entity.Rarity][]entity.MaterialID),
	}

	rarities := make(map[entity.MaterialID]entity.Rarity, len(base.Materials))
	for _, m := range base.Materials {
		if m.ID == "" {
			return nil, errors.New("material with empty id")
		}
		if !m.Rarity.IsValid() {
			return nil, errors.Errorf("material %q: unknown rarity %q", m.ID, m.Rarity)
		}
		if _, dup := c.materials[m.ID]; dup {
			return nil, errors.Errorf("material %q defined twice", m.ID)
		}
		c.materials[m.ID] = m
		rarities[m.ID] = m.Rarity
		c.materialIDs = append(c.materialIDs, m.ID)
		c.byRarity[m.Rarity] = append(c.byRarity[m.Rarity], m.ID)
	}
	slices.Sort(c.materialIDs)
	for _, ids := range c.byRarity {
		slices.Sort(ids)
	}

	for _, r := range base.Recipes {
		if err := validateRecipe(r, c.materials); err != nil {
			return nil, err
		}
		if _, dup := c.recipes[r.ID]; dup {
			return nil, errors.Errorf("recipe %q defined twice", r.ID)
		}
		r.SellPrice = sellPrice(base.Economy, rarities, r)
		c.recipes[r.ID] = r
		c.recipeOrder = append(c.recipeOrder, r.ID)
	}

	for _, b := range base.Boxes {
		if err := validateBox(b); err != nil {
			return nil, err
		}
		c.boxes[b.ID] = b
	}

	if len(base.Professions) == 0 {
		return nil, errors.New("catalog has no professions")
	}
	for _, p := range base.Professions {
		if p.ID == "" {
			return nil, errors.New("profession with empty id")
		}
		if len(p.NamePool) == 0 {
			return nil, errors.Errorf("profession %q has an empty name pool", p.ID)
		}
		for _, id := range p.PreferredMaterials {
			if _, ok := c.materials[id]; !ok {
				return nil, errors.Errorf("profession %q: unknown preferred material %q", p.ID, id)
			}
		}
		c.professions[p.ID] = p
	}

	return c, nil
}

// MustNew is like New but panics on an invalid base. It is meant for the built-in tables.
func MustNew(base Base) *Catalog {
	c, err := New(base)
	if err != nil {
		panic(err)
	}

	return c
}

func validateRecipe(r entity.Recipe, materials map[entity.MaterialID]entity.Material) error {
	if r.ID == "" {
		return errors.New("recipe with empty id")
	}
	if !r.Type.IsValid() {
		return errors.Errorf("recipe %q: unknown item type %q", r.ID, r.Type)
	}
	if !r.Rarity.IsValid() {
		return errors.Errorf("recipe %q: unknown rarity %q", r.ID, r.Rarity)
	}
	if len(r.Ingredients) == 0 {
		return errors.Errorf("recipe %q has no ingredients", r.ID)
	}
	for id, count := range r.Ingredients {
		if _, ok := materials[id]; !ok {
			return errors.Errorf("recipe %q: unknown ingredient %q", r.ID, id)
		}
		if count <= 0 {
			return errors.Errorf("recipe %q: ingredient %q needs a positive count", r.ID, id)
		}
	}

	return nil
}

func validateBox(b entity.BoxType) error {
	if b.ID == "" {
		return errors.New("box with empty id")
	}
	if b.Cost < 0 {
		return errors.Errorf("box %q: negative cost", b.ID)
	}
	if b.MaterialCount.Min < 0 || b.MaterialCount.Max < b.MaterialCount.Min {
		return errors.Errorf("box %q: invalid material count range", b.ID)
	}
	total := 0.0
	for rarity, w := range b.RarityWeights {
		if w < 0 {
			return errors.Errorf("box %q: negative weight for %q", b.ID, rarity)
		}
		total += w
	}
	if total <= 0 {
		return errors.Errorf("box %q: rarity weights are empty", b.ID)
	}

	return nil
}

// Material returns the material with the given id.
func (c *Catalog) Material(id entity.MaterialID) (entity.Material, bool) {
	m, ok := c.materials[id]

	return m, ok
}

// MaterialName returns the display name of a material, falling back to its id.
func (c *Catalog) MaterialName(id entity.MaterialID) string {
	if m, ok := c.materials[id]; ok {
		return m.Name
	}

	return string(id)
}

// Recipe returns the priced recipe with the given id.
func (c *Catalog) Recipe(id entity.RecipeID) (entity.Recipe, bool) {
	r, ok := c.recipes[id]

	return r, ok
}

// Box returns the supply box with the given id.
func (c *Catalog) Box(id entity.BoxID) (entity.BoxType, bool) {
	b, ok := c.boxes[id]

	return b, ok
}

// Profession returns the profession with the given id.
func (c *Catalog) Profession(id entity.ProfessionID) (entity.Profession, bool) {
	p, ok := c.professions[id]

	return p, ok
}

// Materials returns every material ordered by id.
func (c *Catalog) Materials() []entity.Material {
	out := make([]entity.Material, 0, len(c.materialIDs))
	for _, id := range c.materialIDs {
		out = append(out, c.materials[id])
	}

	return out
}

// MaterialsOfRarity returns the ids of the materials of one tier, ordered by id.
func (c *Catalog) MaterialsOfRarity(r entity.Rarity) []entity.MaterialID {
	return slices.Clone(c.byRarity[r])
}

// Recipes returns every priced recipe in catalog order.
func (c *Catalog) Recipes() []entity.Recipe {
	out := make([]entity.Recipe, 0, len(c.recipeOrder))
	for _, id := range c.recipeOrder {
		out = append(out, c.recipes[id])
	}

	return out
}

// Boxes returns every supply box ordered by cost, then id.
func (c *Catalog) Boxes() []entity.BoxType {
	out := make([]entity.BoxType, 0, len(c.boxes))
	for _, b := range c.boxes {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b entity.BoxType) int {
		return cmp.Or(cmp.Compare(a.Cost, b.Cost), cmp.Compare(a.ID, b.ID))
	})

	return out
}

// Professions returns the professions in catalog order.
func (c *Catalog) Professions() []entity.Profession {
	return slices.Clone(c.base.Professions)
}

// Reports returns the market report pool.
func (c *Catalog) Reports() []entity.MarketReport {
	return slices.Clone(c.base.Reports)
}

// Economy returns the tuning tables.
func (c *Catalog) Economy() Economy {
	return c.base.Economy
}

// Suggest returns up to three known recipe, box or material ids closest to id
// by edit distance. It returns nil when nothing is reasonably close.
func (c *Catalog) Suggest(id string) []string {
	type candidate struct {
		id       string
		distance int
	}

	limit := max(minSuggestDistance, len(id)/3)
	seen := make(map[string]struct{})
	var candidates []candidate
	consider := func(known string) {
		if _, ok := seen[known]; ok || known == id {
			return
		}
		seen[known] = struct{}{}
		if d := levenshtein.ComputeDistance(id, known); d <= limit {
			candidates = append(candidates, candidate{id: known, distance: d})
		}
	}

	for _, rid := range c.recipeOrder {
		consider(string(rid))
	}
	for bid := range c.boxes {
		consider(string(bid))
	}
	for _, mid := range c.materialIDs {
		consider(string(mid))
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		return cmp.Or(cmp.Compare(a.distance, b.distance), cmp.Compare(a.id, b.id))
	})

	out := make([]string, 0, maxSuggestions)
	for _, cand := range candidates {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, cand.id)
	}
	if len(out) == 0 {
		return nil
	}

	return out
}
