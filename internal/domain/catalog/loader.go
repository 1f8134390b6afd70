package catalog

import (
	"fmt"
	"os"
	"slices"

	"shopkeep/internal/domain/entity"

	"gopkg.in/yaml.v3"
)

// override is the document shape of a catalog file. Entries replace built-in entries
// with the same id and are appended otherwise. Economy fields present in the file
// overwrite the defaults; absent fields keep them.
type override struct {
	Materials   []entity.Material     `yaml:"materials"`
	Recipes     []entity.Recipe       `yaml:"recipes"`
	Boxes       []entity.BoxType      `yaml:"boxes"`
	Professions []entity.Profession   `yaml:"professions"`
	Reports     []entity.MarketReport `yaml:"reports"`
	Economy     *Economy              `yaml:"economy"`
}

// LoadFile reads a YAML catalog override and merges it over the built-in tables.
// An empty path returns the built-in tables unchanged.
func LoadFile(path string) (Base, error) {
	base := DefaultBase()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Base{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Merge(base, data)
}

// Merge decodes a YAML override document and merges it over base.
func Merge(base Base, data []byte) (Base, error) {
	eco := base.Economy
	doc := override{Economy: &eco}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Base{}, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	base.Materials = mergeByID(base.Materials, doc.Materials, func(m entity.Material) entity.MaterialID { return m.ID })
	base.Recipes = mergeByID(base.Recipes, doc.Recipes, func(r entity.Recipe) entity.RecipeID { return r.ID })
	base.Boxes = mergeByID(base.Boxes, doc.Boxes, func(b entity.BoxType) entity.BoxID { return b.ID })
	base.Professions = mergeByID(base.Professions, doc.Professions, func(p entity.Profession) entity.ProfessionID { return p.ID })
	if len(doc.Reports) > 0 {
		base.Reports = doc.Reports
	}
	base.Economy = *doc.Economy

	return base, nil
}

func mergeByID[T any, K comparable](current, updates []T, key func(T) K) []T {
	current = slices.Clone(current)
	index := make(map[K]int, len(current))
	for i, item := range current {
		index[key(item)] = i
	}
	for _, item := range updates {
		if i, ok := index[key(item)]; ok {
			current[i] = item

			continue
		}
		index[key(item)] = len(current)
		current = append(current, item)
	}

	return current
}
