// Package matcher classifies catalog recipes against a set of available ingredients
package matcher

import (
	"github.com/bobmcallan/cookengine/internal/models"
)

// Result partitions a catalog by how well a selection covers each recipe.
// Every recipe lands in exactly one slice, in catalog order.
type Result struct {
	Cookable  []models.Recipe `json:"cookable"`
	Partial   []models.Recipe `json:"partial"`
	Unrelated []models.Recipe `json:"unrelated"`
}

// Partition splits recipes into cookable (every ingredient selected),
// partial (some ingredient selected) and unrelated (none selected).
// Comparison ignores case. An empty selection yields no cookable and no
// partial recipes; browse-all is left to the caller.
func Partition(selected []string, recipes []models.Recipe) Result {
	res := Result{
		Cookable:  []models.Recipe{},
		Partial:   []models.Recipe{},
		Unrelated: []models.Recipe{},
	}

	have := models.NewIngredientSet(selected)
	if have.Len() == 0 {
		res.Unrelated = append(res.Unrelated, recipes...)
		return res
	}

	for _, r := range recipes {
		switch classify(have, r) {
		case classCookable:
			res.Cookable = append(res.Cookable, r)
		case classPartial:
			res.Partial = append(res.Partial, r)
		default:
			res.Unrelated = append(res.Unrelated, r)
		}
	}
	return res
}

// SuggestGeneration reports whether a generated recipe should be offered:
// something is selected but nothing in the catalog can be fully made.
func (r Result) SuggestGeneration(selected []string) bool {
	return models.NewIngredientSet(selected).Len() > 0 && len(r.Cookable) == 0
}

type class int

const (
	classUnrelated class = iota
	classPartial
	classCookable
)

func classify(have models.IngredientSet, r models.Recipe) class {
	matched := 0
	for _, ing := range r.NormalizedIngredients() {
		if have.Has(ing) {
			matched++
		}
	}

	switch {
	case matched == 0:
		return classUnrelated
	case matched == len(r.Ingredients):
		return classCookable
	default:
		return classPartial
	}
}
