package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bobmcallan/cookengine/internal/models"
)

// ErrInvalidRecipe is returned when catalog data has a malformed recipe.
var ErrInvalidRecipe = errors.New("invalid recipe")

//go:embed recipes.yaml
var builtinYAML []byte

type yamlCatalog struct {
	Recipes []yamlRecipe `yaml:"recipes"`
}

type yamlRecipe struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Ingredients []string `yaml:"ingredients"`
	Steps       []string `yaml:"steps"`
	CookTime    string   `yaml:"cook_time"`
	Difficulty  string   `yaml:"difficulty"`
	Category    string   `yaml:"category"`
}

// Builtin returns a store over the embedded recipe catalog.
func Builtin() (*Store, error) {
	recipes, err := Parse(builtinYAML)
	if err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	return NewStore(recipes), nil
}

// Load reads a catalog file. An empty path selects the embedded catalog.
func Load(path string) (*Store, error) {
	if path == "" {
		return Builtin()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	recipes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return NewStore(recipes), nil
}

// Parse decodes and validates YAML catalog data.
func Parse(data []byte) ([]models.Recipe, error) {
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(yc.Recipes))
	recipes := make([]models.Recipe, 0, len(yc.Recipes))
	for i, yr := range yc.Recipes {
		r, err := mapRecipe(i, yr)
		if err != nil {
			return nil, err
		}
		if seen[r.ID] {
			return nil, invalidField(i, "id", fmt.Sprintf("duplicate id %q", r.ID))
		}
		seen[r.ID] = true
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func mapRecipe(i int, yr yamlRecipe) (models.Recipe, error) {
	if strings.TrimSpace(yr.ID) == "" {
		return models.Recipe{}, invalidField(i, "id", "id is required")
	}
	if strings.TrimSpace(yr.Name) == "" {
		return models.Recipe{}, invalidField(i, "name", "name is required")
	}
	if len(yr.Ingredients) == 0 {
		return models.Recipe{}, invalidField(i, "ingredients", "at least one ingredient is required")
	}
	for j, ing := range yr.Ingredients {
		if strings.TrimSpace(ing) == "" {
			return models.Recipe{}, invalidField(i, fmt.Sprintf("ingredients[%d]", j), "ingredient is blank")
		}
	}
	if len(yr.Steps) == 0 {
		return models.Recipe{}, invalidField(i, "steps", "at least one step is required")
	}
	if !models.ValidDifficulties[yr.Difficulty] {
		return models.Recipe{}, invalidField(i, "difficulty", fmt.Sprintf("unknown difficulty %q", yr.Difficulty))
	}
	if !models.ValidCategories[yr.Category] {
		return models.Recipe{}, invalidField(i, "category", fmt.Sprintf("unknown category %q", yr.Category))
	}

	return models.Recipe{
		ID:          yr.ID,
		Name:        yr.Name,
		Description: yr.Description,
		Image:       yr.Image,
		Ingredients: yr.Ingredients,
		Steps:       yr.Steps,
		CookTime:    yr.CookTime,
		Difficulty:  yr.Difficulty,
		Category:    yr.Category,
	}, nil
}

func invalidField(i int, field, msg string) error {
	return fmt.Errorf("%w: recipes[%d].%s: %s", ErrInvalidRecipe, i, field, msg)
}
