package synthesis

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bobmcallan/cookengine/internal/models"
)

// Template identifies one of the fixed recipe shapes.
type Template string

const (
	TemplateDefault Template = "default"
	TemplateEggs    Template = "eggs"
	TemplateChicken Template = "chicken"
	TemplatePasta   Template = "pasta"
)

// fallbackMain names the main ingredient when the list is empty.
const fallbackMain = "vegetables"

// Select picks the template for an ingredient list. Checks run in priority
// order: egg, then chicken, then pasta or spaghetti, else default.
func Select(ingredients []string) Template {
	lower := models.NormalizeAll(ingredients)
	switch {
	case anyContains(lower, "egg"):
		return TemplateEggs
	case anyContains(lower, "chicken"):
		return TemplateChicken
	case anyContains(lower, "pasta", "spaghetti"):
		return TemplatePasta
	default:
		return TemplateDefault
	}
}

// Compose returns the recipe for the selected template. It is a pure function
// of its input.
func Compose(ingredients []string) models.GeneratedRecipe {
	switch Select(ingredients) {
	case TemplateEggs:
		return eggsRecipe(ingredients)
	case TemplateChicken:
		return chickenRecipe(ingredients)
	case TemplatePasta:
		return pastaRecipe(ingredients)
	default:
		return defaultRecipe(ingredients)
	}
}

func defaultRecipe(ingredients []string) models.GeneratedRecipe {
	main := fallbackMain
	if len(ingredients) > 0 && ingredients[0] != "" {
		main = ingredients[0]
	}

	return models.GeneratedRecipe{
		Name:        fmt.Sprintf("Savory %s Medley", capitalize(main)),
		Ingredients: withStaples(head(ingredients, 4), "olive oil", "salt"),
		Steps: []string{
			fmt.Sprintf("Prepare all %s by washing and cutting into bite-sized pieces", strings.Join(head(ingredients, 3), ", ")),
			"Heat olive oil in a large pan over medium-high heat",
			fmt.Sprintf("Add the %s and cook for 3-4 minutes until slightly softened", main),
			"Add remaining ingredients and cook for another 5-7 minutes",
			"Season with salt to taste",
			"Serve hot and enjoy your homemade creation!",
		},
	}
}

func eggsRecipe(ingredients []string) models.GeneratedRecipe {
	return models.GeneratedRecipe{
		Name:        "Fluffy Scrambled Eggs Delight",
		Ingredients: withStaples(ingredients, "butter", "salt"),
		Steps: []string{
			"Crack eggs into a bowl and whisk until well combined",
			"Melt butter in a non-stick pan over medium-low heat",
			"Pour in the egg mixture and let it sit for 30 seconds",
			"Gently push eggs from edges to center, creating soft curds",
			"Remove from heat when eggs are slightly underdone",
			"Season with salt and serve immediately",
		},
	}
}

func chickenRecipe(ingredients []string) models.GeneratedRecipe {
	return models.GeneratedRecipe{
		Name:        "Pan-Seared Chicken with Herbs",
		Ingredients: withStaples(ingredients, "olive oil", "salt"),
		Steps: []string{
			"Pat chicken dry and season generously with salt",
			"Heat olive oil in a skillet over medium-high heat",
			"Place chicken in pan and cook without moving for 5-6 minutes",
			"Flip and cook for another 4-5 minutes until golden",
			"Let rest for 3 minutes before slicing",
			"Garnish with available herbs and serve",
		},
	}
}

func pastaRecipe(ingredients []string) models.GeneratedRecipe {
	return models.GeneratedRecipe{
		Name:        "Quick Pantry Pasta",
		Ingredients: withStaples(ingredients, "olive oil", "garlic"),
		Steps: []string{
			"Cook pasta according to package directions, reserve 1 cup pasta water",
			"Sauté minced garlic in olive oil until fragrant",
			"Add your vegetables and cook until tender",
			"Toss drained pasta with the sauce",
			"Add pasta water as needed to create a silky consistency",
			"Serve hot with your favorite toppings",
		},
	}
}

func anyContains(ingredients []string, needles ...string) bool {
	for _, ing := range ingredients {
		for _, n := range needles {
			if strings.Contains(ing, n) {
				return true
			}
		}
	}
	return false
}

// head returns at most n leading items.
func head(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

// withStaples copies ingredients and appends the pantry staples.
func withStaples(ingredients []string, staples ...string) []string {
	out := make([]string, 0, len(ingredients)+len(staples))
	out = append(out, ingredients...)
	return append(out, staples...)
}

// capitalize upper-cases the first rune only.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
