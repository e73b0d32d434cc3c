package synthesis

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the instruction a generative backend receives for an
// ingredient list. The response contract it describes is the one the
// generation handler validates.
func BuildPrompt(ingredients []string) string {
	return fmt.Sprintf(`You are a helpful cooking assistant. Create ONE simple and delicious recipe using the following ingredients: %s.

You may add up to 2 common pantry items (like salt, pepper, oil, water) if needed.

Respond with ONLY a valid JSON object in this exact format, no additional text:
{
  "name": "Recipe Name",
  "ingredients": ["ingredient 1", "ingredient 2", ...],
  "steps": ["Step 1 description", "Step 2 description", ...]
}

Requirements:
- Recipe name should be descriptive and appetizing
- Include 4-8 ingredients total
- Include 4-7 clear, concise cooking steps
- Steps should be actionable and easy to follow
- Use the provided ingredients as the main components`, strings.Join(ingredients, ", "))
}
