package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/cookengine/internal/models"
	"github.com/bobmcallan/cookengine/internal/services/generation"
	"github.com/bobmcallan/cookengine/internal/services/synthesis"
)

func generateCmd(g *globalFlags) *cobra.Command {
	var (
		prompt bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate <ingredient>...",
		Short: "Generate a recipe from the given ingredients",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if prompt {
				cleaned := generation.Clean(toAny(args))
				fmt.Fprintln(out, synthesis.BuildPrompt(cleaned))
				return nil
			}

			a, err := loadApp(g, "warn")
			if err != nil {
				return err
			}

			recipe, err := a.Generator.Handle(cmd.Context(), toAny(args))
			if err != nil {
				var ge *generation.Error
				if errors.As(err, &ge) && ge.Kind != generation.KindInternal {
					return errors.New(ge.Message)
				}
				return err
			}

			switch output {
			case "json":
				return writeJSON(out, recipe)
			case "", "text":
				printGenerated(cmd, recipe, args)
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want text or json)", output)
			}
		},
	}

	cmd.Flags().BoolVar(&prompt, "prompt", false, "print the generation prompt instead of generating")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	return cmd
}

func printGenerated(cmd *cobra.Command, r *models.GeneratedRecipe, user []string) {
	out := cmd.OutOrStdout()
	added := models.NewIngredientSet(r.Added(user))

	fmt.Fprintf(out, "%s\n\nIngredients:\n", r.Name)
	for _, ing := range r.Ingredients {
		if added.Has(ing) {
			fmt.Fprintf(out, "  - %s (added)\n", ing)
			continue
		}
		fmt.Fprintf(out, "  - %s\n", ing)
	}
	fmt.Fprintln(out, "\nSteps:")
	for i, s := range r.Steps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, s)
	}
}

func toAny(args []string) []any {
	items := make([]any, len(args))
	for i, a := range args {
		items[i] = a
	}
	return items
}
