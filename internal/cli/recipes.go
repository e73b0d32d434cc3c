package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bobmcallan/cookengine/internal/models"
	"github.com/bobmcallan/cookengine/internal/services/matcher"
)

func recipesCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "recipes",
		Short: "Browse the recipe catalog",
	}

	c.AddCommand(recipesListCmd(g), recipesShowCmd(g))
	return c
}

func recipesListCmd(g *globalFlags) *cobra.Command {
	var category, difficulty string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(g, "warn")
			if err != nil {
				return err
			}

			recipes := a.Catalog.Filter(category, difficulty)
			out := cmd.OutOrStdout()
			if len(recipes) == 0 {
				fmt.Fprintln(out, "(no recipes found)")
				return nil
			}
			for _, r := range recipes {
				printRecipeLine(out, r)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category (Breakfast, Lunch, Dinner, Dessert, Snack)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "filter by difficulty (Easy, Medium, Hard)")
	return cmd
}

func recipesShowCmd(g *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g, "warn")
			if err != nil {
				return err
			}

			r, ok := a.Catalog.FindByID(args[0])
			if !ok {
				return fmt.Errorf("recipe %q not found", args[0])
			}

			out := cmd.OutOrStdout()
			switch output {
			case "json":
				return writeJSON(out, r)
			case "yaml":
				return yaml.NewEncoder(out).Encode(r)
			case "", "text":
				fmt.Fprintf(out, "%s\n%s\n\n", r.Name, r.Description)
				fmt.Fprintf(out, "%s · %s · %s\n\n", r.Category, r.Difficulty, r.CookTime)
				fmt.Fprintln(out, "Ingredients:")
				for _, ing := range r.Ingredients {
					fmt.Fprintf(out, "  - %s\n", ing)
				}
				fmt.Fprintln(out, "\nSteps:")
				for i, s := range r.Steps {
					fmt.Fprintf(out, "  %d. %s\n", i+1, s)
				}
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func ingredientsCmd(g *globalFlags) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "ingredients",
		Short: "List known ingredients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(g, "warn")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ings := a.Catalog.SearchIngredients(search)
			if len(ings) == 0 {
				fmt.Fprintln(out, "(no ingredients found)")
				return nil
			}
			for _, ing := range ings {
				fmt.Fprintln(out, ing)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "substring filter, case-insensitive")
	return cmd
}

func matchCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "match [ingredient...]",
		Short: "Show which recipes you can cook with the given ingredients",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g, "warn")
			if err != nil {
				return err
			}

			selected := models.NormalizeAll(args)
			all := a.Catalog.ListAll()
			res := matcher.Partition(selected, all)
			out := cmd.OutOrStdout()

			if len(selected) == 0 {
				fmt.Fprintf(out, "All recipes (%d):\n", len(all))
				for _, r := range all {
					printRecipeLine(out, r)
				}
				return nil
			}

			fmt.Fprintf(out, "Ready to cook (%d of %d):\n", len(res.Cookable), len(all))
			for _, r := range res.Cookable {
				printRecipeLine(out, r)
			}
			if len(res.Partial) > 0 {
				fmt.Fprintf(out, "\nPartial matches (%d):\n", len(res.Partial))
				for _, r := range res.Partial {
					printRecipeLine(out, r)
				}
			}
			if res.SuggestGeneration(selected) {
				fmt.Fprintf(out, "\nNothing fully matches. Try: cookengine generate %s\n", strings.Join(args, " "))
			}
			return nil
		},
	}
}

func printRecipeLine(w io.Writer, r models.Recipe) {
	fmt.Fprintf(w, "  [%s] %s (%s, %s, %s)\n", r.ID, r.Name, r.Category, r.Difficulty, r.CookTime)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
