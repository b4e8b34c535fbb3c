package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardset/tarot"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate PATH",
	Short: "Validate a tarot deck directory",
	Long: `Validate checks that a tarot deck directory has a well formed deck.toml,
language files, an image for every card and, optionally, ANSI art.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]
		if _, err := os.Stat(deckPath); os.IsNotExist(err) {
			return errors.Errorf("deck directory not found: %s", deckPath)
		}

		results, err := tarot.Validate(deckPath)
		if err != nil {
			return errors.Wrap(err, "validation error")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "%s Deck '%s' is valid.\n", color.GreenString("✓"), deckPath)
		} else {
			fmt.Fprintf(out, "%s Deck '%s' has %d validation errors:\n", color.RedString("✗"), deckPath, len(results.Errors))
			for i, msg := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, msg)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, color.YellowString("\nWarnings:"))
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return errors.New("validation failed")
		}
		return nil
	},
}
