package cmd

import (
	"flag"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var noColor bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardset",
	Short: "Shuffle, deal and inspect decks of cards",
	Long: `cardset works with decks of cards from the command line: standard playing
cards with optional Jokers, and tarot decks from your deck library.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// glog reads its flags from the go flag set; mark it parsed so it
		// does not complain.
		_ = flag.CommandLine.Parse(nil)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	RootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	RootCmd.AddCommand(deckCmd)
	RootCmd.AddCommand(tarotCmd)
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
