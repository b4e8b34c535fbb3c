package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arcanaland/cardset/cardset"
	"github.com/arcanaland/cardset/internal/config"
	"github.com/arcanaland/cardset/playingcard"
)

// deckFlags are shared by every deck subcommand.
type deckFlags struct {
	jokers     bool
	onlyJokers bool
	shuffle    bool
	sort       bool
	seed       uint64
}

var deckOpts deckFlags

func (f *deckFlags) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.jokers, "jokers", "j", false, "Add the four Jokers to the deck")
	fs.BoolVar(&f.onlyJokers, "only-jokers", false, "Use only the four Jokers")
	fs.BoolVarP(&f.shuffle, "shuffle", "s", false, "Shuffle the deck first")
	fs.BoolVar(&f.sort, "sort", false, "Sort the deck by rank first")
	fs.Uint64Var(&f.seed, "seed", 0, "Seed the shuffle for reproducible output (0 = random)")
}

// deckType combines the config with the command line. Flags win.
func (f *deckFlags) deckType(cfg *config.Config) playingcard.DeckType {
	switch {
	case f.onlyJokers:
		return playingcard.Jokers
	case f.jokers:
		return playingcard.Standard | playingcard.Jokers
	}
	return cfg.DeckType()
}

func (f *deckFlags) setOptions(cfg *config.Config) []cardset.Option {
	if f.seed != 0 {
		return []cardset.Option{cardset.WithSeed(f.seed)}
	}
	return cfg.SetOptions()
}

// buildDeck creates the playing card deck the flags and config ask for.
func buildDeck(f *deckFlags) (*cardset.CardSet[*playingcard.PlayingCard], error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, errors.Wrap(err, "error loading config")
	}
	if !cfg.Color {
		color.NoColor = true
	}

	deck := playingcard.Deck(f.deckType(cfg), f.setOptions(cfg)...)
	for _, c := range deck.All() {
		c.SetVisibility(cfg.Visibility)
	}
	if f.shuffle {
		deck.Shuffle()
	}
	if f.sort {
		deck.Sort(playingcard.Compare)
	}
	glog.V(1).Infof("built %s", deck)
	return deck, nil
}

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Work with a deck of playing cards",
	Long: `Commands for a standard 52 card deck, optionally with four Jokers.

Defaults come from the config file; --jokers, --only-jokers and --seed
override them.`,
}

var deckShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every card in the deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := buildDeck(&deckOpts)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", labelColor.Sprintf("%d cards:", deck.Count()))
		printCards(out, deck.Cards())
		return nil
	},
}

var deckDrawCmd = &cobra.Command{
	Use:   "draw N",
	Short: "Shuffle the deck and draw N cards from the top",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return errors.Errorf("invalid number of cards: %s", args[0])
		}

		deck, err := buildDeck(&deckOpts)
		if err != nil {
			return err
		}
		if !deckOpts.shuffle && !deckOpts.sort {
			deck.Shuffle()
		}

		var hand []*playingcard.PlayingCard
		for range n {
			c, ok := deck.Next()
			if !ok {
				break
			}
			hand = append(hand, c)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", labelColor.Sprintf("Drew %d:", len(hand)))
		printCards(out, hand)
		fmt.Fprintf(out, "%s %d\n", labelColor.Sprint("Remaining:"), deck.Count())
		return nil
	},
}

var deckCutCmd = &cobra.Command{
	Use:   "cut",
	Short: "Cut the deck at a random position",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := buildDeck(&deckOpts)
		if err != nil {
			return err
		}
		c, pos := deck.Cut()
		if pos < 0 {
			return errors.New("cannot cut an empty deck")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (position %d of %d)\n",
			labelColor.Sprint("Cut:"), colorCard(c), pos+1, deck.Count())
		return nil
	},
}

func init() {
	deckOpts.register(deckCmd.PersistentFlags())

	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckDrawCmd)
	deckCmd.AddCommand(deckCutCmd)
}
