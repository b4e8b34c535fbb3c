package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardset/internal/config"
	"github.com/arcanaland/cardset/tarot"
)

var tarotDeckFlag string

// tarotCmd represents the tarot command group
var tarotCmd = &cobra.Command{
	Use:   "tarot",
	Short: "Manage and read from tarot decks in your deck library",
	Long: `Commands for tarot decks in your deck library (XDG_DATA_HOME/tarot/decks).

--deck names a deck in the library or a path to a deck directory. Without it
the default deck from your config is used.`,
}

// resolveDeck loads the deck named by --deck, or the default deck.
func resolveDeck() (*tarot.Deck, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, errors.Wrap(err, "error loading config")
	}
	name := tarotDeckFlag
	if name == "" {
		name = cfg.DefaultDeck
	}

	deckPath, err := config.GetDeckPath(name)
	if err != nil {
		return nil, err
	}
	d, err := tarot.LoadDeck(deckPath, cfg.SetOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "error loading deck")
	}
	for _, c := range d.Cards.All() {
		c.SetVisibility(cfg.Visibility)
	}
	return d, nil
}

var tarotListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'cardset tarot init' to create it.")
			return nil
		}
		libraryPath, err := filepath.EvalSymlinks(libraryPath)
		if err != nil {
			return errors.Wrap(err, "error resolving deck library")
		}

		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return errors.Wrap(err, "error getting default deck")
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return errors.Wrap(err, "error reading deck library")
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No decks found in your deck library.")
			fmt.Fprintln(out, "You can add decks by copying them to:", libraryPath)
			return nil
		}

		for _, entry := range entries {
			entryPath := filepath.Join(libraryPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil {
				glog.Warningf("error resolving entry %s: %v", entry.Name(), err)
				continue
			}
			if !fileInfo.IsDir() {
				continue
			}

			d, err := tarot.LoadDeck(entryPath)
			if err != nil {
				glog.V(1).Infof("skipping %s: %v", entry.Name(), err)
				continue
			}
			if entry.Name() == defaultDeck {
				fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", entry.Name(), d.Name)
			} else {
				fmt.Fprintf(out, "  %s (%s)\n", entry.Name(), d.Name)
			}
		}
		return nil
	},
}

var tarotSetDefaultCmd = &cobra.Command{
	Use:   "set-default DECK",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]
		deckPath, err := config.GetDeckPath(deckName)
		if err != nil {
			return err
		}
		if _, err := tarot.LoadDeck(deckPath); err != nil {
			return errors.Wrap(err, "not a valid deck")
		}
		if err := config.SetDefaultDeck(deckName); err != nil {
			return errors.Wrap(err, "error setting default deck")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", deckName)
		return nil
	},
}

var tarotInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library and config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return errors.Wrap(err, "error creating deck library")
		}
		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)
		fmt.Fprintln(out, "You can now add decks by copying them to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return errors.Wrap(err, "error initializing config")
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

var tarotDrawCmd = &cobra.Command{
	Use:   "draw [N]",
	Short: "Shuffle the deck and draw N cards (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 1 {
			var err error
			if n, err = strconv.Atoi(args[0]); err != nil || n < 1 {
				return errors.Errorf("invalid number of cards: %s", args[0])
			}
		}

		d, err := resolveDeck()
		if err != nil {
			return err
		}
		d.Cards.Shuffle()

		out := cmd.OutOrStdout()
		for i := range n {
			c, ok := d.Cards.Next()
			if !ok {
				fmt.Fprintln(out, "The deck is empty.")
				break
			}
			fmt.Fprintf(out, "%s %s %s\n",
				labelColor.Sprintf("%d.", i+1), valueColor.Sprint(c.Name), labelColor.Sprintf("(%s)", c.CanonicalID))
		}
		return nil
	},
}

var tarotShowCmd = &cobra.Command{
	Use:   "show CARD_ID",
	Short: "Display a card with its ANSI art",
	Long: `Show displays a tarot card with its ANSI terminal art.
Use canonical card IDs like 'major_arcana.00' or 'minor_arcana.wands.ace'.

Examples:
  cardset tarot show major_arcana.00
  cardset tarot show --deck rider-waite-smith minor_arcana.wands.ace
  cardset tarot show --deck ./custom-deck major_arcana.01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := resolveDeck()
		if err != nil {
			return err
		}
		c, err := d.GetCard(args[0])
		if err != nil {
			return err
		}
		art, err := findAnsiArt(d, c)
		if err != nil {
			glog.Warningf("no art for %s: %v", c.CanonicalID, err)
		}
		displayTarotCard(cmd.OutOrStdout(), c, art, d.Name)
		return nil
	},
}

func init() {
	tarotCmd.PersistentFlags().StringVarP(&tarotDeckFlag, "deck", "d", "", "A deck from your deck library or a path to a deck")

	tarotCmd.AddCommand(tarotListCmd)
	tarotCmd.AddCommand(tarotSetDefaultCmd)
	tarotCmd.AddCommand(tarotInitCmd)
	tarotCmd.AddCommand(tarotDrawCmd)
	tarotCmd.AddCommand(tarotShowCmd)
}
