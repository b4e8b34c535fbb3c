package tarot

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/arcanaland/cardset/cardset"
)

// Deck represents a tarot deck
type Deck struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	Path        string

	// Cards in canonical order, minus any excluded by the manifest
	Cards *cardset.CardSet[*Card]

	config *DeckConfig
}

// NewDeck returns the full 78 card deck with default English names.
func NewDeck(opts ...cardset.Option) *Deck {
	return &Deck{
		ID:    "standard",
		Name:  "Standard Tarot",
		Cards: newCards(opts...),
	}
}

// newCards builds all 78 cards in canonical order.
func newCards(opts ...cardset.Option) *cardset.CardSet[*Card] {
	cards := cardset.New[*Card](opts...)
	for i := 0; i < NumMajor; i++ {
		c, _ := NewMajor(i)
		cards.Add(c)
	}
	for _, suit := range suits {
		for _, rank := range ranks {
			c, _ := NewMinor(suit, rank)
			cards.Add(c)
		}
	}
	return cards
}

// LoadDeck loads a tarot deck from a directory
func LoadDeck(deckPath string, opts ...cardset.Option) (*Deck, error) {
	config, err := readManifest(deckPath)
	if err != nil {
		return nil, err
	}

	deck := &Deck{
		ID:          config.Deck.ID,
		Name:        config.Deck.Name,
		Version:     config.Deck.Version,
		Author:      config.Deck.Author,
		Description: config.Deck.Description,
		Path:        deckPath,
		Cards:       newCards(opts...),
		config:      config,
	}

	deck.applyExclusions()

	// Load card names and alt text
	if err := deck.loadNames(); err != nil {
		return nil, errors.Wrap(err, "error loading card info")
	}

	glog.V(1).Infof("loaded deck %q from %s (%d cards)", deck.Name, deckPath, deck.Cards.Count())
	return deck, nil
}

func readManifest(deckPath string) (*DeckConfig, error) {
	deckTomlPath := filepath.Join(deckPath, "deck.toml")
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return nil, errors.Errorf("deck.toml not found in %s", deckPath)
	}

	var config DeckConfig
	if _, err := toml.DecodeFile(deckTomlPath, &config); err != nil {
		return nil, errors.Wrap(err, "error parsing deck.toml")
	}
	return &config, nil
}

// applyExclusions drops the cards listed in deck.excluded_cards.
func (d *Deck) applyExclusions() {
	if d.config == nil || d.config.Deck.ExcludedCards == nil {
		return
	}
	excluded := d.config.Deck.ExcludedCards
	for _, id := range excluded.Cards {
		if !d.remove(id) {
			glog.Warningf("deck %s excludes unknown card %s", d.Path, id)
		}
	}
}

// remove drops the card with the given canonical id from the deck.
func (d *Deck) remove(canonicalID string) bool {
	for i, c := range d.Cards.All() {
		if c.CanonicalID == canonicalID {
			_, ok := d.Cards.Take(i)
			return ok
		}
	}
	return false
}

// languageFile picks names/en.toml, or else the first .toml in names/. It
// returns "" when the deck has no language files.
func languageFile(deckPath string) string {
	namesDir := filepath.Join(deckPath, "names")
	enTomlPath := filepath.Join(namesDir, "en.toml")
	if _, err := os.Stat(enTomlPath); err == nil {
		return enTomlPath
	}

	entries, err := os.ReadDir(namesDir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".toml" {
			return filepath.Join(namesDir, entry.Name())
		}
	}
	return ""
}

// loadNames applies names and alt text from the deck's language file. Cards
// the file does not name keep their default names.
func (d *Deck) loadNames() error {
	langPath := languageFile(d.Path)
	if langPath == "" {
		glog.V(1).Infof("no language file in %s, using default names", d.Path)
		return nil
	}

	var langConfig NameConfig
	if _, err := toml.DecodeFile(langPath, &langConfig); err != nil {
		return errors.Wrapf(err, "error parsing language file %s", filepath.Base(langPath))
	}

	majorNames, majorAlt := splitNames(langConfig.MajorArcana)
	minorNames := make(map[string]map[string]string)
	minorAlt := make(map[string]map[string]string)
	for suit, table := range langConfig.MinorArcana {
		minorNames[suit], minorAlt[suit] = splitNames(table)
	}

	for _, c := range d.Cards.All() {
		var name, alt string
		if c.Arcana == MajorArcana {
			name, alt = majorNames[c.Number], majorAlt[c.Number]
		} else {
			name, alt = minorNames[c.Suit][c.Rank], minorAlt[c.Suit][c.Rank]
		}
		if name != "" {
			c.Name = name
		}
		if alt != "" {
			c.AltText = alt
		}
	}
	return nil
}

// FindImage returns the first image of c in the deck's image directories
// with one of exts, tried in order. With no exts every known image extension
// is tried.
func (d *Deck) FindImage(c *Card, exts ...string) (string, bool) {
	if len(exts) == 0 {
		exts = imageExtensions
	}
	for _, dir := range imageDirs(d.Path) {
		for _, ext := range exts {
			path := c.Path(dir, ext)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
	}
	return "", false
}

// GetCard gets a card by its canonical ID
func (d *Deck) GetCard(canonicalID string) (*Card, error) {
	parts := strings.Split(canonicalID, ".")
	valid := (parts[0] == MajorArcana.String() && len(parts) == 2) ||
		(parts[0] == MinorArcana.String() && len(parts) == 3)
	if !valid {
		return nil, errors.Errorf("invalid card ID format: %s", canonicalID)
	}

	found := d.Cards.Filter(func(c *Card, _ int, _ []*Card) bool {
		return c.CanonicalID == canonicalID
	})
	if len(found) == 0 {
		return nil, errors.Errorf("card not found: %s", canonicalID)
	}
	return found[0], nil
}
