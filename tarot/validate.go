package tarot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// SchemaVersion is the only deck.toml schema_version understood.
const SchemaVersion = "1.0"

var imageExtensions = []string{".svg", ".png", ".jpg", ".jpeg", ".webp"}

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

func (r *ValidationResults) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResults) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validate checks a deck directory. A deck.toml that is missing or does not
// parse is returned as an error; everything else is reported in the results.
func Validate(deckPath string) (ValidationResults, error) {
	var results ValidationResults

	config, err := readManifest(deckPath)
	if err != nil {
		return results, err
	}
	validateManifest(deckPath, config, &results)

	deck, err := LoadDeck(deckPath)
	if err != nil {
		// The manifest parsed, so the language file is at fault;
		// validateNames reports it.
		deck = &Deck{Path: deckPath, Cards: newCards(), config: config}
		deck.applyExclusions()
	}
	validateCards(deck, &results)
	validateNames(deckPath, &results)
	validateImages(deck, &results)
	validateAnsiArt(deck, &results)

	return results, nil
}

func validateManifest(deckPath string, config *DeckConfig, results *ValidationResults) {
	if config.Deck.ID == "" {
		results.errorf("deck.id is required in deck.toml")
	}
	if config.Deck.Name == "" {
		results.errorf("deck.name is required in deck.toml")
	}
	if config.Deck.Version == "" {
		results.errorf("deck.version is required in deck.toml")
	}
	if config.Deck.SchemaVersion == "" {
		results.errorf("deck.schema_version is required in deck.toml")
	} else if config.Deck.SchemaVersion != SchemaVersion {
		results.errorf("unsupported schema_version: %s (supported: %s)", config.Deck.SchemaVersion, SchemaVersion)
	}

	// Validate card backs
	cardBacksDir := filepath.Join(deckPath, "card_backs")
	if _, err := os.Stat(cardBacksDir); os.IsNotExist(err) {
		results.warnf("card_backs directory not found")
	}
	if config.CardBacks == nil {
		return
	}
	if len(config.CardBacks.Variants) > 1 && config.CardBacks.Default == "" {
		results.errorf("card_backs.default is required when multiple card back variants are defined")
	}
	for variantName, variant := range config.CardBacks.Variants {
		if variant.Image == "" {
			results.errorf("card_backs.variants.%s.image is required", variantName)
			continue
		}
		if _, err := os.Stat(filepath.Join(deckPath, variant.Image)); os.IsNotExist(err) {
			results.errorf("card back image not found: %s", variant.Image)
		}
	}
}

// validateCards checks that every excluded id names a real card and that the
// loaded deck holds each remaining card exactly once.
func validateCards(deck *Deck, results *ValidationResults) {
	full := newCards()
	excluded := 0
	if ex := deck.config.Deck.ExcludedCards; ex != nil {
		for _, id := range ex.Cards {
			known := full.Filter(func(c *Card, _ int, _ []*Card) bool { return c.CanonicalID == id })
			if len(known) == 0 {
				results.errorf("excluded card is not a tarot card: %s", id)
				continue
			}
			excluded++
		}
		if excluded > 0 && ex.Reason == "" {
			results.warnf("deck.excluded_cards.reason is empty")
		}
	}

	seen := make(map[string]bool)
	for _, c := range deck.Cards.All() {
		if seen[c.CanonicalID] {
			results.errorf("duplicate card: %s", c.CanonicalID)
		}
		seen[c.CanonicalID] = true
	}
	if want := full.Count() - excluded; deck.Cards.Count() != want {
		results.errorf("deck has %d cards, expected %d", deck.Cards.Count(), want)
	}
}

// validateNames checks localization files
func validateNames(deckPath string, results *ValidationResults) {
	namesDir := filepath.Join(deckPath, "names")
	entries, err := os.ReadDir(namesDir)
	if os.IsNotExist(err) {
		results.warnf("names directory not found")
		return
	}
	if err != nil {
		results.errorf("error reading names directory: %v", err)
		return
	}

	foundValidLangFile := false
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		var langConfig NameConfig
		if _, err := toml.DecodeFile(filepath.Join(namesDir, entry.Name()), &langConfig); err != nil {
			results.errorf("error parsing language file %s: %v", entry.Name(), err)
			continue
		}
		foundValidLangFile = true

		if langConfig.MajorArcana == nil {
			results.warnf("missing [major_arcana] section in %s", entry.Name())
		}
		if langConfig.MinorArcana == nil {
			results.warnf("missing [minor_arcana] section in %s", entry.Name())
		}

		_, alt := splitNames(langConfig.MajorArcana)
		hasAltText := len(alt) > 0
		for _, table := range langConfig.MinorArcana {
			if _, alt := splitNames(table); len(alt) > 0 {
				hasAltText = true
			}
		}
		if !hasAltText {
			results.warnf("no alt_text sections found in %s", entry.Name())
		}
	}

	if !foundValidLangFile {
		results.errorf("no valid language files found in names directory")
	}
}

// imageDirs returns scalable/ and every raster directory named h<height>.
func imageDirs(deckPath string) []string {
	var dirs []string
	if _, err := os.Stat(filepath.Join(deckPath, "scalable")); err == nil {
		dirs = append(dirs, filepath.Join(deckPath, "scalable"))
	}
	entries, err := os.ReadDir(deckPath)
	if err != nil {
		return dirs
	}
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "h") {
			continue
		}
		if _, err := fmt.Sscanf(entry.Name(), "h%d", new(int)); err == nil {
			dirs = append(dirs, filepath.Join(deckPath, entry.Name()))
		}
	}
	return dirs
}

func hasImage(dir string, c *Card) bool {
	for _, ext := range imageExtensions {
		if _, err := os.Stat(c.Path(dir, ext)); err == nil {
			return true
		}
	}
	return false
}

// validateImages checks that every card in the deck has an image in every
// image directory.
func validateImages(deck *Deck, results *ValidationResults) {
	dirs := imageDirs(deck.Path)
	if len(dirs) == 0 {
		results.errorf("no image directories found (expecting scalable/ or h*/ directories)")
		return
	}
	for _, dir := range dirs {
		missing := deck.Cards.Filter(func(c *Card, _ int, _ []*Card) bool {
			return !hasImage(dir, c)
		})
		if len(missing) > 0 {
			results.errorf("missing images in %s: %s", filepath.Base(dir), canonicalIDs(missing))
		}
	}
}

// validateAnsiArt checks ANSI art directories (ansi32, ansi256, ...). Missing
// art is only a warning.
func validateAnsiArt(deck *Deck, results *ValidationResults) {
	entries, err := os.ReadDir(deck.Path)
	if err != nil {
		results.errorf("error reading deck directory: %v", err)
		return
	}

	foundAnsiDir := false
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "ansi") {
			continue
		}
		foundAnsiDir = true
		dir := filepath.Join(deck.Path, entry.Name())
		missing := deck.Cards.Filter(func(c *Card, _ int, _ []*Card) bool {
			_, err := os.Stat(c.Path(dir, ".ansi"))
			return err != nil
		})
		if len(missing) > 0 {
			results.warnf("missing ANSI art in %s: %s", entry.Name(), canonicalIDs(missing))
		}
	}

	if !foundAnsiDir {
		results.warnf("no ANSI art directories found (ansi32/, ansi256/, etc.)")
	}
}

func canonicalIDs(cards []*Card) string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.CanonicalID
	}
	return strings.Join(ids, ", ")
}
