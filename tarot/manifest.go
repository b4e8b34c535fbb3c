package tarot

// Deck configuration structures (deck.toml)
type DeckConfig struct {
	Deck      DeckSection      `toml:"deck"`
	CardBacks *CardBackSection `toml:"card_backs"`
}

type DeckSection struct {
	ID            string               `toml:"id"`
	Name          string               `toml:"name"`
	Version       string               `toml:"version"`
	SchemaVersion string               `toml:"schema_version"`
	Author        string               `toml:"author"`
	License       string               `toml:"license"`
	Description   string               `toml:"description"`
	Tags          []string             `toml:"tags"`
	ExcludedCards *ExcludedCardSection `toml:"excluded_cards"`
}

type ExcludedCardSection struct {
	Cards  []string `toml:"cards"`
	Reason string   `toml:"reason"`
}

type CardBackSection struct {
	Default  string                     `toml:"default"`
	Variants map[string]CardBackVariant `toml:"variants"`
}

type CardBackVariant struct {
	Name    string `toml:"name"`
	Image   string `toml:"image"`
	AltText string `toml:"alt_text"`
}

// NameConfig is a names/<lang>.toml file. Each table maps card numbers (or
// ranks) to names and may hold an alt_text subtable:
//
//	[major_arcana]
//	"00" = "The Fool"
//	[major_arcana.alt_text]
//	"00" = "A young traveller at a cliff edge"
//	[minor_arcana.cups]
//	ace = "Ace of Cups"
type NameConfig struct {
	MajorArcana map[string]any            `toml:"major_arcana"`
	MinorArcana map[string]map[string]any `toml:"minor_arcana"`
}

// splitNames separates a names table into card names and alt text.
func splitNames(table map[string]any) (names, altText map[string]string) {
	names = make(map[string]string)
	altText = make(map[string]string)
	for key, value := range table {
		switch v := value.(type) {
		case string:
			names[key] = v
		case map[string]any:
			if key != "alt_text" {
				continue
			}
			for k, text := range v {
				if s, ok := text.(string); ok {
					altText[k] = s
				}
			}
		}
	}
	return names, altText
}
