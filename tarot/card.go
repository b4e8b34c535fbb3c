// Package tarot implements tarot cards and deck libraries on top of cardset.
//
// A deck on disk is a directory holding a deck.toml manifest, an optional
// names/ directory of language files, image directories (scalable/, h750/,
// ...) and optional pre-rendered ANSI art (ansi32/, ansi256/).
package tarot

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arcanaland/cardset/card"
)

// Arcana distinguishes the trumps from the suited cards.
type Arcana uint8

const (
	MajorArcana Arcana = iota
	MinorArcana
)

var arcanaStr = [...]string{
	"major_arcana",
	"minor_arcana",
}

// String returns the arcana as used in canonical ids.
func (a Arcana) String() string {
	if int(a) >= len(arcanaStr) {
		return fmt.Sprintf("Arcana(%d)", uint8(a))
	}
	return arcanaStr[a]
}

// NumMajor is the number of major arcana cards (00-21).
const NumMajor = 22

var suits = []string{"wands", "cups", "swords", "pentacles"}

var ranks = []string{
	"ace", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"page", "knight", "queen", "king",
}

// Suits returns the minor arcana suits in canonical order.
func Suits() []string {
	return slices.Clone(suits)
}

// Ranks returns the minor arcana ranks in canonical order.
func Ranks() []string {
	return slices.Clone(ranks)
}

// Card represents a tarot card
type Card struct {
	CanonicalID string // e.g. major_arcana.00, minor_arcana.wands.ace
	Name        string // Localized name
	Arcana      Arcana
	Number      string // For major arcana (00-21)
	Suit        string // For minor arcana (wands, cups, swords, pentacles)
	Rank        string // For minor arcana (ace, two, ..., king)
	AltText     string // Descriptive alt text

	id         string
	visibility card.Visibility
	pos        int // canonical position in a full deck
}

var _ card.Card = (*Card)(nil)

// NewMajor creates the major arcana card with the given number (0-21).
func NewMajor(number int) (*Card, error) {
	if number < 0 || number >= NumMajor {
		return nil, fmt.Errorf("major arcana number out of range: %d", number)
	}
	num := fmt.Sprintf("%02d", number)
	return &Card{
		CanonicalID: fmt.Sprintf("%s.%s", MajorArcana, num),
		Name:        defaultMajorNames[number],
		Arcana:      MajorArcana,
		Number:      num,
		id:          card.NewID(),
		pos:         number,
	}, nil
}

// NewMinor creates the minor arcana card of the given suit and rank.
func NewMinor(suit, rank string) (*Card, error) {
	s := slices.Index(suits, suit)
	if s < 0 {
		return nil, fmt.Errorf("unknown suit: %s", suit)
	}
	r := slices.Index(ranks, rank)
	if r < 0 {
		return nil, fmt.Errorf("unknown rank: %s", rank)
	}
	return &Card{
		CanonicalID: fmt.Sprintf("%s.%s.%s", MinorArcana, suit, rank),
		Name:        defaultMinorName(rank, suit),
		Arcana:      MinorArcana,
		Suit:        suit,
		Rank:        rank,
		id:          card.NewID(),
		pos:         NumMajor + s*len(ranks) + r,
	}, nil
}

// ID implements card.Card.
func (c *Card) ID() string {
	return c.id
}

// Visibility implements card.Card.
func (c *Card) Visibility() card.Visibility {
	return c.visibility
}

// SetVisibility changes who may see the card.
func (c *Card) SetVisibility(v card.Visibility) {
	c.visibility = v
}

// String implements Stringer.
func (c *Card) String() string {
	if c.Name != "" {
		return c.Name
	}
	return c.CanonicalID
}

// Path returns the file for this card under an image or ANSI directory, e.g.
// base/major_arcana/00.svg or base/minor_arcana/cups/ace.svg.
func (c *Card) Path(base, ext string) string {
	if c.Arcana == MajorArcana {
		return filepath.Join(base, "major_arcana", c.Number+ext)
	}
	return filepath.Join(base, "minor_arcana", c.Suit, c.Rank+ext)
}

// Compare orders cards canonically: majors 00-21, then minors by suit and
// rank.
func Compare(a, b *Card) int {
	return cmp.Compare(a.pos, b.pos)
}

var defaultMajorNames = [NumMajor]string{
	"The Fool",
	"The Magician",
	"The High Priestess",
	"The Empress",
	"The Emperor",
	"The Hierophant",
	"The Lovers",
	"The Chariot",
	"Strength",
	"The Hermit",
	"Wheel of Fortune",
	"Justice",
	"The Hanged Man",
	"Death",
	"Temperance",
	"The Devil",
	"The Tower",
	"The Star",
	"The Moon",
	"The Sun",
	"Judgement",
	"The World",
}

func defaultMinorName(rank, suit string) string {
	return fmt.Sprintf("%s of %s", capitalize(rank), capitalize(suit))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
