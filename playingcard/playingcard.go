// Package playingcard implements standard playing cards on top of cardset.
package playingcard

import (
	"cmp"

	"github.com/arcanaland/cardset/card"
	"github.com/arcanaland/cardset/cardset"
)

// PlayingCard represents one physical playing card. Its suit and rank are
// always derived from its value.
type PlayingCard struct {
	id         string
	value      Value
	visibility card.Visibility
}

var _ card.Card = (*PlayingCard)(nil)

// New creates a private card with a fresh ID.
func New(value Value) *PlayingCard {
	return NewWithVisibility(value, card.Private)
}

// NewWithVisibility creates a card with a fresh ID and the given visibility.
func NewWithVisibility(value Value, visibility card.Visibility) *PlayingCard {
	return &PlayingCard{
		id:         card.NewID(),
		value:      value,
		visibility: visibility,
	}
}

// ID implements card.Card.
func (c *PlayingCard) ID() string {
	return c.id
}

// Visibility implements card.Card.
func (c *PlayingCard) Visibility() card.Visibility {
	return c.visibility
}

// SetVisibility turns the card face up, face down, or blind.
func (c *PlayingCard) SetVisibility(v card.Visibility) {
	c.visibility = v
}

// Value returns the card's fixed code.
func (c *PlayingCard) Value() Value {
	return c.value
}

// Suit returns the card's suit, None for a Joker.
func (c *PlayingCard) Suit() Suit {
	return c.value.Suit()
}

// Rank returns the card's rank.
func (c *PlayingCard) Rank() Rank {
	return c.value.Rank()
}

// Character returns the unicode symbol of the card's suit.
func (c *PlayingCard) Character() string {
	return c.Suit().Character()
}

// String returns the corner label of the card, e.g. "A♣" or "🃏2".
func (c *PlayingCard) String() string {
	if c.Rank() == Joker {
		return Joker.Short() + c.value.String()[1:]
	}
	return c.Rank().Short() + c.Character()
}

// Compare orders cards by rank alone: Ace < Two < ... < King < Joker. Cards
// of equal rank compare equal whatever their suit.
func Compare(a, b *PlayingCard) int {
	return cmp.Compare(a.Rank(), b.Rank())
}

// DeckType selects which value tables populate a deck. Types combine with
// bitwise OR.
type DeckType uint8

const (
	Standard DeckType = 1 << iota
	Jokers
)

var deckTables = []struct {
	typ    DeckType
	values []Value
}{
	{Standard, []Value{
		CA, C2, C3, C4, C5, C6, C7, C8, C9, CT, CJ, CQ, CK,
		DA, D2, D3, D4, D5, D6, D7, D8, D9, DT, DJ, DQ, DK,
		HA, H2, H3, H4, H5, H6, H7, H8, H9, HT, HJ, HQ, HK,
		SA, S2, S3, S4, S5, S6, S7, S8, S9, ST, SJ, SQ, SK,
	}},
	{Jokers, []Value{J1, J2, J3, J4}},
}

// Values returns the values t selects in deck order: the standard suits
// clubs, diamonds, hearts, spades from Ace to King, then the jokers.
func (t DeckType) Values() []Value {
	if t == 0 {
		t = Standard
	}
	var values []Value
	for _, table := range deckTables {
		if t&table.typ == table.typ {
			values = append(values, table.values...)
		}
	}
	return values
}

// Deck returns a new CardSet holding one fresh card per value selected by t,
// in table order. A zero t means Standard.
func Deck(t DeckType, opts ...cardset.Option) *cardset.CardSet[*PlayingCard] {
	deck := cardset.New[*PlayingCard](opts...)
	for _, v := range t.Values() {
		deck.Add(New(v))
	}
	return deck
}
