package playingcard

import "fmt"

// Suit of a standard playing card. Jokers have suit None.
type Suit uint8

const (
	None Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

var suitStr = [...]string{
	"None",
	"Clubs",
	"Diamonds",
	"Hearts",
	"Spades",
}

var suitCharacter = [...]string{
	None:     "",
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

// String implements Stringer.
func (s Suit) String() string {
	if int(s) >= len(suitStr) {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitStr[s]
}

// Character returns the unicode symbol of the suit, or "" for None.
func (s Suit) Character() string {
	if int(s) >= len(suitCharacter) {
		return ""
	}
	return suitCharacter[s]
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Rank of a playing card, in enumeration order: Ace is the lowest and
// Joker the highest.
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Joker
)

var rankStr = [...]string{
	"Ace",
	"Two",
	"Three",
	"Four",
	"Five",
	"Six",
	"Seven",
	"Eight",
	"Nine",
	"Ten",
	"Jack",
	"Queen",
	"King",
	"Joker",
}

var rankShort = [...]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "🃏"}

// String implements Stringer.
func (r Rank) String() string {
	if int(r) >= len(rankStr) {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankStr[r]
}

// Short returns the index label printed in a card's corner ("A", "10", "K").
func (r Rank) Short() string {
	if int(r) >= len(rankShort) {
		return "?"
	}
	return rankShort[r]
}
