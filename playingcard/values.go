package playingcard

import (
	"fmt"
	"strings"
)

// Value is the fixed code of a playing card. The code's two characters name
// the suit and the rank (e.g. CA is the Ace of Clubs, DT the Ten of Diamonds);
// J1 through J4 are the jokers.
type Value uint8

const (
	CA Value = iota
	C2
	C3
	C4
	C5
	C6
	C7
	C8
	C9
	CT
	CJ
	CQ
	CK
	DA
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
	DT
	DJ
	DQ
	DK
	HA
	H2
	H3
	H4
	H5
	H6
	H7
	H8
	H9
	HT
	HJ
	HQ
	HK
	SA
	S2
	S3
	S4
	S5
	S6
	S7
	S8
	S9
	ST
	SJ
	SQ
	SK
	J1
	J2
	J3
	J4
)

// NumValues is the number of distinct Values.
const NumValues = int(J4) + 1

var valueStr = [NumValues]string{
	"CA", "C2", "C3", "C4", "C5", "C6", "C7", "C8", "C9", "CT", "CJ", "CQ", "CK",
	"DA", "D2", "D3", "D4", "D5", "D6", "D7", "D8", "D9", "DT", "DJ", "DQ", "DK",
	"HA", "H2", "H3", "H4", "H5", "H6", "H7", "H8", "H9", "HT", "HJ", "HQ", "HK",
	"SA", "S2", "S3", "S4", "S5", "S6", "S7", "S8", "S9", "ST", "SJ", "SQ", "SK",
	"J1", "J2", "J3", "J4",
}

var valueRank = [NumValues]Rank{
	CA: Ace,
	C2: Two,
	C3: Three,
	C4: Four,
	C5: Five,
	C6: Six,
	C7: Seven,
	C8: Eight,
	C9: Nine,
	CT: Ten,
	CJ: Jack,
	CQ: Queen,
	CK: King,
	DA: Ace,
	D2: Two,
	D3: Three,
	D4: Four,
	D5: Five,
	D6: Six,
	D7: Seven,
	D8: Eight,
	D9: Nine,
	DT: Ten,
	DJ: Jack,
	DQ: Queen,
	DK: King,
	HA: Ace,
	H2: Two,
	H3: Three,
	H4: Four,
	H5: Five,
	H6: Six,
	H7: Seven,
	H8: Eight,
	H9: Nine,
	HT: Ten,
	HJ: Jack,
	HQ: Queen,
	HK: King,
	SA: Ace,
	S2: Two,
	S3: Three,
	S4: Four,
	S5: Five,
	S6: Six,
	S7: Seven,
	S8: Eight,
	S9: Nine,
	ST: Ten,
	SJ: Jack,
	SQ: Queen,
	SK: King,
	J1: Joker,
	J2: Joker,
	J3: Joker,
	J4: Joker,
}

var valueSuit = [NumValues]Suit{
	CA: Clubs,
	C2: Clubs,
	C3: Clubs,
	C4: Clubs,
	C5: Clubs,
	C6: Clubs,
	C7: Clubs,
	C8: Clubs,
	C9: Clubs,
	CT: Clubs,
	CJ: Clubs,
	CQ: Clubs,
	CK: Clubs,
	DA: Diamonds,
	D2: Diamonds,
	D3: Diamonds,
	D4: Diamonds,
	D5: Diamonds,
	D6: Diamonds,
	D7: Diamonds,
	D8: Diamonds,
	D9: Diamonds,
	DT: Diamonds,
	DJ: Diamonds,
	DQ: Diamonds,
	DK: Diamonds,
	HA: Hearts,
	H2: Hearts,
	H3: Hearts,
	H4: Hearts,
	H5: Hearts,
	H6: Hearts,
	H7: Hearts,
	H8: Hearts,
	H9: Hearts,
	HT: Hearts,
	HJ: Hearts,
	HQ: Hearts,
	HK: Hearts,
	SA: Spades,
	S2: Spades,
	S3: Spades,
	S4: Spades,
	S5: Spades,
	S6: Spades,
	S7: Spades,
	S8: Spades,
	S9: Spades,
	ST: Spades,
	SJ: Spades,
	SQ: Spades,
	SK: Spades,
	J1: None,
	J2: None,
	J3: None,
	J4: None,
}

// Valid reports whether v is one of the 56 defined codes.
func (v Value) Valid() bool {
	return int(v) < NumValues
}

// String returns the two character code of the value.
func (v Value) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Value(%d)", uint8(v))
	}
	return valueStr[v]
}

// Rank returns the rank encoded by the value.
func (v Value) Rank() Rank {
	if !v.Valid() {
		return Joker
	}
	return valueRank[v]
}

// Suit returns the suit encoded by the value.
func (v Value) Suit() Suit {
	if !v.Valid() {
		return None
	}
	return valueSuit[v]
}

// ParseValue parses a two character value code such as "CA" or "ht".
func ParseValue(s string) (Value, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	for i, str := range valueStr {
		if str == code {
			return Value(i), nil
		}
	}
	return 0, fmt.Errorf("unknown card value: %q", s)
}
