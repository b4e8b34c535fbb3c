// Package card defines the capability shared by every card family that can
// live in a cardset.CardSet.
package card

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Card represents any card with a unique identifier and a visibility.
type Card interface {
	// ID is unique across all cards ever created.
	ID() string
	Visibility() Visibility
}

// CompareFn orders two cards: negative if a precedes b, zero if they are
// equal, positive if a follows b.
type CompareFn[T Card] func(a, b T) int

// Visibility describes who may observe a card's value. It is opaque metadata
// for callers; collections never interpret it.
type Visibility uint8

const (
	Private Visibility = iota
	Public
	Blind
)

var visibilityStr = [...]string{
	"Private",
	"Public",
	"Blind",
}

// String implements Stringer.
func (v Visibility) String() string {
	if int(v) >= len(visibilityStr) {
		return fmt.Sprintf("Visibility(%d)", uint8(v))
	}
	return visibilityStr[v]
}

// ParseVisibility parses a visibility name, ignoring case.
func ParseVisibility(s string) (Visibility, error) {
	for i, name := range visibilityStr {
		if strings.EqualFold(s, name) {
			return Visibility(i), nil
		}
	}
	return Private, fmt.Errorf("unknown visibility: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (v Visibility) MarshalText() ([]byte, error) {
	if int(v) >= len(visibilityStr) {
		return nil, fmt.Errorf("unknown visibility: %d", uint8(v))
	}
	return []byte(strings.ToLower(visibilityStr[v])), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Visibility) UnmarshalText(text []byte) error {
	parsed, err := ParseVisibility(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// NewID returns a fresh time-based (version 1) UUID string. If the node or
// clock sequence cannot be read, a random (version 4) UUID is used instead.
func NewID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
