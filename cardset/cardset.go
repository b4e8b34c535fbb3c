// Package cardset provides CardSet, an ordered collection of cards in which
// no two cards share an ID.
//
// Every mutating operation builds a new backing slice instead of editing the
// current one in place, so a slice obtained from Cards, Shuffle, or a Filter
// predicate keeps its contents after later mutations.
//
// Failures are reported through return values: a missing card comes back as
// the zero value with false (or index -1), and rejected adds, moves, and swaps
// return false. No operation panics on bad input.
//
// A CardSet is not safe for concurrent use.
package cardset

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/arcanaland/cardset/card"
)

// CardSet is an ordered, ID-unique collection of cards. Position 0 is the top
// of the pile. The zero value is an empty set using the default generator.
type CardSet[T card.Card] struct {
	cards []T
	rng   Rand
}

// New returns an empty CardSet.
func New[T card.Card](opts ...Option) *CardSet[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &CardSet[T]{rng: o.rng}
}

// From returns a CardSet holding cards in order, along with the number of
// cards rejected as duplicates.
func From[T card.Card](cards []T, opts ...Option) (*CardSet[T], int) {
	s := New[T](opts...)
	rejected := 0
	for _, c := range cards {
		if !s.Add(c) {
			rejected++
		}
	}
	return s, rejected
}

func (s *CardSet[T]) random() Rand {
	if s.rng == nil {
		return globalRand{}
	}
	return s.rng
}

// Count returns the number of cards in the set.
func (s *CardSet[T]) Count() int {
	return len(s.cards)
}

// Cards returns a copy of the cards in their current order.
func (s *CardSet[T]) Cards() []T {
	return slices.Clone(s.cards)
}

// Next takes the top card. It is equivalent to Take(0).
func (s *CardSet[T]) Next() (T, bool) {
	return s.Take(0)
}

// Take removes and returns the card at idx. Cards after idx move up by one.
// If idx is out of range the set is left untouched and ok is false.
func (s *CardSet[T]) Take(idx int) (T, bool) {
	var zero T
	if idx < 0 || idx >= len(s.cards) {
		return zero, false
	}
	c := s.cards[idx]
	s.cards = slices.Delete(slices.Clone(s.cards), idx, idx+1)
	return c, true
}

// Add appends c to the bottom of the set. It returns false, leaving the set
// unchanged, if a card with the same ID is already present.
func (s *CardSet[T]) Add(c T) bool {
	if s.IndexOf(c.ID()) >= 0 {
		return false
	}
	// Clip forces append to allocate a new backing array.
	s.cards = append(slices.Clip(s.cards), c)
	return true
}

// Card returns the card at idx without removing it.
func (s *CardSet[T]) Card(idx int) (T, bool) {
	var zero T
	if idx < 0 || idx >= len(s.cards) {
		return zero, false
	}
	return s.cards[idx], true
}

// Cut picks a card uniformly at random without removing it and returns it
// with its index. An empty set returns the zero value and -1.
func (s *CardSet[T]) Cut() (T, int) {
	var zero T
	switch len(s.cards) {
	case 0:
		return zero, -1
	case 1:
		return s.cards[0], 0
	}
	idx := s.random().IntN(len(s.cards))
	return s.cards[idx], idx
}

// Shuffle replaces the order with a uniformly random permutation and returns
// the new order.
func (s *CardSet[T]) Shuffle() []T {
	next := slices.Clone(s.cards)
	rng := s.random()
	// Fisher-Yates
	for i := len(next) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		next[i], next[j] = next[j], next[i]
	}
	s.cards = next
	return s.Cards()
}

// Sort orders the cards with cmp. The sort is stable, so cards that compare
// equal keep their relative order. A nil cmp leaves the order unchanged.
func (s *CardSet[T]) Sort(cmp card.CompareFn[T]) {
	if cmp == nil {
		return
	}
	next := slices.Clone(s.cards)
	slices.SortStableFunc(next, cmp)
	s.cards = next
}

// Move removes the card at from and reinserts it at to, where to is an index
// into the set after the removal. It returns false without changing anything
// if the set holds fewer than two cards or either index is out of range.
func (s *CardSet[T]) Move(from, to int) bool {
	n := len(s.cards)
	if n < 2 {
		return false
	}
	if from < 0 || from > n-1 {
		return false
	}
	if to < 0 || to > n-1 {
		return false
	}
	if from == to {
		return true
	}

	next := slices.Clone(s.cards)
	c := next[from]
	next = slices.Delete(next, from, from+1)
	next = slices.Insert(next, to, c)
	s.cards = next
	return true
}

// Swap exchanges the cards at first and second.
//
// The exchange is done as two moves: the higher index moves down to the lower
// position, then the card pushed along by that move goes back up to the
// higher position. If the second move fails the first one is not undone.
func (s *CardSet[T]) Swap(first, second int) bool {
	if first == second {
		return true
	}
	lo, hi := first, second
	if lo > hi {
		lo, hi = hi, lo
	}

	if !s.Move(hi, lo) {
		return false
	}
	if !s.Move(lo+1, hi) {
		return false
	}
	return true
}

// Filter returns the cards for which pred returns true, in their current
// order. pred receives each card, its index, and the full sequence being
// filtered; that slice must not be modified. The set itself is not changed.
// A nil pred matches nothing.
func (s *CardSet[T]) Filter(pred func(c T, idx int, cards []T) bool) []T {
	if pred == nil {
		return nil
	}
	cards := s.cards
	var result []T
	for i, c := range cards {
		if pred(c, i, cards) {
			result = append(result, c)
		}
	}
	return result
}

// IndexOf returns the position of the card with the given ID, or -1.
func (s *CardSet[T]) IndexOf(id string) int {
	return slices.IndexFunc(s.cards, func(c T) bool {
		return c.ID() == id
	})
}

// Contains reports whether a card with the given ID is in the set.
func (s *CardSet[T]) Contains(id string) bool {
	return s.IndexOf(id) >= 0
}

// All iterates over the cards as they were when All was called.
func (s *CardSet[T]) All() iter.Seq2[int, T] {
	return slices.All(s.cards)
}

// String implements Stringer. Cards that are not Stringers are shown by ID.
func (s *CardSet[T]) String() string {
	parts := make([]string, 0, len(s.cards))
	for _, c := range s.cards {
		if str, ok := any(c).(fmt.Stringer); ok {
			parts = append(parts, str.String())
		} else {
			parts = append(parts, c.ID())
		}
	}
	return fmt.Sprintf("CardSet[%d]{%s}", len(s.cards), strings.Join(parts, ", "))
}
