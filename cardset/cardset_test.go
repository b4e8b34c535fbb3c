package cardset

import (
	"cmp"
	"fmt"
	"slices"
	"testing"

	"github.com/arcanaland/cardset/card"
)

type testCard struct {
	id   string
	rank int
}

func (c *testCard) ID() string                  { return c.id }
func (c *testCard) Visibility() card.Visibility { return card.Private }
func (c *testCard) String() string              { return c.id }

func byRank(a, b *testCard) int {
	return cmp.Compare(a.rank, b.rank)
}

// newPile returns a set of n cards with ids c0..c(n-1) and rank equal to
// their index.
func newPile(t *testing.T, n int, opts ...Option) *CardSet[*testCard] {
	t.Helper()
	s := New[*testCard](opts...)
	for i := 0; i < n; i++ {
		if !s.Add(&testCard{id: fmt.Sprintf("c%d", i), rank: i}) {
			t.Fatalf("failed to add card %d", i)
		}
	}
	return s
}

func ids(cards []*testCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.id
	}
	return out
}

// sequenceRand returns the queued values in order and counts calls.
type sequenceRand struct {
	vals  []int
	calls int
}

func (r *sequenceRand) IntN(n int) int {
	v := r.vals[r.calls%len(r.vals)] % n
	r.calls++
	return v
}

func TestNewIsEmpty(t *testing.T) {
	s := New[*testCard]()
	if s.Count() != 0 {
		t.Fatalf("count = %d, want 0", s.Count())
	}

	var zero CardSet[*testCard]
	if zero.Count() != 0 {
		t.Fatalf("zero value count = %d, want 0", zero.Count())
	}
	if !zero.Add(&testCard{id: "a"}) || zero.Count() != 1 {
		t.Fatalf("zero value set should accept adds")
	}
}

func TestTakeEmpty(t *testing.T) {
	s := New[*testCard]()
	if c, ok := s.Take(0); ok || c != nil {
		t.Fatalf("Take(0) on empty = (%v, %v), want (nil, false)", c, ok)
	}
	if c, ok := s.Next(); ok || c != nil {
		t.Fatalf("Next() on empty = (%v, %v), want (nil, false)", c, ok)
	}
}

func TestTake(t *testing.T) {
	tests := []struct {
		name    string
		idx     int
		wantOK  bool
		wantID  string
		wantIDs []string
	}{
		{name: "first", idx: 0, wantOK: true, wantID: "c0", wantIDs: []string{"c1", "c2", "c3"}},
		{name: "middle", idx: 2, wantOK: true, wantID: "c2", wantIDs: []string{"c0", "c1", "c3"}},
		{name: "last", idx: 3, wantOK: true, wantID: "c3", wantIDs: []string{"c0", "c1", "c2"}},
		{name: "past end", idx: 4, wantIDs: []string{"c0", "c1", "c2", "c3"}},
		{name: "negative", idx: -1, wantIDs: []string{"c0", "c1", "c2", "c3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPile(t, 4)
			c, ok := s.Take(tt.idx)
			if ok != tt.wantOK {
				t.Fatalf("Take(%d) ok = %v, want %v", tt.idx, ok, tt.wantOK)
			}
			if ok && c.id != tt.wantID {
				t.Fatalf("Take(%d) = %s, want %s", tt.idx, c.id, tt.wantID)
			}
			if got := ids(s.Cards()); !slices.Equal(got, tt.wantIDs) {
				t.Fatalf("cards = %v, want %v", got, tt.wantIDs)
			}
			if ok {
				taken := s.Filter(func(v *testCard, _ int, _ []*testCard) bool { return v.id == c.id })
				if len(taken) != 0 {
					t.Fatalf("taken card %s still present", c.id)
				}
			}
		})
	}
}

func TestNext(t *testing.T) {
	s := newPile(t, 3)
	for _, want := range []string{"c0", "c1", "c2"} {
		c, ok := s.Next()
		if !ok || c.id != want {
			t.Fatalf("Next() = (%v, %v), want %s", c, ok, want)
		}
	}
	if _, ok := s.Next(); ok {
		t.Fatalf("Next() on drained set should fail")
	}
}

func TestAddRejectsDuplicateID(t *testing.T) {
	s := New[*testCard]()
	c := &testCard{id: "ace"}
	if !s.Add(c) {
		t.Fatalf("first Add should succeed")
	}
	if s.Add(c) {
		t.Fatalf("second Add of the same card should fail")
	}
	if s.Add(&testCard{id: "ace", rank: 5}) {
		t.Fatalf("Add of a different card with the same id should fail")
	}
	if s.Count() != 1 {
		t.Fatalf("count = %d, want 1", s.Count())
	}
}

func TestFrom(t *testing.T) {
	a := &testCard{id: "a"}
	b := &testCard{id: "b"}
	s, rejected := From([]*testCard{a, b, a})
	if rejected != 1 {
		t.Fatalf("rejected = %d, want 1", rejected)
	}
	if got := ids(s.Cards()); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("cards = %v", got)
	}
}

func TestCard(t *testing.T) {
	s := newPile(t, 3)
	if c, ok := s.Card(1); !ok || c.id != "c1" {
		t.Fatalf("Card(1) = (%v, %v)", c, ok)
	}
	for _, idx := range []int{-1, 3} {
		if _, ok := s.Card(idx); ok {
			t.Fatalf("Card(%d) should fail", idx)
		}
	}
	if s.Count() != 3 {
		t.Fatalf("Card must not remove cards")
	}
}

func TestCut(t *testing.T) {
	empty := New[*testCard]()
	if c, idx := empty.Cut(); c != nil || idx != -1 {
		t.Fatalf("Cut() on empty = (%v, %d), want (nil, -1)", c, idx)
	}

	r := &sequenceRand{vals: []int{7}}
	single := newPile(t, 1, WithRand(r))
	if c, idx := single.Cut(); c.id != "c0" || idx != 0 {
		t.Fatalf("Cut() on single = (%v, %d)", c, idx)
	}
	if r.calls != 0 {
		t.Fatalf("Cut() on single card should not use the generator")
	}

	s := newPile(t, 10, WithRand(&sequenceRand{vals: []int{7}}))
	c, idx := s.Cut()
	if idx != 7 {
		t.Fatalf("Cut() index = %d, want 7", idx)
	}
	if peek, _ := s.Card(idx); peek != c {
		t.Fatalf("Cut() card %v is not Card(%d) = %v", c, idx, peek)
	}
	if s.Count() != 10 {
		t.Fatalf("Cut must not remove cards")
	}
}

func TestCutDefaultGenerator(t *testing.T) {
	s := newPile(t, 52)
	for i := 0; i < 100; i++ {
		c, idx := s.Cut()
		if idx < 0 || idx >= 52 {
			t.Fatalf("Cut() index %d out of range", idx)
		}
		if peek, _ := s.Card(idx); peek != c {
			t.Fatalf("Cut() card mismatch at %d", idx)
		}
	}
}

func TestShuffle(t *testing.T) {
	s := newPile(t, 52, WithSeed(42))
	orig := s.Cards()

	shuffled := s.Shuffle()
	if len(shuffled) != 52 || s.Count() != 52 {
		t.Fatalf("shuffle changed count: %d/%d", len(shuffled), s.Count())
	}
	if !slices.Equal(ids(shuffled), ids(s.Cards())) {
		t.Fatalf("Shuffle() result does not match Cards()")
	}

	moved := false
	for i := range orig {
		if orig[i].id != shuffled[i].id {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatalf("shuffle left all 52 cards in place")
	}

	want := ids(orig)
	got := ids(shuffled)
	slices.Sort(want)
	slices.Sort(got)
	if !slices.Equal(got, want) {
		t.Fatalf("shuffle changed the set of ids")
	}

	// The snapshot taken before shuffling keeps its order.
	for i, c := range orig {
		if c.rank != i {
			t.Fatalf("snapshot changed at %d: %v", i, c)
		}
	}
}

func TestShuffleSeeded(t *testing.T) {
	a := newPile(t, 20, WithSeed(7))
	b := newPile(t, 20, WithSeed(7))
	if !slices.Equal(ids(a.Shuffle()), ids(b.Shuffle())) {
		t.Fatalf("same seed produced different shuffles")
	}
}

func TestShuffleUsesFisherYates(t *testing.T) {
	// Always picking j == i leaves the order unchanged.
	s := newPile(t, 5, WithRand(identityRand{}))
	if got := ids(s.Shuffle()); !slices.Equal(got, []string{"c0", "c1", "c2", "c3", "c4"}) {
		t.Fatalf("identity shuffle = %v", got)
	}
}

type identityRand struct{}

func (identityRand) IntN(n int) int { return n - 1 }

func TestSortIsStable(t *testing.T) {
	s := New[*testCard]()
	for _, c := range []*testCard{
		{id: "k1", rank: 13},
		{id: "a1", rank: 1},
		{id: "k2", rank: 13},
		{id: "q1", rank: 12},
		{id: "a2", rank: 1},
	} {
		s.Add(c)
	}
	before := s.Cards()

	s.Sort(byRank)
	want := []string{"a1", "a2", "q1", "k1", "k2"}
	if got := ids(s.Cards()); !slices.Equal(got, want) {
		t.Fatalf("sorted = %v, want %v", got, want)
	}
	if got := ids(before); !slices.Equal(got, []string{"k1", "a1", "k2", "q1", "a2"}) {
		t.Fatalf("snapshot changed by sort: %v", got)
	}

	s.Sort(nil)
	if got := ids(s.Cards()); !slices.Equal(got, want) {
		t.Fatalf("Sort(nil) changed order: %v", got)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		from, to int
		want     bool
		wantIDs  []string
	}{
		{name: "down", n: 4, from: 0, to: 2, want: true, wantIDs: []string{"c1", "c2", "c0", "c3"}},
		{name: "up", n: 4, from: 3, to: 1, want: true, wantIDs: []string{"c0", "c3", "c1", "c2"}},
		{name: "to end", n: 4, from: 0, to: 3, want: true, wantIDs: []string{"c1", "c2", "c3", "c0"}},
		{name: "same index", n: 4, from: 2, to: 2, want: true, wantIDs: []string{"c0", "c1", "c2", "c3"}},
		{name: "to out of range", n: 4, from: 0, to: 4, want: false, wantIDs: []string{"c0", "c1", "c2", "c3"}},
		{name: "from out of range", n: 4, from: 4, to: 0, want: false, wantIDs: []string{"c0", "c1", "c2", "c3"}},
		{name: "negative", n: 4, from: -1, to: 0, want: false, wantIDs: []string{"c0", "c1", "c2", "c3"}},
		{name: "single card", n: 1, from: 0, to: 0, want: false, wantIDs: []string{"c0"}},
		{name: "empty", n: 0, from: 0, to: 0, want: false, wantIDs: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPile(t, tt.n)
			if got := s.Move(tt.from, tt.to); got != tt.want {
				t.Fatalf("Move(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
			if got := ids(s.Cards()); !slices.Equal(got, tt.wantIDs) {
				t.Fatalf("cards = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

func TestSwap(t *testing.T) {
	tests := []struct {
		name          string
		first, second int
		want          bool
		wantIDs       []string
	}{
		{name: "ends", first: 0, second: 4, want: true, wantIDs: []string{"c4", "c1", "c2", "c3", "c0"}},
		{name: "reversed args", first: 3, second: 1, want: true, wantIDs: []string{"c0", "c3", "c2", "c1", "c4"}},
		{name: "adjacent", first: 1, second: 2, want: true, wantIDs: []string{"c0", "c2", "c1", "c3", "c4"}},
		{name: "same index", first: 2, second: 2, want: true, wantIDs: []string{"c0", "c1", "c2", "c3", "c4"}},
		{name: "out of range", first: 0, second: 5, want: false, wantIDs: []string{"c0", "c1", "c2", "c3", "c4"}},
		{name: "negative", first: -1, second: 2, want: false, wantIDs: []string{"c0", "c1", "c2", "c3", "c4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPile(t, 5)
			if got := s.Swap(tt.first, tt.second); got != tt.want {
				t.Fatalf("Swap(%d, %d) = %v, want %v", tt.first, tt.second, got, tt.want)
			}
			if got := ids(s.Cards()); !slices.Equal(got, tt.wantIDs) {
				t.Fatalf("cards = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

func TestCountAfterMoveAndSwap(t *testing.T) {
	s := newPile(t, 3)
	s.Move(0, 2)
	if s.Count() != 3 {
		t.Fatalf("count after move = %d", s.Count())
	}
	s.Swap(0, 1)
	if s.Count() != 3 {
		t.Fatalf("count after swap = %d", s.Count())
	}
}

func TestFilter(t *testing.T) {
	s := newPile(t, 6)
	var seenLen []int
	even := s.Filter(func(c *testCard, idx int, cards []*testCard) bool {
		if cards[idx] != c {
			t.Fatalf("predicate index %d does not match card %v", idx, c)
		}
		seenLen = append(seenLen, len(cards))
		return c.rank%2 == 0
	})
	if got := ids(even); !slices.Equal(got, []string{"c0", "c2", "c4"}) {
		t.Fatalf("Filter = %v", got)
	}
	if len(seenLen) != 6 || seenLen[0] != 6 {
		t.Fatalf("predicate called %d times", len(seenLen))
	}
	if s.Count() != 6 {
		t.Fatalf("Filter must not mutate")
	}

	none := s.Filter(func(*testCard, int, []*testCard) bool { return false })
	if len(none) != 0 {
		t.Fatalf("Filter(false) = %v", none)
	}

	if got := s.Filter(nil); got != nil {
		t.Fatalf("Filter(nil) = %v, want nil", got)
	}
	if s.Count() != 6 {
		t.Fatalf("Filter(nil) changed count to %d", s.Count())
	}
}

func TestSnapshotsSurviveMutation(t *testing.T) {
	s := newPile(t, 5, WithSeed(1))
	snap := s.Cards()

	s.Take(0)
	s.Add(&testCard{id: "extra", rank: 99})
	s.Move(0, 3)
	s.Swap(1, 2)
	s.Sort(func(a, b *testCard) int { return -byRank(a, b) })
	s.Shuffle()

	if got := ids(snap); !slices.Equal(got, []string{"c0", "c1", "c2", "c3", "c4"}) {
		t.Fatalf("snapshot mutated: %v", got)
	}

	// Modifying the copy handed out by Cards does not reach the set.
	cards := s.Cards()
	cards[0] = &testCard{id: "intruder"}
	if s.Contains("intruder") {
		t.Fatalf("Cards() leaked the backing slice")
	}
}

func TestIndexOfAndContains(t *testing.T) {
	s := newPile(t, 3)
	if idx := s.IndexOf("c2"); idx != 2 {
		t.Fatalf("IndexOf(c2) = %d", idx)
	}
	if idx := s.IndexOf("nope"); idx != -1 {
		t.Fatalf("IndexOf(nope) = %d", idx)
	}
	if !s.Contains("c0") || s.Contains("nope") {
		t.Fatalf("Contains mismatch")
	}
}

func TestAll(t *testing.T) {
	s := newPile(t, 3)
	var got []string
	for i, c := range s.All() {
		if i == 0 {
			// Mutating during iteration does not disturb the snapshot.
			s.Take(2)
		}
		got = append(got, c.id)
	}
	if !slices.Equal(got, []string{"c0", "c1", "c2"}) {
		t.Fatalf("All() = %v", got)
	}
	if s.Count() != 2 {
		t.Fatalf("count = %d, want 2", s.Count())
	}
}

func TestString(t *testing.T) {
	s := newPile(t, 2)
	if got, want := s.String(), "CardSet[2]{c0, c1}"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	plain := New[*idCard]()
	plain.Add(&idCard{id: "a"})
	plain.Add(&idCard{id: "b"})
	if got, want := plain.String(), "CardSet[2]{a, b}"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

// idCard has no String method.
type idCard struct {
	id string
}

func (c *idCard) ID() string                  { return c.id }
func (c *idCard) Visibility() card.Visibility { return card.Private }
