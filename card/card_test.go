package card

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

type genericCard struct {
	id         string
	visibility Visibility
}

func newGenericCard(vis ...Visibility) *genericCard {
	c := &genericCard{id: NewID()}
	if len(vis) > 0 {
		c.visibility = vis[0]
	}
	return c
}

func (c *genericCard) ID() string             { return c.id }
func (c *genericCard) Visibility() Visibility { return c.visibility }

var _ Card = (*genericCard)(nil)

func TestDefaultVisibilityIsPrivate(t *testing.T) {
	c := newGenericCard()
	if c.Visibility() != Private {
		t.Fatalf("visibility = %v, want %v", c.Visibility(), Private)
	}
	if c.ID() == uuid.Nil.String() {
		t.Fatalf("expected non-nil id")
	}

	c = newGenericCard(Public)
	if c.Visibility() != Public {
		t.Fatalf("visibility = %v, want %v", c.Visibility(), Public)
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("NewID() = %q is not a uuid: %v", id, err)
		}
		if v := parsed.Version(); v != 1 && v != 4 {
			t.Fatalf("unexpected uuid version %d", v)
		}
		if seen[id] {
			t.Fatalf("duplicate id %s after %d ids", id, i)
		}
		seen[id] = true
	}
}

func TestCompareFn(t *testing.T) {
	var byID CompareFn[*genericCard] = func(a, b *genericCard) int {
		return strings.Compare(a.ID(), b.ID())
	}

	a := &genericCard{id: "a"}
	b := &genericCard{id: "b"}
	if got := byID(a, b); got != -1 {
		t.Errorf("byID(a, b) = %d, want -1", got)
	}
	if got := byID(a, a); got != 0 {
		t.Errorf("byID(a, a) = %d, want 0", got)
	}
	if got := byID(b, a); got != 1 {
		t.Errorf("byID(b, a) = %d, want 1", got)
	}
}

func TestVisibilityText(t *testing.T) {
	tests := []struct {
		in      string
		want    Visibility
		wantErr bool
	}{
		{in: "private", want: Private},
		{in: "Public", want: Public},
		{in: "BLIND", want: Blind},
		{in: "hidden", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var v Visibility
			err := v.UnmarshalText([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if v != tt.want {
				t.Fatalf("UnmarshalText(%q) = %v, want %v", tt.in, v, tt.want)
			}
			text, err := v.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText: %v", err)
			}
			if string(text) != strings.ToLower(tt.in) {
				t.Fatalf("MarshalText = %q, want %q", text, strings.ToLower(tt.in))
			}
		})
	}

	if s := Visibility(9).String(); s != "Visibility(9)" {
		t.Errorf("String() = %q", s)
	}
}
