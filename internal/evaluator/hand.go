package evaluator

import (
	"fmt"
	"unicode/utf8"

	"github.com/lox/camelcards/internal/deck"
)

// HandSize is the number of cards in every hand
const HandSize = 5

// Category is the strength class of a hand, weakest first
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		return "Unknown"
	}
}

// InvalidHandError reports a hand that is not exactly 5 valid symbols, or a
// rank pattern that matches no category.
type InvalidHandError struct {
	Hand   string
	Reason string
}

func (e *InvalidHandError) Error() string {
	return fmt.Sprintf("invalid hand %q: %s", e.Hand, e.Reason)
}

// Hand is an immutable 5-card hand. Its category is computed once when the
// hand is parsed and always matches its cards under the parsing mapping.
type Hand struct {
	symbols  string
	ranks    [HandSize]deck.Rank
	category Category
}

// ParseHand parses a 5-symbol hand such as "KTJJT" against a mapping.
func ParseHand(symbols string, m *deck.Mapping) (Hand, error) {
	if n := utf8.RuneCountInString(symbols); n != HandSize {
		return Hand{}, &InvalidHandError{
			Hand:   symbols,
			Reason: fmt.Sprintf("expected %d cards, got %d", HandSize, n),
		}
	}

	h := Hand{symbols: symbols}
	i := 0
	for _, s := range symbols {
		rank, err := m.RankOf(s)
		if err != nil {
			return Hand{}, fmt.Errorf("hand %q card %d: %w", symbols, i+1, err)
		}
		h.ranks[i] = rank
		i++
	}

	category, err := Classify(h.ranks[:], m)
	if err != nil {
		return Hand{}, err
	}
	h.category = category
	return h, nil
}

// MustParseHand is like ParseHand but panics on error
func MustParseHand(symbols string, m *deck.Mapping) Hand {
	h, err := ParseHand(symbols, m)
	if err != nil {
		panic(err)
	}
	return h
}

// Symbols returns the hand as originally written
func (h Hand) Symbols() string {
	return h.symbols
}

// Ranks returns the card ranks in their original order
func (h Hand) Ranks() [HandSize]deck.Rank {
	return h.ranks
}

// Category returns the precomputed category of the hand
func (h Hand) Category() Category {
	return h.category
}

// String returns a string representation of the hand
func (h Hand) String() string {
	return fmt.Sprintf("%s (%s)", h.symbols, h.category)
}

// Compare returns -1 if h is weaker than other, 0 if equal, 1 if stronger.
// Category decides first; equal categories are broken by comparing ranks
// left to right. Both hands must come from the same mapping.
func (h Hand) Compare(other Hand) int {
	if h.category < other.category {
		return -1
	}
	if h.category > other.category {
		return 1
	}

	for i := range h.ranks {
		if c := h.ranks[i].Compare(other.ranks[i]); c != 0 {
			return c
		}
	}
	return 0
}
