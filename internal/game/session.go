package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/camelcards/internal/deck"
	"github.com/lox/camelcards/internal/evaluator"
)

// ErrNegativeBid is returned when a hand is added with a bid below zero
var ErrNegativeBid = errors.New("bid must not be negative")

// Order controls the order in which standings are returned
type Order int

const (
	Ascending Order = iota // weakest hand first
	Descending
)

// String returns the string representation of an order
func (o Order) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// Standing is one ranked hand of a session
type Standing struct {
	Position int // 1 is the weakest hand
	Hand     evaluator.Hand
	Bid      int
	Winnings int // Bid * Position
}

type entry struct {
	hand evaluator.Hand
	bid  int
}

// Session holds the hands being ranked together and their bids. All hands
// are parsed with the session's mapping.
type Session struct {
	mapping *deck.Mapping
	entries map[string]entry
}

// NewSession creates an empty session using the given mapping
func NewSession(m *deck.Mapping) *Session {
	if m == nil {
		panic("game: NewSession called with nil mapping")
	}
	return &Session{
		mapping: m,
		entries: make(map[string]entry),
	}
}

// Mapping returns the rank mapping used by the session
func (s *Session) Mapping() *deck.Mapping {
	return s.mapping
}

// Add parses a hand and records its bid. If the hand is already present its
// bid is replaced and replaced is true.
func (s *Session) Add(symbols string, bid int) (replaced bool, err error) {
	if bid < 0 {
		return false, fmt.Errorf("hand %q: %w (got %d)", symbols, ErrNegativeBid, bid)
	}

	hand, err := evaluator.ParseHand(symbols, s.mapping)
	if err != nil {
		return false, err
	}

	_, replaced = s.entries[symbols]
	s.entries[symbols] = entry{hand: hand, bid: bid}
	return replaced, nil
}

// Bid returns the bid recorded for a hand
func (s *Session) Bid(symbols string) (int, bool) {
	e, ok := s.entries[symbols]
	return e.bid, ok
}

// Len returns the number of distinct hands in the session
func (s *Session) Len() int {
	return len(s.entries)
}

// Standings ranks every hand by strength and returns them in the requested
// order.
func (s *Session) Standings(order Order) []Standing {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	// Sorting the keys first keeps equal hands in a deterministic order
	sort.Strings(keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return s.entries[keys[i]].hand.Compare(s.entries[keys[j]].hand) < 0
	})

	standings := make([]Standing, len(keys))
	for i, k := range keys {
		e := s.entries[k]
		standings[i] = Standing{
			Position: i + 1,
			Hand:     e.hand,
			Bid:      e.bid,
			Winnings: e.bid * (i + 1),
		}
	}

	if order == Descending {
		for i, j := 0, len(standings)-1; i < j; i, j = i+1, j-1 {
			standings[i], standings[j] = standings[j], standings[i]
		}
	}
	return standings
}

// TotalWinnings returns the sum of every hand's bid times its position.
// An empty session wins nothing.
func (s *Session) TotalWinnings() int {
	total := 0
	for _, st := range s.Standings(Ascending) {
		total += st.Winnings
	}
	return total
}
