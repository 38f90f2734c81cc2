// Package evaluator classifies Camel Cards hands and orders them by strength.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/lox/camelcards/internal/deck"
)

// Classify returns the category of a 5-card hand. Under a Wildcard mapping the
// wildcards join the most frequent other rank (the higher rank on a tie)
// before the count pattern is read; five wildcards are Five of a Kind.
func Classify(ranks []deck.Rank, m *deck.Mapping) (Category, error) {
	if len(ranks) != HandSize {
		return HighCard, &InvalidHandError{
			Hand:   formatRanks(ranks, m),
			Reason: fmt.Sprintf("expected %d cards, got %d", HandSize, len(ranks)),
		}
	}

	var counts [deck.MaxRank + 1]int
	for _, r := range ranks {
		if r < deck.MinRank || r > deck.MaxRank {
			return HighCard, &InvalidHandError{
				Hand:   formatRanks(ranks, m),
				Reason: fmt.Sprintf("rank %d out of range", r),
			}
		}
		counts[r]++
	}

	if wild, ok := m.WildcardRank(); ok && counts[wild] > 0 {
		jokers := counts[wild]
		if jokers == HandSize {
			return FiveOfAKind, nil
		}
		counts[wild] = 0

		best := deck.Rank(0)
		for r := deck.MaxRank; r >= deck.MinRank; r-- {
			if counts[r] > counts[best] {
				best = r
			}
		}
		counts[best] += jokers
	}

	shape := make([]int, 0, HandSize)
	for _, n := range counts {
		if n > 0 {
			shape = append(shape, n)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(shape)))

	if category, ok := categoryForShape(shape); ok {
		return category, nil
	}
	return HighCard, &InvalidHandError{
		Hand:   formatRanks(ranks, m),
		Reason: fmt.Sprintf("unrecognized count pattern %v", shape),
	}
}

// categoryForShape maps a descending count pattern to its category
func categoryForShape(shape []int) (Category, bool) {
	key := 0
	for _, n := range shape {
		key = key*10 + n
	}

	switch key {
	case 5:
		return FiveOfAKind, true
	case 41:
		return FourOfAKind, true
	case 32:
		return FullHouse, true
	case 311:
		return ThreeOfAKind, true
	case 221:
		return TwoPair, true
	case 2111:
		return OnePair, true
	case 11111:
		return HighCard, true
	}
	return HighCard, false
}

func formatRanks(ranks []deck.Rank, m *deck.Mapping) string {
	out := make([]rune, len(ranks))
	for i, r := range ranks {
		out[i] = m.Symbol(r)
	}
	return string(out)
}
