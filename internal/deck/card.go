package deck

import (
	"fmt"
	"strings"
)

// Symbols lists the 13 card symbols in face order, lowest first.
const Symbols = "23456789TJQKA"

// Rank is the mapped value of a card symbol. Higher values are stronger.
type Rank int

// Compare returns -1 if r is weaker than other, 0 if equal, 1 if stronger
func (r Rank) Compare(other Rank) int {
	switch {
	case r < other:
		return -1
	case r > other:
		return 1
	}
	return 0
}

// Variant selects how a mapping treats its cards during classification.
type Variant int

const (
	// Standard ranks every card by face value, J is a Jack.
	Standard Variant = iota
	// Wildcard designates one symbol as a joker that ranks lowest but
	// joins the strongest group when a hand is classified.
	Wildcard
)

// String returns the name of a variant
func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Wildcard:
		return "wildcard"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant converts a name such as "standard" or "wildcard" to a Variant.
// "joker" is accepted as an alias for Wildcard.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "":
		return Standard, nil
	case "wildcard", "joker":
		return Wildcard, nil
	default:
		return Standard, fmt.Errorf("unknown variant %q (want standard or wildcard)", s)
	}
}

// IsSymbol reports whether r is one of the 13 card symbols.
func IsSymbol(r rune) bool {
	return r < 128 && strings.ContainsRune(Symbols, r)
}

// InvalidSymbolError is returned when a character is not a recognized card symbol.
type InvalidSymbolError struct {
	Symbol rune
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid card symbol %q", e.Symbol)
}
