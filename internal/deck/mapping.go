package deck

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// MinRank and MaxRank bound the values a mapping may assign.
	MinRank Rank = 1
	MaxRank Rank = 14
)

// Mapping assigns a rank to each of the 13 card symbols and carries the
// variant used to classify hands. A Mapping is immutable and shared by every
// hand of a session.
type Mapping struct {
	variant  Variant
	wildcard rune
	values   [128]Rank // indexed by ASCII symbol, zero means unmapped
	symbols  [MaxRank + 1]rune
}

var (
	// StandardMapping ranks 2-9 at face value, T=10, J=11, Q=12, K=13, A=14.
	StandardMapping = mustMapping(Standard, 0, faceValues(11))

	// WildcardMapping is StandardMapping with J demoted to 1 and used as a joker.
	WildcardMapping = mustMapping(Wildcard, 'J', faceValues(1))
)

func faceValues(jack int) map[rune]int {
	values := make(map[rune]int, len(Symbols))
	for i, s := range Symbols {
		values[s] = i + 2
	}
	values['J'] = jack
	return values
}

func mustMapping(variant Variant, wildcard rune, values map[rune]int) *Mapping {
	m, err := NewMapping(variant, wildcard, values)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMapping builds a custom mapping. Every one of the 13 symbols must be
// given a distinct value between MinRank and MaxRank. A Standard mapping takes
// no wildcard (pass 0); a Wildcard mapping must name one of the 13 symbols.
func NewMapping(variant Variant, wildcard rune, values map[rune]int) (*Mapping, error) {
	m := &Mapping{variant: variant}

	switch variant {
	case Standard:
		if wildcard != 0 {
			return nil, fmt.Errorf("standard mapping cannot have wildcard %q", wildcard)
		}
	case Wildcard:
		if !IsSymbol(wildcard) {
			return nil, fmt.Errorf("wildcard mapping: %w", &InvalidSymbolError{Symbol: wildcard})
		}
		m.wildcard = wildcard
	default:
		return nil, fmt.Errorf("unknown variant %d", int(variant))
	}

	for symbol, value := range values {
		if !IsSymbol(symbol) {
			return nil, &InvalidSymbolError{Symbol: symbol}
		}
		rank := Rank(value)
		if rank < MinRank || rank > MaxRank {
			return nil, fmt.Errorf("symbol %q: value %d out of range %d-%d", symbol, value, MinRank, MaxRank)
		}
		if prev := m.symbols[rank]; prev != 0 {
			// Report the pair in a stable order regardless of map iteration
			a, b := prev, symbol
			if a > b {
				a, b = b, a
			}
			return nil, fmt.Errorf("symbols %q and %q share value %d", a, b, value)
		}
		m.values[symbol] = rank
		m.symbols[rank] = symbol
	}

	var missing []string
	for _, s := range Symbols {
		if m.values[s] == 0 {
			missing = append(missing, string(s))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("mapping is missing symbols %s", strings.Join(missing, ","))
	}

	return m, nil
}

// Variant returns the classification variant of the mapping.
func (m *Mapping) Variant() Variant {
	return m.variant
}

// RankOf returns the rank of a card symbol.
func (m *Mapping) RankOf(symbol rune) (Rank, error) {
	if symbol < 0 || symbol >= rune(len(m.values)) || m.values[symbol] == 0 {
		return 0, &InvalidSymbolError{Symbol: symbol}
	}
	return m.values[symbol], nil
}

// Symbol returns the card symbol mapped to r, or '?' if none.
func (m *Mapping) Symbol(r Rank) rune {
	if r < MinRank || r > MaxRank || m.symbols[r] == 0 {
		return '?'
	}
	return m.symbols[r]
}

// WildcardRank returns the rank held by the wildcard symbol. The second result
// is false for Standard mappings.
func (m *Mapping) WildcardRank() (Rank, bool) {
	if m.variant != Wildcard {
		return 0, false
	}
	return m.values[m.wildcard], true
}

// WildcardSymbol returns the designated wildcard symbol, or 0 for Standard mappings.
func (m *Mapping) WildcardSymbol() rune {
	return m.wildcard
}

// String renders the mapping from weakest to strongest symbol, e.g.
// "wildcard(J): J23456789TQKA".
func (m *Mapping) String() string {
	var b strings.Builder
	b.WriteString(m.variant.String())
	if m.variant == Wildcard {
		fmt.Fprintf(&b, "(%c)", m.wildcard)
	}
	b.WriteString(": ")
	for r := MinRank; r <= MaxRank; r++ {
		if s := m.symbols[r]; s != 0 {
			b.WriteRune(s)
		}
	}
	return b.String()
}
