// Package input reads puzzle input lines of the form "32T3K 765" into a session.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/camelcards/internal/game"
)

// MalformedLineError describes a line that is not "<hand> <bid>"
type MalformedLineError struct {
	Line   int // 1-based, zero when unknown
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: malformed input %q: %s", e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("malformed input %q: %s", e.Text, e.Reason)
}

// ParseLine splits a line into its hand symbols and bid. The hand itself is
// not validated here.
func ParseLine(line string) (string, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", 0, &MalformedLineError{Text: line, Reason: fmt.Sprintf("expected 2 fields, got %d", len(fields))}
	}

	bid, err := strconv.ParseUint(fields[1], 10, 31)
	if err != nil {
		return "", 0, &MalformedLineError{Text: line, Reason: fmt.Sprintf("bid %q is not a non-negative integer", fields[1])}
	}
	return fields[0], int(bid), nil
}

// Options controls how Load treats its input
type Options struct {
	// Strict turns malformed lines into errors instead of skipping them.
	Strict bool
	Logger *log.Logger
}

// Stats summarizes a Load call
type Stats struct {
	Lines    int // lines read, including blank ones
	Hands    int // hands added, counting replacements
	Skipped  int // malformed lines skipped
	Replaced int // hands whose bid was overwritten by a later line
}

// Load reads every line of r into s. Blank lines are ignored. Malformed lines
// are skipped unless opts.Strict is set. An invalid hand on a well-formed line
// always stops the load.
func Load(r io.Reader, s *game.Session, opts Options) (Stats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var stats Stats
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		symbols, bid, err := ParseLine(text)
		if err != nil {
			if mle, ok := err.(*MalformedLineError); ok {
				mle.Line = stats.Lines
			}
			if opts.Strict {
				return stats, err
			}
			stats.Skipped++
			logger.Debug("Skipping malformed line", "line", stats.Lines, "text", text)
			continue
		}

		replaced, err := s.Add(symbols, bid)
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
		}
		stats.Hands++
		if replaced {
			stats.Replaced++
			logger.Warn("Duplicate hand, keeping later bid", "line", stats.Lines, "hand", symbols, "bid", bid)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading input: %w", err)
	}

	logger.Debug("Loaded session",
		"hands", s.Len(),
		"lines", stats.Lines,
		"skipped", stats.Skipped,
		"replaced", stats.Replaced,
		"mapping", s.Mapping())
	return stats, nil
}
