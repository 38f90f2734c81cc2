// Package report renders ranked sessions for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/camelcards/internal/game"
)

// Styles used by the standings table
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Category lipgloss.Style
	Total    lipgloss.Style
}

// Renderer writes standings tables to a terminal
type Renderer struct {
	out    io.Writer
	styles Styles
	lg     *lipgloss.Renderer
}

// NewRenderer creates a renderer for w. Colour is detected from w unless
// color is false, in which case plain ASCII is produced.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if !color {
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out: w,
		lg:  lg,
		styles: Styles{
			Title: lg.NewStyle().
				Bold(true).
				Underline(true),
			Header: lg.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Padding(0, 1),
			Cell: lg.NewStyle().
				Padding(0, 1),
			Category: lg.NewStyle().
				Foreground(lipgloss.Color("#96CEB4")).
				Padding(0, 1),
			Total: lg.NewStyle().
				Foreground(lipgloss.Color("#FFD700")).
				Bold(true),
		},
	}
}

const (
	colPosition = iota
	colHand
	colCategory
	colBid
	colWinnings
)

// Standings writes one row per hand followed by the total winnings
func (r *Renderer) Standings(title string, standings []game.Standing) error {
	rows := make([][]string, 0, len(standings))
	total := 0
	for _, st := range standings {
		rows = append(rows, []string{
			strconv.Itoa(st.Position),
			st.Hand.Symbols(),
			st.Hand.Category().String(),
			strconv.Itoa(st.Bid),
			strconv.Itoa(st.Winnings),
		})
		total += st.Winnings
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.lg.NewStyle()).
		Headers("Rank", "Hand", "Category", "Bid", "Winnings").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.styles.Header
			case col == colCategory:
				return r.styles.Category
			case col == colBid || col == colWinnings || col == colPosition:
				return r.styles.Cell.Align(lipgloss.Right)
			default:
				return r.styles.Cell
			}
		})

	if title != "" {
		if _, err := fmt.Fprintln(r.out, r.styles.Title.Render(title)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(r.out, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.out, r.styles.Total.Render(fmt.Sprintf("Total winnings: %d", total)))
	return err
}
