// Package io renders simulation results for terminal consumption.
package io

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	chess "github.com/ronak45/chess-variation"
)

// Printer writes a finished game's trace in the plain line format, one
// line per round followed by the winner.
type Printer struct {
	// Out is where the trace is written.
	Out io.Writer
}

func (p *Printer) PrintResult(res *chess.GameResult) {
	for _, m := range res.Moves {
		fmt.Fprintf(p.Out,
			"Round %2d: coin=%s (%s), dice=(%d, %d) -> steps=%2d, rook: %s -> %s, bishop_can_capture=%t\n",
			m.Round, m.Coin, m.Direction, m.Dice[0], m.Dice[1], m.Steps, m.From, m.To, m.BishopCanCapture)
	}
	fmt.Fprintf(p.Out, "\nWinner: %s\n", res.Winner)
}

// TraceTable renders the move trace as an ASCII table, one row per
// round.
func TraceTable(out io.Writer, res *chess.GameResult) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Round", "Coin", "Dice", "Steps", "Dir", "From", "To", "Capturable"})

	for _, m := range res.Moves {
		table.Append([]string{
			strconv.Itoa(m.Round),
			string(m.Coin),
			fmt.Sprintf("%d+%d", m.Dice[0], m.Dice[1]),
			strconv.Itoa(m.Steps),
			m.Direction.String(),
			m.From,
			m.To,
			strconv.FormatBool(m.BishopCanCapture),
		})
	}

	table.Render()
}
