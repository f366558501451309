// Package chess holds the core types for the rook-vs-bishop survival
// simulation: toroidal board coordinates, move directions, and the
// record types that make up a finished game's trace.
package chess

import (
	"errors"
	"fmt"
)

const (
	// Size is the number of files and ranks on the board.
	Size = 8

	files = "abcdefgh"
	ranks = "12345678"
)

var (
	ErrInvalidSquare = errors.New("chess: invalid square")
	ErrOutOfBounds   = errors.New("chess: coordinates out of bounds")
)

// Position is a square on the board, with File and Rank each in [0,8).
// The board is toroidal: translations wrap around both edges.
type Position struct {
	File int
	Rank int
}

// NewPosition validates raw coordinates. The simulation's own arithmetic
// never produces an out-of-range pair, so this only guards direct
// construction.
func NewPosition(file, rank int) (Position, error) {
	if file < 0 || file >= Size || rank < 0 || rank >= Size {
		return Position{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, file, rank)
	}
	return Position{File: file, Rank: rank}, nil
}

// ParseSquare parses a two-character algebraic label like "c3".
func ParseSquare(label string) (Position, error) {
	if len(label) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidSquare, label)
	}
	f := label[0] - 'a'
	r := label[1] - '1'
	if f >= Size || r >= Size {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidSquare, label)
	}
	return Position{File: int(f), Rank: int(r)}, nil
}

// String returns the algebraic label for the position, e.g. "h1".
func (p Position) String() string {
	return string(files[p.File]) + string(ranks[p.Rank])
}

// StepWrap translates the position by the direction's delta scaled by
// steps, wrapping both coordinates around the board. The modulo is
// floored so a negative intermediate sum still lands in [0,8).
func (p Position) StepWrap(d Direction, steps int) Position {
	df, dr := d.Delta()
	return Position{
		File: mod(p.File+df*steps, Size),
		Rank: mod(p.Rank+dr*steps, Size),
	}
}

func mod(n, m int) int {
	return ((n % m) + m) % m
}

// Direction is one of the two ways the rook can move. No other
// directions are ever produced.
type Direction int

const (
	// Up moves toward higher ranks.
	Up Direction = iota
	// Right moves toward higher files.
	Right
)

// Delta returns the per-step file and rank offsets.
func (d Direction) Delta() (df, dr int) {
	switch d {
	case Up:
		return 0, 1
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	}
	return ""
}

// CoinFace is the result of the per-round coin toss.
type CoinFace string

const (
	Heads = CoinFace("H")
	Tails = CoinFace("T")
)

// Direction maps the coin face to the rook's move direction: heads is
// up, tails is right.
func (c CoinFace) Direction() Direction {
	if c == Heads {
		return Up
	}
	return Right
}

// Winner is the terminal outcome of a simulation.
type Winner string

const (
	BishopWins = Winner("BISHOP")
	RookWins   = Winner("ROOK")
)

// MoveRecord is the log entry for a single round. Records are created
// once per round and never mutated.
type MoveRecord struct {
	Round     int
	Coin      CoinFace
	Dice      [2]int
	Steps     int
	Direction Direction
	From      string
	To        string
	// BishopCanCapture reports whether the bishop could capture the
	// rook after this move, either by the diagonal rule or by the rook
	// landing on the bishop's own square.
	BishopCanCapture bool
}

// GameResult is the immutable outcome of a full simulation: the winner
// and every move up to and including the terminal round.
type GameResult struct {
	Winner Winner
	Moves  []MoveRecord
}
