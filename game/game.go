// Package game implements the round loop of the rook-vs-bishop
// survival simulation.
package game

import (
	"fmt"

	chess "github.com/ronak45/chess-variation"
	"github.com/ronak45/chess-variation/rng"
)

// Defaults applied by New when the config leaves a field unset.
const (
	DefaultRounds      = 15
	DefaultRookStart   = "h1"
	DefaultBishopStart = "c3"
)

// Config holds the options for a single simulation.
type Config struct {
	// Rounds is how many rounds the rook must survive. Zero or negative
	// means DefaultRounds.
	Rounds int
	// RookStart and BishopStart are algebraic squares; empty means the
	// default start.
	RookStart   string
	BishopStart string
	// Rng is the randomness source. Nil means a crypto-seeded source.
	Rng rng.Rng
}

// Game simulates the survival game: each round the rook moves up or
// right by the sum of two dice, wrapping around the board, and the
// stationary bishop wins the moment it can capture the rook. If the
// rook survives every round, it wins.
//
// A Game owns its board and randomness source exclusively; separate
// instances share nothing and may run concurrently.
type Game struct {
	board  chess.Board
	rounds int
	rng    rng.Rng
}

// New validates the config and sets up a game. Construction is the only
// failure point; every operation inside the round loop is total.
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	rounds := cfg.Rounds
	if rounds <= 0 {
		rounds = DefaultRounds
	}

	rookStart := cfg.RookStart
	if rookStart == "" {
		rookStart = DefaultRookStart
	}
	bishopStart := cfg.BishopStart
	if bishopStart == "" {
		bishopStart = DefaultBishopStart
	}

	rookPos, err := chess.ParseSquare(rookStart)
	if err != nil {
		return nil, fmt.Errorf("rook start: %w", err)
	}
	bishopPos, err := chess.ParseSquare(bishopStart)
	if err != nil {
		return nil, fmt.Errorf("bishop start: %w", err)
	}

	r := cfg.Rng
	if r == nil {
		r = rng.New()
	}

	return &Game{
		board: chess.Board{
			Bishop: chess.Bishop{Pos: bishopPos},
			Rook:   chess.Rook{Pos: rookPos},
		},
		rounds: rounds,
		rng:    r,
	}, nil
}

// Simulate plays the game to completion and returns the outcome with
// the full move trace. The loop is bounded by the configured round
// count, so it always terminates.
func (g *Game) Simulate() *chess.GameResult {
	var moves []chess.MoveRecord

	for i := 1; i <= g.rounds; i++ {
		coin := g.rng.Coin()
		d1, d2 := g.rng.Dice()
		steps := d1 + d2
		dir := coin.Direction()

		start := g.board.Rook.Pos
		g.board.Rook = g.board.Rook.Move(dir, steps)
		end := g.board.Rook.Pos

		rec := chess.MoveRecord{
			Round:     i,
			Coin:      coin,
			Dice:      [2]int{d1, d2},
			Steps:     steps,
			Direction: dir,
			From:      start.String(),
			To:        end.String(),
		}

		// Landing on the bishop's own square is an immediate capture.
		// Neither geometric attack predicate counts a shared square, so
		// this is checked separately, before the diagonal rule.
		if end == g.board.Bishop.Pos {
			rec.BishopCanCapture = true
			moves = append(moves, rec)
			return &chess.GameResult{Winner: chess.BishopWins, Moves: moves}
		}

		rec.BishopCanCapture = g.board.BishopCanCaptureRook()
		moves = append(moves, rec)
		if rec.BishopCanCapture {
			return &chess.GameResult{Winner: chess.BishopWins, Moves: moves}
		}
	}

	return &chess.GameResult{Winner: chess.RookWins, Moves: moves}
}
