// Package rng provides the randomness source for the simulation: a fair
// coin and a pair of six-sided dice. The source is injected into the
// game so tests can substitute a scripted one.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	chess "github.com/ronak45/chess-variation"
)

// Rng produces the two draw kinds the round loop needs.
type Rng interface {
	// Coin tosses a fair coin.
	Coin() chess.CoinFace
	// Dice rolls two six-sided dice, each independently uniform in [1,6].
	Dice() (int, int)
}

// Rand is the math/rand-backed Rng used outside of tests.
type Rand struct {
	r *rand.Rand
}

// New returns a Rand drawing from crypto entropy, for unseeded play.
func New() *Rand {
	return &Rand{r: rand.New(cryptoSource{})}
}

// NewSeeded returns a Rand with a fixed seed. Two Rands with the same
// seed produce identical draw sequences, so a seeded simulation is
// fully reproducible across runs.
func NewSeeded(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Coin() chess.CoinFace {
	if r.r.Intn(2) == 0 {
		return chess.Heads
	}
	return chess.Tails
}

func (r *Rand) Dice() (int, int) {
	return r.r.Intn(6) + 1, r.r.Intn(6) + 1
}

// NewSeed draws a random seed from crypto entropy, for callers that
// want a reproducible run without picking the seed themselves.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) &^ (1 << 63)), nil
}

// cryptoSource adapts crypto/rand to a math/rand Source.
type cryptoSource struct{}

func (cryptoSource) Int63() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) &^ (1 << 63))
}

func (cryptoSource) Seed(int64) {}
