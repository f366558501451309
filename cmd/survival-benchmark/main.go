// Command survival-benchmark runs a batch of independently seeded
// simulations and reports how often the rook survives.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/namsral/flag"
	"github.com/olekukonko/tablewriter"

	chess "github.com/ronak45/chess-variation"
	"github.com/ronak45/chess-variation/game"
	"github.com/ronak45/chess-variation/rng"
)

// Result aggregates outcomes across a batch of simulations.
type Result struct {
	BishopWins  int
	RookWins    int
	TotalRounds int
}

func (r Result) Games() int {
	return r.BishopWins + r.RookWins
}

// SurvivalRate is the fraction of games the rook survived.
func (r Result) SurvivalRate() float64 {
	if r.Games() == 0 {
		return 0
	}
	return float64(r.RookWins) / float64(r.Games())
}

// AverageLength is the mean number of rounds played per game.
func (r Result) AverageLength() float64 {
	if r.Games() == 0 {
		return 0
	}
	return float64(r.TotalRounds) / float64(r.Games())
}

func main() {
	var (
		games       = flag.Int("games", 1000, "Number of simulations to run")
		rounds      = flag.Int("rounds", game.DefaultRounds, "Rounds per simulation")
		rookStart   = flag.String("rook-start", game.DefaultRookStart, "Rook starting square")
		bishopStart = flag.String("bishop-start", game.DefaultBishopStart, "Bishop starting square")
		workers     = flag.Int("workers", 4, "Number of concurrent simulation workers")
	)
	flag.Parse()

	// Fail on bad squares before spawning anything.
	if _, err := chess.ParseSquare(*rookStart); err != nil {
		log.Fatalf("invalid rook start: %v", err)
	}
	if _, err := chess.ParseSquare(*bishopStart); err != nil {
		log.Fatalf("invalid bishop start: %v", err)
	}

	seeds := make(chan int64)
	results := make(chan *chess.GameResult)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range seeds {
				g, err := game.New(&game.Config{
					Rounds:      *rounds,
					RookStart:   *rookStart,
					BishopStart: *bishopStart,
					Rng:         rng.NewSeeded(seed),
				})
				if err != nil {
					// Squares were validated above.
					panic(err)
				}
				results <- g.Simulate()
			}
		}()
	}

	go func() {
		for i := 0; i < *games; i++ {
			seed, err := rng.NewSeed()
			if err != nil {
				log.Fatalf("failed to draw seed: %v", err)
			}
			seeds <- seed
		}
		close(seeds)
		wg.Wait()
		close(results)
	}()

	var agg Result
	for res := range results {
		switch res.Winner {
		case chess.BishopWins:
			agg.BishopWins++
		case chess.RookWins:
			agg.RookWins++
		}
		agg.TotalRounds += len(res.Moves)
	}

	printSummary(agg)
}

func printSummary(agg Result) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Winner", "Games", "Share"})
	table.Append([]string{"Bishop", strconv.Itoa(agg.BishopWins), share(agg.BishopWins, agg.Games())})
	table.Append([]string{"Rook", strconv.Itoa(agg.RookWins), share(agg.RookWins, agg.Games())})
	table.Render()

	fmt.Printf("\nRook survival rate: %.1f%%\n", agg.SurvivalRate()*100)
	fmt.Printf("Average game length: %.2f rounds\n", agg.AverageLength())
}

func share(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}
