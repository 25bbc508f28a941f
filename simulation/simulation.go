// Package simulation runs Monte Carlo estimates of long-run landing
// probabilities over many independent game trajectories.
package simulation

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"monopoly/board"
	"monopoly/cards"
	"monopoly/player"
)

// ProbabilityVector holds one landing probability per board space, summing
// to 1.0 for a completed run.
type ProbabilityVector [board.NumSpaces]float64

type Option func(e *Engine)

// Engine runs trajectories for one policy at a time and aggregates landing
// counts into a probability vector.
type Engine struct {
	goroutines int
	seed       uint64
	metrics    Collector
}

// WithGoroutines sets the number of worker goroutines.
func WithGoroutines(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.goroutines = n
		}
	}
}

// WithSeed fixes the base seed. Runs with the same seed, policy and counts
// produce identical probability vectors regardless of goroutine count.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithCollector attaches a metrics collector to the engine's runs.
func WithCollector(c Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.metrics = c
		}
	}
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{ // Default values
		goroutines: runtime.NumCPU(),
		seed:       rand.Uint64(),
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run simulates iterations independent trajectories of turnsPerIteration
// turns each under the given jail policy and returns the normalized landing
// probabilities. Invalid arguments are rejected before any simulation work
// begins.
func (e *Engine) Run(policy player.Policy, iterations, turnsPerIteration int) (ProbabilityVector, error) {
	var probs ProbabilityVector
	if !policy.Valid() {
		return probs, fmt.Errorf("unrecognized policy %d", int(policy))
	}
	if iterations <= 0 {
		return probs, fmt.Errorf("iterations must be positive: got %d", iterations)
	}
	if turnsPerIteration <= 0 {
		return probs, fmt.Errorf("turns per iteration must be positive: got %d", turnsPerIteration)
	}

	e.metrics.Start(policy, e.goroutines, iterations, turnsPerIteration)
	log.Info().
		Stringer("policy", policy).
		Int("iterations", iterations).
		Int("turns", turnsPerIteration).
		Int("goroutines", e.goroutines).
		Msg("starting simulation run")

	// One private counter array per worker; the arrays are summed once
	// after all workers finish.
	workerCounts := make([][board.NumSpaces]int64, e.goroutines)
	trajectories := make(chan int, iterations)
	for i := 0; i < iterations; i++ {
		trajectories <- i
	}
	close(trajectories)

	var g errgroup.Group
	for w := 0; w < e.goroutines; w++ {
		counts := &workerCounts[w]
		g.Go(func() error {
			for i := range trajectories {
				e.runTrajectory(policy, i, turnsPerIteration, counts)
				e.metrics.AddTrajectory(int64(turnsPerIteration))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return probs, err
	}

	var counts [board.NumSpaces]int64
	for w := range workerCounts {
		for space, count := range workerCounts[w] {
			counts[space] += count
		}
	}

	total := int64(iterations) * int64(turnsPerIteration)
	for space, count := range counts {
		probs[space] = float64(count) / float64(total)
	}

	metric := e.metrics.Complete()
	log.Info().
		Stringer("policy", policy).
		Dur("duration", metric.Duration).
		Int64("turns_recorded", total).
		Msg("completed simulation run")
	return probs, nil
}

// runTrajectory plays one fresh player through its turns, counting each
// turn's resting position. The trajectory owns its random stream, player and
// decks; nothing it touches is shared.
func (e *Engine) runTrajectory(policy player.Policy, index, turns int, counts *[board.NumSpaces]int64) {
	rng := rand.New(rand.NewSource(trajectorySeed(e.seed, index)))
	chance := cards.NewChanceDeck(rng)
	chest := cards.NewCommunityChestDeck(rng)
	p := player.NewPlayer(policy, player.NewDiceRoller(rng))

	for t := 0; t < turns; t++ {
		position := p.TakeTurn(chance, chest)
		counts[position]++
	}
}

// trajectorySeed derives an independent stream seed from the base seed and
// the trajectory index, so that results do not depend on which worker picks
// up which trajectory. SplitMix64 finalizer.
func trajectorySeed(base uint64, index int) uint64 {
	z := base + uint64(index+1)*0x9E3779B97F4A7C15
	z ^= z >> 30
	z *= 0xBF58476D1CE4E5B9
	z ^= z >> 27
	z *= 0x94D049BB133111EB
	z ^= z >> 31
	return z
}

// GroupProbabilities sums the per-space probabilities over each named group
// of space indices.
func GroupProbabilities(probs ProbabilityVector, groups map[string][]int) map[string]float64 {
	grouped := make(map[string]float64, len(groups))
	for name, spaces := range groups {
		var total float64
		for _, space := range spaces {
			total += probs[space]
		}
		grouped[name] = total
	}
	return grouped
}

// RunBothPolicies runs the engine once per jail policy with the same counts
// and returns the two probability vectors.
func RunBothPolicies(e *Engine, iterations, turnsPerIteration int) (probsA, probsB ProbabilityVector, err error) {
	probsA, err = e.Run(player.PolicyA, iterations, turnsPerIteration)
	if err != nil {
		return probsA, probsB, fmt.Errorf("policy A run: %w", err)
	}
	probsB, err = e.Run(player.PolicyB, iterations, turnsPerIteration)
	if err != nil {
		return probsA, probsB, fmt.Errorf("policy B run: %w", err)
	}
	return probsA, probsB, nil
}
