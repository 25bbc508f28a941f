// Package experiments runs engine benchmark sweeps and records their results.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"monopoly/player"
	"monopoly/simulation"
)

const (
	Iterations        = 200
	TurnsPerIteration = 1000
	Seed              = 1
)

var goroutineCounts = []int{1, 2, 4, 8, 16, 32, 64}

// RunSpeedupExperiment runs the same simulation workload at increasing worker
// counts for both jail policies and stores the run records.
func RunSpeedupExperiment() error {
	log.Info().Msg("starting speedup experiment...")

	count := 0
	records := []RunRecord{}
	for _, goroutines := range goroutineCounts {
		for _, policy := range []player.Policy{player.PolicyA, player.PolicyB} {
			log.Info().
				Int("goroutines", goroutines).
				Stringer("policy", policy).
				Msg("starting run...")

			collector := simulation.NewCollector()
			engine := simulation.NewEngine(
				simulation.WithGoroutines(goroutines),
				simulation.WithSeed(Seed),
				simulation.WithCollector(collector),
			)
			_, err := engine.Run(policy, Iterations, TurnsPerIteration)
			if err != nil {
				return fmt.Errorf("speedup run with %d goroutines: %w", goroutines, err)
			}

			count++
			records = append(records, RunRecord{
				ID:        count,
				RunMetric: collector.Complete(),
			})
		}
	}

	log.Info().Msg("completed speedup experiment")

	writer, err := NewWriter("speedup")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteRunRecords(records)
	if err != nil {
		return fmt.Errorf("failed to store run records: %w", err)
	}
	log.Info().Msg("stored run records")

	return nil
}
