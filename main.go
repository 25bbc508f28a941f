package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"monopoly/experiments"
	"monopoly/player"
	"monopoly/results"
	"monopoly/simulation"
)

func main() {
	iterations := flag.Int("iterations", 100_000, "Number of independent trajectories per policy")
	turns := flag.Int("turns", 10_000, "Number of turns per trajectory")
	goroutines := flag.Int("goroutines", 0, "Number of worker goroutines (0 = all CPUs)")
	seed := flag.Uint64("seed", 0, "Base seed for reproducible runs (0 = random)")
	speedup := flag.Bool("speedup", false, "Run the goroutine speedup experiment instead of a full simulation")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *speedup {
		if err := experiments.RunSpeedupExperiment(); err != nil {
			log.Fatal().Err(err).Msg("speedup experiment failed")
		}
		return
	}

	options := []simulation.Option{
		simulation.WithCollector(simulation.NewCollector()),
	}
	if *goroutines > 0 {
		options = append(options, simulation.WithGoroutines(*goroutines))
	}
	if *seed != 0 {
		options = append(options, simulation.WithSeed(*seed))
	}
	engine := simulation.NewEngine(options...)

	start := time.Now()
	probsA, probsB, err := simulation.RunBothPolicies(engine, *iterations, *turns)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	err = results.WriteCSV(probsA, "stratA_probs.csv")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write policy A results")
	}
	log.Info().Msg("saved probabilities to stratA_probs.csv")

	err = results.WriteCSV(probsB, "stratB_probs.csv")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write policy B results")
	}
	log.Info().Msg("saved probabilities to stratB_probs.csv")

	log.Info().Dur("elapsed", time.Since(start)).Msg("simulation complete")

	printTopSpaces(player.PolicyA, probsA)
	printTopSpaces(player.PolicyB, probsB)
}

func printTopSpaces(policy player.Policy, probs simulation.ProbabilityVector) {
	fmt.Printf("\nTop 10 Most Visited Spaces (Policy %s):\n", policy)
	for rank, sp := range results.Ranked(probs)[:10] {
		fmt.Printf("%2d. %-25s - %.4f%%\n", rank+1, sp.Name, sp.Probability*100)
	}
}
