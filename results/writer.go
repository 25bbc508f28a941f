// Package results exports landing probabilities to CSV and ranks spaces for
// display.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"monopoly/board"
	"monopoly/simulation"
)

// SpaceProbability pairs a space index and display name with its landing
// probability.
type SpaceProbability struct {
	Space       int
	Name        string
	Probability float64
}

// WriteCSV persists one row per space in index order with the header
// space,space_name,probability. Probabilities are formatted to 6 decimals.
func WriteCSV(probs simulation.ProbabilityVector, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"space", "space_name", "probability"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write results header: %w", err)
	}

	for space := 0; space < board.NumSpaces; space++ {
		row := []string{
			strconv.Itoa(space),
			board.SpaceName(space),
			fmt.Sprintf("%.6f", probs[space]),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write results row: %w", err)
		}
	}

	return nil
}

// Ranked returns all spaces sorted by descending probability, ties broken by
// ascending space index.
func Ranked(probs simulation.ProbabilityVector) []SpaceProbability {
	ranked := make([]SpaceProbability, board.NumSpaces)
	for space := 0; space < board.NumSpaces; space++ {
		ranked[space] = SpaceProbability{
			Space:       space,
			Name:        board.SpaceName(space),
			Probability: probs[space],
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Probability > ranked[j].Probability
	})
	return ranked
}
