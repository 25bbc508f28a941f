package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"monopoly/simulation"
)

// RunRecord ties one engine run's metrics to its position in an experiment.
type RunRecord struct {
	ID int
	simulation.RunMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a writer storing records under a timestamped subfolder of
// experiments/<name>.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	path := filepath.Join(w.baseDir, "run_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "policy", "goroutines", "iterations", "turns_per_iteration", "start_time", "duration", "turns_recorded"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Policy.String(),
			strconv.Itoa(record.Goroutines),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.TurnsPerIteration),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.FormatInt(record.TurnsRecorded, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write run record row: %w", err)
		}
	}

	return nil
}
