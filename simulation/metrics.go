package simulation

import (
	"sync/atomic"
	"time"

	"monopoly/player"
)

// RunMetric summarizes one engine run for reporting and experiment records.
type RunMetric struct {
	Policy            player.Policy
	Goroutines        int
	Iterations        int
	TurnsPerIteration int
	StartTime         time.Time
	Duration          time.Duration
	TurnsRecorded     int64
	TrajectoriesDone  int64
}

// Collector accumulates run metrics. Implementations must be safe for
// concurrent use by worker goroutines.
type Collector interface {
	Start(policy player.Policy, goroutines, iterations, turnsPerIteration int)
	AddTrajectory(turns int64)
	Complete() RunMetric
}

type collector struct {
	policy            player.Policy
	goroutines        int
	iterations        int
	turnsPerIteration int
	startTime         time.Time
	turns             atomic.Int64
	trajectories      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(policy player.Policy, goroutines, iterations, turnsPerIteration int) {
	c.startTime = time.Now()
	c.policy = policy
	c.goroutines = goroutines
	c.iterations = iterations
	c.turnsPerIteration = turnsPerIteration
}

func (c *collector) AddTrajectory(turns int64) {
	c.trajectories.Add(1)
	c.turns.Add(turns)
}

func (c *collector) Complete() RunMetric {
	return RunMetric{
		Policy:            c.policy,
		Goroutines:        c.goroutines,
		Iterations:        c.iterations,
		TurnsPerIteration: c.turnsPerIteration,
		StartTime:         c.startTime,
		Duration:          time.Since(c.startTime),
		TurnsRecorded:     c.turns.Load(),
		TrajectoriesDone:  c.trajectories.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(policy player.Policy, goroutines, iterations, turnsPerIteration int) {
}

func (c *dummyCollector) AddTrajectory(turns int64) {}

func (c *dummyCollector) Complete() RunMetric { return RunMetric{} }
