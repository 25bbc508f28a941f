package simulation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"monopoly/board"
	"monopoly/cards"
	"monopoly/player"
)

func TestRunValidation(t *testing.T) {
	engine := NewEngine(WithSeed(1))

	t.Run("rejects non-positive iterations", func(t *testing.T) {
		_, err := engine.Run(player.PolicyA, 0, 100)
		require.Error(t, err)
	})

	t.Run("rejects non-positive turns", func(t *testing.T) {
		_, err := engine.Run(player.PolicyA, 100, -1)
		require.Error(t, err)
	})

	t.Run("rejects an unrecognized policy", func(t *testing.T) {
		_, err := engine.Run(player.Policy(7), 100, 100)
		require.Error(t, err)
	})
}

func TestRunProbabilitiesSumToOne(t *testing.T) {
	engine := NewEngine(WithSeed(11), WithGoroutines(4))

	for _, policy := range []player.Policy{player.PolicyA, player.PolicyB} {
		probs, err := engine.Run(policy, 200, 250)
		require.NoError(t, err)

		var sum float64
		for space, p := range probs {
			require.GreaterOrEqual(t, p, 0.0, "space %d", space)
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-9, "policy %s", policy)
	}
}

func TestRunIsSeedReproducible(t *testing.T) {
	t.Run("identical runs produce identical vectors", func(t *testing.T) {
		first, err := NewEngine(WithSeed(37), WithGoroutines(4)).Run(player.PolicyA, 100, 200)
		require.NoError(t, err)
		second, err := NewEngine(WithSeed(37), WithGoroutines(4)).Run(player.PolicyA, 100, 200)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("goroutine count does not change the result", func(t *testing.T) {
		sequential, err := NewEngine(WithSeed(37), WithGoroutines(1)).Run(player.PolicyB, 100, 200)
		require.NoError(t, err)
		parallel, err := NewEngine(WithSeed(37), WithGoroutines(8)).Run(player.PolicyB, 100, 200)
		require.NoError(t, err)
		require.Equal(t, sequential, parallel)
	})
}

func TestRunSingleTurnMatchesDirectReplay(t *testing.T) {
	// One trajectory, one turn: the run reduces to exactly one turn of one
	// player built from the derived trajectory seed.
	const seed = 123
	probs, err := NewEngine(WithSeed(seed), WithGoroutines(1)).Run(player.PolicyB, 1, 1)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(trajectorySeed(seed, 0)))
	chance := cards.NewChanceDeck(rng)
	chest := cards.NewCommunityChestDeck(rng)
	p := player.NewPlayer(player.PolicyB, player.NewDiceRoller(rng))
	want := p.TakeTurn(chance, chest)

	require.Equal(t, 1.0, probs[want])
	for space, got := range probs {
		if space != want {
			require.Zero(t, got, "space %d", space)
		}
	}
}

func TestRunCollectsMetrics(t *testing.T) {
	collector := NewCollector()
	engine := NewEngine(WithSeed(5), WithGoroutines(2), WithCollector(collector))

	_, err := engine.Run(player.PolicyA, 50, 40)
	require.NoError(t, err)

	metric := collector.Complete()
	require.Equal(t, player.PolicyA, metric.Policy)
	require.Equal(t, 2, metric.Goroutines)
	require.Equal(t, int64(50), metric.TrajectoriesDone)
	require.Equal(t, int64(50*40), metric.TurnsRecorded)
}

func TestGroupProbabilities(t *testing.T) {
	var probs ProbabilityVector
	for space := 0; space < board.NumSpaces; space++ {
		probs[space] = 1.0 / board.NumSpaces
	}

	grouped := GroupProbabilities(probs, board.ColorGroups())
	require.InDelta(t, 2.0/board.NumSpaces, grouped["Brown"], 1e-12)
	require.InDelta(t, 4.0/board.NumSpaces, grouped["Railroads"], 1e-12)
	require.InDelta(t, 2.0/board.NumSpaces, grouped["Utilities"], 1e-12)
}

func TestRunBothPolicies(t *testing.T) {
	engine := NewEngine(WithSeed(3), WithGoroutines(2))
	probsA, probsB, err := RunBothPolicies(engine, 50, 100)
	require.NoError(t, err)

	// Policy A concentrates more probability on the jail space
	require.Greater(t, probsA[board.JailSpace], probsB[board.JailSpace])
}
