package player

import "golang.org/x/exp/rand"

// Roller produces one roll of two six-sided dice. Implementations own their
// randomness; tests substitute scripted rolls.
type Roller interface {
	Roll() (die1, die2 int)
}

type diceRoller struct {
	rng *rand.Rand
}

// NewDiceRoller returns a Roller drawing two independent uniform 1-6 dice
// from the given source.
func NewDiceRoller(rng *rand.Rand) Roller {
	return &diceRoller{rng: rng}
}

func (r *diceRoller) Roll() (int, int) {
	return r.rng.Intn(6) + 1, r.rng.Intn(6) + 1
}
