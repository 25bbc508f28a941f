package player

import (
	"monopoly/board"
	"monopoly/cards"

	"github.com/rs/zerolog/log"
)

// maxLandingChain bounds the card-chaining loop in resolveLanding. The
// standard decks cannot chain anywhere near this deep within one shuffle
// cycle; exceeding the cap indicates a broken deck definition.
const maxLandingChain = 40

// Player holds the mutable state of one trajectory's token: its position, the
// jail sub-state, and the doubles streak. A Player is created at GO for each
// trajectory and discarded when the trajectory ends.
type Player struct {
	position           int
	inJail             bool
	jailTurns          int
	consecutiveDoubles int
	policy             Policy
	roller             Roller
}

// NewPlayer creates a player at GO, not in jail, following the given jail
// policy for its whole lifetime.
func NewPlayer(policy Policy, roller Roller) *Player {
	return &Player{
		position: board.GoSpace,
		policy:   policy,
		roller:   roller,
	}
}

// Position returns the player's current position.
func (p *Player) Position() int {
	return p.position
}

// InJail reports whether the player is currently jailed.
func (p *Player) InJail() bool {
	return p.inJail
}

// TakeTurn resolves exactly one turn, including any card-triggered follow-up
// moves, and returns the turn's final resting position. A jailed player that
// stays in jail returns the jail position unchanged.
func (p *Player) TakeTurn(chance, chest *cards.Deck) int {
	if p.inJail {
		total, released := p.jailTurn()
		if !released {
			return p.position
		}
		p.moveForward(total)
		return p.resolveLanding(chance, chest)
	}

	die1, die2 := p.roller.Roll()
	if die1 == die2 {
		p.consecutiveDoubles++
		if p.consecutiveDoubles >= 3 {
			// Third consecutive double sends the player straight to
			// jail; the roll's movement is never applied.
			p.sendToJail()
			return p.position
		}
	} else {
		p.consecutiveDoubles = 0
	}

	p.moveForward(die1 + die2)
	return p.resolveLanding(chance, chest)
}

// jailTurn resolves one turn of the jail sub-state. It returns the roll total
// and whether the player was released this turn.
func (p *Player) jailTurn() (total int, released bool) {
	if p.policy == PolicyB {
		// Leave immediately: pay the fine, then roll and move.
		p.inJail = false
		p.jailTurns = 0
		die1, die2 := p.roller.Roll()
		return die1 + die2, true
	}

	// Policy A: stay put unless doubles force a release, or the third
	// failed attempt does.
	die1, die2 := p.roller.Roll()
	if die1 == die2 {
		p.inJail = false
		p.jailTurns = 0
		return die1 + die2, true
	}
	p.jailTurns++
	if p.jailTurns >= 3 {
		p.inJail = false
		p.jailTurns = 0
		return die1 + die2, true
	}
	return 0, false
}

// resolveLanding applies the landing rules at the current position, chaining
// through card-triggered moves until the token comes to rest, and returns the
// final position.
func (p *Player) resolveLanding(chance, chest *cards.Deck) int {
	for i := 0; i < maxLandingChain; i++ {
		var deck *cards.Deck
		switch board.Classify(p.position) {
		case board.GoToJail:
			p.sendToJail()
			return p.position
		case board.Chance:
			deck = chance
		case board.CommunityChest:
			deck = chest
		default:
			return p.position
		}

		effect := deck.Draw()
		if effect.Kind == cards.NoOp {
			return p.position
		}
		newPosition, entersJail := cards.Resolve(effect, p.position)
		p.position = newPosition
		if entersJail {
			p.inJail = true
			p.jailTurns = 0
			p.consecutiveDoubles = 0
			return p.position
		}
	}

	log.Error().Int("position", p.position).Msgf("card chain exceeded %d moves in one turn", maxLandingChain)
	return p.position
}

func (p *Player) moveForward(spaces int) {
	p.position = (p.position + spaces) % board.NumSpaces
}

func (p *Player) sendToJail() {
	p.position = board.JailSpace
	p.inJail = true
	p.jailTurns = 0
	p.consecutiveDoubles = 0
}
