package cards

import (
	"monopoly/board"

	"golang.org/x/exp/rand"
)

// Deck is an exhaustible, shuffled sequence of card effects owned by a single
// trajectory. Drawing from an empty deck refills and reshuffles from the
// original multiset first, so a draw always succeeds.
type Deck struct {
	all   []Effect
	cards []Effect
	rng   *rand.Rand
}

// NewDeck builds a deck from an arbitrary multiset of effects and shuffles it
// with the given source.
func NewDeck(effects []Effect, rng *rand.Rand) *Deck {
	d := &Deck{
		all: append([]Effect(nil), effects...),
		rng: rng,
	}
	d.shuffle()
	return d
}

// NewChanceDeck builds the 16-card Chance deck: advance to GO, Illinois
// Avenue, St. Charles Place and Boardwalk, two nearest-railroad cards, one
// nearest-utility card, go back 3 spaces, go to jail, and 7 cards with no
// positional effect.
func NewChanceDeck(rng *rand.Rand) *Deck {
	effects := []Effect{
		{Kind: AdvanceTo, Target: board.GoSpace},
		{Kind: AdvanceTo, Target: 24},
		{Kind: AdvanceTo, Target: 11},
		{Kind: AdvanceToNearestRailroad},
		{Kind: AdvanceToNearestRailroad},
		{Kind: AdvanceToNearestUtility},
		{Kind: GoBack3},
		{Kind: AdvanceTo, Target: 39},
		{Kind: SendToJail},
	}
	for i := 0; i < 7; i++ {
		effects = append(effects, Effect{Kind: NoOp})
	}
	return NewDeck(effects, rng)
}

// NewCommunityChestDeck builds the 16-card Community Chest deck: advance to
// GO, go to jail, and 14 cards with no positional effect.
func NewCommunityChestDeck(rng *rand.Rand) *Deck {
	effects := []Effect{
		{Kind: AdvanceTo, Target: board.GoSpace},
		{Kind: SendToJail},
	}
	for i := 0; i < 14; i++ {
		effects = append(effects, Effect{Kind: NoOp})
	}
	return NewDeck(effects, rng)
}

// Draw removes and returns the top card, reshuffling the full deck first if it
// has been exhausted.
func (d *Deck) Draw() Effect {
	if len(d.cards) == 0 {
		d.shuffle()
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card
}

// Remaining returns the number of cards left before the next reshuffle.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

func (d *Deck) shuffle() {
	d.cards = append(d.cards[:0], d.all...)
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
