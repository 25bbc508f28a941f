package cards

import (
	"monopoly/board"
)

type EffectKind int

const (
	NoOp EffectKind = iota
	AdvanceTo
	AdvanceToNearestRailroad
	AdvanceToNearestUtility
	GoBack3
	SendToJail
)

// Effect is a card's positional effect. Target is meaningful only for
// AdvanceTo.
type Effect struct {
	Kind   EffectKind
	Target int
}

// Resolve applies an effect to the current position and reports whether the
// player enters jail.
func Resolve(e Effect, position int) (newPosition int, entersJail bool) {
	switch e.Kind {
	case NoOp:
		return position, false
	case AdvanceTo:
		return e.Target, false
	case AdvanceToNearestRailroad:
		return nearest(board.RailroadSpaces(), position), false
	case AdvanceToNearestUtility:
		return nearest(board.UtilitySpaces(), position), false
	case GoBack3:
		return (position - 3 + board.NumSpaces) % board.NumSpaces, false
	case SendToJail:
		return board.JailSpace, true
	default:
		panic("unknown card effect")
	}
}

// nearest returns the first space in the ascending list strictly ahead of the
// current position, wrapping to the first space. A player standing on a listed
// space is sent to the next one, not left in place.
func nearest(spaces []int, position int) int {
	for _, space := range spaces {
		if space > position {
			return space
		}
	}
	return spaces[0]
}
