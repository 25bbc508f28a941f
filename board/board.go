package board

// SpaceKind classifies a board space by the rule that fires on landing.
type SpaceKind int

const (
	Normal SpaceKind = iota
	Tax
	Railroad
	Utility
	Chance
	CommunityChest
	GoToJail
	Jail
	Go
	FreeParking
)

const (
	NumSpaces     = 40
	GoSpace       = 0
	JailSpace     = 10
	GoToJailSpace = 30
)

var railroadSpaces = []int{5, 15, 25, 35}
var utilitySpaces = []int{12, 28}
var chanceSpaces = []int{7, 22, 36}
var communityChestSpaces = []int{2, 17, 33}
var taxSpaces = []int{4, 38}

// Classify returns the kind of the space at the given position.
func Classify(position int) SpaceKind {
	switch {
	case position == GoSpace:
		return Go
	case position == JailSpace:
		return Jail
	case position == GoToJailSpace:
		return GoToJail
	case position == 20:
		return FreeParking
	case contains(railroadSpaces, position):
		return Railroad
	case contains(utilitySpaces, position):
		return Utility
	case contains(chanceSpaces, position):
		return Chance
	case contains(communityChestSpaces, position):
		return CommunityChest
	case contains(taxSpaces, position):
		return Tax
	default:
		return Normal
	}
}

// RailroadSpaces returns the railroad positions in ascending board order.
func RailroadSpaces() []int {
	spaces := make([]int, len(railroadSpaces))
	copy(spaces, railroadSpaces)
	return spaces
}

// UtilitySpaces returns the utility positions in ascending board order.
func UtilitySpaces() []int {
	spaces := make([]int, len(utilitySpaces))
	copy(spaces, utilitySpaces)
	return spaces
}

func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
