package board

import "fmt"

var spaceNames = [NumSpaces]string{
	"GO",
	"Mediterranean Avenue",
	"Community Chest",
	"Baltic Avenue",
	"Income Tax",
	"Reading Railroad",
	"Oriental Avenue",
	"Chance",
	"Vermont Avenue",
	"Connecticut Avenue",
	"Jail (Just Visiting)",
	"St. Charles Place",
	"Electric Company",
	"States Avenue",
	"Virginia Avenue",
	"Pennsylvania Railroad",
	"St. James Place",
	"Community Chest",
	"Tennessee Avenue",
	"New York Avenue",
	"Free Parking",
	"Kentucky Avenue",
	"Chance",
	"Indiana Avenue",
	"Illinois Avenue",
	"B&O Railroad",
	"Atlantic Avenue",
	"Ventnor Avenue",
	"Water Works",
	"Marvin Gardens",
	"Go to Jail",
	"Pacific Avenue",
	"North Carolina Avenue",
	"Community Chest",
	"Pennsylvania Avenue",
	"Short Line Railroad",
	"Chance",
	"Park Place",
	"Luxury Tax",
	"Boardwalk",
}

// SpaceName returns the display name of the space at the given position.
func SpaceName(position int) string {
	if position < 0 || position >= NumSpaces {
		return fmt.Sprintf("Unknown Space %d", position)
	}
	return spaceNames[position]
}

var colorGroups = map[string][]int{
	"Brown":      {1, 3},
	"Light Blue": {6, 8, 9},
	"Pink":       {11, 13, 14},
	"Orange":     {16, 18, 19},
	"Red":        {21, 23, 24},
	"Yellow":     {26, 27, 29},
	"Green":      {31, 32, 34},
	"Dark Blue":  {37, 39},
	"Railroads":  {5, 15, 25, 35},
	"Utilities":  {12, 28},
}

// ColorGroups returns the property color groups used for reporting, keyed by
// group name.
func ColorGroups() map[string][]int {
	groups := make(map[string][]int, len(colorGroups))
	for name, spaces := range colorGroups {
		spacesCopy := make([]int, len(spaces))
		copy(spacesCopy, spaces)
		groups[name] = spacesCopy
	}
	return groups
}

// ColorGroup returns the color group name for a position, or "" if the space
// belongs to no group.
func ColorGroup(position int) string {
	for name, spaces := range colorGroups {
		if contains(spaces, position) {
			return name
		}
	}
	return ""
}
