package player

import "fmt"

// Policy selects the jail-exit strategy for a trajectory. PolicyA stays in
// jail as long as the rules allow; PolicyB leaves on the next turn
// unconditionally.
type Policy int

const (
	PolicyA Policy = iota
	PolicyB
)

func (p Policy) String() string {
	switch p {
	case PolicyA:
		return "A"
	case PolicyB:
		return "B"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Valid reports whether p is a recognized policy.
func (p Policy) Valid() bool {
	return p == PolicyA || p == PolicyB
}

// ParsePolicy converts a policy identifier ("A" or "B") to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "A", "a":
		return PolicyA, nil
	case "B", "b":
		return PolicyB, nil
	default:
		return 0, fmt.Errorf("unrecognized policy %q: want A or B", s)
	}
}
