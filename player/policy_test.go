package player

import "testing"

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"A", PolicyA, false},
		{"a", PolicyA, false},
		{"B", PolicyB, false},
		{"b", PolicyB, false},
		{"C", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParsePolicy(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParsePolicy(%q): expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePolicy(%q): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPolicyString(t *testing.T) {
	if PolicyA.String() != "A" || PolicyB.String() != "B" {
		t.Errorf("unexpected policy names: %s, %s", PolicyA, PolicyB)
	}
	if !PolicyA.Valid() || !PolicyB.Valid() || Policy(7).Valid() {
		t.Error("policy validity is wrong")
	}
}
