package x11proto

import "testing"

func TestPadUnitsSize(t *testing.T) {
	cases := []struct {
		n        int
		wantPad  int
		wantUnit int
	}{
		{0, 0, 0},
		{1, 4, 1},
		{2, 4, 1},
		{3, 4, 1},
		{4, 4, 1},
		{5, 8, 2},
		{65537, 65540, 16385},
	}
	for _, c := range cases {
		if got := Pad(c.n); got != c.wantPad {
			t.Errorf("Pad(%d) = %d, want %d", c.n, got, c.wantPad)
		}
		if got := Units(c.n); got != c.wantUnit {
			t.Errorf("Units(%d) = %d, want %d", c.n, got, c.wantUnit)
		}
	}
}

// TestSizeUnitsIdentity checks size(units(pad(n))) == pad(n) for a spread of n.
func TestSizeUnitsIdentity(t *testing.T) {
	for n := 0; n < 4096; n++ {
		p := Pad(n)
		if got := Size(Units(p)); got != p {
			t.Fatalf("Size(Units(Pad(%d))) = %d, want %d", n, got, p)
		}
	}
}
