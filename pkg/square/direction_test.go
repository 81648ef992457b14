package square_test

import (
	"testing"

	"laptudirm.com/x/chesscore/pkg/square"
)

func TestToWrapAround(t *testing.T) {
	// h-file square stepping East must not wrap to the a-file of the next rank.
	if _, ok := square.H4.To(square.East); ok {
		t.Error("H4 stepping East should fall off the board")
	}
	if _, ok := square.A4.To(square.West); ok {
		t.Error("A4 stepping West should fall off the board")
	}
	if _, ok := square.H4.To(square.NorthEast); ok {
		t.Error("H4 stepping NorthEast should fall off the board")
	}
	if _, ok := square.A1.To(square.SouthWest); ok {
		t.Error("A1 stepping SouthWest should fall off the board")
	}
}

func TestToInside(t *testing.T) {
	to, ok := square.E4.To(square.North)
	if !ok || to != square.E5 {
		t.Errorf("E4.To(North) = (%s, %v), want (e5, true)", to, ok)
	}
	to, ok = square.E4.To(square.SouthWest)
	if !ok || to != square.D3 {
		t.Errorf("E4.To(SouthWest) = (%s, %v), want (d3, true)", to, ok)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b square.Square
		want int
	}{
		{square.A1, square.A1, 0},
		{square.A1, square.H8, 7},
		{square.A1, square.A8, 7},
		{square.A1, square.H1, 7},
		{square.E4, square.F5, 1},
	}
	for _, tt := range tests {
		if got := square.Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDirectionBetween(t *testing.T) {
	tests := []struct {
		a, b   square.Square
		want   square.Direction
		wantOk bool
	}{
		{square.A1, square.H8, square.NorthEast, true},
		{square.H1, square.A8, square.NorthWest, true},
		{square.A1, square.A8, square.North, true},
		{square.A1, square.H1, square.East, true},
		{square.A1, square.B3, 0, false},
	}
	for _, tt := range tests {
		got, ok := square.DirectionBetween(tt.a, tt.b)
		if ok != tt.wantOk || (ok && got != tt.want) {
			t.Errorf("DirectionBetween(%s, %s) = (%d, %v), want (%d, %v)", tt.a, tt.b, got, ok, tt.want, tt.wantOk)
		}
	}
}
