package move_test

import (
	"testing"

	"laptudirm.com/x/chesscore/pkg/move"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

func TestNullRawValue(t *testing.T) {
	// spec.md fixes Null at from=to=b1, raw value 65.
	if move.Null != 65 {
		t.Errorf("Null = %d, want 65", move.Null)
	}
}

func TestNoneIsZero(t *testing.T) {
	if move.None != 0 {
		t.Errorf("None = %d, want 0", move.None)
	}
}

func TestNewFromTo(t *testing.T) {
	m := move.New(square.E2, square.E4)
	if m.From() != square.E2 {
		t.Errorf("From() = %s, want e2", m.From())
	}
	if m.To() != square.E4 {
		t.Errorf("To() = %s, want e4", m.To())
	}
	if m.Kind() != move.Normal {
		t.Errorf("Kind() = %d, want Normal", m.Kind())
	}
}

func TestNewSpecialPromotion(t *testing.T) {
	for _, pt := range []piece.Type{piece.Knight, piece.Bishop, piece.Rook, piece.Queen} {
		m := move.NewSpecial(square.E7, square.E8, move.Promotion, pt)
		if m.Kind() != move.Promotion {
			t.Errorf("Kind() = %d, want Promotion", m.Kind())
		}
		if m.PromotionType() != pt {
			t.Errorf("PromotionType() = %s, want %s", m.PromotionType(), pt)
		}
		if m.From() != square.E7 || m.To() != square.E8 {
			t.Errorf("From/To corrupted by promotion encoding: %s %s", m.From(), m.To())
		}
	}
}

func TestIsValid(t *testing.T) {
	if move.None.IsValid() {
		t.Error("None should not be valid")
	}
	if move.Null.IsValid() {
		t.Error("Null should not be valid")
	}
	if !move.New(square.A1, square.A2).IsValid() {
		t.Error("a1a2 should be valid")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		m    move.Move
		want string
	}{
		{move.None, "none"},
		{move.Null, "null"},
		{move.New(square.E2, square.E4), "e2e4"},
		{move.NewSpecial(square.E7, square.E8, move.Promotion, piece.Queen), "e7e8q"},
		{move.NewSpecial(square.E1, square.G1, move.Castling, piece.NoType), "O-O"},
		{move.NewSpecial(square.E1, square.C1, move.Castling, piece.NoType), "O-O-O"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
