package piece_test

import (
	"testing"

	"laptudirm.com/x/chesscore/pkg/piece"
)

func TestNewTypeColor(t *testing.T) {
	tests := []struct {
		c piece.Color
		t piece.Type
	}{
		{piece.White, piece.Pawn},
		{piece.Black, piece.King},
		{piece.White, piece.Queen},
	}
	for _, tt := range tests {
		p := piece.New(tt.c, tt.t)
		if p.Color() != tt.c {
			t.Errorf("New(%s, %s).Color() = %s, want %s", tt.c, tt.t, p.Color(), tt.c)
		}
		if p.Type() != tt.t {
			t.Errorf("New(%s, %s).Type() = %s, want %s", tt.c, tt.t, p.Type(), tt.t)
		}
	}
}

func TestNewNoTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New with NoType should panic")
		}
	}()
	piece.New(piece.White, piece.NoType)
}

func TestNewFromStringRoundTrip(t *testing.T) {
	for _, id := range []string{"P", "N", "B", "R", "Q", "K", "p", "n", "b", "r", "q", "k"} {
		p := piece.NewFromString(id)
		if got := p.String(); got != id {
			t.Errorf("NewFromString(%q).String() = %q, want %q", id, got, id)
		}
	}
}

func TestNoPiece(t *testing.T) {
	if piece.NoPiece.Type() != piece.NoType {
		t.Errorf("NoPiece.Type() = %s, want NoType", piece.NoPiece.Type())
	}
	if piece.NoPiece.String() != " " {
		t.Errorf("NoPiece.String() = %q, want %q", piece.NoPiece.String(), " ")
	}
}

func TestColorOther(t *testing.T) {
	if piece.White.Other() != piece.Black {
		t.Error("White.Other() should be Black")
	}
	if piece.Black.Other() != piece.White {
		t.Error("Black.Other() should be White")
	}
}

func TestValue(t *testing.T) {
	if piece.Value(piece.Pawn) != piece.ValuePawn {
		t.Errorf("Value(Pawn) = %d, want %d", piece.Value(piece.Pawn), piece.ValuePawn)
	}
	if piece.Value(piece.King) != 0 {
		t.Errorf("Value(King) = %d, want 0", piece.Value(piece.King))
	}
	if piece.Value(piece.NoType) != 0 {
		t.Errorf("Value(NoType) = %d, want 0", piece.Value(piece.NoType))
	}
}
