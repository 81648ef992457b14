package board_test

import (
	"testing"

	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

func TestPinDetection(t *testing.T) {
	// White king on e1, White bishop on e3 pinned by a Black rook on e8
	// along the e-file.
	p := mustFEN(t, "4r3/8/8/8/8/4B3/8/4K3 w - - 0 1")

	st := p.State()
	if st.BlockersForKing[piece.White] == 0 {
		t.Fatal("bishop on e3 should be a blocker for the White king")
	}
	if !st.BlockersForKing[piece.White].IsSet(int(square.E3)) {
		t.Error("the blocker should be on e3")
	}
	if !st.Pinners[piece.White].IsSet(int(square.E8)) {
		t.Error("the pinner should be the rook on e8")
	}
}

func TestNoPinWithoutAlignment(t *testing.T) {
	p := mustFEN(t, "4r3/8/8/8/8/3B4/8/4K3 w - - 0 1")
	st := p.State()
	if st.BlockersForKing[piece.White] != 0 {
		t.Error("a bishop off the e-file should not be pinned by the rook on e8")
	}
}

func TestIsAttacked(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if !p.IsAttacked(square.E1, piece.Black) {
		t.Error("e1 should be attacked by the Black rook on e2")
	}
	if p.IsAttacked(square.A8, piece.Black) {
		t.Error("a8 should not be attacked by anything here")
	}
}
