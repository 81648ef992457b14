package zobrist_test

import (
	"testing"

	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
	"laptudirm.com/x/chesscore/pkg/zobrist"
)

func TestPieceSquareDistinct(t *testing.T) {
	seen := make(map[zobrist.Key]bool)
	for _, p := range []piece.Piece{piece.WN, piece.WB, piece.WR, piece.WQ, piece.WK, piece.BN} {
		for s := square.A1; s <= square.H8; s++ {
			k := zobrist.PieceSquare[p][s]
			if k == 0 {
				t.Errorf("PieceSquare[%s][%s] is zero", p, s)
			}
			if seen[k] {
				t.Errorf("PieceSquare[%s][%s] collides with an earlier entry", p, s)
			}
			seen[k] = true
		}
	}
}

func TestPawnEntriesOnBackRanksAreZero(t *testing.T) {
	for _, p := range []piece.Piece{piece.WP, piece.BP} {
		for f := square.FileA; f <= square.FileH; f++ {
			r1 := zobrist.PieceSquare[p][square.Make(f, square.Rank1)]
			r8 := zobrist.PieceSquare[p][square.Make(f, square.Rank8)]
			if r1 != 0 || r8 != 0 {
				t.Errorf("PieceSquare[%s] on rank 1/8 file %s should be zero, got %#x/%#x", p, f, r1, r8)
			}
		}
	}
}

func TestSingletonsNonZeroAndDistinct(t *testing.T) {
	if zobrist.SideToMove == 0 {
		t.Error("SideToMove should be non-zero")
	}
	if zobrist.NoPawns == 0 {
		t.Error("NoPawns should be non-zero")
	}
	if zobrist.SideToMove == zobrist.NoPawns {
		t.Error("SideToMove and NoPawns should not collide")
	}
}

func TestCastlingIndexedByRawMask(t *testing.T) {
	seen := make(map[zobrist.Key]bool)
	for r := 0; r < 16; r++ {
		k := zobrist.Castling[r]
		if seen[k] {
			t.Errorf("Castling[%d] collides with an earlier entry", r)
		}
		seen[k] = true
	}
}
