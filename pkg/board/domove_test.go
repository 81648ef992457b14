package board_test

import (
	"testing"

	"laptudirm.com/x/chesscore/pkg/board"
	"laptudirm.com/x/chesscore/pkg/castling"
	"laptudirm.com/x/chesscore/pkg/move"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

func mustFEN(t *testing.T, fen string) *board.Position {
	t.Helper()
	p, err := board.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN(%q) returned %v", fen, err)
	}
	return p
}

// doUndoRoundTrip plays m on the position built from fen and checks
// that undoing it restores the exact FEN and PositionKey.
func doUndoRoundTrip(t *testing.T, fen string, m move.Move) *board.Position {
	t.Helper()
	p := mustFEN(t, fen)
	beforeKey := p.State().PositionKey

	p.DoMove(m)
	p.UndoMove(m)

	if got := p.FEN(); got != fen {
		t.Errorf("DoMove(%s) then UndoMove did not restore the fen\ngot:  %s\nwant: %s", m, got, fen)
	}
	if p.State().PositionKey != beforeKey {
		t.Errorf("DoMove(%s) then UndoMove did not restore PositionKey", m)
	}
	return p
}

func TestDoMoveQuietPawnPush(t *testing.T) {
	doUndoRoundTrip(t, board.StartFEN, move.New(square.E2, square.E4))
}

func TestDoMoveCapture(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"
	doUndoRoundTrip(t, fen, move.New(square.E4, square.D5))
}

func TestDoMoveEnPassant(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
	m := move.NewSpecial(square.E5, square.D6, move.EnPassant, piece.NoType)

	p := doUndoRoundTrip(t, fen, m)

	// now actually play it and check the captured pawn is gone and the
	// capturing pawn landed on d6.
	p.DoMove(m)
	if p.Mailbox[square.D5] != piece.NoPiece {
		t.Error("en passant should remove the captured pawn from d5")
	}
	if p.Mailbox[square.D6] != piece.WP {
		t.Error("en passant should move the capturing pawn to d6")
	}
	if p.Mailbox[square.E5] != piece.NoPiece {
		t.Error("en passant should clear the origin square")
	}
}

func TestDoMovePromotion(t *testing.T) {
	fen := "8/4P3/8/8/8/8/4k3/4K3 w - - 0 1"
	m := move.NewSpecial(square.E7, square.E8, move.Promotion, piece.Queen)

	p := doUndoRoundTrip(t, fen, m)

	p.DoMove(m)
	if p.Mailbox[square.E8] != piece.WQ {
		t.Errorf("promotion should place a queen on e8, got %s", p.Mailbox[square.E8])
	}
	if p.Mailbox[square.E7] != piece.NoPiece {
		t.Error("promotion should clear the pawn's origin square")
	}
}

func TestDoMoveCastlingKingside(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	m := move.NewSpecial(square.E1, square.G1, move.Castling, piece.NoType)

	p := doUndoRoundTrip(t, fen, m)

	p.DoMove(m)
	if p.Mailbox[square.G1] != piece.WK {
		t.Error("castling should place the king on g1")
	}
	if p.Mailbox[square.F1] != piece.WR {
		t.Error("castling should place the rook on f1")
	}
	if p.Mailbox[square.E1] != piece.NoPiece || p.Mailbox[square.H1] != piece.NoPiece {
		t.Error("castling should clear both origin squares")
	}
	if got := p.State().CastlingRights; got != castling.Black {
		t.Errorf("CastlingRights after White castles kingside = %v, want Black (%v)", got, castling.Black)
	}
}

func TestDoMoveStripsCastlingRightsOnRookCapture(t *testing.T) {
	// White's a1 rook captures Black's a8 rook: White loses queenside
	// rights (its rook left a1) and Black loses queenside rights (its
	// rook on a8 was captured), leaving only White's kingside right.
	p := mustFEN(t, "r3k3/8/8/8/8/8/8/R3K2R w KQq - 0 1")
	p.DoMove(move.New(square.A1, square.A8))

	if got := p.State().CastlingRights; got != castling.WhiteKingside {
		t.Errorf("CastlingRights after RxR a8 = %v, want WhiteKingside (%v)", got, castling.WhiteKingside)
	}
}

func TestFullmoveAndHalfmoveClock(t *testing.T) {
	p := mustFEN(t, board.StartFEN)

	p.DoMove(move.New(square.E2, square.E4)) // pawn move resets halfmove clock, no fullmove bump (White moved)
	if p.State().HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock after a pawn push = %d, want 0", p.State().HalfmoveClock)
	}
	if p.State().FullmoveNumber != 1 {
		t.Errorf("FullmoveNumber after White's first move = %d, want 1", p.State().FullmoveNumber)
	}

	p.DoMove(move.New(square.B8, square.C6)) // knight move, Black moved: fullmove increments
	if p.State().HalfmoveClock != 1 {
		t.Errorf("HalfmoveClock after a knight move = %d, want 1", p.State().HalfmoveClock)
	}
	if p.State().FullmoveNumber != 2 {
		t.Errorf("FullmoveNumber after Black's first move = %d, want 2", p.State().FullmoveNumber)
	}
}

func TestEnPassantSquareOnlySetWhenCapturable(t *testing.T) {
	// no black pawn adjacent to d4 -- the double push must not open an
	// en-passant square.
	p := mustFEN(t, "4k3/8/8/8/8/8/3P4/4K3 w - - 0 1")
	p.DoMove(move.New(square.D2, square.D4))
	if p.State().EPSquare != square.None {
		t.Errorf("EPSquare = %s, want None: no adjacent pawn can capture en passant", p.State().EPSquare)
	}
}

func TestEnPassantSquareSetWhenCapturable(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	p.DoMove(move.New(square.E2, square.E4))
	if p.State().EPSquare != square.E3 {
		t.Errorf("EPSquare = %s, want e3", p.State().EPSquare)
	}
}

func TestUpdateCheckInfoDetectsCheck(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if p.State().CheckersBB == 0 {
		t.Error("White king on e1 attacked by a rook on e2 should be in check")
	}
}

func TestRepetition(t *testing.T) {
	p := mustFEN(t, board.StartFEN)

	knightOut := move.New(square.G1, square.F3)
	knightBack := move.New(square.F3, square.G1)
	blackOut := move.New(square.G8, square.F6)
	blackBack := move.New(square.F6, square.G8)

	p.DoMove(knightOut)
	p.DoMove(blackOut)
	p.DoMove(knightBack)
	p.DoMove(blackBack)

	if p.State().Repetition == 0 {
		t.Error("returning to the start position via knight shuffles should be flagged as a repetition")
	}
}
