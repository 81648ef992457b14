package board_test

import (
	"testing"

	"laptudirm.com/x/chesscore/pkg/board"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		board.StartFEN,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
		"rnbq1rk1/ppp1bppp/4pn2/3p2B1/2PP4/2N2N2/PP2PPPP/R2QKB1R w KQ - 6 6",
		"rnbqkbnr/ppp2ppp/8/2Ppp3/8/8/PP1PPPPP/RNBQKBNR w KQkq d6 0 3",
		"rnbqkbnr/pp1ppppp/8/8/2pPP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3",
		"rn3rk1/pbp1qpp1/1p5p/3p4/3P4/3BPN2/PP3PPP/R2Q1RK1 b - - 3 12",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
	}

	for n, test := range tests {
		t.Run(test, func(t *testing.T) {
			p, err := board.NewFromFEN(test)
			if err != nil {
				t.Fatalf("test %d: NewFromFEN(%q) returned %v", n, test, err)
			}
			if got := p.FEN(); got != test {
				t.Errorf("test %d: wrong fen\ngot:  %s\nwant: %s", n, got, test)
			}
		})
	}
}

func TestFENRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR z KQkq - 0 1",
	}
	for _, test := range tests {
		if _, err := board.NewFromFEN(test); err == nil {
			t.Errorf("NewFromFEN(%q) should have failed", test)
		}
	}
}

func TestFENKeysMatchAfterRebuild(t *testing.T) {
	p, err := board.NewFromFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("NewFromFEN(StartFEN) returned %v", err)
	}
	q, err := board.NewFromFEN(p.FEN())
	if err != nil {
		t.Fatalf("re-parsing p.FEN() returned %v", err)
	}
	if p.State().PositionKey != q.State().PositionKey {
		t.Error("re-parsing a position's own FEN should reproduce the same PositionKey")
	}
}
