// Copyright © 2026 The chesscore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package board

import (
	"laptudirm.com/x/chesscore/pkg/bitboard"
	"laptudirm.com/x/chesscore/pkg/castling"
	"laptudirm.com/x/chesscore/pkg/move"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
	"laptudirm.com/x/chesscore/pkg/zobrist"
)

// DoMove plays m, which callers must already know to be pseudo-legal
// against the current position, pushing a new StateInfo and maintaining
// every incremental field -- keys, material, castling/en-passant
// metadata, check info and repetition -- in one pass, per spec.md §4.5.
// m's captured piece is not part of its own encoding; DoMove discovers it
// by inspecting the board.
func (p *Position) DoMove(m move.Move) {
	prev := p.State()
	oldEP := prev.EPSquare
	oldRights := prev.CastlingRights

	st := p.pushState()
	st.PositionKey ^= zobrist.SideToMove
	if oldEP != square.None {
		st.PositionKey ^= zobrist.EnPassant[oldEP.File()]
	}

	us := st.ActiveColor.Other()
	them := st.ActiveColor

	from, to, kind := m.From(), m.To(), m.Kind()
	moving := p.Mailbox[from]

	switch kind {
	case move.EnPassant:
		capturedSquare := square.Make(to.File(), from.Rank())
		st.CapturedPiece = p.removeWithHash(capturedSquare)
	default:
		if p.Mailbox[to] != piece.NoPiece {
			st.CapturedPiece = p.removeWithHash(to)
		}
	}

	if kind == move.Promotion {
		p.removeWithHash(from)
		p.putWithHash(piece.New(us, m.PromotionType()), to)
	} else {
		p.moveWithHash(from, to)
	}

	if kind == move.Castling {
		right := castlingRightFor(us, to)
		p.moveWithHash(castling.RookOrigin(right), castling.RookDestination(right))
	}

	if moving.Type() == piece.Pawn || st.CapturedPiece != piece.NoPiece {
		st.HalfmoveClock = 0
	} else {
		st.HalfmoveClock++
	}
	if us == piece.Black {
		st.FullmoveNumber++
	}

	if moving.Type() == piece.Pawn {
		if rankDiff := int(to.Rank()) - int(from.Rank()); rankDiff == 2 || rankDiff == -2 {
			skipped := square.Make(from.File(), square.Rank((int(from.Rank())+int(to.Rank()))/2))
			if p.hasAdjacentPawn(to, them) {
				st.EPSquare = skipped
			}
		}
	}
	if st.EPSquare != square.None {
		st.PositionKey ^= zobrist.EnPassant[st.EPSquare.File()]
	}

	newRights := oldRights & (*castlingRightsMask)[from] & (*castlingRightsMask)[to]
	if newRights != oldRights {
		st.PositionKey ^= zobrist.Castling[oldRights] ^ zobrist.Castling[newRights]
	}
	st.CastlingRights = newRights

	p.updateCheckInfo()
	p.updateRepetition()
}

// UndoMove reverts the board mutations DoMove(m) made and pops back to
// the StateInfo from before it, which already holds every field DoMove
// computed -- so unlike DoMove, UndoMove never recomputes a key or
// touches zobrist tables, it only walks the board primitives in reverse.
func (p *Position) UndoMove(m move.Move) {
	st := p.State()
	us := st.ActiveColor.Other()
	from, to, kind := m.From(), m.To(), m.Kind()

	if kind == move.Castling {
		right := castlingRightFor(us, to)
		p.MovePiece(castling.RookDestination(right), castling.RookOrigin(right))
	}

	if kind == move.Promotion {
		p.RemovePiece(to)
		p.PutPiece(piece.New(us, piece.Pawn), from)
	} else {
		p.MovePiece(to, from)
	}

	switch kind {
	case move.EnPassant:
		capturedSquare := square.Make(to.File(), from.Rank())
		p.PutPiece(st.CapturedPiece, capturedSquare)
	default:
		if st.CapturedPiece != piece.NoPiece {
			p.PutPiece(st.CapturedPiece, to)
		}
	}

	p.popState()
}

// castlingRightFor identifies which single castling right a castling move
// by color c to king destination kingTo exercises.
func castlingRightFor(c piece.Color, kingTo square.Square) castling.Rights {
	switch {
	case c == piece.White && kingTo == square.G1:
		return castling.WhiteKingside
	case c == piece.White && kingTo == square.C1:
		return castling.WhiteQueenside
	case c == piece.Black && kingTo == square.G8:
		return castling.BlackKingside
	case c == piece.Black && kingTo == square.C8:
		return castling.BlackQueenside
	default:
		panic("board: castling move with invalid king destination " + kingTo.String())
	}
}

// hasAdjacentPawn reports whether a pawn of color c sits on a file
// adjacent to s, on s's rank -- the condition for a double pawn push to
// actually open an en-passant capture.
func (p *Position) hasAdjacentPawn(s square.Square, c piece.Color) bool {
	pawn := piece.New(c, piece.Pawn)
	for _, f := range [2]square.File{s.File() - 1, s.File() + 1} {
		if f < square.FileA || f > square.FileH {
			continue
		}
		if p.Mailbox[square.Make(f, s.Rank())] == pawn {
			return true
		}
	}
	return false
}

// putWithHash, removeWithHash and moveWithHash compose the allocation-
// free board primitives with the incremental key/material maintenance
// that do_move needs, per spec.md §4.5's note that PutPiece/RemovePiece/
// MovePiece themselves never touch a key.
func (p *Position) putWithHash(pc piece.Piece, s square.Square) {
	before := p.PieceCount[pc]
	pawnsWereEmpty := p.PieceBB[piece.Pawn] == bitboard.Empty

	p.PutPiece(pc, s)

	st := p.State()
	st.PositionKey ^= zobrist.PieceSquare[pc][s]
	st.MaterialKey ^= zobrist.Material[pc][before] ^ zobrist.Material[pc][before+1]
	if pc.Type() == piece.Pawn {
		st.PawnKey ^= zobrist.PieceSquare[pc][s]
		if pawnsWereEmpty {
			st.PawnKey ^= zobrist.NoPawns
		}
	} else if pc.Type() != piece.King {
		st.NonPawnMaterial[pc.Color()] += piece.Value(pc.Type())
	}
}

func (p *Position) removeWithHash(s square.Square) piece.Piece {
	pc := p.Mailbox[s]
	before := p.PieceCount[pc]

	p.RemovePiece(s)

	st := p.State()
	st.PositionKey ^= zobrist.PieceSquare[pc][s]
	st.MaterialKey ^= zobrist.Material[pc][before] ^ zobrist.Material[pc][before-1]
	if pc.Type() == piece.Pawn {
		st.PawnKey ^= zobrist.PieceSquare[pc][s]
		if p.PieceBB[piece.Pawn] == bitboard.Empty {
			st.PawnKey ^= zobrist.NoPawns
		}
	} else if pc.Type() != piece.King {
		st.NonPawnMaterial[pc.Color()] -= piece.Value(pc.Type())
	}
	return pc
}

func (p *Position) moveWithHash(from, to square.Square) {
	pc := p.Mailbox[from]
	p.MovePiece(from, to)

	st := p.State()
	delta := zobrist.PieceSquare[pc][from] ^ zobrist.PieceSquare[pc][to]
	st.PositionKey ^= delta
	if pc.Type() == piece.Pawn {
		st.PawnKey ^= delta
	}
}
