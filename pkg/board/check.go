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
	"laptudirm.com/x/chesscore/pkg/attacks"
	"laptudirm.com/x/chesscore/pkg/bitboard"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

// AttacksOf returns the set of squares attacked by the piece (of type t
// and color c) that would sit on s, given the current occupancy. Queries
// read only the immutable geometry/magic tables, never StateInfo.
func (p *Position) AttacksOf(t piece.Type, c piece.Color, s square.Square) bitboard.Board {
	switch t {
	case piece.Pawn:
		return attacks.Pawn[c][s]
	case piece.Knight:
		return attacks.Pseudo[piece.Knight][s]
	case piece.Bishop:
		return attacks.BishopAttacks(s, p.Occupied())
	case piece.Rook:
		return attacks.RookAttacks(s, p.Occupied())
	case piece.Queen:
		return attacks.QueenAttacks(s, p.Occupied())
	case piece.King:
		return attacks.Pseudo[piece.King][s]
	default:
		return bitboard.Empty
	}
}

// attackersTo returns every piece of any color attacking s, given
// occupancy occ (which callers may hypothetically modify, e.g. to see
// "through" a piece being moved away).
func (p *Position) attackersTo(s square.Square, occ bitboard.Board) bitboard.Board {
	pawns := (attacks.Pawn[piece.White][s] & p.pieces(piece.Pawn, piece.Black)) |
		(attacks.Pawn[piece.Black][s] & p.pieces(piece.Pawn, piece.White))

	knights := attacks.Pseudo[piece.Knight][s] & p.PieceBB[piece.Knight]
	kings := attacks.Pseudo[piece.King][s] & p.PieceBB[piece.King]

	bishopsQueens := p.PieceBB[piece.Bishop] | p.PieceBB[piece.Queen]
	rooksQueens := p.PieceBB[piece.Rook] | p.PieceBB[piece.Queen]

	sliders := (attacks.BishopAttacks(s, occ) & bishopsQueens) |
		(attacks.RookAttacks(s, occ) & rooksQueens)

	return pawns | knights | kings | sliders
}

func (p *Position) pieces(t piece.Type, c piece.Color) bitboard.Board {
	return p.PieceBB[t] & p.ColorBB[c]
}

// updateCheckInfo recomputes CheckersBB for the side to move's king, and
// BlockersForKing and Pinners for both kings, per spec.md §4.5.
func (p *Position) updateCheckInfo() {
	st := p.State()
	us := st.ActiveColor
	them := us.Other()
	king := p.Kings[us]

	occ := p.Occupied()

	pawns := attacks.Pawn[us][king] & p.pieces(piece.Pawn, them)
	knights := attacks.Pseudo[piece.Knight][king] & p.pieces(piece.Knight, them)
	bishopAttackers := attacks.BishopAttacks(king, occ) & (p.pieces(piece.Bishop, them) | p.pieces(piece.Queen, them))
	rookAttackers := attacks.RookAttacks(king, occ) & (p.pieces(piece.Rook, them) | p.pieces(piece.Queen, them))

	st.CheckersBB = pawns | knights | bishopAttackers | rookAttackers

	for _, c := range [2]piece.Color{piece.White, piece.Black} {
		st.BlockersForKing[c], st.Pinners[c] = p.computePinInfo(p.Kings[c], c)
	}
}

// computePinInfo finds, for the king of color c on square king, every
// enemy slider whose pseudo-attack line crosses king with exactly one
// friendly piece strictly between them: that piece is a blocker, the
// slider its pinner.
func (p *Position) computePinInfo(king square.Square, c piece.Color) (blockers, pinners bitboard.Board) {
	them := c.Other()

	candidates := (attacks.Pseudo[piece.Bishop][king] & (p.pieces(piece.Bishop, them) | p.pieces(piece.Queen, them))) |
		(attacks.Pseudo[piece.Rook][king] & (p.pieces(piece.Rook, them) | p.pieces(piece.Queen, them)))

	it := bitboard.Squares(candidates)
	for it.HasNext() {
		sliderSq := square.Square(it.Next())
		between := attacks.Between[king][sliderSq] & p.Occupied()
		if between.PopCount() != 1 {
			continue
		}
		blockerSq := square.Square(between.LSB())
		if p.ColorBB[c].IsSet(int(blockerSq)) {
			blockers.Set(int(blockerSq))
			pinners.Set(int(sliderSq))
		}
	}
	return blockers, pinners
}

// IsAttacked reports whether s is attacked by any piece of color by.
func (p *Position) IsAttacked(s square.Square, by piece.Color) bool {
	return p.attackersTo(s, p.Occupied())&p.ColorBB[by] != bitboard.Empty
}
