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

// Package attacks builds, once at startup, the geometry tables (distance,
// between, through, pseudo-attacks) and the magic bitboard tables for
// rook and bishop sliding attacks. All tables are immutable after init
// and safely shared across goroutines without synchronization, per
// spec.md §5.
package attacks

import (
	"laptudirm.com/x/chesscore/pkg/bitboard"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

var (
	// Distance[s1][s2] is the Chebyshev distance between s1 and s2.
	Distance [square.N][square.N]int

	// Between[s1][s2] is the bitboard of squares strictly between s1 and
	// s2 along a rook or bishop line. If s1 and s2 are not aligned, it
	// holds only s2; if s1 == s2, it is empty.
	Between [square.N][square.N]bitboard.Board

	// Through[s1][s2] is the full line through s1 and s2, always
	// including s1. If not aligned (or s1 == s2), it holds only s1.
	Through [square.N][square.N]bitboard.Board

	// Pseudo[t][s] is the attack set of piece type t from square s on an
	// otherwise empty board. Indexed by Knight, Bishop, Rook, Queen,
	// King; Pawn and NoType entries are left zero (pawns use Pawn
	// below, since their attacks are color-dependent).
	Pseudo [piece.TypeN][square.N]bitboard.Board

	// Pawn[c][s] is the pair of forward-diagonal attack squares for a
	// pawn of color c on square s; empty on that color's promotion
	// rank, since no pawn is ever placed there.
	Pawn [piece.ColorN][square.N]bitboard.Board
)

func init() {
	buildDistance()
	buildPseudoNonSliding()
	buildPseudoSliding()
	buildBetweenAndThrough()
	initMagics()
}

func buildDistance() {
	for s1 := square.A1; s1 <= square.H8; s1++ {
		for s2 := square.A1; s2 <= square.H8; s2++ {
			Distance[s1][s2] = square.Distance(s1, s2)
		}
	}
}

// stepAttacks computes the attack set reachable from s by any of the
// given single steps, discarding off-board destinations.
func stepAttacks(s square.Square, steps []square.Direction) bitboard.Board {
	var bb bitboard.Board
	for _, d := range steps {
		if to, ok := s.To(d); ok {
			bb.Set(int(to))
		}
	}
	return bb
}

func buildPseudoNonSliding() {
	knightSteps := []square.Direction{17, 15, 10, 6, -17, -15, -10, -6}
	kingSteps := []square.Direction{
		square.North, square.South, square.East, square.West,
		square.NorthEast, square.NorthWest, square.SouthEast, square.SouthWest,
	}

	for s := square.A1; s <= square.H8; s++ {
		Pseudo[piece.Knight][s] = stepAttacks(s, knightSteps)
		Pseudo[piece.King][s] = stepAttacks(s, kingSteps)

		if s.Rank() != square.Rank8 {
			Pawn[piece.White][s] = stepAttacks(s, []square.Direction{square.NorthEast, square.NorthWest})
		}
		if s.Rank() != square.Rank1 {
			Pawn[piece.Black][s] = stepAttacks(s, []square.Direction{square.SouthEast, square.SouthWest})
		}
	}
}

func buildPseudoSliding() {
	for s := square.A1; s <= square.H8; s++ {
		Pseudo[piece.Bishop][s] = slowBishopAttacks(s, bitboard.Empty)
		Pseudo[piece.Rook][s] = slowRookAttacks(s, bitboard.Empty)
		Pseudo[piece.Queen][s] = Pseudo[piece.Bishop][s] | Pseudo[piece.Rook][s]
	}
}

func buildBetweenAndThrough() {
	for s1 := square.A1; s1 <= square.H8; s1++ {
		// Through[s][s] = {s}; Between[s][s] = empty (its zero value).
		Through[s1][s1] = bitboard.FromSquare(int(s1))

		for s2 := square.A1; s2 <= square.H8; s2++ {
			if s1 == s2 {
				continue
			}

			d, aligned := square.DirectionBetween(s1, s2)
			if !aligned {
				Between[s1][s2] = bitboard.FromSquare(int(s2))
				Through[s1][s2] = bitboard.FromSquare(int(s1))
				continue
			}

			// walk from s1 towards s2, accumulating strictly-between
			// squares until s2 is reached.
			var between bitboard.Board
			cur := s1
			for {
				next, ok := cur.To(d)
				if !ok || next == s2 {
					break
				}
				between.Set(int(next))
				cur = next
			}
			Between[s1][s2] = between

			// the through-line contains s1 and extends to the edge in
			// both directions.
			through := bitboard.FromSquare(int(s1))
			for cur, ok := s1.To(d); ok; cur, ok = cur.To(d) {
				through.Set(int(cur))
			}
			opposite := oppositeDirection(d)
			for cur, ok := s1.To(opposite); ok; cur, ok = cur.To(opposite) {
				through.Set(int(cur))
			}
			Through[s1][s2] = through
		}
	}
}

func oppositeDirection(d square.Direction) square.Direction {
	return -d
}
