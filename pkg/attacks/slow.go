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

package attacks

import (
	"laptudirm.com/x/chesscore/pkg/bitboard"
	"laptudirm.com/x/chesscore/pkg/square"
)

// rookDirections and bishopDirections are the four rays each slider walks.
var (
	rookDirections   = []square.Direction{square.North, square.South, square.East, square.West}
	bishopDirections = []square.Direction{square.NorthEast, square.NorthWest, square.SouthEast, square.SouthWest}
)

// slowSlidingAttacks is the reference generator spec.md §4.3 calls for: it
// walks each direction from s until it falls off the board or hits an
// occupied square, including the blocker itself in the result. It is used
// to precompute both the pseudo-attacks (occ = Empty) and, during magic
// table construction, the attack bitboard for every occupancy variation --
// never on the do_move/undo_move hot path.
func slowSlidingAttacks(s square.Square, occ bitboard.Board, dirs []square.Direction) bitboard.Board {
	var attacks bitboard.Board
	for _, d := range dirs {
		cur := s
		for {
			next, ok := cur.To(d)
			if !ok {
				break
			}
			attacks.Set(int(next))
			if occ.IsSet(int(next)) {
				break
			}
			cur = next
		}
	}
	return attacks
}

func slowRookAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	return slowSlidingAttacks(s, occ, rookDirections)
}

func slowBishopAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	return slowSlidingAttacks(s, occ, bishopDirections)
}
