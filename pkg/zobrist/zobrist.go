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

// Package zobrist holds the random per-feature constants Position XORs
// together to maintain its incremental hash keys: one table per piece x
// square, one per en-passant file, one per castling-rights subset, plus
// the side-to-move and no-pawns singletons. All tables are built once, at
// init time, from a fixed seed so that keys are reproducible across runs.
package zobrist

import (
	"laptudirm.com/x/chesscore/pkg/castling"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
	"laptudirm.com/x/chesscore/pkg/util"
)

// Key is a 64-bit Zobrist hash key.
type Key uint64

// seed is the fixed PRNG seed Zobrist tables are built from, so that
// position_key, material_key and pawn_key are bit-for-bit reproducible
// across processes and across do_move/undo_move round trips.
const seed = 1070372

var (
	// PieceSquare[p][s] is zero for pawn entries on rank 1 or rank 8 --
	// positions no pawn can ever occupy -- per spec.md §3's invariant
	// that an accidental inclusion of such a square still leaves the
	// hash invariant.
	PieceSquare [piece.N][square.N]Key

	// EnPassant is indexed by the file of the current en-passant square.
	EnPassant [square.FileN]Key

	// Castling is indexed directly by the castling.Rights bitmask, one
	// independent random value per subset rather than one per bit, so
	// a value can be looked up by simple indexing at use.
	Castling [castling.N]Key

	// SideToMove is XORed into the key whenever it is Black to move.
	SideToMove Key

	// NoPawns is XORed into PawnKey whenever neither side has a pawn left,
	// so that pawn_key distinguishes "no pawns" from "key happens to be
	// zero".
	NoPawns Key

	// Material[p][n] is XORed into MaterialKey whenever the count of
	// piece p on the board changes from n-1 to n or back, so material_key
	// depends only on piece counts and never on square occupancy -- the
	// classic material-hash scheme used to index pawn/material evaluation
	// caches independently of position_key. maxPieceCount is generous
	// enough for any reachable count of a single piece type, promotions
	// included.
	Material [piece.N][maxPieceCount]Key
)

// maxPieceCount is one more than the largest per-piece-type count Material
// is indexed by. A side cannot field more than 8 pawns, and pawns promoting
// cannot push any non-king piece type's count past 10 on a legal board.
const maxPieceCount = 11

func init() {
	var rng util.PRNG
	rng.Seed(seed)

	for p := 0; p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			if isPawnEntry(piece.Piece(p)) && (s.Rank() == square.Rank1 || s.Rank() == square.Rank8) {
				continue // left zero, see PieceSquare's doc comment
			}
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := 0; r < castling.N; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
	NoPawns = Key(rng.Uint64())

	for p := 0; p < piece.N; p++ {
		for n := 0; n < maxPieceCount; n++ {
			Material[p][n] = Key(rng.Uint64())
		}
	}
}

func isPawnEntry(p piece.Piece) bool {
	return p != piece.NoPiece && p.Type() == piece.Pawn
}
