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
	"laptudirm.com/x/chesscore/pkg/util"
)

// RookTableSize and BishopTableSize are the exact cumulative sizes of the
// flat rook/bishop attack tables, per spec.md §3.
const (
	RookTableSize   = 0x19000
	BishopTableSize = 0x1480
)

// magicAttemptBudget bounds the random search per square, per spec.md §7.
const magicAttemptBudget = 10_000_000

// Magic holds one square's magic-bitboard entry: the relevant-occupancy
// mask, the multiplier, the shift, and a slice into the flat attack
// table.
type Magic struct {
	Mask    bitboard.Board
	Number  uint64
	Shift   uint
	Attacks []bitboard.Board
}

// Index masks occ down to the relevant-occupancy squares and maps the
// result to its slot in Attacks.
func (m *Magic) Index(occ bitboard.Board) int {
	masked := uint64(occ & m.Mask)
	return int((masked * m.Number) >> m.Shift)
}

var (
	rookTable   [RookTableSize]bitboard.Board
	bishopTable [BishopTableSize]bitboard.Board

	RookMagics   [square.N]Magic
	BishopMagics [square.N]Magic
)

// magicSeeds are the per-rank PRNG seeds known to find a collision-free
// magic quickly for every square, in a1=0..h8=63 (rank-major) square
// numbering -- grounded on other_examples' FrankyGo port of Stockfish's
// magic-bitboard initialisation, which uses this same square convention.
var magicSeeds = [square.RankN]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func initMagics() {
	rookOffset := 0
	bishopOffset := 0

	for s := square.A1; s <= square.H8; s++ {
		rookOffset = initMagic(&RookMagics[s], s, rookDirections, rookTable[:], rookOffset)
		bishopOffset = initMagic(&BishopMagics[s], s, bishopDirections, bishopTable[:], bishopOffset)
	}

	if rookOffset != RookTableSize {
		panic("attacks: rook table size mismatch")
	}
	if bishopOffset != BishopTableSize {
		panic("attacks: bishop table size mismatch")
	}
}

// initMagic computes the mask, shift and magic number for square s against
// the given slider directions, fills in its slice of the shared flat
// table starting at offset, and returns the offset for the next square.
func initMagic(m *Magic, s square.Square, dirs []square.Direction, table []bitboard.Board, offset int) int {
	edges := edgeMask(s)
	m.Mask = slowSlidingAttacks(s, bitboard.Empty, dirs) &^ edges

	n := m.Mask.PopCount()
	m.Shift = uint(64 - n)
	size := 1 << uint(n)
	m.Attacks = table[offset : offset+size]

	variations := make([]bitboard.Board, size)
	reference := make([]bitboard.Board, size)

	var occ bitboard.Board
	for i := 0; ; i++ {
		variations[i] = occ
		reference[i] = slowSlidingAttacks(s, occ, dirs)

		occ = (occ - m.Mask) & m.Mask // carry-rippler: next subset of Mask
		if occ == bitboard.Empty {
			break
		}
	}

	magic, ok := findMagic(m.Mask, m.Shift, variations, reference, magicSeeds[s.Rank()])
	if !ok {
		panic("attacks: magic search exhausted its attempt budget for square " + s.String())
	}
	m.Number = magic

	for i, occ := range variations {
		idx := (uint64(occ) * magic) >> m.Shift
		m.Attacks[idx] = reference[i]
	}

	return offset + size
}

// findMagic is spec.md §4.3's find_magic: it draws sparse random
// candidates, rejects those with too few high bits, and accepts the first
// candidate for which every occupancy variation maps to an index holding
// either no attack set yet or the matching one. It returns (0, false) if
// it exhausts magicAttemptBudget attempts without success -- a tagged
// failure, not a panic, so a caller could retry with a different seed.
func findMagic(mask bitboard.Board, shift uint, variations, reference []bitboard.Board, seed uint64) (uint64, bool) {
	var rng util.PRNG
	rng.Seed(seed)

	// used holds, per candidate attempt, the attack set written to each
	// index so far; Empty means unwritten. This relies on a rook or
	// bishop always attacking at least one square from any square on
	// the board, so a real reference attack set is never Empty.
	used := make([]bitboard.Board, len(variations))

	for attempt := 0; attempt < magicAttemptBudget; attempt++ {
		candidate := rng.SparseUint64()

		if bitboard.Board((uint64(mask)*candidate)>>56).PopCount() < 6 {
			continue
		}

		for i := range used {
			used[i] = bitboard.Empty
		}

		collision := false
		for i, occ := range variations {
			idx := (uint64(occ) * candidate) >> shift
			if used[idx] == bitboard.Empty {
				used[idx] = reference[i]
			} else if used[idx] != reference[i] {
				collision = true
				break
			}
		}

		if !collision {
			return candidate, true
		}
	}

	return 0, false
}

// edgeMask returns the board-edge squares not on s's own rank/file, which
// are excluded from relevant-occupancy masks: a slider's attack either
// reaches the edge or is blocked strictly before it, so the edge square's
// occupancy never changes the attack set.
func edgeMask(s square.Square) bitboard.Board {
	edges := fileBB(square.FileA) | fileBB(square.FileH)
	edges &^= fileBB(s.File())
	rankEdges := rankBB(square.Rank1) | rankBB(square.Rank8)
	rankEdges &^= rankBB(s.Rank())
	return edges | rankEdges
}

func fileBB(f square.File) bitboard.Board {
	var bb bitboard.Board
	for r := square.Rank1; r <= square.Rank8; r++ {
		bb.Set(int(square.Make(f, r)))
	}
	return bb
}

func rankBB(r square.Rank) bitboard.Board {
	var bb bitboard.Board
	for f := square.FileA; f <= square.FileH; f++ {
		bb.Set(int(square.Make(f, r)))
	}
	return bb
}

// RookAttacks returns the rook attack set from s given board occupancy
// occ, via the magic-bitboard perfect hash.
func RookAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	m := &RookMagics[s]
	return m.Attacks[m.Index(occ)]
}

// BishopAttacks returns the bishop attack set from s given board
// occupancy occ.
func BishopAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	m := &BishopMagics[s]
	return m.Attacks[m.Index(occ)]
}

// QueenAttacks returns the queen attack set from s given board occupancy
// occ: the union of the rook and bishop attack sets.
func QueenAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	return RookAttacks(s, occ) | BishopAttacks(s, occ)
}
