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

// Package bitboard implements the 64-bit bitboard and the bit-level
// primitives built on top of it: set/clear/test, population count,
// first/last set bit, and a non-restartable set-bit iterator.
//
// Bit r*8+f represents the square on rank r (0-7 from White's side) and
// file f (0-7 from the a-file). Bit 0 is a1, bit 63 is h8.
package bitboard

import "math/bits"

// Board is a 64-bit bitboard, one bit per square.
type Board uint64

const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// FromSquare returns a bitboard with only the given square set.
//
// sq must be in 0..63; callers at package boundaries (FEN, square-name
// parsing) are responsible for rejecting square.None before calling in.
func FromSquare(sq int) Board {
	return Board(1) << uint(sq)
}

// Set sets sq in b.
func (b *Board) Set(sq int) {
	*b |= FromSquare(sq)
}

// Clear clears sq in b.
func (b *Board) Clear(sq int) {
	*b &^= FromSquare(sq)
}

// IsSet reports whether sq is set in b.
func (b Board) IsSet(sq int) bool {
	return b&FromSquare(sq) != 0
}

// IsEmpty reports whether b has no bits set.
func (b Board) IsEmpty() bool {
	return b == Empty
}

// PopCount returns the number of set bits in b.
func (b Board) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the index of the least significant set bit.
//
// b must be non-zero; LSB of an empty board is a programmer error.
func (b Board) LSB() int {
	if b == Empty {
		panic("bitboard: LSB of empty board")
	}
	return bits.TrailingZeros64(uint64(b))
}

// MSB returns the index of the most significant set bit.
//
// b must be non-zero; MSB of an empty board is a programmer error.
func (b Board) MSB() int {
	if b == Empty {
		panic("bitboard: MSB of empty board")
	}
	return 63 - bits.LeadingZeros64(uint64(b))
}

// PopLSB returns the least significant set square and clears it in *b.
func (b *Board) PopLSB() int {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Iterator walks the set squares of a bitboard in ascending (LSB-first)
// order. It is finite and non-restartable: once exhausted, a new Iterator
// must be created. Iterators do not allocate.
type Iterator struct {
	remaining Board
}

// Squares returns an Iterator over the set squares of b. b is copied; the
// iterator does not observe later mutation of the original variable.
func Squares(b Board) Iterator {
	return Iterator{remaining: b}
}

// HasNext reports whether there are more squares to yield.
func (it *Iterator) HasNext() bool {
	return it.remaining != Empty
}

// Next returns the next square in ascending order and advances the
// iterator. Calling Next with HasNext false is a programmer error.
func (it *Iterator) Next() int {
	return it.remaining.PopLSB()
}

// String renders b as an 8x8 grid of '1'/'0', rank 8 first, to match the
// conventional human-readable board orientation.
func (b Board) String() string {
	var out [8*15 + 7]byte
	i := 0
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			if b.IsSet(sq) {
				out[i] = '1'
			} else {
				out[i] = '0'
			}
			i++
			if file < 7 {
				out[i] = ' '
				i++
			}
		}
		if rank > 0 {
			out[i] = '\n'
			i++
		}
	}
	return string(out[:i])
}
