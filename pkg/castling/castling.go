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

// Package castling implements the castling-rights bitmask and the
// per-square/per-right tables (rights mask, rook square, and path) that
// Position uses to maintain castling metadata incrementally.
package castling

import "laptudirm.com/x/chesscore/pkg/square"

// Rights is a 4-bit mask over the four castling rights.
type Rights byte

const (
	WhiteKingside Rights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	None  Rights = 0
	White        = WhiteKingside | WhiteQueenside
	Black        = BlackKingside | BlackQueenside

	Kingside  = WhiteKingside | BlackKingside
	Queenside = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	// N is the number of distinct Rights values, i.e. 2^4.
	N = 16
)

// New parses a FEN castling-availability field ("KQkq", "Kq", "-", ...).
func New(s string) Rights {
	var r Rights
	if s == "-" {
		return None
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			r |= WhiteKingside
		case 'Q':
			r |= WhiteQueenside
		case 'k':
			r |= BlackKingside
		case 'q':
			r |= BlackQueenside
		}
	}
	return r
}

func (r Rights) String() string {
	if r == None {
		return "-"
	}
	var s string
	if r&WhiteKingside != 0 {
		s += "K"
	}
	if r&WhiteQueenside != 0 {
		s += "Q"
	}
	if r&BlackKingside != 0 {
		s += "k"
	}
	if r&BlackQueenside != 0 {
		s += "q"
	}
	return s
}

// RightsMask holds, for each square, the castling rights mask to AND the
// current rights against when that square is touched (origin or
// destination) by a move -- a king or rook leaving home, or a rook being
// captured on its home square, strips the corresponding bit(s).
var RightsMask [square.N]Rights

// RookSquare maps each single castling-right bit to the square its rook
// starts on.
var RookSquare [4]square.Square

// rightIndex returns 0..3 for the four individual right bits, used to
// index RookSquare and Path.
func rightIndex(r Rights) int {
	switch r {
	case WhiteKingside:
		return 0
	case WhiteQueenside:
		return 1
	case BlackKingside:
		return 2
	case BlackQueenside:
		return 3
	default:
		panic("castling: rightIndex of non-singleton right")
	}
}

// Path holds, for each of the four individual rights, the bitboard-as-
// square-list of squares that must be empty (and, beyond the king's
// departure and arrival squares, unattacked) for that castle to be legal.
// Represented as a slice of squares rather than a bitboard so this package
// does not need to import bitboard (kept dependency-free, matching its
// role as a small metadata table next to Rights).
var Path [4][]square.Square

func init() {
	for s := square.A1; s <= square.H8; s++ {
		RightsMask[s] = All
	}
	RightsMask[square.E1] &^= White
	RightsMask[square.A1] &^= WhiteQueenside
	RightsMask[square.H1] &^= WhiteKingside
	RightsMask[square.E8] &^= Black
	RightsMask[square.A8] &^= BlackQueenside
	RightsMask[square.H8] &^= BlackKingside

	RookSquare[rightIndex(WhiteKingside)] = square.H1
	RookSquare[rightIndex(WhiteQueenside)] = square.A1
	RookSquare[rightIndex(BlackKingside)] = square.H8
	RookSquare[rightIndex(BlackQueenside)] = square.A8

	Path[rightIndex(WhiteKingside)] = []square.Square{square.F1, square.G1}
	Path[rightIndex(WhiteQueenside)] = []square.Square{square.B1, square.C1, square.D1}
	Path[rightIndex(BlackKingside)] = []square.Square{square.F8, square.G8}
	Path[rightIndex(BlackQueenside)] = []square.Square{square.B8, square.C8, square.D8}
}

// RookOrigin returns the rook's starting square for the given single
// castling right.
func RookOrigin(r Rights) square.Square {
	return RookSquare[rightIndex(r)]
}

// PathSquares returns the squares that must be empty (and, beyond the
// king's own departure/arrival squares, unattacked) for the given single
// castling right's castle to be legal.
func PathSquares(r Rights) []square.Square {
	return Path[rightIndex(r)]
}

// KingDestination returns the king's destination square for the given
// single castling right.
func KingDestination(r Rights) square.Square {
	switch r {
	case WhiteKingside:
		return square.G1
	case WhiteQueenside:
		return square.C1
	case BlackKingside:
		return square.G8
	case BlackQueenside:
		return square.C8
	default:
		panic("castling: KingDestination of non-singleton right")
	}
}

// RookDestination returns the rook's destination square for the given
// single castling right (the square adjacent to the king on the castled
// side).
func RookDestination(r Rights) square.Square {
	switch r {
	case WhiteKingside:
		return square.F1
	case WhiteQueenside:
		return square.D1
	case BlackKingside:
		return square.F8
	case BlackQueenside:
		return square.D8
	default:
		panic("castling: RookDestination of non-singleton right")
	}
}
