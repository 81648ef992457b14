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

// Package piece implements the Color/Type/Piece enums, their encoding, and
// the material value table.
package piece

// Color is the side owning a piece.
type Color int

const (
	White Color = iota
	Black

	ColorN = 2
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ Black
}

// NewColor parses the FEN side-to-move letter ("w" or "b").
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("piece: invalid color id " + id)
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic("piece: invalid color value")
	}
}

// Type is a piece type, independent of color.
type Type int

const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	TypeN = 7
)

func (t Type) String() string {
	switch t {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return ""
	}
}

// Piece is color<<3 | type. NoPiece is zero; 8 (zero type bits with the
// Black color bit) and 7, 15 (type bits 7) are reserved and never stored.
type Piece int

const NoPiece Piece = 0

func newPiece(c Color, t Type) Piece {
	return Piece(int(c)<<3 | int(t))
}

var (
	WP = newPiece(White, Pawn)
	WN = newPiece(White, Knight)
	WB = newPiece(White, Bishop)
	WR = newPiece(White, Rook)
	WQ = newPiece(White, Queen)
	WK = newPiece(White, King)

	BP = newPiece(Black, Pawn)
	BN = newPiece(Black, Knight)
	BB = newPiece(Black, Bishop)
	BR = newPiece(Black, Rook)
	BQ = newPiece(Black, Queen)
	BK = newPiece(Black, King)
)

// N is the size of any array indexed directly by Piece (covers the
// reserved slots 7, 8, 15 too, since color<<3|type tops out at 1<<3|6=14).
const N = 16

// New builds a Piece from a color and type. t must not be NoType.
func New(c Color, t Type) Piece {
	if t == NoType {
		panic("piece: New with NoType")
	}
	return newPiece(c, t)
}

// NewFromString parses a single FEN piece letter (KQRBNPkqrbnp).
func NewFromString(id string) Piece {
	switch id {
	case "P":
		return WP
	case "N":
		return WN
	case "B":
		return WB
	case "R":
		return WR
	case "Q":
		return WQ
	case "K":
		return WK
	case "p":
		return BP
	case "n":
		return BN
	case "b":
		return BB
	case "r":
		return BR
	case "q":
		return BQ
	case "k":
		return BK
	default:
		panic("piece: invalid piece id " + id)
	}
}

// Type returns the piece type, NoType for NoPiece.
func (p Piece) Type() Type {
	if p == NoPiece {
		return NoType
	}
	return Type(p & 7)
}

// Color returns the piece's color. Calling Color on NoPiece is a
// programmer error.
func (p Piece) Color() Color {
	if p == NoPiece {
		panic("piece: Color of NoPiece")
	}
	return Color(p >> 3)
}

// Is reports whether p has the given type.
func (p Piece) Is(t Type) bool {
	return p.Type() == t
}

func (p Piece) String() string {
	if p == NoPiece {
		return " "
	}
	s := p.Type().String()
	if p.Color() == White {
		return string(rune(s[0] - 32)) // upper-case
	}
	return s
}

// Value table in centipawns, spec.md §6.
const (
	ValuePawn   = 208
	ValueKnight = 781
	ValueBishop = 825
	ValueRook   = 1276
	ValueQueen  = 2538

	ValueMate          = 32000
	ValueInfinite      = 32001
	ValueNone          = 32002
	MaxGameLength      = 246
	ValueMateInMaxPly  = ValueMate - MaxGameLength
)

// Value returns the material value of type t, 0 for pawns-and-up-excluded
// types (NoType and King, which is never traded).
func Value(t Type) int {
	switch t {
	case Pawn:
		return ValuePawn
	case Knight:
		return ValueKnight
	case Bishop:
		return ValueBishop
	case Rook:
		return ValueRook
	case Queen:
		return ValueQueen
	default:
		return 0
	}
}
