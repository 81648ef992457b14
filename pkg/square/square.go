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

// Package square declares the Square/File/Rank/Direction types and the
// arithmetic over them.
//
// Squares are numbered a1=0 through h8=63, rank-major: square = rank*8 +
// file. The null square is represented with the "-" algebraic string.
package square

import "fmt"

// Square is a board square in 0..63, or None.
type Square int

// N is the number of valid squares.
const N = 64

// None is the sentinel for "no square", per spec.md's NO_SQUARE = 64.
const None Square = 64

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Make returns the square at the given file and rank. Make is the inverse
// of File/Rank and is bijective over file, rank in 0..7.
func Make(file File, rank Rank) Square {
	return Square(int(rank)*8 + int(file))
}

// File returns the file of s.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the rank of s.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// IsValid reports whether s is a real board square (not None and in range).
func (s Square) IsValid() bool {
	return s >= A1 && s <= H8
}

// New parses a square from its two-character algebraic name, e.g. "e4", or
// the literal "-" for None. Parsing is strict: any other length, or any
// out-of-range file/rank character, returns None rather than panicking,
// per spec.md §7's "parse failures never abort" rule.
func New(id string) Square {
	if id == "-" {
		return None
	}
	if len(id) != 2 {
		return None
	}
	f := FileFrom(id[0])
	r := RankFrom(id[1])
	if f == FileNone || r == RankNone {
		return None
	}
	return Make(f, r)
}

// String renders s as its two-character algebraic name, or "-" for None.
func (s Square) String() string {
	if s == None || !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s%s", s.File(), s.Rank())
}
