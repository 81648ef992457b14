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

// Package move implements the compact 16-bit move encoding: origin
// square, destination square, promotion piece, and move kind packed into
// a single uint16. The captured piece is deliberately not part of the
// encoding -- it lives in the position's StateInfo -- which keeps Move
// small, comparable by value, and cheap to store in move lists.
package move

import (
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

// Move is a 16-bit encoded chess move:
//
//	bits 0-5:   origin square
//	bits 6-11:  destination square
//	bits 12-13: promotion piece type - 2 (Knight=0 .. Queen=3)
//	bits 14-15: move kind
type Move uint16

// Kind distinguishes the four move shapes.
type Kind uint16

const (
	Normal    Kind = 0
	Promotion Kind = 1 << 14
	EnPassant Kind = 2 << 14
	Castling  Kind = 3 << 14
)

const (
	fromMask = 0x3f
	toShift  = 6
	toMask   = 0x3f << toShift
	promoShift = 12
	promoMask  = 0x3 << promoShift
	kindMask   = 0x3 << 14
)

// None is the zero move: no move at all.
const None Move = 0

// Null is the "pass" pseudo-move: from == to == b1 (raw value 65), used by
// search layers for null-move pruning. It is never a legal move on a real
// board.
const Null Move = Move(square.B1) | Move(square.B1)<<toShift

// New builds a normal move (no promotion, no special kind).
func New(from, to square.Square) Move {
	return Move(from) | Move(to)<<toShift
}

// NewSpecial builds a move of a special kind. kind must be Promotion,
// EnPassant, or Castling; promo is only meaningful (and required to be
// Knight..Queen) when kind is Promotion.
func NewSpecial(from, to square.Square, kind Kind, promo piece.Type) Move {
	m := Move(from) | Move(to)<<toShift | Move(kind)
	if kind == Promotion {
		m |= Move(promo-piece.Knight) << promoShift
	}
	return m
}

// From returns the move's origin square.
func (m Move) From() square.Square {
	return square.Square(m & fromMask)
}

// To returns the move's destination square.
func (m Move) To() square.Square {
	return square.Square((m & toMask) >> toShift)
}

// PromotionType returns the promotion piece type. Only meaningful when
// Kind() == Promotion.
func (m Move) PromotionType() piece.Type {
	return piece.Knight + piece.Type((m&promoMask)>>promoShift)
}

// Kind returns the move's kind tag.
func (m Move) Kind() Kind {
	return Kind(m & kindMask)
}

// IsValid reports whether m is neither None nor Null.
func (m Move) IsValid() bool {
	return m != None && m != Null
}

// Hash returns the move's raw 16-bit value, usable directly as a hash.
func (m Move) Hash() uint16 {
	return uint16(m)
}

// String renders m per spec.md §4.4: "<from><to>" with a trailing
// promotion letter for promotions, "O-O"/"O-O-O" for castling (chosen by
// whether the destination is kingside or queenside of the origin), and
// the two sentinel strings for None/Null.
func (m Move) String() string {
	switch m {
	case None:
		return "none"
	case Null:
		return "null"
	}

	if m.Kind() == Castling {
		if m.To() > m.From() {
			return "O-O"
		}
		return "O-O-O"
	}

	s := m.From().String() + m.To().String()
	if m.Kind() == Promotion {
		s += m.PromotionType().String()
	}
	return s
}
