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
	"laptudirm.com/x/chesscore/pkg/bitboard"
	"laptudirm.com/x/chesscore/pkg/castling"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
	"laptudirm.com/x/chesscore/pkg/zobrist"
)

// StateInfo is the per-ply snapshot of derivable-but-cached quantities
// needed for fast do/undo and hashing, per spec.md §3. Rather than a
// pointer chain, "previous" is an index into Position's preallocated
// history array (rootPrevious for the first state), so do_move/undo_move
// never allocate.
type StateInfo struct {
	PositionKey zobrist.Key
	MaterialKey zobrist.Key
	PawnKey     zobrist.Key

	NonPawnMaterial [piece.ColorN]int

	CheckersBB      bitboard.Board
	BlockersForKing [piece.ColorN]bitboard.Board
	Pinners         [piece.ColorN]bitboard.Board

	ActiveColor    piece.Color
	CastlingRights castling.Rights
	EPSquare       square.Square
	HalfmoveClock  int
	FullmoveNumber int

	CapturedPiece piece.Piece

	// Repetition is 0 if the position has not occurred before in the
	// reachable history; the negated ply offset to the earliest
	// identical position if it is the position's first repeat; or the
	// positive ply offset to that repeat's state if this is itself a
	// second repeat (so a search layer can detect three-fold repetition
	// in O(1) by following one link), per spec.md §3.
	Repetition int

	previous int
}

// Previous returns the predecessor StateInfo and whether one exists (it
// does not for the root state).
func (p *Position) Previous(s *StateInfo) (*StateInfo, bool) {
	if s.previous == rootPrevious {
		return nil, false
	}
	return &p.history[s.previous], true
}

// Ply returns the current ply count (number of half-moves played since
// the position was set up).
func (p *Position) Ply() int {
	return p.ply
}

// pushState allocates (within the preallocated ring) the next StateInfo,
// copying forward the fields that carry over unconditionally, and
// returns it. It panics if the history capacity is exhausted -- a
// programmer error, since historyCapacity already includes
// MaxGameLength plus a safety margin.
func (p *Position) pushState() *StateInfo {
	if p.ply+1 >= historyCapacity {
		panic("board: StateInfo history exhausted")
	}
	prev := &p.history[p.ply]
	p.ply++
	next := &p.history[p.ply]

	*next = StateInfo{
		PositionKey:     prev.PositionKey,
		MaterialKey:     prev.MaterialKey,
		PawnKey:         prev.PawnKey,
		NonPawnMaterial: prev.NonPawnMaterial,
		ActiveColor:     prev.ActiveColor.Other(),
		CastlingRights:  prev.CastlingRights,
		EPSquare:        square.None,
		HalfmoveClock:   prev.HalfmoveClock,
		FullmoveNumber:  prev.FullmoveNumber,
		CapturedPiece:   piece.NoPiece,
		previous:        p.ply - 1,
	}
	return next
}

// popState reverts to the previous ply. It panics if called at the root
// state -- undo_move without a matching do_move is a programmer error
// per spec.md §5.
func (p *Position) popState() {
	if p.ply == 0 {
		panic("board: UndoMove without matching DoMove")
	}
	p.ply--
}
