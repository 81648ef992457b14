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

// Package board implements Position: a mailbox plus parallel piece/color
// bitboards, and the chained StateInfo snapshots (Zobrist keys, castling
// and en-passant metadata, check/pin information) that do_move/undo_move
// maintain incrementally. This is the one part of chesscore that is not
// allocation-free to construct, but is allocation-free to mutate: the
// StateInfo history is a single preallocated array indexed by ply.
package board

import (
	"fmt"
	"strings"

	"laptudirm.com/x/chesscore/pkg/bitboard"
	"laptudirm.com/x/chesscore/pkg/castling"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
)

// quiescenceMargin is extra history capacity beyond MaxGameLength for a
// search layer's quiescence extension, per spec.md §5.
const quiescenceMargin = 64

// historyCapacity is the size of Position's preallocated StateInfo ring.
const historyCapacity = piece.MaxGameLength + quiescenceMargin

// rootPrevious is the distinguished "no predecessor" value for
// StateInfo.previous.
const rootPrevious = -1

// Position is a mailbox plus parallel bitboards, with a chain of
// StateInfo snapshots reachable from the current ply.
type Position struct {
	Mailbox    [square.N]piece.Piece
	PieceBB    [piece.TypeN]bitboard.Board // PieceBB[0] is the ALL_PIECES union
	ColorBB    [piece.ColorN]bitboard.Board
	PieceCount [piece.N]int
	Kings      [piece.ColorN]square.Square

	history [historyCapacity]StateInfo
	ply     int
}

// New returns an empty Position (no pieces, ply 0 uninitialised); callers
// populate it via PutPiece; NewFromFEN builds a populated Position.
func New() *Position {
	var p Position
	p.history[0].previous = rootPrevious
	p.history[0].EPSquare = square.None
	return &p
}

// State returns the current ply's StateInfo.
func (p *Position) State() *StateInfo {
	return &p.history[p.ply]
}

// Occupied returns the union of all occupied squares.
func (p *Position) Occupied() bitboard.Board {
	return p.PieceBB[0]
}

// PutPiece places pc on square s. s must be empty; this is a programmer
// error otherwise (spec.md §4.5).
func (p *Position) PutPiece(pc piece.Piece, s square.Square) {
	if p.Mailbox[s] != piece.NoPiece {
		panic(fmt.Sprintf("board: PutPiece on occupied square %s", s))
	}
	p.Mailbox[s] = pc
	bb := bitboard.FromSquare(int(s))
	p.PieceBB[pc.Type()] |= bb
	p.PieceBB[0] |= bb
	p.ColorBB[pc.Color()] |= bb
	p.PieceCount[pc]++
	if pc.Type() == piece.King {
		p.Kings[pc.Color()] = s
	}
}

// RemovePiece removes and returns the piece on s. s must be occupied.
func (p *Position) RemovePiece(s square.Square) piece.Piece {
	pc := p.Mailbox[s]
	if pc == piece.NoPiece {
		panic(fmt.Sprintf("board: RemovePiece on empty square %s", s))
	}
	p.Mailbox[s] = piece.NoPiece
	bb := bitboard.FromSquare(int(s))
	p.PieceBB[pc.Type()] &^= bb
	p.PieceBB[0] &^= bb
	p.ColorBB[pc.Color()] &^= bb
	p.PieceCount[pc]--
	return pc
}

// MovePiece relocates the piece on from to to (which must be empty) with
// a single XOR across the relevant bitboards.
func (p *Position) MovePiece(from, to square.Square) {
	pc := p.Mailbox[from]
	if pc == piece.NoPiece {
		panic(fmt.Sprintf("board: MovePiece from empty square %s", from))
	}
	xor := bitboard.FromSquare(int(from)) | bitboard.FromSquare(int(to))
	p.PieceBB[pc.Type()] ^= xor
	p.PieceBB[0] ^= xor
	p.ColorBB[pc.Color()] ^= xor
	p.Mailbox[from] = piece.NoPiece
	p.Mailbox[to] = pc
	if pc.Type() == piece.King {
		p.Kings[pc.Color()] = to
	}
}

// String renders the board as an 8x8 grid, rank 8 first, plus the FEN of
// the current position.
func (p *Position) String() string {
	var sb strings.Builder
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			sb.WriteString(p.Mailbox[square.Make(f, r)].String())
			if f < square.FileH {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("Fen: " + p.FEN())
	return sb.String()
}

// castlingRightsMask, castlingRookSquare and castlingPath are Position's
// castling metadata per spec.md §3. They are identical for every
// Position (the board geometry never changes), so rather than copy them
// into every instance they are kept as the shared, once-initialised
// tables in pkg/castling and referenced directly; see DESIGN.md.
var (
	castlingRightsMask = &castling.RightsMask
	castlingRookSquare = &castling.RookSquare
	castlingPath       = &castling.Path
)
