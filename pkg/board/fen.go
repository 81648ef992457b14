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
	"fmt"
	"strconv"
	"strings"

	"laptudirm.com/x/chesscore/pkg/bitboard"
	"laptudirm.com/x/chesscore/pkg/castling"
	"laptudirm.com/x/chesscore/pkg/piece"
	"laptudirm.com/x/chesscore/pkg/square"
	"laptudirm.com/x/chesscore/pkg/zobrist"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// validPieceChars are the FEN piece letters placePieces accepts.
const validPieceChars = "PNBRQKpnbrqk"

// NewFromFEN parses a position from Forsyth-Edwards Notation. Unlike
// PutPiece and friends, which treat a malformed call as a programmer
// error, a malformed FEN is an input error -- NewFromFEN returns it
// rather than panicking, per spec.md §7.
func NewFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("board: invalid fen %q: want 6 space-separated fields, got %d", fen, len(fields))
	}

	p := New()

	if err := p.placePieces(fields[0]); err != nil {
		return nil, err
	}

	if fields[1] != "w" && fields[1] != "b" {
		return nil, fmt.Errorf("board: invalid fen %q: bad active color %q", fen, fields[1])
	}

	st := p.State()
	st.ActiveColor = piece.NewColor(fields[1])
	st.CastlingRights = castling.New(fields[2])
	st.EPSquare = square.New(fields[3])
	if fields[3] != "-" && st.EPSquare == square.None {
		return nil, fmt.Errorf("board: invalid fen %q: bad en passant square %q", fen, fields[3])
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("board: invalid fen %q: bad halfmove clock: %w", fen, err)
	}
	st.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("board: invalid fen %q: bad fullmove number: %w", fen, err)
	}
	st.FullmoveNumber = fullmove

	p.computeKeys()
	p.updateCheckInfo()
	p.updateRepetition()
	return p, nil
}

// placePieces parses the board field of a FEN, rank 8 down to rank 1.
func (p *Position) placePieces(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: invalid fen board field %q: want 8 ranks, got %d", field, len(ranks))
	}

	for i, rankStr := range ranks {
		r := square.Rank(7 - i)
		f := square.FileA
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				f += square.File(c - '0')
			case strings.ContainsRune(validPieceChars, c):
				if f > square.FileH {
					return fmt.Errorf("board: invalid fen board field %q: rank %s overflows", field, r)
				}
				p.PutPiece(piece.NewFromString(string(c)), square.Make(f, r))
				f++
			default:
				return fmt.Errorf("board: invalid fen board field %q: bad character %q", field, c)
			}
		}
		if f != square.FileN {
			return fmt.Errorf("board: invalid fen board field %q: rank %s has the wrong length", field, r)
		}
	}
	return nil
}

// computeKeys rebuilds PositionKey, MaterialKey, PawnKey and
// NonPawnMaterial from scratch, since PutPiece never touches them.
// do_move never calls this -- it is for construction only (FEN parsing,
// and any future copy-from-scratch path).
func (p *Position) computeKeys() {
	st := p.State()

	var posKey, matKey, pawnKey zobrist.Key
	var counts [piece.N]int

	for s := square.A1; s <= square.H8; s++ {
		pc := p.Mailbox[s]
		if pc == piece.NoPiece {
			continue
		}
		posKey ^= zobrist.PieceSquare[pc][s]
		if pc.Type() == piece.Pawn {
			pawnKey ^= zobrist.PieceSquare[pc][s]
		}
		counts[pc]++
	}

	for pc := 0; pc < piece.N; pc++ {
		if n := counts[pc]; n > 0 {
			// telescoping XOR of Material[pc][0..n]'s consecutive pairs
			// collapses to just the endpoints.
			matKey ^= zobrist.Material[pc][0] ^ zobrist.Material[pc][n]
		}
	}

	if p.PieceBB[piece.Pawn] == bitboard.Empty {
		pawnKey ^= zobrist.NoPawns
	}

	if st.ActiveColor == piece.Black {
		posKey ^= zobrist.SideToMove
	}
	posKey ^= zobrist.Castling[st.CastlingRights]
	if st.EPSquare != square.None {
		posKey ^= zobrist.EnPassant[st.EPSquare.File()]
	}

	st.PositionKey = posKey
	st.MaterialKey = matKey
	st.PawnKey = pawnKey

	for c := piece.White; c <= piece.Black; c++ {
		npm := 0
		for t := piece.Knight; t <= piece.Queen; t++ {
			npm += p.PieceCount[piece.New(c, t)] * piece.Value(t)
		}
		st.NonPawnMaterial[c] = npm
	}
}

// FEN renders the position as Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	var sb strings.Builder

	for r := square.Rank8; r >= square.Rank1; r-- {
		empty := 0
		for f := square.FileA; f <= square.FileH; f++ {
			pc := p.Mailbox[square.Make(f, r)]
			if pc == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > square.Rank1 {
			sb.WriteByte('/')
		}
	}

	st := p.State()
	sb.WriteByte(' ')
	sb.WriteString(st.ActiveColor.String())
	sb.WriteByte(' ')
	sb.WriteString(st.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(st.EPSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(st.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(st.FullmoveNumber))
	return sb.String()
}
