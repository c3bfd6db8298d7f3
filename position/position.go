/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package position represents a shogi board and its position.
// It uses an 81-cell piece board plus per-kind and per-color bitboards,
// a stack of incremental state snapshots for undo and check detection,
// and a pair of Zobrist keys for transposition tables.
//
// Create a new instance with Default() for the standard starting
// position, or New(...)/FromBoard(...) for an arbitrary one.
package position

import (
	"github.com/op/go-logging"

	"github.com/sugyan/yasai-sub000/bitboard"
	myLogging "github.com/sugyan/yasai-sub000/logging"
	"github.com/sugyan/yasai-sub000/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// Key is a Zobrist hash key for a position.
type Key uint64

// state is one entry of a Position's history stack: the incremental
// information needed both to answer check/pin queries about the
// current position and to undo the move that produced it.
type state struct {
	boardKey   Key
	handKey    Key
	move       types.Move
	captured   types.Piece
	checkers   bitboard.Bitboard
	checkables [types.PieceKindLength]bitboard.Bitboard
	pinned     [types.ColorLength]bitboard.Bitboard
}

// Position is a mutable shogi position. It must be created via Default,
// New, or FromBoard; the zero value is not valid.
type Position struct {
	board      [types.NumSquares]types.Piece
	occupancy  [types.ColorLength]bitboard.Bitboard
	pieceBb    [types.PieceKindLength]bitboard.Bitboard
	hands      [types.ColorLength]types.Hand
	sideToMove types.Color
	ply        int
	kingSquare [types.ColorLength]types.Square

	// history holds the initial state at index 0 plus one state per move
	// applied since construction, so len(history) is one more than the
	// number of plies played from the constructed position. The top entry
	// always describes the position as it stands right now.
	history []state
}

func (p *Position) cur() *state {
	return &p.history[len(p.history)-1]
}

// Clone returns an independent copy of p. The history stack is deep
// copied so that DoMove/UndoMove on the clone never touches p's
// backing array; per spec.md's concurrency model, the two may then be
// driven from separate goroutines with no further coordination.
func (p *Position) Clone() *Position {
	cp := *p
	cp.history = make([]state, len(p.history))
	copy(cp.history, p.history)
	return &cp
}

// SideToMove returns the color to move next.
func (p *Position) SideToMove() types.Color {
	return p.sideToMove
}

// PieceOn returns the piece occupying sq, or NoPiece.
func (p *Position) PieceOn(sq types.Square) types.Piece {
	return p.board[sq]
}

// King returns the square of color c's king.
func (p *Position) King(c types.Color) types.Square {
	return p.kingSquare[c]
}

// PiecesC returns every square occupied by a piece of color c.
func (p *Position) PiecesC(c types.Color) bitboard.Bitboard {
	return p.occupancy[c]
}

// PiecesP returns every square occupied by a piece of kind pk,
// regardless of color.
func (p *Position) PiecesP(pk types.PieceKind) bitboard.Bitboard {
	return p.pieceBb[pk]
}

// PiecesCP returns every square occupied by a piece of kind pk and
// color c.
func (p *Position) PiecesCP(c types.Color, pk types.PieceKind) bitboard.Bitboard {
	return p.occupancy[c].And(p.pieceBb[pk])
}

// Occupied returns every occupied square, regardless of color.
func (p *Position) Occupied() bitboard.Bitboard {
	return p.occupancy[types.Black].Or(p.occupancy[types.White])
}

// Hand returns color c's hand.
func (p *Position) Hand(c types.Color) types.Hand {
	return p.hands[c]
}

// Ply returns the number of moves played so far.
func (p *Position) Ply() int {
	return p.ply
}

// InCheck reports whether the side to move is currently in check.
func (p *Position) InCheck() bool {
	return !p.Checkers().IsEmpty()
}

// Checkers returns the opposing pieces currently attacking the side to
// move's king.
func (p *Position) Checkers() bitboard.Bitboard {
	return p.cur().checkers
}

// Pinned returns, for each color, the lone blockers between that
// color's king and an opposing lance, bishop or rook. A blocker of that
// color may only move along the pin line; a blocker of the other color
// is included too, and is never consulted by move legality.
func (p *Position) Pinned() [types.ColorLength]bitboard.Bitboard {
	return p.cur().pinned
}

// Checkables returns the squares from which a piece of kind pk,
// belonging to the side to move, would check the opposing king.
func (p *Position) Checkables(pk types.PieceKind) bitboard.Bitboard {
	return p.cur().checkables[pk]
}

// Keys returns the board and hand Zobrist key halves separately.
func (p *Position) Keys() (Key, Key) {
	st := p.cur()
	return st.boardKey, st.handKey
}

// Key returns the combined Zobrist key, whose least-significant bit
// encodes the side to move.
func (p *Position) Key() Key {
	st := p.cur()
	return st.boardKey ^ st.handKey
}

func (p *Position) removePiece(sq types.Square) {
	pc := p.board[sq]
	p.board[sq] = types.NoPiece
	bb := bitboard.Single(sq)
	p.pieceBb[pc.Kind()] = p.pieceBb[pc.Kind()].AndNot(bb)
	p.occupancy[pc.Color()] = p.occupancy[pc.Color()].AndNot(bb)
}

func (p *Position) placePiece(sq types.Square, pc types.Piece) {
	p.board[sq] = pc
	bb := bitboard.Single(sq)
	p.pieceBb[pc.Kind()] = p.pieceBb[pc.Kind()].Or(bb)
	p.occupancy[pc.Color()] = p.occupancy[pc.Color()].Or(bb)
	if pc.Kind() == types.King {
		p.kingSquare[pc.Color()] = sq
	}
}
