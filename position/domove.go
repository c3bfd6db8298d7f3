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

package position

import (
	"github.com/sugyan/yasai-sub000/assert"
	"github.com/sugyan/yasai-sub000/types"
)

// DoMove applies m, which the caller guarantees came from legal_moves()
// run against this exact position. Every mutation (board, bitboards,
// hands, keys, history) either all happen or, on a contract violation
// in a debug build, assert.Assert panics before any of them do for a
// drop; a normal move is not checked, and a misuse leaves the position
// corrupted, matching the "never recovered internally" contract.
func (p *Position) DoMove(m types.Move) {
	mover := p.sideToMove
	prev := p.cur()
	boardKey := prev.boardKey
	handKey := prev.handKey

	var captured types.Piece = types.NoPiece
	toSq := m.To()

	if m.IsDrop() {
		pk := m.PieceKind()
		before := p.hands[mover].Count(pk)
		if assert.DEBUG {
			assert.Assert(before > 0, "drop of %s with empty hand", pk)
		}
		p.hands[mover].Decrement(pk)
		handKey ^= zobristHand(mover, pk, before) ^ zobristHand(mover, pk, before-1)

		p.placePiece(toSq, types.NewPiece(pk, mover))
		boardKey ^= zobristBoard(toSq, mover, pk)
	} else {
		from := m.From()
		pk := m.PieceKind()

		boardKey ^= zobristBoard(from, mover, pk)
		p.removePiece(from)

		if existing := p.board[toSq]; !existing.IsEmpty() {
			captured = existing
			boardKey ^= zobristBoard(toSq, existing.Color(), existing.Kind())
			p.removePiece(toSq)

			capKind := existing.Kind().Unpromote()
			before := p.hands[mover].Count(capKind)
			p.hands[mover].Increment(capKind)
			handKey ^= zobristHand(mover, capKind, before) ^ zobristHand(mover, capKind, before+1)
		}

		placedKind := pk
		if m.IsPromotion() {
			if promoted, ok := pk.Promote(); ok {
				placedKind = promoted
			}
		}
		p.placePiece(toSq, types.NewPiece(placedKind, mover))
		boardKey ^= zobristBoard(toSq, mover, placedKind)
	}

	boardKey ^= colorKey
	p.sideToMove = mover.Flip()
	p.ply++

	p.history = append(p.history, state{
		boardKey: boardKey,
		handKey:  handKey,
		move:     m,
		captured: captured,
	})
	p.refresh(&p.history[len(p.history)-1])
}

// UndoMove reverses the most recently applied move, which must be
// exactly m. It is a programming error to undo any other move or to
// call UndoMove on the initial position; assert.Assert catches this in
// debug builds only.
func (p *Position) UndoMove(m types.Move) {
	if assert.DEBUG {
		assert.Assert(len(p.history) > 1, "undo on initial position")
		assert.Assert(p.cur().move == m, "undo of %s does not match last move %s", m, p.cur().move)
	}

	mover := p.sideToMove.Flip()
	st := p.cur()
	toSq := m.To()

	p.removePiece(toSq)

	if m.IsDrop() {
		p.hands[mover].Increment(m.PieceKind())
	} else {
		from := m.From()
		p.placePiece(from, types.NewPiece(m.PieceKind(), mover))

		if !st.captured.IsEmpty() {
			p.placePiece(toSq, st.captured)
			capKind := st.captured.Kind().Unpromote()
			p.hands[mover].Decrement(capKind)
		}
	}

	p.sideToMove = mover
	p.ply--
	p.history = p.history[:len(p.history)-1]
}
