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

// Package movegen generates legal moves for a position. MoveList is a
// fixed-capacity, stack-like buffer: 593 is the proven maximum number of
// legal moves in any reachable shogi position, so callers never need to
// grow or reallocate it.
package movegen

import "github.com/sugyan/yasai-sub000/types"

// MaxMoves is the proven upper bound on legal moves in any position.
const MaxMoves = 593

// MoveList is a fixed-capacity buffer of moves, filled from index 0.
type MoveList struct {
	moves [MaxMoves]types.Move
	n     int
}

// Len returns the number of moves currently held.
func (ml *MoveList) Len() int {
	return ml.n
}

// IsEmpty reports whether the list holds no moves at all — the case a
// caller uses to tell checkmate/stalemate apart from InCheck().
func (ml *MoveList) IsEmpty() bool {
	return ml.n == 0
}

// At returns the i'th move. Callers must keep 0 <= i < Len().
func (ml *MoveList) At(i int) types.Move {
	return ml.moves[i]
}

// Moves returns the held moves as a slice backed by ml's own array; it
// is invalidated by any further call to add.
func (ml *MoveList) Moves() []types.Move {
	return ml.moves[:ml.n]
}

func (ml *MoveList) add(m types.Move) {
	ml.moves[ml.n] = m
	ml.n++
}
