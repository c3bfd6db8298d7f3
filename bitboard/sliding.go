//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package bitboard

import "github.com/sugyan/yasai-sub000/types"

// cumulativeLE[i] / cumulativeGE[i] hold, for every square index i, the
// set of valid squares with index <= i / >= i respectively. They turn
// the trailing/leading-zero-count sliding-attack trick into a single
// table lookup: the reachable half of a ray mask up to (and including)
// the first blocker is just the mask intersected with the cumulative
// set ending at the blocker.
var cumulativeLE [types.NumSquares]Bitboard
var cumulativeGE [types.NumSquares]Bitboard

func init() {
	var acc Bitboard
	for i := 0; i < types.NumSquares; i++ {
		acc = acc.Or(Single(types.Square(i)))
		cumulativeLE[i] = acc
	}
	acc = Empty
	for i := types.NumSquares - 1; i >= 0; i-- {
		acc = acc.Or(Single(types.Square(i)))
		cumulativeGE[i] = acc
	}
}

// SlidingPositive implements the spec's sliding_positive primitive:
// given an occupancy and a ray mask, the squares along the mask reachable
// moving toward higher square indices, including the first blocker.
func SlidingPositive(occ, mask Bitboard) Bitboard {
	m := occ.And(mask)
	if m.IsEmpty() {
		return mask
	}
	blocker, _ := m.LowestSquare()
	return mask.And(cumulativeLE[blocker])
}

// SlidingNegative is the symmetric primitive for decreasing indices.
func SlidingNegative(occ, mask Bitboard) Bitboard {
	m := occ.And(mask)
	if m.IsEmpty() {
		return mask
	}
	blocker, _ := m.HighestSquare()
	return mask.And(cumulativeGE[blocker])
}

// SlidingPositives unions SlidingPositive over two ray masks — used by
// the bishop/rook attack tables, whose rays are grouped into a
// "positive" pair and a "negative" pair of directions.
func SlidingPositives(occ Bitboard, masks [2]Bitboard) Bitboard {
	return SlidingPositive(occ, masks[0]).Or(SlidingPositive(occ, masks[1]))
}

// SlidingNegatives is the symmetric union for the negative-direction pair.
func SlidingNegatives(occ Bitboard, masks [2]Bitboard) Bitboard {
	return SlidingNegative(occ, masks[0]).Or(SlidingNegative(occ, masks[1]))
}

// VacantFiles returns a bitboard with every square of a file set iff
// that file contains no occupied square in occ. Used by the pawn-drop
// nifu check (inverted: FilledFiles marks files already holding a pawn).
func VacantFiles(occ Bitboard, files [10]Bitboard) Bitboard {
	var out Bitboard
	for f := 1; f <= 9; f++ {
		if occ.And(files[f]).IsEmpty() {
			out = out.Or(files[f])
		}
	}
	return out
}

// FilledFiles is the complement operation to VacantFiles: the union of
// every file that contains at least one occupied square.
func FilledFiles(occ Bitboard, files [10]Bitboard) Bitboard {
	var out Bitboard
	for f := 1; f <= 9; f++ {
		if !occ.And(files[f]).IsEmpty() {
			out = out.Or(files[f])
		}
	}
	return out
}
