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

// Package tables holds every precomputed, index-keyed geometry and attack
// table the engine needs: file/rank masks, the promotable-zone predicate,
// the in-between-squares table, and per-piece attack tables. Everything
// here is built once at package init and is read-only afterward, so it is
// safe to share across goroutines without synchronization.
package tables

import (
	"github.com/sugyan/yasai-sub000/bitboard"
	"github.com/sugyan/yasai-sub000/types"
)

// Files holds, for f in 1..9, the bitboard of every square on file f.
// Files[0] is an empty sentinel so that file numbers can be used
// directly as indices.
var Files [10]bitboard.Bitboard

// Ranks is the rank analogue of Files.
var Ranks [10]bitboard.Bitboard

// RelativeRanks[sq][c] is the rank of sq as seen by color c (0..8).
var RelativeRanks [types.NumSquares][types.ColorLength]int

// Promotable[sq][c] reports whether a piece of color c promotes on
// entering, leaving, or moving within sq.
var Promotable [types.NumSquares][types.ColorLength]bool

// Between[a][b] is the bitboard of squares strictly between a and b when
// they are colinear along one of the 8 compass directions; empty
// otherwise. Always excludes b.
var Between [types.NumSquares][types.NumSquares]bitboard.Bitboard

// delta is a (file, rank) step.
type delta struct{ file, rank int }

var (
	deltaN  = delta{0, -1}
	deltaE  = delta{-1, 0}
	deltaS  = delta{0, 1}
	deltaW  = delta{1, 0}
	deltaNE = delta{-1, -1}
	deltaSE = delta{-1, 1}
	deltaSW = delta{1, 1}
	deltaNW = delta{1, -1}

	deltaNNE = delta{-1, -2}
	deltaNNW = delta{1, -2}
	deltaSSE = delta{-1, 2}
	deltaSSW = delta{1, 2}
)

// mirror flips a Black delta into the equivalent White delta: files are
// unaffected, ranks invert, since the two colors face each other across
// the rank axis only.
func (d delta) mirror() delta {
	return delta{d.file, -d.rank}
}

// slidingAttack walks from sq in direction d until the edge of the board
// or the first square already in occ, which it includes before stopping.
// With occ empty this produces the pseudo-attack ray mask used to seed
// the direction-group tables.
func slidingAttack(sq types.Square, occ bitboard.Bitboard, d delta) bitboard.Bitboard {
	result := bitboard.Empty
	cur := sq
	for {
		next, ok := cur.Shift(d.file, d.rank)
		if !ok {
			break
		}
		result = result.Or(bitboard.Single(next))
		if occ.Contains(next) {
			break
		}
		cur = next
	}
	return result
}

func init() {
	for f := 1; f <= 9; f++ {
		for r := 0; r < 9; r++ {
			Files[f] = Files[f].Or(bitboard.Single(types.NewSquare(f-1, r)))
		}
	}
	for r := 1; r <= 9; r++ {
		for f := 0; f < 9; f++ {
			Ranks[r] = Ranks[r].Or(bitboard.Single(types.NewSquare(f, r-1)))
		}
	}

	for sq := types.Square(0); int(sq) < types.NumSquares; sq++ {
		for _, c := range [...]types.Color{types.Black, types.White} {
			RelativeRanks[sq][c] = sq.RelativeRank(c)
			Promotable[sq][c] = RelativeRanks[sq][c] <= 2
		}
	}

	initBetween()
}

func initBetween() {
	for a := types.Square(0); int(a) < types.NumSquares; a++ {
		for b := types.Square(0); int(b) < types.NumSquares; b++ {
			if a == b {
				continue
			}
			df := b.File() - a.File()
			dr := b.Rank() - a.Rank()
			if !(df == 0 || dr == 0 || abs(df) == abs(dr)) {
				continue
			}
			d := directionTo(df, dr)
			Between[a][b] = slidingAttack(a, bitboard.Single(b), d).AndNot(bitboard.Single(b))
		}
	}
}

func directionTo(df, dr int) delta {
	switch {
	case df == 0 && dr < 0:
		return deltaN
	case df == 0 && dr > 0:
		return deltaS
	case dr == 0 && df < 0:
		return deltaE
	case dr == 0 && df > 0:
		return deltaW
	case df < 0 && dr < 0:
		return deltaNE
	case df < 0 && dr > 0:
		return deltaSE
	case df > 0 && dr > 0:
		return deltaSW
	default:
		return deltaNW
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
