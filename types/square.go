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

package types

import "fmt"

// Square addresses one of the 81 cells of a 9x9 board. File = index/9,
// rank = index%9, both 0-based. File 0 is the "9" file in JSA notation,
// rank 0 is the "a" rank; callers only ever see the 0..80 index.
type Square int8

// SquareNone is the invalid/sentinel square.
const SquareNone Square = -1

// NumSquares is the board size.
const NumSquares = 81

// NewSquare builds a Square from a 0..8 file and 0..8 rank.
func NewSquare(file, rank int) Square {
	return Square(file*9 + rank)
}

// File returns the 0..8 file of sq.
func (sq Square) File() int {
	return int(sq) / 9
}

// Rank returns the 0..8 rank of sq.
func (sq Square) Rank() int {
	return int(sq) % 9
}

// RelativeRank returns the rank as seen by color c: rank for Black,
// 8-rank for White. Used for promotion-zone and dead-square checks.
func (sq Square) RelativeRank(c Color) int {
	if c == Black {
		return sq.Rank()
	}
	return 8 - sq.Rank()
}

// IsValid reports whether sq is one of the 81 board squares.
func (sq Square) IsValid() bool {
	return sq >= 0 && int(sq) < NumSquares
}

// Shift moves sq by (dFile, dRank), returning (SquareNone, false) if the
// result would fall off the board.
func (sq Square) Shift(dFile, dRank int) (Square, bool) {
	f := sq.File() + dFile
	r := sq.Rank() + dRank
	if f < 0 || f > 8 || r < 0 || r > 8 {
		return SquareNone, false
	}
	return NewSquare(f, r), true
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d%c", 9-sq.File(), 'a'+sq.Rank())
}
