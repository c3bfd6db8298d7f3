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

package movegen

import (
	"github.com/sugyan/yasai-sub000/bitboard"
	"github.com/sugyan/yasai-sub000/tables"
	"github.com/sugyan/yasai-sub000/types"
)

// deadSquareMask[pk][c] marks, for the three kinds that can be stranded
// with no legal move (pawn, lance, knight), the squares a non-promoting
// move or drop of kind pk/color c may never land on.
var deadSquareMask [types.PieceKindLength][types.ColorLength]bitboard.Bitboard

func init() {
	for sq := types.Square(0); int(sq) < types.NumSquares; sq++ {
		for _, c := range [...]types.Color{types.Black, types.White} {
			rr := tables.RelativeRanks[sq][c]
			if rr == 0 {
				bb := bitboard.Single(sq)
				deadSquareMask[types.Pawn][c] = deadSquareMask[types.Pawn][c].Or(bb)
				deadSquareMask[types.Lance][c] = deadSquareMask[types.Lance][c].Or(bb)
				deadSquareMask[types.Knight][c] = deadSquareMask[types.Knight][c].Or(bb)
			}
			if rr <= 1 {
				deadSquareMask[types.Knight][c] = deadSquareMask[types.Knight][c].Or(bitboard.Single(sq))
			}
		}
	}
}

func isDeadSquare(pk types.PieceKind, to types.Square, c types.Color) bool {
	return deadSquareMask[pk][c].Contains(to)
}
