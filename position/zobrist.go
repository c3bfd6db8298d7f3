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

import "github.com/sugyan/yasai-sub000/types"

// zobristSeed is the fixed seed for the key tables, so that keys are
// reproducible across runs and processes. Chosen to match the value
// the reference implementation this package was modeled on uses.
const zobristSeed uint64 = 2022

var boardKeyTable [types.NumSquares][types.ColorLength][types.PieceKindLength]Key
var handKeyTable [types.ColorLength][types.NumHandKinds][types.MaxHandCount]Key

// colorKey is XORed into the board key half on every move to flip the
// side-to-move bit carried in the exported key's LSB.
const colorKey Key = 1

func init() {
	initZobrist()
}

func initZobrist() {
	r := NewRandom(zobristSeed)
	for sq := types.Square(0); int(sq) < types.NumSquares; sq++ {
		for c := types.Color(0); c < types.ColorLength; c++ {
			for pk := types.PieceKind(0); pk < types.PieceKindLength; pk++ {
				boardKeyTable[sq][c][pk] = Key(r.Rand64()) &^ 1
			}
		}
	}
	for c := types.Color(0); c < types.ColorLength; c++ {
		for hk := 0; hk < types.NumHandKinds; hk++ {
			for n := 0; n < types.MaxHandCount; n++ {
				handKeyTable[c][hk][n] = Key(r.Rand64()) &^ 1
			}
		}
	}
}

func zobristBoard(sq types.Square, c types.Color, pk types.PieceKind) Key {
	return boardKeyTable[sq][c][pk]
}

func zobristHand(c types.Color, pk types.PieceKind, count uint8) Key {
	return handKeyTable[c][pk.HandIndex()][count]
}
