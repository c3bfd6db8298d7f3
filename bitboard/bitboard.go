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

// Package bitboard implements the 81-square occupancy set used throughout
// the engine: a 128-bit value split into two 64-bit lanes, lane 0 holding
// squares 0..62 and lane 1 holding squares 63..80 (bit i of lane 1 is
// square 63+i). One bit of lane 0 is left unused so that the two lanes
// pack contiguously into an 81-bit logical index space; that spare bit
// is what lets the one-square forward/backward shift used by the
// collective pawn-move generator carry cleanly across the lane boundary.
package bitboard

import (
	"math/bits"

	"github.com/sugyan/yasai-sub000/types"
)

// Bitboard is a set of squares. The zero value is the empty set.
type Bitboard struct {
	Lo uint64 // squares 0..62
	Hi uint64 // squares 63..80, bit i = square 63+i
}

const (
	loBits = 63
	hiBits = types.NumSquares - loBits // 18

	loValid uint64 = 1<<loBits - 1
	hiValid uint64 = 1<<hiBits - 1
)

// Empty is the empty bitboard.
var Empty = Bitboard{}

// Single returns the bitboard containing only sq.
func Single(sq types.Square) Bitboard {
	if int(sq) < loBits {
		return Bitboard{Lo: 1 << uint(sq)}
	}
	return Bitboard{Hi: 1 << uint(int(sq)-loBits)}
}

// IsEmpty reports whether the set has no squares.
func (b Bitboard) IsEmpty() bool {
	return b.Lo == 0 && b.Hi == 0
}

// Contains reports whether sq is a member of b.
func (b Bitboard) Contains(sq types.Square) bool {
	return !b.And(Single(sq)).IsEmpty()
}

// Count returns the population count across both lanes.
func (b Bitboard) Count() int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// And returns the intersection of b and o.
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b.Lo & o.Lo, b.Hi & o.Hi}
}

// Or returns the union of b and o.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b.Lo | o.Lo, b.Hi | o.Hi}
}

// Xor returns the symmetric difference of b and o.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{b.Lo ^ o.Lo, b.Hi ^ o.Hi}
}

// Not returns the complement of b within the 81 valid squares.
func (b Bitboard) Not() Bitboard {
	return Bitboard{^b.Lo & loValid, ^b.Hi & hiValid}
}

// AndNot returns b with the squares of o removed.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{b.Lo &^ o.Lo, b.Hi &^ o.Hi}
}

// Equals reports whether b and o contain exactly the same squares.
func (b Bitboard) Equals(o Bitboard) bool {
	return b.Lo == o.Lo && b.Hi == o.Hi
}

// LowestSquare returns the lowest-index square in b, and false if b is
// empty.
func (b Bitboard) LowestSquare() (types.Square, bool) {
	if b.Lo != 0 {
		return types.Square(bits.TrailingZeros64(b.Lo)), true
	}
	if b.Hi != 0 {
		return types.Square(loBits + bits.TrailingZeros64(b.Hi)), true
	}
	return types.SquareNone, false
}

// HighestSquare returns the highest-index square in b, and false if b is
// empty.
func (b Bitboard) HighestSquare() (types.Square, bool) {
	if b.Hi != 0 {
		return types.Square(loBits + bits.Len64(b.Hi) - 1), true
	}
	if b.Lo != 0 {
		return types.Square(bits.Len64(b.Lo) - 1), true
	}
	return types.SquareNone, false
}

// PopLSB removes and returns the lowest-index square in b, mutating b in
// place. Returns false once b is empty.
func (b *Bitboard) PopLSB() (types.Square, bool) {
	sq, ok := b.LowestSquare()
	if !ok {
		return types.SquareNone, false
	}
	*b = b.AndNot(Single(sq))
	return sq, true
}

// Squares returns the member squares in ascending order, without
// mutating b. Prefer PopLSB in hot loops to avoid the allocation here.
func (b Bitboard) Squares() []types.Square {
	out := make([]types.Square, 0, b.Count())
	tmp := b
	for {
		sq, ok := tmp.PopLSB()
		if !ok {
			break
		}
		out = append(out, sq)
	}
	return out
}

// shiftIndexUp moves every square to the next higher index (index+1),
// dropping any square that would fall past 80.
func (b Bitboard) shiftIndexUp() Bitboard {
	newHi := (b.Hi<<1 | b.Lo>>62) & hiValid
	newLo := (b.Lo << 1) & loValid
	return Bitboard{newLo, newHi}
}

// shiftIndexDown moves every square to the next lower index (index-1),
// dropping any square that would fall below 0.
func (b Bitboard) shiftIndexDown() Bitboard {
	newLo := (b.Lo>>1 | (b.Hi&1)<<62) & loValid
	newHi := (b.Hi >> 1) & hiValid
	return Bitboard{newLo, newHi}
}

// ShiftForward shifts every square one step in color c's forward
// direction (index-1 for Black, index+1 for White). Used by the
// collective pawn-move generator. Squares on the file boundary never
// need special masking here because no legal pawn ever rests on its own
// last rank (it is forced to promote on arrival).
func (b Bitboard) ShiftForward(c types.Color) Bitboard {
	if c == types.Black {
		return b.shiftIndexDown()
	}
	return b.shiftIndexUp()
}
