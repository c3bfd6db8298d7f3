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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sugyan/yasai-sub000/types"
)

func TestEmptyAndSingle(t *testing.T) {
	assert.True(t, Empty.IsEmpty())
	assert.Equal(t, 0, Empty.Count())

	for sq := types.Square(0); int(sq) < types.NumSquares; sq++ {
		b := Single(sq)
		assert.Equal(t, 1, b.Count())
		assert.True(t, b.Contains(sq))
	}
}

func TestBitwiseOps(t *testing.T) {
	a := Single(types.Square(0)).Or(Single(types.Square(1)))
	b := Single(types.Square(1)).Or(Single(types.Square(2)))

	assert.True(t, a.And(b).Equals(Single(types.Square(1))))
	assert.Equal(t, 3, a.Or(b).Count())
	assert.True(t, a.Xor(b).Equals(Single(types.Square(0)).Or(Single(types.Square(2)))))
	assert.True(t, a.AndNot(b).Equals(Single(types.Square(0))))
}

func TestNotStaysWithinValidSquares(t *testing.T) {
	full := Empty.Not()
	assert.Equal(t, types.NumSquares, full.Count())
	for sq := types.Square(0); int(sq) < types.NumSquares; sq++ {
		assert.True(t, full.Contains(sq))
	}
	assert.True(t, full.Not().IsEmpty())
}

func TestLowestHighestAndPopLSB(t *testing.T) {
	b := Single(types.Square(5)).Or(Single(types.Square(62))).Or(Single(types.Square(63))).Or(Single(types.Square(80)))

	lo, ok := b.LowestSquare()
	assert.True(t, ok)
	assert.Equal(t, types.Square(5), lo)

	hi, ok := b.HighestSquare()
	assert.True(t, ok)
	assert.Equal(t, types.Square(80), hi)

	count := 0
	for !b.IsEmpty() {
		_, popped := b.PopLSB()
		assert.True(t, popped)
		count++
	}
	assert.Equal(t, 4, count)
	_, popped := b.PopLSB()
	assert.False(t, popped)
}

func TestSquaresOrder(t *testing.T) {
	b := Single(types.Square(63)).Or(Single(types.Square(0))).Or(Single(types.Square(40)))
	squares := b.Squares()
	assert.Equal(t, []types.Square{0, 40, 63}, squares)
}

func TestShiftForwardCrossesLaneBoundary(t *testing.T) {
	// Square 62 is the top bit of the low lane; shifting a White pawn
	// forward (index+1) must land it in the high lane at square 63.
	b := Single(types.Square(62))
	assert.True(t, b.ShiftForward(types.White).Equals(Single(types.Square(63))))
	// Symmetric check crossing back down for Black.
	b2 := Single(types.Square(63))
	assert.True(t, b2.ShiftForward(types.Black).Equals(Single(types.Square(62))))
}

func TestShiftForwardDropsOffBoard(t *testing.T) {
	b := Single(types.Square(80))
	assert.True(t, b.ShiftForward(types.White).IsEmpty())
	b2 := Single(types.Square(0))
	assert.True(t, b2.ShiftForward(types.Black).IsEmpty())
}

func TestSlidingPositiveAndNegative(t *testing.T) {
	mask := Single(types.Square(10)).Or(Single(types.Square(20))).Or(Single(types.Square(30))).Or(Single(types.Square(40)))

	// No occupancy: sliding returns the whole mask either direction.
	assert.True(t, SlidingPositive(Empty, mask).Equals(mask))
	assert.True(t, SlidingNegative(Empty, mask).Equals(mask))

	occ := Single(types.Square(20))
	positive := SlidingPositive(occ, mask)
	assert.True(t, positive.Equals(Single(types.Square(10)).Or(Single(types.Square(20)))))

	negative := SlidingNegative(occ, mask)
	assert.True(t, negative.Equals(Single(types.Square(20)).Or(Single(types.Square(30))).Or(Single(types.Square(40)))))
}

func TestVacantAndFilledFiles(t *testing.T) {
	var files [10]Bitboard
	files[1] = Single(types.Square(0)).Or(Single(types.Square(1)))
	files[2] = Single(types.Square(9)).Or(Single(types.Square(10)))

	occ := Single(types.Square(0))
	filled := FilledFiles(occ, files)
	assert.True(t, filled.Equals(files[1]))

	vacant := VacantFiles(occ, files)
	assert.True(t, vacant.Equals(files[2]))
}
