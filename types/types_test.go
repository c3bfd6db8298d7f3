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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFlip(t *testing.T) {
	assert.Equal(t, White, Black.Flip())
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, Black, Black.Flip().Flip())
}

func TestSquareFileRank(t *testing.T) {
	sq := NewSquare(3, 5)
	assert.Equal(t, 3, sq.File())
	assert.Equal(t, 5, sq.Rank())
	assert.True(t, sq.IsValid())
	assert.False(t, SquareNone.IsValid())
}

func TestSquareRelativeRank(t *testing.T) {
	sq := NewSquare(4, 2)
	assert.Equal(t, 2, sq.RelativeRank(Black))
	assert.Equal(t, 6, sq.RelativeRank(White))
}

func TestSquareShift(t *testing.T) {
	sq := NewSquare(0, 0)
	if _, ok := sq.Shift(-1, 0); ok {
		t.Fatal("shift off the left edge should fail")
	}
	next, ok := sq.Shift(1, 1)
	assert.True(t, ok)
	assert.Equal(t, NewSquare(1, 1), next)
}

func TestPieceKindPromote(t *testing.T) {
	pro, ok := Pawn.Promote()
	assert.True(t, ok)
	assert.Equal(t, ProPawn, pro)
	assert.Equal(t, Pawn, pro.Unpromote())

	_, ok = Gold.Promote()
	assert.False(t, ok)
	_, ok = King.Promote()
	assert.False(t, ok)
}

func TestPieceKindHandIndex(t *testing.T) {
	assert.Equal(t, 0, Pawn.HandIndex())
	assert.Equal(t, 6, Rook.HandIndex())
	// a promoted kind returns to hand under its unpromoted slot.
	assert.Equal(t, Rook.HandIndex(), ProRook.HandIndex())
}

func TestNewPieceRoundTrip(t *testing.T) {
	for _, c := range [...]Color{Black, White} {
		for pk := PieceKind(0); pk < PieceKindLength; pk++ {
			p := NewPiece(pk, c)
			assert.Equal(t, pk, p.Kind())
			assert.Equal(t, c, p.Color())
			assert.False(t, p.IsEmpty())
		}
	}
	assert.True(t, NoPiece.IsEmpty())
}

func TestHandIncrementDecrement(t *testing.T) {
	var h Hand
	assert.True(t, h.IsEmpty())
	h.Increment(Pawn)
	h.Increment(Pawn)
	h.Increment(Rook)
	assert.Equal(t, uint8(2), h.Count(Pawn))
	assert.Equal(t, uint8(1), h.Count(Rook))
	assert.False(t, h.IsEmpty())
	h.Decrement(Pawn)
	assert.Equal(t, uint8(1), h.Count(Pawn))

	counts := h.Counts()
	assert.Len(t, counts, 2)
}

func TestMoveNormalRoundTrip(t *testing.T) {
	from := NewSquare(2, 3)
	to := NewSquare(2, 2)
	m := NewNormalMove(from, to, Pawn, true)
	assert.False(t, m.IsDrop())
	assert.True(t, m.IsPromotion())
	assert.Equal(t, from, m.From())
	assert.Equal(t, to, m.To())
	assert.Equal(t, Pawn, m.PieceKind())
}

func TestMoveDropRoundTrip(t *testing.T) {
	to := NewSquare(4, 4)
	m := NewDropMove(to, Rook)
	assert.True(t, m.IsDrop())
	assert.False(t, m.IsPromotion())
	assert.Equal(t, to, m.To())
	assert.Equal(t, Rook, m.PieceKind())
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "none", MoveNone.String())
	m := NewDropMove(NewSquare(0, 0), Pawn)
	assert.Contains(t, m.String(), "*")
}
