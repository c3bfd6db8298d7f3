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

package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sugyan/yasai-sub000/bitboard"
	"github.com/sugyan/yasai-sub000/types"
)

func TestFilesAndRanksPartitionTheBoard(t *testing.T) {
	var union bitboard.Bitboard
	for f := 1; f <= 9; f++ {
		assert.Equal(t, 9, Files[f].Count())
		union = union.Or(Files[f])
	}
	assert.Equal(t, types.NumSquares, union.Count())
	assert.True(t, Files[0].IsEmpty())

	union = bitboard.Empty
	for r := 1; r <= 9; r++ {
		assert.Equal(t, 9, Ranks[r].Count())
		union = union.Or(Ranks[r])
	}
	assert.Equal(t, types.NumSquares, union.Count())
}

func TestPromotableMatchesRelativeRank(t *testing.T) {
	for sq := types.Square(0); int(sq) < types.NumSquares; sq++ {
		for _, c := range [...]types.Color{types.Black, types.White} {
			want := RelativeRanks[sq][c] <= 2
			assert.Equal(t, want, Promotable[sq][c])
		}
	}
}

func TestBetweenExcludesEndpointAndIsEmptyOffLine(t *testing.T) {
	a := types.NewSquare(0, 0)
	b := types.NewSquare(0, 4)
	between := Between[a][b]
	assert.False(t, between.Contains(b))
	assert.Equal(t, 3, between.Count())
	assert.True(t, between.Contains(types.NewSquare(0, 2)))

	// A knight-shaped offset is not colinear; Between must be empty.
	c := types.NewSquare(1, 2)
	assert.True(t, Between[a][c].IsEmpty())
}

func TestPawnStepperIsForwardOnly(t *testing.T) {
	sq := types.NewSquare(4, 4)
	blackAttack := Attack(types.Pawn, sq, types.Black, bitboard.Empty)
	assert.True(t, blackAttack.Equals(bitboard.Single(types.NewSquare(4, 3))))

	whiteAttack := Attack(types.Pawn, sq, types.White, bitboard.Empty)
	assert.True(t, whiteAttack.Equals(bitboard.Single(types.NewSquare(4, 5))))
}

func TestKingAttacksAllEightNeighbours(t *testing.T) {
	sq := types.NewSquare(4, 4)
	attack := Attack(types.King, sq, types.Black, bitboard.Empty)
	assert.Equal(t, 8, attack.Count())

	corner := types.NewSquare(0, 0)
	assert.Equal(t, 3, Attack(types.King, corner, types.Black, bitboard.Empty).Count())
}

func TestRookAttackStopsAtFirstBlocker(t *testing.T) {
	sq := types.NewSquare(4, 4)
	occ := bitboard.Single(types.NewSquare(4, 6))
	attack := rookAttack(sq, occ)
	assert.True(t, attack.Contains(types.NewSquare(4, 6)))
	assert.False(t, attack.Contains(types.NewSquare(4, 7)))
	assert.True(t, attack.Contains(types.NewSquare(4, 0)))
}

func TestBishopAttackStopsAtFirstBlocker(t *testing.T) {
	sq := types.NewSquare(4, 4)
	occ := bitboard.Single(types.NewSquare(6, 6))
	attack := bishopAttack(sq, occ)
	assert.True(t, attack.Contains(types.NewSquare(6, 6)))
	assert.False(t, attack.Contains(types.NewSquare(7, 7)))
}

func TestLanceAttackIsColorDependent(t *testing.T) {
	sq := types.NewSquare(4, 4)
	blackAttack := Attack(types.Lance, sq, types.Black, bitboard.Empty)
	for _, s := range blackAttack.Squares() {
		assert.Less(t, int(s.Rank()), 4)
	}
	whiteAttack := Attack(types.Lance, sq, types.White, bitboard.Empty)
	for _, s := range whiteAttack.Squares() {
		assert.Greater(t, int(s.Rank()), 4)
	}
}

func TestPromotedSlidersAddKingStep(t *testing.T) {
	sq := types.NewSquare(4, 4)
	rookPlain := Attack(types.Rook, sq, types.Black, bitboard.Empty)
	rookPromoted := Attack(types.ProRook, sq, types.Black, bitboard.Empty)
	assert.True(t, rookPromoted.Contains(types.NewSquare(5, 5)))
	assert.False(t, rookPlain.Contains(types.NewSquare(5, 5)))
}

func TestGoldLikePromotedKindsShareTheGoldTable(t *testing.T) {
	sq := types.NewSquare(4, 4)
	gold := Attack(types.Gold, sq, types.Black, bitboard.Empty)
	for _, pk := range [...]types.PieceKind{types.ProPawn, types.ProLance, types.ProKnight, types.ProSilver} {
		assert.True(t, Attack(pk, sq, types.Black, bitboard.Empty).Equals(gold))
	}
}

func TestPseudoAttackIgnoresOccupancy(t *testing.T) {
	sq := types.NewSquare(4, 4)
	occ := bitboard.Single(types.NewSquare(4, 6))
	assert.True(t, PseudoAttack(types.Rook, sq, types.Black).Contains(types.NewSquare(4, 8)))
	assert.False(t, Attack(types.Rook, sq, types.Black, occ).Contains(types.NewSquare(4, 8)))
}
