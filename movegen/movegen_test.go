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
	"os"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/sugyan/yasai-sub000/config"
	"github.com/sugyan/yasai-sub000/internal/perft"
	myLogging "github.com/sugyan/yasai-sub000/logging"
	"github.com/sugyan/yasai-sub000/position"
	"github.com/sugyan/yasai-sub000/types"
)

var logTest *logging.Logger

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = myLogging.GetTestLog()
	logTest.Debug("movegen tests starting")
	code := m.Run()
	os.Exit(code)
}

func TestStartPositionLegalMoveCount(t *testing.T) {
	ml := Generate(position.Default())
	assert.Equal(t, 30, ml.Len())
	assert.False(t, ml.IsEmpty())
}

// results pairs perft depth with the known node count from the start
// position, the shogi analogue of the chess perft table.
var results = [...]uint64{
	0: 1,
	1: 30,
	2: 900,
	3: 25_470,
	4: 719_731,
	5: 19_861_490,
}

func TestPerftDepth5(t *testing.T) {
	pos := position.Default()
	for depth, want := range results {
		if depth == 0 || depth > 5 {
			continue
		}
		assert.Equal(t, want, perft.Count(pos, depth), "depth %d", depth)
	}
}

// maximumMovesPosition builds the position used in shogi engine test
// suites to probe the upper bound on legal moves in a single position:
// every droppable piece kind sits at its physical cap between the
// board and the two hands, leaving Black 593 legal replies.
func maximumMovesPosition(t *testing.T) *position.Position {
	var board [types.NumSquares]types.Piece
	board[types.NewSquare(0, 1)] = types.NewPiece(types.King, types.White)
	board[types.NewSquare(1, 1)] = types.NewPiece(types.Silver, types.Black)
	board[types.NewSquare(2, 1)] = types.NewPiece(types.Silver, types.Black)
	board[types.NewSquare(3, 8)] = types.NewPiece(types.Lance, types.Black)
	board[types.NewSquare(4, 1)] = types.NewPiece(types.Silver, types.Black)
	board[types.NewSquare(4, 2)] = types.NewPiece(types.Bishop, types.Black)
	board[types.NewSquare(5, 8)] = types.NewPiece(types.Lance, types.Black)
	board[types.NewSquare(6, 1)] = types.NewPiece(types.King, types.Black)
	board[types.NewSquare(7, 8)] = types.NewPiece(types.Lance, types.Black)
	board[types.NewSquare(8, 0)] = types.NewPiece(types.Rook, types.Black)

	var hands [types.ColorLength]types.Hand
	for _, kind := range types.DroppableKinds {
		hands[types.Black].Increment(kind)
	}
	for i := 0; i < 17; i++ {
		hands[types.White].Increment(types.Pawn)
	}
	for i := 0; i < 3; i++ {
		hands[types.White].Increment(types.Knight)
		hands[types.White].Increment(types.Gold)
	}

	pos, err := position.New(board, hands, types.Black, 0)
	assert.NoError(t, err)
	return pos
}

func TestMaximumMovesPosition(t *testing.T) {
	pos := maximumMovesPosition(t)
	ml := Generate(pos)
	assert.Equal(t, 593, ml.Len())
	assert.Equal(t, uint64(53_393_368), perft.Count(pos, 3))
}

// uchifuzumeFixture places a White king boxed into a corner by its own
// knight and silver, neither of which can reach the drop square at
// (file=0, rank=1), with a Black gold defending that square and no
// undefended escape: dropping a Black pawn there is the prohibited
// drop-pawn mate. extraGold, if true, adds a White gold that can
// capture the dropped pawn, which turns the drop from prohibited into
// an ordinary legal check.
func uchifuzumeFixture(t *testing.T, extraGold bool) *position.Position {
	var board [types.NumSquares]types.Piece
	board[types.NewSquare(0, 0)] = types.NewPiece(types.King, types.White)
	board[types.NewSquare(1, 0)] = types.NewPiece(types.Knight, types.White)
	board[types.NewSquare(1, 1)] = types.NewPiece(types.Silver, types.White)
	board[types.NewSquare(1, 2)] = types.NewPiece(types.Gold, types.Black)
	board[types.NewSquare(8, 8)] = types.NewPiece(types.King, types.Black)
	if extraGold {
		board[types.NewSquare(0, 2)] = types.NewPiece(types.Gold, types.White)
	}

	var hands [types.ColorLength]types.Hand
	hands[types.Black].Increment(types.Pawn)

	pos, err := position.New(board, hands, types.Black, 0)
	assert.NoError(t, err)
	return pos
}

func TestUchifuzume(t *testing.T) {
	mated := uchifuzumeFixture(t, false)
	assert.True(t, isUchifuzume(mated, types.Black, types.NewSquare(0, 1)))

	defended := uchifuzumeFixture(t, true)
	assert.False(t, isUchifuzume(defended, types.Black, types.NewSquare(0, 1)))
}

func TestGenerateEvasionsWhenInCheck(t *testing.T) {
	var board [types.NumSquares]types.Piece
	board[types.NewSquare(4, 4)] = types.NewPiece(types.King, types.Black)
	board[types.NewSquare(4, 0)] = types.NewPiece(types.King, types.White)
	board[types.NewSquare(4, 3)] = types.NewPiece(types.Rook, types.White)

	pos, err := position.New(board, [types.ColorLength]types.Hand{}, types.Black, 0)
	assert.NoError(t, err)
	assert.True(t, pos.InCheck())

	ml := Generate(pos)
	assert.False(t, ml.IsEmpty())
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		pos.DoMove(m)
		attackers := pos.AttackersTo(types.White, pos.King(types.Black), pos.Occupied())
		assert.True(t, attackers.IsEmpty(), "move %s must resolve the check on black's king", m)
		pos.UndoMove(m)
	}
}
