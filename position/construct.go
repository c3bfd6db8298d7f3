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

// New builds a Position from an explicit board and hands, validating
// piece-count invariants and requiring exactly one king per color. Use
// FromBoard for the relaxed test-fixture variant.
func New(board [types.NumSquares]types.Piece, hands [types.ColorLength]types.Hand, stm types.Color, ply int) (*Position, error) {
	if err := validate(board, hands, true); err != nil {
		return nil, err
	}
	return build(board, hands, stm, ply), nil
}

// FromBoard builds a Position the same way New does, but optionally
// accepts a board missing one side's king. This supports literal
// board-literal test fixtures (uchifuzume scenarios in particular)
// that describe only the pieces relevant to the check being tested;
// see the Open Question resolution in DESIGN.md.
func FromBoard(board [types.NumSquares]types.Piece, hands [types.ColorLength]types.Hand, stm types.Color, ply int, allowMissingKing bool) (*Position, error) {
	if err := validate(board, hands, !allowMissingKing); err != nil {
		return nil, err
	}
	return build(board, hands, stm, ply), nil
}

// Default returns the standard shogi starting position.
func Default() *Position {
	var board [types.NumSquares]types.Piece
	backRow := [9]types.PieceKind{
		types.Lance, types.Knight, types.Silver, types.Gold, types.King,
		types.Gold, types.Silver, types.Knight, types.Lance,
	}
	for f := 0; f < 9; f++ {
		board[types.NewSquare(f, 0)] = types.NewPiece(backRow[f], types.White)
		board[types.NewSquare(f, 8)] = types.NewPiece(backRow[f], types.Black)
		board[types.NewSquare(f, 2)] = types.NewPiece(types.Pawn, types.White)
		board[types.NewSquare(f, 6)] = types.NewPiece(types.Pawn, types.Black)
	}
	board[types.NewSquare(1, 1)] = types.NewPiece(types.Rook, types.White)
	board[types.NewSquare(7, 1)] = types.NewPiece(types.Bishop, types.White)
	board[types.NewSquare(7, 7)] = types.NewPiece(types.Rook, types.Black)
	board[types.NewSquare(1, 7)] = types.NewPiece(types.Bishop, types.Black)

	p, err := New(board, [types.ColorLength]types.Hand{}, types.Black, 0)
	if err != nil {
		panic("default position failed validation: " + err.Error())
	}
	return p
}

func validate(board [types.NumSquares]types.Piece, hands [types.ColorLength]types.Hand, requireBothKings bool) error {
	var handIndexCounts [types.NumHandKinds]int
	var kingCount [types.ColorLength]int

	for _, pc := range board {
		if pc.IsEmpty() {
			continue
		}
		if pc.Kind() == types.King {
			kingCount[pc.Color()]++
			continue
		}
		handIndexCounts[pc.Kind().HandIndex()]++
	}
	for _, c := range [...]types.Color{types.Black, types.White} {
		for _, kind := range types.DroppableKinds {
			handIndexCounts[kind.HandIndex()] += int(hands[c].Count(kind))
		}
	}
	for _, kind := range types.DroppableKinds {
		idx := kind.HandIndex()
		if handIndexCounts[idx] > int(kind.MaxCount()) {
			return newConstructionError("too many %s: %d exceeds the physical set of %d", kind, handIndexCounts[idx], kind.MaxCount())
		}
	}

	if requireBothKings {
		if kingCount[types.Black] != 1 || kingCount[types.White] != 1 {
			return newConstructionError("expected exactly one king per color, got black=%d white=%d", kingCount[types.Black], kingCount[types.White])
		}
	} else if kingCount[types.Black] > 1 || kingCount[types.White] > 1 {
		return newConstructionError("duplicate king for a color")
	}
	return nil
}

func build(board [types.NumSquares]types.Piece, hands [types.ColorLength]types.Hand, stm types.Color, ply int) *Position {
	p := &Position{hands: hands, sideToMove: stm, ply: ply, kingSquare: [types.ColorLength]types.Square{types.SquareNone, types.SquareNone}}
	for sq := types.Square(0); int(sq) < types.NumSquares; sq++ {
		if pc := board[sq]; !pc.IsEmpty() {
			p.placePiece(sq, pc)
		}
	}

	var boardKey, handKey Key
	for sq := types.Square(0); int(sq) < types.NumSquares; sq++ {
		if pc := p.board[sq]; !pc.IsEmpty() {
			boardKey ^= zobristBoard(sq, pc.Color(), pc.Kind())
		}
	}
	for _, c := range [...]types.Color{types.Black, types.White} {
		for _, kind := range types.DroppableKinds {
			handKey ^= zobristHand(c, kind, hands[c].Count(kind))
		}
	}
	if stm == types.White {
		boardKey ^= colorKey
	}

	p.history = []state{{boardKey: boardKey, handKey: handKey}}
	p.refresh(&p.history[0])
	return p
}
