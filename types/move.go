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

// Move is a 32-bit encoding of either a normal move (from, to, promote?,
// moved piece) or a drop (to, dropped piece kind).
//
//  BITMAP 32-bit
//  |unused------|1|1|--5--|-------7-------|-------7-------|
//  31         21 20 19 18 14 13            7 6             0
//                 |  |    |               |               |
//                 |  |    |               |               +-- to (7 bits)
//                 |  |    |               +-- from (7 bits, 0 if drop)
//                 |  |    +-- piece kind of moved/dropped piece (5 bits)
//                 |  +-- bit 19: drop flag
//                 +-- bit 20: promote flag
type Move uint32

// MoveNone is the invalid/empty move.
const MoveNone Move = 0

const (
	toShift      uint = 0
	fromShift    uint = 7
	pieceShift   uint = 14
	dropFlagBit  uint = 19
	promoteFlag  uint = 20
	squareMask   Move = 0x7f
	pieceMask    Move = 0x1f
)

// NewNormalMove builds a board move of piece pc from "from" to "to",
// optionally promoting.
func NewNormalMove(from, to Square, pc PieceKind, promote bool) Move {
	m := Move(to)<<toShift | Move(from)<<fromShift | Move(pc)<<pieceShift
	if promote {
		m |= 1 << promoteFlag
	}
	return m
}

// NewDropMove builds a drop of piece kind pc onto "to".
func NewDropMove(to Square, pc PieceKind) Move {
	return Move(to)<<toShift | Move(pc)<<pieceShift | 1<<dropFlagBit
}

// IsDrop reports whether m places a piece from hand rather than moving a
// board piece.
func (m Move) IsDrop() bool {
	return m&(1<<dropFlagBit) != 0
}

// IsPromotion reports whether m promotes the moved piece.
func (m Move) IsPromotion() bool {
	return m&(1<<promoteFlag) != 0
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & squareMask)
}

// From returns the origin square. Meaningless (and zero) for drops.
func (m Move) From() Square {
	return Square((m >> fromShift) & squareMask)
}

// PieceKind returns the kind being moved (for a normal move, the
// unpromoted kind) or dropped.
func (m Move) PieceKind() PieceKind {
	return PieceKind((m >> pieceShift) & pieceMask)
}

func (m Move) String() string {
	if m == MoveNone {
		return "none"
	}
	if m.IsDrop() {
		return fmt.Sprintf("%s*%s", m.PieceKind(), m.To())
	}
	suffix := ""
	if m.IsPromotion() {
		suffix = "+"
	}
	return fmt.Sprintf("%s%s%s%s", m.PieceKind(), m.From(), m.To(), suffix)
}
