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

// Piece is a (kind, color) pair packed into a small integer, with a
// dedicated zero value meaning "no piece".
type Piece int8

// NoPiece marks an empty board cell.
const NoPiece Piece = 0

// NewPiece builds the piece of kind pk belonging to color c.
func NewPiece(pk PieceKind, c Color) Piece {
	return Piece(int8(c)*int8(PieceKindLength) + int8(pk) + 1)
}

// Kind returns the piece kind.
func (p Piece) Kind() PieceKind {
	return PieceKind((int8(p) - 1) % int8(PieceKindLength))
}

// Color returns the piece's owner.
func (p Piece) Color() Color {
	return Color((int8(p) - 1) / int8(PieceKindLength))
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return " * "
	}
	sign := "+"
	if p.Color() == White {
		sign = "-"
	}
	return sign + p.Kind().String()
}
