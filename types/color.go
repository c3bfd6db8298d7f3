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

// Package types provides the primitive value types of the shogi engine:
// Color, Square, PieceKind, Piece, Move and Hand. These are the leaf
// types every other package (bitboard, tables, position, movegen) builds on.
package types

// Color identifies a side: Black moves up the board (toward rank 0),
// White moves down (toward rank 8).
type Color int8

const (
	Black Color = iota
	White
	ColorLength
)

// Flip returns the opposite color. Involutive.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is one of the two defined colors.
func (c Color) IsValid() bool {
	return c == Black || c == White
}

func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}
