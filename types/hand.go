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

// Hand holds the count of each droppable piece kind a player is holding,
// indexed by PieceKind.HandIndex() (FU, KY, KE, GI, KI, KA, HI order).
type Hand [NumHandKinds]uint8

// Count returns the number of pieces of kind pk in hand.
func (h Hand) Count(pk PieceKind) uint8 {
	return h[pk.HandIndex()]
}

// Increment adds one piece of kind pk to hand.
func (h *Hand) Increment(pk PieceKind) {
	h[pk.HandIndex()]++
}

// Decrement removes one piece of kind pk from hand.
func (h *Hand) Decrement(pk PieceKind) {
	h[pk.HandIndex()]--
}

// HandCount pairs a droppable kind with how many of it are held.
type HandCount struct {
	Kind  PieceKind
	Count uint8
}

// Counts returns every nonzero entry of the hand in DroppableKinds
// order (FU, KY, KE, GI, KI, KA, HI), for callers that need to iterate
// a hand without probing all seven slots themselves (move generation,
// SFEN-style rendering).
func (h Hand) Counts() []HandCount {
	out := make([]HandCount, 0, NumHandKinds)
	for _, pk := range DroppableKinds {
		if n := h.Count(pk); n > 0 {
			out = append(out, HandCount{Kind: pk, Count: n})
		}
	}
	return out
}

// IsEmpty reports whether the hand holds no pieces at all.
func (h Hand) IsEmpty() bool {
	for _, n := range h {
		if n != 0 {
			return false
		}
	}
	return true
}

// maxCounts are the per-kind caps used by Position.New to validate a
// hand against the physical piece set (18 pawns; 4 of lance/knight/
// silver/gold; 2 of bishop/rook).
var maxCounts = Hand{18, 4, 4, 4, 4, 2, 2}

// MaxCount returns the maximum number of copies of pk that can exist
// across board and hands combined.
func (pk PieceKind) MaxCount() uint8 {
	return maxCounts[pk.HandIndex()]
}
