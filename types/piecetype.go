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

// PieceKind enumerates the 14 kinds of shogi piece, unpromoted and promoted.
type PieceKind int8

const (
	Pawn PieceKind = iota
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	ProPawn
	ProLance
	ProKnight
	ProSilver
	ProBishop
	ProRook
	PieceKindLength
)

// NumHandKinds is the number of piece kinds that can sit in hand.
const NumHandKinds = 7

// promoteTable maps a promotable kind to its promoted form; PieceKindLength
// marks "does not promote" (Gold, King, and the Pro-kinds themselves).
var promoteTable = [PieceKindLength]PieceKind{
	Pawn:      ProPawn,
	Lance:     ProLance,
	Knight:    ProKnight,
	Silver:    ProSilver,
	Gold:      PieceKindLength,
	Bishop:    ProBishop,
	Rook:      ProRook,
	King:      PieceKindLength,
	ProPawn:   PieceKindLength,
	ProLance:  PieceKindLength,
	ProKnight: PieceKindLength,
	ProSilver: PieceKindLength,
	ProBishop: PieceKindLength,
	ProRook:   PieceKindLength,
}

var unpromoteTable = [PieceKindLength]PieceKind{
	Pawn:      Pawn,
	Lance:     Lance,
	Knight:    Knight,
	Silver:    Silver,
	Gold:      Gold,
	Bishop:    Bishop,
	Rook:      Rook,
	King:      King,
	ProPawn:   Pawn,
	ProLance:  Lance,
	ProKnight: Knight,
	ProSilver: Silver,
	ProBishop: Bishop,
	ProRook:   Rook,
}

// Promote returns the promoted form of pk and true, or (pk, false) if pk
// cannot promote.
func (pk PieceKind) Promote() (PieceKind, bool) {
	p := promoteTable[pk]
	if p == PieceKindLength {
		return pk, false
	}
	return p, true
}

// Unpromote returns the unpromoted form of pk (a no-op for already
// unpromoted kinds).
func (pk PieceKind) Unpromote() PieceKind {
	return unpromoteTable[pk]
}

// IsPromoted reports whether pk is one of the six promoted kinds.
func (pk PieceKind) IsPromoted() bool {
	switch pk {
	case ProPawn, ProLance, ProKnight, ProSilver, ProBishop, ProRook:
		return true
	default:
		return false
	}
}

// handIndex maps a droppable kind to its 0..6 slot in a hand array, in
// the conventional FU,KY,KE,GI,KI,KA,HI order.
var handIndex = [PieceKindLength]int{
	Pawn:   0,
	Lance:  1,
	Knight: 2,
	Silver: 3,
	Gold:   4,
	Bishop: 5,
	Rook:   6,
}

// HandIndex returns the hand-array slot for a droppable kind. The
// unpromoted form is used for promoted kinds (a captured ProRook
// returns to hand as a Rook).
func (pk PieceKind) HandIndex() int {
	return handIndex[pk.Unpromote()]
}

// DroppableKinds lists the seven kinds that can be held in hand and
// dropped, in hand-index order.
var DroppableKinds = [NumHandKinds]PieceKind{Pawn, Lance, Knight, Silver, Gold, Bishop, Rook}

// MaxHandCount is the maximum number of copies of a hand-index slot that
// can ever be held (18 pawns; every other kind tops out at 4 or fewer,
// but Zobrist hand tables are sized uniformly).
const MaxHandCount = 19

func (pk PieceKind) String() string {
	names := [PieceKindLength]string{
		Pawn: "FU", Lance: "KY", Knight: "KE", Silver: "GI", Gold: "KI",
		Bishop: "KA", Rook: "HI", King: "OU",
		ProPawn: "TO", ProLance: "NY", ProKnight: "NK", ProSilver: "NG",
		ProBishop: "UM", ProRook: "RY",
	}
	return names[pk]
}
