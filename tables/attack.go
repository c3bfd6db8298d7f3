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
	"github.com/sugyan/yasai-sub000/bitboard"
	"github.com/sugyan/yasai-sub000/types"
)

// The step tables hold precomputed single-step attack sets keyed by
// [square][color] for every non-sliding piece kind.
var (
	pawnSteps   [types.NumSquares][types.ColorLength]bitboard.Bitboard
	knightSteps [types.NumSquares][types.ColorLength]bitboard.Bitboard
	silverSteps [types.NumSquares][types.ColorLength]bitboard.Bitboard
	goldSteps   [types.NumSquares][types.ColorLength]bitboard.Bitboard
	kingSteps   [types.NumSquares][types.ColorLength]bitboard.Bitboard
)

// lanceMasks[sq][c] is the full, occupancy-independent ray a lance on sq
// of color c would sweep; the occupancy-aware attack intersects this
// with SlidingNegative/SlidingPositive depending on which way the ray
// runs in index space.
var lanceMasks [types.NumSquares][types.ColorLength]bitboard.Bitboard

// bishopGroups[sq] / rookGroups[sq] hold the four single-direction rays
// from sq split into the "negative" pair (directions whose index
// decreases) and "positive" pair (directions whose index increases), in
// the same grouping SlidingNegatives/SlidingPositives expect.
var (
	bishopGroups [types.NumSquares][2][2]bitboard.Bitboard
	rookGroups   [types.NumSquares][2][2]bitboard.Bitboard
)

// bishopPseudo[sq] / rookPseudo[sq] are the merged, occupancy-free rays
// used to answer "could a piece on sq ever attack this square" questions
// (pin and sniper detection) without touching the current board.
var (
	bishopPseudo [types.NumSquares]bitboard.Bitboard
	rookPseudo   [types.NumSquares]bitboard.Bitboard
)

var blackDeltas = map[types.PieceKind][]delta{
	types.Pawn:   {deltaN},
	types.Knight: {deltaNNE, deltaNNW},
	types.Silver: {deltaN, deltaNE, deltaSE, deltaSW, deltaNW},
	types.Gold:   {deltaN, deltaE, deltaS, deltaW, deltaNE, deltaNW},
	types.King:   {deltaN, deltaE, deltaS, deltaW, deltaNE, deltaSE, deltaSW, deltaNW},
}

func stepTable(sq types.Square, c types.Color, deltas []delta) bitboard.Bitboard {
	out := bitboard.Empty
	for _, d := range deltas {
		if c == types.White {
			d = d.mirror()
		}
		if next, ok := sq.Shift(d.file, d.rank); ok {
			out = out.Or(bitboard.Single(next))
		}
	}
	return out
}

func init() {
	for sq := types.Square(0); int(sq) < types.NumSquares; sq++ {
		for _, c := range [...]types.Color{types.Black, types.White} {
			pawnSteps[sq][c] = stepTable(sq, c, blackDeltas[types.Pawn])
			knightSteps[sq][c] = stepTable(sq, c, blackDeltas[types.Knight])
			silverSteps[sq][c] = stepTable(sq, c, blackDeltas[types.Silver])
			goldSteps[sq][c] = stepTable(sq, c, blackDeltas[types.Gold])
			kingSteps[sq][c] = stepTable(sq, c, blackDeltas[types.King])

			lanceDelta := deltaN
			if c == types.White {
				lanceDelta = deltaS
			}
			lanceMasks[sq][c] = slidingAttack(sq, bitboard.Empty, lanceDelta)
		}

		neRay := slidingAttack(sq, bitboard.Empty, deltaNE)
		seRay := slidingAttack(sq, bitboard.Empty, deltaSE)
		swRay := slidingAttack(sq, bitboard.Empty, deltaSW)
		nwRay := slidingAttack(sq, bitboard.Empty, deltaNW)
		bishopGroups[sq][0] = [2]bitboard.Bitboard{neRay, seRay}
		bishopGroups[sq][1] = [2]bitboard.Bitboard{swRay, nwRay}
		bishopPseudo[sq] = neRay.Or(seRay).Or(swRay).Or(nwRay)

		nRay := slidingAttack(sq, bitboard.Empty, deltaN)
		eRay := slidingAttack(sq, bitboard.Empty, deltaE)
		sRay := slidingAttack(sq, bitboard.Empty, deltaS)
		wRay := slidingAttack(sq, bitboard.Empty, deltaW)
		rookGroups[sq][0] = [2]bitboard.Bitboard{nRay, eRay}
		rookGroups[sq][1] = [2]bitboard.Bitboard{sRay, wRay}
		rookPseudo[sq] = nRay.Or(eRay).Or(sRay).Or(wRay)
	}
}

func lanceAttack(sq types.Square, c types.Color, occ bitboard.Bitboard) bitboard.Bitboard {
	if c == types.Black {
		return bitboard.SlidingNegative(occ, lanceMasks[sq][c])
	}
	return bitboard.SlidingPositive(occ, lanceMasks[sq][c])
}

func bishopAttack(sq types.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	return bitboard.SlidingNegatives(occ, bishopGroups[sq][0]).Or(bitboard.SlidingPositives(occ, bishopGroups[sq][1]))
}

func rookAttack(sq types.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	return bitboard.SlidingNegatives(occ, rookGroups[sq][0]).Or(bitboard.SlidingPositives(occ, rookGroups[sq][1]))
}

// goldLikeAttack reports whether pk uses the gold step table: Gold itself
// and every promoted piece that moves like gold (everything except the two
// promoted sliders, which keep their sliding power and add a king step).
func goldLikeAttack(pk types.PieceKind) bool {
	switch pk {
	case types.Gold, types.ProPawn, types.ProLance, types.ProKnight, types.ProSilver:
		return true
	}
	return false
}

// Attack returns the squares a piece of kind pk and color c on sq
// attacks given board occupancy occ.
func Attack(pk types.PieceKind, sq types.Square, c types.Color, occ bitboard.Bitboard) bitboard.Bitboard {
	switch {
	case pk == types.Pawn:
		return pawnSteps[sq][c]
	case pk == types.Lance:
		return lanceAttack(sq, c, occ)
	case pk == types.Knight:
		return knightSteps[sq][c]
	case pk == types.Silver:
		return silverSteps[sq][c]
	case goldLikeAttack(pk):
		return goldSteps[sq][c]
	case pk == types.Bishop:
		return bishopAttack(sq, occ)
	case pk == types.Rook:
		return rookAttack(sq, occ)
	case pk == types.King:
		return kingSteps[sq][c]
	case pk == types.ProBishop:
		return bishopAttack(sq, occ).Or(kingSteps[sq][c])
	case pk == types.ProRook:
		return rookAttack(sq, occ).Or(kingSteps[sq][c])
	}
	return bitboard.Empty
}

// PseudoAttack returns the squares a piece of kind pk and color c on sq
// could ever attack, ignoring the current board occupancy. Used to test
// whether a square could possibly be the source of a pin or a check
// without recomputing a slider's attack set against the live board.
func PseudoAttack(pk types.PieceKind, sq types.Square, c types.Color) bitboard.Bitboard {
	switch pk {
	case types.Lance:
		return lanceMasks[sq][c]
	case types.Bishop, types.ProBishop:
		if pk == types.ProBishop {
			return bishopPseudo[sq].Or(kingSteps[sq][c])
		}
		return bishopPseudo[sq]
	case types.Rook, types.ProRook:
		if pk == types.ProRook {
			return rookPseudo[sq].Or(kingSteps[sq][c])
		}
		return rookPseudo[sq]
	}
	return Attack(pk, sq, c, bitboard.Empty)
}
