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
	"github.com/sugyan/yasai-sub000/bitboard"
	"github.com/sugyan/yasai-sub000/position"
	"github.com/sugyan/yasai-sub000/tables"
	"github.com/sugyan/yasai-sub000/types"
)

// isUchifuzume reports whether dropping a pawn of color c at to is the
// prohibited "drop pawn mate": the drop checks the opposing king, the
// pawn is defended so the king cannot take it, no unpinned opposing
// piece can take the pawn, and the king has no escape square.
func isUchifuzume(pos *position.Position, c types.Color, to types.Square) bool {
	opp := c.Flip()
	oppKing := pos.King(opp)
	if oppKing == types.SquareNone {
		return false
	}
	occ := pos.Occupied()
	if !tables.Attack(types.Pawn, to, c, occ).Contains(oppKing) {
		return false
	}

	// Condition 1: the pawn must be defended, else opp's king (or any
	// piece) could simply capture it without consequence.
	if pos.AttackersTo(c, to, occ).IsEmpty() {
		return false
	}

	// Condition 2: every opposing piece that could otherwise capture
	// the pawn must be pinned.
	opSilverLike := pos.PiecesCP(opp, types.Silver).Or(pos.PiecesCP(opp, types.ProRook))
	opBishopLike := pos.PiecesCP(opp, types.Bishop).Or(pos.PiecesCP(opp, types.ProBishop))
	opRookLike := pos.PiecesCP(opp, types.Rook).Or(pos.PiecesCP(opp, types.ProRook))
	opGoldLike := pos.PiecesCP(opp, types.Gold).
		Or(pos.PiecesCP(opp, types.ProPawn)).
		Or(pos.PiecesCP(opp, types.ProLance)).
		Or(pos.PiecesCP(opp, types.ProKnight)).
		Or(pos.PiecesCP(opp, types.ProSilver)).
		Or(pos.PiecesCP(opp, types.ProBishop))

	candidates := tables.Attack(types.Knight, to, c, occ).And(pos.PiecesCP(opp, types.Knight)).
		Or(tables.Attack(types.Silver, to, c, occ).And(opSilverLike)).
		Or(tables.Attack(types.Bishop, to, c, occ).And(opBishopLike)).
		Or(tables.Attack(types.Rook, to, c, occ).And(opRookLike)).
		Or(tables.Attack(types.Gold, to, c, occ).And(opGoldLike))

	if !candidates.AndNot(pos.Pinned()[opp]).IsEmpty() {
		return false
	}

	// Condition 3: the opposing king has no escape square, counting the
	// dropped pawn's square as occupied (it may block a line that
	// previously ran through that square to an escape square).
	occWithPawn := occ.Or(bitboard.Single(to))
	escapes := tables.Attack(types.King, oppKing, opp, occ).AndNot(pos.PiecesC(opp)).AndNot(bitboard.Single(to))
	for _, e := range escapes.Squares() {
		if pos.AttackersTo(c, e, occWithPawn).IsEmpty() {
			return false
		}
	}
	return true
}
