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

import (
	"github.com/sugyan/yasai-sub000/bitboard"
	"github.com/sugyan/yasai-sub000/tables"
	"github.com/sugyan/yasai-sub000/types"
)

// AttackersTo returns every piece of color c currently attacking sq,
// given occupancy occ. It relies on attack-pattern symmetry: the
// squares from which a color-c piece of kind pk attacks sq are exactly
// the squares a color-(!c) piece of kind pk on sq would attack.
func (p *Position) AttackersTo(c types.Color, sq types.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	opp := c.Flip()
	var attackers bitboard.Bitboard
	for pk := types.PieceKind(0); pk < types.PieceKindLength; pk++ {
		bb := p.PiecesCP(c, pk)
		if bb.IsEmpty() {
			continue
		}
		attackers = attackers.Or(tables.Attack(pk, sq, opp, occ).And(bb))
	}
	return attackers
}

// pinnedFor returns the pieces that, if moved, would expose c's king to
// a sniping lance/bishop/rook. Per the pinning contract, a sniper's lone
// blocker is added regardless of which side it belongs to: only a
// same-color blocker can ever be the moving piece in a pin-restricted
// move, so an opposite-color entry is simply never consulted.
func (p *Position) pinnedFor(c types.Color, occ bitboard.Bitboard) bitboard.Bitboard {
	k := p.kingSquare[c]
	if k == types.SquareNone {
		return bitboard.Empty
	}
	opp := c.Flip()

	lanceSnipers := tables.PseudoAttack(types.Lance, k, c).And(p.PiecesCP(opp, types.Lance))
	bishopSnipers := tables.PseudoAttack(types.Bishop, k, c).
		And(p.PiecesCP(opp, types.Bishop).Or(p.PiecesCP(opp, types.ProBishop)))
	rookSnipers := tables.PseudoAttack(types.Rook, k, c).
		And(p.PiecesCP(opp, types.Rook).Or(p.PiecesCP(opp, types.ProRook)))
	snipers := lanceSnipers.Or(bishopSnipers).Or(rookSnipers)

	var pinned bitboard.Bitboard
	for _, s := range snipers.Squares() {
		between := tables.Between[k][s].And(occ)
		if between.Count() == 1 {
			pinned = pinned.Or(between)
		}
	}
	return pinned
}

// refresh recomputes st's checkers/checkables/pinned fields against the
// position as it stands right now (after sideToMove and the board have
// already been updated for the move that produced st).
func (p *Position) refresh(st *state) {
	occ := p.Occupied()
	st.pinned[types.Black] = p.pinnedFor(types.Black, occ)
	st.pinned[types.White] = p.pinnedFor(types.White, occ)

	mover := p.sideToMove
	opp := mover.Flip()
	if k := p.kingSquare[mover]; k != types.SquareNone {
		st.checkers = p.AttackersTo(opp, k, occ)
	}

	if oppKing := p.kingSquare[opp]; oppKing != types.SquareNone {
		for pk := types.PieceKind(0); pk < types.PieceKindLength; pk++ {
			st.checkables[pk] = tables.Attack(pk, oppKing, opp, occ)
		}
	}
}
