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

// filterLegal removes every move of pseudo that would leave c's own
// king in check: a king move into an attacked square, or a pinned
// piece's move that steps off its pin line. Drops need no further
// check here; generateDrops already excluded nifu/dead-square/
// uchifuzume destinations before a drop ever reached the list.
func filterLegal(pos *position.Position, c types.Color, pseudo *MoveList) *MoveList {
	out := &MoveList{}
	k := pos.King(c)
	pinned := pos.Pinned()[c]
	occ := pos.Occupied()
	opp := c.Flip()

	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		switch {
		case m.IsDrop():
			out.add(m)
		case m.PieceKind() == types.King:
			occAfter := occ.AndNot(bitboard.Single(k)).Or(bitboard.Single(m.To()))
			if pos.AttackersTo(opp, m.To(), occAfter).IsEmpty() {
				out.add(m)
			}
		case pinned.Contains(m.From()):
			from, to := m.From(), m.To()
			if tables.Between[k][from].Contains(to) || tables.Between[k][to].Contains(from) {
				out.add(m)
			}
		default:
			out.add(m)
		}
	}
	return out
}
