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

// Generate returns every legal move for the side to move in pos.
func Generate(pos *position.Position) *MoveList {
	pseudo := &MoveList{}
	c := pos.SideToMove()
	if pos.InCheck() {
		generateEvasions(pos, c, pseudo)
	} else {
		generateAll(pos, c, pseudo)
	}
	return filterLegal(pos, c, pseudo)
}

// addBoardMove applies the promotion rule to a single (from, to) board
// move of kind pk: a promotable kind may promote whenever either square
// touches the promotion zone, and must promote if the plain move would
// otherwise land on a dead square.
func addBoardMove(ml *MoveList, c types.Color, pk types.PieceKind, from, to types.Square) {
	if _, canPromote := pk.Promote(); !canPromote {
		ml.add(types.NewNormalMove(from, to, pk, false))
		return
	}
	if tables.Promotable[from][c] || tables.Promotable[to][c] {
		ml.add(types.NewNormalMove(from, to, pk, true))
	}
	if !isDeadSquare(pk, to, c) {
		ml.add(types.NewNormalMove(from, to, pk, false))
	}
}

func generateAll(pos *position.Position, c types.Color, ml *MoveList) {
	occ := pos.Occupied()
	own := pos.PiecesC(c)

	for pk := types.PieceKind(0); pk < types.PieceKindLength; pk++ {
		if pk == types.Pawn {
			continue
		}
		for _, from := range pos.PiecesCP(c, pk).Squares() {
			dests := tables.Attack(pk, from, c, occ).AndNot(own)
			for _, to := range dests.Squares() {
				addBoardMove(ml, c, pk, from, to)
			}
		}
	}

	pawns := pos.PiecesCP(c, types.Pawn)
	for _, to := range pawns.ShiftForward(c).AndNot(own).Squares() {
		from, ok := to.Shift(0, backwardRankStep(c))
		if !ok {
			continue
		}
		addBoardMove(ml, c, types.Pawn, from, to)
	}

	generateDrops(pos, c, occ.Not(), ml)
}

// backwardRankStep is the rank delta that undoes ShiftForward for color
// c, recovering a pawn's origin square from its destination.
func backwardRankStep(c types.Color) int {
	if c == types.Black {
		return 1
	}
	return -1
}

func generateDrops(pos *position.Position, c types.Color, target bitboard.Bitboard, ml *MoveList) {
	hand := pos.Hand(c)
	for _, pk := range types.DroppableKinds {
		if hand.Count(pk) == 0 {
			continue
		}
		dests := target
		switch pk {
		case types.Pawn:
			dests = dests.AndNot(bitboard.FilledFiles(pos.PiecesCP(c, types.Pawn), tables.Files))
			dests = dests.AndNot(deadSquareMask[types.Pawn][c])
		case types.Lance:
			dests = dests.AndNot(deadSquareMask[types.Lance][c])
		case types.Knight:
			dests = dests.AndNot(deadSquareMask[types.Knight][c])
		}
		for _, to := range dests.Squares() {
			if pk == types.Pawn && isUchifuzume(pos, c, to) {
				continue
			}
			ml.add(types.NewDropMove(to, pk))
		}
	}
}

func generateEvasions(pos *position.Position, c types.Color, ml *MoveList) {
	k := pos.King(c)
	checkers := pos.Checkers()
	occ := pos.Occupied()
	own := pos.PiecesC(c)

	occWithoutKing := occ.AndNot(bitboard.Single(k))
	var checkerAttacks bitboard.Bitboard
	for _, s := range checkers.Squares() {
		chk := pos.PieceOn(s)
		if chk.Kind() == types.ProRook {
			checkerAttacks = checkerAttacks.Or(tables.Attack(types.ProRook, s, chk.Color(), occWithoutKing))
		} else {
			checkerAttacks = checkerAttacks.Or(tables.PseudoAttack(chk.Kind(), s, chk.Color()))
		}
	}
	kingDests := tables.Attack(types.King, k, c, occ).AndNot(own).AndNot(checkerAttacks)
	for _, to := range kingDests.Squares() {
		ml.add(types.NewNormalMove(k, to, types.King, false))
	}

	if checkers.Count() >= 2 {
		return
	}
	c0, ok := checkers.LowestSquare()
	if !ok {
		return
	}
	targetMove := tables.Between[k][c0].Or(bitboard.Single(c0))
	targetDrop := tables.Between[k][c0]

	for pk := types.PieceKind(0); pk < types.PieceKindLength; pk++ {
		if pk == types.King {
			continue
		}
		for _, from := range pos.PiecesCP(c, pk).Squares() {
			dests := tables.Attack(pk, from, c, occ).And(targetMove)
			for _, to := range dests.Squares() {
				addBoardMove(ml, c, pk, from, to)
			}
		}
	}

	generateDrops(pos, c, targetDrop, ml)
}
