/*
 * yasai - a legal move generator core for Shogi
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 The yasai Authors
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

// Package movegen generates the legal moves for a Position: check evasions
// when the side to move's king is attacked, full pseudo-legal generation
// filtered by king-safety otherwise. Drop moves (re-entering a piece from
// hand) are out of scope; see SPEC_FULL.md and DESIGN.md at the
// repository root.
package movegen

import (
	"github.com/na2hiro/yasai/internal/attacks"
	"github.com/na2hiro/yasai/internal/logging"
	"github.com/na2hiro/yasai/internal/position"
	"github.com/na2hiro/yasai/internal/types"
)

var log = logging.GetLog()

// GenerateLegals clears ml and appends every legal move for pos's side to
// move. Out of check the moves come in piece-type order (FU, KY, KE, GI,
// KA, HI, then KI together with TO, NY, NK, NG, then UM, RY, and OU last);
// in check the king's moves come first, then the other pieces in the same
// order. Within a piece type the order is bitboard iteration order of the
// origin square. Calling it
// twice on the same Position yields the same moves both times: Position
// is an immutable value and generation has no hidden state.
func GenerateLegals(pos *position.Position, ml *types.MoveList) {
	ml.Clear()
	if pos.InCheck() {
		generateEvasions(pos, ml)
		return
	}
	generateAll(pos, pos.PiecesC(pos.SideToMove()).Not(), true, ml)
}

// generateAll implements spec §4.6.1: every pseudo-legal move landing on
// target, for every own piece, filtered for king safety as each candidate
// is produced. includeKing is false during evasion generation, where the
// king's own moves are generated separately against a different target
// (see generateEvasions).
func generateAll(pos *position.Position, target types.Bitboard, includeKing bool, ml *types.MoveList) {
	us := pos.SideToMove()
	occupied := pos.PiecesP(types.OCCUPIED)

	for from, rest := pos.PiecesCP(us, types.FU).PopLsb(); from != types.SqNone; from, rest = rest.PopLsb() {
		emitDestinations(pos, ml, us, from, types.FU, attacks.StepAttack(types.FU, us, from).And(target))
	}
	for from, rest := pos.PiecesCP(us, types.KY).PopLsb(); from != types.SqNone; from, rest = rest.PopLsb() {
		emitDestinations(pos, ml, us, from, types.KY, attacks.LanceAttack(us, from, occupied).And(target))
	}
	for from, rest := pos.PiecesCP(us, types.KE).PopLsb(); from != types.SqNone; from, rest = rest.PopLsb() {
		emitDestinations(pos, ml, us, from, types.KE, attacks.StepAttack(types.KE, us, from).And(target))
	}
	for from, rest := pos.PiecesCP(us, types.GI).PopLsb(); from != types.SqNone; from, rest = rest.PopLsb() {
		emitDestinations(pos, ml, us, from, types.GI, attacks.StepAttack(types.GI, us, from).And(target))
	}
	for from, rest := pos.PiecesCP(us, types.KA).PopLsb(); from != types.SqNone; from, rest = rest.PopLsb() {
		emitDestinations(pos, ml, us, from, types.KA, attacks.BishopAttack(from, occupied).And(target))
	}
	for from, rest := pos.PiecesCP(us, types.HI).PopLsb(); from != types.SqNone; from, rest = rest.PopLsb() {
		emitDestinations(pos, ml, us, from, types.HI, attacks.RookAttack(from, occupied).And(target))
	}
	for _, pt := range []types.PieceType{types.KI, types.TO, types.NY, types.NK, types.NG} {
		for from, rest := pos.PiecesCP(us, pt).PopLsb(); from != types.SqNone; from, rest = rest.PopLsb() {
			emitDestinations(pos, ml, us, from, pt, attacks.GoldAttack(us, from).And(target))
		}
	}
	for _, pt := range []types.PieceType{types.UM, types.RY} {
		for from, rest := pos.PiecesCP(us, pt).PopLsb(); from != types.SqNone; from, rest = rest.PopLsb() {
			var bb types.Bitboard
			if pt == types.UM {
				bb = attacks.BishopAttack(from, occupied).Or(attacks.StepAttack(types.OU, types.Black, from))
			} else {
				bb = attacks.RookAttack(from, occupied).Or(attacks.StepAttack(types.OU, types.Black, from))
			}
			emitDestinations(pos, ml, us, from, pt, bb.And(target))
		}
	}
	if includeKing {
		for from, rest := pos.PiecesCP(us, types.OU).PopLsb(); from != types.SqNone; from, rest = rest.PopLsb() {
			emitDestinations(pos, ml, us, from, types.OU, attacks.StepAttack(types.OU, us, from).And(target))
		}
	}
}

// generateEvasions implements spec §4.6.2.
func generateEvasions(pos *position.Position, ml *types.MoveList) {
	us := pos.SideToMove()
	them := us.Flip()
	k := pos.KingSquare(us)
	checkers := pos.Checkers()

	var checkersAttacks types.Bitboard
	for sq, rest := checkers.PopLsb(); sq != types.SqNone; sq, rest = rest.PopLsb() {
		pt := pos.PieceOn(sq).TypeOf()
		checkersAttacks = checkersAttacks.Or(attacks.PseudoAttack(pt, sq))
	}

	kingTarget := pos.PiecesC(us).Not().AndNot(checkersAttacks)
	for to, rest := attacks.StepAttack(types.OU, us, k).And(kingTarget).PopLsb(); to != types.SqNone; to, rest = rest.PopLsb() {
		if pos.AttackersToExcluding(them, to, k).IsEmpty() {
			ml.PushBack(types.NewMove(k, to, pos.PieceOn(k), false))
		}
	}

	if checkers.PopCount() >= 2 {
		return
	}

	checker := checkers.Lsb()
	target := checkers.Or(attacks.Between(checker, k))
	generateAll(pos, target, false, ml)
}

// emitDestinations appends every legal move of pt from from to each
// square in candidates, applying the pin/king-safety filter from spec
// §4.6 step 2 and the promotion-zone rule from §4.6.1. Forced promotion
// (pawn/lance into the last rank, knight into the last two) is left
// unenforced per the open design decision: both the promoting and
// non-promoting variant are emitted whenever either endpoint lies in the
// promotion zone.
func emitDestinations(pos *position.Position, ml *types.MoveList, us types.Color, from types.Square, pt types.PieceType, candidates types.Bitboard) {
	piece := types.MakePiece(us, pt)
	k := pos.KingSquare(us)
	for to, rest := candidates.PopLsb(); to != types.SqNone; to, rest = rest.PopLsb() {
		if !isKingSafe(pos, us, from, to, pt, k) {
			continue
		}
		if pt.CanPromote() && (us.InPromotionZone(from) || us.InPromotionZone(to)) {
			ml.PushBack(types.NewMove(from, to, piece, true))
		}
		// The non-promoting variant is always offered too; forced
		// promotion is explicitly left unenforced (see doc comment).
		ml.PushBack(types.NewMove(from, to, piece, false))
	}
}

// isKingSafe implements spec §4.6 step 2: drop king moves that leave the
// king attacked, and drop pinned-piece moves that leave the pin line.
func isKingSafe(pos *position.Position, us types.Color, from, to types.Square, pt types.PieceType, k types.Square) bool {
	if pt == types.OU {
		return pos.AttackersToExcluding(us.Flip(), to, from).IsEmpty()
	}
	if !pos.Pinned().Has(from) {
		return true
	}
	return attacks.Between(k, from).Has(to) || attacks.Between(k, to).Has(from)
}
