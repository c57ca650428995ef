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

// Package position implements the board state the move generator consumes:
// a square-indexed piece array, per-color/per-type bitboards, and the
// precomputed checkers/pinned bitboards spec §6.1 requires from its
// "Position" collaborator. Unlike a make/unmake engine board, a Position
// here is an immutable value computed once from a placement; legality
// queries are O(1) lookups against fields filled in at construction time
// instead of being re-derived on every move attempt.
package position

import (
	"fmt"
	"strings"

	"github.com/na2hiro/yasai/internal/assert"
	"github.com/na2hiro/yasai/internal/attacks"
	"github.com/na2hiro/yasai/internal/logging"
	"github.com/na2hiro/yasai/internal/types"
)

var log = logging.GetLog()

// Position is a single, immutable Shogi board state.
type Position struct {
	board      [types.SqLength]types.Piece
	piecesBb   [types.ColorLength][types.PtLength]types.Bitboard
	occupiedBb [types.ColorLength]types.Bitboard
	kingSquare [types.ColorLength]types.Square

	sideToMove types.Color
	checkers   types.Bitboard
	pinned     types.Bitboard
}

// New builds a Position from a full board placement (PieceNone for an
// empty square) and the side to move. It computes the derived bitboards,
// the king squares, and the checkers/pinned sets eagerly, so every
// legality query the generator makes afterward is a plain field read.
func New(board [types.SqLength]types.Piece, sideToMove types.Color) *Position {
	p := &Position{board: board, sideToMove: sideToMove}
	for sq := types.Square(0); sq < types.SqLength; sq++ {
		pc := board[sq]
		if pc == types.PieceNone {
			continue
		}
		c := pc.ColorOf()
		pt := pc.TypeOf()
		p.piecesBb[c][pt] = p.piecesBb[c][pt].WithSquare(sq)
		p.occupiedBb[c] = p.occupiedBb[c].WithSquare(sq)
		if pt == types.OU {
			p.kingSquare[c] = sq
		}
	}
	p.checkers = p.computeAttackersTo(sideToMove.Flip(), p.kingSquare[sideToMove], p.occupied())
	p.pinned = p.computePinned()
	return p
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() types.Color {
	return p.sideToMove
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	return !p.checkers.IsEmpty()
}

// Checkers returns the enemy pieces currently attacking the side to
// move's king.
func (p *Position) Checkers() types.Bitboard {
	return p.checkers
}

// Pinned returns the side to move's own pieces pinned to its own king.
func (p *Position) Pinned() types.Bitboard {
	return p.pinned
}

// PiecesC returns every piece belonging to c.
func (p *Position) PiecesC(c types.Color) types.Bitboard {
	return p.occupiedBb[c]
}

// PiecesCP returns c's pieces of type pt.
func (p *Position) PiecesCP(c types.Color, pt types.PieceType) types.Bitboard {
	return p.piecesBb[c][pt]
}

// PiecesP returns every piece of type pt across both colors, or (when pt
// is the OCCUPIED pseudo-type) the union of all pieces on the board.
func (p *Position) PiecesP(pt types.PieceType) types.Bitboard {
	if pt == types.OCCUPIED {
		return p.occupied()
	}
	return p.piecesBb[types.Black][pt].Or(p.piecesBb[types.White][pt])
}

// PieceOn returns the piece on sq, or PieceNone.
func (p *Position) PieceOn(sq types.Square) types.Piece {
	return p.board[sq]
}

// KingSquare returns c's king square.
func (p *Position) KingSquare(c types.Color) types.Square {
	return p.kingSquare[c]
}

func (p *Position) occupied() types.Bitboard {
	return p.occupiedBb[types.Black].Or(p.occupiedBb[types.White])
}

// AttackersTo returns c's pieces attacking sq, on the board as actually
// occupied.
func (p *Position) AttackersTo(c types.Color, sq types.Square) types.Bitboard {
	return p.computeAttackersTo(c, sq, p.occupied())
}

// AttackersToExcluding returns c's pieces attacking sq if the piece on
// excluded were first removed from the board. Used by the legal-move
// filter to test king moves: a slider behind the king's departure square
// only becomes a threat to the king's destination once the king is gone,
// which a query against the board as currently occupied would miss.
func (p *Position) AttackersToExcluding(c types.Color, sq types.Square, excluded types.Square) types.Bitboard {
	return p.computeAttackersTo(c, sq, p.occupied().WithoutSquare(excluded))
}

// computeAttackersTo is the shared core of the two AttackersTo variants:
// which of c's pieces attack sq, given an explicit occupied bitboard (so
// callers can x-ray through a square that is about to become vacant).
func (p *Position) computeAttackersTo(c types.Color, sq types.Square, occupied types.Bitboard) types.Bitboard {
	if sq == types.SqNone {
		return types.BbZero
	}
	var attackers types.Bitboard

	// Leapers: a piece of type pt owned by c attacks sq iff sq is in the
	// *reverse* step pattern from sq for the opposing color, i.e. "could a
	// piece of pt standing on sq, played by the opposite color, reach one
	// of c's actual pt pieces" — equivalently, attack(sq, !c) interpreted
	// from sq's perspective and intersected with c's pieces of that type.
	opp := c.Flip()
	attackers = attackers.Or(attacks.StepAttack(types.FU, opp, sq).And(p.piecesBb[c][types.FU]))
	attackers = attackers.Or(attacks.StepAttack(types.KE, opp, sq).And(p.piecesBb[c][types.KE]))
	attackers = attackers.Or(attacks.StepAttack(types.GI, opp, sq).And(p.piecesBb[c][types.GI]))
	attackers = attackers.Or(attacks.StepAttack(types.OU, opp, sq).And(p.piecesBb[c][types.OU]))

	goldLike := p.piecesBb[c][types.KI].
		Or(p.piecesBb[c][types.TO]).
		Or(p.piecesBb[c][types.NY]).
		Or(p.piecesBb[c][types.NK]).
		Or(p.piecesBb[c][types.NG])
	attackers = attackers.Or(attacks.GoldAttack(opp, sq).And(goldLike))

	attackers = attackers.Or(attacks.LanceAttack(opp, sq, occupied).And(p.piecesBb[c][types.KY]))

	bishopLike := p.piecesBb[c][types.KA].Or(p.piecesBb[c][types.UM])
	attackers = attackers.Or(attacks.BishopAttack(sq, occupied).And(bishopLike))

	rookLike := p.piecesBb[c][types.HI].Or(p.piecesBb[c][types.RY])
	attackers = attackers.Or(attacks.RookAttack(sq, occupied).And(rookLike))

	// UM/RY also move like a king one step in every direction.
	attackers = attackers.Or(attacks.StepAttack(types.OU, types.Black, sq).And(p.piecesBb[c][types.UM].Or(p.piecesBb[c][types.RY])))

	return attackers
}

// computePinned finds, for the side to move, every own piece that is the
// sole blocker between its own king and an enemy slider — the
// Stockfish-style x-ray sniper scan, adapted to Shogi's KY/KA/UM/HI/RY
// sliders.
func (p *Position) computePinned() types.Bitboard {
	us := p.sideToMove
	them := us.Flip()
	k := p.kingSquare[us]
	if k == types.SqNone {
		return types.BbZero
	}
	var pinned types.Bitboard
	occ := p.occupied()

	// Lance candidates share the king's file, but a lance only threatens
	// along its own forward direction, so each candidate is checked
	// individually against its empty-board forward ray rather than folded
	// into a single direction-agnostic bitboard mask the way rook/bishop
	// rays are below.
	lanceCandidates := attacks.PseudoAttack(types.HI, k).And(p.piecesBb[them][types.KY])
	for sq, rest := lanceCandidates.PopLsb(); sq != types.SqNone; sq, rest = rest.PopLsb() {
		if !attacks.LanceAttack(them, sq, types.BbZero).Has(k) {
			continue
		}
		blockers := attacks.Between(sq, k).And(occ)
		if blockers.PopCount() == 1 && blockers.And(p.occupiedBb[us]).PopCount() == 1 {
			pinned = pinned.Or(blockers)
		}
	}

	snipers := attacks.PseudoAttack(types.HI, k).And(p.piecesBb[them][types.HI].Or(p.piecesBb[them][types.RY]))
	snipers = snipers.Or(attacks.PseudoAttack(types.KA, k).And(p.piecesBb[them][types.KA].Or(p.piecesBb[them][types.UM])))

	for sq, rest := snipers.PopLsb(); sq != types.SqNone; sq, rest = rest.PopLsb() {
		blockers := attacks.Between(sq, k).And(occ)
		if blockers.PopCount() == 1 && blockers.And(p.occupiedBb[us]).PopCount() == 1 {
			pinned = pinned.Or(blockers)
		}
	}
	return pinned
}

// Make returns the Position reached by playing m, recomputing every
// derived field from scratch. Position carries no history, so perft and
// other recursive walks hold their own stack of *Position values rather
// than calling an Undo.
func (p *Position) Make(m types.Move) *Position {
	fromPc := p.board[m.From()]
	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position Make: invalid move %s", m.String())
		assert.Assert(fromPc != types.PieceNone, "Position Make: no piece on %s for move %s", m.From(), m)
		assert.Assert(fromPc.ColorOf() == p.sideToMove, "Position Make: piece on %s does not belong to side to move", m.From())
		assert.Assert(p.board[m.To()].TypeOf() != types.OU, "Position Make: move %s captures a king", m)
	}

	board := p.board
	piece := m.Piece()
	if m.IsPromote() {
		piece = piece.Promote()
	}
	board[m.From()] = types.PieceNone
	board[m.To()] = piece
	return New(board, p.sideToMove.Flip())
}

// String renders the board as a 9x9 grid of piece labels, ranks a..i top
// to bottom, files 1..9 left to right — for debug output and test
// failure messages only.
func (p *Position) String() string {
	var sb strings.Builder
	for r := types.Rank(0); r < types.RankLength; r++ {
		for f := types.File(0); f < types.FileLength; f++ {
			pc := p.board[types.SquareOf(f, r)]
			fmt.Fprintf(&sb, "%-4s", pc.String())
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "side to move: %s  in check: %v\n", p.sideToMove, p.InCheck())
	return sb.String()
}

func init() {
	log.Debug("position package ready")
}
