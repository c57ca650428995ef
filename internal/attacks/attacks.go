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

package attacks

import (
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/na2hiro/yasai/config"
	"github.com/na2hiro/yasai/internal/logging"
	"github.com/na2hiro/yasai/internal/types"
)

var log = logging.GetLog()

var out = message.NewPrinter(language.English)

// Tables bundles every precomputed attack table the move generator
// queries, mirroring the ATTACK.<piece> field access spec §4.6 is written
// against.
type Tables struct {
	Step    *PieceAttackTable
	Lance   *LanceAttackTable
	Bishop  *SlidingAttackTable
	Rook    *SlidingAttackTable
	Between *BetweenTable
}

// ATTACK is the process-wide, immutable set of attack tables. It is built
// once by Init (or lazily by the first call to any accessor below) and
// never mutated afterward.
var ATTACK *Tables

var initOnce sync.Once

// Init builds every attack table. Safe to call more than once and from
// several goroutines; only the first call does any work, and concurrent
// callers wait until it is done. Package-level accessors call it
// automatically, so most callers never need to invoke it directly — it is
// exported for callers (e.g. cmd/perft) that want to account its build
// time separately.
func Init() {
	initOnce.Do(buildTables)
}

func buildTables() {
	start := time.Now()
	log.Debug("building step-piece attack table")
	step := buildPieceAttackTable()
	log.Debug("building lance attack table")
	lance := buildLanceAttackTable()
	log.Debug("building bishop sliding attack table")
	bishop := buildSlidingAttackTable(bishopDeltas, bishopTableSize)
	log.Debug("building rook sliding attack table")
	rook := buildSlidingAttackTable(rookDeltas, rookTableSize)
	log.Debug("building between table")
	between := buildBetweenTable()
	ATTACK = &Tables{Step: step, Lance: lance, Bishop: bishop, Rook: rook, Between: between}
	if config.Settings.Tables.LogBuildTimings {
		log.Info(out.Sprintf("attack tables built in %s", time.Since(start)))
	}
}

func ensureInit() {
	Init()
}

// StepAttack returns the step-piece attack for FU, KE, GI, KI, or OU.
func StepAttack(pt types.PieceType, c types.Color, sq types.Square) types.Bitboard {
	ensureInit()
	return ATTACK.Step.Attack(pt, c, sq)
}

// GoldAttack returns the KI-pattern attack used directly by KI and, by
// routing, every gold-like promoted piece (TO, NY, NK, NG).
func GoldAttack(c types.Color, sq types.Square) types.Bitboard {
	ensureInit()
	return ATTACK.Step.Attack(types.KI, c, sq)
}

// LanceAttack returns the lance's attack given the full occupied board.
func LanceAttack(c types.Color, sq types.Square, occupied types.Bitboard) types.Bitboard {
	ensureInit()
	return ATTACK.Lance.Attack(c, sq, occupied)
}

// BishopAttack returns the bishop's attack given the full occupied board.
func BishopAttack(sq types.Square, occupied types.Bitboard) types.Bitboard {
	ensureInit()
	return ATTACK.Bishop.Attack(sq, occupied)
}

// RookAttack returns the rook's attack given the full occupied board.
func RookAttack(sq types.Square, occupied types.Bitboard) types.Bitboard {
	ensureInit()
	return ATTACK.Rook.Attack(sq, occupied)
}

// Between returns the open squares strictly between a and b.
func Between(a, b types.Square) types.Bitboard {
	ensureInit()
	return ATTACK.Between.Between(a, b)
}

// PseudoAttack implements spec §4.6.3: the attack pattern used only to
// test whether a sliding piece (or its king-compound promotion) could
// reach a square on an empty board, ignoring blockers. Every non-sliding
// type, including OU itself, returns the empty bitboard here — callers
// needing king or step-piece reachability use StepAttack/GoldAttack
// directly.
func PseudoAttack(pt types.PieceType, sq types.Square) types.Bitboard {
	ensureInit()
	switch pt {
	case types.KA:
		return ATTACK.Bishop.PseudoAttack(sq)
	case types.UM:
		return ATTACK.Bishop.PseudoAttack(sq).Or(ATTACK.Step.Attack(types.OU, types.Black, sq))
	case types.HI:
		return ATTACK.Rook.PseudoAttack(sq)
	case types.RY:
		return ATTACK.Rook.PseudoAttack(sq).Or(ATTACK.Step.Attack(types.OU, types.Black, sq))
	default:
		return types.BbZero
	}
}
