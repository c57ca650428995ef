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
	"github.com/na2hiro/yasai/internal/types"
)

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func fileDistance(a, b types.Square) int {
	return absInt(int(a.FileOf()) - int(b.FileOf()))
}

func rankDistance(a, b types.Square) int {
	return absInt(int(a.RankOf()) - int(b.RankOf()))
}

// step returns the square reached by moving d from sq, and whether that
// move is a legal single step: the destination must be on the board, at
// most one file away, and at most two ranks away (the knight's jump is
// the only two-rank step; anything wider is a wrap-around artifact of the
// column-major numbering).
func step(sq types.Square, d Direction) (types.Square, bool) {
	to := int(sq) + int(d)
	if to < 0 || to >= types.SqLength {
		return types.SqNone, false
	}
	dst := types.Square(to)
	if fileDistance(sq, dst) > 1 || rankDistance(sq, dst) > 2 {
		return types.SqNone, false
	}
	return dst, true
}

// pieceDeltas lists the step deltas for each color of each step-moving
// base piece type, per spec §6.2. Sliding pieces (KY, KA, HI) and their
// promotions are handled by the lance and sliding tables instead.
var pieceDeltas = map[types.PieceType][2][]Direction{
	types.FU: {
		{N},
		{S},
	},
	types.KE: {
		{NNE, NNW},
		{SSE, SSW},
	},
	types.GI: {
		{N, NE, SE, SW, NW},
		{S, NE, SE, SW, NW},
	},
	types.KI: {
		{N, E, S, W, NE, NW},
		{N, E, S, W, SE, SW},
	},
	types.OU: {
		{N, E, S, W, NE, SE, SW, NW},
		{N, E, S, W, NE, SE, SW, NW},
	},
}

// goldDeltas is the delta set used by every gold-like piece: KI itself and
// the four promoted pieces that move identically (TO, NY, NK, NG).
func goldDeltas(c types.Color) []Direction {
	return pieceDeltas[types.KI][c]
}

// PieceAttackTable serves the O(1) step-attack lookup for FU, KE, GI, KI
// (and, through GoldAttack, which internal/movegen calls for KI, TO, NY,
// NK and NG alike, the promoted gold-like pieces) and OU.
type PieceAttackTable struct {
	table map[types.PieceType][2][types.SqLength]types.Bitboard
}

// Attack returns the squares pt attacks from sq when played by color c.
func (t *PieceAttackTable) Attack(pt types.PieceType, c types.Color, sq types.Square) types.Bitboard {
	return t.table[pt][c][sq]
}

func buildPieceAttackTable() *PieceAttackTable {
	t := &PieceAttackTable{table: make(map[types.PieceType][2][types.SqLength]types.Bitboard)}
	for pt, deltasByColor := range pieceDeltas {
		var perColor [2][types.SqLength]types.Bitboard
		for c := types.Black; c <= types.White; c++ {
			for sq := types.Square(0); sq < types.SqLength; sq++ {
				var bb types.Bitboard
				for _, d := range deltasByColor[c] {
					if to, ok := step(sq, d); ok {
						bb = bb.WithSquare(to)
					}
				}
				perColor[c][sq] = bb
			}
		}
		t.table[pt] = perColor
	}
	return t
}
