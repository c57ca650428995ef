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

// allDeltas is every direction a sliding piece can travel one square in;
// used only to find the unit delta between two aligned squares.
var allDeltas = []Direction{N, S, E, W, NE, NW, SE, SW}

// unitDelta returns the direction that steps from a toward b, and whether
// a and b are aligned on a file, rank, or diagonal at all.
func unitDelta(a, b types.Square) (Direction, bool) {
	if a == b {
		return 0, false
	}
	for _, d := range allDeltas {
		curr := a
		for {
			to, ok := step(curr, d)
			if !ok {
				break
			}
			if to == b {
				return d, true
			}
			curr = to
		}
	}
	return 0, false
}

// BetweenTable answers, for any ordered pair of squares, the open squares
// strictly between them when they are aligned (same file, rank, or
// diagonal), or the empty bitboard otherwise. Symmetric: BETWEEN[a][b] ==
// BETWEEN[b][a].
type BetweenTable struct {
	table [types.SqLength][types.SqLength]types.Bitboard
}

// Between returns the open squares strictly between a and b.
func (t *BetweenTable) Between(a, b types.Square) types.Bitboard {
	return t.table[a][b]
}

func buildBetweenTable() *BetweenTable {
	t := &BetweenTable{}
	for a := types.Square(0); a < types.SqLength; a++ {
		for b := types.Square(0); b < types.SqLength; b++ {
			if a == b {
				continue
			}
			d, aligned := unitDelta(a, b)
			if !aligned {
				continue
			}
			t.table[a][b] = slidingAttacks(a, types.BbZero.WithSquare(b), []Direction{d}).WithoutSquare(b)
		}
	}
	return t
}
