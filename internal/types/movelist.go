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

package types

import (
	"fmt"
	"strings"
)

// MaxLegalMoves is a safe upper bound on the number of legal moves any
// Shogi position (without drops) can have; MoveList preallocates to it so
// the generator never reallocates mid-generation.
const MaxLegalMoves = 593

// MoveList is an append-only buffer of Move, preallocated to MaxLegalMoves
// capacity. It supports no random insertion; the generator only appends.
type MoveList struct {
	moves []Move
}

// NewMoveList returns an empty MoveList with MaxLegalMoves capacity.
func NewMoveList() *MoveList {
	return &MoveList{moves: make([]Move, 0, MaxLegalMoves)}
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// At returns the move at index i. Panics if i is out of bounds.
func (ml *MoveList) At(i int) Move {
	return ml.moves[i]
}

// PushBack appends a move to the end of the list.
func (ml *MoveList) PushBack(m Move) {
	ml.moves = append(ml.moves, m)
}

// Clear empties the list while retaining its backing array, so repeated
// generate/clear cycles do not churn the allocator.
func (ml *MoveList) Clear() {
	ml.moves = ml.moves[:0]
}

// ForEach calls f with every move in the list, in generation order.
func (ml *MoveList) ForEach(f func(m Move)) {
	for _, m := range ml.moves {
		f(m)
	}
}

// Contains reports whether m is present anywhere in the list.
func (ml *MoveList) Contains(m Move) bool {
	for _, x := range ml.moves {
		if x == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a plain slice, sharing the list's backing
// array; callers must not retain it across a subsequent Clear/PushBack.
func (ml *MoveList) Slice() []Move {
	return ml.moves
}

// String returns a debug representation listing every move.
func (ml *MoveList) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "MoveList[%d]{ ", len(ml.moves))
	for i, m := range ml.moves {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
