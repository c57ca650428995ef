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
)

// Move is a 32-bit encoding of a single board move: {from, to, promote,
// moved piece}. Drop moves (re-entering a captured piece from hand) are a
// separate encoding in a wider engine and are not represented here.
//
//	BITMAP 32-bit
//	|unused --------------|piece|p|--from--|---to---|
//	3 ...                 1 1   1 1 1 1 1 1 1 1 1 1 1 1 1
//	1                     9 5   4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	to      : bits 0-6  (7 bits, 0..80)
//	from    : bits 7-13 (7 bits, 0..80)
//	promote : bit 14
//	piece   : bits 15-19 (5 bits, the moved Piece)
type Move uint32

const (
	// MoveNone is the zero value: not a valid move.
	MoveNone Move = 0

	moveToShift      uint = 0
	moveFromShift    uint = 7
	movePromoteShift uint = 14
	movePieceShift   uint = 15

	moveSquareMask Move = 0x7F
	movePromoteBit Move = 1 << movePromoteShift
	movePieceMask  Move = 0x1F << movePieceShift
)

// NewMove returns the encoded move of piece p from from to to, promoting
// if promote is true.
func NewMove(from, to Square, p Piece, promote bool) Move {
	m := Move(to)<<moveToShift | Move(from)<<moveFromShift | Move(p)<<movePieceShift
	if promote {
		m |= movePromoteBit
	}
	return m
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((m >> moveToShift) & moveSquareMask)
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m >> moveFromShift) & moveSquareMask)
}

// IsPromote reports whether the move promotes the piece on arrival.
func (m Move) IsPromote() bool {
	return m&movePromoteBit != 0
}

// Piece returns the piece being moved, in its pre-move form.
func (m Move) Piece() Piece {
	return Piece((m & movePieceMask) >> movePieceShift)
}

// IsValid reports whether m has well-formed squares and a real piece.
// MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.Piece().IsValid()
}

// String returns a USI-like representation, e.g. "7g7f" or "8h2b+".
func (m Move) String() string {
	if m == MoveNone {
		return "none"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromote() {
		s += "+"
	}
	return s
}

// DebugString returns a verbose representation, useful in test failures.
func (m Move) DebugString() string {
	return fmt.Sprintf("Move{from=%s to=%s piece=%s promote=%v} (%s)",
		m.From(), m.To(), m.Piece(), m.IsPromote(), m)
}
