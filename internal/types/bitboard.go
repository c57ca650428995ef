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
	"math/bits"
	"strings"
)

// lane1Base is the first square living in lane 1: squares 0..62 live in
// lane 0 (63 bits), squares 63..80 live in lane 1 (18 bits). The split
// keeps both lanes at or under 63 live bits so unsigned shifts never lose
// a bit to overflow.
const lane1Base = 63

// Bitboard is the set of occupied squares of an 81-square Shogi board,
// packed across two 64-bit lanes. Lane 0 covers squares 0..62 (files
// 0..6), lane 1 covers squares 63..80 (files 7..8).
type Bitboard struct {
	lo uint64
	hi uint64
}

// BbZero is the empty bitboard.
var BbZero = Bitboard{}

// bbUniverse has every one of the 81 valid squares set; used to implement
// Not as a complement within the legal universe rather than ^uint64(0).
var bbUniverse = Bitboard{lo: (uint64(1) << lane1Base) - 1, hi: (uint64(1) << (SqLength - lane1Base)) - 1}

// laneAndBit returns which lane sq lives in (0 or 1) and its bit index
// within that lane.
func laneAndBit(sq Square) (lane int, bit uint) {
	if sq < lane1Base {
		return 0, uint(sq)
	}
	return 1, uint(sq - lane1Base)
}

// SquareBb returns the singleton bitboard containing only sq.
func SquareBb(sq Square) Bitboard {
	lane, bit := laneAndBit(sq)
	if lane == 0 {
		return Bitboard{lo: uint64(1) << bit}
	}
	return Bitboard{hi: uint64(1) << bit}
}

// FileBb returns the bitboard of every square on file f.
func FileBb(f File) Bitboard {
	return fileBbTable[f]
}

// RankBb returns the bitboard of every square on rank r.
func RankBb(r Rank) Bitboard {
	return rankBbTable[r]
}

var fileBbTable [FileLength]Bitboard
var rankBbTable [RankLength]Bitboard

func init() {
	for f := File(0); f < FileLength; f++ {
		var b Bitboard
		for r := Rank(0); r < RankLength; r++ {
			b = b.Or(SquareBb(SquareOf(f, r)))
		}
		fileBbTable[f] = b
	}
	for r := Rank(0); r < RankLength; r++ {
		var b Bitboard
		for f := File(0); f < FileLength; f++ {
			b = b.Or(SquareBb(SquareOf(f, r)))
		}
		rankBbTable[r] = b
	}
}

// Or returns the union of b and o.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{lo: b.lo | o.lo, hi: b.hi | o.hi}
}

// And returns the intersection of b and o.
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{lo: b.lo & o.lo, hi: b.hi & o.hi}
}

// AndNot returns the squares in b that are not in o.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{lo: b.lo &^ o.lo, hi: b.hi &^ o.hi}
}

// Xor returns the symmetric difference of b and o.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{lo: b.lo ^ o.lo, hi: b.hi ^ o.hi}
}

// Not returns the complement of b within the 81-square universe.
func (b Bitboard) Not() Bitboard {
	return bbUniverse.Xor(b)
}

// IsEmpty reports whether b has no squares set.
func (b Bitboard) IsEmpty() bool {
	return b.lo == 0 && b.hi == 0
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	lane, bit := laneAndBit(sq)
	if lane == 0 {
		return b.lo&(uint64(1)<<bit) != 0
	}
	return b.hi&(uint64(1)<<bit) != 0
}

// WithSquare returns b with sq added.
func (b Bitboard) WithSquare(sq Square) Bitboard {
	return b.Or(SquareBb(sq))
}

// WithoutSquare returns b with sq removed.
func (b Bitboard) WithoutSquare(sq Square) Bitboard {
	return b.AndNot(SquareBb(sq))
}

// PopCount returns the number of squares set in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi)
}

// Lsb returns the lowest-numbered square set in b, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b.lo != 0 {
		return Square(bits.TrailingZeros64(b.lo))
	}
	if b.hi != 0 {
		return Square(lane1Base + bits.TrailingZeros64(b.hi))
	}
	return SqNone
}

// PopLsb returns b's lowest-numbered square and the bitboard with that
// square removed. If b is empty it returns SqNone and BbZero.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone, BbZero
	}
	return sq, b.WithoutSquare(sq)
}

// Squares returns every square set in b, in ascending order. Convenience
// for tests and debug printing; hot paths should use PopLsb directly.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.PopCount())
	for sq, rest := b.PopLsb(); sq != SqNone; sq, rest = rest.PopLsb() {
		out = append(out, sq)
	}
	return out
}

// Merge folds the two lanes into a single 64-bit word for use as the
// source operand of a parallel-bit-extract (PEXT) query. Lane 0 occupies
// the low 63 bits unchanged; lane 1 is deposited into the word's top bit
// (bit 63) only, which is the sole bit merge() can transfer losslessly
// from an 18-bit lane into a 64-bit word.
//
// This is intentionally a narrow, spec-literal construction. No attack
// table indexes through it: the lance table and the bishop/rook sliding
// table both gather their masked bits from the two lanes directly instead
// of reducing through this lossy 64-bit word; see lanceOccupancyIndex in
// internal/attacks/lance.go and SlidingAttackTable.index in
// internal/attacks/sliding.go.
func (b Bitboard) Merge() uint64 {
	return b.lo | (b.hi&1)<<63
}

// String returns the 81 bits as a single rank/file grid, '1' for
// occupied, '.' for empty, ranks a..i top to bottom.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank(0); r < RankLength; r++ {
		for f := File(0); f < FileLength; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		if r != RankLength-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// DebugString returns a verbose representation including the raw lane
// words, useful in test failures.
func (b Bitboard) DebugString() string {
	return fmt.Sprintf("Bitboard{lo=%#017x, hi=%#017x}\n%s", b.lo, b.hi, b.String())
}
