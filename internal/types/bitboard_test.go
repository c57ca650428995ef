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
	"testing"

	"github.com/stretchr/testify/assert"
)

// set to true for printing output during tests
const verbose bool = false

func TestBitboardSquareMembership(t *testing.T) {
	var b Bitboard
	assert.True(t, b.IsEmpty())

	b = b.WithSquare(Sq1a)
	b = b.WithSquare(Sq9i)
	b = b.WithSquare(Sq5e)
	assert.False(t, b.IsEmpty())
	assert.True(t, b.Has(Sq1a))
	assert.True(t, b.Has(Sq9i))
	assert.True(t, b.Has(Sq5e))
	assert.False(t, b.Has(Sq1b))
	assert.Equal(t, 3, b.PopCount())

	if verbose {
		fmt.Println(b.String())
	}

	b = b.WithoutSquare(Sq5e)
	assert.False(t, b.Has(Sq5e))
	assert.Equal(t, 2, b.PopCount())
}

func TestBitboardSetOps(t *testing.T) {
	a := BbZero.WithSquare(Sq1a).WithSquare(Sq2a)
	b := BbZero.WithSquare(Sq2a).WithSquare(Sq3a)

	assert.Equal(t, 3, a.Or(b).PopCount())
	assert.Equal(t, 1, a.And(b).PopCount())
	assert.True(t, a.And(b).Has(Sq2a))
	assert.Equal(t, 1, a.AndNot(b).PopCount())
	assert.True(t, a.AndNot(b).Has(Sq1a))
	assert.Equal(t, 2, a.Xor(b).PopCount())
}

func TestBitboardNotIsComplementWithinUniverse(t *testing.T) {
	empty := BbZero
	full := empty.Not()
	assert.Equal(t, SqLength, full.PopCount())
	assert.True(t, full.Not().IsEmpty())
}

func TestBitboardPopLsbIteratesInAscendingOrder(t *testing.T) {
	b := BbZero.WithSquare(Sq5e).WithSquare(Sq1a).WithSquare(Sq9i)
	var order []Square
	for sq, rest := b.PopLsb(); sq != SqNone; sq, rest = rest.PopLsb() {
		order = append(order, sq)
	}
	assert.Equal(t, []Square{Sq1a, Sq5e, Sq9i}, order)
}

func TestBitboardLanesBothParticipateInSetOps(t *testing.T) {
	// Sq7a (54) lives in lane 0, Sq8a (63) is the first square of lane 1.
	b := BbZero.WithSquare(Sq7a).WithSquare(Sq8a)
	assert.True(t, b.Has(Sq7a))
	assert.True(t, b.Has(Sq8a))
	assert.Equal(t, 2, b.PopCount())
}

func TestFileAndRankBb(t *testing.T) {
	f := FileBb(0)
	assert.Equal(t, RankLength, f.PopCount())
	for r := Rank(0); r < RankLength; r++ {
		assert.True(t, f.Has(SquareOf(0, r)))
	}

	r := RankBb(0)
	assert.Equal(t, FileLength, r.PopCount())
	for f := File(0); f < FileLength; f++ {
		assert.True(t, r.Has(SquareOf(f, 0)))
	}
}
