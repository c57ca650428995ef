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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveEncodingRoundTrips(t *testing.T) {
	p := MakePiece(Black, HI)
	m := NewMove(Sq2h, Sq2b, p, false)

	assert.Equal(t, Sq2h, m.From())
	assert.Equal(t, Sq2b, m.To())
	assert.Equal(t, p, m.Piece())
	assert.False(t, m.IsPromote())
	assert.True(t, m.IsValid())
}

func TestMovePromoteBit(t *testing.T) {
	p := MakePiece(White, GI)
	m := NewMove(Sq4c, Sq4b, p, true)

	assert.True(t, m.IsPromote())
	assert.Equal(t, "4c4b+", m.String())
}

func TestMoveNoneIsNeverValid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
}

func TestMoveListClearRetainsCapacity(t *testing.T) {
	ml := NewMoveList()
	p := MakePiece(Black, FU)
	ml.PushBack(NewMove(Sq1g, Sq1f, p, false))
	ml.PushBack(NewMove(Sq2g, Sq2f, p, false))
	assert.Equal(t, 2, ml.Len())

	m := ml.At(0)
	ml.Clear()
	assert.Equal(t, 0, ml.Len())
	assert.Equal(t, MaxLegalMoves, cap(ml.Slice()))
	assert.False(t, ml.Contains(m))
}
