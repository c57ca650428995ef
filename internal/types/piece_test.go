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

func TestMakePieceRoundTrips(t *testing.T) {
	p := MakePiece(White, KA)
	assert.Equal(t, White, p.ColorOf())
	assert.Equal(t, KA, p.TypeOf())
	assert.True(t, p.IsValid())
	assert.False(t, PieceNone.IsValid())
}

func TestPiecePromoteDemote(t *testing.T) {
	p := MakePiece(Black, HI)
	promoted := p.Promote()
	assert.Equal(t, RY, promoted.TypeOf())
	assert.Equal(t, Black, promoted.ColorOf())
	assert.Equal(t, p, promoted.Demote())

	// KI has no promoted form.
	ki := MakePiece(White, KI)
	assert.Equal(t, ki, ki.Promote())
}

func TestPieceTypeCanPromote(t *testing.T) {
	assert.True(t, FU.CanPromote())
	assert.True(t, KA.CanPromote())
	assert.False(t, KI.CanPromote())
	assert.False(t, OU.CanPromote())
	assert.False(t, TO.CanPromote())
}

func TestPieceTypeIsSliding(t *testing.T) {
	for _, pt := range []PieceType{KA, HI, UM, RY} {
		assert.True(t, pt.IsSliding(), pt.String())
	}
	for _, pt := range []PieceType{FU, KY, KE, GI, KI, OU, TO} {
		assert.False(t, pt.IsSliding(), pt.String())
	}
}

func TestColorFlipAndPromotionZone(t *testing.T) {
	assert.Equal(t, White, Black.Flip())
	assert.Equal(t, Black, White.Flip())

	assert.True(t, Black.InPromotionZone(Sq5a))
	assert.False(t, Black.InPromotionZone(Sq5e))
	assert.True(t, White.InPromotionZone(Sq5i))
	assert.False(t, White.InPromotionZone(Sq5e))
}

func TestSquareFileRankRoundTrip(t *testing.T) {
	sq := SquareOf(3, 5)
	assert.Equal(t, File(3), sq.FileOf())
	assert.Equal(t, Rank(5), sq.RankOf())
	assert.Equal(t, "4f", sq.String())
	assert.Equal(t, sq, MakeSquare("4f"))
}

func TestSquareOfRejectsOutOfRange(t *testing.T) {
	assert.Equal(t, SqNone, SquareOf(9, 0))
	assert.Equal(t, SqNone, SquareOf(0, 9))
}
