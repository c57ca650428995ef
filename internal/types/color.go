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

// Color identifies one of the two sides.
type Color uint8

const (
	Black Color = 0
	White Color = 1

	ColorLength = 2
)

// IsValid reports whether c is Black or White.
func (c Color) IsValid() bool {
	return c < ColorLength
}

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

// String returns "b" or "w", as used in SFEN.
func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// promotionZoneRank reports whether rank r lies in c's promotion zone: the
// three ranks closest to the opponent's side (ranks a-c for Black moving
// down the rank index, g-i for White).
func (c Color) promotionZoneRank(r Rank) bool {
	if c == Black {
		return r <= 2
	}
	return r >= 6
}

// InPromotionZone reports whether sq lies in c's promotion zone.
func (c Color) InPromotionZone(sq Square) bool {
	return c.promotionZoneRank(sq.RankOf())
}
