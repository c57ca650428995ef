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

// Piece packs a Color and a PieceType into a single byte:
//  bit 4    : color (0 = Black, 1 = White)
//  bits 0-3 : piece type
// PieceNone is the zero value.
type Piece uint8

const (
	PieceNone Piece = 0

	PieceLength = Piece(ColorLength) << 4
)

// MakePiece returns the piece of type pt owned by c.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(c)<<4 | Piece(pt)
}

// ColorOf returns the owner of p. Undefined if p is PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 4)
}

// TypeOf returns the piece type of p.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0x0f)
}

// IsValid reports whether p is a real piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

// Promote returns the promoted form of p, or p unchanged if its type
// cannot promote.
func (p Piece) Promote() Piece {
	if pt := p.TypeOf().Promote(); pt != PtNone {
		return MakePiece(p.ColorOf(), pt)
	}
	return p
}

// Demote returns the unpromoted form of p.
func (p Piece) Demote() Piece {
	return MakePiece(p.ColorOf(), p.TypeOf().Demote())
}

// String returns a color-prefixed label, e.g. "b:HI", "w:TO", or "--" for
// PieceNone.
func (p Piece) String() string {
	if p == PieceNone {
		return "--"
	}
	return p.ColorOf().String() + ":" + p.TypeOf().String()
}
