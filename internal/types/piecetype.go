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

// PieceType is a set of constants for the piece types of Shogi, base and
// promoted.
//  PtNone   = 0
//  FU (pawn)          = 1   KY (lance)         = 2   KE (knight) = 3
//  GI (silver)        = 4   KI (gold)          = 5
//  KA (bishop)        = 6   HI (rook)          = 7   OU (king)   = 8
//  TO (promoted pawn) = 9   NY (promoted lance) = 10  NK (promoted knight) = 11
//  NG (promoted silver) = 12
//  UM (horse, promoted bishop) = 13  RY (dragon, promoted rook) = 14
//  OCCUPIED is a pseudo-type used only to index the union of all pieces.
type PieceType uint8

const (
	PtNone PieceType = 0
	FU     PieceType = 1
	KY     PieceType = 2
	KE     PieceType = 3
	GI     PieceType = 4
	KI     PieceType = 5
	KA     PieceType = 6
	HI     PieceType = 7
	OU     PieceType = 8
	TO     PieceType = 9
	NY     PieceType = 10
	NK     PieceType = 11
	NG     PieceType = 12
	UM     PieceType = 13
	RY     PieceType = 14

	PtLength PieceType = 15

	// OCCUPIED selects the union of every piece on the board in
	// Position.PiecesP; Position's per-type bitboard array has no slot for
	// it. It is never a real piece's type.
	OCCUPIED PieceType = PtLength
)

// IsValid reports whether pt is one of the 14 real piece types.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// IsPromoted reports whether pt is a promoted piece type.
func (pt PieceType) IsPromoted() bool {
	return pt >= TO
}

// IsSliding reports whether pt moves along an unbounded ray: KA/HI and
// their promotions UM/RY.
func (pt PieceType) IsSliding() bool {
	switch pt {
	case KA, HI, UM, RY:
		return true
	default:
		return false
	}
}

// array mapping each base type to its promoted form, PtNone where a type
// has none (KI and OU never promote).
var promotedOf = [PtLength]PieceType{
	PtNone: PtNone,
	FU:     TO,
	KY:     NY,
	KE:     NK,
	GI:     NG,
	KI:     PtNone,
	KA:     UM,
	HI:     RY,
	OU:     PtNone,
	TO:     PtNone,
	NY:     PtNone,
	NK:     PtNone,
	NG:     PtNone,
	UM:     PtNone,
	RY:     PtNone,
}

// Promote returns pt's promoted form, or PtNone if pt cannot promote.
func (pt PieceType) Promote() PieceType {
	return promotedOf[pt]
}

// array mapping each promoted type back to its base type, identity for
// base types.
var demotedOf = [PtLength]PieceType{
	PtNone: PtNone,
	FU:     FU,
	KY:     KY,
	KE:     KE,
	GI:     GI,
	KI:     KI,
	KA:     KA,
	HI:     HI,
	OU:     OU,
	TO:     FU,
	NY:     KY,
	NK:     KE,
	NG:     GI,
	UM:     KA,
	RY:     HI,
}

// Demote returns pt's unpromoted base type. For a type that is already a
// base type this returns pt unchanged.
func (pt PieceType) Demote() PieceType {
	return demotedOf[pt]
}

// CanPromote reports whether pt has a promoted form.
func (pt PieceType) CanPromote() bool {
	return promotedOf[pt] != PtNone
}

// array of string labels for piece types, indexed by PieceType.
var pieceTypeToString = [PtLength]string{
	"", "FU", "KY", "KE", "GI", "KI", "KA", "HI", "OU", "TO", "NY", "NK", "NG", "UM", "RY",
}

// String returns the romanized two-letter label for pt ("FU", "KA", ...).
func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "--"
	}
	return pieceTypeToString[pt]
}
