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

import "fmt"

// Square is one of the 81 squares of a Shogi board, laid out column-major:
// sq = file*9 + rank. This keeps every file's 9 squares numerically
// contiguous, which is what lets the lance attack table collapse to a
// 7-bit file-occupancy index (see internal/attacks).
type Square uint8

// SqLength is the number of squares on the board.
const SqLength = 81

const (
	Sq1a    Square = 0
	Sq1b    Square = 1
	Sq1c    Square = 2
	Sq1d    Square = 3
	Sq1e    Square = 4
	Sq1f    Square = 5
	Sq1g    Square = 6
	Sq1h    Square = 7
	Sq1i    Square = 8
	Sq2a    Square = 9
	Sq2b    Square = 10
	Sq2c    Square = 11
	Sq2d    Square = 12
	Sq2e    Square = 13
	Sq2f    Square = 14
	Sq2g    Square = 15
	Sq2h    Square = 16
	Sq2i    Square = 17
	Sq3a    Square = 18
	Sq3b    Square = 19
	Sq3c    Square = 20
	Sq3d    Square = 21
	Sq3e    Square = 22
	Sq3f    Square = 23
	Sq3g    Square = 24
	Sq3h    Square = 25
	Sq3i    Square = 26
	Sq4a    Square = 27
	Sq4b    Square = 28
	Sq4c    Square = 29
	Sq4d    Square = 30
	Sq4e    Square = 31
	Sq4f    Square = 32
	Sq4g    Square = 33
	Sq4h    Square = 34
	Sq4i    Square = 35
	Sq5a    Square = 36
	Sq5b    Square = 37
	Sq5c    Square = 38
	Sq5d    Square = 39
	Sq5e    Square = 40
	Sq5f    Square = 41
	Sq5g    Square = 42
	Sq5h    Square = 43
	Sq5i    Square = 44
	Sq6a    Square = 45
	Sq6b    Square = 46
	Sq6c    Square = 47
	Sq6d    Square = 48
	Sq6e    Square = 49
	Sq6f    Square = 50
	Sq6g    Square = 51
	Sq6h    Square = 52
	Sq6i    Square = 53
	Sq7a    Square = 54
	Sq7b    Square = 55
	Sq7c    Square = 56
	Sq7d    Square = 57
	Sq7e    Square = 58
	Sq7f    Square = 59
	Sq7g    Square = 60
	Sq7h    Square = 61
	Sq7i    Square = 62
	Sq8a    Square = 63
	Sq8b    Square = 64
	Sq8c    Square = 65
	Sq8d    Square = 66
	Sq8e    Square = 67
	Sq8f    Square = 68
	Sq8g    Square = 69
	Sq8h    Square = 70
	Sq8i    Square = 71
	Sq9a    Square = 72
	Sq9b    Square = 73
	Sq9c    Square = 74
	Sq9d    Square = 75
	Sq9e    Square = 76
	Sq9f    Square = 77
	Sq9g    Square = 78
	Sq9h    Square = 79
	Sq9i    Square = 80
	SqNone  Square = 81 // sentinel: not a valid square
)

// IsValid reports whether sq is one of the 81 board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq / RankLength)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq % RankLength)
}

// SquareOf returns the square for the given file and rank, or SqNone if
// either is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(f)*RankLength + int(r))
}

// String returns the traditional file-digit/rank-letter notation (e.g. "5e"),
// or "-" for an invalid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// MakeSquare parses a square string as produced by String, or returns
// SqNone if it is not a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	if s[0] < '1' || s[0] > '9' {
		return SqNone
	}
	if s[1] < 'a' || s[1] > 'i' {
		return SqNone
	}
	f := File(s[0] - '1')
	r := Rank(s[1] - 'a')
	return SquareOf(f, r)
}

// fileDistance and rankDistance return the absolute file and rank distance
// between two squares. Nothing in this package calls them; the attack table
// builders in internal/attacks use their own copies to reject deltas that
// wrap around a file/rank edge.
func fileDistance(a, b Square) int {
	return absInt(int(a.FileOf()) - int(b.FileOf()))
}

func rankDistance(a, b Square) int {
	return absInt(int(a.RankOf()) - int(b.RankOf()))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DebugString returns a verbose representation, useful in test failures.
func (sq Square) DebugString() string {
	return fmt.Sprintf("Square(%d)=%s", uint8(sq), sq.String())
}
