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

import "strconv"

// File is a column of the board, 0..8. File 0 is the rightmost file as seen
// from Black (traditional Shogi file "1"); file 8 is the leftmost ("9").
type File uint8

// FileLength is the number of files on a Shogi board.
const FileLength = 9

// IsValid reports whether f is a valid file.
func (f File) IsValid() bool {
	return f < FileLength
}

// String returns the traditional file digit ("1".."9").
func (f File) String() string {
	return strconv.Itoa(int(f) + 1)
}
