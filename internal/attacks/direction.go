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

// Package attacks builds and serves the precomputed attack tables every
// piece type queries during move generation: step attacks for FU/KE/GI/KI/OU,
// the lance's masked file-occupancy table, the bishop/rook sliding table,
// and the square-pair BETWEEN table.
package attacks

// Direction is a signed square delta. Because squares are numbered
// column-major (sq = file*9 + rank), moving one rank is ±1 and moving one
// file is ∓9.
type Direction int8

const (
	N Direction = -1
	S Direction = 1
	E Direction = -9
	W Direction = 9

	NE = N + E
	NW = N + W
	SE = S + E
	SW = S + W

	NNE = N + N + E
	NNW = N + N + W
	SSE = S + S + E
	SSW = S + S + W
)
