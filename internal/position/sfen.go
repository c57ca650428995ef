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

package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/na2hiro/yasai/internal/types"
)

// StartSfen is the board-setup part of the standard Shogi starting
// position, hand contents omitted since drops are out of scope here.
const StartSfen = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b"

var regexSfenBoard = regexp.MustCompile(`^[1-9lnsgkbrpLNSGKBRP+/]+$`)

var sfenPieceLetters = map[byte]types.PieceType{
	'l': types.KY, 'n': types.KE, 's': types.GI, 'g': types.KI,
	'k': types.OU, 'b': types.KA, 'r': types.HI, 'p': types.FU,
}

// NewSfen parses the board-placement and side-to-move fields of an SFEN
// string (hand and move-count fields, if present, are ignored; this core
// has no concept of pieces in hand). It reports an error for anything
// that does not describe a well-formed 9x9 board.
func NewSfen(sfen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(sfen))
	if len(fields) == 0 {
		return nil, errors.New("sfen must not be empty")
	}
	board := fields[0]
	if !regexSfenBoard.MatchString(board) {
		return nil, fmt.Errorf("sfen board contains invalid characters: %q", board)
	}

	var placement [types.SqLength]types.Piece
	ranks := strings.Split(board, "/")
	if len(ranks) != types.RankLength {
		return nil, fmt.Errorf("sfen board has %d ranks, want %d", len(ranks), types.RankLength)
	}
	for r, rankStr := range ranks {
		f := types.FileLength - 1
		promote := false
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			switch {
			case c == '+':
				promote = true
			case c >= '1' && c <= '9':
				if promote {
					return nil, fmt.Errorf("sfen rank %q: '+' not followed by a piece letter", rankStr)
				}
				n, _ := strconv.Atoi(string(c))
				f -= n
			default:
				if f < 0 {
					return nil, fmt.Errorf("sfen rank %q overflows the board", rankStr)
				}
				color := types.Black
				lower := c | 0x20
				if c == lower {
					color = types.White
				}
				pt, ok := sfenPieceLetters[lower]
				if !ok {
					return nil, fmt.Errorf("sfen rank %q: unknown piece letter %q", rankStr, c)
				}
				if promote {
					pt = pt.Promote()
					if pt == types.PtNone {
						return nil, fmt.Errorf("sfen rank %q: %q cannot promote", rankStr, c)
					}
					promote = false
				}
				sq := types.SquareOf(types.File(f), types.Rank(r))
				placement[sq] = types.MakePiece(color, pt)
				f--
			}
		}
		if f != -1 {
			return nil, fmt.Errorf("sfen rank %q does not cover all 9 files", rankStr)
		}
	}

	sideToMove := types.Black
	if len(fields) >= 2 {
		switch fields[1] {
		case "b":
			sideToMove = types.Black
		case "w":
			sideToMove = types.White
		default:
			return nil, fmt.Errorf("sfen side to move must be \"b\" or \"w\", got %q", fields[1])
		}
	}

	return New(placement, sideToMove), nil
}
