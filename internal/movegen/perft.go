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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/na2hiro/yasai/internal/position"
	"github.com/na2hiro/yasai/internal/types"
)

var out = message.NewPrinter(language.English)

// Perft walks the legal move tree to a fixed depth, counting leaf nodes
// and a few per-node statistics. It is the standard cross-check that a
// move generator produces neither too many nor too few moves at every
// ply, not just the root.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	PromotionCounter uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	stopFlag         bool
}

// NewPerft returns an empty Perft.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a running StartPerft return early; for use when
// StartPerft is driven from a goroutine.
func (pf *Perft) Stop() {
	pf.stopFlag = true
}

// StartPerft runs perft from sfen to depth, printing a report to out.
func (pf *Perft) StartPerft(sfen string, depth int) {
	pf.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	pf.reset()

	pos, err := position.NewSfen(sfen)
	if err != nil {
		out.Printf("invalid sfen %q: %v\n", sfen, err)
		return
	}

	out.Printf("Performing perft for depth %d\n", depth)
	out.Printf("SFEN: %s\n", sfen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := pf.search(pos, depth)
	elapsed := time.Since(start)

	if pf.stopFlag {
		out.Print("perft stopped\n")
		return
	}
	pf.Nodes = result

	out.Printf("Time       : %s\n", elapsed)
	out.Printf("NPS        : %d nps\n", pf.Nodes*uint64(time.Second)/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Nodes      : %d\n", pf.Nodes)
	out.Printf("Captures   : %d\n", pf.CaptureCounter)
	out.Printf("Promotions : %d\n", pf.PromotionCounter)
	out.Printf("Checks     : %d\n", pf.CheckCounter)
	out.Printf("Checkmates : %d\n", pf.CheckMateCounter)
	out.Printf("-----------------------------------------\n")
}

func (pf *Perft) search(pos *position.Position, depth int) uint64 {
	if pf.stopFlag {
		return 0
	}
	ml := types.NewMoveList()
	GenerateLegals(pos, ml)

	if depth == 1 {
		var leaf uint64
		ml.ForEach(func(m types.Move) {
			leaf++
			if pos.PieceOn(m.To()) != types.PieceNone {
				pf.CaptureCounter++
			}
			if m.IsPromote() {
				pf.PromotionCounter++
			}
			child := pos.Make(m)
			if child.InCheck() {
				pf.CheckCounter++
				childMoves := types.NewMoveList()
				GenerateLegals(child, childMoves)
				if childMoves.Len() == 0 {
					pf.CheckMateCounter++
				}
			}
		})
		return leaf
	}

	var total uint64
	ml.ForEach(func(m types.Move) {
		total += pf.search(pos.Make(m), depth-1)
	})
	return total
}

func (pf *Perft) reset() {
	pf.Nodes = 0
	pf.CaptureCounter = 0
	pf.PromotionCounter = 0
	pf.CheckCounter = 0
	pf.CheckMateCounter = 0
}
