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
	"fmt"
	"testing"
	"time"

	"github.com/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/na2hiro/yasai/internal/position"
	"github.com/na2hiro/yasai/internal/types"
)

// set to true for printing output during tests
const verbose bool = false

func legalMoves(t *testing.T, sfen string) (*position.Position, *types.MoveList) {
	t.Helper()
	pos, err := position.NewSfen(sfen)
	require.NoError(t, err)
	ml := types.NewMoveList()
	GenerateLegals(pos, ml)
	if verbose {
		fmt.Println(ml.String())
	}
	return pos, ml
}

// S1: the standard starting position has exactly 30 legal moves for the
// side to move once drops are excluded.
func TestGenerateLegalsStartingPositionHas30Moves(t *testing.T) {
	_, ml := legalMoves(t, position.StartSfen)
	assert.Equal(t, 30, ml.Len())
}

// S2: a lone king in the middle of an otherwise empty board has all 8
// adjacent destinations available.
func TestGenerateLegalsLoneKingHasEightDestinations(t *testing.T) {
	_, ml := legalMoves(t, "9/9/9/9/4K4/9/9/9/9 b")
	assert.Equal(t, 8, ml.Len())
}

// S3: a rook sweeps an open file and rank until the board edge. The king
// sits off both the rook's file and rank so it never blocks the sweep.
func TestGenerateLegalsRookSweepsOpenLines(t *testing.T) {
	_, ml := legalMoves(t, "9/9/9/9/4R4/9/9/9/8K b")
	// 8 rook destinations on the file + 8 on the rank, all unobstructed;
	// 5a, 5b and 5c lie in the promotion zone and add a promoting variant
	// each (19 rook moves), and the king on 1i adds 1h, 2h and 2i.
	assert.Equal(t, 22, ml.Len())
}

// S4: a bishop's diagonal sweep stops at the first blocking piece.
func TestGenerateLegalsBishopStopsAtBlocker(t *testing.T) {
	// Black bishop on 5e, white pawn on 7c blocking the NW diagonal two
	// squares short of the board edge: 5e may capture onto 7c but not
	// slide past it to 8b or 9a.
	_, ml := legalMoves(t, "9/9/2p6/9/4B4/9/9/9/4K4 b")
	var reachesBlocker, reachesPastBlocker bool
	ml.ForEach(func(m types.Move) {
		if m.From() != types.Sq5e {
			return
		}
		if m.To() == types.Sq7c {
			reachesBlocker = true
		}
		if m.To() == types.Sq8b || m.To() == types.Sq9a {
			reachesPastBlocker = true
		}
	})
	assert.True(t, reachesBlocker, "bishop must be able to capture the blocker")
	assert.False(t, reachesPastBlocker, "bishop may not slide past its own diagonal blocker")
}

// S5: a gold pinned to its king along a file may only move within that
// file; its diagonal step destinations are illegal.
func TestGenerateLegalsPinnedGoldRestrictedToFile(t *testing.T) {
	pos, ml := legalMoves(t, "4r4/9/9/9/4G4/9/9/9/4K4 b")
	require.True(t, pos.Pinned().Has(types.Sq5e))
	ml.ForEach(func(m types.Move) {
		if m.From() != types.Sq5e {
			return
		}
		assert.Equal(t, types.File(4), m.To().FileOf(), "pinned gold must stay on the pin file")
	})
}

// S6: under double check, only king moves are legal.
func TestGenerateLegalsDoubleCheckOnlyKingMoves(t *testing.T) {
	// Black king on 5e attacked simultaneously by a white rook on 5a
	// (file) and a white bishop on 1a (diagonal through 2b/3c/4d).
	pos, ml := legalMoves(t, "4r3b/9/9/9/4K4/9/9/9/9 b")
	require.Equal(t, 2, pos.Checkers().PopCount())
	ml.ForEach(func(m types.Move) {
		assert.Equal(t, types.Sq5e, m.From(), "only the king may move out of a double check")
	})
}

// Test_TimingGenerateLegals profiles repeated generation from the
// starting position; run with -run Test_Timing -v and inspect cpu.pprof
// via "go tool pprof -http=localhost:8080 movegen.test cpu.pprof".
func Test_TimingGenerateLegals(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test, skipped with -short")
	}
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()

	pos, err := position.NewSfen(position.StartSfen)
	require.NoError(t, err)
	ml := types.NewMoveList()

	const iterations = 200_000
	start := time.Now()
	for i := 0; i < iterations; i++ {
		GenerateLegals(pos, ml)
	}
	elapsed := time.Since(start)
	fmt.Printf("%d generations took %s (%d moves/gen)\n", iterations, elapsed, ml.Len())
}

func TestGenerateLegalsClearsListOnEachCall(t *testing.T) {
	pos, err := position.NewSfen(position.StartSfen)
	require.NoError(t, err)
	ml := types.NewMoveList()
	GenerateLegals(pos, ml)
	first := ml.Len()
	GenerateLegals(pos, ml)
	assert.Equal(t, first, ml.Len())
}
