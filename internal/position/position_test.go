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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/na2hiro/yasai/internal/types"
)

// set to true for printing output during tests
const verbose bool = false

func TestStartPositionHasNoCheckersOrPins(t *testing.T) {
	pos, err := NewSfen(StartSfen)
	require.NoError(t, err)
	assert.False(t, pos.InCheck())
	assert.True(t, pos.Checkers().IsEmpty())
	assert.True(t, pos.Pinned().IsEmpty())
	assert.Equal(t, types.Black, pos.SideToMove())

	if verbose {
		fmt.Println(pos.String())
	}
}

func TestAttackersToFindsRookOnOpenFile(t *testing.T) {
	// A lone black rook on 5e and a white king on 5a: the rook attacks
	// the king's square along the open file.
	pos, err := NewSfen("4k4/9/9/9/4R4/9/9/9/9 b")
	require.NoError(t, err)
	attackers := pos.AttackersTo(types.Black, types.Sq5a)
	assert.Equal(t, 1, attackers.PopCount())
	assert.True(t, attackers.Has(types.Sq5e))
}

func TestCheckersDetectsSingleCheck(t *testing.T) {
	pos, err := NewSfen("4k4/9/9/9/4R4/9/9/9/4K4 w")
	require.NoError(t, err)
	assert.True(t, pos.InCheck())
	assert.Equal(t, 1, pos.Checkers().PopCount())
	assert.True(t, pos.Checkers().Has(types.Sq5e))
}

func TestPinnedDetectsGoldPinnedOnFile(t *testing.T) {
	// Black king on 5i, black gold on 5e, white rook on 5a: the gold is
	// pinned along the file and may only move within the file.
	pos, err := NewSfen("4r4/9/9/9/4G4/9/9/9/4K4 b")
	require.NoError(t, err)
	assert.True(t, pos.Pinned().Has(types.Sq5e))
	assert.Equal(t, 1, pos.Pinned().PopCount())
}

func TestPinnedIgnoresLanceThreateningTheWrongDirection(t *testing.T) {
	// A white lance below the black king can never pin it: a white lance
	// only attacks toward rank i (down the board as printed), so a lance
	// south of the black king is never a pinning sniper on that king.
	pos, err := NewSfen("9/9/9/9/4K4/4G4/9/9/4l4 b")
	require.NoError(t, err)
	assert.True(t, pos.Pinned().IsEmpty())
}

func TestAttackersToExcludingXRaysThroughVacatedSquare(t *testing.T) {
	pos, err := NewSfen("4k4/9/9/9/4p4/9/9/9/4R4 w")
	require.NoError(t, err)
	// With the pawn still on the board the rook doesn't reach the king...
	assert.True(t, pos.AttackersTo(types.Black, types.Sq5a).IsEmpty())
	// ...but once the pawn's square is excluded (as if it had just moved
	// away) the rook's ray reaches through to the king.
	attackers := pos.AttackersToExcluding(types.Black, types.Sq5a, types.Sq5e)
	assert.True(t, attackers.Has(types.Sq5i))
}
