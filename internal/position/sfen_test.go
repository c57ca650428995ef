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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/na2hiro/yasai/internal/types"
)

func TestNewSfenParsesStartingPosition(t *testing.T) {
	pos, err := NewSfen(StartSfen)
	require.NoError(t, err)
	assert.Equal(t, types.Black, pos.SideToMove())
	assert.Equal(t, types.MakePiece(types.Black, types.OU), pos.PieceOn(types.Sq5i))
	assert.Equal(t, types.MakePiece(types.White, types.OU), pos.PieceOn(types.Sq5a))
	assert.Equal(t, 9, pos.PiecesCP(types.Black, types.FU).PopCount())
	assert.Equal(t, 9, pos.PiecesCP(types.White, types.FU).PopCount())
	assert.True(t, pos.PieceOn(types.Sq2h) == types.MakePiece(types.Black, types.HI))
	assert.True(t, pos.PieceOn(types.Sq8b) == types.MakePiece(types.White, types.HI))
}

func TestNewSfenParsesPromotedPieces(t *testing.T) {
	pos, err := NewSfen("4k4/9/9/9/4+R4/9/9/9/4K4 b")
	require.NoError(t, err)
	assert.Equal(t, types.MakePiece(types.Black, types.RY), pos.PieceOn(types.Sq5e))
}

func TestNewSfenRejectsMalformedBoard(t *testing.T) {
	_, err := NewSfen("not-a-board b")
	assert.Error(t, err)

	_, err = NewSfen("4k3/9/9/9/9/9/9/9/4K4 b") // one rank short a file
	assert.Error(t, err)

	_, err = NewSfen("4k4/9/9/9/9/9/9/9/4K4/9 b") // one rank too many
	assert.Error(t, err)
}

func TestNewSfenDefaultsSideToMoveWhenOmitted(t *testing.T) {
	pos, err := NewSfen("4k4/9/9/9/9/9/9/9/4K4")
	require.NoError(t, err)
	assert.Equal(t, types.Black, pos.SideToMove())
}
