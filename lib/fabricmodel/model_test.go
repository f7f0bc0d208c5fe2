// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package fabricmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricmodel"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6parts"
)

func TestEmptyBuild(t *testing.T) {
	t.Parallel()
	m, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)

	assert.Equal(t, 4, m.NumConfigRows)
	assert.Equal(t, 36, m.CenterY, "center_y = 2 + 2*17")
	assert.Equal(t, fabricmodel.NA, m.TileAt(0, 0).Type)
	assert.Equal(t, fabricmodel.CENTER, m.TileAt(m.CenterY, m.CenterX).Type)
}

func TestEmptyBuildIsDeterministic(t *testing.T) {
	t.Parallel()
	m1, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)
	m2, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)

	require.Equal(t, m1.Width, m2.Width)
	require.Equal(t, m1.Height, m2.Height)
	for y := 0; y < m1.Height; y++ {
		for x := 0; x < m1.Width; x++ {
			a, b := m1.TileAt(y, x), m2.TileAt(y, x)
			require.Equal(t, a.Type, b.Type, "tile (%d,%d) type", y, x)
			require.Equal(t, a.Flags, b.Flags, "tile (%d,%d) flags", y, x)
		}
	}
}

func TestPosInRowBoundaries(t *testing.T) {
	t.Parallel()
	m, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)

	const topInnerRow = 2 // outerIORows
	assert.Equal(t, -1, fabricmodel.PosInRow(topInnerRow-1, m.NumConfigRows), "outer IO row is not in any row-group")
	assert.Equal(t, -1, fabricmodel.PosInRow(m.CenterY, m.NumConfigRows), "central-regs row is not in any row-group")

	row, ok := fabricmodel.WhichRow(topInnerRow, m.NumConfigRows)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, fabricmodel.PosInRow(topInnerRow, m.NumConfigRows))
}

func TestHCLKPositionIsEight(t *testing.T) {
	t.Parallel()
	m, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)

	for row := 0; row < m.NumConfigRows; row++ {
		foundHCLK := false
		for y := 0; y < m.Height; y++ {
			r, ok := fabricmodel.WhichRow(y, m.NumConfigRows)
			if !ok || r != row {
				continue
			}
			pos := fabricmodel.PosInRow(y, m.NumConfigRows)
			if fabricmodel.IsHCLK(pos) {
				foundHCLK = true
				assert.Equal(t, 8, pos)
			}
		}
		assert.True(t, foundHCLK, "row-group %d has no HCLK tile", row)
	}
}

func TestCenterColumnIsAfterRGroup(t *testing.T) {
	t.Parallel()
	m, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)
	assert.Greater(t, m.CenterX, 0)
	assert.Less(t, m.CenterX, m.Width)
}
