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

func TestAllTilesMatchesStats(t *testing.T) {
	t.Parallel()
	m, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)

	tiles := m.AllTiles()
	assert.Equal(t, m.Stats().NumTiles, len(tiles))

	counts := map[fabricmodel.TileType]int{}
	for _, ti := range tiles {
		assert.True(t, ti.Y >= 0 && ti.Y < m.Height)
		assert.True(t, ti.X >= 0 && ti.X < m.Width)
		counts[ti.Type]++
	}
	assert.Equal(t, m.Stats().TileTypeCounts, counts)
}

func TestAllTilesIsDeterministic(t *testing.T) {
	t.Parallel()
	m1, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)
	m2, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)

	assert.Equal(t, m1.AllTiles(), m2.AllTiles())
}

func TestAllConnPointsReflectsDests(t *testing.T) {
	t.Parallel()
	m, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)

	t0 := m.TileAt(m.CenterY, m.CenterX)
	fromID, err := m.Interner.Add("TEST_SRC")
	require.NoError(t, err)
	toID, err := m.Interner.Add("TEST_DST")
	require.NoError(t, err)
	fromIdx := t0.AddConnPoint(fromID)
	t0.AddDest(fromIdx, m.CenterX+1, m.CenterY, toID)

	cps := m.AllConnPoints()
	var found *fabricmodel.ConnPointInfo
	for i, cp := range cps {
		if cp.Y == m.CenterY && cp.X == m.CenterX && cp.Name == "TEST_SRC" {
			found = &cps[i]
			break
		}
	}
	require.NotNil(t, found)
	require.Len(t, found.Dests, 1)
	assert.Equal(t, "TEST_DST", found.Dests[0].DestName)
	assert.Equal(t, m.CenterX+1, found.Dests[0].DestX)
}

func TestAllSwitchesResolvesNames(t *testing.T) {
	t.Parallel()
	m, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)

	tile := m.TileAt(m.CenterY, m.CenterX)
	fromID, err := m.Interner.Add("SW_FROM")
	require.NoError(t, err)
	toID, err := m.Interner.Add("SW_TO")
	require.NoError(t, err)
	fromIdx := tile.AddConnPoint(fromID)
	toIdx := tile.AddConnPoint(toID)
	_, _ = tile.AddSwitch(fabricmodel.NewSwitch(fromIdx, toIdx, false, true))

	var found bool
	for _, sw := range m.AllSwitches() {
		if sw.Y == m.CenterY && sw.X == m.CenterX && sw.FromWire == "SW_FROM" && sw.ToWire == "SW_TO" {
			found = true
			assert.True(t, sw.On)
			assert.False(t, sw.Bidir)
		}
	}
	assert.True(t, found, "expected the stamped switch to appear in AllSwitches")
}
