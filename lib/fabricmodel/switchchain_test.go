// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package fabricmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricmodel"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/wireintern"
)

func newTestTile(n int) (*fabricmodel.Tile, []int) {
	var t fabricmodel.Tile
	cps := make([]int, n)
	for i := 0; i < n; i++ {
		cps[i] = t.AddConnPoint(wireintern.ID(i + 1))
	}
	return &t, cps
}

func TestEnumerateSwitchChainsLinear(t *testing.T) {
	t.Parallel()
	tile, cp := newTestTile(3)
	_, _ = tile.AddSwitch(fabricmodel.NewSwitch(cp[0], cp[1], false, false))
	_, _ = tile.AddSwitch(fabricmodel.NewSwitch(cp[1], cp[2], false, false))

	chains, err := fabricmodel.EnumerateSwitchChains(tile, cp[0], fabricmodel.ChainFromTo)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {0, 1}}, chains)
}

func TestEnumerateSwitchChainsNoSwitch(t *testing.T) {
	t.Parallel()
	tile, cp := newTestTile(2)

	chains, err := fabricmodel.EnumerateSwitchChains(tile, cp[0], fabricmodel.ChainFromTo)
	require.NoError(t, err)
	assert.Nil(t, chains, "NO_SWITCH: no outgoing switch means nil chains, no error")
}

func TestEnumerateSwitchChainsSiblingsBeforeDescend(t *testing.T) {
	t.Parallel()
	tile, cp := newTestTile(4)
	// Two siblings off cp[0]: cp[0]->cp[1] and cp[0]->cp[2]; one
	// grandchild off cp[1]: cp[1]->cp[3].
	_, _ = tile.AddSwitch(fabricmodel.NewSwitch(cp[0], cp[1], false, false))
	_, _ = tile.AddSwitch(fabricmodel.NewSwitch(cp[0], cp[2], false, false))
	_, _ = tile.AddSwitch(fabricmodel.NewSwitch(cp[1], cp[3], false, false))

	chains, err := fabricmodel.EnumerateSwitchChains(tile, cp[0], fabricmodel.ChainFromTo)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1}, {0, 2}}, chains,
		"both siblings of cp[0] reported before sibling 0's descendant")
}

func TestEnumerateSwitchChainsCycleStopsDescent(t *testing.T) {
	t.Parallel()
	tile, cp := newTestTile(2)
	_, _ = tile.AddSwitch(fabricmodel.NewSwitch(cp[0], cp[1], false, false))
	_, _ = tile.AddSwitch(fabricmodel.NewSwitch(cp[1], cp[0], false, false))

	chains, err := fabricmodel.EnumerateSwitchChains(tile, cp[0], fabricmodel.ChainFromTo)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {0, 1}}, chains,
		"the cycling edge back to cp[0] is reported once but not descended into")
}

func TestEnumerateSwitchChainsToFromDirection(t *testing.T) {
	t.Parallel()
	tile, cp := newTestTile(3)
	_, _ = tile.AddSwitch(fabricmodel.NewSwitch(cp[0], cp[1], false, false))
	_, _ = tile.AddSwitch(fabricmodel.NewSwitch(cp[2], cp[0], false, false))

	// Walking To->From from cp[0] should find the switch whose To is
	// cp[0] (index 1) and from there the switch whose To is cp[2] (none).
	chains, err := fabricmodel.EnumerateSwitchChains(tile, cp[0], fabricmodel.ChainToFrom)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, chains)
}

func TestEnumerateSwitchChainsDepthExceeded(t *testing.T) {
	t.Parallel()
	n := fabricmodel.MaxChainDepth + 2
	tile, cp := newTestTile(n)
	for i := 0; i < n-1; i++ {
		_, _ = tile.AddSwitch(fabricmodel.NewSwitch(cp[i], cp[i+1], false, false))
	}

	_, err := fabricmodel.EnumerateSwitchChains(tile, cp[0], fabricmodel.ChainFromTo)
	require.Error(t, err)
}
