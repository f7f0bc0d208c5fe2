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

func TestStatsCountsEveryTileExactlyOnce(t *testing.T) {
	t.Parallel()
	m, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)

	s := m.Stats()
	assert.Equal(t, m.Width*m.Height, s.NumTiles)

	total := 0
	for _, n := range s.TileTypeCounts {
		total += n
	}
	assert.Equal(t, s.NumTiles, total)

	assert.Greater(t, s.TileTypeCounts[fabricmodel.CENTER], 0)
	assert.Equal(t, 0, s.SwitchesOn, "a freshly built model has no switches stamped ON")
}

func TestDeviceKindStringUnknownValue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "IOB", fabricmodel.DevIOB.String())
	assert.Equal(t, "DeviceKind(?)", fabricmodel.DeviceKind(999).String())
}
