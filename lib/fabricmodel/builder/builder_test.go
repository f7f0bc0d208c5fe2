// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricmodel"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricmodel/builder"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6parts"
)

func buildTestModel(t *testing.T) *fabricmodel.Model {
	t.Helper()
	m, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	require.NoError(t, err)
	require.NoError(t, builder.Build(m))
	return m
}

func TestBuildPopulatesLogicDevices(t *testing.T) {
	t.Parallel()
	m := buildTestModel(t)

	found := false
	for y := 0; y < m.Height && !found; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.TileAt(y, x)
			if tile.Type == fabricmodel.LOGIC_XM {
				require.NotEmpty(t, tile.Devices)
				found = true
				break
			}
		}
	}
	assert.True(t, found, "expected at least one LOGIC_XM tile with a device")
}

func TestBuildPopulatesRoutingSwitches(t *testing.T) {
	t.Parallel()
	m := buildTestModel(t)

	total := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			total += len(m.TileAt(y, x).Switches)
		}
	}
	assert.Greater(t, total, 0, "expected at least one switch to be instantiated on a routing tile")
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()
	m1 := buildTestModel(t)
	m2 := buildTestModel(t)

	require.Equal(t, m1.Width, m2.Width)
	require.Equal(t, m1.Height, m2.Height)
	for y := 0; y < m1.Height; y++ {
		for x := 0; x < m1.Width; x++ {
			a, b := m1.TileAt(y, x), m2.TileAt(y, x)
			require.Equal(t, len(a.Devices), len(b.Devices), "tile (%d,%d) device count", y, x)
			require.Equal(t, len(a.Switches), len(b.Switches), "tile (%d,%d) switch count", y, x)
			require.Equal(t, len(a.ConnPointNames), len(b.ConnPointNames), "tile (%d,%d) conn point count", y, x)
		}
	}
}
