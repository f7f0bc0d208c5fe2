// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package wireintern_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/wireintern"
)

func TestAddIsIdempotent(t *testing.T) {
	t.Parallel()
	in := wireintern.New()

	id1, err := in.Add("LOGICIN_B23")
	require.NoError(t, err)
	assert.NotEqual(t, wireintern.NoEntry, id1)

	id2, err := in.Add("LOGICIN_B23")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	id3, err := in.Add("LOGICOUT4")
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)
}

func TestFindMissing(t *testing.T) {
	t.Parallel()
	in := wireintern.New()
	assert.Equal(t, wireintern.NoEntry, in.Find("GND_WIRE"))
	_, err := in.Add("GND_WIRE")
	require.NoError(t, err)
	assert.NotEqual(t, wireintern.NoEntry, in.Find("GND_WIRE"))
}

func TestLookupRoundTrip(t *testing.T) {
	t.Parallel()
	in := wireintern.New()
	names := []string{"VCC_WIRE", "GND_WIRE", "KEEP1_WIRE", "FAN_B", "CLK0", "SR1"}
	ids := make([]wireintern.ID, len(names))
	for i, n := range names {
		id, err := in.Add(n)
		require.NoError(t, err)
		ids[i] = id
	}
	for i, n := range names {
		got, ok := in.Lookup(ids[i])
		require.True(t, ok)
		assert.Equal(t, n, got)
	}
}

func TestStashFixedID(t *testing.T) {
	t.Parallel()
	in := wireintern.New()
	require.NoError(t, in.Stash("GCLK7", wireintern.ID(500)))

	got, ok := in.Lookup(wireintern.ID(500))
	require.True(t, ok)
	assert.Equal(t, "GCLK7", got)
	assert.Equal(t, wireintern.ID(500), in.Find("GCLK7"))

	// Re-stashing the same pair is a no-op.
	assert.NoError(t, in.Stash("GCLK7", wireintern.ID(500)))

	// Stashing the same string at a different id is an error.
	assert.Error(t, in.Stash("GCLK7", wireintern.ID(501)))

	// Stashing a different string at an already-bound id is an error.
	assert.Error(t, in.Stash("GCLK8", wireintern.ID(500)))
}

func TestAddAfterStashContinuesFromHighWaterMark(t *testing.T) {
	t.Parallel()
	in := wireintern.New()
	require.NoError(t, in.Stash("RESERVED", wireintern.ID(10)))
	id, err := in.Add("FRESH")
	require.NoError(t, err)
	assert.Greater(t, id, wireintern.ID(10))
}

func TestManyDistinctNamesStayDistinct(t *testing.T) {
	t.Parallel()
	in := wireintern.New()
	seen := make(map[wireintern.ID]string, 5000)
	for i := 0; i < 5000; i++ {
		name := fmt.Sprintf("LOGICIN_B%d", i)
		id, err := in.Add(name)
		require.NoError(t, err)
		if other, dup := seen[id]; dup {
			t.Fatalf("id %d reused for %q and %q", id, other, name)
		}
		seen[id] = name
	}
	assert.Equal(t, 5000, in.Len())
}
