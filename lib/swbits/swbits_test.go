// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package swbits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/swbits"
)

// minorFrames is a tiny fake frame store keyed by minor number, for
// exercising the bit-location arithmetic without depending on the
// frame package's full geometry.
type minorFrames map[int]*[1024]bool

func (m minorFrames) get(minor, bit int) bool {
	f, ok := m[minor]
	if !ok {
		return false
	}
	return f[bit]
}

func (m minorFrames) set(minor, bit int, val bool) {
	f, ok := m[minor]
	if !ok {
		f = &[1024]bool{}
		m[minor] = f
	}
	f[bit] = val
}

func TestMinor20IsSelfContained(t *testing.T) {
	t.Parallel()
	e := swbits.Entry{Minor: 20, TwoBitsOffset: 0, TwoBitsVal: 1, OneBitOffset: 2}
	loMinor, loBit, hiMinor, hiBit := e.TwoBitsLocation()
	assert.Equal(t, 20, loMinor)
	assert.Equal(t, 20, hiMinor)
	assert.Equal(t, 0, loBit)
	assert.Equal(t, 1, hiBit)

	obMinor, obBit := e.OneBitLocation()
	assert.Equal(t, 20, obMinor)
	assert.Equal(t, 2, obBit)
}

func TestOtherMinorsStraddle(t *testing.T) {
	t.Parallel()
	e := swbits.Entry{Minor: 24, TwoBitsOffset: 8, TwoBitsVal: 2, OneBitOffset: 11}
	loMinor, loBit, hiMinor, hiBit := e.TwoBitsLocation()
	assert.Equal(t, 24, loMinor)
	assert.Equal(t, 25, hiMinor)
	assert.Equal(t, 4, loBit)
	assert.Equal(t, 4, hiBit)

	obMinor, obBit := e.OneBitLocation()
	assert.Equal(t, 25, obMinor) // 11&1 == 1
	assert.Equal(t, 5, obBit)    // 11/2 == 5
}

func TestActiveRoundTrip(t *testing.T) {
	t.Parallel()
	for _, e := range swbits.Catalogue {
		frames := minorFrames{}
		require.False(t, e.Active(frames.get))

		e.WriteTwoBits(frames.set, e.TwoBitsVal)
		e.WriteOneBit(frames.set, true)
		assert.True(t, e.Active(frames.get), "entry %+v", e)

		e.Clear(frames.set)
		assert.False(t, e.Active(frames.get), "entry %+v", e)
	}
}

func TestWrongTwoBitsValueIsNotActive(t *testing.T) {
	t.Parallel()
	e := swbits.Catalogue[0]
	frames := minorFrames{}
	wrong := e.TwoBitsVal%3 + 1
	e.WriteTwoBits(frames.set, wrong)
	e.WriteOneBit(frames.set, true)
	assert.False(t, e.Active(frames.get))
}

func TestCatalogueEntriesHaveValidTwoBitsVal(t *testing.T) {
	t.Parallel()
	for _, e := range swbits.Catalogue {
		assert.Contains(t, []int{1, 2, 3}, e.TwoBitsVal)
		assert.NotEmpty(t, e.FromWire)
		assert.NotEmpty(t, e.ToWire)
	}
}
