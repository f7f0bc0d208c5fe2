// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package lutexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/lutexpr"
)

var (
	baseAB = [6]int{0, 1, 0, 0, 1, 0}
	baseCD = [6]int{0, 1, 0, 0, 1, 0}
)

func TestParseEvalBasics(t *testing.T) {
	t.Parallel()
	e, err := lutexpr.Parse("A1*A2+~A3")
	require.NoError(t, err)

	assert.True(t, lutexpr.Eval(e, [6]bool{true, true, false, false, false, false}))
	assert.True(t, lutexpr.Eval(e, [6]bool{false, false, false, false, false, false}))
	assert.False(t, lutexpr.Eval(e, [6]bool{false, false, true, false, false, false}))
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "A7", "A1*", "(A1", "A1+A2)"} {
		_, err := lutexpr.Parse(s)
		assert.Error(t, err, s)
	}
}

func TestLUT2BoolEmptyTable(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", lutexpr.LUT2Bool(0, 64, baseAB, true))
}

func TestLUT2BoolAllOnesCollapses(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "A6+~A6", lutexpr.LUT2Bool(^uint64(0), 64, baseAB, true))
}

// TestRoundTripManyTables checks the general round-trip law:
// parse_boolexpr(lut2bool(T,base,flip),base,flip) == T, verified by
// truth-table equality (robust to term-ordering differences) rather
// than string equality.
func TestRoundTripManyTables(t *testing.T) {
	t.Parallel()
	tables := []uint64{
		0,
		^uint64(0),
		0x00000000FFFFFFFF,
		0xAAAAAAAAAAAAAAAA,
		0x8000000000000001,
		0x0123456789ABCDEF,
	}
	for _, base := range [][6]int{baseAB, {1, 1, 0, 1, 0, 1}} {
		for _, flip := range []bool{false, true} {
			for _, T := range tables {
				expr := lutexpr.LUT2Bool(T, 64, base, flip)
				var got uint64
				var err error
				if expr == "" {
					got = 0
				} else {
					got, err = lutexpr.ParseBoolExpr(expr, base, flip)
					require.NoError(t, err)
				}
				assert.Equal(t, T, got, "base=%v flip=%v T=%#x expr=%q", base, flip, T, expr)
			}
		}
	}
}

// TestA3TimesA5Scenario exercises the documented example: compiling
// "A3*A5" under the B/D logic base and flip_b0=1, then reducing the
// resulting table, reproduces an expression equivalent to "A3*A5".
func TestA3TimesA5Scenario(t *testing.T) {
	t.Parallel()
	base := [6]int{1, 1, 0, 1, 0, 1}
	lut, err := lutexpr.ParseBoolExpr("A3*A5", base, true)
	require.NoError(t, err)

	reduced := lutexpr.LUT2Bool(lut, 64, base, true)
	e, err := lutexpr.Parse(reduced)
	require.NoError(t, err)

	for i := 0; i < 64; i++ {
		vars := [6]bool{
			i&1 != 0, i&2 != 0, i&4 != 0, i&8 != 0, i&16 != 0, i&32 != 0,
		}
		original, err := lutexpr.Parse("A3*A5")
		require.NoError(t, err)
		assert.Equal(t, lutexpr.Eval(original, vars), lutexpr.Eval(e, vars))
	}
}

func Test5InputLUTWidth(t *testing.T) {
	t.Parallel()
	e, err := lutexpr.Parse("A1@A2")
	require.NoError(t, err)
	lut := lutexpr.CompileToLUT(e, 32, baseAB, false)
	// Bit 5 (A6) never varies across a 32-row table, so a LUT
	// computed at width 32 never sets bits >= 32.
	assert.Equal(t, uint64(0), lut>>32)
}
