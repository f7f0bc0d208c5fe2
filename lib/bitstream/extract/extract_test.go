// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/extract"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/frame"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricdev"
)

func TestExtractLogicRoundTripsConstantZero(t *testing.T) {
	t.Parallel()
	buf := frame.NewBuffer()
	logic := &fabricdev.Logic{Subtype: "M"}
	require.NoError(t, extract.ExtractLogic(buf, 0, 2, logic, nil))
	for i, eq := range logic.LUTEquation {
		assert.Equal(t, "", eq, "LUT %d of an all-zero frame buffer has no minterms", i)
	}
}

func TestExtractIOBsNoMatchLeavesOUsedFalse(t *testing.T) {
	t.Parallel()
	buf := frame.NewBuffer()
	iobs := []*fabricdev.IOB{{}}
	require.NoError(t, extract.ExtractIOBs(buf, iobs))
	assert.False(t, iobs[0].OUsed)
}
