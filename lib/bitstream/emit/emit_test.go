// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package emit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/emit"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/extract"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/frame"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricdev"
)

func TestEmitLogicRoundTripsSingleLUT(t *testing.T) {
	t.Parallel()
	buf := frame.NewBuffer()
	logic := &fabricdev.Logic{Subtype: "M", LUTEquation: [4]string{"A1*A2", "", "", ""}}
	require.NoError(t, emit.EmitLogic(buf, 0, 2, logic, nil))

	readBack := &fabricdev.Logic{}
	require.NoError(t, extract.ExtractLogic(buf, 0, 2, readBack, nil))
	assert.Equal(t, "A1*A2", readBack.LUTEquation[0])
	assert.Equal(t, "", readBack.LUTEquation[1])
}

func TestEmitIOBsSetsMatchingExtractPattern(t *testing.T) {
	t.Parallel()
	buf := frame.NewBuffer()
	iobs := []*fabricdev.IOB{{OUsed: true}}
	emit.EmitIOBs(buf, iobs)

	readBack := []*fabricdev.IOB{{}}
	require.NoError(t, extract.ExtractIOBs(buf, readBack))
	assert.True(t, readBack[0].OUsed)
}

func TestEmitDefaultsIsDeterministic(t *testing.T) {
	t.Parallel()
	buf1 := frame.NewBuffer()
	buf2 := frame.NewBuffer()
	emit.EmitDefaults(buf1)
	emit.EmitDefaults(buf2)
	assert.Equal(t, buf1.Bytes(), buf2.Bytes())
}
