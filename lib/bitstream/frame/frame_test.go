// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/frame"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6parts"
)

func TestBitRoundTrip(t *testing.T) {
	t.Parallel()
	buf := frame.NewBuffer()
	f := buf.FrameAt(0)
	for bit := 0; bit < xc6parts.FrameSize*8; bit += 7 {
		require.False(t, f.GetBit(bit))
		f.SetBit(bit)
		require.True(t, f.GetBit(bit))
		f.ClearBit(bit)
		require.False(t, f.GetBit(bit))
	}
}

func TestIsEmptyAndCountBits(t *testing.T) {
	t.Parallel()
	buf := frame.NewBuffer()
	f := buf.FrameAt(0)
	assert.True(t, frame.IsEmpty(f))
	assert.Equal(t, 0, frame.CountBits(f))

	f.SetBit(3)
	f.SetBit(17)
	assert.False(t, frame.IsEmpty(f))
	assert.Equal(t, 2, frame.CountBits(f))
}

func TestLUT64RoundTrip(t *testing.T) {
	t.Parallel()
	buf := frame.NewBuffer()
	twoMinors := buf.TwoFramesAt(0)

	const lut = uint64(0xDEADBEEFCAFEBABE)
	frame.WriteLUT64(twoMinors, 0, lut)
	assert.Equal(t, lut, frame.ReadLUT64(twoMinors, 0))
}

func TestU8U16U32U64BitOrderIsReversed(t *testing.T) {
	t.Parallel()
	buf := frame.NewBuffer()
	f := buf.FrameAt(0)
	// Raw bit 0 is stored at the MSB of byte 1 (the bytes of each
	// pair are swapped); GetU8 un-reverses storage order, so it reads
	// back as the low bit of that byte.
	f.SetBit(0)
	assert.Equal(t, uint8(0x01), frame.GetU8(f[1:]))
}

func TestDumpTextEmptyFrame(t *testing.T) {
	t.Parallel()
	buf := frame.NewBuffer()
	f := buf.FrameAt(0)
	assert.Equal(t, "-", f.DumpText())
}

func TestDumpTextSparseFrame(t *testing.T) {
	t.Parallel()
	buf := frame.NewBuffer()
	f := buf.FrameAt(0)
	f.SetBit(5)
	assert.Contains(t, f.DumpText(), "bit 5")
}
