// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package extract pulls device and routing-switch state back out of
// a frame buffer into a fabric model: IOB pattern matching, LOGIC LUT
// extraction via the boolean-expression reducer, and routing-switch
// decoding via the switch bit-position catalogue.
package extract

import (
	"context"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/frame"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/containers"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricdev"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricmodel"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/lutexpr"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/swbits"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6err"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6parts"
)

// lutExprCache memoizes LUT2Bool's Quine-McCluskey-style reduction by
// the raw 64-bit truth table, since real designs reuse a handful of
// LUT equations (constant drivers, simple muxes, buffers) across many
// tile instances. Capacity is a guess at the working set of distinct
// truth tables in one extraction run, not a hard correctness bound:
// eviction just means recomputing.
var lutExprCache = containers.NewARCache[uint64, string](4096,
	containers.FuncSource[uint64, string](func(_ context.Context, lut uint64, out *string) {
		*out = lutexpr.LUT2Bool(lut, 64, [6]int{0, 0, 0, 0, 0, 0}, false)
	}))

func lut2BoolCached(lut uint64) string {
	expr := lutExprCache.Acquire(context.Background(), lut)
	s := *expr
	lutExprCache.Release(lut)
	return s
}

// MaxActiveSwitches is the hard cap on routing switches a single
// extraction run may find active; a design that needs more fails with
// an Unsupported error rather than silently truncating.
const MaxActiveSwitches = 1024

// iobWordPattern is one recognized (word0&mask0, word1) pattern in
// the IOB configuration tail identifying a used IOB and its
// configuration, loosely grounded on ug381's IOSTANDARD/drive fields.
type iobWordPattern struct {
	Mask0, Want0 uint32
	Want1        uint32
	OUsed        bool
}

var iobPatterns = []iobWordPattern{
	{Mask0: 0xFF7F, Want0: 0x0100, Want1: 0x1100, OUsed: true},
	{Mask0: 0xFFFF, Want0: 0x0000, Want1: 0x0000, OUsed: false},
}

// ExtractIOBs scans the frame buffer's IOB word block and stamps an
// IOB device's OUsed field for each slot that matches a known
// pattern. idx indexes xc6parts.IOBSitenames / the model's IOB
// devices in the same order.
func ExtractIOBs(buf *frame.Buffer, iobs []*fabricdev.IOB) error {
	d := buf.Bytes()
	base := frame.IOBDataStart
	for idx, iob := range iobs {
		if iob == nil {
			continue
		}
		off := base + idx*4
		if off+4 > len(d) {
			return xc6err.Malformedf(int64(off), "IOB slot %d beyond buffer", idx)
		}
		w0 := frame.GetU16(d[off : off+2])
		w1 := frame.GetU16(d[off+2 : off+4])
		word0 := uint32(w0)
		word1 := uint32(w1)
		for _, p := range iobPatterns {
			if word0&p.Mask0 == p.Want0 && word1 == p.Want1 {
				iob.OUsed = p.OUsed
				break
			}
		}
	}
	return nil
}

// mSliceMinors and xSliceMinors give the (lo,hi) minor-frame pair each LUT
// position is read from, per §4.I.2: M-slice A/B/C/D at 24/25 and
// 21/22, X-slice (present mask at minor 26) at 27/28 and 29/30.
var mSliceMinors = [4][2]int{{24, 25}, {24, 25}, {21, 22}, {21, 22}}
var xSliceMinors = [4][2]int{{27, 28}, {27, 28}, {29, 30}, {29, 30}}

const xSlicePresentMinor = 26

// rowFrameOffset computes the byte offset, within the whole frame
// buffer, of minor 0 of the given major column in the given config
// row. Callers find a tile's (row, major) pair via the model's
// RowMajorAt.
func rowFrameOffset(row, major int) int {
	off := row * xc6parts.FramesPerRow * xc6parts.FrameSize
	for m := 0; m < major; m++ {
		off += xc6parts.MinorsPerMajor[m] * xc6parts.FrameSize
	}
	return off
}

// ExtractLogic reads the four LUT values of a LOGIC_XM tile's M-slice
// from the frame buffer at the given (row, major) and converts each
// to a boolean expression, writing the result into logic.LUTEquation.
// If the X-slice present mask at minor 26 is set, xLogic (which the
// caller creates as a second Logic device on the same tile) receives
// the X-slice's own four LUTs the same way.
func ExtractLogic(buf *frame.Buffer, row, major int, logic *fabricdev.Logic, xLogic *fabricdev.Logic) error {
	d := buf.Bytes()
	rowOff := rowFrameOffset(row, major)

	if err := readFourLUTs(d, rowOff, mSliceMinors, &logic.LUTEquation); err != nil {
		return err
	}

	presentOff := rowOff + xSlicePresentMinor*xc6parts.FrameSize
	if presentOff+8 > len(d) || xLogic == nil {
		return nil
	}
	present := frame.GetU64(d[presentOff : presentOff+8])
	if present == 0 {
		return nil
	}
	xLogic.Subtype = "X"
	return readFourLUTs(d, rowOff, xSliceMinors, &xLogic.LUTEquation)
}

func readFourLUTs(d []byte, rowOff int, minors [4][2]int, dst *[4]string) error {
	for i := 0; i < 4; i++ {
		lo, hi := minors[i][0], minors[i][1]
		loOff := rowOff + lo*xc6parts.FrameSize
		hiOff := rowOff + hi*xc6parts.FrameSize
		if hiOff+xc6parts.FrameSize > len(d) {
			return xc6err.Malformedf(int64(hiOff), "LOGIC tile minor %d beyond buffer", hi)
		}
		lut := frame.ReadLUT64(d[loOff:loOff+2*xc6parts.FrameSize], 0)
		dst[i] = lut2BoolCached(lut)
	}
	return nil
}

// ExtractSwitches walks cat against the tile at (row,major,minor
// frame-offset) for every routing tile of model, recording active
// switches into each tile's Switches slice (clearing the underlying
// bits as it goes, per §4.I.3) and returning an Unsupported error if
// more than MaxActiveSwitches are found.
func ExtractSwitches(buf *frame.Buffer, model *fabricmodel.Model, cat []swbits.Entry) (int, error) {
	d := buf.Bytes()
	active := 0

	for y := 0; y < model.Height; y++ {
		for x := 0; x < model.Width; x++ {
			if !model.YXFlags(y, x).Any(fabricmodel.YX_ROUTING_TILE) {
				continue
			}
			row, major, ok := model.RowMajorAt(y, x)
			if !ok {
				continue
			}
			rowOff := rowFrameOffset(row, major)

			get := func(minor, bit int) bool {
				off := rowOff + minor*xc6parts.FrameSize
				if off+xc6parts.FrameSize > len(d) {
					return false
				}
				return frame.Frame(d[off : off+xc6parts.FrameSize]).GetBit(bit)
			}
			clear := func(minor, bit int, val bool) {
				off := rowOff + minor*xc6parts.FrameSize
				if off+xc6parts.FrameSize > len(d) {
					return
				}
				frame.Frame(d[off : off+xc6parts.FrameSize]).PutBit(bit, val)
			}

			t := model.TileAt(y, x)
			for _, e := range cat {
				if !e.Active(get) {
					continue
				}
				active++
				if active > MaxActiveSwitches {
					return active, xc6err.Unsupportedf("more than %d active routing switches", MaxActiveSwitches)
				}
				fromID := model.Interner.Find(e.FromWire)
				toID := model.Interner.Find(e.ToWire)
				fromIdx := t.FindConnPoint(fromID)
				toIdx := t.FindConnPoint(toID)
				if swIdx := t.FindSwitch(fromIdx, toIdx); swIdx >= 0 {
					t.Switches[swIdx] = t.Switches[swIdx].WithOn(true)
				}
				e.Clear(clear)
			}
		}
	}
	return active, nil
}
