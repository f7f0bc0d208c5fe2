// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package emit is the inverse of extract: given a configured fabric
// model, write IOB words, LUT truth tables, routing-switch bits, and
// the fixed default bits into a fresh frame buffer.
package emit

import (
	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/frame"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricdev"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricmodel"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/lutexpr"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/swbits"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/wireintern"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6parts"
)

// defaultBits are five known-good (row, major, minor, bit) positions
// that must be present in every bitstream for this die; their meaning
// isn't decoded, only their presence is required (§4.J). Grounded on
// original_source/bit_frames.c's s_default_bits table.
var defaultBits = [5]struct{ Row, Major, Minor, Bit int }{
	{0, 0, 3, 66},
	{0, 1, 23, 1034},
	{0, 1, 23, 1035},
	{0, 1, 23, 1039},
	{2, 0, 3, 66},
}

// EmitIOBs writes the two 16-bit words for each configured IOB device
// into the buffer's IOB word block, in the same idx order as
// xc6parts.IOBSitenames, matching the "used" pattern extract.ExtractIOBs
// recognizes.
func EmitIOBs(buf *frame.Buffer, iobs []*fabricdev.IOB) {
	d := buf.Bytes()
	base := frame.IOBDataStart
	for idx, iob := range iobs {
		if iob == nil || !iob.OUsed {
			continue
		}
		off := base + idx*4
		if off+4 > len(d) {
			continue
		}
		// The two words are read back through frame.GetU16, which
		// reverses each byte's bit order (frame.GetU8); these raw
		// bytes are the reversed form of word0=0x0100, word1=0x1100.
		d[off] = reverseByte(0x01)
		d[off+1] = reverseByte(0x00)
		d[off+2] = reverseByte(0x11)
		d[off+3] = reverseByte(0x00)
	}
}

// EmitLogic writes logic's four LUT equations (and xLogic's, if
// non-nil) into the M-slice and X-slice minor frames of the LOGIC
// tile at (row, major), computing each 64-bit truth table via
// lutexpr.ParseBoolExpr.
func EmitLogic(buf *frame.Buffer, row, major int, logic *fabricdev.Logic, xLogic *fabricdev.Logic) error {
	d := buf.Bytes()
	rowOff := rowFrameOffset(row, major)

	if err := writeFourLUTs(d, rowOff, mSliceMinors, &logic.LUTEquation); err != nil {
		return err
	}
	if xLogic == nil {
		return nil
	}
	return writeFourLUTs(d, rowOff, xSliceMinors, &xLogic.LUTEquation)
}

func reverseByte(b byte) byte {
	var v byte
	for i := 0; i < 8; i++ {
		if b&(1<<i) != 0 {
			v |= 1 << (7 - i)
		}
	}
	return v
}

var mSliceMinors = [4][2]int{{24, 25}, {24, 25}, {21, 22}, {21, 22}}
var xSliceMinors = [4][2]int{{27, 28}, {27, 28}, {29, 30}, {29, 30}}

func rowFrameOffset(row, major int) int {
	off := row * xc6parts.FramesPerRow * xc6parts.FrameSize
	for m := 0; m < major; m++ {
		off += xc6parts.MinorsPerMajor[m] * xc6parts.FrameSize
	}
	return off
}

func writeFourLUTs(d []byte, rowOff int, minors [4][2]int, eqs *[4]string) error {
	for i, eq := range eqs {
		if eq == "" {
			continue
		}
		lut, err := lutexpr.ParseBoolExpr(eq, [6]int{0, 0, 0, 0, 0, 0}, false)
		if err != nil {
			return err
		}
		lo, hi := minors[i][0], minors[i][1]
		loOff := rowOff + lo*xc6parts.FrameSize
		if loOff+2*xc6parts.FrameSize > len(d) {
			continue
		}
		frame.WriteLUT64(d[loOff:loOff+2*xc6parts.FrameSize], 0, lut)
	}
	return nil
}

// EmitSwitches writes the two-bit/one-bit pattern for every active
// switch of every routing tile in model, using cat to locate the
// bits by the switch's (from,to) wire names.
func EmitSwitches(buf *frame.Buffer, model *fabricmodel.Model, cat []swbits.Entry) {
	d := buf.Bytes()

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
			set := func(minor, bit int, val bool) {
				off := rowOff + minor*xc6parts.FrameSize
				if off+xc6parts.FrameSize > len(d) {
					return
				}
				frame.Frame(d[off : off+xc6parts.FrameSize]).PutBit(bit, val)
			}

			t := model.TileAt(y, x)
			for _, sw := range t.Switches {
				if !sw.On() {
					continue
				}
				fromID, ok1 := lookupName(model, t, sw.From())
				toID, ok2 := lookupName(model, t, sw.To())
				if !ok1 || !ok2 {
					continue
				}
				for _, e := range cat {
					if model.Interner.Find(e.FromWire) == fromID && model.Interner.Find(e.ToWire) == toID {
						e.WriteTwoBits(set, e.TwoBitsVal)
						e.WriteOneBit(set, true)
						break
					}
				}
			}
		}
	}
}

func lookupName(model *fabricmodel.Model, t *fabricmodel.Tile, cpIdx int) (id wireintern.ID, ok bool) {
	if cpIdx < 0 || cpIdx >= len(t.ConnPointNames) {
		return wireintern.NoEntry, false
	}
	return t.ConnPointNames[cpIdx].NameID, true
}

// EmitDefaults sets the five fixed default bits every bitstream must
// carry for this die.
func EmitDefaults(buf *frame.Buffer) {
	d := buf.Bytes()
	for _, pos := range defaultBits {
		off := rowFrameOffset(pos.Row, pos.Major) + pos.Minor*xc6parts.FrameSize
		if off+xc6parts.FrameSize > len(d) {
			continue
		}
		frame.Frame(d[off : off+xc6parts.FrameSize]).SetBit(pos.Bit)
	}
}
