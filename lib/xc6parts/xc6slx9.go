// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package xc6parts holds the per-die geometry and identity constants
// for the one supported part, the Xilinx Spartan-6 XC6SLX9. A
// different die variant is out of scope (spec.md §1 Non-goals); every
// other package that needs a "how big is the chip" answer gets it from
// here instead of hard-coding it locally.
package xc6parts

// IDCodeMask masks off the silicon revision bits (the top 4 bits) that
// ug380 says to ignore when verifying IDCODE.
const IDCodeMask = 0x0FFFFFFF

// Part IDCODEs (ug380, Configuration Sequence, p.78). Only XC6SLX9 is
// supported; the rest are recorded for recognition/diagnostics.
const (
	IDCodeXC6SLX4   = 0x04000093
	IDCodeXC6SLX9   = 0x04001093
	IDCodeXC6SLX16  = 0x04002093
	IDCodeXC6SLX25  = 0x04004093
	IDCodeXC6SLX25T = 0x04024093
	IDCodeXC6SLX45  = 0x04008093
	IDCodeXC6SLX45T = 0x04028093
	IDCodeXC6SLX75  = 0x0400E093
	IDCodeXC6SLX75T = 0x0402E093
	IDCodeXC6SLX100 = 0x04011093
	IDCodeXC6SLX100T = 0x04031093
	IDCodeXC6SLX150 = 0x0401D093
)

// SupportedIDCode is the only die this toolchain builds a model for.
const SupportedIDCode = IDCodeXC6SLX9

// Column descriptor and left/right wiring strings for the XC6SLX9, as
// consumed by the model builder's phase 1 (init tiles).
const (
	Columns = "M L Bg M L D M R M Ln M L Bg M L"

	LeftWiring = "" +
		/* row 3 */ "UWUWUWUW" + "WWWWUUUU" +
		/* row 2 */ "UUUUUUUU" + "WWWWWWUU" +
		/* row 1 */ "WWWUUWUU" + "WUUWUUWU" +
		/* row 0 */ "UWUUWUUW" + "UUWWWWUU"

	RightWiring = "" +
		/* row 3 */ "UUWWUWUW" + "WWWWUUUU" +
		/* row 2 */ "UUUUUUUU" + "WWWWWWUU" +
		/* row 1 */ "WWWUUWUU" + "WUUWUUWU" +
		/* row 0 */ "UWUUWUUW" + "UUWWWWUU"

	NumConfigRows = 4
)

// NumMajors is the number of major columns in the frame address space.
const NumMajors = 18

// MinorsPerMajor gives the frame count of each major column, index by
// major number. It doubles as the source of truth for FARPos.
var MinorsPerMajor = [NumMajors]int{
	4, 30, 31, 30, 25, 31, 30, 24, 31, 31, 31, 30, 31, 30, 25, 31, 30, 30,
}

// MajorType classifies a major column by the kind of fabric resource
// it addresses.
type MajorType int

const (
	MajZero MajorType = iota
	MajLeft
	MajLogicXM
	MajLogicXL
	MajBRAM
	MajMACC
	MajCenter
	MajRight
)

// MajorTypes gives the MajorType of each major column, index by major
// number.
var MajorTypes = [NumMajors]MajorType{
	MajZero, MajLeft, MajLogicXM, MajLogicXL, MajBRAM, MajLogicXM, MajLogicXL,
	MajMACC, MajLogicXM, MajCenter, MajLogicXM, MajLogicXL, MajLogicXM,
	MajLogicXL, MajBRAM, MajLogicXM, MajLogicXL, MajRight,
}

// Frame and bit-array geometry (bit.h FRAME_SIZE / FRAMES_PER_ROW /
// NUM_ROWS / IOB_WORDS).
const (
	FrameSize           = 130
	FramesPerRow        = 505
	PaddingFramesPerRow = 2
	NumRows             = 4

	BRAMMajorsPerRow = 144
	IOBWords         = 896
)
