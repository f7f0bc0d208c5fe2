// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package xc6parts

// IOBSitenames is the package-pin name for each byte-offset slot of
// the XC6SLX9's IOB configuration tail (bit.h IOB_WORDS, two 32-bit
// words per slot). An empty string means the slot is unbonded (no
// package pin) or otherwise has no site name.
//
// Grounded on original_source/parts.c's iob_xc6slx9_sitenames table,
// transcribed verbatim (index order and all).
var IOBSitenames = [224]string{
	// 0x0000/8
	"P70", "P69", "P67", "P66", "P65", "P64", "P62", "P61",
	"P60", "P59", "P58", "P57", "", "", "", "",
	// 0x0080/8
	"", "", "P56", "P55", "", "", "", "",
	"", "", "P51", "P50", "", "", "", "",
	// 0x0100/8
	"", "", "", "", "UNB131", "UNB132", "P48", "P47",
	"P46", "P45", "P44", "P43", "", "", "P41", "P40",
	// 0x0180/8
	"P39", "P38", "P35", "P34", "P33", "P32", "", "",
	"", "", "", "", "", "", "", "",
	// 0x0200/8
	"P30", "P29", "P27", "P26", "", "", "", "",
	"", "", "P24", "P23", "P22", "P21", "", "",
	// 0x0280/8
	"", "", "", "", "P17", "P16", "P15", "P14",
	"", "", "", "", "", "", "", "",
	// 0x0300/8
	"P12", "P11", "P10", "P9", "P8", "P7", "P6", "P5",
	"", "", "", "", "", "", "P2", "P1",
	// 0x0380/8
	"P144", "P143", "P142", "P141", "P140", "P139", "P138", "P137",
	"", "", "", "", "", "", "", "",
	// 0x0400/8
	"", "", "", "", "P134", "P133", "P132", "P131",
	"", "", "", "", "", "", "P127", "P126",
	// 0x0480/8
	"P124", "P123", "", "", "", "", "", "",
	"P121", "P120", "P119", "P118", "P117", "P116", "P115", "P114",
	// 0x0500/8
	"P112", "P111", "P105", "P104", "", "", "", "",
	"", "", "P102", "P101", "P99", "P98", "P97", "",
	// 0x0580/8
	"", "", "", "", "", "", "", "",
	"", "", "P95", "P94", "P93", "P92", "", "",
	// 0x0600/8
	"", "", "", "P88", "P87", "", "P85", "P84",
	"", "", "P83", "P82", "P81", "P80", "P79", "P78",
	// 0x0680/8
	"", "", "", "", "", "", "", "",
	"", "", "", "", "", "", "P75", "P74",
}

// NumIOBs is the number of IOB configuration slots for the XC6SLX9.
const NumIOBs = len(IOBSitenames)
