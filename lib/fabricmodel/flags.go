// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package fabricmodel

import "git.lukeshu.com/xc6slx9-progs-ng/lib/fmtutil"

// TileFlag is the per-tile flag bitset stamped by the model builder's
// "init tiles" phase: what kind of fabric column this tile sits in,
// and whether it hosts a particular device kind. The column-wide
// flags are set on every tile of a descriptor column except those in
// the top and bottom rows; see the per-constant comments.
type TileFlag uint32

const (
	TF_FABRIC_ROUTING_COL TileFlag = 1 << iota // excludes left/right IO routing and center
	TF_FABRIC_LOGIC_COL
	TF_FABRIC_BRAM_MACC_ROUTING_COL
	TF_FABRIC_BRAM_COL
	TF_FABRIC_MACC_COL
	TF_ROUTING_NO_IO // auto for BRAM/MACC routing, explicit via 'n' suffix for logic routing
	TF_BRAM_DEV
	TF_MACC_DEV
	TF_LOGIC_XL_DEV
	TF_LOGIC_XM_DEV
	TF_IOLOGIC_DELAY_DEV
	TF_DCM_DEV
	TF_PLL_DEV
	TF_WIRED // x==0 on the left edge, or x==tile_x_range-1 on the right edge
)

// Has reports whether all bits of want are set in f.
func (f TileFlag) Has(want TileFlag) bool { return f&want == want }

// Any reports whether any bit of want is set in f.
func (f TileFlag) Any(want TileFlag) bool { return f&want != 0 }

var tileFlagNames = []string{
	"FABRIC_ROUTING_COL",
	"FABRIC_LOGIC_COL",
	"FABRIC_BRAM_MACC_ROUTING_COL",
	"FABRIC_BRAM_COL",
	"FABRIC_MACC_COL",
	"ROUTING_NO_IO",
	"BRAM_DEV",
	"MACC_DEV",
	"LOGIC_XL_DEV",
	"LOGIC_XM_DEV",
	"IOLOGIC_DELAY_DEV",
	"DCM_DEV",
	"PLL_DEV",
	"WIRED",
}

func (f TileFlag) String() string { return fmtutil.BitfieldString(f, tileFlagNames, fmtutil.HexNone) }

// YFlag is the per-row flag bitset computed by (Model).yFlags(y).
type YFlag uint32

const (
	Y_INNER_TOP YFlag = 1 << iota
	Y_INNER_BOTTOM
	Y_CHIP_HORIZ_REGS
	Y_ROW_HORIZ_AXSYMM
	Y_BOTTOM_OF_ROW
	Y_LEFT_WIRED
	Y_RIGHT_WIRED
)

func (f YFlag) Any(want YFlag) bool { return f&want != 0 }

var yFlagNames = []string{
	"INNER_TOP",
	"INNER_BOTTOM",
	"CHIP_HORIZ_REGS",
	"ROW_HORIZ_AXSYMM",
	"BOTTOM_OF_ROW",
	"LEFT_WIRED",
	"RIGHT_WIRED",
}

func (f YFlag) String() string { return fmtutil.BitfieldString(f, yFlagNames, fmtutil.HexNone) }

// XFlag is the per-column flag bitset computed by (Model).xFlags(x).
type XFlag uint32

const (
	X_OUTER_LEFT XFlag = 1 << iota
	X_INNER_LEFT
	X_INNER_RIGHT
	X_OUTER_RIGHT
	X_ROUTING_COL // includes routing col in left/right IO and center
	X_ROUTING_TO_BRAM_COL
	X_ROUTING_TO_MACC_COL
	X_ROUTING_NO_IO
	X_LOGIC_COL // includes the center logic col
	X_FABRIC_ROUTING_COL
	X_FABRIC_LOGIC_COL
	X_FABRIC_BRAM_MACC_ROUTING_COL
	X_FABRIC_BRAM_COL
	X_FABRIC_MACC_COL
	X_CENTER_ROUTING_COL
	X_CENTER_LOGIC_COL
	X_CENTER_CMTPLL_COL
	X_CENTER_REGS_COL
	X_LEFT_IO_ROUTING_COL
	X_LEFT_IO_DEVS_COL
	X_RIGHT_IO_ROUTING_COL
	X_RIGHT_IO_DEVS_COL
	X_LEFT_SIDE // true for anything left of the center (not including center)
	X_LEFT_MCB
	X_RIGHT_MCB
)

func (f XFlag) Any(want XFlag) bool { return f&want != 0 }

var xFlagNames = []string{
	"OUTER_LEFT",
	"INNER_LEFT",
	"INNER_RIGHT",
	"OUTER_RIGHT",
	"ROUTING_COL",
	"ROUTING_TO_BRAM_COL",
	"ROUTING_TO_MACC_COL",
	"ROUTING_NO_IO",
	"LOGIC_COL",
	"FABRIC_ROUTING_COL",
	"FABRIC_LOGIC_COL",
	"FABRIC_BRAM_MACC_ROUTING_COL",
	"FABRIC_BRAM_COL",
	"FABRIC_MACC_COL",
	"CENTER_ROUTING_COL",
	"CENTER_LOGIC_COL",
	"CENTER_CMTPLL_COL",
	"CENTER_REGS_COL",
	"LEFT_IO_ROUTING_COL",
	"LEFT_IO_DEVS_COL",
	"RIGHT_IO_ROUTING_COL",
	"RIGHT_IO_DEVS_COL",
	"LEFT_SIDE",
	"LEFT_MCB",
	"RIGHT_MCB",
}

func (f XFlag) String() string { return fmtutil.BitfieldString(f, xFlagNames, fmtutil.HexNone) }

// YXFlag is the flag bitset computed jointly from a (y,x) pair,
// capturing conditions neither axis alone determines.
type YXFlag uint32

const (
	YX_ROUTING_TILE YXFlag = 1 << iota
	YX_IO_ROUTING
)

var yxFlagNames = []string{
	"ROUTING_TILE",
	"IO_ROUTING",
}

func (f YXFlag) String() string { return fmtutil.BitfieldString(f, yxFlagNames, fmtutil.HexNone) }

func (f YXFlag) Any(want YXFlag) bool { return f&want != 0 }
