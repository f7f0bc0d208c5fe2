// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package fabricmodel

import (
	"strings"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6err"
)

// colKind is the fabric resource a descriptor letter names.
type colKind int

const (
	colLogicXL colKind = iota // 'L'
	colLogicXM                // 'M'
	colBRAM                   // 'B'
	colMACC                   // 'D'
	colCenter                 // 'R'
)

// colWidth gives the X-cursor advance for each descriptor letter, per
// §4.D phase 1: "advancing the X cursor by 2, 2, 3, 3 or 4
// respectively" for L, M, B, D, R.
var colWidth = map[colKind]int{
	colLogicXL: 2,
	colLogicXM: 2,
	colBRAM:    3,
	colMACC:    3,
	colCenter:  4,
}

// column is the per-column metadata stamped by phase 1 (init tiles),
// keyed by the column's leftmost x. A column occupies [X, X+Width).
type column struct {
	X, Width int
	Kind     colKind
	NoIO     bool // 'n' suffix: TF_ROUTING_NO_IO
	GCLKSep  bool // 'g' suffix: this column also carries a gclk separator tile
}

// parseColumns walks the descriptor left to right, yielding one
// column per token and the total tile_x_range (excluding the fixed
// left/right IO routing columns, which the caller accounts for
// separately).
func parseColumns(descriptor string) ([]column, error) {
	var cols []column
	x := 0
	for _, tok := range strings.Fields(descriptor) {
		if tok == "" {
			continue
		}
		letter := tok[0]
		rest := tok[1:]
		var kind colKind
		switch letter {
		case 'L':
			kind = colLogicXL
		case 'M':
			kind = colLogicXM
		case 'B':
			kind = colBRAM
		case 'D':
			kind = colMACC
		case 'R':
			kind = colCenter
		default:
			return nil, xc6err.Malformedf(0, "column descriptor: unknown column letter %q in token %q", letter, tok)
		}
		c := column{X: x, Kind: kind}
		for _, suf := range rest {
			switch suf {
			case 'n':
				c.NoIO = true
			case 'g':
				c.GCLKSep = true
			default:
				return nil, xc6err.Malformedf(0, "column descriptor: unknown suffix %q in token %q", suf, tok)
			}
		}
		c.Width = colWidth[kind]
		cols = append(cols, c)
		x += c.Width
	}
	return cols, nil
}

// tileXRange is the total column width described by cols.
func tileXRange(cols []column) int {
	if len(cols) == 0 {
		return 0
	}
	last := cols[len(cols)-1]
	return last.X + last.Width
}

// columnAt returns the column owning x, or nil if x is outside every
// parsed column (e.g. the fixed left/right IO routing edges).
func columnAt(cols []column, x int) *column {
	i := columnIndexAt(cols, x)
	if i < 0 {
		return nil
	}
	return &cols[i]
}

// columnIndexAt returns the index into cols of the column owning x, or
// -1 if x is outside every parsed column. Used by the major-column
// lookup (RowMajorAt), which needs the column's ordinal position among
// the descriptor columns, not just its metadata.
func columnIndexAt(cols []column, x int) int {
	for i := range cols {
		if x >= cols[i].X && x < cols[i].X+cols[i].Width {
			return i
		}
	}
	return -1
}

// columnFlags returns the TF_FABRIC_*_COL / TF_ROUTING_NO_IO flags a
// column stamps on every tile of both its halves outside the top and
// bottom rows, per §4.D phase 1.
func (c column) columnFlags() TileFlag {
	var f TileFlag
	switch c.Kind {
	case colLogicXL, colLogicXM:
		f |= TF_FABRIC_LOGIC_COL | TF_FABRIC_ROUTING_COL
	case colBRAM:
		f |= TF_FABRIC_BRAM_COL | TF_FABRIC_BRAM_MACC_ROUTING_COL
	case colMACC:
		f |= TF_FABRIC_MACC_COL | TF_FABRIC_BRAM_MACC_ROUTING_COL
	case colCenter:
		// center is its own thing; no FABRIC_* column flag applies.
	}
	if c.NoIO {
		f |= TF_ROUTING_NO_IO
	} else if c.Kind == colBRAM || c.Kind == colMACC {
		// BRAM/MACC routing columns are always no-IO, per the
		// builder notes in flags.go's TF_ROUTING_NO_IO comment.
		f |= TF_ROUTING_NO_IO
	}
	return f
}

// baseTileType returns the tile type for the device half of the
// column (as opposed to its routing half) at an ordinary (non-IO,
// non-HCLK, non-corner) row position. The center column's device
// half is ordinary ROUTING at every row except the single
// central-regs row, whose CENTER tile the builder stamps separately.
func (c column) baseTileType() TileType {
	switch c.Kind {
	case colLogicXL:
		return LOGIC_XL
	case colLogicXM:
		return LOGIC_XM
	case colBRAM:
		return BRAM
	case colMACC:
		return MACC
	case colCenter:
		return ROUTING
	default:
		return NA
	}
}

// routingTileType returns the tile type for the column's routing
// x-position (the column's leftmost position) at an ordinary row.
// BRAM/MACC and center columns don't have a distinct plain-row
// routing variant in the tile type enum outside of HCLK/REGH rows,
// so they share ROUTING at ordinary rows.
func (c column) routingTileType() TileType {
	switch c.Kind {
	case colBRAM:
		return BRAM_ROUTING
	default:
		return ROUTING
	}
}
