// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package fabricmodel

// YFlags computes the row-level flag bitset for y: is it the
// outermost inner row, the chip's horizontal-regs row, an
// axis-of-symmetry row, the bottom tile of its row-group, or does its
// row-group carry left/right wiring.
func (m *Model) YFlags(y int) YFlag {
	var f YFlag
	if y == outerIORows {
		f |= Y_INNER_TOP
	}
	if y == m.Height-outerIORows-1 {
		f |= Y_INNER_BOTTOM
	}
	if y == m.CenterY {
		f |= Y_CHIP_HORIZ_REGS
	}
	row, ok := WhichRow(y, m.NumConfigRows)
	pos := PosInRow(y, m.NumConfigRows)
	if ok && pos >= 0 {
		if IsHCLK(pos) {
			f |= Y_ROW_HORIZ_AXSYMM
		}
		if pos == groupHeight-1 {
			f |= Y_BOTTOM_OF_ROW
		}
		if m.rowGroupWired(row, 0) {
			f |= Y_LEFT_WIRED
		}
		if m.rowGroupWired(row, m.Width-1) {
			f |= Y_RIGHT_WIRED
		}
	}
	return f
}

// rowGroupWired reports whether any tile of the row-group at column x
// is wired; the model builder's classifyLeftIO/classifyRightIO
// already decided this per-tile, so this walks the already-stamped
// column rather than re-parsing the wiring string a second time.
func (m *Model) rowGroupWired(row int, x int) bool {
	for pos := 0; pos < groupHeight; pos++ {
		y := m.yFor(row, pos)
		if y < 0 {
			continue
		}
		t := m.TileAt(y, x)
		if t.Flags.Has(TF_WIRED) && (t.Type == IO_L || t.Type == IO_R) {
			return true
		}
	}
	return false
}

// yFor is the inverse of relativeY/WhichRow: the grid y-coordinate of
// the tile at (row, pos), or -1 if out of range.
func (m *Model) yFor(row, pos int) int {
	if row < 0 || row >= m.NumConfigRows || pos < 0 || pos > rowSize {
		return -1
	}
	ry := row*groupHeight + pos
	y := ry + outerIORows
	cy := centerY(m.NumConfigRows)
	if y >= cy {
		y++
	}
	return y
}

// XFlags computes the column-level flag bitset for x.
func (m *Model) XFlags(x int) XFlag {
	var f XFlag
	switch {
	case x == 0:
		f |= X_OUTER_LEFT | X_LEFT_SIDE
	case x == leftIOWidth-1:
		f |= X_INNER_LEFT | X_LEFT_SIDE
	case x == m.Width-leftIOWidth:
		f |= X_INNER_RIGHT
	case x == m.Width-1:
		f |= X_OUTER_RIGHT
	}
	if x < m.CenterX {
		f |= X_LEFT_SIDE
	}
	if x == m.CenterX {
		f |= X_CENTER_ROUTING_COL
	}

	col := m.columnAtX(x)
	if col == nil {
		return f
	}
	colGridX := leftIOWidth + col.X
	if x == colGridX {
		f |= X_ROUTING_COL
		switch col.Kind {
		case colBRAM:
			f |= X_ROUTING_TO_BRAM_COL
		case colMACC:
			f |= X_ROUTING_TO_MACC_COL
		}
		if col.NoIO {
			f |= X_ROUTING_NO_IO
		}
		f |= fabricRoutingColFlag(col.Kind)
	} else {
		f |= X_LOGIC_COL
		f |= fabricDeviceColFlag(col.Kind)
	}
	return f
}

func fabricRoutingColFlag(k colKind) XFlag {
	switch k {
	case colLogicXL, colLogicXM:
		return X_FABRIC_ROUTING_COL
	case colBRAM:
		return X_FABRIC_BRAM_MACC_ROUTING_COL
	case colMACC:
		return X_FABRIC_BRAM_MACC_ROUTING_COL
	}
	return 0
}

func fabricDeviceColFlag(k colKind) XFlag {
	switch k {
	case colLogicXL, colLogicXM:
		return X_FABRIC_LOGIC_COL
	case colBRAM:
		return X_FABRIC_BRAM_COL
	case colMACC:
		return X_FABRIC_MACC_COL
	}
	return 0
}

// YXFlags computes the joint (y,x) flag bitset: whether (y,x) is a
// routing tile at all, and whether it's specifically an IO-routing
// tile (a routing tile in one of the left/right IO columns).
func (m *Model) YXFlags(y, x int) YXFlag {
	t := m.TileAt(y, x)
	var f YXFlag
	switch t.Type {
	case ROUTING, ROUTING_BRK, ROUTING_VIA, BRAM_ROUTING, BRAM_ROUTING_BRK,
		ROUTING_IO_L, ROUTING_IO_L_BRK, ROUTING_IO_VIA_L, ROUTING_IO_VIA_R,
		ROUTING_GCLK, HCLK_ROUTING_XM, HCLK_ROUTING_XL:
		f |= YX_ROUTING_TILE
	}
	if x < leftIOWidth || x >= m.Width-leftIOWidth {
		if f.Any(YX_ROUTING_TILE) {
			f |= YX_IO_ROUTING
		}
	}
	return f
}
