// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package fabricmodel

// Row-group geometry: each config row is 16 tiles tall plus one HCLK
// tile at local position 8, per §4.C. The chip additionally has two
// outer IO rows above and below the stack of config-row groups, and a
// single "central regs" row inserted at the vertical midpoint.
const (
	rowSize     = 16 // tiles per config-row group, not counting HCLK
	hclkPos     = 8  // local position of the HCLK tile within a group
	outerIORows = 2  // IO rows above the top group, and below the bottom group
)

// groupHeight is the number of y-positions spanned by one config-row
// group including its HCLK tile.
const groupHeight = rowSize + 1

// relativeY maps a raw grid y to its position within the stack of
// row-groups, with the single central-regs row (at centerY) removed
// from the count, per the "shifting half the grid down by one" rule
// of §4.C. ok is false for y outside every row-group, including the
// central-regs row itself and the outer IO rows.
func relativeY(y, numConfigRows int) (ry int, ok bool) {
	cy := centerY(numConfigRows)
	if y == cy {
		return 0, false
	}
	ry = y - outerIORows
	if y > cy {
		ry--
	}
	if ry < 0 || ry >= numConfigRows*groupHeight {
		return 0, false
	}
	return ry, true
}

// WhichRow returns the config-row-group index owning y and whether y
// falls within any group at all.
func WhichRow(y int, numConfigRows int) (row int, ok bool) {
	ry, ok := relativeY(y, numConfigRows)
	if !ok {
		return 0, false
	}
	return ry / groupHeight, true
}

// PosInRow returns the local position of y within its row-group:
// [0,16], where 8 is the HCLK tile and the rest are ordinary tiles, or -1 if y is not
// inside any row-group (outer IO rows, the central-regs row, or past
// the last group).
func PosInRow(y int, numConfigRows int) int {
	ry, ok := relativeY(y, numConfigRows)
	if !ok {
		return -1
	}
	return ry % groupHeight
}

// IsHCLK reports whether pos (as returned by PosInRow) names the
// HCLK tile.
func IsHCLK(pos int) bool { return pos == hclkPos }

// centerY computes the y-coordinate of the chip's central-regs row:
// two outer IO rows, then half of the config-row groups (each
// groupHeight tall), landing on the boundary between the upper and
// lower halves of the fabric. For XC6SLX9's 4 config rows this is
// 2 + 2*17 = 36, matching the worked example.
func centerY(numConfigRows int) int {
	return outerIORows + (numConfigRows/2)*groupHeight
}

// gridHeight is the total number of tile rows in the grid: two outer
// IO rows, numConfigRows row-groups, and one central-regs row.
func gridHeight(numConfigRows int) int {
	return outerIORows*2 + numConfigRows*groupHeight + 1
}
