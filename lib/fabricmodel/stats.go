// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package fabricmodel

var deviceKindNames = [...]string{
	DevNone:    "NONE",
	DevIOB:     "IOB",
	DevLogic:   "LOGIC",
	DevBRAM16:  "BRAM16",
	DevBRAM8:   "BRAM8",
	DevMACC:    "MACC",
	DevPLL:     "PLL",
	DevDCM:     "DCM",
	DevBUFG:    "BUFG",
	DevBUFIO:   "BUFIO",
	DevBUFH:    "BUFH",
	DevBUFPLL:  "BUFPLL",
	DevIODELAY: "IODELAY",
	DevILOGIC:  "ILOGIC",
	DevOLOGIC:  "OLOGIC",
	DevTIEOFF:  "TIEOFF",
	DevBSCAN:   "BSCAN",
	DevICAP:    "ICAP",
}

// String implements fmt.Stringer.
func (k DeviceKind) String() string {
	if k < 0 || int(k) >= len(deviceKindNames) || deviceKindNames[k] == "" {
		return "DeviceKind(?)"
	}
	return deviceKindNames[k]
}

// Stats is a summary histogram over a built Model: per-tile-type
// counts, per-device-kind counts, and the number of switches left ON
// across the whole grid. Grounded on original_source/fpinfo.c, which
// walks the model once and tallies exactly these three things before
// printing them.
type Stats struct {
	TileTypeCounts   map[TileType]int
	DeviceKindCounts map[DeviceKind]int
	SwitchesOn       int
	NumTiles         int
}

// Stats walks every tile in m and tallies tile types, device kinds,
// and active switches.
func (m *Model) Stats() Stats {
	s := Stats{
		TileTypeCounts:   make(map[TileType]int),
		DeviceKindCounts: make(map[DeviceKind]int),
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.TileAt(y, x)
			s.NumTiles++
			s.TileTypeCounts[t.Type]++
			for _, d := range t.Devices {
				s.DeviceKindCounts[d.Kind]++
			}
			for _, sw := range t.Switches {
				if sw.On() {
					s.SwitchesOn++
				}
			}
		}
	}
	return s
}
