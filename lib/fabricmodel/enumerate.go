// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package fabricmodel

// TileInfo is one row of the §6 floorplan enumerator's tile listing:
// (y, x, type, flags).
type TileInfo struct {
	Y, X  int
	Type  TileType
	Flags TileFlag
}

// DeviceInfo is one row of the §6 floorplan enumerator's device
// listing: (y, x, kind, type_index, config-struct). Config is the
// device's own payload (fabricdev.Logic, fabricdev.IOB, etc.),
// returned as-is rather than re-encoded.
type DeviceInfo struct {
	Y, X      int
	Kind      DeviceKind
	TypeIndex int
	Config    interface{}
}

// SwitchInfo is one row of the §6 floorplan enumerator's switch
// listing: (y, x, from-wire, to-wire, bidir, on), with the connection
// point names already resolved through the model's interner.
type SwitchInfo struct {
	Y, X             int
	FromWire, ToWire string
	Bidir, On        bool
}

// ConnPointDestInfo is one destination of a ConnPointInfo: the other
// tile's coordinates and its connection point's name.
type ConnPointDestInfo struct {
	DestY, DestX int
	DestName     string
}

// ConnPointInfo is one row of the §6 floorplan enumerator's
// connection-point listing: a tile's named connection point and
// every inter-tile destination it drives.
type ConnPointInfo struct {
	Y, X  int
	Name  string
	Dests []ConnPointDestInfo
}

// AllTiles enumerates every tile of the grid in row-major (y, then x)
// order, the enumerator contract's "stable order across runs for
// identical input" (§6): the grid is built deterministically from the
// column descriptor and wiring strings, so this order never depends
// on map iteration or any other nondeterministic source.
func (m *Model) AllTiles() []TileInfo {
	out := make([]TileInfo, 0, len(m.tiles))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.TileAt(y, x)
			out = append(out, TileInfo{Y: y, X: x, Type: t.Type, Flags: t.Flags})
		}
	}
	return out
}

// AllDevices enumerates every device of every tile, in tile row-major
// order and then in each tile's own Devices order (the order the
// builder phases stamped them, which is itself deterministic).
func (m *Model) AllDevices() []DeviceInfo {
	var out []DeviceInfo
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.TileAt(y, x)
			for _, d := range t.Devices {
				out = append(out, DeviceInfo{Y: y, X: x, Kind: d.Kind, TypeIndex: d.TypeIndex, Config: d.Payload})
			}
		}
	}
	return out
}

// AllSwitches enumerates every switch of every tile, in tile
// row-major order and then each tile's own Switches order, resolving
// each switch's endpoint connection points to their interned names.
// A switch whose endpoint name can't be resolved (an invariant
// violation, not a normal occurrence) is skipped rather than reported
// with a blank name.
func (m *Model) AllSwitches() []SwitchInfo {
	var out []SwitchInfo
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.TileAt(y, x)
			for _, sw := range t.Switches {
				from, ok1 := m.connPointName(t, sw.From())
				to, ok2 := m.connPointName(t, sw.To())
				if !ok1 || !ok2 {
					continue
				}
				out = append(out, SwitchInfo{
					Y: y, X: x,
					FromWire: from, ToWire: to,
					Bidir: sw.Bidir(), On: sw.On(),
				})
			}
		}
	}
	return out
}

// AllConnPoints enumerates every named connection point of every
// tile together with its destinations, in tile row-major order and
// then each tile's own ConnPointNames order.
func (m *Model) AllConnPoints() []ConnPointInfo {
	var out []ConnPointInfo
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.TileAt(y, x)
			for i, cp := range t.ConnPointNames {
				name, ok := m.Interner.Lookup(cp.NameID)
				if !ok {
					continue
				}
				dests := t.DestsOf(i)
				destInfos := make([]ConnPointDestInfo, 0, len(dests))
				for _, d := range dests {
					destName, ok := m.Interner.Lookup(d.DestNameID)
					if !ok {
						continue
					}
					destInfos = append(destInfos, ConnPointDestInfo{DestY: d.DestY, DestX: d.DestX, DestName: destName})
				}
				out = append(out, ConnPointInfo{Y: y, X: x, Name: name, Dests: destInfos})
			}
		}
	}
	return out
}

func (m *Model) connPointName(t *Tile, cpIdx int) (string, bool) {
	if cpIdx < 0 || cpIdx >= len(t.ConnPointNames) {
		return "", false
	}
	return m.Interner.Lookup(t.ConnPointNames[cpIdx].NameID)
}
