// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package fabricmodel

import (
	"git.lukeshu.com/xc6slx9-progs-ng/lib/wireintern"
)

// Growth increments for a tile's four growable arrays, per §4.B.
const (
	connPointNamesGrow = 128
	connPointDestsGrow = 128
	devicesGrow        = 8
	switchesGrow       = 256
)

// ConnPointName is one entry of a tile's conn_point_names list: the
// interned wire name at this connection point, and the offset into
// the tile's ConnPointDests where this name's destinations begin.
// Offsets are non-decreasing across the list; the last entry's
// destinations run to the end of ConnPointDests.
type ConnPointName struct {
	DestsOffset int
	NameID      wireintern.ID
}

// ConnPointDest is one destination of a directed inter-tile edge: the
// other tile's coordinates and the interned name of the connection
// point on that tile.
type ConnPointDest struct {
	DestX, DestY int
	DestNameID   wireintern.ID
}

// Switch is a packed programmable connection between two connection
// points of the same tile, encoded as a single 32-bit record:
// bit 31 ON, bit 30 BIDIR, bits 29:15 from-index, bits 14:0 to-index.
type Switch uint32

const (
	switchOnBit    = 1 << 31
	switchBidirBit = 1 << 30
	switchFromMask = 0x7FFF
	switchFromPos  = 15
	switchToMask   = 0x7FFF
)

// NewSwitch packs a switch record. from and to are indices into the
// owning tile's ConnPointNames.
func NewSwitch(from, to int, bidir, on bool) Switch {
	var s Switch
	if on {
		s |= switchOnBit
	}
	if bidir {
		s |= switchBidirBit
	}
	s |= Switch(from&switchFromMask) << switchFromPos
	s |= Switch(to & switchToMask)
	return s
}

func (s Switch) On() bool    { return s&switchOnBit != 0 }
func (s Switch) Bidir() bool { return s&switchBidirBit != 0 }
func (s Switch) From() int   { return int((s >> switchFromPos) & switchFromMask) }
func (s Switch) To() int     { return int(s & switchToMask) }

// WithOn returns a copy of s with the ON bit set to on.
func (s Switch) WithOn(on bool) Switch {
	if on {
		return s | switchOnBit
	}
	return s &^ switchOnBit
}

// key returns the (from,to) pair masked of ON/BIDIR, used to detect
// duplicate switches within a tile (§8 universal invariant).
func (s Switch) key() uint32 {
	return uint32(s) &^ (switchOnBit | switchBidirBit)
}

// Device is a handle into the tile's Devices slice; concrete device
// payloads live in package fabricdev and are referenced by (Kind,
// TypeIndex) so device enumeration order is preserved verbatim from
// construction (callers address devices by that pair).
type Device struct {
	Kind      DeviceKind
	TypeIndex int
	Payload   interface{}
}

// DeviceKind tags the variant stored in Device.Payload.
type DeviceKind int

const (
	DevNone DeviceKind = iota
	DevIOB
	DevLogic
	DevBRAM16
	DevBRAM8
	DevMACC
	DevPLL
	DevDCM
	DevBUFG
	DevBUFIO
	DevBUFH
	DevBUFPLL
	DevIODELAY
	DevILOGIC
	DevOLOGIC
	DevTIEOFF
	DevBSCAN
	DevICAP
)

// Tile is one cell of the fabric grid.
type Tile struct {
	Type  TileType
	Flags TileFlag

	Devices         []Device
	ConnPointNames  []ConnPointName
	ConnPointDests  []ConnPointDest
	Switches        []Switch
}

// AddConnPoint registers a new named connection point on the tile and
// returns its index, or the index of the existing entry if nameID is
// already present. New entries start with DestsOffset at the current
// end of ConnPointDests.
func (t *Tile) AddConnPoint(nameID wireintern.ID) int {
	for i, cp := range t.ConnPointNames {
		if cp.NameID == nameID {
			return i
		}
	}
	t.ConnPointNames = append(t.ConnPointNames, ConnPointName{
		DestsOffset: len(t.ConnPointDests),
		NameID:      nameID,
	})
	return len(t.ConnPointNames) - 1
}

// FindConnPoint returns the index of nameID in ConnPointNames, or -1.
func (t *Tile) FindConnPoint(nameID wireintern.ID) int {
	for i, cp := range t.ConnPointNames {
		if cp.NameID == nameID {
			return i
		}
	}
	return -1
}

// AddDest appends a destination to the connection point at cpIdx,
// inserting it at the end of that connection point's range of
// ConnPointDests and shifting the DestsOffset of every later
// connection point, so the non-decreasing DestsOffset invariant holds
// in whatever order destinations are added.
func (t *Tile) AddDest(cpIdx int, destX, destY int, destNameID wireintern.ID) {
	pos := len(t.ConnPointDests)
	if cpIdx+1 < len(t.ConnPointNames) {
		pos = t.ConnPointNames[cpIdx+1].DestsOffset
	}
	t.ConnPointDests = append(t.ConnPointDests, ConnPointDest{})
	copy(t.ConnPointDests[pos+1:], t.ConnPointDests[pos:])
	t.ConnPointDests[pos] = ConnPointDest{
		DestX: destX, DestY: destY, DestNameID: destNameID,
	}
	for i := cpIdx + 1; i < len(t.ConnPointNames); i++ {
		t.ConnPointNames[i].DestsOffset++
	}
}

// DestsOf returns the destination slice for the connection point at
// cpIdx.
func (t *Tile) DestsOf(cpIdx int) []ConnPointDest {
	start := t.ConnPointNames[cpIdx].DestsOffset
	end := len(t.ConnPointDests)
	if cpIdx+1 < len(t.ConnPointNames) {
		end = t.ConnPointNames[cpIdx+1].DestsOffset
	}
	return t.ConnPointDests[start:end]
}

// AddSwitch appends a switch to the tile, rejecting a duplicate
// (from,to) pair (modulo ON/BIDIR) as an internal invariant
// violation — duplicate switches must never occur.
func (t *Tile) AddSwitch(s Switch) (idx int, duplicate bool) {
	k := s.key()
	for i, existing := range t.Switches {
		if existing.key() == k {
			return i, true
		}
	}
	t.Switches = append(t.Switches, s)
	return len(t.Switches) - 1, false
}

// FindSwitch returns the index of the switch with the given
// (from,to) pair (masking ON/BIDIR), or -1.
func (t *Tile) FindSwitch(from, to int) int {
	want := NewSwitch(from, to, false, false).key()
	for i, s := range t.Switches {
		if s.key() == want {
			return i
		}
	}
	return -1
}

// AddDevice appends a device of the given kind, assigning it the next
// TypeIndex for that kind within this tile.
func (t *Tile) AddDevice(kind DeviceKind, payload interface{}) *Device {
	idx := 0
	for _, d := range t.Devices {
		if d.Kind == kind {
			idx++
		}
	}
	t.Devices = append(t.Devices, Device{Kind: kind, TypeIndex: idx, Payload: payload})
	return &t.Devices[len(t.Devices)-1]
}

// DeviceOfKind returns the typeIndex'th device of kind on the tile,
// or nil.
func (t *Tile) DeviceOfKind(kind DeviceKind, typeIndex int) *Device {
	for i := range t.Devices {
		if t.Devices[i].Kind == kind && t.Devices[i].TypeIndex == typeIndex {
			return &t.Devices[i]
		}
	}
	return nil
}
