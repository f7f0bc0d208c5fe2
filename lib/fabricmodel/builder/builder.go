// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package builder runs the fabric model builder's phases 2 through 5
// (phase 1, "init tiles", lives in fabricmodel.NewModel itself since
// it determines the grid's shape): instantiating devices, naming
// connection points, generating inter-tile wires, and generating
// intra-tile programmable switches.
package builder

import (
	"fmt"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricdev"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricmodel"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/swbits"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/wireintern"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6err"
)

// Build runs phases 2-5 over a model whose phase-1 tile grid is
// already populated (i.e. one returned by fabricmodel.NewModel).
func Build(m *fabricmodel.Model) error {
	if err := initDevices(m); err != nil {
		return err
	}
	if err := initPorts(m); err != nil {
		return err
	}
	if err := initWires(m); err != nil {
		return err
	}
	if err := initSwitches(m); err != nil {
		return err
	}
	return nil
}

// initDevices is phase 2: stamp a device payload onto every tile
// whose TileType implies one (LOGIC_XM/XL, BRAM, MACC, IO_L/IO_R).
func initDevices(m *fabricmodel.Model) error {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.TileAt(y, x)
			switch t.Type {
			case fabricmodel.LOGIC_XM:
				t.AddDevice(fabricmodel.DevLogic, &fabricdev.Logic{Subtype: "M"})
			case fabricmodel.LOGIC_XL:
				t.AddDevice(fabricmodel.DevLogic, &fabricdev.Logic{Subtype: "L"})
			case fabricmodel.BRAM:
				t.AddDevice(fabricmodel.DevBRAM16, &fabricdev.BRAM16{DataWidthA: 16, DataWidthB: 16})
			case fabricmodel.MACC:
				t.AddDevice(fabricmodel.DevMACC, &fabricdev.MACC{})
			case fabricmodel.IO_L:
				t.AddDevice(fabricmodel.DevIOB, &fabricdev.IOB{})
			case fabricmodel.IO_R:
				t.AddDevice(fabricmodel.DevIOB, &fabricdev.IOB{})
			case fabricmodel.PLL_T, fabricmodel.PLL_B:
				t.AddDevice(fabricmodel.DevPLL, &fabricdev.PLL{})
			case fabricmodel.DCM_T, fabricmodel.DCM_B:
				t.AddDevice(fabricmodel.DevDCM, &fabricdev.DCM{})
			}
		}
	}
	return nil
}

// pinNamesFor returns the fixed set of named connection points a
// device of the given kind exposes, e.g. a Logic device's A1..A6,
// AX, AY, AQ (and likewise for B..D), CLK, SR, CE pins.
func pinNamesFor(kind fabricmodel.DeviceKind) []string {
	switch kind {
	case fabricmodel.DevLogic:
		return []string{
			"A1", "A2", "A3", "A4", "A5", "A6", "AX", "AY", "AQ",
			"B1", "B2", "B3", "B4", "B5", "B6", "BX", "BY", "BQ",
			"C1", "C2", "C3", "C4", "C5", "C6", "CX", "CY", "CQ",
			"D1", "D2", "D3", "D4", "D5", "D6", "DX", "DY", "DQ",
			"CLK", "SR", "CE",
		}
	case fabricmodel.DevIOB:
		return []string{"O", "T", "I", "IQ", "DIFFI_IN", "DIFFO_OUT"}
	case fabricmodel.DevBRAM16, fabricmodel.DevBRAM8:
		return []string{"CLKA", "CLKB", "ENA", "ENB", "WEA", "WEB"}
	case fabricmodel.DevMACC:
		return []string{"CLK", "RST", "CEA", "CEB", "CEC", "CEP"}
	case fabricmodel.DevPLL, fabricmodel.DevDCM:
		return []string{"CLKIN", "CLKFB", "RST", "LOCKED"}
	default:
		return nil
	}
}

// initPorts is phase 3: for every device, intern and register a
// connection point on its tile for each of the device's named pins.
func initPorts(m *fabricmodel.Model) error {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.TileAt(y, x)
			for i := range t.Devices {
				d := &t.Devices[i]
				for _, pin := range pinNamesFor(d.Kind) {
					name := fmt.Sprintf("%s%d_%s", devPrefix(d.Kind), d.TypeIndex, pin)
					id, err := m.Interner.Add(name)
					if err != nil {
						return xc6err.Exhaustedf("interning pin name %q: %v", name, err)
					}
					t.AddConnPoint(id)
				}
			}
		}
	}
	return nil
}

func devPrefix(kind fabricmodel.DeviceKind) string {
	switch kind {
	case fabricmodel.DevLogic:
		return "SLICE"
	case fabricmodel.DevIOB:
		return "IOB"
	case fabricmodel.DevBRAM16, fabricmodel.DevBRAM8:
		return "RAMB"
	case fabricmodel.DevMACC:
		return "DSP"
	case fabricmodel.DevPLL:
		return "PLL"
	case fabricmodel.DevDCM:
		return "DCM"
	default:
		return "DEV"
	}
}

// initWires is phase 4. It registers GFAN0 and GFAN1 connection
// points on every tile, and for each Logic device's AQ/BQ/CQ/DQ pin
// adds a LOGICOUT_<pin><index> connection point on the same tile plus
// a destination from the pin to it. It makes no LOGICIN_B/GFAN ties
// and no inter-tile wires; the other wire passes of §4.D phase 4 (IO
// device wires, directional NN2/SS2/..., the global clock tree) are
// not generated.
func initWires(m *fabricmodel.Model) error {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.TileAt(y, x)
			gfan0, err := m.Interner.Add("GFAN0")
			if err != nil {
				return xc6err.Exhaustedf("interning GFAN0: %v", err)
			}
			gfan1, err := m.Interner.Add("GFAN1")
			if err != nil {
				return xc6err.Exhaustedf("interning GFAN1: %v", err)
			}
			t.AddConnPoint(gfan0)
			t.AddConnPoint(gfan1)

			for i := range t.Devices {
				if t.Devices[i].Kind != fabricmodel.DevLogic {
					continue
				}
				for _, out := range []string{"AQ", "BQ", "CQ", "DQ"} {
					name := fmt.Sprintf("%s%d_%s", devPrefix(fabricmodel.DevLogic), t.Devices[i].TypeIndex, out)
					srcID := m.Interner.Find(name)
					if srcID == wireintern.NoEntry {
						continue
					}
					srcIdx := t.FindConnPoint(srcID)
					if srcIdx < 0 {
						continue
					}
					logicoutName := fmt.Sprintf("LOGICOUT_%s%d", out, t.Devices[i].TypeIndex)
					logicoutID, err := m.Interner.Add(logicoutName)
					if err != nil {
						return xc6err.Exhaustedf("interning %q: %v", logicoutName, err)
					}
					dstIdx := t.AddConnPoint(logicoutID)
					t.AddDest(srcIdx, x, y, logicoutID)
					_ = dstIdx
				}
			}
		}
	}
	return nil
}

// initSwitches is phase 5: for every routing tile, instantiate the
// switch-bit-position catalogue as off switches between interned
// (from,to) wire names local to that tile.
func initSwitches(m *fabricmodel.Model) error {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.TileAt(y, x)
			if !m.YXFlags(y, x).Any(fabricmodel.YX_ROUTING_TILE) {
				continue
			}
			for _, e := range swbits.Catalogue {
				fromID, err := internWire(m.Interner, e.FromWire)
				if err != nil {
					return err
				}
				toID, err := internWire(m.Interner, e.ToWire)
				if err != nil {
					return err
				}
				fromIdx := t.AddConnPoint(fromID)
				toIdx := t.AddConnPoint(toID)
				sw := fabricmodel.NewSwitch(fromIdx, toIdx, e.Bidir, false)
				if _, dup := t.AddSwitch(sw); dup {
					return xc6err.Invariantf(y, x, "duplicate switch %s->%s", e.FromWire, e.ToWire)
				}
			}
		}
	}
	return nil
}

func internWire(in *wireintern.Interner, name string) (wireintern.ID, error) {
	id, err := in.Add(name)
	if err != nil {
		return 0, xc6err.Exhaustedf("interning wire name %q: %v", name, err)
	}
	return id, nil
}
