// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricmodel"
)

// floorplanReport is the JSON shape `floorplan` writes to stdout: the
// §6 enumerator contract's four listings, any of which the caller may
// omit via flags for a large die where the full dump is unwieldy.
type floorplanReport struct {
	Tiles      []fabricmodel.TileInfo      `json:"tiles,omitempty"`
	Devices    []fabricmodel.DeviceInfo    `json:"devices,omitempty"`
	Switches   []fabricmodel.SwitchInfo    `json:"switches,omitempty"`
	ConnPoints []fabricmodel.ConnPointInfo `json:"conn_points,omitempty"`
}

func init() {
	var tiles, devices, switches, connPoints bool

	cmd := &cobra.Command{
		Use:     "floorplan",
		Aliases: []string{"floorplan_info"},
		Short:   "Enumerate the fabric model's tiles, devices, switches, and connection points",
		Args:    cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := buildEmptyModel()
			if err != nil {
				return err
			}

			all := !tiles && !devices && !switches && !connPoints
			var report floorplanReport
			if all || tiles {
				report.Tiles = model.AllTiles()
			}
			if all || devices {
				report.Devices = model.AllDevices()
			}
			if all || switches {
				report.Switches = model.AllSwitches()
			}
			if all || connPoints {
				report.ConnPoints = model.AllConnPoints()
			}
			return writeJSONFile(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().BoolVar(&tiles, "tiles", false, "include the tile listing")
	cmd.Flags().BoolVar(&devices, "devices", false, "include the device listing")
	cmd.Flags().BoolVar(&switches, "switches", false, "include the switch listing")
	cmd.Flags().BoolVar(&connPoints, "conn-points", false, "include the connection-point listing")
	addCommand(cmd)
}
