// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6parts"
)

type fpinfoSummary struct {
	Part             string         `json:"part"`
	IDCode           uint32         `json:"idcode"`
	NumConfigRows    int            `json:"num_config_rows"`
	Width            int            `json:"grid_width"`
	Height           int            `json:"grid_height"`
	CenterX          int            `json:"center_x"`
	CenterY          int            `json:"center_y"`
	NumIOBs          int            `json:"num_iobs"`
	NumTiles         int            `json:"num_tiles"`
	SwitchesOn       int            `json:"switches_on"`
	TileTypeCounts   map[string]int `json:"tile_type_counts"`
	DeviceKindCounts map[string]int `json:"device_kind_counts"`
}

func init() {
	addCommand(&cobra.Command{
		Use:   "fpinfo",
		Short: "Print the XC6SLX9 fabric's grid geometry",
		Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := buildEmptyModel()
			if err != nil {
				return err
			}
			stats := model.Stats()
			tileCounts := make(map[string]int, len(stats.TileTypeCounts))
			for k, v := range stats.TileTypeCounts {
				tileCounts[k.String()] = v
			}
			deviceCounts := make(map[string]int, len(stats.DeviceKindCounts))
			for k, v := range stats.DeviceKindCounts {
				deviceCounts[k.String()] = v
			}
			return writeJSONFile(cmd.OutOrStdout(), fpinfoSummary{
				Part:             "xc6slx9",
				IDCode:           xc6parts.SupportedIDCode,
				NumConfigRows:    model.NumConfigRows,
				Width:            model.Width,
				Height:           model.Height,
				CenterX:          model.CenterX,
				CenterY:          model.CenterY,
				NumIOBs:          xc6parts.NumIOBs,
				NumTiles:         stats.NumTiles,
				SwitchesOn:       stats.SwitchesOn,
				TileTypeCounts:   tileCounts,
				DeviceKindCounts: deviceCounts,
			})
		},
	})
}
