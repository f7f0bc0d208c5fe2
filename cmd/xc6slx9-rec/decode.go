// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/extract"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/parser"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricdev"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricmodel"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/jsonutil"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/swbits"
)

// decodeSummary is the JSON shape `decode` writes to stdout: the
// bitstream's ASCII header fields plus what the extractor found in
// the frame data, not a byte-exact reconstruction of every device
// (that needs the full switch-bit and IOB-pattern catalogues, which
// are only partially represented; see DESIGN.md).
type decodeSummary struct {
	Magic          jsonutil.RawBytes `json:"magic"`
	Header         map[string]string `json:"header"`
	DataLen        uint32            `json:"data_len"`
	NumActions     int               `json:"num_register_actions"`
	ActiveSwitches int               `json:"active_switches"`
	IOBsUsed       int               `json:"iobs_used"`
}

func init() {
	addCommand(&cobra.Command{
		Use:     "decode BITFILE",
		Aliases: []string{"bit2fp"},
		Short:   "Decode a .bit configuration bitstream and summarize its fabric state",
		Args:    cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			dlog.Infof(ctx, "parsing %d bytes...", len(data))
			res, err := parser.Parse(data)
			if err != nil {
				return err
			}
			for _, w := range res.Warnings {
				dlog.Warn(ctx, w)
			}

			dlog.Info(ctx, "building fabric model...")
			model, err := buildEmptyModel()
			if err != nil {
				return err
			}

			dlog.Info(ctx, "extracting routing switches...")
			active, err := extract.ExtractSwitches(res.Buffer, model, swbits.Catalogue)
			if err != nil {
				return err
			}

			iobs := collectIOBs(model)
			if err := extract.ExtractIOBs(res.Buffer, iobs); err != nil {
				return err
			}
			used := 0
			for _, iob := range iobs {
				if iob.OUsed {
					used++
				}
			}

			var magic jsonutil.RawBytes
			if len(data) >= 13 {
				magic = jsonutil.RawBytes(data[:13])
			}
			summary := decodeSummary{
				Magic:          magic,
				Header:         stringKeyed(res.Header.Fields),
				DataLen:        res.Header.DataLen,
				NumActions:     len(res.Actions),
				ActiveSwitches: active,
				IOBsUsed:       used,
			}
			dlog.Info(ctx, "... done")
			return writeJSONFile(os.Stdout, summary)
		},
	})
}

func stringKeyed(m map[byte]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

// collectIOBs walks the model's tiles in grid order and returns every
// stamped IOB device, the same traversal order fabricdev-builder used
// to create them.
func collectIOBs(model *fabricmodel.Model) []*fabricdev.IOB {
	var iobs []*fabricdev.IOB
	for y := 0; y < model.Height; y++ {
		for x := 0; x < model.Width; x++ {
			t := model.TileAt(y, x)
			for i := range t.Devices {
				if iob, ok := t.Devices[i].Payload.(*fabricdev.IOB); ok {
					iobs = append(iobs, iob)
				}
			}
		}
	}
	return iobs
}
