// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/emit"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/frame"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/writer"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricdev"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/swbits"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6parts"
)

// fpConfig is the JSON input `encode` reads: an explicit, user-given
// programming (which IOBs are used, which LOGIC tile gets which LUT
// equations), addressed the same way the FAR register addresses
// frames: by (row, major).
type fpConfig struct {
	IOBsUsed []int `json:"iobs_used"`
	Logic    []struct {
		Row        int       `json:"row"`
		Major      int       `json:"major"`
		Equations  [4]string `json:"equations"`
		XEquations [4]string `json:"x_equations,omitempty"`
	} `json:"logic"`
}

func init() {
	addCommand(&cobra.Command{
		Use:     "encode CONFIG.json BITFILE",
		Aliases: []string{"fp2bit"},
		Short:   "Compile a fabric programming description into a .bit configuration bitstream",
		Args:    cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := readJSONFile[fpConfig](ctx, args[0])
			if err != nil {
				return err
			}

			dlog.Info(ctx, "building fabric model...")
			model, err := buildEmptyModel()
			if err != nil {
				return err
			}

			buf := frame.NewBuffer()

			iobs := make([]*fabricdev.IOB, xc6parts.NumIOBs)
			for _, idx := range cfg.IOBsUsed {
				if idx < 0 || idx >= len(iobs) {
					continue
				}
				iobs[idx] = &fabricdev.IOB{OUsed: true}
			}
			emit.EmitIOBs(buf, iobs)

			for _, l := range cfg.Logic {
				logic := &fabricdev.Logic{LUTEquation: l.Equations}
				var xLogic *fabricdev.Logic
				if l.XEquations != ([4]string{}) {
					xLogic = &fabricdev.Logic{LUTEquation: l.XEquations}
				}
				dlog.Debugf(ctx, "writing LUTs for logic tile (row=%d major=%d)", l.Row, l.Major)
				if err := emit.EmitLogic(buf, l.Row, l.Major, logic, xLogic); err != nil {
					return err
				}
			}

			emit.EmitSwitches(buf, model, swbits.Catalogue)
			emit.EmitDefaults(buf)

			out := writer.Write(&writer.Header{
				Fields: map[byte]string{
					'a': "xc6slx9-rec",
					'b': "6slx9csg324",
					'c': "2026/07/30",
					'd': "00:00:00",
				},
			}, buf)

			dlog.Infof(ctx, "writing %d bytes to %s...", len(out), args[1])
			return os.WriteFile(args[1], out, 0o644)
		},
	})
}
