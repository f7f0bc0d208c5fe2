// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricmodel"
)

const tileSizePx = 16

func init() {
	addCommand(&cobra.Command{
		Use:     "drawfp SVGFILE",
		Aliases: []string{"draw_fpga"},
		Short:   "Render the XC6SLX9 tile grid as an SVG diagram",
		Args:    cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			model, err := buildEmptyModel()
			if err != nil {
				return err
			}

			fh, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()
			out := bufio.NewWriter(fh)

			dlog.Infof(ctx, "drawing %dx%d grid...", model.Width, model.Height)
			writeSVG(out, model)
			return out.Flush()
		},
	})
}

func writeSVG(out *bufio.Writer, model *fabricmodel.Model) {
	w := model.Width * tileSizePx
	h := model.Height * tileSizePx
	fmt.Fprintf(out, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n", w, h)
	for y := 0; y < model.Height; y++ {
		for x := 0; x < model.Width; x++ {
			t := model.TileAt(y, x)
			if t.Type == fabricmodel.NA {
				continue
			}
			fmt.Fprintf(out, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\"><title>%s</title></rect>\n",
				x*tileSizePx, y*tileSizePx, tileSizePx, tileSizePx, tileColor(t.Type), t.Type.String())
		}
	}
	fmt.Fprintln(out, "</svg>")
}

func tileColor(t fabricmodel.TileType) string {
	switch {
	case t == fabricmodel.LOGIC_XM || t == fabricmodel.LOGIC_XL:
		return "#8ecae6"
	case t == fabricmodel.BRAM:
		return "#ffb703"
	case t == fabricmodel.MACC:
		return "#fb8500"
	case t == fabricmodel.CENTER:
		return "#023047"
	case t == fabricmodel.IO_L || t == fabricmodel.IO_R || t == fabricmodel.IO_T || t == fabricmodel.IO_B:
		return "#219ebc"
	default:
		return "#d9d9d9"
	}
}
