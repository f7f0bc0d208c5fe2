// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/swbits"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/textui"
)

func init() {
	addCommand(&cobra.Command{
		Use:     "swbits",
		Aliases: []string{"printf_swbits"},
		Short:   "Print the known switch bit-position catalogue",
		Args:    cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range swbits.Catalogue {
				bidir := ""
				if e.Bidir {
					bidir = " (bidir)"
				}
				fmt.Fprintf(os.Stdout, "minor %2d: %s -> %s [two_bits@%d=%d one_bit@%d]%s\n",
					e.Minor, e.FromWire, e.ToWire, e.TwoBitsOffset, e.TwoBitsVal, e.OneBitOffset, bidir)
			}
			textui.Fprintf(os.Stdout, "%v catalogue entries\n", textui.Humanized(len(swbits.Catalogue)))
			return nil
		},
	})
}
