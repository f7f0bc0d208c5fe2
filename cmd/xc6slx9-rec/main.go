// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"os"

	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/profile"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/textui"
)

// subcommands is populated by each subcommand's init() via addCommand.
var subcommands []*cobra.Command

func addCommand(cmd *cobra.Command) {
	subcommands = append(subcommands, cmd)
}

func main() {
	logLevelFlag := textui.LogLevelFlag{Level: dlog.LogLevelInfo}
	var partFlag string

	argparser := &cobra.Command{
		Use:   "xc6slx9-rec {[flags]|SUBCOMMAND}",
		Short: "Decode, encode, and inspect Spartan-6 XC6SLX9 configuration bitstreams",

		Args: cliutil.WrapPositionalArgs(cliutil.OnlySubcommands),
		RunE: cliutil.RunSubcommands,

		SilenceErrors: true, // main() handles the error after .ExecuteContext() returns
		SilenceUsage:  true, // our FlagErrorFunc handles it

		CompletionOptions: cobra.CompletionOptions{ //nolint:exhaustivestruct
			DisableDefaultCmd: true,
		},
	}
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
	argparser.PersistentFlags().Var(&logLevelFlag, "verbosity", "set the verbosity")
	argparser.PersistentFlags().StringVar(&partFlag, "part", "xc6slx9", "target die `part`")
	stopProfile := profile.AddProfileFlags(argparser.PersistentFlags(), "profile-")

	for _, cmd := range subcommands {
		cmd := cmd
		runE := cmd.RunE
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := textui.NewLogger(os.Stderr, logLevelFlag.Level)
			ctx = dlog.WithLogger(ctx, logger)

			grp := dgroup.NewGroup(ctx, dgroup.GroupConfig{
				EnableSignalHandling: true,
			})
			grp.Go("main", func(ctx context.Context) error {
				if partFlag != "xc6slx9" {
					return errUnsupportedPart(partFlag)
				}
				cmd.SetContext(ctx)
				return runE(cmd, args)
			})
			return grp.Wait()
		}
		argparser.AddCommand(cmd)
	}

	err := argparser.ExecuteContext(context.Background())
	if stopErr := stopProfile(); err == nil {
		err = stopErr
	}
	if err != nil {
		textui.Fprintf(os.Stderr, "%v: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
