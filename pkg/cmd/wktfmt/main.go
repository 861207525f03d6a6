// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// wktfmt reads one WKT, EWKT or hex EWKB geometry per line and re-emits
// each in the requested format.
package main

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wktcodec/pkg/util/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx := context.Background()
	if err := newRootCmd(ctx).Execute(); err != nil {
		log.Fatalf(ctx, "%v", err)
	}
}

func newRootCmd(ctx context.Context) *cobra.Command {
	var configPath string
	flags := defaultConfig()
	cmd := &cobra.Command{
		Use:   "wktfmt [file...]",
		Short: "reformat geometries given as WKT",
		Long: `Reads one geometry per line from the named files, or standard input
when none are given, and writes each in the chosen format. Blank lines and
lines starting with '#' are skipped.
`,
		Example: `  echo 'POINT (1.23456 2)' | wktfmt --scale 100
  wktfmt --format geojson --srid 4326 shapes.wkt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = loadConfig(configPath); err != nil {
					return err
				}
			}
			cfg.applyFlags(cmd.Flags(), flags)
			if err := log.Init(cfg.Log, cmd.ErrOrStderr()); err != nil {
				return err
			}
			defer log.Sync()
			log.SetVerbosity(cfg.Verbosity)

			inputs, closeInputs, err := openInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeInputs()
			return run(ctx, cfg, inputs, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML file with default settings; flags override it")
	f.Float64Var(&flags.Scale, "scale", flags.Scale,
		"fixed precision scale applied while reading, e.g. 1000 keeps three decimals; 0 means floating")
	f.IntVar(&flags.Dimension, "dimension", flags.Dimension, "ordinates written per coordinate (2 or 3)")
	f.IntVar(&flags.Digits, "digits", flags.Digits, "maximum significant digits per ordinate (1 to 17)")
	f.Var(&flags.Format, "format", "output format: wkt, ewkt, wkb-hex, ewkb-hex, geojson, kml or geohash")
	f.Int32Var(&flags.SRID, "srid", flags.SRID, "SRID assumed for inputs that do not carry one")
	f.BoolVar(&flags.Strict, "strict", flags.Strict, "reject coordinate sequences that mix 2D and 3D coordinates")
	f.BoolVar(&flags.KeepGoing, "keep-going", flags.KeepGoing, "report malformed lines and continue")
	f.Int32VarP(&flags.Verbosity, "verbosity", "v", flags.Verbosity, "log verbosity level")
	f.StringVar(&flags.Log.Format, "log-format", flags.Log.Format, "log format: text or json")
	f.StringVar(&flags.Log.Level, "log-level", flags.Log.Level, "minimum log level: info, warning or error")
	return cmd
}

func openInputs(paths []string, stdin io.Reader) (_ []input, closeAll func(), _ error) {
	if len(paths) == 0 {
		return []input{{name: "<stdin>", r: stdin}}, func() {}, nil
	}
	var files []*os.File
	closeAll = func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	inputs := make([]input, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			closeAll()
			return nil, nil, errors.Wrap(err, "opening input")
		}
		files = append(files, f)
		inputs = append(inputs, input{name: p, r: f})
	}
	return inputs, closeAll, nil
}
