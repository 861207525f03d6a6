// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

package main

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wktcodec/pkg/geo"
	"github.com/cockroachdb/wktcodec/pkg/geo/geofmt"
	"github.com/cockroachdb/wktcodec/pkg/geo/wkt"
	"github.com/cockroachdb/wktcodec/pkg/util/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// outputFormat is the --format flag. It implements pflag.Value so that an
// unknown format is rejected while flags are parsed.
type outputFormat string

const (
	formatWKT     outputFormat = "wkt"
	formatEWKT    outputFormat = "ewkt"
	formatWKBHex  outputFormat = "wkb-hex"
	formatEWKBHex outputFormat = "ewkb-hex"
	formatGeoJSON outputFormat = "geojson"
	formatKML     outputFormat = "kml"
	formatGeoHash outputFormat = "geohash"
)

var outputFormats = []outputFormat{
	formatWKT, formatEWKT, formatWKBHex, formatEWKBHex, formatGeoJSON, formatKML, formatGeoHash,
}

var _ pflag.Value = (*outputFormat)(nil)

// String implements pflag.Value.
func (f *outputFormat) String() string { return string(*f) }

// Set implements pflag.Value.
func (f *outputFormat) Set(s string) error {
	v, err := parseOutputFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *outputFormat) Type() string { return "format" }

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *outputFormat) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return f.Set(s)
}

func parseOutputFormat(s string) (outputFormat, error) {
	for _, f := range outputFormats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	names := make([]string, len(outputFormats))
	for i, f := range outputFormats {
		names[i] = string(f)
	}
	return "", errors.WithHintf(errors.Newf("unknown output format %q", s),
		"supported formats: %s", strings.Join(names, ", "))
}

// config holds everything that controls a run. It is read from the --config
// YAML file and then overridden by explicitly set flags.
type config struct {
	// Scale is the fixed precision scale; 0 means floating precision.
	Scale     float64      `yaml:"scale"`
	Dimension int          `yaml:"dimension"`
	Digits    int          `yaml:"digits"`
	Format    outputFormat `yaml:"format"`
	SRID      int32        `yaml:"srid"`
	Strict    bool         `yaml:"strict"`
	KeepGoing bool         `yaml:"keep_going"`
	Verbosity int32        `yaml:"verbosity"`
	Log       log.Config   `yaml:"log"`
}

func defaultConfig() config {
	return config{
		Dimension: 3,
		Digits:    geofmt.DefaultMaxSignificantDigits,
		Format:    formatWKT,
	}
}

// loadConfig reads a YAML config file on top of the defaults. Unknown keys
// are an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, errors.Wrapf(err, "reading config %s", path)
	}
	if err := decodeConfig(data, &cfg); err != nil {
		return config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

func decodeConfig(data []byte, cfg *config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty file decodes to io.EOF; keep the defaults.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// applyFlags copies every flag the user set explicitly from flags into cfg.
func (cfg *config) applyFlags(fs *pflag.FlagSet, flags config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "scale":
			cfg.Scale = flags.Scale
		case "dimension":
			cfg.Dimension = flags.Dimension
		case "digits":
			cfg.Digits = flags.Digits
		case "format":
			cfg.Format = flags.Format
		case "srid":
			cfg.SRID = flags.SRID
		case "strict":
			cfg.Strict = flags.Strict
		case "keep-going":
			cfg.KeepGoing = flags.KeepGoing
		case "verbosity":
			cfg.Verbosity = flags.Verbosity
		case "log-format":
			cfg.Log.Format = flags.Log.Format
		case "log-level":
			cfg.Log.Level = flags.Log.Level
		}
	})
}

// newReader builds the WKT reader described by cfg.
func (cfg *config) newReader() (*wkt.Reader, error) {
	pm := geo.Floating()
	if cfg.Scale != 0 {
		var err error
		if pm, err = geo.NewFixed(cfg.Scale); err != nil {
			return nil, err
		}
	}
	return wkt.NewReader(
		wkt.WithFactory(geo.NewFactory(pm)),
		wkt.WithStrictDimensions(cfg.Strict),
	), nil
}

// newWriter builds the WKT writer described by cfg.
func (cfg *config) newWriter() (*wkt.Writer, error) {
	return wkt.NewWriter(
		wkt.WithOutputDimension(cfg.Dimension),
		wkt.WithMaxSignificantDigits(cfg.Digits),
	)
}
