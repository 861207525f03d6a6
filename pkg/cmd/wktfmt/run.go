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
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/wktcodec/pkg/geo"
	"github.com/cockroachdb/wktcodec/pkg/geo/geoencode"
	"github.com/cockroachdb/wktcodec/pkg/geo/wkt"
	"github.com/cockroachdb/wktcodec/pkg/util/log"
)

type input struct {
	name string
	r    io.Reader
}

// errMalformedInput marks the error returned when --keep-going skipped lines.
var errMalformedInput = errors.New("malformed input")

// converter turns one input line into one output line.
type converter struct {
	cfg    config
	reader *wkt.Reader
	writer *wkt.Writer
}

func newConverter(cfg config) (*converter, error) {
	reader, err := cfg.newReader()
	if err != nil {
		return nil, err
	}
	writer, err := cfg.newWriter()
	if err != nil {
		return nil, err
	}
	return &converter{cfg: cfg, reader: reader, writer: writer}, nil
}

func (c *converter) convert(line string) (string, error) {
	g, srid, err := geoencode.ParseAmbiguousText(c.reader, line, geoencode.SRID(c.cfg.SRID))
	if err != nil {
		return "", err
	}
	return c.format(g, srid)
}

func (c *converter) format(g geo.Geometry, srid geoencode.SRID) (string, error) {
	switch c.cfg.Format {
	case formatWKT:
		return c.writer.Write(g)
	case formatEWKT:
		s, err := c.writer.Write(g)
		if err != nil || srid == 0 {
			return s, err
		}
		return fmt.Sprintf("SRID=%d;%s", srid, s), nil
	case formatWKBHex:
		return geoencode.ToWKBHex(g)
	case formatEWKBHex:
		return geoencode.ToEWKBHex(g, srid)
	case formatGeoJSON:
		b, err := geoencode.ToGeoJSON(
			g, srid, geoencode.DefaultGeoJSONDecimalDigits, geoencode.GeoJSONFlagShortCRSIfNot4326,
		)
		return string(b), err
	case formatKML:
		return geoencode.ToKML(g)
	case formatGeoHash:
		return geoencode.ToGeoHash(g, geoencode.GeoHashAutoPrecision)
	default:
		return "", errors.AssertionFailedf("unhandled output format %q", c.cfg.Format)
	}
}

// run converts every line of every input and writes the results to out, one
// per line. The first malformed line stops the run unless cfg.KeepGoing is
// set, in which case all malformed lines are logged and a single error
// counting them is returned at the end.
func run(ctx context.Context, cfg config, inputs []input, out io.Writer) error {
	c, err := newConverter(cfg)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	progress := log.Every(10 * time.Second)
	var converted, failed int
	for _, in := range inputs {
		fileCtx := logtags.AddTag(ctx, "file", in.name)
		scanner := bufio.NewScanner(in.r)
		scanner.Buffer(nil, 64<<20)
		for lineNo := 1; scanner.Scan(); lineNo++ {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			lineCtx := logtags.AddTag(fileCtx, "line", lineNo)
			res, err := c.convert(line)
			if err != nil {
				if !cfg.KeepGoing {
					_ = bw.Flush()
					return errors.Wrapf(err, "%s:%d", in.name, lineNo)
				}
				log.Errorf(lineCtx, "%v", err)
				failed++
				continue
			}
			log.VEventf(lineCtx, 2, "converted %d bytes to %d bytes", len(line), len(res))
			if _, err := bw.WriteString(res); err != nil {
				return errors.Wrap(err, "writing output")
			}
			if err := bw.WriteByte('\n'); err != nil {
				return errors.Wrap(err, "writing output")
			}
			converted++
			if progress.ShouldLog() {
				log.Infof(fileCtx, "converted %d geometries so far", converted)
			}
		}
		if err := scanner.Err(); err != nil {
			_ = bw.Flush()
			return errors.Wrapf(err, "reading %s", in.name)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "writing output")
	}
	log.VEventf(ctx, 1, "converted %d geometries, %d malformed", converted, failed)
	if failed > 0 {
		return errors.Wrapf(errMalformedInput, "%d of %d geometries could not be converted",
			failed, converted+failed)
	}
	return nil
}
