// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := SetLogger(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestContextTags(t *testing.T) {
	logs := observe(t)
	ctx := logtags.AddTag(context.Background(), "file", "in.wkt")
	ctx = logtags.AddTag(ctx, "line", 3)
	ctx = logtags.AddTag(ctx, "strict", nil)

	Infof(ctx, "read %d geometries", 2)
	Warningf(context.Background(), "no tags")
	Errorf(ctx, "")

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, "[file=in.wkt,line=3,strict] read 2 geometries", entries[0].Message)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "no tags", entries[1].Message)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestVerbosity(t *testing.T) {
	logs := observe(t)
	defer SetVerbosity(0)

	ctx := context.Background()
	VEventf(ctx, 1, "hidden")
	require.Equal(t, 0, logs.Len())

	SetVerbosity(1)
	require.True(t, V(1))
	require.False(t, V(2))
	VEventf(ctx, 1, "shown")
	VEventf(ctx, 2, "hidden")
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "shown", logs.All()[0].Message)
}

func TestEveryN(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e := Every(time.Minute)
	testCases := []struct {
		offset   time.Duration
		expected bool
	}{
		{0, true},
		{time.Second, false},
		{time.Minute - 1, false},
		{time.Minute, true},
		{time.Minute + time.Second, false},
		{3 * time.Minute, true},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, e.shouldLog(start.Add(tc.offset)), "offset %s", tc.offset)
	}

	SetVerbosity(2)
	defer SetVerbosity(0)
	require.True(t, e.shouldLog(start.Add(3*time.Minute)))
}

func TestFatalfUsesExitFunc(t *testing.T) {
	logs := observe(t)
	var code int
	SetExitFunc(func(c int) { code = c })
	defer ResetExitFunc()

	Fatalf(context.Background(), "giving up on %s", "input")
	require.Equal(t, 1, code)
	require.Equal(t, "giving up on input", logs.All()[0].Message)
}

func TestInit(t *testing.T) {
	defer SetLogger(getLogger())()
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Format: "json", Level: "warning"}, &buf))

	ctx := logtags.AddTag(context.Background(), "n", 1)
	Infof(ctx, "dropped")
	Warningf(ctx, "kept")
	Sync()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "[n=1] kept", entry["msg"])
	require.Equal(t, "warn", entry["level"])
	require.Contains(t, entry["caller"], "log_test.go")

	require.Error(t, Init(Config{Format: "xml"}, &buf))
	require.Error(t, Init(Config{Level: "debug"}, &buf))
}
