// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggterm

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggterm/grid"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	b, _, _ := newTestBackend(t, 4, 2)
	_ = b.SetCell(Position{X: 1, Y: 1}, grid.NewCell("z", grid.Style{}))
	if err := b.Flush(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, msg := range []string{"grid: created", "ggterm: backend created", "grid: present"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("SetLogger(nil) did not restore silent logging")
	}
}

func TestSetLoggerPropagatesToGG(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(l)
	if gg.Logger() != l {
		t.Error("gg.Logger() did not receive the logger")
	}

	SetLogger(nil)
	if gg.Logger().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("SetLogger(nil) left gg logging enabled")
	}
}
