package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "shot.png")
	var stderr bytes.Buffer

	if err := run([]string{"-cols", "40", "-rows", "20", "-output", out, "-verbose"}, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 || cfg.Width%40 != 0 || cfg.Height%20 != 0 {
		t.Errorf("image size = %dx%d, want a multiple of 40x20 cells", cfg.Width, cfg.Height)
	}
	if !strings.Contains(stderr.String(), "grid: present") {
		t.Errorf("verbose output missing present log:\n%s", stderr.String())
	}
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "ggterm.yaml")
	if err := os.WriteFile(cfgPath, []byte("grid: {cols: 30, rows: 18}\ncursor: {style: underline}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "shot.png")
	if err := run([]string{"-config", cfgPath, "-output", out}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}

	if err := run([]string{"-config", filepath.Join(dir, "missing.yaml")}, &bytes.Buffer{}); err == nil {
		t.Error("run() with missing config error = nil")
	}
	if err := run([]string{"-bogus"}, &bytes.Buffer{}); err == nil {
		t.Error("run() with unknown flag error = nil")
	}
}
