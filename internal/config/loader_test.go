package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseBreakout(DefaultYAML(), "embedded")
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}

	def := DefaultBreakoutConfig()
	if cfg.Ball != def.Ball {
		t.Errorf("ball = %+v, expected %+v", cfg.Ball, def.Ball)
	}
	if cfg.Paddle != def.Paddle {
		t.Errorf("paddle = %+v, expected %+v", cfg.Paddle, def.Paddle)
	}
	if cfg.Canvas != def.Canvas {
		t.Errorf("canvas = %+v, expected %+v", cfg.Canvas, def.Canvas)
	}
	if strings.Join(cfg.Bricks.Types, ",") != "normal,airplane,car" {
		t.Errorf("brick types = %v", cfg.Bricks.Types)
	}
	if cfg.Bricks.HitsToBreak != 3 || cfg.Bricks.SpecialChance != 0.1 {
		t.Errorf("bricks = %+v", cfg.Bricks)
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("paddle:\n  width: 100\nbricks:\n  types: [heart]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg.Paddle.Width != 100 {
		t.Errorf("paddle width = %v, expected 100", cfg.Paddle.Width)
	}
	// Unset keys keep defaults
	if cfg.Paddle.Speed != 10 {
		t.Errorf("paddle speed = %v, expected default 10", cfg.Paddle.Speed)
	}
	if len(cfg.Bricks.Types) != 1 || cfg.Bricks.Types[0] != "heart" {
		t.Errorf("brick types = %v, expected [heart]", cfg.Bricks.Types)
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "ball: [1, 2", "failed to parse"},
		{"negative size", "ball:\n  size: -1\n", "ball.size must be positive"},
		{"unknown brick type", "bricks:\n  types: [normal, rocket]\n", `unknown type "rocket"`},
		{"special chance out of range", "bricks:\n  special_chance: 1.5\n", "special_chance"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadBreakout(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Ball.Size = 0
	cfg.Paddle.Speed = 0
	cfg.Input.ReleaseFrames = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"ball.size", "paddle.speed", "input.release_frames"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Paddle.Width <= DefaultBreakoutConfig().Paddle.Width {
		t.Errorf("easy paddle should be wider, got %v", easy.Paddle.Width)
	}

	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Ball.Speed <= DefaultBreakoutConfig().Ball.Speed {
		t.Errorf("hard ball should be faster, got %v", hard.Ball.Speed)
	}

	normal := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&normal, DifficultyNormal)
	if normal.Paddle != DefaultBreakoutConfig().Paddle || normal.Ball != DefaultBreakoutConfig().Ball {
		t.Error("normal preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(ok); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", ok, err)
		}
	}
	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset(fixed) should fail")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), BreakoutFile)
	if err := os.WriteFile(path, []byte("ball:\n  size: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored
	other := filepath.Join(filepath.Dir(path), "notes.txt")
	if err := os.WriteFile(other, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("ball:\n  size: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != w.Path() {
			t.Errorf("event for %q, expected %q", got, w.Path())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config change event")
	}
}

func TestWatcherReportsFinalWriteOfBurst(t *testing.T) {
	path := filepath.Join(t.TempDir(), BreakoutFile)
	if err := os.WriteFile(path, []byte("ball:\n  size: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// An editor save: truncate, then write the new contents.
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("ball:\n  size: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		cfg, err := LoadBreakout(got)
		if err != nil {
			t.Fatalf("LoadBreakout() after burst failed: %v", err)
		}
		if cfg.Ball.Size != 12 {
			t.Errorf("ball size = %v, expected 12", cfg.Ball.Size)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config change event")
	}

	// The burst is reported once.
	select {
	case got := <-w.Events:
		t.Errorf("unexpected second event for %q", got)
	case <-time.After(3 * debounceWindow):
	}
}
