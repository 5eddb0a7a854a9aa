package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/brickfall/internal/games/breakout"
)

func TestRunPlayRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "paddle: [\n", "failed to parse"},
		{"invalid values", "paddle:\n  width: -5\n", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "breakout.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			breakout.SetConfigPath(path)
			t.Cleanup(func() { breakout.SetConfigPath("") })

			err := runPlay(nil, nil)
			if err == nil {
				t.Fatal("runPlay should fail before starting the game")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestRunPlayMissingConfig(t *testing.T) {
	breakout.SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { breakout.SetConfigPath("") })

	if err := runPlay(nil, nil); err == nil {
		t.Fatal("runPlay should fail for a missing --config file")
	}
}
