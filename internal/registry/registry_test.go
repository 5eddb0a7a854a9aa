package registry

import (
	"testing"

	"github.com/vovakirdan/brickfall/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{Level: 1} }

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	tests := []struct {
		id      string
		exists  bool
		wantErr bool
	}{
		{"stub_a", true, false},
		{"missing", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Exists(tt.id); got != tt.exists {
				t.Errorf("Exists(%q) = %v, want %v", tt.id, got, tt.exists)
			}
			g, err := Create(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err == nil && g.ID() != tt.id {
				t.Errorf("ID = %q, want %q", g.ID(), tt.id)
			}
		})
	}
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	Register("stub_fresh", func() Game { return &stubGame{id: "stub_fresh"} })

	first, err := Create("stub_fresh")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	first.Step(core.NewInputFrame())

	second, err := Create("stub_fresh")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if second.(*stubGame).steps != 0 {
		t.Error("second instance shares state with the first")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
