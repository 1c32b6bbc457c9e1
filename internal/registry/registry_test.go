package registry

import (
	"testing"

	"github.com/vovakirdan/island-of-structure/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zeta", func() Game { return stubGame{"zeta"} })
	Register("alpha", func() Game { return stubGame{"alpha"} })

	list := List()
	if len(list) < 2 {
		t.Fatalf("List() = %+v", list)
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %+v", list)
		}
	}

	if !Exists("alpha") || Exists("missing") {
		t.Error("Exists() disagrees with registrations")
	}

	g, err := Create("zeta")
	if err != nil || g.Title() != "Stub zeta" {
		t.Errorf("Create(zeta) = %v, %v", g, err)
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Game { return stubGame{"dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("dup", func() Game { return stubGame{"dup"} })
}
