package registry

import (
	"errors"
	"testing"

	"github.com/samdwyer/ghostlygrid/internal/config"
	"github.com/samdwyer/ghostlygrid/internal/grid"
	"github.com/samdwyer/ghostlygrid/internal/render"
)

type stubEnv struct {
	size int
}

func (s *stubEnv) Reset() (grid.Observation, grid.Info, error) {
	return grid.Observation{}, grid.Info{}, nil
}

func (s *stubEnv) Step(grid.Action) (grid.StepResult, error) {
	return grid.StepResult{Info: grid.Info{}}, nil
}

func (s *stubEnv) Observation() (grid.Observation, error) { return grid.Observation{}, nil }
func (s *stubEnv) Render() (*render.Frame, error)         { return nil, nil }
func (s *stubEnv) Close() error                           { return nil }

func stubFactory(cfg config.Env) (Env, error) {
	return &stubEnv{size: cfg.Size}, nil
}

func TestRegisterAndMake(t *testing.T) {
	r := New()
	if err := r.Register(Spec{ID: "stub/StubV0", Factory: stubFactory, MaxEpisodeSteps: 50}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	env, err := r.Make("stub/StubV0", config.Env{Size: 9})
	if err != nil {
		t.Fatalf("Make() error = %v", err)
	}
	stub, ok := env.(*stubEnv)
	if !ok {
		t.Fatalf("Make() returned %T, want *stubEnv", env)
	}
	if stub.size != 9 {
		t.Errorf("factory received size %d, want 9", stub.size)
	}

	spec, ok := r.Lookup("stub/StubV0")
	if !ok || spec.MaxEpisodeSteps != 50 {
		t.Errorf("Lookup() = %+v, %v", spec, ok)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := New()
	spec := Spec{ID: "stub/StubV0", Factory: stubFactory}
	if err := r.Register(spec); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register(spec); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("second Register() error = %v, want ErrDuplicateID", err)
	}
}

func TestRegisterInvalid(t *testing.T) {
	r := New()
	if err := r.Register(Spec{ID: "", Factory: stubFactory}); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("empty id error = %v, want ErrInvalidSpec", err)
	}
	if err := r.Register(Spec{ID: "x"}); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("nil factory error = %v, want ErrInvalidSpec", err)
	}
}

func TestMakeUnknown(t *testing.T) {
	if _, err := New().Make("missing/MissingV0", config.Default()); !errors.Is(err, ErrUnknownID) {
		t.Fatalf("Make() error = %v, want ErrUnknownID", err)
	}
}

func TestMakeFactoryError(t *testing.T) {
	boom := errors.New("boom")
	r := New()
	r.Register(Spec{ID: "bad/BadV0", Factory: func(config.Env) (Env, error) { return nil, boom }})
	if _, err := r.Make("bad/BadV0", config.Default()); !errors.Is(err, boom) {
		t.Fatalf("Make() error = %v, want wrapped %v", err, boom)
	}
}

func TestIDsSorted(t *testing.T) {
	r := New()
	r.Register(Spec{ID: "b/B", Factory: stubFactory})
	r.Register(Spec{ID: "a/A", Factory: stubFactory})
	ids := r.IDs()
	if len(ids) != 2 || ids[0] != "a/A" || ids[1] != "b/B" {
		t.Errorf("IDs() = %v, want [a/A b/B]", ids)
	}
}
