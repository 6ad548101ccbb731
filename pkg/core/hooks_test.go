package core

import "testing"

type mockDisposable struct {
	disposed bool
}

func (m *mockDisposable) Dispose() {
	m.disposed = true
}

func TestUseController(t *testing.T) {
	base := &StateBase{}

	controller := UseController(base, func() *mockDisposable {
		return &mockDisposable{}
	})

	if controller.disposed {
		t.Error("Controller should not be disposed initially")
	}

	base.Dispose()

	if !controller.disposed {
		t.Error("Controller should be disposed when StateBase is disposed")
	}
}

func TestUseController_WithInstanceFunc(t *testing.T) {
	created := 0
	var controller *mockDisposable
	host := mountHook(t, func(s *StateBase) {
		controller = UseInstanceFunc(s, func() *mockDisposable {
			created++
			return UseController(s, func() *mockDisposable { return &mockDisposable{} })
		})
	})
	host.rebuild()
	host.rebuild()

	if created != 1 {
		t.Errorf("controllers created = %d, want 1", created)
	}

	host.element.Unmount()

	if !controller.disposed {
		t.Error("controller should be disposed with the element")
	}
}

func TestManaged_Value(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 42)

	if state.Value() != 42 {
		t.Errorf("Expected 42, got %d", state.Value())
	}
}

func TestManaged_Set(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 0)

	state.Set(100)

	if state.Value() != 100 {
		t.Errorf("Expected 100, got %d", state.Value())
	}
}

func TestManaged_Update(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 10)

	state.Update(func(v int) int { return v * 2 })

	if state.Value() != 20 {
		t.Errorf("Expected 20, got %d", state.Value())
	}
}

func TestManaged_SetSchedulesBuild(t *testing.T) {
	var managed *Managed[int]
	host := mountHook(t, func(s *StateBase) {
		managed = UseInstanceFunc(s, func() *Managed[int] {
			return NewManaged(s, 0)
		})
	})

	managed.Set(1)

	if !host.owner.NeedsWork() {
		t.Fatal("Managed.Set should schedule a build")
	}
	host.owner.FlushBuild()
	if host.builds != 2 {
		t.Errorf("builds = %d, want 2", host.builds)
	}
	if managed.Value() != 1 {
		t.Errorf("Value = %d, want 1", managed.Value())
	}
}
