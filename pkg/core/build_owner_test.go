package core

import "testing"

type depthRecorder struct {
	StatelessElement
	order *[]int
}

func (d *depthRecorder) RebuildIfNeeded() {
	*d.order = append(*d.order, d.depth)
}

func TestBuildOwner_FlushBuildShallowestFirst(t *testing.T) {
	owner := NewBuildOwner()
	var order []int
	for _, depth := range []int{3, 1, 2} {
		el := &depthRecorder{order: &order}
		el.depth = depth
		el.mounted = true
		owner.ScheduleBuild(el)
	}

	owner.FlushBuild()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("rebuild order = %v, want [1 2 3]", order)
	}
	if owner.NeedsWork() {
		t.Error("owner should be idle after FlushBuild")
	}
}

func TestBuildOwner_SkipsUnmounted(t *testing.T) {
	owner := NewBuildOwner()
	var order []int
	el := &depthRecorder{order: &order}
	owner.ScheduleBuild(el)

	owner.FlushBuild()

	if len(order) != 0 {
		t.Errorf("unmounted element was rebuilt: %v", order)
	}
}

func TestBuildOwner_OnNeedsFrameOncePerElement(t *testing.T) {
	owner := NewBuildOwner()
	frames := 0
	owner.OnNeedsFrame = func() { frames++ }

	el := &depthRecorder{order: new([]int)}
	owner.ScheduleBuild(el)
	owner.ScheduleBuild(el)

	if frames != 1 {
		t.Errorf("OnNeedsFrame calls = %d, want 1", frames)
	}
	if !owner.NeedsWork() {
		t.Error("owner should report pending work")
	}
}
