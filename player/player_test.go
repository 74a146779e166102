package player

import (
	"sync"
	"testing"

	"github.com/oomph-ac/wallrun/world"
)

type countingHandler struct {
	calls  int
	result bool
}

func (h *countingHandler) OnActorHit(world.HitResult) bool {
	h.calls++
	return h.result
}

func TestHitNotifierSubscription(t *testing.T) {
	n := &HitNotifier{}
	h := &countingHandler{result: true}

	n.Subscribe(h)
	n.Subscribe(h)
	if !n.Publish(world.HitResult{}) {
		t.Fatalf("expected publish to report the hit as handled")
	}
	if h.calls != 1 {
		t.Fatalf("expected a double subscription to deliver once, got %d calls", h.calls)
	}

	n.Unsubscribe(h)
	if n.Subscribed(h) {
		t.Fatalf("expected handler to be unsubscribed")
	}
	if n.Publish(world.HitResult{}) || h.calls != 1 {
		t.Fatalf("expected no delivery after unsubscribing, got %d calls", h.calls)
	}
}

func TestHitNotifierConcurrentSubscription(t *testing.T) {
	n := &HitNotifier{}
	handlers := make([]*countingHandler, 16)
	for i := range handlers {
		handlers[i] = &countingHandler{}
	}

	var wg sync.WaitGroup
	for _, h := range handlers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.Subscribe(h)
			if !n.Subscribed(h) {
				t.Errorf("expected handler to be subscribed")
			}
			n.Unsubscribe(h)
		}()
	}
	wg.Wait()

	for _, h := range handlers {
		if n.Subscribed(h) {
			t.Fatalf("expected every handler to be unsubscribed")
		}
	}
}

func TestControllerDependsOnLocalControl(t *testing.T) {
	local := New(Opts{Role: RoleAutonomousProxy, LocallyControlled: true})
	local.SetInput(InputState{Sprint: true})
	if c := local.Controller(); c == nil || !c.IsActionHeld(ActionSprint) {
		t.Fatalf("expected local controller to report held sprint")
	}

	remote := New(Opts{Role: RoleAuthority})
	remote.SetInput(InputState{Sprint: true})
	if c := remote.Controller(); c != nil {
		t.Fatalf("expected no controller on a remote instance, got %v", c)
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(1.5)
	if now := c.Advance(0.25); now != 1.75 || c.Now() != 1.75 {
		t.Fatalf("expected clock at 1.75, got %v", c.Now())
	}
	c.Set(3)
	if c.Now() != 3 {
		t.Fatalf("expected clock at 3, got %v", c.Now())
	}
}

func TestCompressedFlagsHas(t *testing.T) {
	flags := FlagJumpPressed | FlagCanWallRun
	if !flags.Has(FlagCanWallRun) || flags.Has(FlagWantsToSprint) {
		t.Fatalf("unexpected flag membership for %08b", flags)
	}
	if FlagWantsToSprint != 0x10 || FlagCanWallRun != 0x20 {
		t.Fatalf("custom flag bits moved: sprint=%#x wallrun=%#x", FlagWantsToSprint, FlagCanWallRun)
	}
}

func TestInputAccelerationDirection(t *testing.T) {
	in := InputState{MoveVector: [2]float32{1, 1}, Yaw: 0}
	dir := in.AccelerationDirection()
	if l := dir.Len(); l < 0.999 || l > 1.001 {
		t.Fatalf("expected diagonal input to be normalized, got length %v", l)
	}
	if dir.X() <= 0 || dir.Y() <= 0 {
		t.Fatalf("expected forward-right direction, got %v", dir)
	}
}

type heldActions map[string]bool

func (h heldActions) IsActionHeld(action string) bool {
	return h[action]
}

func TestSetControllerOverridesInput(t *testing.T) {
	p := New(Opts{Role: RoleAutonomousProxy, LocallyControlled: true})
	p.SetInput(InputState{})
	p.SetController(heldActions{ActionSprint: true})
	if !p.Controller().IsActionHeld(ActionSprint) {
		t.Fatalf("expected the custom controller to be used")
	}
	if p.Controller().IsActionHeld(ActionJump) {
		t.Fatalf("expected jump to not be held")
	}
}

func TestDebuggerModes(t *testing.T) {
	p := New(Opts{})
	if p.Dbg.Enabled(DebugModeWallRun) {
		t.Fatalf("expected debug modes to start disabled")
	}
	p.Dbg.Toggle(DebugModeWallRun)
	if !p.Dbg.Enabled(DebugModeWallRun) || p.Dbg.Enabled(DebugModePrediction) {
		t.Fatalf("expected only the toggled mode to be enabled")
	}
	p.Dbg.Toggle(DebugModeWallRun)
	if p.Dbg.Enabled(DebugModeWallRun) {
		t.Fatalf("expected a second toggle to disable the mode")
	}
}
