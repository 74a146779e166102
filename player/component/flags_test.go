package component

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/player"
)

func TestCompressedFlagsRoundTrip(t *testing.T) {
	_, mc := newTestPlayer(player.RoleAutonomousProxy, true, nil)
	_, remote := newTestPlayer(player.RoleAuthority, false, nil)

	for _, sprint := range []bool{false, true} {
		for _, wallRun := range []bool{false, true} {
			mc.wantsToSprint, mc.canWallRun = sprint, wallRun
			mc.SetPressedJump(wallRun)

			flags := mc.CompressedFlags()
			remote.UpdateFromCompressedFlags(flags)
			if remote.WantsToSprint() != sprint || remote.CanWallRun() != wallRun {
				t.Fatalf("flags %08b decoded to sprint=%v wallRun=%v, expected %v %v",
					flags, remote.WantsToSprint(), remote.CanWallRun(), sprint, wallRun)
			}
			if remote.PressedJump() != wallRun {
				t.Fatalf("expected engine jump bit to survive the round trip")
			}
			if flags&(player.FlagReserved1|player.FlagReserved2) != 0 {
				t.Fatalf("reserved bits must stay clear, got %08b", flags)
			}
		}
	}
}

func TestUpdateDerivedFlagsOnlyOnLocalInstance(t *testing.T) {
	remotePlayer, remote := newTestPlayer(player.RoleAuthority, false, nil)
	remotePlayer.SetInput(player.InputState{Sprint: true})
	remote.SetSprinting(true)
	remote.SetVel(mgl32.Vec3{400, 0, 0})
	remote.UpdateFromCompressedFlags(0)

	remote.UpdateDerivedFlags()
	if remote.CanWallRun() || remote.WantsToSprint() {
		t.Fatalf("expected remote instance to keep its restored flags")
	}
}

func TestWantsToSprintRequiresForwardIntent(t *testing.T) {
	p, mc := newTestPlayer(player.RoleAutonomousProxy, true, nil)
	p.SetInput(player.InputState{Sprint: true})
	mc.SetSprinting(true)

	mc.SetVel(mgl32.Vec3{400, 0, 0})
	mc.UpdateDerivedFlags()
	if !mc.WantsToSprint() || !mc.CanWallRun() {
		t.Fatalf("expected forward sprint to set both flags, got sprint=%v wallRun=%v", mc.WantsToSprint(), mc.CanWallRun())
	}

	mc.SetVel(mgl32.Vec3{-400, 0, 0})
	mc.UpdateDerivedFlags()
	if mc.WantsToSprint() {
		t.Fatalf("expected backwards movement to not count as sprinting")
	}
	if !mc.CanWallRun() {
		t.Fatalf("expected canWallRun to only depend on the keys and speed")
	}

	p.SetInput(player.InputState{})
	mc.UpdateDerivedFlags()
	if mc.CanWallRun() {
		t.Fatalf("expected canWallRun to clear once sprint is released")
	}
}

func TestSnapshotRestore(t *testing.T) {
	_, mc := newTestPlayer(player.RoleAutonomousProxy, true, nil)
	mc.SetPos(mgl32.Vec3{1, 2, 3})
	mc.SetVel(mgl32.Vec3{800, 0, 0})
	mc.UpdateFromCompressedFlags(player.FlagCanWallRun | player.FlagWantsToSprint)
	mc.wallRun.Direction, mc.wallRun.Side = mgl32.Vec3{1, 0, 0}, player.WallRunSideRight
	mc.StartWallRun()
	snapshot := mc.Snapshot()

	mc.EndWallRun()
	mc.SetPos(mgl32.Vec3{})
	mc.UpdateFromCompressedFlags(0)

	mc.Restore(snapshot)
	if mc.Snapshot() != snapshot {
		t.Fatalf("expected restore to reproduce the snapshot, got %+v", mc.Snapshot())
	}
	if ctx, ok := mc.WallRun(); !ok || ctx.Side != player.WallRunSideRight {
		t.Fatalf("expected restored wall run context, got %+v (ok=%v)", ctx, ok)
	}
}
