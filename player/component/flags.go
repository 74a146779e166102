package component

import (
	"github.com/oomph-ac/wallrun/game"
	"github.com/oomph-ac/wallrun/player"
)

// UpdateDerivedFlags recomputes wantsToSprint and canWallRun from the local input and the current
// velocity. Only the locally controlled instance derives the flags; every other instance (and
// every replayed move) restores them with UpdateFromCompressedFlags instead.
func (mc *WallRunMovementComponent) UpdateDerivedFlags() {
	if !mc.mPlayer.IsLocallyControlled() {
		return
	}

	s := mc.mPlayer.Settings().Movement
	velDir := game.SafeNormalize(game.Horizontal(mc.vel))
	facing := game.ForwardVector(mc.yaw)
	mc.wantsToSprint = mc.sprinting && velDir.Dot(facing) > s.SprintIntentDot
	mc.canWallRun = mc.AreWallRunKeysDown() && mc.HasRequiredSpeed()
}

// CompressedFlags returns the flag byte describing the current move.
func (mc *WallRunMovementComponent) CompressedFlags() player.CompressedFlags {
	var flags player.CompressedFlags
	if mc.pressedJump {
		flags |= player.FlagJumpPressed
	}
	if mc.wantsToCrouch {
		flags |= player.FlagWantsToCrouch
	}
	if mc.wantsToSprint {
		flags |= player.FlagWantsToSprint
	}
	if mc.canWallRun {
		flags |= player.FlagCanWallRun
	}
	return flags
}

// UpdateFromCompressedFlags restores the flags of a move from its flag byte. It is the inverse of
// CompressedFlags.
func (mc *WallRunMovementComponent) UpdateFromCompressedFlags(flags player.CompressedFlags) {
	mc.pressedJump = flags.Has(player.FlagJumpPressed)
	mc.wantsToCrouch = flags.Has(player.FlagWantsToCrouch)
	mc.wantsToSprint = flags.Has(player.FlagWantsToSprint)
	mc.canWallRun = flags.Has(player.FlagCanWallRun)
}
