package player

import "github.com/oomph-ac/wallrun/utils"

// CompressedFlags is the per-move flag byte replicated from the client to the server.
type CompressedFlags uint8

const (
	FlagJumpPressed   CompressedFlags = 0x01
	FlagWantsToCrouch CompressedFlags = 0x02
	FlagReserved1     CompressedFlags = 0x04
	FlagReserved2     CompressedFlags = 0x08
	FlagCustom0       CompressedFlags = 0x10
	FlagCustom1       CompressedFlags = 0x20
	FlagCustom2       CompressedFlags = 0x40
	FlagCustom3       CompressedFlags = 0x80

	// FlagWantsToSprint carries the sprint intent of the move.
	FlagWantsToSprint = FlagCustom0
	// FlagCanWallRun carries whether the move may start or sustain a wall run.
	FlagCanWallRun = FlagCustom1
)

// Has returns true if every bit of flag is set.
func (f CompressedFlags) Has(flag CompressedFlags) bool {
	return utils.HasFlag(f, flag)
}
