package prediction

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/game"
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/settings"
)

// timeSetter is implemented by clocks whose time the prediction layer can drive.
type timeSetter interface {
	Set(t float32)
}

// SavedMove is a move simulated by the predicting client, kept until the server acknowledges it
// so that it can be replayed after a correction.
type SavedMove struct {
	// Timestamp is the simulation time the move started at.
	Timestamp float32
	DeltaTime float32

	Input        player.InputState
	Acceleration mgl32.Vec3
	Yaw          float32
	flags        player.CompressedFlags

	// Start and End are the movement state before and after the move was simulated.
	Start, End player.MovementSnapshot
}

// Clear resets the move so that it can be reused.
func (m *SavedMove) Clear() {
	*m = SavedMove{}
}

// SetMoveFor captures a new move of dt seconds starting at timestamp. The input must already be
// applied to the movement component and its flags derived, so that the flags captured are the
// ones the move is simulated with.
func (m *SavedMove) SetMoveFor(p *player.Player, timestamp, dt float32, input player.InputState) {
	mc := p.Movement()
	m.Timestamp = timestamp
	m.DeltaTime = dt
	m.Input = input
	m.Acceleration = mc.Acceleration()
	m.Yaw = mc.Yaw()
	m.flags = mc.CompressedFlags()
	m.Start = mc.Snapshot()
}

// PostUpdate captures the state the move ended in.
func (m *SavedMove) PostUpdate(p *player.Player) {
	m.End = p.Movement().Snapshot()
}

// CompressedFlags returns the flag byte of the move.
func (m *SavedMove) CompressedFlags() player.CompressedFlags {
	return m.flags
}

// PrepMoveFor writes the input and flags of the move back onto the player, and sets its clock to
// the start of the move, before the move is simulated again.
func (m *SavedMove) PrepMoveFor(p *player.Player) {
	mc := p.Movement()
	p.SetInput(m.Input)
	mc.UpdateFromCompressedFlags(m.flags)
	mc.SetSprinting(m.Input.Sprint)
	mc.SetAcceleration(m.Acceleration)
	mc.SetYaw(m.Yaw)
	if clock, ok := p.Clock().(timeSetter); ok {
		clock.Set(m.Timestamp)
	}
}

// CanCombineWith returns true if next, the move following m, can be sent and simulated together
// with m as a single move.
func (m *SavedMove) CanCombineWith(next *SavedMove, s settings.Network) bool {
	if !s.CombineMoves {
		return false
	}
	// The custom flags carry the sprint intent and the wall-run permission, so a move changing
	// either is never merged into another.
	if m.flags != next.flags {
		return false
	}
	if m.flags.Has(player.FlagJumpPressed) {
		return false
	}
	if m.Start.Mode != next.Start.Mode || m.Start.CustomMode != next.Start.CustomMode {
		return false
	}
	if m.End.Mode != next.Start.Mode || m.End.CustomMode != next.Start.CustomMode {
		return false
	}
	if m.DeltaTime+next.DeltaTime > s.MaxMoveDeltaTime {
		return false
	}
	if m.Yaw != next.Yaw || m.Input.Sprint != next.Input.Sprint {
		return false
	}
	return accelerationsCompatible(m.Acceleration, next.Acceleration, s.AccelDotThreshold)
}

// CombineWith merges prev, the move preceding m, into m. The combined move starts where prev did
// and lasts for both of their durations.
func (m *SavedMove) CombineWith(prev *SavedMove) {
	m.Timestamp = prev.Timestamp
	m.DeltaTime += prev.DeltaTime
	m.Start = prev.Start
}

// accelerationsCompatible returns true if both accelerations are zero, or if they point in
// nearly the same direction with nearly the same magnitude.
func accelerationsCompatible(a, b mgl32.Vec3, dotThreshold float32) bool {
	aZero, bZero := a.LenSqr() < game.SmallNumber, b.LenSqr() < game.SmallNumber
	if aZero || bZero {
		return aZero == bZero
	}
	if math32.Abs(a.Len()-b.Len()) > game.KindaSmallNumber*a.Len() {
		return false
	}
	return a.Normalize().Dot(b.Normalize()) > dotThreshold
}

// packet returns the server move packet describing the move.
func (m *SavedMove) packet() *ServerMovePacket {
	return &ServerMovePacket{
		Timestamp:        m.Timestamp,
		DeltaTime:        m.DeltaTime,
		Acceleration:     m.Acceleration,
		Yaw:              m.Yaw,
		Flags:            m.flags,
		ClientPos:        m.End.Pos,
		ClientMode:       m.End.Mode,
		ClientCustomMode: m.End.CustomMode,
		Checksum:         Checksum(m.End),
	}
}
