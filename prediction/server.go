package prediction

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/player/simulation"
	"github.com/oomph-ac/wallrun/utils"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// ServerData is the authoritative movement state of a player on the server. Every client move is
// simulated again and its result checked against the one the client reported.
type ServerData struct {
	mPlayer *player.Player

	lastTimestamp float32
	receivedMove  bool
	corrections   int
}

// NewServerData creates the authoritative prediction state of the player.
func NewServerData(p *player.Player) *ServerData {
	return &ServerData{mPlayer: p}
}

// Corrections returns the amount of adjustments sent to the client so far.
func (s *ServerData) Corrections() int {
	return s.corrections
}

// ProcessMove simulates a client move and returns the packet to answer it with: a MoveAckPacket
// if the client's result matches the server's, or a ClientAdjustmentPacket otherwise. Stale or
// invalid moves are dropped and nil is returned.
func (s *ServerData) ProcessMove(pk *ServerMovePacket) packet.Packet {
	p := s.mPlayer
	cfg := p.Settings()

	if s.receivedMove && pk.Timestamp <= s.lastTimestamp {
		p.Dbg.Notify(player.DebugModePrediction, true, "dropping stale move t=%v (last t=%v)", pk.Timestamp, s.lastTimestamp)
		return nil
	}
	if math32.IsNaN(pk.DeltaTime) || math32.IsNaN(pk.Timestamp) || pk.DeltaTime <= 0 {
		p.Log().Warnf("%s sent a move with an invalid time (t=%v dt=%v)", p.Name(), pk.Timestamp, pk.DeltaTime)
		return nil
	}
	s.lastTimestamp, s.receivedMove = pk.Timestamp, true
	dt := min(pk.DeltaTime, cfg.Network.MaxMoveDeltaTime)

	mc := p.Movement()
	mc.UpdateFromCompressedFlags(pk.Flags)
	mc.SetAcceleration(pk.Acceleration)
	mc.SetYaw(pk.Yaw)
	if clock, ok := p.Clock().(timeSetter); ok {
		clock.Set(pk.Timestamp)
	}
	simulation.PerformMovement(p, dt)

	end := mc.Snapshot()
	posErr := end.Pos.Sub(pk.ClientPos).LenSqr()
	modeMismatch := end.Mode != pk.ClientMode || end.CustomMode != pk.ClientCustomMode
	if posErr <= cfg.Network.MaxPositionErrorSquared && !modeMismatch {
		return &MoveAckPacket{Timestamp: pk.Timestamp}
	}

	s.corrections++
	diagnostics := orderedmap.NewOrderedMap[string, any]()
	diagnostics.Set("t", pk.Timestamp)
	diagnostics.Set("dt", dt)
	diagnostics.Set("pos_err", fmt.Sprintf("%.4f", math32.Sqrt(posErr)))
	diagnostics.Set("client_pos", pk.ClientPos)
	diagnostics.Set("server_pos", end.Pos)
	diagnostics.Set("client_mode", fmt.Sprintf("%v/%v", pk.ClientMode, pk.ClientCustomMode))
	diagnostics.Set("server_mode", fmt.Sprintf("%v/%v", end.Mode, end.CustomMode))
	diagnostics.Set("checksum_match", Checksum(end) == pk.Checksum)
	p.Log().Warnf("%s movement corrected %s", p.Name(), utils.OrderedMapToString(diagnostics))

	return &ClientAdjustmentPacket{Timestamp: pk.Timestamp, State: end}
}
