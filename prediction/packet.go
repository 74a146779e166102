package prediction

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/player"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

const (
	IDServerMove uint32 = iota + 1
	IDClientAdjustment
	IDMoveAck
)

// packetPool holds a constructor for every packet exchanged by the prediction layer.
var packetPool = map[uint32]func() packet.Packet{
	IDServerMove:       func() packet.Packet { return &ServerMovePacket{} },
	IDClientAdjustment: func() packet.Packet { return &ClientAdjustmentPacket{} },
	IDMoveAck:          func() packet.Packet { return &MoveAckPacket{} },
}

// ServerMovePacket is sent by the predicting client for every move, or combination of moves, it
// simulated. It carries everything the server needs to re-simulate the move and the end state the
// client reached, which the server validates against.
type ServerMovePacket struct {
	// Timestamp is the simulation time the move started at.
	Timestamp float32
	DeltaTime float32

	Acceleration mgl32.Vec3
	Yaw          float32
	Flags        player.CompressedFlags

	ClientPos        mgl32.Vec3
	ClientMode       player.MovementMode
	ClientCustomMode player.CustomMode
	// Checksum is the checksum of the replicated part of the client's end state.
	Checksum uint64
}

// ID ...
func (*ServerMovePacket) ID() uint32 {
	return IDServerMove
}

func (pk *ServerMovePacket) Marshal(io protocol.IO) {
	io.Float32(&pk.Timestamp)
	io.Float32(&pk.DeltaTime)
	io.Vec3(&pk.Acceleration)
	io.Float32(&pk.Yaw)
	io.Uint8((*uint8)(&pk.Flags))
	io.Vec3(&pk.ClientPos)
	io.Uint8((*uint8)(&pk.ClientMode))
	io.Uint8((*uint8)(&pk.ClientCustomMode))
	io.Uint64(&pk.Checksum)
}

// ClientAdjustmentPacket is sent by the server when the end state of a client move diverged from
// its own. The client rewinds to State and replays every move after Timestamp.
type ClientAdjustmentPacket struct {
	Timestamp float32
	State     player.MovementSnapshot
}

// ID ...
func (*ClientAdjustmentPacket) ID() uint32 {
	return IDClientAdjustment
}

func (pk *ClientAdjustmentPacket) Marshal(io protocol.IO) {
	io.Float32(&pk.Timestamp)
	marshalSnapshot(io, &pk.State)
}

// MoveAckPacket is sent by the server to acknowledge every client move up to Timestamp.
type MoveAckPacket struct {
	Timestamp float32
}

// ID ...
func (*MoveAckPacket) ID() uint32 {
	return IDMoveAck
}

func (pk *MoveAckPacket) Marshal(io protocol.IO) {
	io.Float32(&pk.Timestamp)
}

// marshalSnapshot reads or writes a full movement snapshot.
func marshalSnapshot(io protocol.IO, s *player.MovementSnapshot) {
	io.Vec3(&s.Pos)
	io.Vec3(&s.Vel)
	io.Float32(&s.Yaw)
	io.Uint8((*uint8)(&s.Mode))
	io.Uint8((*uint8)(&s.CustomMode))
	marshalWallRun(io, &s.WallRun)
	io.Vec3(&s.Acceleration)

	io.Bool(&s.PressedJump)
	jumpCount := int32(s.JumpCount)
	io.Varint32(&jumpCount)
	s.JumpCount = int(jumpCount)

	io.Bool(&s.WantsToCrouch)
	io.Bool(&s.Crouching)
	io.Bool(&s.Sprinting)
	io.Bool(&s.WantsToSprint)
	io.Bool(&s.CanWallRun)
}

func marshalWallRun(io protocol.IO, ctx *player.WallRunContext) {
	io.Vec3(&ctx.Direction)
	io.Uint8((*uint8)(&ctx.Side))
	io.Float32(&ctx.ActivationTime)
}
