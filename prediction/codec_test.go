package prediction

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/player"
)

func TestServerMovePacketCodec(t *testing.T) {
	pk := &ServerMovePacket{
		Timestamp:        1.5,
		DeltaTime:        0.05,
		Acceleration:     mgl32.Vec3{2048, 0, 0},
		Yaw:              90,
		Flags:            player.FlagWantsToSprint | player.FlagCanWallRun,
		ClientPos:        mgl32.Vec3{10, -8, 500},
		ClientMode:       player.ModeCustom,
		ClientCustomMode: player.CustomModeWallRunning,
		Checksum:         0xdeadbeefcafe,
	}

	decoded, err := DecodePacket(EncodePacket(pk))
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	move, ok := decoded.(*ServerMovePacket)
	if !ok {
		t.Fatalf("expected *ServerMovePacket, got %T", decoded)
	}
	if *move != *pk {
		t.Fatalf("expected %+v, got %+v", pk, move)
	}
}

func TestClientAdjustmentPacketCodec(t *testing.T) {
	pk := &ClientAdjustmentPacket{
		Timestamp: 2,
		State: player.MovementSnapshot{
			Pos:        mgl32.Vec3{1, 2, 3},
			Vel:        mgl32.Vec3{800, 0, -125},
			Yaw:        45,
			Mode:       player.ModeCustom,
			CustomMode: player.CustomModeWallRunning,
			WallRun: player.WallRunContext{
				Direction:      mgl32.Vec3{1, 0, 0},
				Side:           player.WallRunSideRight,
				ActivationTime: 1.25,
			},
			JumpCount:     1,
			Sprinting:     true,
			WantsToSprint: true,
			CanWallRun:    true,
		},
	}

	decoded, err := DecodePacket(EncodePacket(pk))
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	adj, ok := decoded.(*ClientAdjustmentPacket)
	if !ok {
		t.Fatalf("expected *ClientAdjustmentPacket, got %T", decoded)
	}
	if *adj != *pk {
		t.Fatalf("expected %+v, got %+v", pk, adj)
	}
}

func TestEncodePacketIsNotShared(t *testing.T) {
	first := EncodePacket(&MoveAckPacket{Timestamp: 1})
	_ = EncodePacket(&MoveAckPacket{Timestamp: 2})

	decoded, err := DecodePacket(first)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if ack := decoded.(*MoveAckPacket); ack.Timestamp != 1 {
		t.Fatalf("expected the first encoding to survive later encodes, got t=%v", ack.Timestamp)
	}
}

func TestDecodeUnknownPacket(t *testing.T) {
	b := EncodePacket(&MoveAckPacket{Timestamp: 1})
	b[0] = 0x7f
	if _, err := DecodePacket(b); err == nil {
		t.Fatalf("expected an error for an unknown packet ID")
	}
}

func TestDecodeTruncatedPacket(t *testing.T) {
	b := EncodePacket(&ServerMovePacket{Timestamp: 1, DeltaTime: 0.1})
	if _, err := DecodePacket(b[:3]); err == nil {
		t.Fatalf("expected an error for a truncated packet")
	}
}

func TestChecksumCoversReplicatedState(t *testing.T) {
	base := player.MovementSnapshot{Pos: mgl32.Vec3{1, 2, 3}, Mode: player.ModeFalling}

	local := base
	local.Sprinting = true
	local.Acceleration = mgl32.Vec3{100, 0, 0}
	if Checksum(local) != Checksum(base) {
		t.Fatalf("expected input-only state to not affect the checksum")
	}

	moved := base
	moved.Pos[0] += 0.5
	if Checksum(moved) == Checksum(base) {
		t.Fatalf("expected position to affect the checksum")
	}
}
