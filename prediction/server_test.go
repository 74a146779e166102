package prediction

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/settings"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestServerAcksMatchingMove(t *testing.T) {
	p := newServerPlayer(settings.Default())
	p.Movement().SetPos(mgl32.Vec3{0, 0, 500})
	s := NewServerData(p)

	resp := s.ProcessMove(&ServerMovePacket{
		Timestamp:  0,
		DeltaTime:  0.1,
		ClientPos:  mgl32.Vec3{0, 0, 500 - 9.8},
		ClientMode: player.ModeFalling,
	})
	ack, ok := resp.(*MoveAckPacket)
	if !ok {
		t.Fatalf("expected a move ack, got %T", resp)
	}
	if ack.Timestamp != 0 {
		t.Fatalf("expected the ack to carry the move timestamp, got %v", ack.Timestamp)
	}
}

func TestServerCorrectsDivergedMove(t *testing.T) {
	p := newServerPlayer(settings.Default())
	p.Movement().SetPos(mgl32.Vec3{0, 0, 500})
	hook := test.NewLocal(p.Log())
	s := NewServerData(p)

	resp := s.ProcessMove(&ServerMovePacket{
		Timestamp:  0,
		DeltaTime:  0.1,
		ClientPos:  mgl32.Vec3{50, 0, 500},
		ClientMode: player.ModeFalling,
	})
	adj, ok := resp.(*ClientAdjustmentPacket)
	if !ok {
		t.Fatalf("expected a client adjustment, got %T", resp)
	}
	if adj.State != p.Movement().Snapshot() {
		t.Fatalf("expected the adjustment to carry the authoritative state")
	}
	if s.Corrections() != 1 {
		t.Fatalf("expected one correction, got %d", s.Corrections())
	}

	entry := hook.LastEntry()
	if entry == nil || !strings.Contains(entry.Message, "pos_err=") || !strings.Contains(entry.Message, "checksum_match=false") {
		t.Fatalf("expected correction diagnostics to be logged, got %v", entry)
	}
}

func TestServerCorrectsModeMismatch(t *testing.T) {
	p := newServerPlayer(settings.Default())
	p.Movement().SetPos(mgl32.Vec3{0, 0, 500})
	s := NewServerData(p)

	resp := s.ProcessMove(&ServerMovePacket{
		Timestamp:        0,
		DeltaTime:        0.1,
		ClientPos:        mgl32.Vec3{0, 0, 500 - 9.8},
		ClientMode:       player.ModeCustom,
		ClientCustomMode: player.CustomModeWallRunning,
	})
	if _, ok := resp.(*ClientAdjustmentPacket); !ok {
		t.Fatalf("expected a mode mismatch to be corrected, got %T", resp)
	}
}

func TestServerDropsStaleMoves(t *testing.T) {
	p := newServerPlayer(settings.Default())
	s := NewServerData(p)

	pk := &ServerMovePacket{Timestamp: 1, DeltaTime: 0.05, ClientMode: player.ModeFalling}
	if s.ProcessMove(pk) == nil {
		t.Fatalf("expected the first move to be processed")
	}
	before := p.Movement().Snapshot()
	if resp := s.ProcessMove(pk); resp != nil {
		t.Fatalf("expected a replayed timestamp to be dropped, got %T", resp)
	}
	if p.Movement().Snapshot() != before {
		t.Fatalf("expected a dropped move to not be simulated")
	}
}

func TestServerRejectsInvalidDeltaTime(t *testing.T) {
	s := NewServerData(newServerPlayer(settings.Default()))
	if resp := s.ProcessMove(&ServerMovePacket{Timestamp: 1, DeltaTime: -1}); resp != nil {
		t.Fatalf("expected a negative delta time to be rejected, got %T", resp)
	}
}

// TestClientServerWallRun runs a client and a server side by side through a wall run and checks
// that the server never has to correct the client.
func TestClientServerWallRun(t *testing.T) {
	client := newClientPlayer(settings.Default(), wallBox)
	server := newServerPlayer(settings.Default(), wallBox)
	start := player.MovementSnapshot{
		Pos:  mgl32.Vec3{0, 0, 500},
		Vel:  mgl32.Vec3{300, -100, 0},
		Mode: player.ModeFalling,
	}
	client.Movement().Restore(start)
	server.Movement().Restore(start)

	cd, sd := NewClientData(client), NewServerData(server)
	deliver := func(pks []*ServerMovePacket) {
		for _, pk := range pks {
			decoded, err := DecodePacket(EncodePacket(pk))
			if err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			switch resp := sd.ProcessMove(decoded.(*ServerMovePacket)).(type) {
			case *MoveAckPacket:
				cd.HandleAck(resp.Timestamp)
			case *ClientAdjustmentPacket:
				cd.HandleAdjustment(resp)
			default:
				t.Fatalf("expected a response for move t=%v, got %T", pk.Timestamp, resp)
			}
		}
	}

	sprint := player.InputState{Sprint: true}
	wallRan := false
	for i := 0; i < 12; i++ {
		deliver(cd.Tick(1.0/30, sprint))
		wallRan = wallRan || client.Movement().IsWallRunning()
	}
	if pk := cd.Flush(); pk != nil {
		deliver([]*ServerMovePacket{pk})
	}

	if !wallRan {
		t.Fatalf("expected the client to wall run, ended at %v", client.Movement().Pos())
	}
	if !server.Movement().IsWallRunning() {
		t.Fatalf("expected the server to be wall running too, got %v/%v", server.Movement().Mode(), server.Movement().CustomMode())
	}
	if sd.Corrections() != 0 {
		t.Fatalf("expected no corrections, got %d", sd.Corrections())
	}
	if cd.UnacknowledgedMoves() != 0 {
		t.Fatalf("expected every move to be acknowledged, got %d left", cd.UnacknowledgedMoves())
	}
	if !client.Movement().Pos().ApproxEqualThreshold(server.Movement().Pos(), 1e-3) {
		t.Fatalf("expected client and server to agree, got %v and %v", client.Movement().Pos(), server.Movement().Pos())
	}
}
