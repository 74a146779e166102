package session

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/player/component"
	"github.com/oomph-ac/wallrun/prediction"
	"github.com/oomph-ac/wallrun/settings"
	"github.com/oomph-ac/wallrun/world"
	"github.com/sirupsen/logrus"
)

func newSessionPlayer(name string, role player.Role, local bool, w *world.World) *player.Player {
	p := player.New(player.Opts{
		Log:               logrus.New(),
		Name:              name,
		Role:              role,
		LocallyControlled: local,
		World:             w,
		Clock:             player.NewManualClock(0),
		Settings:          settings.Default(),
	})
	component.Register(p)
	return p
}

func TestStreamConnFraming(t *testing.T) {
	a, b := net.Pipe()
	ca, cb := NewStreamConn(a), NewStreamConn(b)
	defer ca.Close()
	defer cb.Close()

	go func() {
		_, _ = ca.Write([]byte("first"))
		_, _ = ca.Write(nil)
		_, _ = ca.Write([]byte("second"))
	}()

	for _, expected := range []string{"first", "", "second"} {
		pk, err := cb.ReadPacket()
		if err != nil {
			t.Fatalf("unexpected read error: %v", err)
		}
		if string(pk) != expected {
			t.Fatalf("expected packet %q, got %q", expected, pk)
		}
	}
}

func TestStreamConnRejectsOversizedPacket(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	if _, err := NewStreamConn(a).Write(make([]byte, maxFrameSize+1)); err == nil {
		t.Fatalf("expected an oversized packet to be rejected")
	}

	go func() {
		_, _ = a.Write([]byte{0xff, 0xff, 0xff, 0xff})
	}()
	if _, err := NewStreamConn(b).ReadPacket(); err == nil {
		t.Fatalf("expected an oversized length prefix to be rejected")
	}
}

func TestSessionsStayInSync(t *testing.T) {
	wall := cube.Box(-1000, -250, -100, 1000, -50, 1000)
	client := newSessionPlayer("client", player.RoleAutonomousProxy, true, world.New(wall))
	server := newSessionPlayer("server", player.RoleAuthority, false, world.New(wall))
	start := player.MovementSnapshot{Pos: mgl32.Vec3{0, 0, 500}, Vel: mgl32.Vec3{300, -100, 0}, Mode: player.ModeFalling}
	client.Movement().Restore(start)
	server.Movement().Restore(start)

	a, b := net.Pipe()
	cs := NewClientSession(NewStreamConn(a), client)
	ss := NewServerSession(NewStreamConn(b), server)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serveErr := make(chan error, 1)
	go func() { serveErr <- ss.Serve(ctx) }()
	go func() { _ = cs.Listen(ctx) }()

	for i := 0; i < 10; i++ {
		if err := cs.Tick(1.0/30, player.InputState{Sprint: true}); err != nil {
			t.Fatalf("unexpected tick error: %v", err)
		}
	}
	if err := cs.Flush(); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for cs.UnacknowledgedMoves() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected every move to be acknowledged, %d left", cs.UnacknowledgedMoves())
		}
		time.Sleep(5 * time.Millisecond)
	}

	if !cs.Snapshot().IsWallRunning() {
		t.Fatalf("expected the client to be wall running, got %+v", cs.Snapshot())
	}

	cancel()
	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("expected a clean shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected Serve to return after cancellation")
	}
	if ss.Data().Corrections() != 0 {
		t.Fatalf("expected no corrections, got %d", ss.Data().Corrections())
	}
}

func TestServerSessionSkipsInvalidPackets(t *testing.T) {
	server := newSessionPlayer("server", player.RoleAuthority, false, world.New())
	a, b := net.Pipe()
	client := NewStreamConn(a)
	ss := NewServerSession(NewStreamConn(b), server)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = ss.Serve(ctx) }()

	if _, err := client.Write([]byte{0x7f}); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	if _, err := client.Write(prediction.EncodePacket(&prediction.MoveAckPacket{Timestamp: 1})); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	move := &prediction.ServerMovePacket{Timestamp: 0, DeltaTime: 0.1, ClientPos: mgl32.Vec3{0, 0, -9.8}, ClientMode: player.ModeFalling}
	if _, err := client.Write(prediction.EncodePacket(move)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	b2, err := client.ReadPacket()
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	pk, err := prediction.DecodePacket(b2)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if _, ok := pk.(*prediction.MoveAckPacket); !ok {
		t.Fatalf("expected the valid move to be acknowledged after the invalid packets, got %T", pk)
	}
}
