package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/example/arena"
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/player/component"
	"github.com/oomph-ac/wallrun/session"
	"github.com/oomph-ac/wallrun/settings"
	"github.com/sandertv/go-raknet"
	"github.com/sirupsen/logrus"
)

const tickRate = 30

// The following program connects to the example server and predicts a character that sprints
// along the arena wall for a few seconds.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: ./client <raknet|quic> <server_addr> [settings_file]")
		return
	}
	transport, addr := os.Args[1], os.Args[2]
	settingsPath := "settings.toml"
	if len(os.Args) > 3 {
		settingsPath = os.Args[3]
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	logger.SetLevel(logrus.InfoLevel)

	cfg, err := settings.Load(settingsPath)
	if err != nil {
		logger.Fatalf("error loading settings: %v", err)
	}

	conn, err := dial(transport, addr)
	if err != nil {
		logger.Fatalf("error connecting to %s: %v", addr, err)
	}

	p := player.New(player.Opts{
		Log:               logger,
		Name:              "client",
		Role:              player.RoleAutonomousProxy,
		LocallyControlled: true,
		World:             arena.New(),
		Clock:             player.NewManualClock(0),
		Settings:          cfg,
	})
	component.Register(p)
	p.Movement().Restore(arena.Spawn())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := session.NewClientSession(conn, p)
	go func() {
		if err := s.Listen(ctx); err != nil {
			logger.Errorf("connection closed: %v", err)
		}
	}()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()
	for tick := 0; tick < tickRate*4; tick++ {
		<-ticker.C
		// Sprint for three seconds, then let go.
		input := player.InputState{MoveVector: mgl32.Vec2{1, 0}, Sprint: tick < tickRate*3}
		if err := s.Tick(1.0/tickRate, input); err != nil {
			logger.Fatalf("error sending moves: %v", err)
		}
		if tick%tickRate == 0 {
			snapshot := s.Snapshot()
			logger.Infof("t=%.1fs pos=%v mode=%v/%v", float32(tick)/tickRate, snapshot.Pos, snapshot.Mode, snapshot.CustomMode)
		}
	}
	if err := s.Flush(); err != nil {
		logger.Errorf("error sending the last move: %v", err)
	}
	time.Sleep(time.Second / 2)
	logger.Infof("%d moves left unacknowledged", s.UnacknowledgedMoves())
}

func dial(transport, addr string) (session.PacketConn, error) {
	switch transport {
	case "raknet":
		return raknet.Dial(addr)
	case "quic":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		// The example server uses a self-signed certificate.
		return session.DialQUIC(ctx, addr, &tls.Config{InsecureSkipVerify: true})
	}
	return nil, fmt.Errorf("unknown transport %q", transport)
}
