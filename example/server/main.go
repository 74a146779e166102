package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/wallrun/example/arena"
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/player/component"
	"github.com/oomph-ac/wallrun/session"
	"github.com/oomph-ac/wallrun/settings"
	"github.com/oomph-ac/wallrun/world"
	"github.com/sandertv/go-raknet"
	"github.com/sirupsen/logrus"
)

// The following program runs the authoritative side of the wall-run simulation for every client
// that connects to it.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: ./server <raknet|quic> <local_addr> [settings_file]")
		return
	}
	transport, addr := os.Args[1], os.Args[2]
	settingsPath := "settings.toml"
	if len(os.Args) > 3 {
		settingsPath = os.Args[3]
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	logger.SetLevel(logrus.DebugLevel)

	cfg, err := settings.Load(settingsPath)
	if err != nil {
		logger.Fatalf("error loading settings: %v", err)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			logger.Fatalf("error initializing sentry: %v", err)
		}
		defer sentry.Flush(time.Second * 5)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	w := arena.New()
	switch transport {
	case "raknet":
		serveRakNet(addr, logger, w, cfg)
	case "quic":
		serveQUIC(addr, logger, w, cfg)
	default:
		logger.Fatalf("unknown transport %q", transport)
	}
}

func serveRakNet(addr string, logger *logrus.Logger, w *world.World, cfg settings.Settings) {
	listener, err := raknet.Listen(addr)
	if err != nil {
		logger.Fatalf("error listening on %s: %v", addr, err)
	}
	defer listener.Close()
	logger.Infof("wall-run server listening on %v (raknet)", listener.Addr())

	for {
		c, err := listener.Accept()
		if err != nil {
			logger.Errorf("error accepting connection: %v", err)
			return
		}
		go handleConn(c.(*raknet.Conn), c.RemoteAddr(), logger, w, cfg)
	}
}

func serveQUIC(addr string, logger *logrus.Logger, w *world.World, cfg settings.Settings) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		logger.Fatalf("invalid address %s: %v", addr, err)
	}
	tlsConf, err := session.SelfSignedTLSConfig(host)
	if err != nil {
		logger.Fatalf("error creating certificate: %v", err)
	}
	listener, err := session.ListenQUIC(addr, tlsConf)
	if err != nil {
		logger.Fatalf("error listening on %s: %v", addr, err)
	}
	defer listener.Close()
	logger.Infof("wall-run server listening on %v (quic)", listener.Addr())

	for {
		conn, remote, err := listener.Accept(context.Background())
		if err != nil {
			logger.Errorf("error accepting connection: %v", err)
			return
		}
		go handleConn(conn, remote, logger, w, cfg)
	}
}

// handleConn serves a new connection until it is closed.
func handleConn(conn session.PacketConn, remote net.Addr, logger *logrus.Logger, w *world.World, cfg settings.Settings) {
	defer conn.Close()

	p := player.New(player.Opts{
		Log:      logger,
		Name:     remote.String(),
		Role:     player.RoleAuthority,
		World:    w,
		Clock:    player.NewManualClock(0),
		Settings: cfg,
	})
	component.Register(p)
	defer p.Movement().Destroy()
	p.Movement().Restore(arena.Spawn())

	logger.Infof("%s connected", p.Name())
	s := session.NewServerSession(conn, p)
	if err := s.Serve(context.Background()); err != nil {
		logger.Infof("%s disconnected: %v", p.Name(), err)
	}
	logger.Infof("%s corrected %d times", p.Name(), s.Data().Corrections())
}
