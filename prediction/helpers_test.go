package prediction

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/player/component"
	"github.com/oomph-ac/wallrun/settings"
	"github.com/oomph-ac/wallrun/world"
	"github.com/sirupsen/logrus"
)

// wallBox has its surface facing +Y at y=-50.
var wallBox = cube.Box(-1000, -250, -100, 1000, -50, 1000)

func newClientPlayer(cfg settings.Settings, boxes ...cube.BBox) *player.Player {
	return newPlayer("client", player.RoleAutonomousProxy, true, cfg, boxes...)
}

func newServerPlayer(cfg settings.Settings, boxes ...cube.BBox) *player.Player {
	return newPlayer("server", player.RoleAuthority, false, cfg, boxes...)
}

func newPlayer(name string, role player.Role, local bool, cfg settings.Settings, boxes ...cube.BBox) *player.Player {
	p := player.New(player.Opts{
		Log:               logrus.New(),
		Name:              name,
		Role:              role,
		LocallyControlled: local,
		World:             world.New(boxes...),
		Clock:             player.NewManualClock(0),
		Settings:          cfg,
	})
	component.Register(p)
	return p
}

func noCombine() settings.Settings {
	cfg := settings.Default()
	cfg.Network.CombineMoves = false
	return cfg
}
