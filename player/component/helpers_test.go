package component

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/settings"
	"github.com/oomph-ac/wallrun/world"
	"github.com/sirupsen/logrus"
)

// mockQuery returns scripted ray cast results in order and records every ray it was asked for.
type mockQuery struct {
	results []mockRay
	rays    [][2]mgl32.Vec3
}

type mockRay struct {
	hit world.HitResult
	ok  bool
}

func (q *mockQuery) RayCast(start, end mgl32.Vec3) (world.HitResult, bool) {
	q.rays = append(q.rays, [2]mgl32.Vec3{start, end})
	if len(q.results) == 0 {
		return world.HitResult{}, false
	}
	r := q.results[0]
	q.results = q.results[1:]
	return r.hit, r.ok
}

func (q *mockQuery) NearbyBBoxes(cube.BBox) []cube.BBox {
	return nil
}

func newTestPlayer(role player.Role, local bool, w world.Query) (*player.Player, *WallRunMovementComponent) {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)

	p := player.New(player.Opts{
		Log:               log,
		Name:              "test",
		Role:              role,
		LocallyControlled: local,
		World:             w,
		Settings:          settings.Default(),
	})
	Register(p)
	return p, p.Movement().(*WallRunMovementComponent)
}

// rightWall returns a world with a wall whose surface faces +Y at y=-42, which touches the hull of
// a character standing at the origin.
func rightWall() *world.World {
	return world.New(cube.Box(-1000, -52, -500, 1000, -42, 500))
}
