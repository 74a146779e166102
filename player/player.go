package player

import (
	"github.com/oomph-ac/wallrun/settings"
	"github.com/oomph-ac/wallrun/world"
	"github.com/sirupsen/logrus"
)

// Opts are the options used to create a Player.
type Opts struct {
	// Log is the logger of the player. A new logger is created if it is nil.
	Log *logrus.Logger
	// Name identifies the player in logs.
	Name string

	Role Role
	// LocallyControlled marks the instance that reads local input: the owning client, or a
	// listen server's own character.
	LocallyControlled bool

	World    world.Query
	Clock    Clock
	Settings settings.Settings
}

// Player is a character taking part in the movement simulation on one side of the network.
type Player struct {
	log *logrus.Logger
	Dbg *Debugger

	name              string
	role              Role
	locallyControlled bool

	input      InputState
	controller InputService

	world    world.Query
	clock    Clock
	hits     *HitNotifier
	settings settings.Settings

	movement MovementComponent
}

// New creates a player from the options given. A movement component is registered on it
// separately with SetMovement.
func New(opts Opts) *Player {
	if opts.Log == nil {
		opts.Log = logrus.New()
	}
	if opts.Clock == nil {
		opts.Clock = NewManualClock(0)
	}
	return &Player{
		log:               opts.Log,
		Dbg:               NewDebugger(opts.Log),
		name:              opts.Name,
		role:              opts.Role,
		locallyControlled: opts.LocallyControlled,
		world:             opts.World,
		clock:             opts.Clock,
		hits:              &HitNotifier{},
		settings:          opts.Settings,
	}
}

// Log returns the logger of the player.
func (p *Player) Log() *logrus.Logger {
	return p.log
}

// Name ...
func (p *Player) Name() string {
	return p.name
}

// Role returns the network role of the player.
func (p *Player) Role() Role {
	return p.role
}

// IsLocallyControlled returns true if this instance reads local input.
func (p *Player) IsLocallyControlled() bool {
	return p.locallyControlled
}

// Input returns the input of the current tick.
func (p *Player) Input() InputState {
	return p.input
}

// SetInput sets the input of the current tick.
func (p *Player) SetInput(input InputState) {
	p.input = input
}

// Controller returns the input service of the player. Locally controlled players read the
// input of the current tick unless another controller was set. Other players have no
// controller and nil is returned.
func (p *Player) Controller() InputService {
	if p.controller != nil {
		return p.controller
	}
	if p.locallyControlled {
		return p.input
	}
	return nil
}

// SetController overrides the input service of the player.
func (p *Player) SetController(c InputService) {
	p.controller = c
}

// World returns the collision world the player moves in.
func (p *Player) World() world.Query {
	return p.world
}

// Clock returns the simulation clock of the player.
func (p *Player) Clock() Clock {
	return p.clock
}

// Hits returns the notifier of blocking hits produced by the player's movement.
func (p *Player) Hits() *HitNotifier {
	return p.hits
}

// Settings returns the settings of the player.
func (p *Player) Settings() *settings.Settings {
	return &p.settings
}

// Movement returns the movement component of the player.
func (p *Player) Movement() MovementComponent {
	return p.movement
}

// SetMovement registers the movement component of the player.
func (p *Player) SetMovement(c MovementComponent) {
	p.movement = c
}
