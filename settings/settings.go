package settings

import (
	"fmt"
	"os"

	"github.com/oomph-ac/wallrun/game"
	"github.com/pelletier/go-toml"
)

// Settings contains every tunable of the movement simulation and its replication.
type Settings struct {
	Movement Movement `toml:"movement"`
	WallRun  WallRun  `toml:"wallrun"`
	Network  Network  `toml:"network"`
}

// Movement holds the locomotion parameters shared by every movement mode.
type Movement struct {
	MaxWalkSpeed               float32 `toml:"max_walk_speed"`
	MaxWalkSpeedCrouched       float32 `toml:"max_walk_speed_crouched"`
	SprintSpeed                float32 `toml:"sprint_speed"`
	MaxCustomMovementSpeed     float32 `toml:"max_custom_movement_speed"`
	MaxAcceleration            float32 `toml:"max_acceleration"`
	BrakingDecelerationWalking float32 `toml:"braking_deceleration_walking"`
	GroundFriction             float32 `toml:"ground_friction"`
	AirControl                 float32 `toml:"air_control"`
	JumpZVelocity              float32 `toml:"jump_z_velocity"`
	JumpMaxCount               int     `toml:"jump_max_count"`
	GravityZ                   float32 `toml:"gravity_z"`
	GravityScale               float32 `toml:"gravity_scale"`
	// WalkableFloorAngle is in degrees.
	WalkableFloorAngle float32 `toml:"walkable_floor_angle"`
	FloorProbeDistance float32 `toml:"floor_probe_distance"`
	CapsuleRadius      float32 `toml:"capsule_radius"`
	CapsuleHalfHeight  float32 `toml:"capsule_half_height"`
	// SprintIntentDot is the minimum alignment between the horizontal velocity and the facing
	// direction for held sprint input to count as wanting to sprint.
	SprintIntentDot float32 `toml:"sprint_intent_dot"`
	MinTickTime     float32 `toml:"min_tick_time"`
}

// WallRun holds the wall-run tunables.
type WallRun struct {
	WallRunSpeed               float32 `toml:"wall_run_speed"`
	MinWallRunSpeed            float32 `toml:"min_wall_run_speed"`
	LineTraceVerticalTolerance float32 `toml:"line_trace_vertical_tolerance"`
	ProbeForwardOffset         float32 `toml:"probe_forward_offset"`
	ProbeLength                float32 `toml:"probe_length"`
	// CeilingNormalZ is the vertical normal component under which a surface is treated as a
	// ceiling and rejected.
	CeilingNormalZ float32 `toml:"ceiling_normal_z"`
	// VerticalCurve maps seconds since the wall run started to vertical velocity. An empty
	// curve keeps the vertical velocity at zero.
	VerticalCurve []game.CurveKey `toml:"vertical_curve"`
}

// Network holds the prediction and replication tunables.
type Network struct {
	MaxSavedMoves    int     `toml:"max_saved_moves"`
	MaxMoveDeltaTime float32 `toml:"max_move_delta_time"`
	// MaxPositionErrorSquared is the squared distance between the client's and the server's
	// end positions above which the server corrects the client.
	MaxPositionErrorSquared float32 `toml:"max_position_error_squared"`
	// AccelDotThreshold is the minimum alignment of the normalized accelerations of two moves
	// for them to be combined.
	AccelDotThreshold float32 `toml:"accel_dot_threshold"`
	CombineMoves      bool    `toml:"combine_moves"`
}

// Default returns the default settings.
func Default() Settings {
	s := Settings{}
	s.Movement = Movement{
		MaxWalkSpeed:               300,
		MaxWalkSpeedCrouched:       200,
		SprintSpeed:                600,
		MaxCustomMovementSpeed:     800,
		MaxAcceleration:            2048,
		BrakingDecelerationWalking: 2048,
		GroundFriction:             8,
		AirControl:                 0.05,
		JumpZVelocity:              420,
		JumpMaxCount:               1,
		GravityZ:                   -980,
		GravityScale:               1,
		WalkableFloorAngle:         44.765,
		FloorProbeDistance:         2.4,
		CapsuleRadius:              42,
		CapsuleHalfHeight:          96,
		SprintIntentDot:            0.5,
		MinTickTime:                1e-6,
	}
	s.WallRun = WallRun{
		WallRunSpeed:               800,
		MinWallRunSpeed:            250,
		LineTraceVerticalTolerance: 50,
		ProbeForwardOffset:         20,
		ProbeLength:                100,
		CeilingNormalZ:             -0.05,
		VerticalCurve: []game.CurveKey{
			{Time: 0, Value: 0},
			{Time: 0.5, Value: 0},
			{Time: 1.5, Value: -250},
		},
	}
	s.Network = Network{
		MaxSavedMoves:           96,
		MaxMoveDeltaTime:        0.125,
		MaxPositionErrorSquared: 3,
		AccelDotThreshold:       0.9,
		CombineMoves:            true,
	}
	return s
}

// VerticalCurveAsset builds the wall-run vertical velocity curve, or returns nil if the settings
// do not define one.
func (s WallRun) VerticalCurveAsset() (game.Curve, error) {
	if len(s.VerticalCurve) == 0 {
		return nil, nil
	}
	c, err := game.NewFloatCurve(s.VerticalCurve...)
	if err != nil {
		return nil, fmt.Errorf("wall run vertical curve: %w", err)
	}
	return c, nil
}

// Load reads the settings from the TOML file at path. If the file does not exist, it is
// created with the default settings, which are then returned.
func Load(path string) (Settings, error) {
	s := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := toml.Marshal(s)
		if err != nil {
			return s, fmt.Errorf("encode default settings: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return s, fmt.Errorf("create default settings: %w", err)
		}
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}
