package config

import (
	"errors"
	"fmt"

	"github.com/udisondev/ghostchase/internal/vecmath"
)

// Ghost configures the pursuing ghost.
type Ghost struct {
	MaxHealth      int32   `yaml:"max_health" toml:"max_health"`
	Speed          float64 `yaml:"speed" toml:"speed"`
	ChaseDistance  float64 `yaml:"chase_distance" toml:"chase_distance"`
	AttackDistance float64 `yaml:"attack_distance" toml:"attack_distance"`
	BlendTime      float64 `yaml:"blend_time" toml:"blend_time"`       // seconds
	DissolveRate   float64 `yaml:"dissolve_rate" toml:"dissolve_rate"` // dissolve level per second

	// Gravity is applied per tick, not per second.
	GravityStep       float64 `yaml:"gravity_step" toml:"gravity_step"`
	GroundedVelocity  float64 `yaml:"grounded_velocity" toml:"grounded_velocity"` // floor for vertical velocity while grounded
	GroundProbeOffset float64 `yaml:"ground_probe_offset" toml:"ground_probe_offset"`
	GroundProbeLength float64 `yaml:"ground_probe_length" toml:"ground_probe_length"`

	// Respawn pose
	Origin    vecmath.Vec3 `yaml:"origin" toml:"origin"`
	OriginYaw float64      `yaml:"origin_yaw" toml:"origin_yaw"`
}

// DefaultGhost returns ghost settings matching the stock character.
func DefaultGhost() Ghost {
	return Ghost{
		MaxHealth:         3,
		Speed:             4,
		ChaseDistance:     10,
		AttackDistance:    2,
		BlendTime:         0.1,
		DissolveRate:      1,
		GravityStep:       0.1,
		GroundedVelocity:  -0.1,
		GroundProbeOffset: 0.1,
		GroundProbeLength: 0.2,
	}
}

func (g Ghost) validate() error {
	var errs []error
	if g.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("ghost.max_health must be positive, got %d", g.MaxHealth))
	}
	if g.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ghost.speed must be positive, got %v", g.Speed))
	}
	if g.ChaseDistance < 0 || g.AttackDistance < 0 {
		errs = append(errs, errors.New("ghost distances must not be negative"))
	}
	if g.DissolveRate <= 0 {
		errs = append(errs, fmt.Errorf("ghost.dissolve_rate must be positive, got %v", g.DissolveRate))
	}
	return errors.Join(errs...)
}

// Navigator configures the path-following enemy.
type Navigator struct {
	Speed           float64 `yaml:"speed" toml:"speed"`
	AvoidanceRadius float64 `yaml:"avoidance_radius" toml:"avoidance_radius"`
	DistanceToWall  float64 `yaml:"distance_to_wall" toml:"distance_to_wall"`
	StoppingRadius  float64 `yaml:"stopping_radius" toml:"stopping_radius"`
}

// DefaultNavigator returns navigator settings.
func DefaultNavigator() Navigator {
	return Navigator{
		Speed:           3.5,
		AvoidanceRadius: 5,
		DistanceToWall:  1,
		StoppingRadius:  0.1,
	}
}

func (n Navigator) validate() error {
	var errs []error
	if n.Speed <= 0 {
		errs = append(errs, fmt.Errorf("navigator.speed must be positive, got %v", n.Speed))
	}
	if n.AvoidanceRadius < 0 || n.DistanceToWall < 0 {
		errs = append(errs, errors.New("navigator distances must not be negative"))
	}
	return errors.Join(errs...)
}

// Player configures the player actor.
type Player struct {
	Speed         float64 `yaml:"speed" toml:"speed"`
	PickupRadius  float64 `yaml:"pickup_radius" toml:"pickup_radius"`
	ContactRadius float64 `yaml:"contact_radius" toml:"contact_radius"`
	StrikeRange   float64 `yaml:"strike_range" toml:"strike_range"`
	StrikeDamage  int32   `yaml:"strike_damage" toml:"strike_damage"`
	WinCount      int     `yaml:"win_count" toml:"win_count"`
}

// DefaultPlayer returns player settings.
func DefaultPlayer() Player {
	return Player{
		Speed:         5,
		PickupRadius:  0.6,
		ContactRadius: 0.8,
		StrikeRange:   2.5,
		StrikeDamage:  1,
		WinCount:      13,
	}
}

func (p Player) validate() error {
	var errs []error
	if p.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %v", p.Speed))
	}
	if p.WinCount <= 0 {
		errs = append(errs, fmt.Errorf("player.win_count must be positive, got %d", p.WinCount))
	}
	return errors.Join(errs...)
}
