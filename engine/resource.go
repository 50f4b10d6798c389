package engine

import (
	"time"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/input"
)

// Resource groups the singleton simulation state. The scheduler owns it;
// systems access it through the world for the duration of their update only
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Input  *InputResource
	Shake  *ShakeResource
	Camera *CameraResource
	Flash  *FlashResource
	Spawn  *SpawnTimerResource
}

// NewResource builds the default resource set
func NewResource() *Resource {
	return &Resource{
		Time: &TimeResource{},
		Config: &ConfigResource{
			ScreenWidth:         constant.ScreenWidth,
			ScreenHeight:        constant.ScreenHeight,
			PlayerMovementSpeed: constant.PlayerMovementSpeed,
			PlayerRotationSpeed: constant.PlayerRotationSpeed,
			BoostMax:            constant.BoostMax,
			BoostIncAmount:      constant.BoostIncAmount,
			BoostDecAmount:      constant.BoostDecAmount,
			BoostCooldown:       constant.BoostCooldown,
			SlowDownDuration:    constant.SlowDownDuration,
			SlowDownFloor:       constant.SlowDownFloor,
		},
		Input:  &InputResource{Pressed: input.NewSet()},
		Shake:  NewShakeResource(constant.ShakeDuration, constant.ShakeFrequency, constant.ShakeAmplitude),
		Camera: &CameraResource{},
		Flash:  &FlashResource{},
		Spawn: &SpawnTimerResource{
			Projectile:  component.NewTimer(constant.ProjectileSpawnPeriod, true),
			TickEffect:  component.NewTimer(constant.TickEffectPeriod, true),
			Trail:       component.NewTimer(constant.TrailSpawnPeriod, true),
			AmmoPickup:  component.NewTimer(constant.AmmoPickupSpawnPeriod, true),
			BoostPickup: component.NewTimer(constant.BoostPickupSpawnPeriod, true),
		},
	}
}

// TimeResource carries both time domains of a step. RawDelta is the
// wall-clock step size; Delta is the possibly slowed simulation delta the
// gameplay systems consume. They diverge only while the death slow-motion
// window is active
type TimeResource struct {
	RawDelta time.Duration
	Delta    time.Duration

	// SlowDown accumulates raw time since the death event. Nil when no
	// slow-motion window is active
	SlowDown *time.Duration
}

// ConfigResource holds the effective tuning for this run: the compiled-in
// constants, possibly overridden by a loaded config file before startup
type ConfigResource struct {
	ScreenWidth  float64
	ScreenHeight float64

	PlayerMovementSpeed float64
	PlayerRotationSpeed float64

	BoostMax       float64
	BoostIncAmount float64
	BoostDecAmount float64
	BoostCooldown  float64

	SlowDownDuration time.Duration
	SlowDownFloor    float64
}

// InputResource is the current frame's pressed-key snapshot, read-only to
// simulation systems
type InputResource struct {
	Pressed input.Set
}

// CameraResource is the camera offset the renderer applies, written by the
// shake system
type CameraResource struct {
	X, Y float64
}

// FlashResource counts down the full-screen death flash in steps
type FlashResource struct {
	Frames int
}

// SpawnTimerResource holds one repeating spawn gate per periodic spawner.
// All of them tick with the scaled delta so gameplay pacing slows together
// with simulation time
type SpawnTimerResource struct {
	Projectile  component.Timer
	TickEffect  component.Timer
	Trail       component.Timer
	AmmoPickup  component.Timer
	BoostPickup component.Timer
}
