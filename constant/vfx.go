package constant

import (
	"time"

	"github.com/Bastczuak/bytepath/core"
)

// Death slow-motion window. Simulation time dilates to the floor speed the
// moment the player dies and eases back to full speed over the window
const (
	SlowDownDuration = 2500 * time.Millisecond
	SlowDownFloor    = 0.15
)

// Screen shake defaults
const (
	ShakeDuration  = 600 * time.Millisecond
	ShakeFrequency = 60.0 // samples per second
	ShakeAmplitude = 6.0  // max camera offset in units
)

// FlashFrames is how many simulation steps the death flash overlay persists
const FlashFrames = 4

// Effect timing
const (
	TickEffectPeriod  = 5 * time.Second
	TickEffectAnim    = 130 * time.Millisecond
	TrailSpawnPeriod  = 20 * time.Millisecond
	TrailShrink       = 300 * time.Millisecond
	ShootEffectAnim   = 100 * time.Millisecond
	ExplosionLines    = 8
	ExplosionLineLen  = 12.0
	ExplosionLineTime = 250 * time.Millisecond
	ExplosionSpeed    = 80.0 // outward travel of burst lines, units/sec
)

// Effect colors
var (
	ColorBackground = core.RGB{R: 16, G: 16, B: 16}
	ColorDefault    = core.RGB{R: 222, G: 222, B: 222}
	ColorBoost      = core.RGB{R: 76, G: 195, B: 217}
	ColorNonBoost   = core.RGB{R: 255, G: 198, B: 93}
	ColorAmmo       = core.RGB{R: 123, G: 200, B: 164}
	ColorDeath      = core.RGB{R: 241, G: 103, B: 69}
)
