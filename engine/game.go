package engine

import (
	"time"

	"github.com/Bastczuak/bytepath/constant"
)

// Game drives the fixed-step simulation. Each real frame's elapsed wall
// time is subdivided into steps no larger than MaxFrameSlice and the world
// is advanced step by step until the time is exhausted, so a single slow
// frame never produces one oversized, destabilizing simulation step
type Game struct {
	World *World

	maxSlice time.Duration
}

// NewGame wraps a world in a fixed-step driver
func NewGame(world *World) *Game {
	return &Game{
		World:    world,
		maxSlice: constant.MaxFrameSlice,
	}
}

// RunStartup runs the one-time Init pass of every system that declares one.
// Initial entities spawned here go through the same command barrier as
// in-step spawns, so they are fully live from the first step onward
func (g *Game) RunStartup() {
	for _, system := range g.World.Systems() {
		if init, ok := system.(Initializer); ok {
			init.Init(g.World)
		}
	}
	g.World.Commands.Apply(g.World)
}

// Advance consumes one real frame's duration as bounded simulation steps
func (g *Game) Advance(frameTime time.Duration) {
	for frameTime > 0 {
		dt := frameTime
		if dt > g.maxSlice {
			dt = g.maxSlice
		}
		g.Step(dt)
		frameTime -= dt
	}
}

// Step runs a single simulation step of the given raw duration:
// event maintenance, raw delta publication, systems in priority order,
// then the structural mutation barrier
func (g *Game) Step(rawDelta time.Duration) {
	w := g.World

	w.Events.Maintain()

	w.Resources.Time.RawDelta = rawDelta
	// Delta is written by the time keeper; seed with raw so a world
	// without one still advances
	w.Resources.Time.Delta = rawDelta

	w.Update()
	w.Commands.Apply(w)
}
