package system

import (
	"time"

	"github.com/Bastczuak/bytepath/engine"
)

// newTestWorld returns a world with default resources, ready for direct
// system updates
func newTestWorld() *engine.World {
	return engine.NewWorld()
}

// setDelta fixes both time domains for the next update
func setDelta(w *engine.World, d time.Duration) {
	w.Resources.Time.RawDelta = d
	w.Resources.Time.Delta = d
}

// spawnTestPlayer runs the regular spawn through the command barrier so the
// ship is live before the test begins
func spawnTestPlayer(w *engine.World) {
	SpawnPlayer(w)
	w.Commands.Apply(w)
}
