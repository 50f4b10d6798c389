package engine

import (
	"sync"

	"github.com/Bastczuak/bytepath/core"
)

// SpawnFunc attaches components to a freshly reserved entity
type SpawnFunc func(w *World, e core.Entity)

// CommandBuffer is the per-step structural mutation log. Systems iterating
// component stores queue spawns and despawns here instead of mutating the
// world mid-loop; the game driver applies the log at the end-of-step
// barrier, after every system has run
type CommandBuffer struct {
	mu       sync.Mutex
	spawns   []SpawnFunc
	despawns []core.Entity
}

// NewCommandBuffer creates an empty command buffer
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

// Spawn queues entity creation. The callback runs at the barrier with the
// reserved entity ID
func (c *CommandBuffer) Spawn(fn SpawnFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spawns = append(c.spawns, fn)
}

// Despawn queues entity destruction for the barrier
func (c *CommandBuffer) Despawn(e core.Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.despawns = append(c.despawns, e)
}

// Apply executes queued despawns, then queued spawns, and empties the log.
// Despawns run first so an entity despawned and "re-spawned" in the same
// step cannot lose its fresh components
func (c *CommandBuffer) Apply(w *World) {
	c.mu.Lock()
	despawns := c.despawns
	spawns := c.spawns
	c.despawns = nil
	c.spawns = nil
	c.mu.Unlock()

	for _, e := range despawns {
		w.DestroyEntity(e)
	}
	for _, fn := range spawns {
		fn(w, w.CreateEntity())
	}
}

// Pending returns the number of queued commands
func (c *CommandBuffer) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.spawns) + len(c.despawns)
}
