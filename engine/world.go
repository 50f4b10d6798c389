package engine

import (
	"sync"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/core"
	"github.com/Bastczuak/bytepath/event"
)

// System is a unit of per-step simulation logic. Systems read their delta
// from the world's time resource: gameplay systems use the scaled delta,
// shake and flash deliberately use the raw delta
type System interface {
	Update(w *World)
	Priority() int // Lower runs first
}

// Initializer is implemented by systems that need a one-time startup pass
// before the first step, such as the respawn system spawning the first ship
type Initializer interface {
	Init(w *World)
}

// ComponentStores groups one typed store per component kind.
// Query joins are explicit intersections: iterate the narrowest store and
// probe the others
type ComponentStores struct {
	Position       *Store[component.PositionComponent]
	Angle          *Store[component.AngleComponent]
	Velocity       *Store[component.VelocityComponent]
	Sprite         *Store[component.SpriteComponent]
	Spin           *Store[component.SpinComponent]
	Boost          *Store[component.BoostComponent]
	Player         *Store[component.PlayerComponent]
	Projectile     *Store[component.ProjectileComponent]
	DeadProjectile *Store[component.DeadProjectileComponent]
	ShootEffect    *Store[component.ShootEffectComponent]
	TrailEffect    *Store[component.TrailEffectComponent]
	TickEffect     *Store[component.TickEffectComponent]
	AmmoPickup     *Store[component.AmmoPickupComponent]
	BoostPickup    *Store[component.BoostPickupComponent]
	LineParticle   *Store[component.LineParticleComponent]
}

// World owns entities, typed component stores, singleton resources, the
// event queue and the deferred command buffer
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity

	Components ComponentStores
	Resources  *Resource
	Events     *event.Queue
	Commands   *CommandBuffer

	allStores []AnyStore
	systems   []System
}

// NewWorld creates a world with every component store initialized and
// empty resources attached
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Components: ComponentStores{
			Position:       NewStore[component.PositionComponent](),
			Angle:          NewStore[component.AngleComponent](),
			Velocity:       NewStore[component.VelocityComponent](),
			Sprite:         NewStore[component.SpriteComponent](),
			Spin:           NewStore[component.SpinComponent](),
			Boost:          NewStore[component.BoostComponent](),
			Player:         NewStore[component.PlayerComponent](),
			Projectile:     NewStore[component.ProjectileComponent](),
			DeadProjectile: NewStore[component.DeadProjectileComponent](),
			ShootEffect:    NewStore[component.ShootEffectComponent](),
			TrailEffect:    NewStore[component.TrailEffectComponent](),
			TickEffect:     NewStore[component.TickEffectComponent](),
			AmmoPickup:     NewStore[component.AmmoPickupComponent](),
			BoostPickup:    NewStore[component.BoostPickupComponent](),
			LineParticle:   NewStore[component.LineParticleComponent](),
		},
		Resources: NewResource(),
		Events:    event.NewQueue(),
		Commands:  NewCommandBuffer(),
	}

	c := &w.Components
	w.allStores = []AnyStore{
		c.Position, c.Angle, c.Velocity, c.Sprite, c.Spin, c.Boost,
		c.Player, c.Projectile, c.DeadProjectile, c.ShootEffect,
		c.TrailEffect, c.TickEffect, c.AmmoPickup, c.BoostPickup,
		c.LineParticle,
	}

	return w
}

// CreateEntity reserves a new entity ID without attaching components
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity immediately removes all components of an entity.
// Systems iterating a store must use Commands.Despawn instead
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Clear removes all entities and components
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem registers a system, keeping the list sorted by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Bubble sort, small N
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	w.mu.Lock()
	defer w.mu.Unlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems once in priority order
func (w *World) Update() {
	for _, system := range w.Systems() {
		system.Update(w)
	}
}

// PlayerEntity returns the singleton player entity. The second return is
// false when no player exists, a valid transient state between death and
// respawn that every caller must tolerate
func (w *World) PlayerEntity() (core.Entity, bool) {
	players := w.Components.Player.All()
	if len(players) == 0 {
		return core.NilEntity, false
	}
	return players[0], true
}
