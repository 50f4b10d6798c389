package system

import "github.com/Bastczuak/bytepath/engine"

// RegisterAll wires the complete simulation system set into the world.
// Construction order matters only for event cursor registration, which must
// finish before the first step; run order comes from the priorities
func RegisterAll(w *engine.World) {
	w.AddSystem(NewTimeKeeperSystem(w))
	w.AddSystem(NewPlayerSystem(w))
	w.AddSystem(NewBoostSystem(w))
	w.AddSystem(NewShakeSystem(w))
	w.AddSystem(NewFlashSystem(w))
	w.AddSystem(NewShootingSystem(w))
	w.AddSystem(NewProjectileSystem(w))
	w.AddSystem(NewProjectileDeathSystem(w))
	w.AddSystem(NewAmmunitionSystem(w))
	w.AddSystem(NewBoostPickupSystem(w))
	w.AddSystem(NewTickEffectSystem(w))
	w.AddSystem(NewTrailEffectSystem(w))
	w.AddSystem(NewLineParticleSystem(w))
	w.AddSystem(NewRespawnSystem(w))
}
