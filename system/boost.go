package system

import (
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/input"
)

// BoostSystem manages the ship's boost resource: drain while the boost or
// brake input is held and boosting is permitted, regeneration toward max
// otherwise. Running empty starts a fixed cooldown that must fully elapse
// before boosting is permitted again, independent of the refill level
type BoostSystem struct{}

func NewBoostSystem(w *engine.World) *BoostSystem {
	return &BoostSystem{}
}

func (s *BoostSystem) Priority() int {
	return constant.PriorityBoost
}

func (s *BoostSystem) Update(w *engine.World) {
	entity, ok := w.PlayerEntity()
	if !ok {
		return
	}
	boost, ok := w.Components.Boost.Get(entity)
	if !ok {
		return
	}

	dt := w.Resources.Time.Delta.Seconds()
	keys := w.Resources.Input.Pressed
	boosting := keys.Contains(input.KeyBoost) || keys.Contains(input.KeyBrake)

	if boosting && boost.CanBoost() {
		boost.Current -= boost.DecAmount * dt
	} else if boost.Current < boost.Max {
		boost.Current += boost.IncAmount * dt
		if boost.Current > boost.Max {
			boost.Current = boost.Max
		}
	}

	if boost.Current < 0 && boost.Cooldown == nil {
		cooldown := boost.CooldownSec
		boost.Cooldown = &cooldown
	}

	if boost.Cooldown != nil {
		*boost.Cooldown -= dt
		if *boost.Cooldown <= 0 {
			boost.Cooldown = nil
			if boost.Current < 0 {
				boost.Current = 0
			}
		}
	}

	w.Components.Boost.Set(entity, boost)
}
