package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/helm/systems"
)

// External gameplay commands. All of these are safe on dead entities and
// out-of-range indices: they no-op or return zero values. None of them may
// run concurrently with Step for the same ship.

// ApplyShieldDamage applies damage to one quadrant and returns the amount
// actually absorbed.
func (g *Game) ApplyShieldDamage(e ecs.Entity, quadrant int, amount float64) float64 {
	if !g.world.Alive(e) {
		return 0
	}
	shields := g.shieldMap.Get(e)
	if shields == nil {
		return 0
	}
	return systems.ApplyShieldDamage(shields, quadrant, amount)
}

// SetShieldEfficiency applies a damage-derived efficiency scalar to a
// ship's shields, re-deriving quadrant regeneration states.
func (g *Game) SetShieldEfficiency(e ecs.Entity, eff float64) {
	if !g.world.Alive(e) {
		return
	}
	if shields := g.shieldMap.Get(e); shields != nil {
		systems.SetShieldEfficiency(shields, eff)
	}
}

// ActivateEmergencyShieldRegen puts all quadrants into emergency
// regeneration for duration seconds, then reverts any still-emergency
// quadrant to normal. Re-triggering while active resets the timer.
func (g *Game) ActivateEmergencyShieldRegen(e ecs.Entity, duration float64) {
	if !g.world.Alive(e) || duration <= 0 {
		return
	}
	shields := g.shieldMap.Get(e)
	if shields == nil {
		return
	}
	info := g.infoMap.Get(e)

	systems.SetEmergencyRegen(shields)
	g.sched.Schedule(fmt.Sprintf("shield-emergency:%d", info.ID), duration, func() {
		// Re-fetch on fire; the component may have moved and the ship may
		// be gone by then.
		if !g.world.Alive(e) {
			return
		}
		if sh := g.shieldMap.Get(e); sh != nil {
			systems.RevertEmergencyRegen(sh)
		}
	})
}

// ApplyEmergencyPowerBoost multiplies the engine damage modifier by
// boostMult (capped at 1.0) for duration seconds, then restores the exact
// pre-boost modifier. Re-triggering while active resets the timer without
// losing the original capture.
func (g *Game) ApplyEmergencyPowerBoost(e ecs.Entity, boostMult, duration float64) {
	if !g.world.Alive(e) || duration <= 0 {
		return
	}
	engine := g.engineMap.Get(e)
	if engine == nil {
		return
	}
	info := g.infoMap.Get(e)

	systems.ApplyEngineBoost(engine, boostMult)
	g.sched.Schedule(fmt.Sprintf("engine-boost:%d", info.ID), duration, func() {
		if !g.world.Alive(e) {
			return
		}
		if es := g.engineMap.Get(e); es != nil {
			systems.RevertEngineBoost(es)
		}
	})
}

// IsAfterburnerViable reports whether the ship's afterburner is worth
// engaging at the current power level.
func (g *Game) IsAfterburnerViable(e ecs.Entity) bool {
	if !g.world.Alive(e) {
		return false
	}
	engine := g.engineMap.Get(e)
	if engine == nil {
		return false
	}
	return systems.IsAfterburnerViable(engine)
}

// CanWeaponFire reports whether the bank could fire a single shot.
func (g *Game) CanWeaponFire(e ecs.Entity, bank int) bool {
	if !g.world.Alive(e) {
		return false
	}
	weapons := g.weaponMap.Get(e)
	if weapons == nil {
		return false
	}
	return systems.CanWeaponFire(weapons, bank)
}

// FireWeapon consumes energy for shots from the bank. Returns false when
// the pool cannot cover the volley.
func (g *Game) FireWeapon(e ecs.Entity, bank, shots int) bool {
	if !g.world.Alive(e) {
		return false
	}
	weapons := g.weaponMap.Get(e)
	if weapons == nil {
		return false
	}
	info := g.infoMap.Get(e)
	return systems.ConsumeWeaponEnergy(weapons, bank, shots, g.tick, info.ID, &g.queue)
}

// ReserveBurstEnergy pre-locks energy for a planned multi-shot burst.
func (g *Game) ReserveBurstEnergy(e ecs.Entity, bank, shots int) bool {
	if !g.world.Alive(e) {
		return false
	}
	weapons := g.weaponMap.Get(e)
	if weapons == nil {
		return false
	}
	info := g.infoMap.Get(e)
	return systems.ReserveBurstEnergy(weapons, bank, shots, g.tick, info.ID, &g.queue)
}

// CompleteBurstFire reconciles a burst reservation against the shots
// actually fired and returns the refunded energy.
func (g *Game) CompleteBurstFire(e ecs.Entity, bank, actualShots int) float64 {
	if !g.world.Alive(e) {
		return 0
	}
	weapons := g.weaponMap.Get(e)
	if weapons == nil {
		return 0
	}
	info := g.infoMap.Get(e)
	return systems.CompleteBurstFire(weapons, bank, actualShots, g.tick, info.ID, &g.queue)
}
