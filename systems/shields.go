package systems

import (
	"github.com/pthm-cable/helm/components"
	"github.com/pthm-cable/helm/telemetry"
)

// Per-state regeneration rate multipliers.
const (
	regenMultNormal    = 1.0
	regenMultBoosted   = 1.5
	regenMultReduced   = 0.5
	regenMultDisabled  = 0.0
	regenMultEmergency = 2.0
)

// Scarcity priority: the weakest quadrant each tick regenerates faster.
const priorityBoost = 1.5

// etsMultiplier maps the shield power allocation fraction to a regeneration
// rate multiplier.
func etsMultiplier(alloc float64) float64 {
	switch {
	case alloc >= 0.75:
		return 2.0
	case alloc >= 0.5:
		return 1.5
	case alloc >= 0.25:
		return 1.0
	default:
		return 0.5
	}
}

// regenStateMultiplier returns the rate multiplier for a quadrant state.
func regenStateMultiplier(state components.RegenState) float64 {
	switch state {
	case components.RegenBoosted:
		return regenMultBoosted
	case components.RegenReduced:
		return regenMultReduced
	case components.RegenDisabled:
		return regenMultDisabled
	case components.RegenEmergency:
		return regenMultEmergency
	default:
		return regenMultNormal
	}
}

// ApplyShieldDamage removes energy from a quadrant and resets its
// regeneration delay. Returns the damage actually absorbed (the quadrant
// never goes negative). Out-of-range quadrants and non-positive amounts are
// no-ops.
func ApplyShieldDamage(sh *components.ShieldArray, quadrant int, amount float64) float64 {
	if quadrant < 0 || quadrant >= components.QuadrantCount || amount <= 0 {
		return 0
	}

	q := &sh.Quadrants[quadrant]
	actual := amount
	if q.Current < actual {
		actual = q.Current
	}
	q.Current -= actual

	// Any hit restarts the delay, even one the quadrant couldn't absorb.
	q.DamageTimer = sh.DamageDelay

	return actual
}

// priorityQuadrant returns the index of the quadrant with the lowest
// current/max ratio. Ties break to the lowest index. Recomputed every tick;
// priority is not sticky.
func priorityQuadrant(sh *components.ShieldArray) int {
	best := 0
	bestRatio := sh.Quadrants[0].Ratio()
	for i := 1; i < components.QuadrantCount; i++ {
		if r := sh.Quadrants[i].Ratio(); r < bestRatio {
			best = i
			bestRatio = r
		}
	}
	return best
}

// TickShields advances shield regeneration by dt.
// alloc is the fresh power allocation fraction for shields.
func TickShields(sh *components.ShieldArray, alloc, dt float64, tick int32, shipID uint32, q *telemetry.Queue) {
	ets := etsMultiplier(alloc)
	prio := priorityQuadrant(sh)

	for i := range sh.Quadrants {
		quad := &sh.Quadrants[i]

		if quad.DamageTimer > 0 {
			quad.DamageTimer -= dt
			if quad.DamageTimer < 0 {
				quad.DamageTimer = 0
			}
		}

		eligible := quad.Current < quad.Max &&
			quad.DamageTimer <= 0 &&
			quad.State != components.RegenDisabled &&
			sh.Efficiency > 0

		rate := 0.0
		if eligible {
			prioMult := 1.0
			if i == prio {
				prioMult = priorityBoost
			}
			rate = sh.BaseRate * ets * sh.Efficiency * prioMult * regenStateMultiplier(quad.State)
		}

		if rate != quad.LastRate {
			q.Emit(telemetry.NewRegenRateChangedEvent(tick, shipID, i, rate))
			quad.LastRate = rate
		}

		if rate <= 0 {
			continue
		}

		amount := rate * dt
		if quad.Current+amount > quad.Max {
			amount = quad.Max - quad.Current
		}
		quad.Current += amount
		q.Emit(telemetry.NewQuadrantRegeneratedEvent(tick, shipID, i, amount))

		if quad.Current >= quad.Max {
			quad.Current = quad.Max
			q.Emit(telemetry.NewQuadrantRestoredEvent(tick, shipID, i))
		}
	}

	// Re-fires every tick while shields stay continuously at max; consumers
	// that want an edge must detect it themselves.
	if sh.AtFullStrength() {
		q.Emit(telemetry.NewFullyRegeneratedEvent(tick, shipID))
	}
}

// SetShieldEfficiency updates the damage-derived efficiency scalar and
// re-derives every quadrant's regeneration state from it.
func SetShieldEfficiency(sh *components.ShieldArray, e float64) {
	if e < 0 {
		e = 0
	} else if e > 1 {
		e = 1
	}
	sh.Efficiency = e

	state := components.RegenNormal
	switch {
	case e <= 0:
		state = components.RegenDisabled
	case e < 0.5:
		state = components.RegenReduced
	}
	for i := range sh.Quadrants {
		sh.Quadrants[i].State = state
	}
}

// SetEmergencyRegen puts every quadrant into the emergency regeneration
// state. The caller schedules RevertEmergencyRegen after the boost duration.
func SetEmergencyRegen(sh *components.ShieldArray) {
	for i := range sh.Quadrants {
		sh.Quadrants[i].State = components.RegenEmergency
	}
}

// RevertEmergencyRegen returns every still-emergency quadrant to Normal.
// Quadrant states set after the boost started (e.g. by SetShieldEfficiency)
// are left alone; states that existed before the boost are not recovered.
func RevertEmergencyRegen(sh *components.ShieldArray) {
	for i := range sh.Quadrants {
		if sh.Quadrants[i].State == components.RegenEmergency {
			sh.Quadrants[i].State = components.RegenNormal
		}
	}
}
