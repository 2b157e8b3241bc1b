package systems

import (
	"github.com/pthm-cable/helm/components"
	"github.com/pthm-cable/helm/telemetry"
)

// subtypeMultiplier scales the base energy cost by weapon subtype band.
func subtypeMultiplier(subtype int) float64 {
	switch {
	case subtype >= 0 && subtype <= 10:
		return 1.0
	case subtype >= 11 && subtype <= 20:
		return 1.2
	case subtype >= 50 && subtype <= 60:
		return 2.0
	case subtype >= 100:
		return 0.5
	default:
		return 1.0
	}
}

// EnergyPerShot computes a bank's energy requirement from its mount
// parameters. Fast-firing weapons pay less per shot; the floor is 1.0.
func EnergyPerShot(damage, fireWait float64, subtype int) float64 {
	base := damage * 0.1 * subtypeMultiplier(subtype)

	rateFactor := 1.0
	if fireWait > 0 {
		rateFactor = (1.0 / fireWait) * 0.1
		if rateFactor > 2.0 {
			rateFactor = 2.0
		}
	}

	cost := base * rateFactor
	if cost < 1.0 {
		cost = 1.0
	}
	return cost
}

// weaponRegenMultiplier maps the weapon power allocation fraction to a pool
// regeneration multiplier. High allocation is rewarded super-linearly.
func weaponRegenMultiplier(alloc float64) float64 {
	switch {
	case alloc >= 0.75:
		return 1.5 * 1.5
	case alloc >= 0.5:
		return 1.5
	case alloc >= 0.25:
		return 1.0
	default:
		return 0.6
	}
}

// bankState derives the energy state for one bank from the shared pool.
func bankState(wp *components.WeaponPool, b *components.WeaponBank) components.EnergyState {
	switch {
	case wp.Efficiency <= 0:
		return components.EnergyDisabled
	case b.RechargeTimer > 0:
		return components.EnergyRecharging
	case wp.Available < b.EnergyPerShot:
		return components.EnergyInsufficient
	case wp.Available < wp.Capacity*cachedLowEnergyFraction:
		return components.EnergyLow
	default:
		return components.EnergySufficient
	}
}

// TickWeaponPool regenerates the shared pool, advances bank recharge timers,
// and recomputes per-bank energy states.
func TickWeaponPool(wp *components.WeaponPool, alloc, dt float64, tick int32, shipID uint32, q *telemetry.Queue) {
	regen := wp.Capacity * cachedPoolRegenFraction * weaponRegenMultiplier(alloc) * wp.Efficiency * dt
	if regen > 0 && wp.Available < wp.Capacity {
		wp.Available += regen
		if wp.Available > wp.Capacity {
			wp.Available = wp.Capacity
		}
		q.Emit(telemetry.NewAllocationChangedEvent(tick, shipID, wp.Available))
	}

	for i := range wp.Banks {
		b := &wp.Banks[i]
		if b.RechargeTimer > 0 {
			b.RechargeTimer -= dt
			if b.RechargeTimer <= 0 {
				b.RechargeTimer = 0
				q.Emit(telemetry.NewChargingCompleteEvent(tick, shipID, i))
			}
		}
		b.State = bankState(wp, b)
	}
}

// SetWeaponEfficiency updates the damage-derived efficiency scalar and
// re-derives every bank's state.
func SetWeaponEfficiency(wp *components.WeaponPool, e float64) {
	wp.Efficiency = clamp01(e)
	for i := range wp.Banks {
		wp.Banks[i].State = bankState(wp, &wp.Banks[i])
	}
}

// CanWeaponFire reports whether the bank could fire a single shot right now.
// An emergency reserve fraction of capacity is never spendable.
func CanWeaponFire(wp *components.WeaponPool, bank int) bool {
	b := wp.Bank(bank)
	if b == nil {
		return false
	}
	switch b.State {
	case components.EnergyDisabled, components.EnergyInsufficient, components.EnergyRecharging:
		return false
	}
	return wp.Available-wp.Capacity*cachedEmergencyReserve >= b.EnergyPerShot
}

// ConsumeWeaponEnergy deducts energy for shots fired from the bank. Returns
// false without touching the pool when the fire gate fails or the pool
// cannot cover the full volley; that is a signaled, expected condition.
// Multi-shot volleys put the bank on a recharge cooldown.
func ConsumeWeaponEnergy(wp *components.WeaponPool, bank, shots int, tick int32, shipID uint32, q *telemetry.Queue) bool {
	b := wp.Bank(bank)
	if b == nil || shots <= 0 {
		return false
	}

	need := float64(shots) * b.EnergyPerShot
	if !CanWeaponFire(wp, bank) || wp.Available < need {
		q.Emit(telemetry.NewEnergyInsufficientEvent(tick, shipID, bank, need, wp.Available))
		return false
	}

	wp.Available -= need
	q.Emit(telemetry.NewEnergyConsumedEvent(tick, shipID, bank, need))

	if shots > 1 {
		b.RechargeTimer = cachedBurstCooldown * float64(shots)
		b.State = components.EnergyRecharging
	}
	return true
}

// ReserveBurstEnergy pre-locks energy for a planned multi-shot burst. Only
// one reservation may be pending per bank. Returns false when the gate fails
// or the pool cannot cover the burst above the emergency reserve.
func ReserveBurstEnergy(wp *components.WeaponPool, bank, shots int, tick int32, shipID uint32, q *telemetry.Queue) bool {
	b := wp.Bank(bank)
	if b == nil || shots <= 0 || b.Reserved > 0 {
		return false
	}

	switch b.State {
	case components.EnergyDisabled, components.EnergyInsufficient, components.EnergyRecharging:
		return false
	}

	need := float64(shots) * b.EnergyPerShot
	if wp.Available-wp.Capacity*cachedEmergencyReserve < need {
		q.Emit(telemetry.NewEnergyInsufficientEvent(tick, shipID, bank, need, wp.Available))
		return false
	}

	wp.Available -= need
	b.Reserved = need
	return true
}

// CompleteBurstFire reconciles a reservation against the shots actually
// fired: the bank is charged for actualShots and the unused remainder goes
// back to the pool. Returns the refunded amount.
func CompleteBurstFire(wp *components.WeaponPool, bank, actualShots int, tick int32, shipID uint32, q *telemetry.Queue) float64 {
	b := wp.Bank(bank)
	if b == nil || b.Reserved <= 0 {
		return 0
	}

	used := float64(actualShots) * b.EnergyPerShot
	if actualShots < 0 {
		used = 0
	}
	if used > b.Reserved {
		used = b.Reserved
	}
	refund := b.Reserved - used
	b.Reserved = 0

	if refund > 0 {
		wp.Available += refund
		if wp.Available > wp.Capacity {
			wp.Available = wp.Capacity
		}
	}
	if used > 0 {
		q.Emit(telemetry.NewEnergyConsumedEvent(tick, shipID, bank, used))
	}
	if actualShots > 1 {
		b.RechargeTimer = cachedBurstCooldown * float64(actualShots)
		b.State = components.EnergyRecharging
	}

	return refund
}
