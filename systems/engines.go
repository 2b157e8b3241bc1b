package systems

import (
	"github.com/pthm-cable/helm/components"
	"github.com/pthm-cable/helm/telemetry"
)

// Afterburner viability thresholds.
const (
	afterburnerMinEfficiency = 0.2
	afterburnerMinPower      = 0.1
)

// powerStateFor bands a power level into a PowerState.
func powerStateFor(level float64) components.PowerState {
	switch {
	case level <= 0:
		return components.PowerNone
	case level < 0.25:
		return components.PowerMinimal
	case level < 0.5:
		return components.PowerLow
	case level < 0.75:
		return components.PowerNormal
	case level < 1.0:
		return components.PowerHigh
	default:
		return components.PowerFull
	}
}

// TickEngine recomputes the engine power level and derived performance from
// fresh external inputs. externalDamageMod is ignored while an emergency
// boost holds the modifier.
func TickEngine(es *components.EngineState, alloc, efficiency, externalDamageMod float64, tick int32, shipID uint32, q *telemetry.Queue) {
	if !es.BoostActive {
		es.DamageMod = clamp01(externalDamageMod)
	}

	level := clamp01(alloc * efficiency * es.DamageMod)
	state := powerStateFor(level)

	speedMult := speedCurve.Eval(level)
	accelMult := accelerationCurve.Eval(level)
	turnMult := turnRateCurve.Eval(level)
	abMult := afterburnerCurve.Eval(level)

	maxSpeed := es.Profile.MaxSpeed * speedMult
	abSpeed := es.Profile.AfterburnerSpeed * speedMult * (1 + abMult*0.5)
	accel := es.Profile.Acceleration * accelMult
	turnRate := es.Profile.TurnRate * turnMult

	if state != es.State {
		q.Emit(telemetry.NewPowerChangedEvent(tick, shipID, level))
	}
	if maxSpeed != es.CurrentMaxSpeed || abSpeed != es.CurrentAfterburnerSpeed {
		q.Emit(telemetry.NewSpeedScalingUpdatedEvent(tick, shipID, maxSpeed, abSpeed))
	}
	if turnRate != es.CurrentTurnRate || accel != es.CurrentAcceleration {
		q.Emit(telemetry.NewManeuverabilityChangedEvent(tick, shipID, turnRate, accel))
	}
	if abMult != es.AfterburnerEfficiency {
		q.Emit(telemetry.NewAfterburnerEfficiencyChangedEvent(tick, shipID, abMult))
	}

	es.PowerLevel = level
	es.State = state
	es.CurrentMaxSpeed = maxSpeed
	es.CurrentAfterburnerSpeed = abSpeed
	es.CurrentAcceleration = accel
	es.CurrentTurnRate = turnRate
	es.AfterburnerEfficiency = abMult
}

// ApplyEngineBoost temporarily raises the damage modifier by boost (capped
// at 1.0), capturing the pre-boost value on first application. Re-applying
// while active recomputes from the original capture, so the eventual revert
// still restores the pre-boost modifier exactly. The caller schedules
// RevertEngineBoost after the boost duration.
func ApplyEngineBoost(es *components.EngineState, boost float64) {
	if boost <= 0 {
		return
	}
	if !es.BoostActive {
		es.BoostRestore = es.DamageMod
		es.BoostActive = true
	}
	boosted := es.BoostRestore * boost
	if boosted > 1.0 {
		boosted = 1.0
	}
	es.DamageMod = boosted
}

// RevertEngineBoost restores the damage modifier captured when the boost was
// applied. No-op when no boost is active.
func RevertEngineBoost(es *components.EngineState) {
	if !es.BoostActive {
		return
	}
	es.DamageMod = es.BoostRestore
	es.BoostActive = false
}

// IsAfterburnerViable reports whether the afterburner is worth engaging at
// the current power level.
func IsAfterburnerViable(es *components.EngineState) bool {
	return es.AfterburnerEfficiency > afterburnerMinEfficiency &&
		es.PowerLevel > afterburnerMinPower
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
