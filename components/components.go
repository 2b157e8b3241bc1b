// Package components defines the data attached to each ship in the world.
package components

// Subsystem identifies one of the three power-consuming subsystems.
type Subsystem uint8

const (
	SubsystemShields Subsystem = iota
	SubsystemEngines
	SubsystemWeapons
)

// String returns the subsystem name.
func (s Subsystem) String() string {
	switch s {
	case SubsystemShields:
		return "shields"
	case SubsystemEngines:
		return "engines"
	case SubsystemWeapons:
		return "weapons"
	}
	return "unknown"
}

// PowerState is the discretized engine power band derived from power level.
type PowerState uint8

const (
	PowerNone PowerState = iota
	PowerMinimal
	PowerLow
	PowerNormal
	PowerHigh
	PowerFull
)

// String returns the power state name.
func (s PowerState) String() string {
	switch s {
	case PowerNone:
		return "no-power"
	case PowerMinimal:
		return "minimal"
	case PowerLow:
		return "low"
	case PowerNormal:
		return "normal"
	case PowerHigh:
		return "high"
	case PowerFull:
		return "full"
	}
	return "unknown"
}

// EnergyState is the per-bank weapon energy availability band.
type EnergyState uint8

const (
	EnergySufficient EnergyState = iota
	EnergyLow
	EnergyInsufficient
	EnergyRecharging
	EnergyDisabled
)

// String returns the energy state name.
func (s EnergyState) String() string {
	switch s {
	case EnergySufficient:
		return "sufficient"
	case EnergyLow:
		return "low"
	case EnergyInsufficient:
		return "insufficient"
	case EnergyRecharging:
		return "recharging"
	case EnergyDisabled:
		return "disabled"
	}
	return "unknown"
}

// RegenState is the per-quadrant shield regeneration mode.
type RegenState uint8

const (
	RegenNormal RegenState = iota
	RegenBoosted
	RegenReduced
	RegenDisabled
	RegenEmergency
)

// String returns the regeneration state name.
func (s RegenState) String() string {
	switch s {
	case RegenNormal:
		return "normal"
	case RegenBoosted:
		return "boosted"
	case RegenReduced:
		return "reduced"
	case RegenDisabled:
		return "disabled"
	case RegenEmergency:
		return "emergency"
	}
	return "unknown"
}

// ShipInfo identifies a ship and its static class parameters.
type ShipInfo struct {
	ID    uint32
	Name  string
	Class string
	Mass  float64
}

// PowerLinks is the per-tick snapshot of external inputs: the fraction of
// total power committed to each subsystem and the damage-derived efficiency
// scalars. Refreshed from the external coordinator before each tick; the
// subsystem controllers never write back.
type PowerLinks struct {
	Alloc      [3]float64 // indexed by Subsystem, each in [0,1]
	Efficiency [3]float64 // indexed by Subsystem, each in [0,1]
	DamageMod  float64    // engine damage modifier in [0,1]
	Valid      bool       // false while external collaborators are missing
}
