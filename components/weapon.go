package components

// WeaponBank is a single weapon mount drawing from the shared energy pool.
type WeaponBank struct {
	Name          string
	EnergyPerShot float64 // computed once from mount damage/fire rate/subtype
	Reserved      float64 // energy pre-locked for a pending burst
	RechargeTimer float64 // seconds until the bank can fire again
	State         EnergyState
}

// WeaponPool is the per-ship shared weapon energy pool.
// Available stays within [0, Capacity].
type WeaponPool struct {
	Capacity   float64
	Available  float64
	Efficiency float64 // damage-derived subsystem efficiency in [0,1]
	Banks      []WeaponBank
}

// Bank returns the bank at index i, or nil if out of range.
func (wp *WeaponPool) Bank(i int) *WeaponBank {
	if i < 0 || i >= len(wp.Banks) {
		return nil
	}
	return &wp.Banks[i]
}
