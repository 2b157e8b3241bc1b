package components

// EngineProfile holds the immutable base performance values bound at ship
// creation. Derived current values are recomputed from these every tick.
type EngineProfile struct {
	MaxSpeed         float64
	AfterburnerSpeed float64
	Acceleration     float64
	TurnRate         float64
}

// EngineState holds the per-tick engine power state and derived performance.
type EngineState struct {
	Profile EngineProfile

	PowerLevel float64 // alloc * efficiency * damage modifier, in [0,1]
	State      PowerState

	// Damage modifier as last applied. Normally refreshed from the external
	// damage model each tick; while an emergency boost is active the boosted
	// value holds until the scheduled revert restores BoostRestore.
	DamageMod    float64
	BoostActive  bool
	BoostRestore float64 // damage modifier captured when the boost was applied

	// Derived performance, recomputed each tick
	CurrentMaxSpeed         float64
	CurrentAfterburnerSpeed float64
	CurrentAcceleration     float64
	CurrentTurnRate         float64
	AfterburnerEfficiency   float64
}
