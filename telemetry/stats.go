package telemetry

import "log/slog"

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Shields
	ShieldRegenerated float64 `csv:"shield_regenerated"`
	QuadrantsRestored int     `csv:"quadrants_restored"`
	FullRegenTicks    int     `csv:"full_regen_ticks"`
	RegenRateChanges  int     `csv:"regen_rate_changes"`

	// Engines
	PowerStateChanges int `csv:"power_state_changes"`

	// Weapons
	EnergyConsumed    float64 `csv:"energy_consumed"`
	ShotsDenied       int     `csv:"shots_denied"`
	ChargingCompletes int     `csv:"charging_completes"`
	AllocationChanges int     `csv:"allocation_changes"`
}

// Log writes the window stats via slog.
func (s WindowStats) Log() {
	slog.Info("window stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"shield_regenerated", s.ShieldRegenerated,
		"quadrants_restored", s.QuadrantsRestored,
		"full_regen_ticks", s.FullRegenTicks,
		"power_state_changes", s.PowerStateChanges,
		"energy_consumed", s.EnergyConsumed,
		"shots_denied", s.ShotsDenied,
		"charging_completes", s.ChargingCompletes,
	)
}
