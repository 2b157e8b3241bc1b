package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	shieldRegenerated float64
	quadrantsRestored int
	fullRegenTicks    int
	regenRateChanges  int
	powerStateChanges int
	energyConsumed    float64
	shotsDenied       int
	chargingCompletes int
	allocationChanges int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		windowStartTick:     0,
	}
}

// Record accumulates a single event into the current window.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventQuadrantRegenerated:
		c.shieldRegenerated += ev.Amount
	case EventQuadrantRestored:
		c.quadrantsRestored++
	case EventFullyRegenerated:
		c.fullRegenTicks++
	case EventRegenRateChanged:
		c.regenRateChanges++
	case EventPowerChanged:
		c.powerStateChanges++
	case EventEnergyConsumed:
		c.energyConsumed += ev.Amount
	case EventEnergyInsufficient:
		c.shotsDenied++
	case EventChargingComplete:
		c.chargingCompletes++
	case EventAllocationChanged:
		c.allocationChanges++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces WindowStats for the completed window and resets counters.
func (c *Collector) Flush(currentTick int32) WindowStats {
	stats := WindowStats{
		WindowStartTick:   c.windowStartTick,
		WindowEndTick:     currentTick,
		SimTimeSec:        float64(currentTick) * c.dt,
		ShieldRegenerated: c.shieldRegenerated,
		QuadrantsRestored: c.quadrantsRestored,
		FullRegenTicks:    c.fullRegenTicks,
		RegenRateChanges:  c.regenRateChanges,
		PowerStateChanges: c.powerStateChanges,
		EnergyConsumed:    c.energyConsumed,
		ShotsDenied:       c.shotsDenied,
		ChargingCompletes: c.chargingCompletes,
		AllocationChanges: c.allocationChanges,
	}

	c.windowStartTick = currentTick
	c.shieldRegenerated = 0
	c.quadrantsRestored = 0
	c.fullRegenTicks = 0
	c.regenRateChanges = 0
	c.powerStateChanges = 0
	c.energyConsumed = 0
	c.shotsDenied = 0
	c.chargingCompletes = 0
	c.allocationChanges = 0

	return stats
}
