// Package telemetry provides subsystem event collection, windowed stats, and CSV output.
package telemetry

// EventType identifies subsystem events.
type EventType uint8

const (
	// Shield events
	EventQuadrantRegenerated EventType = iota
	EventQuadrantRestored
	EventFullyRegenerated
	EventRegenRateChanged

	// Engine events
	EventPowerChanged
	EventSpeedScalingUpdated
	EventManeuverabilityChanged
	EventAfterburnerEfficiencyChanged

	// Weapon events
	EventEnergyConsumed
	EventEnergyInsufficient
	EventAllocationChanged
	EventChargingComplete
)

// String returns the event name used by UI and log consumers.
func (t EventType) String() string {
	switch t {
	case EventQuadrantRegenerated:
		return "quadrant-regenerated"
	case EventQuadrantRestored:
		return "quadrant-restored"
	case EventFullyRegenerated:
		return "fully-regenerated"
	case EventRegenRateChanged:
		return "regen-rate-changed"
	case EventPowerChanged:
		return "power-changed"
	case EventSpeedScalingUpdated:
		return "speed-scaling-updated"
	case EventManeuverabilityChanged:
		return "maneuverability-changed"
	case EventAfterburnerEfficiencyChanged:
		return "afterburner-efficiency-changed"
	case EventEnergyConsumed:
		return "energy-consumed"
	case EventEnergyInsufficient:
		return "energy-insufficient"
	case EventAllocationChanged:
		return "allocation-changed"
	case EventChargingComplete:
		return "charging-complete"
	}
	return "unknown"
}

// Event represents a single subsystem event.
type Event struct {
	Type   EventType
	Tick   int32
	ShipID uint32
	Index  int // quadrant or bank index; -1 when not applicable

	// Optional payload depending on event type
	Amount float64 // energy amount, rate, power level, max speed, or turn rate
	Extra  float64 // afterburner speed, acceleration, or available energy
}

// NewQuadrantRegeneratedEvent creates a quadrant-regenerated(quadrant, amount) event.
func NewQuadrantRegeneratedEvent(tick int32, shipID uint32, quadrant int, amount float64) Event {
	return Event{Type: EventQuadrantRegenerated, Tick: tick, ShipID: shipID, Index: quadrant, Amount: amount}
}

// NewQuadrantRestoredEvent creates a quadrant-restored(quadrant) event.
func NewQuadrantRestoredEvent(tick int32, shipID uint32, quadrant int) Event {
	return Event{Type: EventQuadrantRestored, Tick: tick, ShipID: shipID, Index: quadrant}
}

// NewFullyRegeneratedEvent creates a fully-regenerated() event.
func NewFullyRegeneratedEvent(tick int32, shipID uint32) Event {
	return Event{Type: EventFullyRegenerated, Tick: tick, ShipID: shipID, Index: -1}
}

// NewRegenRateChangedEvent creates a regen-rate-changed(quadrant, rate) event.
func NewRegenRateChangedEvent(tick int32, shipID uint32, quadrant int, rate float64) Event {
	return Event{Type: EventRegenRateChanged, Tick: tick, ShipID: shipID, Index: quadrant, Amount: rate}
}

// NewPowerChangedEvent creates a power-changed(level) event.
func NewPowerChangedEvent(tick int32, shipID uint32, level float64) Event {
	return Event{Type: EventPowerChanged, Tick: tick, ShipID: shipID, Index: -1, Amount: level}
}

// NewSpeedScalingUpdatedEvent creates a speed-scaling-updated(max_speed, afterburner_speed) event.
func NewSpeedScalingUpdatedEvent(tick int32, shipID uint32, maxSpeed, afterburnerSpeed float64) Event {
	return Event{Type: EventSpeedScalingUpdated, Tick: tick, ShipID: shipID, Index: -1, Amount: maxSpeed, Extra: afterburnerSpeed}
}

// NewManeuverabilityChangedEvent creates a maneuverability-changed(turn_rate, acceleration) event.
func NewManeuverabilityChangedEvent(tick int32, shipID uint32, turnRate, acceleration float64) Event {
	return Event{Type: EventManeuverabilityChanged, Tick: tick, ShipID: shipID, Index: -1, Amount: turnRate, Extra: acceleration}
}

// NewAfterburnerEfficiencyChangedEvent creates an afterburner-efficiency-changed(eff) event.
func NewAfterburnerEfficiencyChangedEvent(tick int32, shipID uint32, eff float64) Event {
	return Event{Type: EventAfterburnerEfficiencyChanged, Tick: tick, ShipID: shipID, Index: -1, Amount: eff}
}

// NewEnergyConsumedEvent creates an energy-consumed(bank, amount) event.
func NewEnergyConsumedEvent(tick int32, shipID uint32, bank int, amount float64) Event {
	return Event{Type: EventEnergyConsumed, Tick: tick, ShipID: shipID, Index: bank, Amount: amount}
}

// NewEnergyInsufficientEvent creates an energy-insufficient(bank, required, available) event.
func NewEnergyInsufficientEvent(tick int32, shipID uint32, bank int, required, available float64) Event {
	return Event{Type: EventEnergyInsufficient, Tick: tick, ShipID: shipID, Index: bank, Amount: required, Extra: available}
}

// NewAllocationChangedEvent creates an allocation-changed(available) event.
func NewAllocationChangedEvent(tick int32, shipID uint32, available float64) Event {
	return Event{Type: EventAllocationChanged, Tick: tick, ShipID: shipID, Index: -1, Amount: available}
}

// NewChargingCompleteEvent creates a charging-complete(bank) event.
func NewChargingCompleteEvent(tick int32, shipID uint32, bank int) Event {
	return Event{Type: EventChargingComplete, Tick: tick, ShipID: shipID, Index: bank}
}

// Queue buffers events emitted during a tick until the owner drains them.
type Queue struct {
	events []Event
}

// Emit appends an event to the queue.
func (q *Queue) Emit(ev Event) {
	q.events = append(q.events, ev)
}

// Drain returns the buffered events and resets the queue.
// The returned slice is only valid until the next Emit.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = q.events[:0]
	return out
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}
