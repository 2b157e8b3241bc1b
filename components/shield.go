package components

// QuadrantCount is the number of directional shield zones per ship.
const QuadrantCount = 4

// Quadrant indices (front/rear/left/right).
const (
	QuadrantFront = iota
	QuadrantRear
	QuadrantLeft
	QuadrantRight
)

// ShieldQuadrant is one directional shield zone.
// Current stays within [0, Max]; DamageTimer blocks regeneration while > 0.
type ShieldQuadrant struct {
	Current     float64
	Max         float64
	State       RegenState
	DamageTimer float64 // seconds until regeneration resumes after damage
	LastRate    float64 // regeneration rate applied last tick, for change detection
}

// Ratio returns Current/Max, or 0 if Max is not positive.
func (q *ShieldQuadrant) Ratio() float64 {
	if q.Max <= 0 {
		return 0
	}
	return q.Current / q.Max
}

// ShieldArray holds the per-ship shield state: four quadrants plus the
// parameters bound at ship creation.
type ShieldArray struct {
	Quadrants [QuadrantCount]ShieldQuadrant

	BaseRate    float64 // energy per second per quadrant before multipliers
	DamageDelay float64 // post-damage regeneration delay for this ship's size class
	Efficiency  float64 // damage-derived subsystem efficiency in [0,1]
}

// AtFullStrength reports whether every quadrant is at its maximum.
func (sh *ShieldArray) AtFullStrength() bool {
	for i := range sh.Quadrants {
		if sh.Quadrants[i].Current < sh.Quadrants[i].Max {
			return false
		}
	}
	return true
}

// TotalCurrent returns the summed energy across all quadrants.
func (sh *ShieldArray) TotalCurrent() float64 {
	var total float64
	for i := range sh.Quadrants {
		total += sh.Quadrants[i].Current
	}
	return total
}
