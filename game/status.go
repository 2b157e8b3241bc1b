package game

import (
	"fmt"
	"strings"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/helm/components"
	"github.com/pthm-cable/helm/systems"
)

// QuadrantStatus is a read-only snapshot of one shield quadrant.
type QuadrantStatus struct {
	Index       int
	Current     float64
	Max         float64
	State       string
	DamageTimer float64
}

// ShieldStatus is a read-only snapshot of a ship's shields.
type ShieldStatus struct {
	Quadrants      [components.QuadrantCount]QuadrantStatus
	Total          float64
	AtFullStrength bool
}

// EngineStatus is a read-only snapshot of a ship's engine performance.
type EngineStatus struct {
	PowerLevel            float64
	State                 string
	MaxSpeed              float64
	AfterburnerSpeed      float64
	Acceleration          float64
	TurnRate              float64
	AfterburnerEfficiency float64
	AfterburnerViable     bool
	BoostActive           bool
}

// BankStatus is a read-only snapshot of one weapon bank.
type BankStatus struct {
	Index         int
	Name          string
	State         string
	EnergyPerShot float64
	Reserved      float64
	RechargeTimer float64
}

// WeaponStatus is a read-only snapshot of a ship's weapon energy pool.
type WeaponStatus struct {
	Capacity  float64
	Available float64
	Banks     []BankStatus
}

// ShipStatus aggregates the subsystem snapshots for one ship.
type ShipStatus struct {
	ID      uint32
	Name    string
	Class   string
	Shields ShieldStatus
	Engine  EngineStatus
	Weapons WeaponStatus
}

// ShipStatus returns a snapshot of the ship's subsystem state.
// The second return value is false for dead entities.
func (g *Game) ShipStatus(e ecs.Entity) (ShipStatus, bool) {
	if !g.world.Alive(e) {
		return ShipStatus{}, false
	}
	info := g.infoMap.Get(e)
	shields := g.shieldMap.Get(e)
	engine := g.engineMap.Get(e)
	weapons := g.weaponMap.Get(e)
	if info == nil || shields == nil || engine == nil || weapons == nil {
		return ShipStatus{}, false
	}

	status := ShipStatus{
		ID:    info.ID,
		Name:  info.Name,
		Class: info.Class,
	}

	for i := range shields.Quadrants {
		quad := &shields.Quadrants[i]
		status.Shields.Quadrants[i] = QuadrantStatus{
			Index:       i,
			Current:     quad.Current,
			Max:         quad.Max,
			State:       quad.State.String(),
			DamageTimer: quad.DamageTimer,
		}
	}
	status.Shields.Total = shields.TotalCurrent()
	status.Shields.AtFullStrength = shields.AtFullStrength()

	status.Engine = EngineStatus{
		PowerLevel:            engine.PowerLevel,
		State:                 engine.State.String(),
		MaxSpeed:              engine.CurrentMaxSpeed,
		AfterburnerSpeed:      engine.CurrentAfterburnerSpeed,
		Acceleration:          engine.CurrentAcceleration,
		TurnRate:              engine.CurrentTurnRate,
		AfterburnerEfficiency: engine.AfterburnerEfficiency,
		AfterburnerViable:     systems.IsAfterburnerViable(engine),
		BoostActive:           engine.BoostActive,
	}

	status.Weapons = WeaponStatus{
		Capacity:  weapons.Capacity,
		Available: weapons.Available,
		Banks:     make([]BankStatus, len(weapons.Banks)),
	}
	for i := range weapons.Banks {
		b := &weapons.Banks[i]
		status.Weapons.Banks[i] = BankStatus{
			Index:         i,
			Name:          b.Name,
			State:         b.State.String(),
			EnergyPerShot: b.EnergyPerShot,
			Reserved:      b.Reserved,
			RechargeTimer: b.RechargeTimer,
		}
	}

	return status, true
}

// DebugStatus renders a human-readable dump of a ship's subsystem state.
// The format is for eyeballs and logs, not for machines.
func (g *Game) DebugStatus(e ecs.Entity) string {
	status, ok := g.ShipStatus(e)
	if !ok {
		return "<dead ship>"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "=== %s (%s, id %d) @ tick %d ===\n", status.Name, status.Class, status.ID, g.tick)

	fmt.Fprintf(&sb, "shields: %.1f total", status.Shields.Total)
	if status.Shields.AtFullStrength {
		sb.WriteString(" [full]")
	}
	sb.WriteByte('\n')
	names := [components.QuadrantCount]string{"front", "rear", "left", "right"}
	for i, quad := range status.Shields.Quadrants {
		fmt.Fprintf(&sb, "  %-5s %7.1f/%-7.1f %-9s timer %.2fs\n",
			names[i], quad.Current, quad.Max, quad.State, quad.DamageTimer)
	}

	fmt.Fprintf(&sb, "engines: level %.2f (%s)\n", status.Engine.PowerLevel, status.Engine.State)
	fmt.Fprintf(&sb, "  speed %.1f  ab-speed %.1f  accel %.1f  turn %.2f  ab-eff %.2f viable=%v\n",
		status.Engine.MaxSpeed, status.Engine.AfterburnerSpeed, status.Engine.Acceleration,
		status.Engine.TurnRate, status.Engine.AfterburnerEfficiency, status.Engine.AfterburnerViable)

	fmt.Fprintf(&sb, "weapons: %.1f/%.1f\n", status.Weapons.Available, status.Weapons.Capacity)
	for _, b := range status.Weapons.Banks {
		fmt.Fprintf(&sb, "  [%d] %-12s %-12s %5.1f/shot reserved %.1f timer %.2fs\n",
			b.Index, b.Name, b.State, b.EnergyPerShot, b.Reserved, b.RechargeTimer)
	}

	return sb.String()
}
