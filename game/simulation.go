package game

import (
	"github.com/pthm-cable/helm/components"
	"github.com/pthm-cable/helm/systems"
)

// refreshLinks snapshots the external inputs for one ship. Links are marked
// invalid while either collaborator is missing; invalid links make the
// ship's subsystem tick a no-op.
func (g *Game) refreshLinks(shipID uint32, links *components.PowerLinks) {
	if g.power == nil || g.damage == nil {
		links.Valid = false
		return
	}

	for _, sub := range []components.Subsystem{
		components.SubsystemShields,
		components.SubsystemEngines,
		components.SubsystemWeapons,
	} {
		links.Alloc[sub] = clampFraction(g.power.EffectiveAllocation(shipID, sub))
		links.Efficiency[sub] = clampFraction(g.damage.SubsystemEfficiency(shipID, sub))
	}
	links.DamageMod = clampFraction(g.damage.EngineDamageModifier(shipID))
	links.Valid = true
}

// clampFraction clamps an external input to [0, 1].
func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Step advances the simulation by one fixed tick: deferred reverts first,
// then each ship's three subsystem controllers, then the event drain.
func (g *Game) Step() {
	g.tick++
	g.sched.Tick(g.dt)

	query := g.shipFilter.Query()
	for query.Next() {
		info, shields, engine, weapons, links := query.Get()

		g.refreshLinks(info.ID, links)
		if !links.Valid {
			continue
		}

		// Re-derive shield quadrant states only when the efficiency scalar
		// actually moved; a blanket re-set every tick would wipe emergency
		// regeneration state.
		if e := links.Efficiency[components.SubsystemShields]; e != shields.Efficiency {
			systems.SetShieldEfficiency(shields, e)
		}
		if e := links.Efficiency[components.SubsystemWeapons]; e != weapons.Efficiency {
			systems.SetWeaponEfficiency(weapons, e)
		}

		systems.TickShields(shields, links.Alloc[components.SubsystemShields], g.dt, g.tick, info.ID, &g.queue)
		systems.TickEngine(engine,
			links.Alloc[components.SubsystemEngines],
			links.Efficiency[components.SubsystemEngines],
			links.DamageMod,
			g.tick, info.ID, &g.queue)
		systems.TickWeaponPool(weapons, links.Alloc[components.SubsystemWeapons], g.dt, g.tick, info.ID, &g.queue)
	}

	g.drainEvents()

	if g.collector.ShouldFlush(g.tick) {
		stats := g.collector.Flush(g.tick)
		if g.logStats {
			stats.Log()
		}
		if err := g.output.WriteTelemetry(stats); err != nil {
			Logf("telemetry write failed: %v", err)
		}
	}
}

// StepN advances the simulation by n ticks.
func (g *Game) StepN(n int) {
	for i := 0; i < n; i++ {
		g.Step()
	}
}

// drainEvents feeds buffered events to the collector and registered sinks.
func (g *Game) drainEvents() {
	for _, ev := range g.queue.Drain() {
		g.collector.Record(ev)
		for _, sink := range g.sinks {
			sink(ev)
		}
	}
}
