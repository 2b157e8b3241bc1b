// Package game owns the simulation world and the per-tick update loop.
package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/helm/components"
	"github.com/pthm-cable/helm/config"
	"github.com/pthm-cable/helm/systems"
	"github.com/pthm-cable/helm/telemetry"
)

// PowerSource is the external power-budgeting coordinator. It decides, per
// subsystem, what fraction of total power (0..1) is committed. Queried
// fresh each tick; the simulation never writes back.
type PowerSource interface {
	EffectiveAllocation(shipID uint32, sub components.Subsystem) float64
}

// DamageModel is the external subsystem-health model supplying efficiency
// scalars (0..1) per subsystem, plus the separate engine damage modifier.
type DamageModel interface {
	SubsystemEfficiency(shipID uint32, sub components.Subsystem) float64
	EngineDamageModifier(shipID uint32) float64
}

// EventSink receives every subsystem event as it is drained.
type EventSink func(telemetry.Event)

// Options configures a Game.
type Options struct {
	StatsWindowSec float64
	OutputDir      string
	LogStats       bool
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World

	shipMapper *ecs.Map5[
		components.ShipInfo,
		components.ShieldArray,
		components.EngineState,
		components.WeaponPool,
		components.PowerLinks,
	]
	shipFilter *ecs.Filter5[
		components.ShipInfo,
		components.ShieldArray,
		components.EngineState,
		components.WeaponPool,
		components.PowerLinks,
	]

	// Individual component mappers for lookups
	infoMap   *ecs.Map1[components.ShipInfo]
	shieldMap *ecs.Map1[components.ShieldArray]
	engineMap *ecs.Map1[components.EngineState]
	weaponMap *ecs.Map1[components.WeaponPool]
	linksMap  *ecs.Map1[components.PowerLinks]

	// External collaborators; either may be nil, in which case affected
	// ship ticks no-op rather than fault.
	power  PowerSource
	damage DamageModel

	sched     *systems.Scheduler
	queue     telemetry.Queue
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	sinks     []EventSink

	logStats bool
	dt       float64
	tick     int32
	nextID   uint32
}

// NewGame creates a game with default options.
func NewGame() *Game {
	g, err := NewGameWithOptions(Options{})
	if err != nil {
		// Only output setup can fail, and default options disable it.
		panic(err)
	}
	return g
}

// NewGameWithOptions creates a new game instance.
// Config must be initialized before calling this.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	g := &Game{
		world: world,
		shipMapper: ecs.NewMap5[
			components.ShipInfo,
			components.ShieldArray,
			components.EngineState,
			components.WeaponPool,
			components.PowerLinks,
		](world),
		shipFilter: ecs.NewFilter5[
			components.ShipInfo,
			components.ShieldArray,
			components.EngineState,
			components.WeaponPool,
			components.PowerLinks,
		](world),
		infoMap:   ecs.NewMap1[components.ShipInfo](world),
		shieldMap: ecs.NewMap1[components.ShieldArray](world),
		engineMap: ecs.NewMap1[components.EngineState](world),
		weaponMap: ecs.NewMap1[components.WeaponPool](world),
		linksMap:  ecs.NewMap1[components.PowerLinks](world),
		sched:     systems.NewScheduler(),
		collector: telemetry.NewCollector(statsWindow, cfg.Physics.DT),
		output:    output,
		logStats:  opts.LogStats,
		dt:        cfg.Physics.DT,
	}
	return g, nil
}

// SetPowerSource binds the external power coordinator.
func (g *Game) SetPowerSource(p PowerSource) {
	g.power = p
}

// SetDamageModel binds the external subsystem-health model.
func (g *Game) SetDamageModel(d DamageModel) {
	g.damage = d
}

// RegisterSink adds an event sink. Sinks run synchronously during the drain
// at the end of each tick.
func (g *Game) RegisterSink(sink EventSink) {
	g.sinks = append(g.sinks, sink)
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// DT returns the fixed simulation step in seconds.
func (g *Game) DT() float64 {
	return g.dt
}

// Alive reports whether the entity still exists in the world.
func (g *Game) Alive(e ecs.Entity) bool {
	return g.world.Alive(e)
}

// Close flushes telemetry output.
func (g *Game) Close() error {
	return g.output.Close()
}
