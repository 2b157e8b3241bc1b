package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pthm-cable/helm/components"
	"github.com/pthm-cable/helm/config"
	"github.com/pthm-cable/helm/game"
	"github.com/pthm-cable/helm/systems"
)

// staticPower is a fixed-split power coordinator used by the demo scenario.
type staticPower struct {
	shields, engines, weapons float64
}

func (p staticPower) EffectiveAllocation(_ uint32, sub components.Subsystem) float64 {
	switch sub {
	case components.SubsystemShields:
		return p.shields
	case components.SubsystemEngines:
		return p.engines
	default:
		return p.weapons
	}
}

// scriptedDamage is a damage model whose efficiency degrades over scripted
// phases, standing in for a real hull/subsystem-health model.
type scriptedDamage struct {
	efficiency [3]float64
	engineMod  float64
}

func (d *scriptedDamage) SubsystemEfficiency(_ uint32, sub components.Subsystem) float64 {
	return d.efficiency[sub]
}

func (d *scriptedDamage) EngineDamageModifier(_ uint32) float64 {
	return d.engineMod
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed for the demo scenario (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 3600, "Stop after N ticks")
	allocShields := flag.Float64("alloc-shields", 0.4, "Power fraction committed to shields")
	allocEngines := flag.Float64("alloc-engines", 0.3, "Power fraction committed to engines")
	allocWeapons := flag.Float64("alloc-weapons", 0.3, "Power fraction committed to weapons")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize cached config values for hot paths
	systems.InitTuningCache()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		LogStats:       *logStats,
	}

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	g.SetPowerSource(staticPower{
		shields: *allocShields,
		engines: *allocEngines,
		weapons: *allocWeapons,
	})
	damage := &scriptedDamage{efficiency: [3]float64{1, 1, 1}, engineMod: 1}
	g.SetDamageModel(damage)

	fighter := g.CreateShip("redline", "fighter")
	capital := g.CreateShip("bastion", "capital")

	slog.Info("starting headless simulation",
		"seed", rngSeed,
		"max_ticks", *maxTicks,
		"alloc_shields", *allocShields,
		"alloc_engines", *allocEngines,
		"alloc_weapons", *allocWeapons,
	)

	dt := g.DT()
	ticksPerSecond := int(1.0/dt + 0.5)

	for i := 0; i < *maxTicks; i++ {
		g.Step()
		tick := int(g.Tick())

		// Incoming fire: a damage pulse on a random fighter quadrant every
		// two seconds, heavier pulses on the capital every five.
		if tick%(2*ticksPerSecond) == 0 {
			quadrant := rng.Intn(components.QuadrantCount)
			absorbed := g.ApplyShieldDamage(fighter, quadrant, 30+rng.Float64()*30)
			slog.Debug("fighter hit", "quadrant", quadrant, "absorbed", absorbed)
		}
		if tick%(5*ticksPerSecond) == 0 {
			quadrant := rng.Intn(components.QuadrantCount)
			g.ApplyShieldDamage(capital, quadrant, 200+rng.Float64()*200)
		}

		// Return fire every half second.
		if tick%(ticksPerSecond/2) == 0 {
			g.FireWeapon(fighter, 0, 1)
			g.FireWeapon(capital, rng.Intn(3), 1)
		}

		// Mid-run emergency: the fighter takes subsystem damage and boosts
		// engines. The shield regen boost comes a second later, after the
		// reduced efficiency has settled in, so it isn't clobbered by the
		// efficiency change.
		if tick == 20*ticksPerSecond {
			damage.efficiency[components.SubsystemShields] = 0.4
			damage.engineMod = 0.5
			g.ApplyEmergencyPowerBoost(fighter, 1.8, 6.0)
			slog.Info("fighter damaged, emergency power engaged", "tick", tick)
		}
		if tick == 21*ticksPerSecond {
			g.ActivateEmergencyShieldRegen(fighter, 8.0)
		}
		if tick == 40*ticksPerSecond {
			damage.efficiency[components.SubsystemShields] = 1.0
			damage.engineMod = 1.0
			slog.Info("fighter repaired", "tick", tick)
		}
	}

	game.Logf("%s", g.DebugStatus(fighter))
	game.Logf("%s", g.DebugStatus(capital))
	slog.Info("simulation finished", "ticks", g.Tick())
}
