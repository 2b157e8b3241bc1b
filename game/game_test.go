package game

import (
	"math"
	"strings"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/helm/components"
	"github.com/pthm-cable/helm/config"
	"github.com/pthm-cable/helm/systems"
	"github.com/pthm-cable/helm/telemetry"
)

var testInitDone bool

// ensureInit makes sure config and the tuning cache are ready.
func ensureInit() {
	if !testInitDone {
		config.MustInit("")
		systems.InitTuningCache()
		testInitDone = true
	}
}

// testPower is a fixed-split coordinator for tests.
type testPower struct {
	alloc [3]float64
}

func (p *testPower) EffectiveAllocation(_ uint32, sub components.Subsystem) float64 {
	return p.alloc[sub]
}

// testDamage is a mutable damage model for tests.
type testDamage struct {
	efficiency [3]float64
	engineMod  float64
}

func (d *testDamage) SubsystemEfficiency(_ uint32, sub components.Subsystem) float64 {
	return d.efficiency[sub]
}

func (d *testDamage) EngineDamageModifier(_ uint32) float64 {
	return d.engineMod
}

func newTestGame(t *testing.T) (*Game, *testPower, *testDamage) {
	t.Helper()
	ensureInit()

	g, err := NewGameWithOptions(Options{})
	if err != nil {
		t.Fatalf("creating game: %v", err)
	}

	power := &testPower{alloc: [3]float64{0.5, 0.3, 0.2}}
	damage := &testDamage{efficiency: [3]float64{1, 1, 1}, engineMod: 1}
	g.SetPowerSource(power)
	g.SetDamageModel(damage)
	return g, power, damage
}

// stepSeconds advances the game by whole seconds of simulation time.
func stepSeconds(g *Game, seconds float64) {
	g.StepN(int(seconds/g.DT() + 0.5))
}

func TestCreateShip_BindsClassConfig(t *testing.T) {
	g, _, _ := newTestGame(t)

	ship := g.CreateShip("alpha", "capital")
	status, ok := g.ShipStatus(ship)
	if !ok {
		t.Fatal("expected status for live ship")
	}

	class := config.Cfg().Class("capital")
	if status.Class != "capital" {
		t.Errorf("class %q, want capital", status.Class)
	}
	for i, quad := range status.Shields.Quadrants {
		if quad.Max != class.ShieldMax || quad.Current != class.ShieldMax {
			t.Errorf("quadrant %d: %f/%f, want full at %f", i, quad.Current, quad.Max, class.ShieldMax)
		}
	}
	if status.Weapons.Capacity != class.WeaponCapacity {
		t.Errorf("weapon capacity %f, want %f", status.Weapons.Capacity, class.WeaponCapacity)
	}
	if status.Weapons.Available != class.WeaponCapacity {
		t.Error("weapon pool should start full")
	}
	if len(status.Weapons.Banks) != len(class.Mounts) {
		t.Errorf("%d banks, want %d", len(status.Weapons.Banks), len(class.Mounts))
	}
}

func TestCreateShip_UnknownClassFallsBack(t *testing.T) {
	g, _, _ := newTestGame(t)

	ship := g.CreateShip("mystery", "no-such-class")
	status, ok := g.ShipStatus(ship)
	if !ok {
		t.Fatal("expected status for live ship")
	}
	if status.Class != config.Cfg().Classes[0].Name {
		t.Errorf("class %q, want fallback %q", status.Class, config.Cfg().Classes[0].Name)
	}
}

func TestStep_NoOpWithoutCollaborators(t *testing.T) {
	ensureInit()
	g, err := NewGameWithOptions(Options{})
	if err != nil {
		t.Fatalf("creating game: %v", err)
	}

	ship := g.CreateShip("lonely", "fighter")
	absorbed := g.ApplyShieldDamage(ship, 0, 40)
	if absorbed != 40 {
		t.Fatalf("damage absorbed %f, want 40", absorbed)
	}

	stepSeconds(g, 10)

	status, _ := g.ShipStatus(ship)
	if status.Shields.Quadrants[0].Current != status.Shields.Quadrants[0].Max-40 {
		t.Errorf("shields regenerated without a power source: %f", status.Shields.Quadrants[0].Current)
	}
	if status.Engine.PowerLevel != 0 {
		t.Errorf("engine picked up power without a coordinator: %f", status.Engine.PowerLevel)
	}
}

func TestStep_ShieldsRegenerateAfterDelay(t *testing.T) {
	g, _, _ := newTestGame(t)

	ship := g.CreateShip("beta", "fighter")
	g.ApplyShieldDamage(ship, 1, 50)

	// Fighter delay is 2s; at 1s nothing should have come back
	stepSeconds(g, 1)
	status, _ := g.ShipStatus(ship)
	if status.Shields.Quadrants[1].Current > status.Shields.Quadrants[1].Max-50 {
		t.Errorf("quadrant regenerated during damage delay: %f", status.Shields.Quadrants[1].Current)
	}

	stepSeconds(g, 10)
	status, _ = g.ShipStatus(ship)
	if status.Shields.Quadrants[1].Current <= status.Shields.Quadrants[1].Max-50 {
		t.Error("quadrant should regenerate once the delay expires")
	}
}

func TestStep_SizeClassDamageDelays(t *testing.T) {
	g, _, _ := newTestGame(t)
	cfg := config.Cfg()

	fighter := g.CreateShip("f", "fighter")
	capital := g.CreateShip("c", "capital")

	g.ApplyShieldDamage(fighter, 0, 10)
	g.ApplyShieldDamage(capital, 0, 10)

	fs, _ := g.ShipStatus(fighter)
	cs, _ := g.ShipStatus(capital)
	if fs.Shields.Quadrants[0].DamageTimer != cfg.Shields.FighterDelay {
		t.Errorf("fighter delay %f, want %f", fs.Shields.Quadrants[0].DamageTimer, cfg.Shields.FighterDelay)
	}
	if cs.Shields.Quadrants[0].DamageTimer != cfg.Shields.CapitalDelay {
		t.Errorf("capital delay %f, want %f", cs.Shields.Quadrants[0].DamageTimer, cfg.Shields.CapitalDelay)
	}
}

func TestStep_EnginePerformanceTracksAllocation(t *testing.T) {
	g, power, _ := newTestGame(t)
	power.alloc = [3]float64{0, 1.0, 0}

	ship := g.CreateShip("gamma", "fighter")
	g.Step()

	status, _ := g.ShipStatus(ship)
	class := config.Cfg().Class("fighter")
	if status.Engine.PowerLevel != 1.0 {
		t.Errorf("power level %f, want 1.0", status.Engine.PowerLevel)
	}
	if status.Engine.MaxSpeed != class.MaxSpeed {
		t.Errorf("max speed %f, want base %f", status.Engine.MaxSpeed, class.MaxSpeed)
	}

	power.alloc[components.SubsystemEngines] = 0
	g.Step()
	status, _ = g.ShipStatus(ship)
	if math.Abs(status.Engine.MaxSpeed-class.MaxSpeed*0.10) > 1e-9 {
		t.Errorf("max speed at zero power %f, want %f", status.Engine.MaxSpeed, class.MaxSpeed*0.10)
	}
}

func TestFireWeapon_DrainsPoolAndRegenerates(t *testing.T) {
	g, power, _ := newTestGame(t)
	power.alloc = [3]float64{0, 0, 0.8}

	ship := g.CreateShip("delta", "fighter")
	g.Step()

	before, _ := g.ShipStatus(ship)
	if !g.FireWeapon(ship, 0, 1) {
		t.Fatal("full pool should fire")
	}
	after, _ := g.ShipStatus(ship)
	spent := before.Weapons.Available - after.Weapons.Available
	if math.Abs(spent-after.Weapons.Banks[0].EnergyPerShot) > 1e-6 {
		t.Errorf("spent %f, want one shot at %f", spent, after.Weapons.Banks[0].EnergyPerShot)
	}

	stepSeconds(g, 5)
	regen, _ := g.ShipStatus(ship)
	if regen.Weapons.Available <= after.Weapons.Available {
		t.Error("pool should regenerate over time")
	}
}

func TestEmergencyShieldRegen_RevertsAfterDuration(t *testing.T) {
	g, _, _ := newTestGame(t)

	ship := g.CreateShip("epsilon", "fighter")
	g.ApplyShieldDamage(ship, 0, 50)
	g.ActivateEmergencyShieldRegen(ship, 2.0)

	status, _ := g.ShipStatus(ship)
	for i, quad := range status.Shields.Quadrants {
		if quad.State != components.RegenEmergency.String() {
			t.Errorf("quadrant %d state %q, want emergency", i, quad.State)
		}
	}

	stepSeconds(g, 3)
	status, _ = g.ShipStatus(ship)
	for i, quad := range status.Shields.Quadrants {
		if quad.State != components.RegenNormal.String() {
			t.Errorf("quadrant %d state %q, want normal after revert", i, quad.State)
		}
	}
}

func TestEmergencyPowerBoost_RestoresModifier(t *testing.T) {
	g, _, damage := newTestGame(t)
	damage.engineMod = 0.5

	ship := g.CreateShip("zeta", "fighter")
	g.Step() // pick up the degraded modifier

	g.ApplyEmergencyPowerBoost(ship, 1.6, 2.0)
	g.Step()

	boosted, _ := g.ShipStatus(ship)
	if !boosted.Engine.BoostActive {
		t.Fatal("boost should be active")
	}

	stepSeconds(g, 3)
	restored, _ := g.ShipStatus(ship)
	if restored.Engine.BoostActive {
		t.Error("boost should have reverted")
	}

	// Modifier back to external 0.5: level = 0.3 * 1.0 * 0.5
	wantLevel := 0.3 * 0.5
	if math.Abs(restored.Engine.PowerLevel-wantLevel) > 1e-9 {
		t.Errorf("power level after revert %f, want %f", restored.Engine.PowerLevel, wantLevel)
	}
}

func TestCommands_SafeOnDeadEntity(t *testing.T) {
	g, _, _ := newTestGame(t)

	ship := g.CreateShip("ghost", "fighter")
	g.RemoveShip(ship)

	if got := g.ApplyShieldDamage(ship, 0, 10); got != 0 {
		t.Errorf("damage on dead ship returned %f", got)
	}
	if g.FireWeapon(ship, 0, 1) {
		t.Error("dead ship fired")
	}
	if g.CanWeaponFire(ship, 0) {
		t.Error("dead ship can fire")
	}
	if g.IsAfterburnerViable(ship) {
		t.Error("dead ship has a viable afterburner")
	}
	if _, ok := g.ShipStatus(ship); ok {
		t.Error("dead ship has status")
	}
	// These must simply not panic
	g.ActivateEmergencyShieldRegen(ship, 1.0)
	g.ApplyEmergencyPowerBoost(ship, 1.5, 1.0)
	g.SetShieldEfficiency(ship, 0.5)
	g.Step()
}

func TestCommands_InvalidIndicesNoOp(t *testing.T) {
	g, _, _ := newTestGame(t)

	ship := g.CreateShip("eta", "fighter")
	if got := g.ApplyShieldDamage(ship, 9, 10); got != 0 {
		t.Errorf("out-of-range quadrant absorbed %f", got)
	}
	if g.FireWeapon(ship, 99, 1) {
		t.Error("out-of-range bank fired")
	}
	if g.CompleteBurstFire(ship, 99, 1) != 0 {
		t.Error("out-of-range bank refunded energy")
	}
}

func TestRegisterSink_ReceivesEvents(t *testing.T) {
	g, power, _ := newTestGame(t)
	power.alloc = [3]float64{1.0, 0, 0}

	var seen []telemetry.EventType
	g.RegisterSink(func(ev telemetry.Event) {
		seen = append(seen, ev.Type)
	})

	ship := g.CreateShip("theta", "fighter")
	g.ApplyShieldDamage(ship, 0, 30)
	stepSeconds(g, 5)

	var regen, restored bool
	for _, typ := range seen {
		switch typ {
		case telemetry.EventQuadrantRegenerated:
			regen = true
		case telemetry.EventQuadrantRestored:
			restored = true
		}
	}
	if !regen {
		t.Error("sink never saw quadrant-regenerated")
	}
	if !restored {
		t.Error("sink never saw quadrant-restored")
	}
}

func TestDebugStatus_Readable(t *testing.T) {
	g, _, _ := newTestGame(t)

	ship := g.CreateShip("iota", "bomber")
	g.Step()

	dump := g.DebugStatus(ship)
	for _, want := range []string{"iota", "bomber", "shields", "engines", "weapons"} {
		if !strings.Contains(dump, want) {
			t.Errorf("debug dump missing %q:\n%s", want, dump)
		}
	}

	var dead ecs.Entity
	if got := g.DebugStatus(dead); got != "<dead ship>" {
		t.Errorf("dead entity dump %q", got)
	}
}
