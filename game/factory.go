package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/helm/components"
	"github.com/pthm-cable/helm/config"
	"github.com/pthm-cable/helm/systems"
)

// damageDelayFor returns the post-damage regeneration delay for a ship's
// size class. Capitals hold fire-discipline delays far longer than fighters.
func damageDelayFor(cfg *config.Config, mass float64) float64 {
	switch {
	case mass >= cfg.Shields.CapitalMass:
		return cfg.Shields.CapitalDelay
	case mass > cfg.Shields.LargeMass:
		return cfg.Shields.LargeDelay
	default:
		return cfg.Shields.FighterDelay
	}
}

// CreateShip spawns a ship of the named class and binds its subsystem
// controllers to the class's static configuration. Unknown class names fall
// back to the first configured class.
func (g *Game) CreateShip(name, className string) ecs.Entity {
	cfg := config.Cfg()
	class := cfg.Class(className)

	g.nextID++
	info := components.ShipInfo{
		ID:    g.nextID,
		Name:  name,
		Class: class.Name,
		Mass:  class.Mass,
	}

	shields := components.ShieldArray{
		BaseRate:    cfg.Shields.BaseRegenRate,
		DamageDelay: damageDelayFor(cfg, class.Mass),
		Efficiency:  1.0,
	}
	for i := range shields.Quadrants {
		shields.Quadrants[i] = components.ShieldQuadrant{
			Current: class.ShieldMax,
			Max:     class.ShieldMax,
			State:   components.RegenNormal,
		}
	}

	engine := components.EngineState{
		Profile: components.EngineProfile{
			MaxSpeed:         class.MaxSpeed,
			AfterburnerSpeed: class.AfterburnerSpeed,
			Acceleration:     class.Acceleration,
			TurnRate:         class.TurnRate,
		},
		DamageMod: 1.0,
	}

	weapons := components.WeaponPool{
		Capacity:   class.WeaponCapacity,
		Available:  class.WeaponCapacity,
		Efficiency: 1.0,
		Banks:      make([]components.WeaponBank, len(class.Mounts)),
	}
	for i, mount := range class.Mounts {
		weapons.Banks[i] = components.WeaponBank{
			Name:          mount.Name,
			EnergyPerShot: systems.EnergyPerShot(mount.Damage, mount.FireWait, mount.Subtype),
			State:         components.EnergySufficient,
		}
	}

	links := components.PowerLinks{}

	return g.shipMapper.NewEntity(&info, &shields, &engine, &weapons, &links)
}

// RemoveShip destroys a ship and everything bound to it.
func (g *Game) RemoveShip(e ecs.Entity) {
	if !g.world.Alive(e) {
		return
	}
	g.world.RemoveEntity(e)
}
