package systems

import "github.com/pthm-cable/helm/config"

// Cached config values for hot paths. Initialized once via InitTuningCache
// after config.Init; the per-tick controllers must not hit the config map.
var (
	cacheInitialized bool

	cachedPoolRegenFraction float64
	cachedEmergencyReserve  float64
	cachedLowEnergyFraction float64
	cachedBurstCooldown     float64
)

// InitTuningCache loads weapon tuning values from config into package-level
// caches. Call once after config.Init.
func InitTuningCache() {
	cfg := config.Cfg()
	cachedPoolRegenFraction = cfg.Weapons.PoolRegenFraction
	cachedEmergencyReserve = cfg.Weapons.EmergencyReserve
	cachedLowEnergyFraction = cfg.Weapons.LowEnergyFraction
	cachedBurstCooldown = cfg.Weapons.BurstCooldownPerShot
	cacheInitialized = true
}

// GetCachedEmergencyReserve returns the cached emergency reserve fraction.
func GetCachedEmergencyReserve() float64 {
	return cachedEmergencyReserve
}
