package scoring

import "github.com/Agbesi-Abi/EcoTrackApi/internal/domain"

// ============================================================================
// Point Awards
// ============================================================================

// MaxPointsPerActivity caps the points a single activity can award. The cap
// bounds reward gaming via inflated quantities; impact metrics stay unclamped.
const MaxPointsPerActivity = 200

// Flat documentation bonuses
const (
	PhotoBonus    = 5
	LocationBonus = 3
)

// basePoints is the fixed per-type base award.
var basePoints = map[domain.ActivityType]int{
	domain.ActivityTrash:    25,
	domain.ActivityTrees:    50,
	domain.ActivityMobility: 20,
	domain.ActivityWater:    15,
	domain.ActivityEnergy:   15,
}

// quantityMultipliers scale the quantity bonus per unit:
// points per bag, tree, km, liter and kWh respectively.
var quantityMultipliers = map[domain.ActivityType]float64{
	domain.ActivityTrash:    8,
	domain.ActivityTrees:    10,
	domain.ActivityMobility: 2,
	domain.ActivityWater:    0.1,
	domain.ActivityEnergy:   3,
}

// ============================================================================
// Impact Conversion Factors
// ============================================================================

// Conversion factors are fixed constants; the engine never reads them from
// configuration at call time.
const (
	// WastePerBagKg is the estimated mass of one collected trash bag.
	WastePerBagKg = 2.0
	// CO2PerBagKg is the estimated CO2 saved per collected bag.
	CO2PerBagKg = 0.5
	// CO2PerTreeKg is the average CO2 a tree absorbs per year (one-year credit).
	CO2PerTreeKg = 21.77
	// CO2PerKmKg is the per-km differential of sustainable transport vs the
	// 0.2 kg/km driving baseline, at the 0.05 kg/km public-transport factor.
	CO2PerKmKg = 0.15
	// CO2PerLiterKg is the indirect CO2 cost of treating one liter of water.
	CO2PerLiterKg = 0.0003
	// CO2PerKWhKg is the Ghana grid emissions factor.
	CO2PerKWhKg = 0.45
)
