package scoring

import (
	"fmt"
	"math"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// Score computes the awarded points and impact metrics for one activity
// submission. It is a pure function: no I/O, no shared state, identical
// output for identical input. Safe for any number of concurrent callers.
//
// Points are the sum of the per-type base award, flat photo/location bonuses
// and a quantity-scaled bonus, clamped to [0, MaxPointsPerActivity]. Impact
// metrics scale unbounded with quantity; they are informational, not currency.
func Score(sub domain.ActivitySubmission) (domain.ScoredActivity, error) {
	if err := Validate(sub); err != nil {
		return domain.ScoredActivity{}, err
	}

	points := basePoints[sub.Type]
	if sub.HasPhoto {
		points += PhotoBonus
	}
	if sub.HasLocation {
		points += LocationBonus
	}
	points += int(math.Floor(sub.Quantity * quantityMultipliers[sub.Type]))

	if points > MaxPointsPerActivity {
		points = MaxPointsPerActivity
	}
	if points < 0 {
		points = 0
	}

	return domain.ScoredActivity{
		ActivitySubmission: sub,
		Points:             points,
		Impact:             impactFor(sub.Type, sub.Quantity),
	}, nil
}

// Validate checks the submission for structural validity: recognized type,
// recognized region and a non-negative, finite quantity. Validation failures
// are deterministic and must not be retried.
func Validate(sub domain.ActivitySubmission) error {
	if !sub.Type.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownActivityType, sub.Type)
	}
	if sub.Quantity < 0 || math.IsNaN(sub.Quantity) || math.IsInf(sub.Quantity, 0) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidQuantity, sub.Quantity)
	}
	if !domain.KnownRegion(sub.Region) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownRegion, sub.Region)
	}
	return nil
}

// impactFor converts quantity into impact metrics for the given type.
// The switch is exhaustive over the closed ActivityType set.
func impactFor(t domain.ActivityType, quantity float64) domain.ImpactMetrics {
	var impact domain.ImpactMetrics

	switch t {
	case domain.ActivityTrash:
		impact.WasteKg = quantity * WastePerBagKg
		impact.CO2SavedKg = quantity * CO2PerBagKg
	case domain.ActivityTrees:
		impact.TreesCount = int(math.Floor(quantity))
		impact.CO2SavedKg = quantity * CO2PerTreeKg
	case domain.ActivityMobility:
		impact.DistanceKm = quantity
		impact.CO2SavedKg = quantity * CO2PerKmKg
	case domain.ActivityWater:
		impact.CO2SavedKg = quantity * CO2PerLiterKg
	case domain.ActivityEnergy:
		impact.CO2SavedKg = quantity * CO2PerKWhKg
	}

	return impact
}
