package insurance

import (
	"fmt"
	"math"

	"courier-trust/internal/pkg/errs"
)

// PlanTier identifies one of the three static insurance plans.
type PlanTier int

const (
	// PlanTierUnknown represents an invalid or undefined plan tier.
	PlanTierUnknown PlanTier = iota

	// PlanTierBasic is the cheapest plan with the lowest coverage ceiling.
	PlanTierBasic

	// PlanTierStandard is the mid-range plan.
	PlanTierStandard

	// PlanTierPremium is the full-coverage plan.
	PlanTierPremium
)

// Plan holds the pricing parameters of one catalog tier.
// Monetary amounts are in minor currency units.
type Plan struct {
	Tier            PlanTier
	PremiumPercent  float64
	MinPremium      int64
	CoveragePercent float64
	MaxCoverage     int64
}

// getPlanTierStrings returns a map of PlanTier values to their string representations.
func getPlanTierStrings() map[PlanTier]string {
	return map[PlanTier]string{
		PlanTierUnknown:  "unknown",
		PlanTierBasic:    "basic",
		PlanTierStandard: "standard",
		PlanTierPremium:  "premium",
	}
}

// getPlanCatalog returns the immutable plan catalog keyed by tier.
func getPlanCatalog() map[PlanTier]Plan {
	return map[PlanTier]Plan{
		PlanTierBasic: {
			Tier:            PlanTierBasic,
			PremiumPercent:  3,
			MinPremium:      500,
			CoveragePercent: 70,
			MaxCoverage:     100_000,
		},
		PlanTierStandard: {
			Tier:            PlanTierStandard,
			PremiumPercent:  5,
			MinPremium:      1_000,
			CoveragePercent: 80,
			MaxCoverage:     200_000,
		},
		PlanTierPremium: {
			Tier:            PlanTierPremium,
			PremiumPercent:  8,
			MinPremium:      2_000,
			CoveragePercent: 100,
			MaxCoverage:     500_000,
		},
	}
}

// PlanFor returns the catalog entry for the given tier.
func PlanFor(tier PlanTier) (Plan, error) {
	plan, ok := getPlanCatalog()[tier]
	if !ok {
		return Plan{}, errs.NewValueIsInvalidErrorWithCause(
			"planTier", fmt.Errorf("%d is not a valid plan tier", tier))
	}
	return plan, nil
}

// PlanTierFromString parses a persisted tier name back into a PlanTier value.
func PlanTierFromString(s string) (PlanTier, error) {
	for tier, name := range getPlanTierStrings() {
		if tier != PlanTierUnknown && name == s {
			return tier, nil
		}
	}
	return PlanTierUnknown, errs.NewValueIsInvalidErrorWithCause(
		"planTier", fmt.Errorf("%q is not a valid plan tier", s))
}

// Validate checks if the PlanTier value is a catalog tier.
func (t PlanTier) Validate() error {
	_, err := PlanFor(t)
	return err
}

// String returns the lowercase tier name used for persistence and display.
func (t PlanTier) String() string {
	if str, ok := getPlanTierStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Quote is the result of pricing a declared value against a plan.
type Quote struct {
	Premium  int64
	Coverage int64
}

// Price computes the premium and coverage for a declared value under the
// given plan tier. It is deterministic and has no side effects:
//
//	premium  = max(round(declaredValue * premiumPercent/100), minPremium)
//	coverage = min(round(declaredValue * coveragePercent/100), maxCoverage)
//
// Returns an error when the declared value is not positive or the tier is
// not in the catalog.
func Price(declaredValue int64, tier PlanTier) (Quote, error) {
	if declaredValue <= 0 {
		return Quote{}, errs.NewValueIsInvalidError("declaredValue")
	}

	plan, err := PlanFor(tier)
	if err != nil {
		return Quote{}, err
	}

	premium := int64(math.Round(float64(declaredValue) * plan.PremiumPercent / 100))
	if premium < plan.MinPremium {
		premium = plan.MinPremium
	}

	coverage := int64(math.Round(float64(declaredValue) * plan.CoveragePercent / 100))
	if coverage > plan.MaxCoverage {
		coverage = plan.MaxCoverage
	}

	return Quote{Premium: premium, Coverage: coverage}, nil
}
