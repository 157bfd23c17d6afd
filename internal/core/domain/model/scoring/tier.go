package scoring

import (
	"fmt"

	"courier-trust/internal/pkg/errs"
)

// Tier represents the trust classification derived from a courier's overall
// reliability score. Tiers are ordered: Bronze < Silver < Gold < Platinum < Diamond.
//
// Tier is a pure, monotonic function of the overall score with fixed
// breakpoints; it never moves independently of the score.
type Tier int

const (
	// TierUnknown represents an invalid or undefined tier.
	// This value (0) helps catch uninitialized Tier values.
	TierUnknown Tier = iota

	// TierBronze is the entry tier for scores below 41.
	TierBronze

	// TierSilver covers scores 41 to 60.
	TierSilver

	// TierGold covers scores 61 to 75.
	TierGold

	// TierPlatinum covers scores 76 to 90.
	TierPlatinum

	// TierDiamond is the top tier for scores 91 and above.
	TierDiamond
)

// Score breakpoints for tier derivation. Each bound is inclusive.
const (
	diamondMinScore  = 91
	platinumMinScore = 76
	goldMinScore     = 61
	silverMinScore   = 41
)

// getTierStrings returns a map of Tier values to their string representations.
// All tiers are included for string conversion.
func getTierStrings() map[Tier]string {
	return map[Tier]string{
		TierUnknown:  "unknown",
		TierBronze:   "bronze",
		TierSilver:   "silver",
		TierGold:     "gold",
		TierPlatinum: "platinum",
		TierDiamond:  "diamond",
	}
}

// getValidTierStrings returns a map of only valid Tier values.
// Only valid tiers are included to support validation.
func getValidTierStrings() map[Tier]string {
	//nolint:exhaustive // TierUnknown is intentionally excluded as it's invalid
	return map[Tier]string{
		TierBronze:   "bronze",
		TierSilver:   "silver",
		TierGold:     "gold",
		TierPlatinum: "platinum",
		TierDiamond:  "diamond",
	}
}

// TierForScore derives the trust tier from an overall score.
// Breakpoints are inclusive: 91 is diamond, 90 is platinum, 76 is platinum,
// 75 is gold, 61 is gold, 60 is silver, 41 is silver, 40 is bronze.
func TierForScore(score int) Tier {
	switch {
	case score >= diamondMinScore:
		return TierDiamond
	case score >= platinumMinScore:
		return TierPlatinum
	case score >= goldMinScore:
		return TierGold
	case score >= silverMinScore:
		return TierSilver
	default:
		return TierBronze
	}
}

// TierFromString parses a persisted tier name back into a Tier value.
// Returns an error for unrecognized names.
func TierFromString(s string) (Tier, error) {
	for tier, name := range getValidTierStrings() {
		if name == s {
			return tier, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause(
		"tier", fmt.Errorf("%q is not a valid tier", s))
}

// Validate checks if the Tier value is valid.
// Valid tiers are bronze through diamond; TierUnknown and out-of-range values are invalid.
func (t Tier) Validate() error {
	if _, ok := getValidTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"tier", fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

// String returns the lowercase tier name used for persistence and display.
// Returns "unknown" for invalid tier values.
func (t Tier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "unknown"
}
