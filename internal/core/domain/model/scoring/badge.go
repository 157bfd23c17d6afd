package scoring

import "time"

// Badge identifiers. Badge accrual is additive only: once earned, a badge is
// never removed, and re-earning an already-held badge keeps the original
// earned timestamp (the repository upserts by badge id).
const (
	BadgeFirstDelivery = "first_delivery"
	BadgeCenturion     = "centurion"
	BadgeFlawless      = "flawless"
	BadgeVeteran       = "veteran"
	BadgeVerified      = "verified_courier"
)

const (
	centurionDeliveries = 100
	flawlessMinRated    = 10
	flawlessMinRating   = 4.8
	veteranTenureMonths = 12
)

// Badge is an achievement earned by a courier. Badges are value objects
// attached to the ReliabilityScore aggregate.
type Badge struct {
	// ID is the stable badge slug used as the upsert key.
	ID string
	// Name is the display name shown to couriers.
	Name string
	// Description explains how the badge was earned.
	Description string
	// Icon is the presentation-layer icon identifier.
	Icon string
	// EarnedAt records when the badge was first earned.
	EarnedAt time.Time
}

// accrueBadges returns the badges the given metrics qualify for, stamped at
// the provided time. Merging with previously earned badges is the
// repository's job; this function only decides qualification.
func accrueBadges(m Metrics, successfulDeliveries, ratedDeliveries int, now time.Time) []Badge {
	var earned []Badge

	if successfulDeliveries >= 1 {
		earned = append(earned, Badge{
			ID:          BadgeFirstDelivery,
			Name:        "First Drop",
			Description: "Completed a first successful delivery",
			Icon:        "package",
			EarnedAt:    now,
		})
	}

	if successfulDeliveries >= centurionDeliveries {
		earned = append(earned, Badge{
			ID:          BadgeCenturion,
			Name:        "Centurion",
			Description: "Completed 100 successful deliveries",
			Icon:        "trophy",
			EarnedAt:    now,
		})
	}

	if ratedDeliveries >= flawlessMinRated && m.CustomerRatingAvg >= flawlessMinRating {
		earned = append(earned, Badge{
			ID:          BadgeFlawless,
			Name:        "Flawless",
			Description: "Kept an average customer rating of 4.8 or better",
			Icon:        "star",
			EarnedAt:    now,
		})
	}

	if m.TenureMonths >= veteranTenureMonths {
		earned = append(earned, Badge{
			ID:          BadgeVeteran,
			Name:        "Veteran",
			Description: "One year on the platform",
			Icon:        "calendar",
			EarnedAt:    now,
		})
	}

	if m.Verified {
		earned = append(earned, Badge{
			ID:          BadgeVerified,
			Name:        "Verified Courier",
			Description: "Passed identity verification",
			Icon:        "shield",
			EarnedAt:    now,
		})
	}

	return earned
}
