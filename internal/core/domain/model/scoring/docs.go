// Package scoring implements the courier reliability scoring engine.
//
// The package computes a composite trust score from a courier's delivery and
// incident history, derives a trust tier from fixed breakpoints, and accrues
// achievement badges. ReliabilityScore is the aggregate root; Tier and Badge
// are value objects.
//
// Scoring formula:
//
//	overall = round(successRate*0.25 + onTimeRate*0.20 +
//	                (ratingAvg/5*100)*0.25 + (100-incidentRate)*0.15 +
//	                verificationBonus + experienceBonus*0.5)
//
// clamped to [0,100]. Rates default to their best values when the courier has
// no history yet, so new couriers start in the middle of the range rather
// than at zero.
package scoring
