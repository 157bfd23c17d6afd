// Package insurance implements package insurance pricing, policy issuance,
// and claim filing.
//
// The plan catalog is immutable reference data with three tiers
// (basic, standard, premium). Pricing is a pure function over the catalog:
//
//	premium  = max(round(declaredValue * premiumPercent/100), minPremium)
//	coverage = min(round(declaredValue * coveragePercent/100), maxCoverage)
//
// Policy is the aggregate root for issued coverage; Claim records a filed
// claim against a policy. Claim adjudication and policy deactivation happen
// in an external process and have no transitions here.
package insurance
