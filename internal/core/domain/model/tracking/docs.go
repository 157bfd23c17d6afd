// Package tracking implements shareable public tracking links.
//
// A Link grants time-limited read access to a delivery's tracking state
// through a short random code. Codes are 6 characters drawn from a 32-symbol
// alphabet that excludes the ambiguous characters I, O, 0 and 1. Links carry
// independent visibility flags for driver name, phone, photo and ETA, expire
// after a configurable number of hours (default 24), and count successful
// resolutions. Expiry is enforced at read time; there is no background sweep.
//
// Multiple live links per delivery are permitted and code uniqueness is not
// enforced beyond the randomness of generation.
package tracking
