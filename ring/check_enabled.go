//go:build ringcheck

package ring

// debugChecks enables structural verification after every mutating
// operation. Build with -tags ringcheck to turn it on.
const debugChecks = true
