//go:build !ringcheck

package ring

const debugChecks = false
