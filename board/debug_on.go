//go:build chessdebug

package board

// debugChecks enables contract assertions and hash cross-checks.
const debugChecks = true
