//go:build !chessdebug

package board

const debugChecks = false
