package core

import "go.uber.org/atomic"

// debugMode controls whether build errors carry full detail for error
// widgets. Defaults to true.
var debugMode = atomic.NewBool(true)

// SetDebugMode enables or disables debug mode for the framework.
func SetDebugMode(debug bool) {
	debugMode.Store(debug)
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return debugMode.Load()
}
