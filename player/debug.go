package player

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DebugMode is a category of debug output that can be toggled per player.
type DebugMode int

const (
	DebugModeMovementSim DebugMode = iota
	DebugModeWallRun
	DebugModePrediction
	debugModeCount
)

func (m DebugMode) String() string {
	switch m {
	case DebugModeMovementSim:
		return "movement"
	case DebugModeWallRun:
		return "wallrun"
	case DebugModePrediction:
		return "prediction"
	}
	return fmt.Sprintf("DebugMode(%d)", int(m))
}

// Debugger writes per-mode debug output to the player's logger.
type Debugger struct {
	log     *logrus.Logger
	enabled [debugModeCount]bool
}

// NewDebugger returns a debugger with every mode disabled.
func NewDebugger(log *logrus.Logger) *Debugger {
	return &Debugger{log: log}
}

// Enabled returns true if the given mode is enabled.
func (d *Debugger) Enabled(mode DebugMode) bool {
	if mode < 0 || mode >= debugModeCount {
		return false
	}
	return d.enabled[mode]
}

// Toggle flips the given mode.
func (d *Debugger) Toggle(mode DebugMode) {
	d.SetEnabled(mode, !d.Enabled(mode))
}

// SetEnabled enables or disables the given mode.
func (d *Debugger) SetEnabled(mode DebugMode, enabled bool) {
	if mode < 0 || mode >= debugModeCount {
		return
	}
	d.enabled[mode] = enabled
}

// Notify logs the formatted message at debug level if cond is true and the mode is enabled.
func (d *Debugger) Notify(mode DebugMode, cond bool, msg string, args ...any) {
	if d == nil || !cond || !d.Enabled(mode) {
		return
	}
	d.log.Debugf("[%s] "+msg, append([]any{mode}, args...)...)
}
