package game

import "lanerush/internal/config"

// DifficultyController owns the run's scalar speed and the one-shot
// structural escalation. The speed ramp fires on a fixed cadence for the
// whole run with no upper bound; escalation fires at most once, the first
// time score reaches the threshold, and never reverts within a run.
type DifficultyController struct {
	speedCfg config.SpeedConfig
	escCfg   config.EscalationConfig

	speed             float64
	lastSpeedIncrease int64
	extraLaneAdded    bool
}

// NewDifficultyController creates a controller for a single run.
func NewDifficultyController(speed config.SpeedConfig, esc config.EscalationConfig) *DifficultyController {
	d := &DifficultyController{speedCfg: speed, escCfg: esc}
	d.Reset()
	return d
}

// Reset returns the controller to run-start state: base speed, ramp timer
// at zero, escalation re-armed.
func (d *DifficultyController) Reset() {
	d.speed = d.speedCfg.Base
	d.lastSpeedIncrease = 0
	d.extraLaneAdded = false
}

// Tick advances the ramp timer and checks the escalation threshold.
// It reports true exactly once per run, on the tick the score first
// reaches the threshold; the caller applies the structural changes
// (lane count, spawn density, entity repositioning).
func (d *DifficultyController) Tick(now int64, score int) (escalate bool) {
	if d.speedCfg.RampAmount > 0 && now-d.lastSpeedIncrease >= int64(d.speedCfg.RampIntervalMs) {
		d.speed += d.speedCfg.RampAmount
		d.lastSpeedIncrease = now
	}

	if !d.extraLaneAdded && score >= d.escCfg.ScoreThreshold {
		d.extraLaneAdded = true
		return true
	}
	return false
}

// Speed returns the current ramped speed, in canvas units per tick.
func (d *DifficultyController) Speed() float64 {
	return d.speed
}

// Escalated reports whether the one-shot escalation has fired this run.
func (d *DifficultyController) Escalated() bool {
	return d.extraLaneAdded
}

// Escalation returns the structural targets applied when escalation fires.
func (d *DifficultyController) Escalation() config.EscalationConfig {
	return d.escCfg
}
