// Package engine provides the real-time tick loop that drives a game state.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Engine drives the game forward one tick per Interval.
type Engine struct {
	Tick          uint64        // Current tick counter (monotonic, never resets)
	Speed         float64       // Multiplier: 1.0 = real-time, 0 = paused
	Interval      time.Duration // Base tick interval (default 1 second)
	AutosaveEvery uint64        // Ticks between autosaves; 0 disables

	// Callbacks, populated during setup.
	OnTick     func(tick uint64, elapsedSeconds float64) // Every tick, with game seconds elapsed
	OnAutosave func(tick uint64)                         // Every AutosaveEvery ticks and on shutdown
}

// NewEngine creates an engine with default settings.
func NewEngine() *Engine {
	return &Engine{
		Speed:    1.0,
		Interval: time.Second,
	}
}

// Run starts the loop. Blocks until ctx is cancelled, then autosaves once.
func (e *Engine) Run(ctx context.Context) {
	slog.Info("engine started", "tick", e.Tick, "speed", e.Speed, "interval", e.Interval)

	ticker := time.NewTicker(e.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if e.OnAutosave != nil {
				e.OnAutosave(e.Tick)
			}
			slog.Info("engine stopped", "tick", e.Tick)
			return
		case <-ticker.C:
			if e.Speed <= 0 {
				continue // Paused
			}
			e.Step(e.Interval.Seconds() * e.Speed)
		}
	}
}

// Step advances one tick covering elapsedSeconds of game time.
func (e *Engine) Step(elapsedSeconds float64) {
	e.Tick++

	if e.OnTick != nil {
		e.OnTick(e.Tick, elapsedSeconds)
	}

	if e.AutosaveEvery > 0 && e.Tick%e.AutosaveEvery == 0 && e.OnAutosave != nil {
		e.OnAutosave(e.Tick)
	}
}

// FastForward runs whole steps of stepSeconds until totalSeconds is covered;
// the last step takes the remainder. Used for offline progress.
func (e *Engine) FastForward(totalSeconds, stepSeconds float64) int {
	if totalSeconds <= 0 || stepSeconds <= 0 {
		return 0
	}
	steps := 0
	for remaining := totalSeconds; remaining > 0; remaining -= stepSeconds {
		e.Step(min(stepSeconds, remaining))
		steps++
	}
	return steps
}

// PlayTime returns a human-readable duration from seconds of play.
func PlayTime(seconds float64) string {
	total := int64(seconds)
	secs := total % 60
	mins := (total / 60) % 60
	hours := (total / 3600) % 24
	days := total / 86400

	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, mins, secs)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
}
