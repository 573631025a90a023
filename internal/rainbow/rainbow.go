// Package rainbow animates the hue used by "rainbow" border rules.
package rainbow

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mj1618/cute-borders/internal/model"
)

const (
	// DegreesPerSecond is the hue rate at speed 1.0: one cycle every 10s.
	DegreesPerSecond = 36.0
	// FrameInterval is the nominal painter period, used for the first tick.
	FrameInterval = 33 * time.Millisecond
	// maxStep caps the elapsed time credited to a single tick so the hue does
	// not jump after the machine resumes from sleep.
	maxStep = time.Second
)

// Animator holds the hue phase in degrees, [0, 360).
//
// Tick is called from the painter goroutine only. Phase and Color may be
// called from any goroutine.
type Animator struct {
	phase atomic.Uint64 // math.Float64bits of the hue
	last  time.Time
	now   func() time.Time
}

// New returns an animator starting at hue 0.
func New() *Animator {
	return &Animator{now: time.Now}
}

// NewWithClock is New with an injectable clock.
func NewWithClock(now func() time.Time) *Animator {
	return &Animator{now: now}
}

// Tick advances the hue by speed × elapsed wall-clock time since the previous
// tick. Non-positive speeds leave the hue unchanged.
func (a *Animator) Tick(speed float64) {
	now := a.now()
	elapsed := FrameInterval
	if !a.last.IsZero() {
		elapsed = now.Sub(a.last)
	}
	a.last = now

	if speed <= 0 || elapsed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return
	}
	if elapsed > maxStep {
		elapsed = maxStep
	}
	// Reduce before adding so a huge speed cannot push the sum to Inf, whose
	// remainder is NaN and would stick forever.
	delta := math.Mod(DegreesPerSecond*speed*elapsed.Seconds(), 360)
	next := math.Mod(a.Phase()+delta, 360)
	if math.IsNaN(next) || math.IsInf(next, 0) {
		return
	}
	a.phase.Store(math.Float64bits(next))
}

// Phase returns the current hue in degrees.
func (a *Animator) Phase() float64 {
	return math.Float64frombits(a.phase.Load())
}

// Color converts the hue at full saturation and value to RGB.
func (a *Animator) Color() model.RGB {
	r, g, b := colorful.Hsv(a.Phase(), 1, 1).RGB255()
	return model.RGB{R: r, G: g, B: b}
}
