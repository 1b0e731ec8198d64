package typecatch

import (
	"math"

	"github.com/vovakirdan/typecatch/internal/config"
	"github.com/vovakirdan/typecatch/internal/core"
)

// AnimPhase is the state of the capture animation.
type AnimPhase int

const (
	AnimIdle      AnimPhase = iota
	AnimParabolic           // ball arcs from the launch point to the target
	AnimHalo                // burst around the impact point
	AnimBeeline             // ball flies straight to its gallery slot
)

func (p AnimPhase) String() string {
	switch p {
	case AnimParabolic:
		return "parabolic"
	case AnimHalo:
		return "halo"
	case AnimBeeline:
		return "beeline"
	default:
		return "idle"
	}
}

// animTransitions lists the legal phase changes. Start is handled separately
// because it may interrupt any phase.
var animTransitions = map[AnimPhase]AnimPhase{
	AnimParabolic: AnimHalo,
	AnimHalo:      AnimBeeline,
	AnimBeeline:   AnimIdle,
}

// maxAnimStep caps a single update so a stalled frame loop does not teleport
// the ball.
const maxAnimStep = 100

// CaptureAnimation plays the three-phase celebration after a capture.
// One instance is live at a time; starting it again restarts from the
// launch point.
type CaptureAnimation struct {
	cfg config.AnimationConfig

	phase  AnimPhase
	launch core.Vec
	target core.Vec
	slot   core.Vec
	pos    core.Vec
	icon   core.Handle

	last       int64
	haloAt     core.Vec
	haloMs     int64
	onImpact   func()
	onTransfer func(from, to AnimPhase)
}

// NewCaptureAnimation creates an idle animation.
func NewCaptureAnimation(cfg config.AnimationConfig) *CaptureAnimation {
	return &CaptureAnimation{cfg: cfg}
}

// Start launches the ball at target. onImpact runs once when the ball
// reaches it.
func (a *CaptureAnimation) Start(now int64, launch, target, slot core.Vec, icon core.Handle, onImpact func()) {
	a.phase = AnimParabolic
	a.launch = launch
	a.target = target
	a.slot = slot
	a.pos = launch
	a.icon = icon
	a.last = now
	a.haloMs = 0
	a.onImpact = onImpact
}

// Phase returns the current state.
func (a *CaptureAnimation) Phase() AnimPhase { return a.phase }

// Active reports whether anything is in flight.
func (a *CaptureAnimation) Active() bool { return a.phase != AnimIdle }

// Pos returns the ball position.
func (a *CaptureAnimation) Pos() core.Vec { return a.pos }

// Icon returns the icon being carried to the gallery.
func (a *CaptureAnimation) Icon() core.Handle { return a.icon }

// HaloCenter returns where the halo is drawn.
func (a *CaptureAnimation) HaloCenter() core.Vec { return a.haloAt }

// HaloScale returns the halo size, rising 0 to 1 over the first half of the
// halo and falling back to 0 over the second.
func (a *CaptureAnimation) HaloScale() float64 {
	if a.phase != AnimHalo {
		return 0
	}
	total := float64(a.cfg.HaloMs)
	half := total / 2
	e := float64(a.haloMs)
	if e <= half {
		return core.ClampF(e/half, 0, 1)
	}
	return core.ClampF((total-e)/half, 0, 1)
}

// Update advances the animation to now.
func (a *CaptureAnimation) Update(now int64) {
	dt := now - a.last
	a.last = now
	if dt <= 0 || a.phase == AnimIdle {
		return
	}
	dt = min(dt, maxAnimStep)

	switch a.phase {
	case AnimParabolic:
		a.stepParabolic(dt)
	case AnimHalo:
		a.haloMs += dt
		if a.haloMs >= a.cfg.HaloMs {
			a.transfer(AnimHalo)
		}
	case AnimBeeline:
		a.stepBeeline(dt)
	}
}

func (a *CaptureAnimation) stepParabolic(dt int64) {
	step := a.cfg.ParabolicSpeed * float64(dt) / 1000
	dx := a.target.X - a.pos.X
	if math.Abs(dx) <= step {
		a.pos.X = a.target.X
	} else {
		a.pos.X += math.Copysign(step, dx)
	}

	p := 1.0
	if span := a.target.X - a.launch.X; span != 0 {
		p = core.ClampF((a.pos.X-a.launch.X)/span, 0, 1)
	}
	a.pos.Y = core.Lerp(a.launch.Y, a.target.Y, p) - a.cfg.ArcHeight*4*p*(1-p)

	if math.Abs(a.target.X-a.pos.X) < a.cfg.ArrivalThreshold {
		a.pos = a.target
		a.haloAt = a.target
		a.haloMs = 0
		if a.onImpact != nil {
			a.onImpact()
			a.onImpact = nil
		}
		a.transfer(AnimParabolic)
	}
}

func (a *CaptureAnimation) stepBeeline(dt int64) {
	step := a.cfg.BeelineSpeed * float64(dt) / 1000
	d := a.slot.Sub(a.pos)
	if dist := d.Len(); dist <= step {
		a.pos = a.slot
	} else {
		a.pos = a.pos.Add(d.Scale(step / dist))
	}

	if math.Abs(a.slot.X-a.pos.X) < a.cfg.ArrivalThreshold &&
		math.Abs(a.slot.Y-a.pos.Y) < a.cfg.ArrivalThreshold {
		a.pos = a.slot
		a.transfer(AnimBeeline)
	}
}

// transfer moves out of from along the transition table.
func (a *CaptureAnimation) transfer(from AnimPhase) {
	next, ok := animTransitions[from]
	if !ok || a.phase != from {
		return
	}
	a.phase = next
	if a.onTransfer != nil {
		a.onTransfer(from, next)
	}
}
