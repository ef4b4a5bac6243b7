package view

import (
	"math"
	"time"

	"github.com/litescript/ls-planetarium/internal/astro"
)

// Mode is the pointer state of the controller.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
)

func (m Mode) String() string {
	if m == ModeDragging {
		return "dragging"
	}
	return "idle"
}

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Input tuning.
const (
	DefaultSmoothing = 12.0 // k in 1 - exp(-k*dt)
	WheelFactor      = 1.1
	KeyZoomFactor    = 1.15
	KeyPanFraction   = 0.10

	// Below these differences the animated view snaps to its target.
	snapAngle = 1e-4
	snapFOV   = 1e-4
)

// ContextEvent is raised by a secondary click: the coordinate under the
// pointer and where on screen the gesture happened.
type ContextEvent struct {
	Coord astro.Equatorial
	X, Y  float64
}

// Controller owns the camera. It holds the target view that input writes to
// and the current view that Update animates toward the target.
//
// Controller is not safe for concurrent use; it lives on the render loop.
type Controller struct {
	current State
	target  State
	home    State

	smoothing float64
	viewport  Viewport

	mode         Mode
	lastX, lastY float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithSmoothing sets the interpolation rate k.
func WithSmoothing(k float64) Option {
	return func(c *Controller) {
		if k > 0 {
			c.smoothing = k
		}
	}
}

// WithViewport sets the initial viewport.
func WithViewport(vp Viewport) Option {
	return func(c *Controller) {
		c.viewport = vp
	}
}

// NewController creates a controller resting at home.
func NewController(home State, opts ...Option) *Controller {
	home = home.Normalized()
	c := &Controller{
		current:   home,
		target:    home,
		home:      home,
		smoothing: DefaultSmoothing,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetViewport updates the drawable area.
func (c *Controller) SetViewport(vp Viewport) {
	c.viewport = vp
}

// Viewport returns the drawable area.
func (c *Controller) Viewport() Viewport {
	return c.viewport
}

// Mode returns the pointer state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Current returns the animated view.
func (c *Controller) Current() State {
	return c.current
}

// Target returns the view the animation is heading to.
func (c *Controller) Target() State {
	return c.target
}

// Snapshot returns the current view with its camera basis for rendering.
func (c *Controller) Snapshot() Snapshot {
	return NewSnapshot(c.current, c.viewport)
}

// PointerDown starts a drag on the primary button. A secondary button
// returns a ContextEvent for the coordinate under the pointer.
func (c *Controller) PointerDown(x, y float64, b Button) (ContextEvent, bool) {
	x, y = c.viewport.Clamp(x, y)
	switch b {
	case ButtonPrimary:
		c.mode = ModeDragging
		c.lastX, c.lastY = x, y
		return ContextEvent{}, false
	case ButtonSecondary:
		return ContextEvent{Coord: c.Snapshot().Unproject(x, y), X: x, Y: y}, true
	default:
		return ContextEvent{}, false
	}
}

// PointerMove pans the target while dragging. The pointer delta is scaled by
// fov / viewport height so a drag moves the sky at the same apparent speed
// at every zoom level.
func (c *Controller) PointerMove(x, y float64) {
	if c.mode != ModeDragging {
		return
	}
	x, y = c.viewport.Clamp(x, y)
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y

	if c.viewport.Height <= 0 {
		return
	}
	scale := c.target.FOV / c.viewport.Height
	c.target.CenterRA = astro.NormalizeRA(c.target.CenterRA + dx*scale/c.viewport.aspect())
	c.target.CenterDec = astro.ClampDec(c.target.CenterDec + dy*scale)
}

// PointerUp ends a drag.
func (c *Controller) PointerUp() {
	c.mode = ModeIdle
}

// PointerLeave ends a drag when the pointer exits the viewport.
func (c *Controller) PointerLeave() {
	c.mode = ModeIdle
}

// Wheel zooms the target FOV. Positive delta zooms out.
func (c *Controller) Wheel(delta float64) {
	switch {
	case delta > 0:
		c.target.FOV = ClampFOV(c.target.FOV * WheelFactor)
	case delta < 0:
		c.target.FOV = ClampFOV(c.target.FOV / WheelFactor)
	}
}

// Key applies a keyboard command. Keys are ignored while a text input has
// focus. It reports whether the key was handled.
func (c *Controller) Key(key string, textFocused bool) bool {
	if textFocused {
		return false
	}
	step := c.target.FOV * KeyPanFraction
	switch key {
	case "left":
		c.target.CenterRA = astro.NormalizeRA(c.target.CenterRA + step)
	case "right":
		c.target.CenterRA = astro.NormalizeRA(c.target.CenterRA - step)
	case "up":
		c.target.CenterDec = astro.ClampDec(c.target.CenterDec + step)
	case "down":
		c.target.CenterDec = astro.ClampDec(c.target.CenterDec - step)
	case "+", "=":
		c.target.FOV = ClampFOV(c.target.FOV / KeyZoomFactor)
	case "-", "_":
		c.target.FOV = ClampFOV(c.target.FOV * KeyZoomFactor)
	case " ", "space":
		c.Reset()
	default:
		return false
	}
	return true
}

// CenterOn animates to a coordinate keeping the FOV.
func (c *Controller) CenterOn(ra, dec float64) {
	c.target.CenterRA = astro.NormalizeRA(ra)
	c.target.CenterDec = astro.ClampDec(dec)
}

// Reset animates back to the home view.
func (c *Controller) Reset() {
	c.target = c.home
}

// Jump sets current and target at once, without animation.
func (c *Controller) Jump(s State) {
	s = s.Normalized()
	c.current = s
	c.target = s
}

// Update advances the animation by dt. It reports whether the view moved.
func (c *Controller) Update(dt time.Duration) bool {
	if dt <= 0 || c.current == c.target {
		return false
	}
	alpha := 1 - math.Exp(-c.smoothing*dt.Seconds())

	dRA := astro.NormalizeAngle180(c.target.CenterRA - c.current.CenterRA)
	dDec := c.target.CenterDec - c.current.CenterDec
	dFOV := c.target.FOV - c.current.FOV

	if math.Abs(dRA) < snapAngle && math.Abs(dDec) < snapAngle && math.Abs(dFOV) < snapFOV {
		c.current = c.target
		return true
	}

	c.current.CenterRA = astro.NormalizeRA(c.current.CenterRA + dRA*alpha)
	c.current.CenterDec = astro.ClampDec(c.current.CenterDec + dDec*alpha)
	c.current.FOV = ClampFOV(c.current.FOV + dFOV*alpha)
	return true
}
