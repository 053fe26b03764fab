package frame

import (
	"image/color"
	"sync/atomic"

	errorsmod "cosmossdk.io/errors"

	"wirecube/internal/math3d"
	"wirecube/internal/solid"
)

// RotationXMode selects how the X rotation is built
type RotationXMode int

const (
	// RotationXDuplicateZ builds the X rotation like the Z rotation, which is
	// how the cube has always spun
	RotationXDuplicateZ RotationXMode = iota
	// RotationXAxis rotates around the real X axis
	RotationXAxis
)

// Edges is the cube topology over the solid's vertex order: front face loop,
// back face loop, then the edges connecting the two faces.
var Edges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Options configures an Updater
type Options struct {
	Width, Height float64
	AngleStep     float64
	Scale         float64
	PointSize     float64
	Background    color.Color
	Foreground    color.Color
	RotationX     RotationXMode
}

// DefaultOptions matches an 800x600 surface, white on black
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		AngleStep:  0.01,
		Scale:      100,
		PointSize:  2,
		Background: color.Black,
		Foreground: color.White,
		RotationX:  RotationXDuplicateZ,
	}
}

// Updater owns the cube, the rotation angle and the projection transform,
// and renders one frame per Tick.
type Updater struct {
	opts       Options
	surface    Surface
	cube       *solid.Cube
	projection math3d.Transform
	angle      float64
	stopped    atomic.Bool
}

// NewUpdater creates an updater drawing onto surface, starting at angle 0
func NewUpdater(surface Surface, opts Options) *Updater {
	return &Updater{
		opts:       opts,
		surface:    surface,
		cube:       solid.NewCube(),
		projection: math3d.Projection(),
	}
}

// Angle is the rotation angle the next tick will use
func (u *Updater) Angle() float64 {
	return u.angle
}

// Cube returns the live cube whose point cache is updated every tick
func (u *Updater) Cube() *solid.Cube {
	return u.cube
}

func (u *Updater) rotationX(angle float64) math3d.Transform {
	if u.opts.RotationX == RotationXAxis {
		return math3d.RotationXAxis(angle)
	}
	return math3d.RotationX(angle)
}

// Tick renders a single frame and advances the angle
func (u *Updater) Tick() error {
	s := u.surface
	s.Clear(u.opts.Background)

	rotationZ := math3d.RotationZ(u.angle)
	rotationY := math3d.RotationY(u.angle)
	rotationX := u.rotationX(u.angle)

	u.angle += u.opts.AngleStep

	cx, cy := u.opts.Width/2, u.opts.Height/2
	for idx, vertex := range u.cube.Scale(u.opts.Scale).Vertices() {
		v := rotationZ.DotProduct(vertex)
		v = rotationY.DotProduct(v)
		v = rotationX.DotProduct(v)
		v = u.projection.DotProduct(v)
		p := v.ToVec2().TranslateBy(cx, cy)

		if err := u.cube.SetPoint(idx, p.X, p.Y); err != nil {
			return errorsmod.Wrap(err, "projecting vertex")
		}
		s.FillRect(p.X, p.Y, u.opts.PointSize, u.opts.PointSize, u.opts.Foreground)
	}

	u.drawEdges()
	return nil
}

func (u *Updater) drawEdges() {
	s := u.surface
	points := u.cube.Points()

	s.BeginPath()
	for _, e := range Edges {
		from, to := points[e[0]], points[e[1]]
		s.MoveTo(from.X, from.Y)
		s.LineTo(to.X, to.Y)
	}
	s.Stroke(u.opts.Foreground)
	s.ClosePath()
}

// Start renders the first frame immediately, then keeps rescheduling itself
// on s after every tick until Stop is called or a tick fails.
func (u *Updater) Start(s Scheduler) error {
	u.stopped.Store(false)
	var step func() error
	step = func() error {
		if u.stopped.Load() {
			return nil
		}
		if err := u.Tick(); err != nil {
			return err
		}
		s.ScheduleNextFrame(step)
		return nil
	}
	return step()
}

// Stop makes the next scheduled callback return without ticking. It may be
// called from any goroutine.
func (u *Updater) Stop() {
	u.stopped.Store(true)
}
