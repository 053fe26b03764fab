package frame

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"wirecube/internal/math3d"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

type segment struct {
	from, to math3d.Vec2
}

// recorder is a Surface that keeps every call for inspection.
type recorder struct {
	clears   []color.Color
	rects    []math3d.Vec2
	segments []segment
	strokes  int
	closes   int
	pen      math3d.Vec2
	open     bool
}

func (r *recorder) Clear(c color.Color) {
	r.clears = append(r.clears, c)
	r.rects = nil
	r.segments = nil
	r.strokes = 0
	r.closes = 0
}

func (r *recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.rects = append(r.rects, math3d.V2(x, y))
}

func (r *recorder) BeginPath() { r.open = true }

func (r *recorder) MoveTo(x, y float64) { r.pen = math3d.V2(x, y) }

func (r *recorder) LineTo(x, y float64) {
	next := math3d.V2(x, y)
	r.segments = append(r.segments, segment{r.pen, next})
	r.pen = next
}

func (r *recorder) Stroke(c color.Color) { r.strokes++ }

func (r *recorder) ClosePath() {
	r.closes++
	r.open = false
}

func TestFirstTickAtZeroAngle(t *testing.T) {
	rec := &recorder{}
	opts := DefaultOptions()
	u := NewUpdater(rec, opts)
	if u.Angle() != 0 {
		t.Fatalf("initial angle = %v", u.Angle())
	}
	if err := u.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	vertices := u.Cube().Vertices()
	points := u.Cube().Points()
	for i, v := range vertices {
		assertNear(t, "x", points[i].X, v.X*100+opts.Width/2)
		assertNear(t, "y", points[i].Y, v.Y*100+opts.Height/2)
	}
	if len(rec.clears) != 1 || rec.clears[0] != color.Black {
		t.Errorf("clears = %v, want one black clear", rec.clears)
	}
	if len(rec.rects) != 8 {
		t.Fatalf("rects = %d, want 8", len(rec.rects))
	}
	for i, p := range rec.rects {
		if p != points[i] {
			t.Errorf("rect %d at %v, want %v", i, p, points[i])
		}
	}
	if rec.strokes == 0 || rec.closes != 1 {
		t.Errorf("strokes = %d, closes = %d", rec.strokes, rec.closes)
	}
}

func TestEdgeTopology(t *testing.T) {
	rec := &recorder{}
	u := NewUpdater(rec, DefaultOptions())
	if err := u.Tick(); err != nil {
		t.Fatal(err)
	}

	want := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	if len(rec.segments) != len(want) {
		t.Fatalf("segments = %d, want %d", len(rec.segments), len(want))
	}
	points := u.Cube().Points()
	for i, pair := range want {
		got := rec.segments[i]
		if got.from != points[pair[0]] || got.to != points[pair[1]] {
			t.Errorf("segment %d = %v, want %v -> %v", i, got, points[pair[0]], points[pair[1]])
		}
	}
}

func TestEdgesTable(t *testing.T) {
	degree := map[int]int{}
	for _, e := range Edges {
		degree[e[0]]++
		degree[e[1]]++
	}
	for v := 0; v < 8; v++ {
		if degree[v] != 3 {
			t.Errorf("vertex %d has %d edges, want 3", v, degree[v])
		}
	}
}

func TestAngleAdvancesPerTick(t *testing.T) {
	u := NewUpdater(&recorder{}, DefaultOptions())
	prev := u.Angle()
	for i := 1; i <= 1000; i++ {
		if err := u.Tick(); err != nil {
			t.Fatal(err)
		}
		if u.Angle() <= prev {
			t.Fatalf("tick %d: angle %v did not increase from %v", i, u.Angle(), prev)
		}
		if d := u.Angle() - prev; math.Abs(d-0.01) > 1e-12 {
			t.Fatalf("tick %d: step = %v", i, d)
		}
		prev = u.Angle()
	}
	if math.Abs(u.Angle()-10) > 1e-9 {
		t.Errorf("angle after 1000 ticks = %v, want 10", u.Angle())
	}
}

func TestTickUsesAngleBeforeIncrement(t *testing.T) {
	rec := &recorder{}
	opts := DefaultOptions()
	u := NewUpdater(rec, opts)
	for i := 0; i < 5; i++ {
		if err := u.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	angle := u.Angle()
	if err := u.Tick(); err != nil {
		t.Fatal(err)
	}

	rz, ry, rx := math3d.RotationZ(angle), math3d.RotationY(angle), math3d.RotationX(angle)
	v := math3d.Projection().DotProduct(rx.DotProduct(ry.DotProduct(rz.DotProduct(math3d.V3(1, 1, 1).Mul(100)))))
	want := v.ToVec2().TranslateBy(opts.Width/2, opts.Height/2)
	got := u.Cube().Points()[2]
	assertNear(t, "x", got.X, want.X)
	assertNear(t, "y", got.Y, want.Y)
}

func TestRotationXModes(t *testing.T) {
	opts := DefaultOptions()
	opts.AngleStep = 0.5

	faithful := NewUpdater(&recorder{}, opts)
	opts.RotationX = RotationXAxis
	corrected := NewUpdater(&recorder{}, opts)

	for i := 0; i < 2; i++ {
		if err := faithful.Tick(); err != nil {
			t.Fatal(err)
		}
		if err := corrected.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	// second tick rotates by 0.5
	same := true
	for i, p := range faithful.Cube().Points() {
		if math.Abs(p.X-corrected.Cube().Points()[i].X) > epsilon || math.Abs(p.Y-corrected.Cube().Points()[i].Y) > epsilon {
			same = false
		}
	}
	if same {
		t.Error("corrected X rotation produced the same projection as the faithful one")
	}
}

func TestScaleLeavesLiveCubeUnscaled(t *testing.T) {
	u := NewUpdater(&recorder{}, DefaultOptions())
	for i := 0; i < 3; i++ {
		if err := u.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if got := u.Cube().Vertices()[0]; got != math3d.V3(-1, -1, 1) {
		t.Errorf("live vertex 0 = %v", got)
	}
}

func TestStartReschedules(t *testing.T) {
	rec := &recorder{}
	u := NewUpdater(rec, DefaultOptions())
	sched := &ManualScheduler{}

	if err := u.Start(sched); err != nil {
		t.Fatal(err)
	}
	if len(rec.clears) != 1 {
		t.Fatalf("Start ran %d ticks, want 1", len(rec.clears))
	}
	for i := 0; i < 9; i++ {
		ran, err := sched.Step()
		if err != nil || !ran {
			t.Fatalf("step %d: ran=%v err=%v", i, ran, err)
		}
	}
	assertNear(t, "angle", u.Angle(), 0.1)
	if !sched.Pending() {
		t.Error("no frame pending after step")
	}
}

func TestStop(t *testing.T) {
	u := NewUpdater(&recorder{}, DefaultOptions())
	sched := &ManualScheduler{}
	if err := u.Start(sched); err != nil {
		t.Fatal(err)
	}
	u.Stop()
	angle := u.Angle()

	ran, err := sched.Step()
	if !ran || err != nil {
		t.Fatalf("ran=%v err=%v", ran, err)
	}
	if u.Angle() != angle {
		t.Errorf("angle moved after Stop: %v -> %v", angle, u.Angle())
	}
	if sched.Pending() {
		t.Error("stopped updater rescheduled itself")
	}
	if ran, _ := sched.Step(); ran {
		t.Error("Step ran with nothing pending")
	}
}

func TestManualSchedulerPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	sched := &ManualScheduler{}
	sched.ScheduleNextFrame(func() error { return boom })
	ran, err := sched.Step()
	if !ran || !errors.Is(err, boom) {
		t.Errorf("ran=%v err=%v", ran, err)
	}
}

func TestCustomSurfaceSize(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 200, 100
	opts.Scale = 10
	u := NewUpdater(&recorder{}, opts)
	if err := u.Tick(); err != nil {
		t.Fatal(err)
	}
	p := u.Cube().Points()[0]
	assertNear(t, "x", p.X, 90)
	assertNear(t, "y", p.Y, 40)
}
