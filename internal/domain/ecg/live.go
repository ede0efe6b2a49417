package ecg

import (
	"math"
	"sync"
)

// LivePattern is one PQRST cycle of the continuously scrolling trace.
var LivePattern = []float64{
	// baseline
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// P
	0.02, 0.05, 0.08, 0.12, 0.15, 0.18, 0.20, 0.21, 0.21, 0.20,
	0.18, 0.15, 0.12, 0.08, 0.05, 0.02,
	// PR
	0, 0, 0, 0, 0, 0, 0, 0,
	// Q
	-0.02, -0.05, -0.08, -0.10,
	// R
	-0.05, 0.10, 0.35, 0.65, 0.90, 1.0, 0.90, 0.65, 0.35, 0.10,
	// S
	-0.15, -0.25, -0.20, -0.12, -0.05,
	// ST
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// T
	0.02, 0.05, 0.10, 0.15, 0.20, 0.24, 0.27, 0.29, 0.30, 0.30,
	0.29, 0.27, 0.24, 0.20, 0.15, 0.10, 0.05, 0.02,
	// baseline
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

const (
	livePixelStep  = 0.5
	liveAmplitude  = 0.35
	leadDotInset   = 5
	leadGlowRadius = 8
	leadDotRadius  = 4
)

// Smoothstep is the cubic blend weight f²(3−2f).
func Smoothstep(f float64) float64 {
	return f * f * (3 - 2*f)
}

// Interpolate blends the two pattern entries around pos.
func Interpolate(pos float64) float64 {
	n := len(LivePattern)
	floor := math.Floor(pos)
	idx := int(floor) % n
	if idx < 0 {
		idx += n
	}
	next := (idx + 1) % n
	t := Smoothstep(pos - floor)
	cur := LivePattern[idx]
	return cur + (LivePattern[next]-cur)*t
}

// LeadDot marks the newest drawn sample.
type LeadDot struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Radius     float64 `json:"radius"`
	GlowRadius float64 `json:"glow_radius"`
}

// Frame is one redraw of the live trace.
type Frame struct {
	Seq    uint64  `json:"seq"`
	Offset float64 `json:"offset"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Points []Point `json:"points"`
	Lead   LeadDot `json:"lead"`
}

func livePos(x, offset float64) float64 {
	return math.Mod(x*livePixelStep+offset, float64(len(LivePattern)))
}

// LiveFrame renders the pattern across width pixels starting at offset.
func LiveFrame(width, height int, offset float64) Frame {
	centre := float64(height) / 2
	amp := float64(height) * liveAmplitude

	pts := make([]Point, 0, width)
	for x := 0; x < width; x++ {
		v := Interpolate(livePos(float64(x), offset))
		pts = append(pts, Point{X: float64(x), Y: centre - v*amp})
	}

	leadX := float64(width - leadDotInset)
	leadV := Interpolate(livePos(leadX, offset))

	return Frame{
		Offset: offset,
		Width:  width,
		Height: height,
		Points: pts,
		Lead: LeadDot{
			X:          leadX,
			Y:          centre - leadV*amp,
			Radius:     leadDotRadius,
			GlowRadius: leadGlowRadius,
		},
	}
}

// Animator advances the live trace by Speed pattern entries per frame.
// The sequence is unbounded; the owner stops calling Next when it is torn
// down.
type Animator struct {
	mu     sync.Mutex
	width  int
	height int
	speed  float64
	offset float64
	seq    uint64
}

func NewAnimator(width, height int, speed float64) *Animator {
	return &Animator{width: width, height: height, speed: speed}
}

// Next draws the current frame then moves the phase offset forward.
func (a *Animator) Next() Frame {
	a.mu.Lock()
	defer a.mu.Unlock()

	f := LiveFrame(a.width, a.height, a.offset)
	f.Seq = a.seq
	a.seq++
	a.offset += a.speed
	return f
}

func (a *Animator) Offset() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.offset
}
