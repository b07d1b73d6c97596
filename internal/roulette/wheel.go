// Package roulette implements the food wheel: a weighted-equal random pick
// over the food list, expressed as a cumulative rotation angle for a
// wheel-of-fortune animation.
//
// Geometry: entry i occupies the slice [i·w, (i+1)·w) degrees, w = 360/n,
// measured clockwise from the wheel's zero reference. The pointer is fixed at
// the top (0°). Rotating the wheel by r degrees puts wheel-angle
// (360 − r mod 360) mod 360 under the pointer.
package roulette

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/lomkinju/qienn/internal/apperr"
)

// DefaultSettleDelay matches the wheel's spin animation length.
const DefaultSettleDelay = 3 * time.Second

// extraTurns is the minimum number of full rotations added per spin.
const extraTurns = 5

// Result describes one spin.
type Result struct {
	WinningIndex int     `json:"winningIndex"`
	Winner       string  `json:"winner"`
	SliceAngle   float64 `json:"sliceAngle"`
	Rotation     float64 `json:"rotation"` // cumulative degrees after this spin
}

// State is a read-only view of the wheel.
type State struct {
	Rotation   float64 `json:"rotation"`
	Spinning   bool    `json:"spinning"`
	LastWinner string  `json:"lastWinner,omitempty"`
}

// Wheel holds spin state. Rotation only ever grows; the wheel never turns
// backward.
type Wheel struct {
	mu          sync.Mutex
	rng         *rand.Rand
	rotation    float64
	spinning    bool
	lastWinner  string
	settleDelay time.Duration
	onSettle    func(Result)
}

// Option configures a Wheel.
type Option func(*Wheel)

// WithRand sets the random source. Tests pass a seeded one to make the
// winner deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(w *Wheel) { w.rng = rng }
}

// WithSettleDelay overrides the animation settle delay. A non-positive delay
// settles synchronously inside Spin.
func WithSettleDelay(d time.Duration) Option {
	return func(w *Wheel) { w.settleDelay = d }
}

// WithSettleFunc registers a callback fired once per spin after it settles.
func WithSettleFunc(fn func(Result)) Option {
	return func(w *Wheel) { w.onSettle = fn }
}

// New creates a Wheel.
func New(opts ...Option) *Wheel {
	w := &Wheel{
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		settleDelay: DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Spin picks a winner from foods and advances the rotation so the pointer
// lands inside the winner's slice (within the jitter bound), always turning
// forward and adding at least five full turns. At most one spin is in flight;
// a second Spin before settle returns ErrSpinInProgress.
func (w *Wheel) Spin(foods []string) (Result, error) {
	w.mu.Lock()
	if w.spinning {
		w.mu.Unlock()
		return Result{}, apperr.ErrSpinInProgress
	}
	if len(foods) == 0 {
		w.mu.Unlock()
		return Result{}, apperr.ErrEmptyWheel
	}

	n := len(foods)
	width := 360.0 / float64(n)

	idx := w.rng.Intn(n)
	center := float64(idx)*width + width/2

	// Rotation that brings the slice center under the pointer, plus jitter
	// confined to the inner 80% of the slice so the pointer does not always
	// land dead on the label.
	target := 360 - center
	jitter := (w.rng.Float64()*2 - 1) * 0.4 * width
	target += jitter

	delta := mod360(target - mod360(w.rotation))
	w.rotation += extraTurns*360 + delta
	w.spinning = true
	w.lastWinner = ""

	res := Result{
		WinningIndex: idx,
		Winner:       foods[idx],
		SliceAngle:   width,
		Rotation:     w.rotation,
	}

	if w.settleDelay <= 0 {
		w.settleLocked(res)
		w.mu.Unlock()
		w.notify(res)
		return res, nil
	}
	w.mu.Unlock()

	time.AfterFunc(w.settleDelay, func() {
		w.mu.Lock()
		w.settleLocked(res)
		w.mu.Unlock()
		w.notify(res)
	})
	return res, nil
}

func (w *Wheel) settleLocked(res Result) {
	w.spinning = false
	w.lastWinner = res.Winner
}

func (w *Wheel) notify(res Result) {
	if w.onSettle != nil {
		w.onSettle(res)
	}
}

// State returns the current wheel state.
func (w *Wheel) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{Rotation: w.rotation, Spinning: w.spinning, LastWinner: w.lastWinner}
}

// IndexUnderPointer returns which of n slices sits under the fixed top
// pointer for a wheel rotated by rotation degrees.
func IndexUnderPointer(n int, rotation float64) int {
	width := 360.0 / float64(n)
	at := mod360(360 - mod360(rotation))
	idx := int(at / width)
	if idx >= n { // guard against at == 360 after float rounding
		idx = 0
	}
	return idx
}

// mod360 maps any angle into [0, 360).
func mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
