package roulette

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lomkinju/qienn/internal/apperr"
)

var testFoods = []string{"A", "B", "C", "D"}

func testWheel(seed int64, opts ...Option) *Wheel {
	all := append([]Option{
		WithRand(rand.New(rand.NewSource(seed))),
		WithSettleDelay(0), // settle synchronously
	}, opts...)
	return New(all...)
}

func TestSpinEmptyList(t *testing.T) {
	w := testWheel(1)
	if _, err := w.Spin(nil); !errors.Is(err, apperr.ErrEmptyWheel) {
		t.Errorf("err = %v, want ErrEmptyWheel", err)
	}
}

func TestSpinGuardsReentry(t *testing.T) {
	w := New(
		WithRand(rand.New(rand.NewSource(1))),
		WithSettleDelay(50*time.Millisecond),
	)
	if _, err := w.Spin(testFoods); err != nil {
		t.Fatalf("first spin: %v", err)
	}
	if _, err := w.Spin(testFoods); !errors.Is(err, apperr.ErrSpinInProgress) {
		t.Errorf("err = %v, want ErrSpinInProgress", err)
	}

	// After the settle delay the wheel accepts a new spin.
	deadline := time.Now().Add(2 * time.Second)
	for w.State().Spinning {
		if time.Now().After(deadline) {
			t.Fatal("wheel never settled")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if _, err := w.Spin(testFoods); err != nil {
		t.Errorf("re-spin after settle: %v", err)
	}
}

func TestSettleReportsWinner(t *testing.T) {
	var settled []Result
	w := testWheel(7, WithSettleFunc(func(r Result) { settled = append(settled, r) }))

	res, err := w.Spin(testFoods)
	if err != nil {
		t.Fatal(err)
	}
	st := w.State()
	if st.Spinning {
		t.Error("zero-delay spin should settle synchronously")
	}
	if st.LastWinner != res.Winner {
		t.Errorf("LastWinner = %q, want %q", st.LastWinner, res.Winner)
	}
	if len(settled) != 1 || settled[0].Winner != res.Winner {
		t.Errorf("settle callback = %+v", settled)
	}
}

func TestRotationMonotonicWithMinimumTurns(t *testing.T) {
	w := testWheel(42)
	prev := 0.0
	for i := 0; i < 100; i++ {
		res, err := w.Spin(testFoods)
		if err != nil {
			t.Fatal(err)
		}
		if res.Rotation < prev+5*360 {
			t.Fatalf("spin %d advanced only %.1f°, want ≥ %d°", i, res.Rotation-prev, 5*360)
		}
		prev = res.Rotation
	}
}

// The announced winner must be the slice the final rotation parks under the
// pointer, on every spin.
func TestPointerLandsInWinningSlice(t *testing.T) {
	w := testWheel(1234)
	for i := 0; i < 10000; i++ {
		res, err := w.Spin(testFoods)
		if err != nil {
			t.Fatal(err)
		}
		if got := IndexUnderPointer(len(testFoods), res.Rotation); got != res.WinningIndex {
			t.Fatalf("spin %d: pointer over slice %d, winner %d (rotation %.3f)",
				i, got, res.WinningIndex, res.Rotation)
		}
	}
}

func TestIndexTwoScenario(t *testing.T) {
	// Force winning index 2 of ["A","B","C","D"] and check the pointer ends
	// within slice [180°, 270°) on the unrotated wheel.
	var w *Wheel
	for seed := int64(0); ; seed++ {
		w = testWheel(seed)
		probe := rand.New(rand.NewSource(seed))
		if probe.Intn(4) == 2 {
			break
		}
	}
	res, err := w.Spin(testFoods)
	if err != nil {
		t.Fatal(err)
	}
	if res.WinningIndex != 2 || res.Winner != "C" {
		t.Fatalf("winner = %d %q, want 2 C", res.WinningIndex, res.Winner)
	}
	if res.SliceAngle != 90 {
		t.Errorf("slice angle = %.1f, want 90", res.SliceAngle)
	}
	// Wheel angle under the pointer after the spin.
	at := math.Mod(360-math.Mod(res.Rotation, 360), 360)
	if at < 180 || at >= 270 {
		t.Errorf("pointer at %.3f°, want within [180, 270)", at)
	}
}

func TestWinnerDistributionIsUniform(t *testing.T) {
	const spins = 10000
	w := testWheel(99)
	counts := make([]int, len(testFoods))
	for i := 0; i < spins; i++ {
		res, err := w.Spin(testFoods)
		if err != nil {
			t.Fatal(err)
		}
		counts[res.WinningIndex]++
	}

	// Chi-squared against uniform; 11.34 is the 99% critical value for 3
	// degrees of freedom.
	expected := float64(spins) / float64(len(testFoods))
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	if chi2 > 11.34 {
		t.Errorf("chi² = %.2f (counts %v), winners not uniform", chi2, counts)
	}
}

func TestIndexUnderPointer(t *testing.T) {
	// Unrotated wheel: slice 0 starts at the pointer.
	if got := IndexUnderPointer(4, 0); got != 0 {
		t.Errorf("IndexUnderPointer(4, 0) = %d, want 0", got)
	}
	// Rotating 135° forward brings wheel angle 225° (slice 2) under the pointer.
	if got := IndexUnderPointer(4, 135); got != 2 {
		t.Errorf("IndexUnderPointer(4, 135) = %d, want 2", got)
	}
	// Full turns are irrelevant.
	if got := IndexUnderPointer(4, 135+7*360); got != 2 {
		t.Errorf("IndexUnderPointer(4, 135+7*360) = %d, want 2", got)
	}
}
