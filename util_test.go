package polyroot

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with an absolute tolerance and treats NaNs as equal,
// which is what root slots need.
func approx(eps float64) cmp.Option {
	return cmp.Options{
		cmpopts.EquateApprox(0, eps),
		cmpopts.EquateNaNs(),
	}
}

// realRoots returns the non-NaN roots, sorted.
func realRoots[T Float](roots []T) []float64 {
	out := make([]float64, 0, len(roots))
	for _, r := range roots {
		if !isNaN(r) {
			out = append(out, float64(r))
		}
	}
	slices.Sort(out)
	return out
}

// checkRoots compares the real roots among roots with expected, ignoring order
// and NaN padding.
func checkRoots[T Float](t *testing.T, roots []T, expected []float64) {
	t.Helper()
	got := realRoots(roots)
	if len(got) != len(expected) {
		t.Fatalf("got %d roots %v, expected %d %v", len(got), got, len(expected), expected)
	}
	const epsilon = 1e-12
	expected = slices.Clone(expected)
	slices.Sort(expected)
	for i := range got {
		if math.Abs(got[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, got[i], expected[i])
		}
	}
}

// nanCount returns the number of NaN slots in roots.
func nanCount[T Float](roots []T) int {
	n := 0
	for _, r := range roots {
		if isNaN(r) {
			n++
		}
	}
	return n
}
