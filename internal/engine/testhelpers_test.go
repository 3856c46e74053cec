package engine

import (
	"math"
	"testing"
)

// approxEqual checks two floats within a relative tolerance.
func approxEqual(t *testing.T, name string, got, want, relTol float64) {
	t.Helper()
	if want == 0 {
		if math.Abs(got) > relTol {
			t.Errorf("%s = %v, want 0 (tol %v)", name, got, relTol)
		}
		return
	}
	if math.Abs(got-want)/math.Abs(want) > relTol {
		t.Errorf("%s = %v, want %v (rel tol %v)", name, got, want, relTol)
	}
}
