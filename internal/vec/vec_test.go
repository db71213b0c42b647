package vec

import (
	"math"
	"testing"
)

func TestAddSubScale(t *testing.T) {
	a := New(1, 2, 0)
	b := New(3, -4, 0)

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != -2 || sum.Z != 0 {
		t.Errorf("Add: got %+v", sum)
	}

	diff := a.Sub(b)
	if diff.X != -2 || diff.Y != 6 || diff.Z != 0 {
		t.Errorf("Sub: got %+v", diff)
	}

	scaled := a.Scale(2.5)
	if scaled.X != 2.5 || scaled.Y != 5 || scaled.Z != 0 {
		t.Errorf("Scale: got %+v", scaled)
	}
}

func TestLen(t *testing.T) {
	v := New(3, 4, 0)
	if v.Len() != 5 {
		t.Errorf("Len: got %f, want 5", v.Len())
	}
	if v.LenSq() != 25 {
		t.Errorf("LenSq: got %f, want 25", v.LenSq())
	}
}

func TestNormalize(t *testing.T) {
	v := New(10, 0, 0).Normalize()
	if v.X != 1 || v.Y != 0 {
		t.Errorf("Normalize: got %+v", v)
	}

	diag := New(1, 1, 0).Normalize()
	if math.Abs(diag.Len()-1) > 1e-12 {
		t.Errorf("Normalize: length %f, want 1", diag.Len())
	}
}

func TestNormalizeZero(t *testing.T) {
	z := Vec3{}.Normalize()
	if z.X != 0 || z.Y != 0 || z.Z != 0 {
		t.Errorf("Normalize of zero vector should be zero, got %+v", z)
	}
}
