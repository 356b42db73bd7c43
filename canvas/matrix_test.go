package canvas

import (
	"math"
	"testing"
)

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix
		x, y   float64
		wx, wy float64
	}{
		{"identity", Identity(), 3, 4, 3, 4},
		{"translate", Translate(10, -5), 3, 4, 13, -1},
		{"scale", Scale(2, -1), 3, 4, 6, -4},
		{"translate then scale", Translate(10, 20).Multiply(Scale(2, 2)), 1, 1, 12, 22},
		{"scale then translate", Scale(2, 2).Multiply(Translate(10, 20)), 1, 1, 22, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.m.Apply(tt.x, tt.y)
			if x != tt.wx || y != tt.wy {
				t.Errorf("Apply(%g, %g) = (%g, %g), want (%g, %g)", tt.x, tt.y, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if !Scale(1, 1).IsIdentity() {
		t.Error("Scale(1, 1).IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1, 0).IsIdentity() = true")
	}
}

func TestMatrixScaleFactor(t *testing.T) {
	tests := []struct {
		m    Matrix
		want float64
	}{
		{Identity(), 1},
		{Translate(100, 100), 1},
		{Scale(2, 2), 2},
		{Scale(0.5, -0.5), 0.5},
		{Scale(4, 1), 2},
	}
	for _, tt := range tests {
		if got := tt.m.ScaleFactor(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Matrix%+v.ScaleFactor() = %g, want %g", tt.m, got, tt.want)
		}
	}
}
