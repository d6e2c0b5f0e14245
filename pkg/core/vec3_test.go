package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Clamp", NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(3, 4, 12)

	if v.Dot(NewVec3(1, 1, 1)) != 19 {
		t.Errorf("Expected dot 19, got %f", v.Dot(NewVec3(1, 1, 1)))
	}
	if v.LengthSquared() != 169 {
		t.Errorf("Expected squared length 169, got %f", v.LengthSquared())
	}
	if v.Length() != 13 {
		t.Errorf("Expected length 13, got %f", v.Length())
	}
	if math.Abs(v.Normalize().Length()-1) > 1e-12 {
		t.Errorf("Normalized vector should have unit length, got %f", v.Normalize().Length())
	}
	if !NewVec3(0, 0, 0).Normalize().Equals(NewVec3(0, 0, 0)) {
		t.Error("Normalizing the zero vector should return zero")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -2))

	if !ray.At(0).Equals(ray.Origin) {
		t.Errorf("At(0) should be the origin, got %v", ray.At(0))
	}
	if !ray.At(1.5).Equals(NewVec3(1, 1, -2)) {
		t.Errorf("Expected (1,1,-2), got %v", ray.At(1.5))
	}
	// Direction is never normalized on construction
	if ray.Direction.Length() != 2 {
		t.Errorf("Direction should keep its magnitude, got %f", ray.Direction.Length())
	}
}
