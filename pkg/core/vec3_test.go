package core

import (
	"math"
	"math/rand"
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
		{"Divide", b.Divide(2), NewVec3(2, -2.5, 3)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if d := a.Dot(b); d != 12 {
		t.Errorf("Expected dot product 12, got %f", d)
	}
	if l := NewVec3(3, 4, 0).Length(); l != 5 {
		t.Errorf("Expected length 5, got %f", l)
	}
}

func TestVec3_UnitHasLengthOne(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := NewVec3(random.NormFloat64()*10, random.NormFloat64()*10, random.NormFloat64()*10)
		if v.LengthSquared() == 0 {
			continue
		}
		if l := v.Unit().Length(); math.Abs(l-1) > 1e-12 {
			t.Fatalf("Unit(%v) has length %f", v, l)
		}
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"Zero", NewVec3(0, 0, 0), true},
		{"Tiny", NewVec3(1e-9, -1e-9, 5e-9), true},
		{"One component large", NewVec3(1e-9, 1e-3, 0), false},
		{"Unit", NewVec3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v) = %t, expected %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestVec3_Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)

	got := v.Reflect(n)
	expected := NewVec3(1, 1, 0)
	if !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestVec3_Refract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	t.Run("Index ratio 1 passes straight through", func(t *testing.T) {
		v := NewVec3(1, -1, 0).Unit()
		got := v.Refract(n, 1.0)
		if got.Subtract(v).Length() > 1e-12 {
			t.Errorf("Expected %v, got %v", v, got)
		}
	})

	t.Run("Normal incidence is unchanged", func(t *testing.T) {
		v := NewVec3(0, -1, 0)
		got := v.Refract(n, 1.0/1.5)
		if got.Subtract(v).Length() > 1e-12 {
			t.Errorf("Expected %v, got %v", v, got)
		}
	})

	t.Run("Obeys Snell's law", func(t *testing.T) {
		eta := 1.0 / 1.5
		v := NewVec3(math.Sin(math.Pi/4), -math.Cos(math.Pi/4), 0)
		got := v.Refract(n, eta)

		sinIn := math.Sqrt(1 - math.Pow(v.Negate().Dot(n), 2))
		sinOut := math.Sqrt(1 - math.Pow(got.Negate().Dot(n), 2))
		if math.Abs(sinOut-eta*sinIn) > 1e-12 {
			t.Errorf("Expected sin(out)=%f, got %f", eta*sinIn, sinOut)
		}
		if math.Abs(got.Length()-1) > 1e-12 {
			t.Errorf("Refracted direction should be unit length, got %f", got.Length())
		}
	})
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -2))
	if got := ray.At(1.5); !got.Equals(NewVec3(1, 1, -2)) {
		t.Errorf("Expected (1, 1, -2), got %v", got)
	}
	if got := ray.At(0); !got.Equals(ray.Origin) {
		t.Errorf("At(0) should be the origin, got %v", got)
	}
}
