package units

import "testing"

func assertVectorEqual(t *testing.T, got, want Vector, name string) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestVectorAddPrunesZero(t *testing.T) {
	a := Singleton("length", 1)
	b := Singleton("length", -1)
	assertVectorEqual(t, a.Add(b), NewVector(), "Add")
}

func TestVectorSub(t *testing.T) {
	a := Vector{"length": 2, "time": -1}
	b := Vector{"length": 1}
	assertVectorEqual(t, a.Sub(b), Vector{"length": 1, "time": -1}, "Sub")
}

func TestVectorScale(t *testing.T) {
	a := Vector{"length": 1, "time": -2}
	assertVectorEqual(t, a.Scale(2), Vector{"length": 2, "time": -4}, "Scale(2)")
	assertVectorEqual(t, a.Scale(0), NewVector(), "Scale(0)")
}

func TestVectorDivisibleByAndRoot(t *testing.T) {
	a := Vector{"length": 2, "time": -4}
	if !a.DivisibleBy(2) {
		t.Fatalf("expected %v to be divisible by 2", a)
	}
	assertVectorEqual(t, a.Root(2), Vector{"length": 1, "time": -2}, "Root(2)")

	b := Vector{"length": 3}
	if b.DivisibleBy(2) {
		t.Fatalf("expected %v not to be divisible by 2", b)
	}
}

func TestVectorKeysLexicographic(t *testing.T) {
	v := Vector{"time": 1, "length": 1, "mass": -1}
	keys := v.Keys()
	want := []string{"length", "mass", "time"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}
}

func TestVectorCloneIsIndependent(t *testing.T) {
	a := Vector{"length": 1}
	b := a.Clone()
	b["length"] = 2
	if a["length"] != 1 {
		t.Fatalf("Clone aliased the original: a = %v", a)
	}
}

func TestVectorPositiveNegative(t *testing.T) {
	v := Vector{"length": 2, "time": -1, "mass": -3}
	assertVectorEqual(t, v.Positive(), Vector{"length": 2}, "Positive")
	assertVectorEqual(t, v.Negative(), Vector{"time": -1, "mass": -3}, "Negative")
}
