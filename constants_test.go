package impact

import (
	"errors"
	"testing"
)

func TestTargetTypeLookups(t *testing.T) {
	for _, exp := range []struct {
		t            TargetType
		cd, beta, ct float64
	}{{Rock, 1.88, 0.22, 0.80}, {Ice, 1.54, 0.165, 1.3}, {Sand, 1.6, 0.22, 0.80}} {
		if err := exp.t.Validate(); err != nil {
			t.Fatalf("%s: %s", exp.t, err)
		}
		if exp.t.Cd() != exp.cd || exp.t.Beta() != exp.beta || exp.t.Ct() != exp.ct {
			t.Fatalf("%s: incorrect coefficients", exp.t)
		}
	}
}

func TestTargetTypeInvalid(t *testing.T) {
	bad := TargetType(3)
	var rErr *RangeError
	if err := bad.Validate(); !errors.As(err, &rErr) {
		t.Fatalf("expected a RangeError, got %v", err)
	}
	assertPanic(t, func() { bad.Cd() })
	assertPanic(t, func() { bad.Beta() })
	assertPanic(t, func() { bad.Ct() })
}

func TestTargetTypeFromString(t *testing.T) {
	for name, exp := range map[string]TargetType{"rock": Rock, "ICE": Ice, "sand": Sand, "regolith": Sand, "porous": Sand, "0": Rock, "1": Ice, "2": Sand} {
		got, err := TargetTypeFromString(name)
		if err != nil {
			t.Fatalf("%s: %s", name, err)
		}
		if got != exp {
			t.Fatalf("%s: got %s exp %s", name, got, exp)
		}
		if back, _ := TargetTypeFromString(got.String()); back != got {
			t.Fatalf("%s does not round trip", got)
		}
	}
	for _, name := range []string{"3", " 3", "-1\n"} {
		var rErr *RangeError
		if _, err := TargetTypeFromString(name); !errors.As(err, &rErr) {
			t.Fatalf("%q: expected a RangeError, got %v", name, err)
		}
	}
	if _, err := TargetTypeFromString("lava"); err == nil {
		t.Fatal("lava is not a target type")
	}
}

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("code did not panic")
		}
	}()
	f()
}
