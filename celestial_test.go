package impact

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestCelestialObject(t *testing.T) {
	for _, exp := range []struct {
		name   string
		body   CelestialObject
		period float64 // years
	}{{"Mercury", Mercury, 0.2408}, {"venus", Venus, 0.6152}, {"EARTH", Earth, 1.0}, {"mars", Mars, 1.8808},
		{"jupiter", Jupiter, 11.862}, {"saturn", Saturn, 29.457}, {"uranus", Uranus, 84.011}, {"neptune", Neptune, 164.8}} {
		body, err := CelestialObjectFromString(exp.name)
		if err != nil {
			t.Fatalf("err %s", err)
		}
		if !body.Equals(exp.body) {
			t.Fatalf("got %s exp %s", body, exp.body)
		}
		in, err := body.OrbitalInputs()
		if err != nil {
			t.Fatalf("err %s", err)
		}
		rslt, err := ComputePeriod(in)
		if err != nil {
			t.Fatalf("err %s", err)
		}
		if !scalar.EqualWithinRel(rslt.PeriodYears, exp.period, 1e-2) {
			t.Fatalf("%s period %f years, exp %f", body, rslt.PeriodYears, exp.period)
		}
	}
}

func TestCelestialObjectErrors(t *testing.T) {
	if _, err := CelestialObjectFromString("Vesta"); err == nil {
		t.Fatal("Vesta is not defined")
	}
	for _, body := range []CelestialObject{Sun, Moon} {
		if _, ok := body.SemiMajorAxis(); ok {
			t.Fatalf("%s should not have a heliocentric axis", body)
		}
		if _, err := body.OrbitalInputs(); err == nil {
			t.Fatalf("%s should not provide orbital inputs", body)
		}
	}
	moon, _ := CelestialObjectFromString("luna")
	if moon.Gravity != MoonGravity {
		t.Fatalf("moon gravity %f", moon.Gravity)
	}
}
