package impact

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSizingRoundTrip(t *testing.T) {
	for _, in := range []CraterInputs{
		MeteorCrater(),
		{0.05, 20, 2500, 3000, 45, EarthGravity, 0, Rock},
		{0.2, 15, 2500, 3000, 45, EarthGravity, 0, Sand},
		{10, 20, 917, 1000, 60, 1.31, 0, Ice},
		{1000, 20, 2500, 3000, 45, EarthGravity, 0, Rock},
		// Large Gault regime just above and away from the switch.
		{3.3, 20, 2500, 3000, 45, MoonGravity, 0, Rock},
		{4, 20, 2500, 3000, 45, MoonGravity, 0, Rock},
		{5, 20, 2500, 3000, 45, MoonGravity, 0, Rock},
	} {
		rslt, err := ComputeCrater(in)
		if err != nil {
			t.Fatalf("err %s", err)
		}
		L := in.ProjectileDiameterM
		for _, sz := range []struct {
			name string
			D    float64
			get  func(ProjectileEstimate) float64
		}{
			{"pi", rslt.Dpiscale, func(e ProjectileEstimate) float64 { return e.Lpiscale }},
			{"yield", rslt.Dyield, func(e ProjectileEstimate) float64 { return e.Lyield }},
			{"gault", rslt.Dgault, func(e ProjectileEstimate) float64 { return e.Lgault }},
		} {
			est, err := EstimateProjectile(SizingFromCrater(in, sz.D))
			if err != nil {
				t.Fatalf("err %s", err)
			}
			if got := sz.get(est); !scalar.EqualWithinRel(got, L, 1e-9) {
				t.Fatalf("%s scaling of L=%f (%s): got %.12f", sz.name, L, in.TargetType, got)
			}
		}
	}
}

func TestGaultInverseOverlap(t *testing.T) {
	// Both Gault regimes reach this diameter: the large-crater projectile is returned.
	in := CraterInputs{3.1, 20, 2500, 3000, 45, MoonGravity, 0, Rock}
	rslt, err := ComputeCrater(in)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if rslt.Diagnostics.GSmall >= giantGaultThreshold {
		t.Fatalf("expected a small Gault crater, gsmall=%f", rslt.Diagnostics.GSmall)
	}
	est, err := EstimateProjectile(SizingFromCrater(in, rslt.Dgault))
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if est.Lgault <= in.ProjectileDiameterM {
		t.Fatalf("expected the large-crater projectile, got L=%f", est.Lgault)
	}
	in.ProjectileDiameterM = est.Lgault
	back, err := ComputeCrater(in)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if back.Diagnostics.GSmall < giantGaultThreshold {
		t.Fatalf("expected a large Gault crater, gsmall=%f", back.Diagnostics.GSmall)
	}
	if !scalar.EqualWithinRel(back.Dgault, rslt.Dgault, 1e-9) {
		t.Fatalf("Dgault=%f expected %f", back.Dgault, rslt.Dgault)
	}
}

func TestGaultInverseSandGap(t *testing.T) {
	// No sand projectile forms a 110 m Gault crater: the regime switch is returned.
	in := SizingInputs{110, 20, 2500, 3000, 45, MoonGravity, Sand}
	est, err := EstimateProjectile(in)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	rslt, err := ComputeCrater(CraterInputs{est.Lgault, 20, 2500, 3000, 45, MoonGravity, 0, Sand})
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !scalar.EqualWithinRel(rslt.Diagnostics.GSmall, giantGaultThreshold, 1e-9) {
		t.Fatalf("gsmall=%f expected the regime switch", rslt.Diagnostics.GSmall)
	}
}

func TestSizingErrors(t *testing.T) {
	in := SizingFromCrater(MeteorCrater(), 0)
	var dErr *DomainError
	if _, err := EstimateProjectile(in); !errors.As(err, &dErr) {
		t.Fatalf("expected a DomainError, got %v", err)
	}
	in.TransientDiameterM = 1000
	in.TargetType = 7
	var rErr *RangeError
	if _, err := EstimateProjectile(in); !errors.As(err, &rErr) {
		t.Fatalf("expected a RangeError, got %v", err)
	}
}

func TestBisect(t *testing.T) {
	x, err := bisect(func(x float64) float64 { return x * x * x }, 27)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !scalar.EqualWithinRel(x, 3, 1e-12) {
		t.Fatalf("x=%f", x)
	}
	if _, err := bisect(func(float64) float64 { return 0 }, 1); err == nil {
		t.Fatal("expected a bracketing error")
	}
}
