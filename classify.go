package impact

import "math"

// gaultSmallFit returns the coefficient, energy exponent and angle factor of
// the small-crater Gault fit for the target type.
func gaultSmallFit(t TargetType, anglefac float64) (c, p, angle float64) {
	if t == Sand {
		return 0.015, 0.37, anglefac * anglefac
	}
	return 0.25, 0.29, anglefac
}

// gaultSmall is the unscaled small-crater Gault estimate.
func gaultSmall(densfac, KE, anglefac float64, t TargetType) float64 {
	c, p, angle := gaultSmallFit(t, anglefac)
	return c * densfac * math.Pow(KE, p) * angle
}

// gaultLarge is the unscaled large-crater Gault estimate.
func gaultLarge(densfac, KE, anglefac float64) float64 {
	return 0.27 * densfac * math.Pow(KE, 0.28) * anglefac
}

// gaultDiameter returns the unscaled small-crater estimate and the Gault (1974)
// semi-empirical transient diameter scaled from lunar gravity. At or above
// giantGaultThreshold the large-crater fit replaces the small one.
func gaultDiameter(densfac, KE, anglefac, g float64, t TargetType) (gsmall, D float64) {
	gsmall = gaultSmall(densfac, KE, anglefac, t)
	if gsmall < giantGaultThreshold {
		D = gsmall
	} else {
		D = gaultLarge(densfac, KE, anglefac)
	}
	D *= math.Pow(MoonGravity/g, 0.165)
	return
}

// classify returns the final crater diameter and type from the simple crater
// diameter, the simple/complex transition and the peak-ring transition.
// Later rules override earlier ones: the transitional band wins over the
// simple/complex split, and peak-ring wins over both.
func classify(Dsimple, Dstar, Dpr float64) (Dfinal float64, t CraterType) {
	if Dsimple < Dstar {
		Dfinal = Dsimple
		t = Simple
	} else {
		Dfinal = math.Pow(Dsimple, 1.18) / math.Pow(Dstar, 0.18)
		t = Complex
	}
	if Dsimple > 0.71*Dstar && Dsimple < 1.4*Dstar {
		t = SimpleComplex
	}
	if Dfinal > Dpr {
		t = PeakRing
	}
	return
}
