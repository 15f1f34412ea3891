package impact

import (
	"errors"
	"math"

	"github.com/soniakeys/unit"
)

const (
	bisectionIterations = 200
	maxBracketDoublings = 128
)

// SizingInputs defines a transient crater and the conditions of the impact which formed it.
type SizingInputs struct {
	TransientDiameterM    float64 // transient crater diameter (m)
	VelocityKmPerS        float64
	TargetDensityKgM3     float64
	ProjectileDensityKgM3 float64
	ImpactAngleDeg        float64
	GravityMS2            float64
	TargetType            TargetType
}

// Validate returns the first DomainError or RangeError of these inputs.
func (in SizingInputs) Validate() error {
	return firstErr(
		positive("transient crater diameter (m)", in.TransientDiameterM),
		positive("velocity (km/s)", in.VelocityKmPerS),
		positive("target density (kg/m^3)", in.TargetDensityKgM3),
		positive("projectile density (kg/m^3)", in.ProjectileDensityKgM3),
		positive("gravity (m/s^2)", in.GravityMS2),
		impactAngle(in.ImpactAngleDeg),
		in.TargetType.Validate(),
	)
}

// SizingFromCrater returns the sizing inputs which use the conditions of the
// provided crater inputs and the given transient diameter.
func SizingFromCrater(in CraterInputs, transientDiameterM float64) SizingInputs {
	return SizingInputs{
		TransientDiameterM:    transientDiameterM,
		VelocityKmPerS:        in.VelocityKmPerS,
		TargetDensityKgM3:     in.TargetDensityKgM3,
		ProjectileDensityKgM3: in.ProjectileDensityKgM3,
		ImpactAngleDeg:        in.ImpactAngleDeg,
		GravityMS2:            in.GravityMS2,
		TargetType:            in.TargetType,
	}
}

// ProjectileEstimate is the projectile diameter (m) which forms the crater, per scaling law.
type ProjectileEstimate struct {
	Lpiscale float64 `json:"Lpiscale"`
	Lyield   float64 `json:"Lyield"`
	Lgault   float64 `json:"Lgault"`
}

// EstimateProjectile inverts the three scaling laws used by ComputeCrater.
func EstimateProjectile(in SizingInputs) (ProjectileEstimate, error) {
	if err := in.Validate(); err != nil {
		return ProjectileEstimate{}, err
	}
	D := in.TransientDiameterM
	ρt, ρp, g := in.TargetDensityKgM3, in.ProjectileDensityKgM3, in.GravityMS2
	v := 1000 * in.VelocityKmPerS
	anglefac := math.Pow(math.Sin(unit.AngleFromDeg(in.ImpactAngleDeg).Rad()), third)
	densfac := math.Pow(ρp, 1.0/6) / math.Sqrt(ρt)
	pifac := 1.61 * g / (v * v)

	// Pi-scaling is D = K L^(1-β).
	β := in.TargetType.Beta()
	K := math.Pow(math.Pi*ρp/(6*ρt), third) * in.TargetType.Cd() * math.Pow(pifac, -β) * anglefac
	var est ProjectileEstimate
	est.Lpiscale = math.Pow(D/K, 1/(1-β))

	KE := gaultEnergy(D/math.Pow(MoonGravity/g, 0.165), densfac, anglefac, in.TargetType)
	est.Lgault = diameterFromEnergy(KE, ρp, v)

	// Yield scaling is monotonic in L but not invertible in closed form.
	yield := func(L float64) float64 {
		m := (math.Pi / 6) * ρp * L * L * L
		return yieldDiameter(0.5*m*v*v, L, ρp, ρt, anglefac, g)
	}
	L, err := bisect(yield, D)
	if err != nil {
		return ProjectileEstimate{}, err
	}
	est.Lyield = L
	return est, nil
}

// gaultEnergy inverts the unscaled Gault diameter D0 into a kinetic energy.
// The regime is the one the forward law would select for the returned energy.
// Where both regimes reach D0 the large-crater energy is returned; where
// neither does (a gap above the threshold for sand) the energy at the regime
// switch is returned, i.e. the smallest projectile forming a large crater.
func gaultEnergy(D0, densfac, anglefac float64, t TargetType) float64 {
	KE := math.Pow(D0/(0.27*densfac*anglefac), 1/0.28)
	if gaultSmall(densfac, KE, anglefac, t) >= giantGaultThreshold {
		return KE
	}
	c, p, angle := gaultSmallFit(t, anglefac)
	return math.Pow(math.Min(D0, giantGaultThreshold)/(c*densfac*angle), 1/p)
}

// diameterFromEnergy returns the diameter of a spherical projectile of
// density ρp whose kinetic energy at velocity v (m/s) is KE.
func diameterFromEnergy(KE, ρp, v float64) float64 {
	return math.Cbrt(12 * KE / (math.Pi * ρp * v * v))
}

// bisect returns x > 0 such that f(x) = target for an increasing f with f(0+) < target.
func bisect(f func(float64) float64, target float64) (float64, error) {
	lo, hi := 0.0, 1.0
	for i := 0; f(hi) < target; i++ {
		if i == maxBracketDoublings {
			return 0, errors.New("could not bracket the projectile diameter")
		}
		lo = hi
		hi *= 2
	}
	for i := 0; i < bisectionIterations; i++ {
		mid := 0.5 * (lo + hi)
		if mid == lo || mid == hi {
			break
		}
		if f(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}
