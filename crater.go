package impact

import (
	"math"

	"github.com/soniakeys/unit"
)

const third = 1.0 / 3.0

// CraterInputs defines the projectile, the conditions of impact and the state of the target.
type CraterInputs struct {
	ProjectileDiameterM   float64    // L (m)
	VelocityKmPerS        float64    // impact velocity (km/s)
	TargetDensityKgM3     float64    // kg/m^3
	ProjectileDensityKgM3 float64    // kg/m^3
	ImpactAngleDeg        float64    // from the horizontal, in (0, 90]
	GravityMS2            float64    // surface gravity of the target (m/s^2)
	EffectRadiusKm        float64    // distance at which the seismic effect is evaluated (km)
	TargetType            TargetType // rock, ice or sand
}

// Validate returns the first DomainError or RangeError of these inputs.
func (in CraterInputs) Validate() error {
	return firstErr(
		positive("projectile diameter (m)", in.ProjectileDiameterM),
		positive("velocity (km/s)", in.VelocityKmPerS),
		positive("target density (kg/m^3)", in.TargetDensityKgM3),
		positive("projectile density (kg/m^3)", in.ProjectileDensityKgM3),
		positive("gravity (m/s^2)", in.GravityMS2),
		nonNegative("effect radius (km)", in.EffectRadiusKm),
		impactAngle(in.ImpactAngleDeg),
		in.TargetType.Validate(),
	)
}

// MeteorCrater returns the inputs of Meteor Crater, Arizona: a 40 m iron
// projectile at 20 km/s onto porous sandstone.
func MeteorCrater() CraterInputs {
	return CraterInputs{
		ProjectileDiameterM:   40,
		VelocityKmPerS:        20,
		TargetDensityKgM3:     2500,
		ProjectileDensityKgM3: 8000,
		ImpactAngleDeg:        unit.Angle(0.787).Deg(),
		GravityMS2:            9.18,
		EffectRadiusKm:        10,
		TargetType:            Sand,
	}
}

// CraterType is the morphological class of the final crater.
type CraterType string

// Crater types, as reported.
const (
	Simple        CraterType = "Simple"
	Complex       CraterType = "Complex"
	SimpleComplex CraterType = "Simple/Complex"
	PeakRing      CraterType = "Peak-ring"
)

// Diagnostics holds the intermediate values of a crater computation.
type Diagnostics struct {
	AngleFac float64 `json:"anglefac"` // impact angle factor
	DensFac  float64 `json:"densfac"`  // density factor
	PiFac    float64 `json:"pifac"`    // inverse Froude length factor
	Ct       float64 `json:"Ct"`       // formation time coefficient
	DStar    float64 `json:"Dstar"`    // simple to complex transition diameter (m)
	DPr      float64 `json:"Dpr"`      // peak-ring transition diameter (m)
	Mass     float64 `json:"m"`        // projectile mass (kg)
	PiTwo    float64 `json:"pitwo"`    // inverse Froude number
	DScale   float64 `json:"dscale"`   // crater diameter scale (m)
	GSmall   float64 `json:"gsmall"`   // unscaled small-crater Gault estimate (m)
	DSimple  float64 `json:"Dsimple"`  // simple crater diameter from pi-scaling (m)
}

// CraterResult is every quantity derived from a CraterInputs.
type CraterResult struct {
	ImpactorVolume                  float64     `json:"impactorVolume"`
	CraterType                      CraterType  `json:"craterType"`
	ImpactorMass                    float64     `json:"impactorMass"`
	Dyield                          float64     `json:"Dyield"`
	ContinuousEjectaBlanketDiameter float64     `json:"continuousEjectaBlanketDiameter"`
	ProjectileKE                    float64     `json:"projectileKE"`
	Dpiscale                        float64     `json:"Dpiscale"`
	EjectaSpreadRadius              float64     `json:"ejectaSpreadRadius"`
	EnergyMegatonsTNT               float64     `json:"energyMegatonsTNT"`
	Dgault                          float64     `json:"Dgault"`
	M                               float64     `json:"M"` // seismic magnitude at the impact site
	NL                              float64     `json:"nL"`
	MEff                            float64     `json:"mEff"`
	Dfinal                          float64     `json:"Dfinal"`
	Tform                           float64     `json:"Tform"`
	Diagnostics                     Diagnostics `json:"diagnostics"`
}

// ComputeCrater evaluates the crater scaling laws of Melosh (Impact Cratering,
// chapter 7) for the provided inputs. The transient diameter is estimated by
// pi-scaling (Schmidt and Holsapple 1987), yield scaling (Nordyke 1962) and
// Gault (1974); the final diameter and crater type follow from pi-scaling.
func ComputeCrater(in CraterInputs) (CraterResult, error) {
	if err := in.Validate(); err != nil {
		return CraterResult{}, err
	}
	var d Diagnostics
	L := in.ProjectileDiameterM
	ρt, ρp, g := in.TargetDensityKgM3, in.ProjectileDensityKgM3, in.GravityMS2

	// Units to SI and auxiliary factors.
	v := 1000 * in.VelocityKmPerS
	θ := unit.AngleFromDeg(in.ImpactAngleDeg)
	d.AngleFac = math.Pow(math.Sin(θ.Rad()), third)
	d.DensFac = math.Pow(ρp, 1.0/6) / math.Sqrt(ρt)
	d.PiFac = 1.61 * g / (v * v)
	d.Ct = in.TargetType.Ct()
	d.DStar = transitionDiameter(MoonDStar, g, ρt)
	d.DPr = transitionDiameter(MoonDPeakRing, g, ρt)

	// Projectile.
	d.Mass = (math.Pi / 6) * ρp * L * L * L
	KE := 0.5 * d.Mass * v * v
	nL := 1148 / math.Pow(L/1000, 2.354)
	d.PiTwo = d.PiFac * L
	d.DScale = math.Pow(d.Mass/ρt, third)

	Dpiscale := d.DScale * in.TargetType.Cd() * math.Pow(d.PiTwo, -in.TargetType.Beta()) * d.AngleFac
	Dyield := yieldDiameter(KE, L, ρp, ρt, d.AngleFac, g)
	var Dgault float64
	d.GSmall, Dgault = gaultDiameter(d.DensFac, KE, d.AngleFac, g, in.TargetType)

	Tform := (d.Ct * L / v) * math.Pow(d.PiTwo, -0.61)

	d.DSimple = 1.56 * Dpiscale
	Dfinal, craterType := classify(d.DSimple, d.DStar, d.DPr)

	volume := (4.0 / 3) * math.Pi * math.Pow(L/2, 3)
	M := seismicMagnitude(KE)

	return CraterResult{
		ImpactorVolume:                  volume,
		CraterType:                      craterType,
		ImpactorMass:                    volume * ρp,
		Dyield:                          Dyield,
		ContinuousEjectaBlanketDiameter: 2 * Dfinal,
		ProjectileKE:                    KE,
		Dpiscale:                        Dpiscale,
		EjectaSpreadRadius:              2.15 * Dfinal,
		EnergyMegatonsTNT:               KE * megatonsPerJoule,
		Dgault:                          Dgault,
		M:                               M,
		NL:                              nL,
		MEff:                            M - 0.0238*in.EffectRadiusKm,
		Dfinal:                          Dfinal,
		Tform:                           Tform,
		Diagnostics:                     d,
	}, nil
}

// transitionDiameter scales a lunar transition diameter to gravity g and target density ρt.
func transitionDiameter(moonD, g, ρt float64) float64 {
	return (MoonGravity * MoonDensity * moonD) / (g * ρt)
}

// yieldDiameter is the Nordyke yield scaling with a small correction for the
// depth of projectile penetration, scaled from Earth gravity.
func yieldDiameter(KE, L, ρp, ρt, anglefac, g float64) float64 {
	D := 0.0133*math.Pow(KE, 1/3.4) + 1.51*math.Sqrt(ρp/ρt)*L
	return D * anglefac * math.Pow(EarthGravity/g, 0.165)
}

// seismicMagnitude is the Richter magnitude at the impact site, from the
// Schultz and Gault relation M = 0.67 log10(KE) - 5.87.
func seismicMagnitude(KE float64) float64 {
	return 0.67*math.Log10(KE) - 5.87
}
