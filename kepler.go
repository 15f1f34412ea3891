package impact

import (
	"math"
	"time"
)

// OrbitalInputs defines a body orbiting a star.
type OrbitalInputs struct {
	StellarMassSolarUnits float64 // mass of the central star in solar masses
	SemiMajorAxisAU       float64 // semi-major axis in AU
}

// Validate returns a DomainError if either quantity is not strictly positive.
func (in OrbitalInputs) Validate() error {
	return firstErr(
		positive("stellar mass (solar masses)", in.StellarMassSolarUnits),
		positive("semi-major axis (AU)", in.SemiMajorAxisAU),
	)
}

// OrbitalResult is the orbital period computed by ComputePeriod.
type OrbitalResult struct {
	PeriodYears float64
}

// Seconds returns the period in seconds.
func (r OrbitalResult) Seconds() float64 {
	return r.PeriodYears * SiderealYear
}

// Duration returns the period as a time.Duration, truncated to the nanosecond.
// Periods longer than ~292 years saturate at the maximum duration.
func (r OrbitalResult) Duration() time.Duration {
	ns := r.Seconds() * float64(time.Second)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}

// ComputePeriod returns the orbital period from Kepler's Third Law.
func ComputePeriod(in OrbitalInputs) (OrbitalResult, error) {
	if err := in.Validate(); err != nil {
		return OrbitalResult{}, err
	}
	mass := in.StellarMassSolarUnits * SolarMass
	a := in.SemiMajorAxisAU * AU
	P := math.Sqrt(4 * math.Pi * math.Pi * math.Pow(a, 3) / (G * mass))
	return OrbitalResult{PeriodYears: P / SiderealYear}, nil
}
