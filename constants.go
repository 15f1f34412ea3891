package impact

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// G is the gravitational constant (m^3 kg^-1 s^-2).
	G = 6.67384e-11
	// AU is one astronomical unit in meters.
	AU = 1.49597870700e11
	// SolarMass is the mass of the Sun in kilograms.
	SolarMass = 1.9889e30
	// SiderealYear is one sidereal year in seconds.
	SiderealYear = 3.15581450e7
)

// Gravity conversion factors and the lunar reference crater used to
// scale transition diameters to other bodies.
const (
	EarthGravity  = 9.8   // m/s^2
	MoonGravity   = 1.67  // m/s^2
	MoonDensity   = 2700  // kg/m^3
	MoonDStar     = 1.8e4 // simple to complex transition on the Moon (m)
	MoonDPeakRing = 1.4e5 // complex to peak-ring transition on the Moon (m)
)

const (
	// megatonsPerJoule converts joules to megatons of TNT.
	megatonsPerJoule = 2.387665e-16
	// giantGaultThreshold is the Gault regime switch (m).
	giantGaultThreshold = 100
)

// TargetType is the nature of the impacted surface.
type TargetType uint8

const (
	// Rock is competent rock.
	Rock TargetType = iota
	// Ice is a cold icy target.
	Ice
	// Sand is sand or porous regolith.
	Sand
)

// Validate returns a RangeError if the target type is unknown.
func (t TargetType) Validate() error {
	switch t {
	case Rock, Ice, Sand:
		return nil
	default:
		return &RangeError{Quantity: "target type", Value: float64(t), Min: float64(Rock), Max: float64(Sand)}
	}
}

// Cd returns the Schmidt-Holsapple pi-scaling coefficient.
func (t TargetType) Cd() float64 {
	switch t {
	case Rock:
		return 1.88
	case Ice:
		return 1.54
	case Sand:
		return 1.6
	}
	panic(fmt.Errorf("no Cd for %s", t))
}

// Beta returns the Schmidt-Holsapple pi-scaling exponent.
func (t TargetType) Beta() float64 {
	switch t {
	case Rock, Sand:
		return 0.22
	case Ice:
		return 0.165
	}
	panic(fmt.Errorf("no beta for %s", t))
}

// Ct returns the Schmidt and Housen formation time coefficient.
func (t TargetType) Ct() float64 {
	switch t {
	case Rock, Sand:
		return 0.80
	case Ice:
		return 1.3
	}
	panic(fmt.Errorf("no Ct for %s", t))
}

// String implements the Stringer interface.
func (t TargetType) String() string {
	switch t {
	case Rock:
		return "rock"
	case Ice:
		return "ice"
	case Sand:
		return "sand"
	default:
		return fmt.Sprintf("target(%d)", uint8(t))
	}
}

// TargetTypeFromString returns the target type from its name or index.
func TargetTypeFromString(name string) (TargetType, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "rock", "0":
		return Rock, nil
	case "ice", "1":
		return Ice, nil
	case "sand", "regolith", "porous", "2":
		return Sand, nil
	}
	if idx, err := strconv.Atoi(name); err == nil {
		return 0, &RangeError{Quantity: "target type", Value: float64(idx), Min: float64(Rock), Max: float64(Sand)}
	}
	return 0, fmt.Errorf("undefined target type '%s'", name)
}
