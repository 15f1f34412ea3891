package impact

import (
	"fmt"
	"strings"
)

// CelestialObject defines a body which may be impacted or whose orbit may be computed.
type CelestialObject struct {
	Name    string
	Gravity float64 // surface gravity (m/s^2)
	a       float64 // heliocentric semi-major axis (AU), -1 if not orbiting the Sun directly
}

// SemiMajorAxis returns the heliocentric semi-major axis in AU, and whether it is defined.
func (c CelestialObject) SemiMajorAxis() (float64, bool) {
	return c.a, c.a > 0
}

// OrbitalInputs returns the Kepler inputs of this body around the Sun.
func (c CelestialObject) OrbitalInputs() (OrbitalInputs, error) {
	if c.a <= 0 {
		return OrbitalInputs{}, fmt.Errorf("%s does not orbit the Sun directly", c.Name)
	}
	return OrbitalInputs{StellarMassSolarUnits: 1, SemiMajorAxisAU: c.a}, nil
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Gravity == b.Gravity && c.a == b.a
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "moon", "luna":
		return Moon, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined body '%s'", name)
	}
}

/* Definitions */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 274.0, -1}

// Mercury is hot.
var Mercury = CelestialObject{"Mercury", 3.70, 0.387098}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 8.87, 0.723332}

// Earth is home.
var Earth = CelestialObject{"Earth", EarthGravity, 1.000001018}

// Moon is the lunar reference for the crater transition diameters.
var Moon = CelestialObject{"Moon", MoonGravity, -1}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3.71, 1.523679}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 24.79, 5.2044}

// Saturn floats and that's really cool.
var Saturn = CelestialObject{"Saturn", 10.44, 9.5826}

// Uranus is no joke.
var Uranus = CelestialObject{"Uranus", 8.69, 19.2184}

// Neptune is far.
var Neptune = CelestialObject{"Neptune", 11.15, 30.11}
