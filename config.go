package impact

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables overriding a scenario,
// e.g. IMPACT_CRATER_VELOCITY.
const EnvPrefix = "IMPACT"

// Configuration keys.
const (
	KeyDiameter          = "crater.diameter"
	KeyVelocity          = "crater.velocity"
	KeyTargetDensity     = "crater.target_density"
	KeyProjectileDensity = "crater.projectile_density"
	KeyAngle             = "crater.angle"
	KeyGravity           = "crater.gravity"
	KeyEffectRadius      = "crater.effect_radius"
	KeyTarget            = "crater.target"
	KeyBody              = "crater.body"
	KeyStellarMass       = "orbit.mass"
	KeyAxis              = "orbit.axis"
	KeyPlanet            = "orbit.planet"
	KeyDecimals          = "output.decimals"
	KeyDiagnostics       = "output.diagnostics"
)

// NewConfig returns a viper instance with the Meteor Crater and Jupiter
// defaults, environment overrides, and the scenario file if one is provided.
func NewConfig(scenario string) (*viper.Viper, error) {
	v := viper.New()
	mc := MeteorCrater()
	v.SetDefault(KeyDiameter, mc.ProjectileDiameterM)
	v.SetDefault(KeyVelocity, mc.VelocityKmPerS)
	v.SetDefault(KeyTargetDensity, mc.TargetDensityKgM3)
	v.SetDefault(KeyProjectileDensity, mc.ProjectileDensityKgM3)
	v.SetDefault(KeyAngle, mc.ImpactAngleDeg)
	v.SetDefault(KeyGravity, mc.GravityMS2)
	v.SetDefault(KeyEffectRadius, mc.EffectRadiusKm)
	v.SetDefault(KeyTarget, mc.TargetType.String())
	v.SetDefault(KeyBody, "")
	v.SetDefault(KeyStellarMass, 1.0)
	v.SetDefault(KeyAxis, 5.203)
	v.SetDefault(KeyPlanet, "")
	v.SetDefault(KeyDecimals, 2)
	v.SetDefault(KeyDiagnostics, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if scenario != "" {
		v.SetConfigFile(scenario)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%s: %w", scenario, err)
		}
	}
	return v, nil
}

// PeriodDecimals is the default number of decimals of a printed orbital period.
const PeriodDecimals = 3

// NewOrbitConfig is NewConfig with PeriodDecimals as the default decimals.
func NewOrbitConfig(scenario string) (*viper.Viper, error) {
	v, err := NewConfig(scenario)
	if err != nil {
		return nil, err
	}
	v.SetDefault(KeyDecimals, PeriodDecimals)
	return v, nil
}

// CraterConfig returns the crater inputs from the configuration. A body, if
// set, provides the gravity.
func CraterConfig(v *viper.Viper) (CraterInputs, error) {
	target, err := TargetTypeFromString(v.GetString(KeyTarget))
	if err != nil {
		return CraterInputs{}, err
	}
	in := CraterInputs{
		ProjectileDiameterM:   v.GetFloat64(KeyDiameter),
		VelocityKmPerS:        v.GetFloat64(KeyVelocity),
		TargetDensityKgM3:     v.GetFloat64(KeyTargetDensity),
		ProjectileDensityKgM3: v.GetFloat64(KeyProjectileDensity),
		ImpactAngleDeg:        v.GetFloat64(KeyAngle),
		GravityMS2:            v.GetFloat64(KeyGravity),
		EffectRadiusKm:        v.GetFloat64(KeyEffectRadius),
		TargetType:            target,
	}
	if name := v.GetString(KeyBody); name != "" {
		body, err := CelestialObjectFromString(name)
		if err != nil {
			return CraterInputs{}, err
		}
		in.GravityMS2 = body.Gravity
	}
	return in, nil
}

// OrbitConfig returns the orbital inputs from the configuration. A planet, if
// set, provides the semi-major axis around one solar mass.
func OrbitConfig(v *viper.Viper) (OrbitalInputs, error) {
	if name := v.GetString(KeyPlanet); name != "" {
		body, err := CelestialObjectFromString(name)
		if err != nil {
			return OrbitalInputs{}, err
		}
		return body.OrbitalInputs()
	}
	return OrbitalInputs{
		StellarMassSolarUnits: v.GetFloat64(KeyStellarMass),
		SemiMajorAxisAU:       v.GetFloat64(KeyAxis),
	}, nil
}
