package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ChristopherRabotin/impact"
	kitlog "github.com/go-kit/kit/log"
)

// This code evaluates the crater scaling equations for one impact and prints every result.

var (
	scenario string
	jsonOut  bool
	csvOut   bool
	textfile string
	sizeD    float64
	logger   kitlog.Logger
)

// flagKeys maps the command line flags to their configuration keys.
var flagKeys = map[string]string{
	"L":      impact.KeyDiameter,
	"v":      impact.KeyVelocity,
	"rhot":   impact.KeyTargetDensity,
	"rhop":   impact.KeyProjectileDensity,
	"theta":  impact.KeyAngle,
	"g":      impact.KeyGravity,
	"r":      impact.KeyEffectRadius,
	"target": impact.KeyTarget,
	"body":   impact.KeyBody,
	"dec":    impact.KeyDecimals,
	"diag":   impact.KeyDiagnostics,
}

func init() {
	mc := impact.MeteorCrater()
	flag.Float64("L", mc.ProjectileDiameterM, "projectile diameter (m)")
	flag.Float64("v", mc.VelocityKmPerS, "impact velocity (km/s)")
	flag.Float64("rhot", mc.TargetDensityKgM3, "target density (kg/m^3)")
	flag.Float64("rhop", mc.ProjectileDensityKgM3, "projectile density (kg/m^3)")
	flag.Float64("theta", mc.ImpactAngleDeg, "impact angle from the horizontal (deg)")
	flag.Float64("g", mc.GravityMS2, "surface gravity (m/s^2)")
	flag.Float64("r", mc.EffectRadiusKm, "seismic effect radius (km)")
	flag.String("target", mc.TargetType.String(), "target type: rock, ice or sand")
	flag.String("body", "", "impacted body, sets the gravity (e.g. moon, mars)")
	flag.Int("dec", 2, "decimal places of the printed values")
	flag.Bool("diag", false, "also print the intermediate values")
	flag.StringVar(&scenario, "scenario", "", "scenario TOML file")
	flag.BoolVar(&jsonOut, "json", false, "print the result as JSON")
	flag.BoolVar(&csvOut, "csv", false, "print the result as CSV")
	flag.StringVar(&textfile, "textfile", "", "also write the result for the Prometheus textfile collector")
	flag.Float64Var(&sizeD, "size", 0, "estimate the projectile from this transient crater diameter (m) instead")
	logger = kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr)), "cmd", "crater")
}

func fatal(keyvals ...interface{}) {
	logger.Log(keyvals...)
	os.Exit(1)
}

func main() {
	flag.Parse()
	conf, err := impact.NewConfig(scenario)
	if err != nil {
		fatal("msg", "could not load scenario", "err", err)
	}
	flag.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			conf.Set(key, f.Value.String())
		}
	})
	if scenario != "" {
		logger.Log("scenario", scenario)
	}
	inputs, err := impact.CraterConfig(conf)
	if err != nil {
		fatal("msg", "invalid configuration", "err", err)
	}
	decPlaces := conf.GetInt(impact.KeyDecimals)

	if sizeD > 0 {
		est, err := impact.EstimateProjectile(impact.SizingFromCrater(inputs, sizeD))
		if err != nil {
			fatal("msg", "could not size the projectile", "err", err)
		}
		if err := output(est, est.Fields(), decPlaces); err != nil {
			fatal("err", err)
		}
		return
	}

	rslt, err := impact.ComputeCrater(inputs)
	if err != nil {
		fatal("msg", "could not compute the crater", "err", err)
	}
	fields := rslt.Fields()
	if conf.GetBool(impact.KeyDiagnostics) && !jsonOut {
		fields = append(fields, rslt.Diagnostics.Fields()...)
	}
	if err := output(rslt, fields, decPlaces); err != nil {
		fatal("err", err)
	}
	if textfile != "" {
		if err := impact.ExportTextfile(textfile, rslt); err != nil {
			fatal("err", err)
		}
		logger.Log("textfile", textfile)
	}
}

func output(v interface{}, fields []impact.Field, decPlaces int) error {
	switch {
	case jsonOut:
		return impact.ExportJSON(os.Stdout, v)
	case csvOut:
		return impact.ExportCSV(os.Stdout, fields)
	default:
		if err := impact.WriteReport(os.Stdout, fields, decPlaces); err != nil {
			return fmt.Errorf("could not print the report: %w", err)
		}
		return nil
	}
}
