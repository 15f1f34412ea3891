package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ChristopherRabotin/impact"
	kitlog "github.com/go-kit/kit/log"
)

// This code computes an orbital period from Kepler's Third Law.

var (
	scenario string
	logger   kitlog.Logger
)

var flagKeys = map[string]string{
	"mass":   impact.KeyStellarMass,
	"a":      impact.KeyAxis,
	"planet": impact.KeyPlanet,
	"dec":    impact.KeyDecimals,
}

func init() {
	flag.Float64("mass", 1, "stellar mass (solar masses)")
	flag.Float64("a", 5.203, "semi-major axis (AU)")
	flag.String("planet", "", "use the semi-major axis of this planet around the Sun")
	flag.Int("dec", impact.PeriodDecimals, "decimal places of the period")
	flag.StringVar(&scenario, "scenario", "", "scenario TOML file")
	logger = kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr)), "cmd", "kepler")
}

func main() {
	flag.Parse()
	conf, err := impact.NewOrbitConfig(scenario)
	if err != nil {
		logger.Log("msg", "could not load scenario", "err", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			conf.Set(key, f.Value.String())
		}
	})
	inputs, err := impact.OrbitConfig(conf)
	if err != nil {
		logger.Log("msg", "invalid configuration", "err", err)
		os.Exit(1)
	}
	rslt, err := impact.ComputePeriod(inputs)
	if err != nil {
		logger.Log("msg", "could not compute the period", "err", err)
		os.Exit(1)
	}
	fmt.Printf("Orbital Period P %.*f Years.\n", conf.GetInt(impact.KeyDecimals), rslt.PeriodYears)
}
