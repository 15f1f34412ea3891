package impact

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Field is one named output of a computation.
type Field struct {
	Key   string  // machine name, as reported by the legacy calculator
	Label string  // human readable label
	Unit  string  // SI unit, may be empty
	Value float64 // numeric value, ignored if Text is set
	Text  string  // set for non-numeric fields
}

// Format returns the value in scientific notation with decPlaces decimals.
func (f Field) Format(decPlaces int) string {
	if f.Text != "" {
		return f.Text
	}
	return strconv.FormatFloat(f.Value, 'e', decPlaces, 64)
}

// Fields returns the named outputs in the order they are reported.
func (r CraterResult) Fields() []Field {
	return []Field{
		{"impactorVolume", "Impactor volume", "m^3", r.ImpactorVolume, ""},
		{"craterType", "Crater type", "", 0, string(r.CraterType)},
		{"impactorMass", "Impactor mass", "kg", r.ImpactorMass, ""},
		{"Dyield", "Yield scaling diameter", "m", r.Dyield, ""},
		{"continuousEjectaBlanketDiameter", "Continuous ejecta blanket diameter", "m", r.ContinuousEjectaBlanketDiameter, ""},
		{"projectileKE", "Projectile kinetic energy", "J", r.ProjectileKE, ""},
		{"Dpiscale", "Pi scaling diameter", "m", r.Dpiscale, ""},
		{"ejectaSpreadRadius", "Ejecta spread radius", "m", r.EjectaSpreadRadius, ""},
		{"energyMegatonsTNT", "Energy", "Mt TNT", r.EnergyMegatonsTNT, ""},
		{"Dgault", "Gault scaling diameter", "m", r.Dgault, ""},
		{"M", "Seismic magnitude", "", r.M, ""},
		{"nL", "NEO with diameter > L", "per year", r.NL, ""},
		{"mEff", "Seismic magnitude at effect radius", "", r.MEff, ""},
		{"Dfinal", "Final crater diameter", "m", r.Dfinal, ""},
		{"Tform", "Formation time", "s", r.Tform, ""},
	}
}

// Fields returns the intermediate values in the order they are reported.
func (d Diagnostics) Fields() []Field {
	return []Field{
		{"anglefac", "anglefac", "", d.AngleFac, ""},
		{"densfac", "densfac", "", d.DensFac, ""},
		{"pifac", "pifac", "1/m", d.PiFac, ""},
		{"Ct", "Ct", "", d.Ct, ""},
		{"Dstar", "Dstar", "m", d.DStar, ""},
		{"Dpr", "Dpr", "m", d.DPr, ""},
		{"m", "m", "kg", d.Mass, ""},
		{"pitwo", "pitwo", "", d.PiTwo, ""},
		{"dscale", "dscale", "m", d.DScale, ""},
		{"gsmall", "gsmall", "m", d.GSmall, ""},
		{"Dsimple", "Dsimple", "m", d.DSimple, ""},
	}
}

// Fields returns the projectile estimates in the order they are reported.
func (e ProjectileEstimate) Fields() []Field {
	return []Field{
		{"Lpiscale", "Pi scaling projectile diameter", "m", e.Lpiscale, ""},
		{"Lyield", "Yield scaling projectile diameter", "m", e.Lyield, ""},
		{"Lgault", "Gault scaling projectile diameter", "m", e.Lgault, ""},
	}
}

// Fields returns the orbital period.
func (r OrbitalResult) Fields() []Field {
	return []Field{
		{"period", "Orbital period", "years", r.PeriodYears, ""},
	}
}

// WriteReport writes one labeled line per field.
func WriteReport(w io.Writer, fields []Field, decPlaces int) error {
	width := 0
	for _, f := range fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}
	for _, f := range fields {
		line := fmt.Sprintf("%-*s = %s", width, f.Label, f.Format(decPlaces))
		if f.Unit != "" && f.Text == "" {
			line += " " + f.Unit
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ExportCSV writes the fields as key,value,unit records after a commented header.
func ExportCSV(w io.Writer, fields []Field) error {
	if _, err := fmt.Fprintf(w, `# Creation date (UTC): %s
# Records are <key>,<value>,<unit>
`, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"key", "value", "unit"}); err != nil {
		return err
	}
	for _, f := range fields {
		value := f.Text
		if value == "" {
			value = strconv.FormatFloat(f.Value, 'g', -1, 64)
		}
		if err := cw.Write([]string{f.Key, value, f.Unit}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportJSON writes v as indented JSON.
func ExportJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// CraterRegistry returns a registry exposing the crater result as gauges.
func CraterRegistry(r CraterResult) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	quantities := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "impact",
		Subsystem: "crater",
		Name:      "quantity",
		Help:      "Quantity derived by the crater scaling calculator, in SI units.",
	}, []string{"quantity", "unit"})
	craterType := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "impact",
		Subsystem: "crater",
		Name:      "type",
		Help:      "Crater type of the final crater, always 1.",
	}, []string{"type"})
	reg.MustRegister(quantities, craterType)
	for _, f := range append(r.Fields(), r.Diagnostics.Fields()...) {
		if f.Text != "" {
			continue
		}
		quantities.WithLabelValues(f.Key, f.Unit).Set(f.Value)
	}
	craterType.WithLabelValues(string(r.CraterType)).Set(1)
	return reg
}

// ExportTextfile writes the crater result in the Prometheus text format to
// filename, for the node exporter textfile collector.
func ExportTextfile(filename string, r CraterResult) error {
	if err := prometheus.WriteToTextfile(filename, CraterRegistry(r)); err != nil {
		return fmt.Errorf("could not write %s: %w", filename, err)
	}
	return nil
}
