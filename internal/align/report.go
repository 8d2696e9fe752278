package align

import (
	"log/slog"
	"strconv"
)

const (
	// Signature identifies reports produced by this engine.
	Signature = "LOGOS_DUAL_V1_SUPREME"

	// StatusAchieved is the only status a completed report carries.
	StatusAchieved = "NATURALNESS_ACHIEVED"
)

// Report is the full breakdown of one alignment.
type Report struct {
	Signature string
	InputMass float64
	Drift     Geometry
	Aligned   float64
	Seal      float64
	Status    string
}

// Inspect runs every stage on chunk and returns the intermediate values
// alongside the aligned result. Aligned always equals Align(chunk).
func (e *Engine) Inspect(chunk string) (Report, error) {
	mass := e.ingest(chunk)
	vs, err := e.stabilize(mass)
	if err != nil {
		return Report{}, err
	}
	geo := e.detect(vs)
	aligned := e.realign(e.persist(vs, geo))

	return Report{
		Signature: Signature,
		InputMass: mass,
		Drift:     geo,
		Aligned:   aligned,
		Seal:      e.certify(aligned),
		Status:    StatusAchieved,
	}, nil
}

// Format renders the numeric fields with fixed precision: mass to 4
// places, aligned output to 20, seal to 12.
func (r Report) Format() map[string]string {
	return map[string]string{
		"signature":      r.Signature,
		"input_mass":     strconv.FormatFloat(r.InputMass, 'f', 4, 64),
		"aligned_output": strconv.FormatFloat(r.Aligned, 'f', 20, 64),
		"integrity_seal": strconv.FormatFloat(r.Seal, 'f', 12, 64),
		"status":         r.Status,
	}
}

// LogValue lets a Report be passed straight to slog.
func (r Report) LogValue() slog.Value {
	f := r.Format()
	return slog.GroupValue(
		slog.String("input_mass", f["input_mass"]),
		slog.Float64("triangle", r.Drift.Triangle),
		slog.Float64("circle", r.Drift.Circle),
		slog.Float64("linear", r.Drift.Linear),
		slog.String("aligned", f["aligned_output"]),
		slog.String("seal", f["integrity_seal"]),
	)
}
