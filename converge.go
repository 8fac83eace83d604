package lakeice

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/maseology/lakeice/ebm"
)

// NonConvergenceError reports a surface-temperature search that failed to
// resolve. The energy balance is re-evaluated at the failing temperature so
// the error carries the same diagnostic terms a successful step would have
// produced; its message is a deterministic field-by-field dump of the
// evaluation. The step's state is not physically meaningful and the caller
// should stop the run rather than continue on it.
type NonConvergenceError struct {
	Context string
	Tsurf   float64
	In      ebm.In
	Res     ebm.Result
	Wrapped error
}

func (s *Solver) nonConvergence(ts float64, in *ebm.In, cause error) error {
	return &NonConvergenceError{
		Context: "IceMelt",
		Tsurf:   ts,
		In:      *in,
		Res:     s.eval(ts, in),
		Wrapped: cause,
	}
}

func (e *NonConvergenceError) Unwrap() error { return e.Wrapped }

func (e *NonConvergenceError) Error() string {
	var b strings.Builder
	b.WriteString(io.Sf("%s: failed to converge to a surface temperature; dumping variables, check for invalid values\n", e.Context))
	if e.Wrapped != nil {
		b.WriteString(io.Sf("cause: %v\n", e.Wrapped))
	}
	in, r := &e.In, &e.Res
	for _, f := range []struct {
		n string
		v float64
	}{
		{"Tsurf", e.Tsurf},
		{"Dt", in.Dt},
		{"Ra", in.Ra},
		{"Z", in.Z},
		{"Displacement", in.Displacement},
		{"Z0", in.Z0},
		{"Wind", in.Wind},
		{"ShortRad", in.ShortRad},
		{"LongRadIn", in.LongRadIn},
		{"AirDens", in.AirDens},
		{"Lv", in.Lv},
		{"Tair", in.Tair},
		{"Press", in.Press},
		{"Vpd", in.Vpd},
		{"EactAir", in.EactAir},
		{"Rain", in.Rain},
		{"SweSurfaceLayer", in.SweSurfaceLayer},
		{"SurfaceLiquidWater", in.SurfaceLiquidWater},
		{"OldTSurf", in.OldTSurf},
		{"RefreezeEnergy", r.RefreezeEnergy},
		{"VaporFlux", r.VaporFlux},
		{"BlowingFlux", r.BlowingFlux},
		{"SurfaceFlux", r.SurfaceFlux},
		{"AdvectedEnergy", r.Advection},
		{"DeltaColdContent", in.DeltaColdContent},
		{"Tfreeze", in.Tfreeze},
		{"AvgCond", in.AvgCond},
		{"SWconducted", in.SWconducted},
		{"SnowDepth", in.SnowDepth},
		{"SnowDensity", in.SnowDensity},
		{"SurfAttenuation", in.SurfAttenuation},
		{"GroundFlux", r.SnowFlux},
		{"LatentHeat", r.Latent},
		{"SensibleHeat", r.Sensible},
		{"LWnet", r.LWnet},
	} {
		b.WriteString(io.Sf("%s = %f\n", f.n, f.v))
	}
	b.WriteString("finished dumping energy-balance variables; try reducing the timestep and check the forcing for instabilities")
	return b.String()
}
