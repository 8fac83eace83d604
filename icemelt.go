// Package lakeice updates the energy and mass state of a combined snow/ice
// layer floating on a lake, one grid cell and one timestep per call.
package lakeice

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/maseology/lakeice/ebm"
)

// evalFunc evaluates the surface energy balance at a candidate temperature;
// it must be side-effect free so it can be bracketed.
type evalFunc func(tsurf float64, in *ebm.In) ebm.Result

// rootFunc searches [xa,xb] for a root of f, returning a non-nil error when
// its iteration budget is exhausted.
type rootFunc func(f func(x float64) (float64, error), xa, xb float64) (float64, error)

// Solver performs the per-timestep energy-balance and mass-conservation
// update of a snow/lake-ice column. It holds no mutable state between calls;
// independent cells may be solved concurrently with one shared Solver.
type Solver struct {
	opt  *Options
	eval evalFunc
	root rootFunc
}

// New returns a Solver wired to the ebm evaluator and a Brent's-method
// root search.
func New(opt *Options) *Solver {
	return &Solver{opt: opt, eval: ebm.Eval, root: brent}
}

func brent(f func(x float64) (float64, error), xa, xb float64) (float64, error) {
	var o num.Brent
	o.Init(f)
	return o.Solve(xa, xb, true)
}

// IceMelt advances the snow/lake-ice system one timestep: it solves for the
// surface temperature, propagates refreeze/melt through the snow-ice, surface
// liquid water and lake-ice reservoirs, redistributes the vapor flux, and
// reconciles the reservoirs back into snow and lake, reporting the melt
// released to the cell and the step's energy-flux diagnostics. A typed
// *NonConvergenceError is returned when the temperature search fails; the
// step's state is then meaningless and the run should stop.
func (s *Solver) IceMelt(frc *Forcing, pcp Precip, snow *SnowState, lake *LakeState) (Fluxes, error) {
	var fx Fluxes

	snowfall := pcp.Snowfall / 1000. // [mm] to [m]
	rainfall := pcp.Rainfall / 1000.
	dt := frc.DeltaT * secperhour

	swq0, t0 := snow.Swq, snow.SurfTemp

	// split the column into its transient reservoirs; lake ice is carried as
	// water equivalent
	snowIce := snow.Swq - snow.SurfWater
	lakeIce := lake.HIce * rhoIce / rhoWater
	ice0 := lakeIce

	// distribute fresh precipitation
	snowIce += snowfall
	snow.SurfWater += rainfall

	avgCond, swCond, deltaCC := ebm.IceRad(frc.NetShort, lake.HIce, snowIce*rhoWater/rhoSnow)

	snow.BlowingFlux = 0. // placeholder for a blowing-snow sublimation model

	in := ebm.In{
		Dt:                 dt,
		Ra:                 frc.Ra,
		Z:                  frc.Z2,
		Displacement:       frc.Displacement,
		Z0:                 frc.Z0,
		Wind:               frc.Wind,
		ShortRad:           frc.NetShort,
		LongRadIn:          frc.LongIn,
		AirDens:            frc.AirDens,
		Lv:                 frc.Le,
		Tair:               frc.AirTemp,
		Press:              frc.Press,
		Vpd:                frc.Vpd,
		EactAir:            frc.Vp,
		Rain:               rainfall,
		SweSurfaceLayer:    snow.Swq + lakeIce,
		SurfaceLiquidWater: snow.SurfWater,
		OldTSurf:           t0,
		BlowingFlux:        snow.BlowingFlux,
		DeltaColdContent:   deltaCC,
		Tfreeze:            frc.Tcutoff,
		AvgCond:            avgCond,
		SWconducted:        swCond,
		SnowDepth:          snow.Swq * rhoWater / rhoSnow,
		SnowDensity:        rhoSnow,
		SurfAttenuation:    frc.SurfAtten,
	}

	// surface energy balance at the melting point
	r := s.eval(0., &in)
	snow.VaporFlux = r.VaporFlux
	snow.SurfaceFlux = r.SurfaceFlux

	meltEnergy, snowMelt, iceMelt := 0., 0., 0.

	if r.Qnet == 0. { // equilibrium attainable at 0°C: surface melts or freezes
		snow.SurfTemp = 0.
		refreeze := r.RefreezeEnergy
		if refreeze >= 0. { // surface liquid water is freezing
			refrozen := refreeze / (lf * rhoWater) * dt
			if refrozen > snow.SurfWater {
				refrozen = snow.SurfWater
				refreeze = refrozen * lf * rhoWater / dt
			}
			meltEnergy += refreeze
			snow.Swq += refrozen
			snowIce += refrozen
			snow.SurfWater -= refrozen
			if snow.SurfWater < 0. && s.opt.Debug {
				chk.Panic("IceMelt: surface water %g m after refreeze; reservoir accounting defect", snow.SurfWater)
			}
		} else { // pack is melting
			snowMelt = math.Abs(refreeze) / (lf * rhoWater) * dt
			meltEnergy += refreeze
		}
		fx.RefreezeEnergy = refreeze

		snowIce, lakeIce = redistributeVapor(snow, lake, frc.FracPrv, snowIce, lakeIce)
		snowIce, lakeIce, iceMelt = partitionMelt(snow, snowIce, lakeIce, snowMelt)

	} else { // no equilibrium at 0°C: iterate for a sub-freezing surface temperature
		f := func(t float64) (float64, error) { return s.eval(t, &in).Qnet, nil }
		ts, err := s.root(f, t0-s.opt.SnowDT, 0.)
		if err != nil || ts <= tSentinel {
			return fx, s.nonConvergence(ts, &in, err)
		}
		snow.SurfTemp = ts

		// recover the diagnostic terms at the solved temperature
		r = s.eval(ts, &in)
		snow.VaporFlux = r.VaporFlux
		snow.SurfaceFlux = r.SurfaceFlux
		fx.RefreezeEnergy = r.RefreezeEnergy

		// the surface is below freezing: no melt, all surface liquid water freezes
		snowIce += snow.SurfWater
		meltEnergy += snow.SurfWater * lf * rhoWater / dt
		snow.SurfWater = 0.

		snowIce, lakeIce = redistributeVaporFrozen(snow, lake, frc.FracPrv, snowIce, lakeIce)
	}

	// the surface layer holds no more liquid water than capacity; the excess
	// is the step's melt/runoff output
	melt := 0.
	if maxLiq := s.opt.MaxLiquidFrac * snowIce; snow.SurfWater > maxLiq {
		melt = snow.SurfWater - maxLiq
		snow.SurfWater = maxLiq
	}

	reconcile(snow, lake, snowIce, lakeIce)

	// diagnostic residual, monitored by the caller, never enforced
	snow.MassError = (swq0 - snow.Swq) + (ice0 - lakeIce) + (rainfall + snowfall) -
		iceMelt - melt + snow.VaporFlux
	snow.MeltEnergy = meltEnergy

	snow.VaporFlux *= -1. // exit on the positive-loss convention

	fx.Melt = melt * 1000. // back to [mm]
	fx.IceMelt = iceMelt
	fx.Qnet = r.Qnet
	fx.LWnet = r.LWnet
	fx.Advection = r.Advection
	fx.DeltaCC = deltaCC
	fx.SnowFlux = r.SnowFlux
	fx.Latent = r.Latent
	fx.Sensible = r.Sensible
	return fx, nil
}
