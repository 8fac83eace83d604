// Package ebm evaluates the surface energy balance of a snow/ice layer over
// a lake at a candidate surface temperature. Evaluations are pure so the
// balance can be bracketed by a root-finder.
package ebm

import "math"

const (
	cpAir   = 1013.    // specific heat of air [J/kg·K]
	chWater = 4186.8e3 // volumetric heat capacity of water [J/m³·K]
	stefan  = 5.6696e-8
	lfus    = 3.337e5 // latent heat of fusion [J/kg]
	rhoW    = 1000.   // density of water [kg/m³]
	kelvin  = 273.15
)

// In bundles every fixed input of one energy-balance evaluation. The same
// bundle feeds both Eval and the non-convergence diagnostic dump, keeping the
// two call sites aligned by construction.
type In struct {
	Dt                 float64 // timestep [s]
	Ra                 float64 // aerodynamic resistance [s/m]
	Z                  float64 // reference height [m]
	Displacement       float64 // displacement height [m]
	Z0                 float64 // roughness length [m]
	Wind               float64 // wind speed [m/s]
	ShortRad           float64 // net incident shortwave [W/m²]
	LongRadIn          float64 // incoming longwave [W/m²]
	AirDens            float64 // density of air [kg/m³]
	Lv                 float64 // latent heat of vaporization [J/kg]
	Tair               float64 // air temperature [°C]
	Press              float64 // air pressure [Pa]
	Vpd                float64 // vapour pressure deficit [Pa]
	EactAir            float64 // actual vapour pressure of air [Pa]
	Rain               float64 // rainfall [m/timestep]
	SweSurfaceLayer    float64 // snow + lake-ice water equivalent [m]
	SurfaceLiquidWater float64 // liquid water in the surface layer [m]
	OldTSurf           float64 // surface temperature of the previous step [°C]
	BlowingFlux        float64 // blowing-snow vapor flux [m/timestep]
	DeltaColdContent   float64 // change in cold content of the slab [W/m²]
	Tfreeze            float64 // freezing point of the lake water [°C]
	AvgCond            float64 // effective thermal resistance of the slab [K·m²/W]
	SWconducted        float64 // shortwave conducted into the slab [W/m²]
	SnowDepth          float64 // snow depth at snow density [m]
	SnowDensity        float64 // [kg/m³]
	SurfAttenuation    float64 // fraction of shortwave absorbed at the surface [-]
}

// Result aggregates the net surface exchange and its component fluxes.
// Qnet is identically zero when equilibrium holds at the melting point.
type Result struct {
	Qnet           float64 // net surface energy exchange [W/m²]
	RefreezeEnergy float64 // ≥0 surface water freezing, <0 pack melting [W/m²]
	VaporFlux      float64 // sublimation/deposition [m/timestep], negative = loss
	BlowingFlux    float64 // [m/timestep]
	SurfaceFlux    float64 // [m/timestep]
	Advection      float64 // [W/m²]
	SnowFlux       float64 // conduction from the lake water below [W/m²]
	Latent         float64 // [W/m²]
	Sensible       float64 // [W/m²]
	LWnet          float64 // [W/m²]
}

// svp: saturated vapour pressure over a melting/frozen surface [Pa]
func svp(t float64) float64 {
	if t < 0. {
		return 610.78 * math.Exp(21.875*t/(t+265.5)) // over ice
	}
	return 610.78 * math.Exp(17.269*t/(t+237.3))
}

// Eval computes the surface energy balance at candidate temperature tsurf.
// At tsurf = 0 a positive residual cannot warm the surface further, so the
// residual is folded into RefreezeEnergy and Qnet reports equilibrium.
func Eval(tsurf float64, in *In) Result {
	var r Result

	tmk := tsurf + kelvin
	r.LWnet = in.LongRadIn - stefan*tmk*tmk*tmk*tmk
	swAbs := in.SurfAttenuation*in.ShortRad - in.SWconducted // remainder penetrates the slab

	r.Sensible = in.AirDens * cpAir * (in.Tair - tsurf) / in.Ra

	ls := in.Lv
	if tsurf < 0. {
		ls += lfus // sublimation from a frozen surface
	}
	r.Latent = ls * in.AirDens * .622 / in.Press * (in.EactAir - svp(tsurf)) / in.Ra

	// sublimation/deposition mass flux implied by the latent exchange
	r.VaporFlux = r.Latent / (ls * rhoW) * in.Dt
	r.BlowingFlux = in.BlowingFlux
	r.SurfaceFlux = r.VaporFlux - r.BlowingFlux

	// rain advects heat at air temperature
	r.Advection = chWater * in.Tair * in.Rain / in.Dt

	if in.AvgCond > 0. {
		r.SnowFlux = (in.Tfreeze - tsurf) / in.AvgCond
	}

	rest := swAbs + r.LWnet + r.Sensible + r.Latent + r.Advection + r.SnowFlux - in.DeltaColdContent

	// energy released were all surface liquid water to freeze this step
	r.RefreezeEnergy = in.SurfaceLiquidWater * lfus * rhoW / in.Dt

	if tsurf == 0. && rest > -r.RefreezeEnergy {
		r.RefreezeEnergy = -rest
		r.Qnet = 0.
	} else {
		r.Qnet = rest + r.RefreezeEnergy
	}
	return r
}
